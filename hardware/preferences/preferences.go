// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences collates the preference values used by the emulated
// hardware.
package preferences

import (
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// Preferences defines and collates the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// path to a boot ROM image. if empty the hardware starts in the post-boot
	// state
	BootROM prefs.String

	// restrict CPU access to VRAM and OAM during the PPU modes in which the
	// real hardware locks them
	AccessRestriction prefs.Bool

	// write serial output to the terminal
	SerialEcho prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewDefaults returns preferences with default values. The values are not
// associated with a file on disk.
func NewDefaults() *Preferences {
	return &Preferences{}
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	p := NewDefaults()

	pth, err := paths.ResourcePath(prefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("hardware.bootrom", &p.BootROM); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.ppu.accessRestriction", &p.AccessRestriction); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.serialEcho", &p.SerialEcho); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
