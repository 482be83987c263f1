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

package memory

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// BootROMError is returned when the boot ROM data cannot be used.
const BootROMError = "memory: boot rom: %v"

// BootROMSize is the required size of the boot ROM.
const BootROMSize = 256

// LoadBootROM sets the boot ROM and maps it over the start of the
// cartridge ROM. The boot ROM remains mapped until a non-zero value is
// written to the boot ROM disable register.
func (mem *Memory) LoadBootROM(data []byte) error {
	if err := CheckBootROM(data); err != nil {
		return err
	}
	mem.bootROM = make([]uint8, BootROMSize)
	copy(mem.bootROM, data)
	mem.bootEnabled = true
	logger.Log(mem.env, "memory", "boot rom attached")
	return nil
}

// CheckBootROM returns an error if the data cannot be used as a boot ROM.
func CheckBootROM(data []byte) error {
	if len(data) != BootROMSize {
		return curated.Errorf(BootROMError, fmt.Sprintf("wrong size (%d bytes)", len(data)))
	}
	return nil
}

// UnloadBootROM removes the boot ROM. The cartridge ROM is visible from
// address zero.
func (mem *Memory) UnloadBootROM() {
	if mem.bootROM != nil {
		logger.Log(mem.env, "memory", "boot rom removed")
	}
	mem.bootROM = nil
	mem.bootEnabled = false
}

// BootROMEnabled returns true if the boot ROM is mapped.
func (mem *Memory) BootROMEnabled() bool {
	return mem.bootEnabled
}
