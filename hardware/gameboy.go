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

package hardware

import (
	"fmt"
	"os"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/prefs"
)

// GameBoy is the root of the emulated hardware.
type GameBoy struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// the following are attached to the memory bus. the fields are provided
	// for convenience
	Interrupts *interrupts.Controller
	PPU        *ppu.PPU
	Timer      *timer.Timer
	Input      *input.Joypad
	Serial     *serial.Serial
	Cart       *cartridge.Cartridge

	// number of cycles since power on
	Clock uint64

	// suppress log entries made by this instance
	Quiet bool

	// the first error returned by Step(). once set the emulation can not
	// continue until it has been reset
	fatal error
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware. The cartridge slot is empty.
func NewGameBoy(p *preferences.Preferences) (*GameBoy, error) {
	if p == nil {
		return nil, curated.Errorf("hardware: no preferences")
	}

	gb := &GameBoy{
		Prefs:      p,
		Interrupts: interrupts.NewController(),
	}

	gb.Mem = memory.NewMemory(gb, gb.Interrupts)
	gb.CPU = cpu.NewCPU(gb.Mem, gb.Interrupts)
	gb.PPU = gb.Mem.PPU
	gb.Timer = gb.Mem.Timer
	gb.Input = gb.Mem.Input
	gb.Serial = gb.Mem.Serial
	gb.Cart = gb.Mem.Cart

	gb.Prefs.AccessRestriction.SetHookPost(func(v prefs.Value) error {
		gb.PPU.AccessRestriction = v.(bool)
		return nil
	})
	gb.Prefs.SerialEcho.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			gb.Serial.SetEcho(os.Stdout)
		} else {
			gb.Serial.SetEcho(nil)
		}
		return nil
	})
	if gb.Prefs.SerialEcho.Get().(bool) {
		gb.Serial.SetEcho(os.Stdout)
	}

	if err := gb.Reset(); err != nil {
		return nil, err
	}

	return gb, nil
}

// AllowLogging implements the logger.Permission interface.
func (gb *GameBoy) AllowLogging() bool {
	return !gb.Quiet
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s\n%s\nclock=%d", gb.CPU, gb.Mem, gb.Clock)
}

// AttachCartridge inserts the cartridge into the console and resets the
// hardware. If the hardware.bootrom preference names a file then the boot
// ROM is loaded and execution starts from address zero. Otherwise the
// hardware starts in the state the boot ROM would have left it in.
//
// The boot ROM is checked before the cartridge is inserted. If it cannot be
// used then the console is left unchanged.
func (gb *GameBoy) AttachCartridge(cartload cartridgeloader.Loader) error {
	var boot []byte
	if pth := gb.Prefs.BootROM.Get().(string); pth != "" {
		ld := cartridgeloader.NewLoader(pth)
		if err := ld.Load(); err != nil {
			return curated.Errorf(memory.BootROMError, err)
		}
		if err := memory.CheckBootROM(ld.Data); err != nil {
			return err
		}
		boot = ld.Data
	}

	if err := gb.Cart.Attach(cartload); err != nil {
		return err
	}

	if boot == nil {
		gb.Mem.UnloadBootROM()
	} else if err := gb.Mem.LoadBootROM(boot); err != nil {
		return err
	}

	return gb.Reset()
}

// Reset the console to its power on state. The cartridge remains inserted.
func (gb *GameBoy) Reset() error {
	gb.Mem.Reset()
	gb.CPU.Reset()
	gb.Clock = 0
	gb.fatal = nil
	gb.PPU.AccessRestriction = gb.Prefs.AccessRestriction.Get().(bool)

	if !gb.Mem.BootROMEnabled() {
		if err := gb.postBoot(); err != nil {
			return err
		}
	}

	logger.Logf(gb, "hardware", "reset (%s)", gb.Cart)
	return nil
}

// Frame returns a copy of the most recently completed frame.
func (gb *GameBoy) Frame() ppu.FrameBuffer {
	return gb.PPU.Frame()
}

// AddFrameRenderer adds a renderer that will receive every completed frame.
func (gb *GameBoy) AddFrameRenderer(r ppu.FrameRenderer) {
	gb.PPU.AddFrameRenderer(r)
}
