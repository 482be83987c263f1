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
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/logger"
)

// BusAddressOutOfRange is returned if an address is not in any area of the
// memory map. This should never happen.
const BusAddressOutOfRange = "memory: bus address out of range (%#04x)"

// AudioTap implementations receive every write to the audio registers and
// wave RAM.
type AudioTap interface {
	AudioRegister(address uint16, data uint8)
}

// Memory is the memory bus.
type Memory struct {
	env logger.Permission

	Cart       *cartridge.Cartridge
	PPU        *ppu.PPU
	Timer      *timer.Timer
	Interrupts *interrupts.Controller
	Input      *input.Joypad
	Serial     *serial.Serial

	WRAM [memorymap.SizeWRAM]uint8
	HRAM [memorymap.SizeHRAM]uint8

	// raw storage for the I/O registers. registers owned by other components
	// are not stored here
	IO [memorymap.SizeIO]uint8

	bootROM     []uint8
	bootEnabled bool

	audio AudioTap
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The components attached to the bus are created at the same time.
func NewMemory(env logger.Permission, ic *interrupts.Controller) *Memory {
	mem := &Memory{
		env:        env,
		Interrupts: ic,
		Cart:       cartridge.NewCartridge(env),
		PPU:        ppu.NewPPU(ic),
		Timer:      timer.NewTimer(ic),
		Input:      input.NewJoypad(ic),
		Serial:     serial.NewSerial(env, ic),
	}
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", mem.Interrupts, mem.Timer, mem.PPU, mem.Serial)
}

// Reset clears the RAM owned by the bus and resets every attached component.
// The boot ROM is mapped in again if one has been loaded.
func (mem *Memory) Reset() {
	mem.WRAM = [memorymap.SizeWRAM]uint8{}
	mem.HRAM = [memorymap.SizeHRAM]uint8{}
	mem.IO = [memorymap.SizeIO]uint8{}
	mem.bootEnabled = len(mem.bootROM) > 0
	mem.Cart.Reset()
	mem.PPU.Reset()
	mem.Timer.Reset()
	mem.Interrupts.Reset()
	mem.Input.Reset()
	mem.Serial.Reset()
}

// SetAudioTap attaches an AudioTap to the bus. A nil value detaches the
// current tap.
func (mem *Memory) SetAudioTap(tap AudioTap) {
	mem.audio = tap
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	area, offset := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0:
		if mem.bootEnabled && int(address) < len(mem.bootROM) {
			return mem.bootROM[address], nil
		}
		return mem.Cart.Read(address), nil
	case memorymap.ROMX, memorymap.ExternalRAM:
		return mem.Cart.Read(address), nil
	case memorymap.VRAM:
		return mem.PPU.ReadVRAM(offset), nil
	case memorymap.WRAM, memorymap.Echo:
		return mem.WRAM[offset], nil
	case memorymap.OAM:
		return mem.PPU.ReadOAM(offset), nil
	case memorymap.Unusable:
		return 0x00, nil
	case memorymap.IO:
		return mem.readIO(address), nil
	case memorymap.HRAM:
		return mem.HRAM[offset], nil
	case memorymap.IE:
		return mem.Interrupts.IE, nil
	}

	return 0, curated.Errorf(BusAddressOutOfRange, address)
}

// Write is an implementation of cpubus.Memory. Writes to the ROM areas are
// forwarded to the cartridge as commands to the memory bank controller.
func (mem *Memory) Write(address uint16, data uint8) error {
	area, offset := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.ExternalRAM:
		mem.Cart.Write(address, data)
	case memorymap.VRAM:
		mem.PPU.WriteVRAM(offset, data)
	case memorymap.WRAM, memorymap.Echo:
		mem.WRAM[offset] = data
	case memorymap.OAM:
		mem.PPU.WriteOAM(offset, data)
	case memorymap.Unusable:
	case memorymap.IO:
		mem.writeIO(address, data)
	case memorymap.HRAM:
		mem.HRAM[offset] = data
	case memorymap.IE:
		mem.Interrupts.IE = data
	default:
		return curated.Errorf(BusAddressOutOfRange, address)
	}

	return nil
}

// Peek returns the value at the address without regard to the VRAM and OAM
// access restrictions. Peek never causes side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.VRAM:
		return mem.PPU.VRAM[offset]
	case memorymap.OAM:
		return mem.PPU.OAM[offset]
	}
	v, err := mem.Read(address)
	if err != nil {
		return 0xff
	}
	return v
}
