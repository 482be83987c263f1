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

package cartridge

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

type mbc1 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [][]uint8

	state mbc1State
}

type mbc1State struct {
	ramEnabled bool

	// five bit lower bank register. a value of zero is treated as one
	bank1 uint8

	// two bit upper bank register. used for either the upper bits of the ROM
	// bank or the RAM bank, depending on mode
	bank2 uint8

	// banking mode. in mode 1 the bank2 register also affects the ROM0 area
	// and selects the RAM bank
	mode uint8
}

func newMBC1(data []byte, h Header) *mbc1 {
	cart := &mbc1{
		mappingID:   "MBC1",
		description: "memory bank controller 1",
		banks:       romBanks(data),
		ram:         ramBanks(h.RAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *mbc1) String() string {
	return fmt.Sprintf("%s [%s] ROM bank: %d, RAM bank: %d, mode: %d", cart.mappingID, cart.description,
		cart.ROMXBank(), cart.ramBank(), cart.state.mode)
}

func (cart *mbc1) ID() string {
	return cart.mappingID
}

func (cart *mbc1) Reset() {
	cart.state = mbc1State{bank1: 1}
}

func (cart *mbc1) ROMXBank() int {
	return (int(cart.state.bank2)<<5 | int(cart.state.bank1)) % len(cart.banks)
}

func (cart *mbc1) rom0Bank() int {
	if cart.state.mode == 1 {
		return int(cart.state.bank2) << 5
	}
	return 0
}

func (cart *mbc1) ramBank() int {
	if cart.state.mode == 1 {
		return int(cart.state.bank2)
	}
	return 0
}

func (cart *mbc1) Read(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return readROM(cart.banks, cart.rom0Bank(), addr)
	case addr <= memorymap.MemtopROMX:
		return readROM(cart.banks, cart.ROMXBank(), addr-memorymap.OriginROMX)
	case isExtRAM(addr):
		if !cart.state.ramEnabled {
			return 0xff
		}
		return readRAM(cart.ram, cart.ramBank(), addr)
	}
	return 0xff
}

func (cart *mbc1) Write(addr uint16, data uint8) {
	switch {
	case addr <= 0x1fff:
		cart.state.ramEnabled = data&0x0f == 0x0a
	case addr <= 0x3fff:
		cart.state.bank1 = data & 0x1f
		if cart.state.bank1 == 0 {
			cart.state.bank1 = 1
		}
	case addr <= 0x5fff:
		cart.state.bank2 = data & 0x03
	case addr <= 0x7fff:
		cart.state.mode = data & 0x01
	case isExtRAM(addr):
		if cart.state.ramEnabled {
			writeRAM(cart.ram, cart.ramBank(), addr, data)
		}
	}
}

func (cart *mbc1) NumBanks() int {
	return len(cart.banks)
}

func (cart *mbc1) Step(_ int) {
}
