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

// the MBC2 has 512 half-bytes of RAM built in.
const mbc2RAMSize = 512

type mbc2 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [mbc2RAMSize]uint8

	state mbc2State
}

type mbc2State struct {
	ramEnabled bool
	romBank    uint8
}

func newMBC2(data []byte) *mbc2 {
	cart := &mbc2{
		mappingID:   "MBC2",
		description: "memory bank controller 2",
		banks:       romBanks(data),
	}
	cart.Reset()
	return cart
}

func (cart *mbc2) String() string {
	return fmt.Sprintf("%s [%s] ROM bank: %d", cart.mappingID, cart.description, cart.ROMXBank())
}

func (cart *mbc2) ID() string {
	return cart.mappingID
}

func (cart *mbc2) Reset() {
	cart.state = mbc2State{romBank: 1}
}

func (cart *mbc2) ROMXBank() int {
	return int(cart.state.romBank) % len(cart.banks)
}

func (cart *mbc2) Read(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return readROM(cart.banks, 0, addr)
	case addr <= memorymap.MemtopROMX:
		return readROM(cart.banks, cart.ROMXBank(), addr-memorymap.OriginROMX)
	case isExtRAM(addr):
		if !cart.state.ramEnabled {
			return 0xff
		}
		// only the lower nibble exists. the upper nibble reads as set
		return cart.ram[(addr-memorymap.OriginExtRAM)%mbc2RAMSize] | 0xf0
	}
	return 0xff
}

func (cart *mbc2) Write(addr uint16, data uint8) {
	switch {
	case addr <= memorymap.MemtopROM0:
		// bit 8 of the address decides whether the write is to the RAM
		// enable register or the ROM bank register
		if addr&0x0100 == 0 {
			cart.state.ramEnabled = data&0x0f == 0x0a
		} else {
			cart.state.romBank = data & 0x0f
			if cart.state.romBank == 0 {
				cart.state.romBank = 1
			}
		}
	case isExtRAM(addr):
		if cart.state.ramEnabled {
			cart.ram[(addr-memorymap.OriginExtRAM)%mbc2RAMSize] = data & 0x0f
		}
	}
}

func (cart *mbc2) NumBanks() int {
	return len(cart.banks)
}

func (cart *mbc2) Step(_ int) {
}
