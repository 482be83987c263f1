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

// mbc5 supports up to 512 ROM banks. unlike the other MBCs, bank zero can be
// mapped into the switchable area.
type mbc5 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [][]uint8

	state mbc5State
}

type mbc5State struct {
	ramEnabled bool
	romBank    uint16
	ramBank    uint8
}

func newMBC5(data []byte, h Header) *mbc5 {
	cart := &mbc5{
		mappingID:   "MBC5",
		description: "memory bank controller 5",
		banks:       romBanks(data),
		ram:         ramBanks(h.RAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *mbc5) String() string {
	return fmt.Sprintf("%s [%s] ROM bank: %d, RAM bank: %d", cart.mappingID, cart.description,
		cart.ROMXBank(), cart.state.ramBank)
}

func (cart *mbc5) ID() string {
	return cart.mappingID
}

func (cart *mbc5) Reset() {
	cart.state = mbc5State{romBank: 1}
}

func (cart *mbc5) ROMXBank() int {
	return int(cart.state.romBank) % len(cart.banks)
}

func (cart *mbc5) Read(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return readROM(cart.banks, 0, addr)
	case addr <= memorymap.MemtopROMX:
		return readROM(cart.banks, cart.ROMXBank(), addr-memorymap.OriginROMX)
	case isExtRAM(addr):
		if !cart.state.ramEnabled {
			return 0xff
		}
		return readRAM(cart.ram, int(cart.state.ramBank), addr)
	}
	return 0xff
}

func (cart *mbc5) Write(addr uint16, data uint8) {
	switch {
	case addr <= 0x1fff:
		cart.state.ramEnabled = data&0x0f == 0x0a
	case addr <= 0x2fff:
		cart.state.romBank = cart.state.romBank&0x100 | uint16(data)
	case addr <= 0x3fff:
		cart.state.romBank = cart.state.romBank&0xff | uint16(data&0x01)<<8
	case addr <= 0x5fff:
		cart.state.ramBank = data & 0x0f
	case addr <= 0x7fff:
	case isExtRAM(addr):
		if cart.state.ramEnabled {
			writeRAM(cart.ram, int(cart.state.ramBank), addr, data)
		}
	}
}

func (cart *mbc5) NumBanks() int {
	return len(cart.banks)
}

func (cart *mbc5) Step(_ int) {
}
