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

// romOnly cartridges have 32k of ROM with no bank switching. some have up to
// 8k of RAM which is always accessible.
type romOnly struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [][]uint8
}

func newROMOnly(data []byte, h Header) *romOnly {
	cart := &romOnly{
		mappingID:   "ROM",
		description: "rom only",
		banks:       romBanks(data),
	}
	if h.CartType == 0x08 || h.CartType == 0x09 {
		cart.ram = ramBanks(h.RAMSize)
		cart.description = "rom+ram"
	}
	return cart
}

func (cart *romOnly) String() string {
	return fmt.Sprintf("%s [%s]", cart.mappingID, cart.description)
}

func (cart *romOnly) ID() string {
	return cart.mappingID
}

func (cart *romOnly) Read(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return readROM(cart.banks, 0, addr)
	case addr <= memorymap.MemtopROMX:
		return readROM(cart.banks, 1, addr-memorymap.OriginROMX)
	case isExtRAM(addr):
		return readRAM(cart.ram, 0, addr)
	}
	return 0xff
}

func (cart *romOnly) Write(addr uint16, data uint8) {
	if isExtRAM(addr) {
		writeRAM(cart.ram, 0, addr, data)
	}
}

func (cart *romOnly) NumBanks() int {
	return len(cart.banks)
}

func (cart *romOnly) Reset() {
}

func (cart *romOnly) Step(_ int) {
}

func (cart *romOnly) ROMXBank() int {
	return 1
}
