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

// mapper is implemented by each type of memory bank controller. addresses
// are in the ROM (0x0000 to 0x7fff) and external RAM (0xa000 to 0xbfff)
// areas of the memory map. writes to the ROM area are commands to the MBC.
type mapper interface {
	fmt.Stringer
	ID() string
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
	NumBanks() int
	Reset()

	// step is called with the number of cycles that have elapsed. only
	// mappers with a real-time clock need to do anything
	Step(cycles int)

	// the bank currently mapped into the switchable ROM area
	ROMXBank() int
}

// romBanks divides the cartridge data into ROM banks. any data after the last
// complete bank is discarded. there are always at least two banks.
func romBanks(data []byte) [][]uint8 {
	n := len(data) / romBankSize
	if n < 2 {
		n = 2
	}
	banks := make([][]uint8, n)
	for i := range banks {
		banks[i] = make([]uint8, romBankSize)
		if i*romBankSize < len(data) {
			copy(banks[i], data[i*romBankSize:])
		}
	}
	return banks
}

// ramBanks creates the external RAM banks for a RAM of the specified size.
// RAM smaller than a single bank is mirrored by the read/write functions.
func ramBanks(size int) [][]uint8 {
	if size <= 0 {
		return nil
	}
	if size < ramBankSize {
		return [][]uint8{make([]uint8, size)}
	}
	banks := make([][]uint8, size/ramBankSize)
	for i := range banks {
		banks[i] = make([]uint8, ramBankSize)
	}
	return banks
}

// readROM returns the byte at the offset in the bank. bank is taken modulo
// the number of banks.
func readROM(banks [][]uint8, bank int, offset uint16) uint8 {
	return banks[bank%len(banks)][offset%romBankSize]
}

// readRAM returns the byte at the address in the RAM bank, or 0xff if there
// is no RAM.
func readRAM(banks [][]uint8, bank int, addr uint16) uint8 {
	if len(banks) == 0 {
		return 0xff
	}
	b := banks[bank%len(banks)]
	return b[int(addr-memorymap.OriginExtRAM)%len(b)]
}

func writeRAM(banks [][]uint8, bank int, addr uint16, data uint8) {
	if len(banks) == 0 {
		return
	}
	b := banks[bank%len(banks)]
	b[int(addr-memorymap.OriginExtRAM)%len(b)] = data
}

func isExtRAM(addr uint16) bool {
	return addr >= memorymap.OriginExtRAM && addr <= memorymap.MemtopExtRAM
}
