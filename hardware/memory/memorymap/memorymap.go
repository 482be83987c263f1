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

// Package memorymap describes how the sixteen bit address space is divided
// between the memory areas. The partition is exhaustive: every address maps
// to exactly one Area.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM0:
		return "ROM0"
	case ROMX:
		return "ROMX"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}
	return "undefined"
}

// The list of memory areas in address order.
const (
	Undefined Area = iota
	ROM0
	ROMX
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// Origin and memtop addresses of each area.
const (
	OriginROM0     = uint16(0x0000)
	MemtopROM0     = uint16(0x3fff)
	OriginROMX     = uint16(0x4000)
	MemtopROMX     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginExtRAM   = uint16(0xa000)
	MemtopExtRAM   = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// Sizes of the internal memory areas.
const (
	SizeVRAM = int(MemtopVRAM-OriginVRAM) + 1
	SizeWRAM = int(MemtopWRAM-OriginWRAM) + 1
	SizeOAM  = int(MemtopOAM-OriginOAM) + 1
	SizeHRAM = int(MemtopHRAM-OriginHRAM) + 1
	SizeIO   = int(MemtopIO-OriginIO) + 1
)

// MapAddress returns the memory area of the address along with the offset
// of the address from the origin of that area. Echo addresses are returned
// with an offset into WRAM.
func MapAddress(address uint16) (Area, uint16) {
	switch {
	case address <= MemtopROM0:
		return ROM0, address
	case address <= MemtopROMX:
		return ROMX, address - OriginROMX
	case address <= MemtopVRAM:
		return VRAM, address - OriginVRAM
	case address <= MemtopExtRAM:
		return ExternalRAM, address - OriginExtRAM
	case address <= MemtopWRAM:
		return WRAM, address - OriginWRAM
	case address <= MemtopEcho:
		return Echo, address - OriginEcho
	case address <= MemtopOAM:
		return OAM, address - OriginOAM
	case address <= MemtopUnusable:
		return Unusable, address - OriginUnusable
	case address <= MemtopIO:
		return IO, address - OriginIO
	case address <= MemtopHRAM:
		return HRAM, address - OriginHRAM
	case address == AddressIE:
		return IE, 0
	}
	return Undefined, address
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	a, _ := MapAddress(address)
	return a == area
}
