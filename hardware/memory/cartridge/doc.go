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

// Package cartridge fully implements loading of cartridge data and the
// emulation of the memory bank controllers (MBCs) used by cartridges.
//
// The cartridge type is decided by the byte at 0x0147 of the cartridge
// header. Supported types are:
//
//	00, 08, 09          ROM only (with optional RAM)
//	01, 02, 03          MBC1
//	05, 06              MBC2
//	0f, 10, 11, 12, 13  MBC3 (0f and 10 with real-time clock)
//	19 ... 1e           MBC5
//
// Any other type is rejected with the InvalidRomHeader error.
//
// Bank numbers selected by the program are always taken modulo the number of
// banks actually present in the cartridge data. A program selecting bank 40
// in a 32 bank cartridge will see bank 8.
package cartridge
