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

// Package instructions defines every instruction in the instruction set.
// There are two tables of 256 definitions: Unprefixed, indexed by the opcode,
// and Prefixed, indexed by the byte following the 0xcb prefix.
//
// The tables are built when the package is initialised by decoding the
// fields of each opcode. The opcode is treated as three fields:
//
//	x = opcode >> 6
//	y = (opcode >> 3) & 7
//	z = opcode & 7
//
// and y is further split into p = y >> 1 and q = y & 1.
//
// Cycle counts are measured in clock cycles (four per machine cycle). The
// cycle count of a prefixed definition includes the cost of the prefix byte.
package instructions
