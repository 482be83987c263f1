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

// Package registers implements the three types of register found in the
// CPU: the eight bit general purpose register, the sixteen bit address
// register (SP and PC) and the flags register.
//
// The arithmetic functions of the eight bit register return the carry states
// of the operation. Setting the flags is left to the caller because
// instructions differ in which flags they affect. For example:
//
//	half, carry := a.Add(b.Value(), false)
//	f.Zero = a.IsZero()
//	f.Subtract = false
//	f.HalfCarry = half
//	f.Carry = carry
package registers
