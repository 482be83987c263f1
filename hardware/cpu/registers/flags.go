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

package registers

import "strings"

// bits in the F register.
const (
	zeroBit      = 0x80
	subtractBit  = 0x40
	halfCarryBit = 0x20
	carryBit     = 0x10
)

// Flags is the F register. The lower four bits do not exist and always read
// as zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 'a' - 'A')
		}
	}
	flag(f.Zero, 'Z')
	flag(f.Subtract, 'N')
	flag(f.HalfCarry, 'H')
	flag(f.Carry, 'C')
	return s.String()
}

// Reset all flags.
func (f *Flags) Reset() {
	f.Load(0)
}

// Value returns the flags as the value of the F register.
func (f Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= zeroBit
	}
	if f.Subtract {
		v |= subtractBit
	}
	if f.HalfCarry {
		v |= halfCarryBit
	}
	if f.Carry {
		v |= carryBit
	}
	return v
}

// Load sets the flags from the value of the F register. The lower four bits
// are ignored.
func (f *Flags) Load(v uint8) {
	f.Zero = v&zeroBit == zeroBit
	f.Subtract = v&subtractBit == subtractBit
	f.HalfCarry = v&halfCarryBit == halfCarryBit
	f.Carry = v&carryBit == carryBit
}
