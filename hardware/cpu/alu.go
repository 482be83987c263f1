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

package cpu

// addHL adds the value to HL. the half-carry is from bit 11 and the carry is
// from bit 15. the zero flag is not affected.
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL()
	sum := uint32(hl) + uint32(v)
	mc.F.Subtract = false
	mc.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	mc.F.Carry = sum > 0xffff
	mc.setHL(uint16(sum))
}

// addSPSigned returns the result of adding the signed byte to SP. the flags
// are set as though the unsigned byte was added to the low byte of SP.
func (mc *CPU) addSPSigned(e uint8) uint16 {
	sp := mc.SP.Address()
	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = (sp&0x0f)+uint16(e&0x0f) > 0x0f
	mc.F.Carry = (sp&0xff)+uint16(e) > 0xff
	return sp + uint16(int8(e))
}

// daa adjusts the accumulator to binary coded decimal after an addition or a
// subtraction.
func (mc *CPU) daa() {
	a := mc.A.Value()
	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			mc.F.Carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}
	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
}
