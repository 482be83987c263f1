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

package interrupts_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestVectors(t *testing.T) {
	test.ExpectEquality(t, interrupts.VBlank.Vector(), uint16(0x40))
	test.ExpectEquality(t, interrupts.LCDStat.Vector(), uint16(0x48))
	test.ExpectEquality(t, interrupts.Timer.Vector(), uint16(0x50))
	test.ExpectEquality(t, interrupts.Serial.Vector(), uint16(0x58))
	test.ExpectEquality(t, interrupts.Joypad.Vector(), uint16(0x60))
}

func TestRequestAndAcknowledge(t *testing.T) {
	ic := interrupts.NewController()
	ic.Request(interrupts.Timer)
	ic.Request(interrupts.VBlank)
	test.ExpectEquality(t, ic.IF, uint8(0x05))
	test.ExpectEquality(t, ic.ReadIF(), uint8(0xe5))

	// nothing is pending until enabled
	test.ExpectEquality(t, ic.Pending(), uint8(0x00))
	ic.IE = 0x04
	test.ExpectEquality(t, ic.Pending(), uint8(0x04))

	ic.Acknowledge(interrupts.Timer)
	test.ExpectEquality(t, ic.Pending(), uint8(0x00))
	test.ExpectEquality(t, ic.IF, uint8(0x01))

	ic.WriteIF(0xff)
	test.ExpectEquality(t, ic.IF, uint8(0x1f))
}
