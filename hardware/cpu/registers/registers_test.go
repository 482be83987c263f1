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

package registers_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestRegisterAdd(t *testing.T) {
	r := registers.NewRegister(0x0f, "A")
	half, carry := r.Add(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, carry)

	r.Load(0xff)
	half, carry = r.Add(0x01, false)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)

	r.Load(0x80)
	half, carry = r.Add(0x80, false)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, half)
	test.ExpectSuccess(t, carry)

	// carry in
	r.Load(0x0f)
	half, carry = r.Add(0x00, true)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, carry)

	r.Load(0xff)
	half, carry = r.Add(0xff, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, carry)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(0x10, "A")
	half, borrow := r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x0f))
	test.ExpectSuccess(t, half)
	test.ExpectFailure(t, borrow)

	r.Load(0x00)
	half, borrow = r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, borrow)

	r.Load(0x80)
	half, borrow = r.Subtract(0x80, false)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, half)
	test.ExpectFailure(t, borrow)

	r.Load(0x00)
	half, borrow = r.Subtract(0x00, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectSuccess(t, half)
	test.ExpectSuccess(t, borrow)
}

func TestRegisterIncDec(t *testing.T) {
	r := registers.NewRegister(0x0f, "B")
	test.ExpectSuccess(t, r.Increment())
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, r.Decrement())
	test.ExpectEquality(t, r.Value(), uint8(0x0f))

	r.Load(0xff)
	test.ExpectSuccess(t, r.Increment())
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, r.Decrement())
	test.ExpectEquality(t, r.Value(), uint8(0xff))

	r.Load(0x01)
	test.ExpectFailure(t, r.Decrement())
	test.ExpectSuccess(t, r.IsZero())
}

func TestRegisterRotate(t *testing.T) {
	r := registers.NewRegister(0x85, "C")
	test.ExpectSuccess(t, r.RLC())
	test.ExpectEquality(t, r.Value(), uint8(0x0b))
	test.ExpectSuccess(t, r.RRC())
	test.ExpectEquality(t, r.Value(), uint8(0x85))

	test.ExpectSuccess(t, r.RL(false))
	test.ExpectEquality(t, r.Value(), uint8(0x0a))
	test.ExpectFailure(t, r.RR(true))
	test.ExpectEquality(t, r.Value(), uint8(0x85))

	test.ExpectSuccess(t, r.SRA())
	test.ExpectEquality(t, r.Value(), uint8(0xc2))
	test.ExpectFailure(t, r.SRL())
	test.ExpectEquality(t, r.Value(), uint8(0x61))
	test.ExpectFailure(t, r.SLA())
	test.ExpectEquality(t, r.Value(), uint8(0xc2))

	r.Swap()
	test.ExpectEquality(t, r.Value(), uint8(0x2c))
}

func TestFlags(t *testing.T) {
	var f registers.Flags
	f.Load(0xff)
	test.ExpectEquality(t, f.Value(), uint8(0xf0))
	test.ExpectEquality(t, f.String(), "ZNHC")

	f.Subtract = false
	f.Carry = false
	test.ExpectEquality(t, f.Value(), uint8(0xa0))
	test.ExpectEquality(t, f.String(), "ZnHc")

	f.Reset()
	test.ExpectEquality(t, f.Value(), uint8(0x00))
}

func TestAddress(t *testing.T) {
	pc := registers.NewAddress(0xfffe, "PC")
	pc.Add(3)
	test.ExpectEquality(t, pc.Address(), uint16(0x0001))
	test.ExpectEquality(t, pc.String(), "PC=0001")
}
