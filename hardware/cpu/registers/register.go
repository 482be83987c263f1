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

import "fmt"

// Register is an eight bit general purpose register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%02x", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Add value to register. Returns the half-carry (from bit 3) and carry (from
// bit 7) states.
func (r *Register) Add(val uint8, carry bool) (half bool, rcarry bool) {
	var c uint8
	if carry {
		c = 1
	}
	v := r.value
	sum := uint16(v) + uint16(val) + uint16(c)
	r.value = uint8(sum)
	return (v&0x0f)+(val&0x0f)+c > 0x0f, sum > 0xff
}

// Subtract value from register. Returns the half-borrow (from bit 4) and
// borrow states.
func (r *Register) Subtract(val uint8, carry bool) (half bool, borrow bool) {
	var c uint8
	if carry {
		c = 1
	}
	v := r.value
	r.value = v - val - c
	return int(v&0x0f)-int(val&0x0f)-int(c) < 0, int(v)-int(val)-int(c) < 0
}

// Increment register. Returns the half-carry state.
func (r *Register) Increment() bool {
	half := r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register. Returns the half-borrow state.
func (r *Register) Decrement() bool {
	half := r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// RLC rotates the register one bit to the left. Bit 7 is copied to bit 0 and
// is also returned as the carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates the register one bit to the right. Bit 0 is copied to bit 7
// and is also returned as the carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates the register one bit to the left through the carry.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates the register one bit to the right through the carry.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA shifts the register one bit to the left. Returns the bit shifted out.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts the register one bit to the right, preserving bit 7. Returns
// the bit shifted out.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL shifts the register one bit to the right. Returns the bit shifted out.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap the upper and lower nibbles.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}
