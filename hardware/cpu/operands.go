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

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// register returns the register for the eight bit register operands. returns
// nil for (HL).
func (mc *CPU) register(o instructions.Operand) *registers.Register {
	switch o {
	case instructions.A:
		return &mc.A
	case instructions.B:
		return &mc.B
	case instructions.C:
		return &mc.C
	case instructions.D:
		return &mc.D
	case instructions.E:
		return &mc.E
	case instructions.H:
		return &mc.H
	case instructions.L:
		return &mc.L
	}
	return nil
}

// address returns the memory address of a memory operand. immediate
// addresses are read from the program counter and (HL+) and (HL-) update HL.
func (mc *CPU) address(o instructions.Operand) (uint16, error) {
	switch o {
	case instructions.IndHL:
		return mc.HL(), nil
	case instructions.IndBC:
		return mc.BC(), nil
	case instructions.IndDE:
		return mc.DE(), nil
	case instructions.IndHLInc:
		hl := mc.HL()
		mc.setHL(hl + 1)
		return hl, nil
	case instructions.IndHLDec:
		hl := mc.HL()
		mc.setHL(hl - 1)
		return hl, nil
	case instructions.IndImm16:
		return mc.read16BitPC()
	case instructions.HighImm8:
		v, err := mc.read8BitPC()
		return 0xff00 | uint16(v), err
	case instructions.HighC:
		return 0xff00 | uint16(mc.C.Value()), nil
	}
	return 0, curated.Errorf("cpu: operand %s is not a memory operand", o)
}

// read8 returns the value of an eight bit operand.
func (mc *CPU) read8(o instructions.Operand) (uint8, error) {
	if r := mc.register(o); r != nil {
		return r.Value(), nil
	}
	switch o {
	case instructions.Imm8, instructions.Signed8:
		return mc.read8BitPC()
	}
	address, err := mc.address(o)
	if err != nil {
		return 0, err
	}
	return mc.read8Bit(address)
}

// write8 stores the value in an eight bit operand.
func (mc *CPU) write8(o instructions.Operand, v uint8) error {
	if r := mc.register(o); r != nil {
		r.Load(v)
		return nil
	}
	address, err := mc.address(o)
	if err != nil {
		return err
	}
	return mc.write8Bit(address, v)
}

// read16 returns the value of a sixteen bit register pair operand.
func (mc *CPU) read16(o instructions.Operand) uint16 {
	switch o {
	case instructions.BC:
		return mc.BC()
	case instructions.DE:
		return mc.DE()
	case instructions.HL:
		return mc.HL()
	case instructions.SP:
		return mc.SP.Address()
	case instructions.AF:
		return mc.AF()
	}
	return 0
}

// write16 stores the value in a sixteen bit register pair operand.
func (mc *CPU) write16(o instructions.Operand, v uint16) {
	switch o {
	case instructions.BC:
		mc.setBC(v)
	case instructions.DE:
		mc.setDE(v)
	case instructions.HL:
		mc.setHL(v)
	case instructions.SP:
		mc.SP.Load(v)
	case instructions.AF:
		mc.setAF(v)
	}
}

// condition returns whether the condition of the instruction is met.
// unconditional instructions always return true.
func (mc *CPU) condition(o instructions.Operand) bool {
	switch o {
	case instructions.CondNZ:
		return !mc.F.Zero
	case instructions.CondZ:
		return mc.F.Zero
	case instructions.CondNC:
		return !mc.F.Carry
	case instructions.CondC:
		return mc.F.Carry
	}
	return true
}
