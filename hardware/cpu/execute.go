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
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// execute the instruction. returns true if a conditional branch was taken.
func (mc *CPU) execute(defn *instructions.Definition) (bool, error) {
	switch defn.Operator {
	case instructions.NOP:

	case instructions.LD:
		return false, mc.load(defn)

	case instructions.INC, instructions.DEC:
		return false, mc.incdec(defn)

	case instructions.ADD:
		switch defn.Operand1 {
		case instructions.HL:
			mc.addHL(mc.read16(defn.Operand2))
		case instructions.SP:
			e, err := mc.read8(instructions.Signed8)
			if err != nil {
				return false, err
			}
			mc.SP.Load(mc.addSPSigned(e))
		default:
			return false, mc.arithmetic(defn)
		}

	case instructions.ADC, instructions.SUB, instructions.SBC, instructions.AND,
		instructions.XOR, instructions.OR, instructions.CP:
		return false, mc.arithmetic(defn)

	case instructions.RLCA:
		mc.F.Load(0)
		mc.F.Carry = mc.A.RLC()
	case instructions.RRCA:
		mc.F.Load(0)
		mc.F.Carry = mc.A.RRC()
	case instructions.RLA:
		c := mc.F.Carry
		mc.F.Load(0)
		mc.F.Carry = mc.A.RL(c)
	case instructions.RRA:
		c := mc.F.Carry
		mc.F.Load(0)
		mc.F.Carry = mc.A.RR(c)

	case instructions.DAA:
		mc.daa()
	case instructions.CPL:
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true
	case instructions.SCF:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
	case instructions.CCF:
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry

	case instructions.JR:
		e, err := mc.read8(instructions.Signed8)
		if err != nil {
			return false, err
		}
		if !mc.condition(defn.Condition) {
			return false, nil
		}
		mc.PC.Add(uint16(int8(e)))
		return defn.IsConditional(), nil

	case instructions.JP:
		if defn.Operand1 == instructions.HL {
			mc.PC.Load(mc.HL())
			return false, nil
		}
		address, err := mc.read16BitPC()
		if err != nil {
			return false, err
		}
		if !mc.condition(defn.Condition) {
			return false, nil
		}
		mc.PC.Load(address)
		return defn.IsConditional(), nil

	case instructions.CALL:
		address, err := mc.read16BitPC()
		if err != nil {
			return false, err
		}
		if !mc.condition(defn.Condition) {
			return false, nil
		}
		if err := mc.push16Bit(mc.PC.Address()); err != nil {
			return false, err
		}
		mc.PC.Load(address)
		return defn.IsConditional(), nil

	case instructions.RET:
		if !mc.condition(defn.Condition) {
			return false, nil
		}
		address, err := mc.pop16Bit()
		if err != nil {
			return false, err
		}
		mc.PC.Load(address)
		return defn.IsConditional(), nil

	case instructions.RETI:
		address, err := mc.pop16Bit()
		if err != nil {
			return false, err
		}
		mc.PC.Load(address)
		mc.ic.IME = true
		mc.imeDelay = 0

	case instructions.RST:
		if err := mc.push16Bit(mc.PC.Address()); err != nil {
			return false, err
		}
		mc.PC.Load(uint16(defn.Bit))

	case instructions.PUSH:
		return false, mc.push16Bit(mc.read16(defn.Operand1))

	case instructions.POP:
		v, err := mc.pop16Bit()
		if err != nil {
			return false, err
		}
		mc.write16(defn.Operand1, v)

	case instructions.HALT:
		switch {
		case mc.ic.Pending() == 0:
			mc.Halted = true
		case !mc.ic.IME:
			// an interrupt is pending but will not be serviced. the CPU does
			// not halt and the next opcode is read twice
			mc.haltBug = true
		}

	case instructions.STOP:
		if _, err := mc.read8BitPC(); err != nil {
			return false, err
		}
		return false, mc.stop()

	case instructions.DI:
		mc.ic.IME = false
		mc.imeDelay = 0

	case instructions.EI:
		if !mc.ic.IME && mc.imeDelay == 0 {
			mc.imeDelay = 2
		}

	case instructions.RLC, instructions.RRC, instructions.RL, instructions.RR,
		instructions.SLA, instructions.SRA, instructions.SWAP, instructions.SRL:
		return false, mc.rotate(defn)

	case instructions.BIT:
		v, err := mc.read8(defn.Operand1)
		if err != nil {
			return false, err
		}
		mc.F.Zero = v&(1<<defn.Bit) == 0
		mc.F.Subtract = false
		mc.F.HalfCarry = true

	case instructions.RES, instructions.SET:
		v, err := mc.read8(defn.Operand1)
		if err != nil {
			return false, err
		}
		if defn.Operator == instructions.RES {
			v &^= 1 << defn.Bit
		} else {
			v |= 1 << defn.Bit
		}
		return false, mc.write8(defn.Operand1, v)
	}

	return false, nil
}

func (mc *CPU) load(defn *instructions.Definition) error {
	switch {
	case defn.Operand1.Is16Bit() && defn.Operand2 == instructions.Imm16:
		v, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.write16(defn.Operand1, v)

	case defn.Operand1 == instructions.SP:
		mc.SP.Load(mc.read16(defn.Operand2))

	case defn.Operand1 == instructions.HL && defn.Operand2 == instructions.SPSigned8:
		e, err := mc.read8(instructions.Signed8)
		if err != nil {
			return err
		}
		mc.setHL(mc.addSPSigned(e))

	case defn.Operand2 == instructions.SP:
		address, err := mc.address(defn.Operand1)
		if err != nil {
			return err
		}
		sp := mc.SP.Address()
		if err := mc.write8Bit(address, uint8(sp)); err != nil {
			return err
		}
		return mc.write8Bit(address+1, uint8(sp>>8))

	default:
		v, err := mc.read8(defn.Operand2)
		if err != nil {
			return err
		}
		return mc.write8(defn.Operand1, v)
	}

	return nil
}

func (mc *CPU) incdec(defn *instructions.Definition) error {
	if defn.Operand1.Is16Bit() {
		v := mc.read16(defn.Operand1)
		if defn.Operator == instructions.INC {
			v++
		} else {
			v--
		}
		mc.write16(defn.Operand1, v)
		return nil
	}

	v, err := mc.read8(defn.Operand1)
	if err != nil {
		return err
	}
	acc := registers.NewRegister(v, "")
	if defn.Operator == instructions.INC {
		mc.F.HalfCarry = acc.Increment()
		mc.F.Subtract = false
	} else {
		mc.F.HalfCarry = acc.Decrement()
		mc.F.Subtract = true
	}
	mc.F.Zero = acc.IsZero()
	return mc.write8(defn.Operand1, acc.Value())
}

func (mc *CPU) arithmetic(defn *instructions.Definition) error {
	v, err := mc.read8(defn.Operand2)
	if err != nil {
		return err
	}

	switch defn.Operator {
	case instructions.ADD, instructions.ADC:
		mc.F.HalfCarry, mc.F.Carry = mc.A.Add(v, defn.Operator == instructions.ADC && mc.F.Carry)
		mc.F.Subtract = false
		mc.F.Zero = mc.A.IsZero()
	case instructions.SUB, instructions.SBC:
		mc.F.HalfCarry, mc.F.Carry = mc.A.Subtract(v, defn.Operator == instructions.SBC && mc.F.Carry)
		mc.F.Subtract = true
		mc.F.Zero = mc.A.IsZero()
	case instructions.CP:
		acc := mc.A
		mc.F.HalfCarry, mc.F.Carry = acc.Subtract(v, false)
		mc.F.Subtract = true
		mc.F.Zero = acc.IsZero()
	case instructions.AND:
		mc.A.AND(v)
		mc.F.Load(0)
		mc.F.Zero = mc.A.IsZero()
		mc.F.HalfCarry = true
	case instructions.XOR:
		mc.A.XOR(v)
		mc.F.Load(0)
		mc.F.Zero = mc.A.IsZero()
	case instructions.OR:
		mc.A.OR(v)
		mc.F.Load(0)
		mc.F.Zero = mc.A.IsZero()
	}

	return nil
}

func (mc *CPU) rotate(defn *instructions.Definition) error {
	v, err := mc.read8(defn.Operand1)
	if err != nil {
		return err
	}

	acc := registers.NewRegister(v, "")
	carry := false

	switch defn.Operator {
	case instructions.RLC:
		carry = acc.RLC()
	case instructions.RRC:
		carry = acc.RRC()
	case instructions.RL:
		carry = acc.RL(mc.F.Carry)
	case instructions.RR:
		carry = acc.RR(mc.F.Carry)
	case instructions.SLA:
		carry = acc.SLA()
	case instructions.SRA:
		carry = acc.SRA()
	case instructions.SWAP:
		acc.Swap()
	case instructions.SRL:
		carry = acc.SRL()
	}

	mc.F.Load(0)
	mc.F.Zero = acc.IsZero()
	mc.F.Carry = carry

	return mc.write8(defn.Operand1, acc.Value())
}
