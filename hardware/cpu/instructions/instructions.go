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

package instructions

import (
	"fmt"
	"strings"
)

// Definition describes one instruction.
type Definition struct {
	OpCode   uint8
	Prefixed bool

	Operator Operator
	Operand1 Operand
	Operand2 Operand

	// condition of conditional instructions. None if the instruction is
	// unconditional
	Condition Operand

	// bit number for BIT, RES and SET. the vector address for RST
	Bit uint8

	Bytes int

	// number of cycles consumed. for conditional instructions this is the
	// cost when the condition is false
	Cycles int

	// number of cycles consumed when the branch is taken. only differs from
	// Cycles for conditional instructions
	BranchCycles int
}

// Mnemonic returns the assembly language form of the instruction.
func (defn Definition) Mnemonic() string {
	s := strings.Builder{}
	s.WriteString(defn.Operator.String())

	var ops []string
	switch defn.Operator {
	case BIT, RES, SET:
		ops = append(ops, fmt.Sprintf("%d", defn.Bit))
	case RST:
		ops = append(ops, fmt.Sprintf("$%02x", defn.Bit))
	}
	if defn.Condition != None {
		ops = append(ops, defn.Condition.String())
	}
	if defn.Operand1 != None {
		ops = append(ops, defn.Operand1.String())
	}
	if defn.Operand2 != None {
		ops = append(ops, defn.Operand2.String())
	}
	if len(ops) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(ops, ", "))
	}
	return s.String()
}

func (defn Definition) String() string {
	if defn.Prefixed {
		return fmt.Sprintf("cb %02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the instruction is a conditional branch.
func (defn Definition) IsConditional() bool {
	return defn.Condition != None
}

// Unprefixed and Prefixed are the instruction tables.
var (
	Unprefixed [256]Definition
	Prefixed   [256]Definition
)

func init() {
	for i := 0; i < 256; i++ {
		Unprefixed[i] = decodeUnprefixed(uint8(i))
		Prefixed[i] = decodePrefixed(uint8(i))
	}
}

// cost of an eight bit operand in addition to the cost of the instruction.
// an (HL) operand costs one memory access
func memCost(o Operand) int {
	if o == IndHL {
		return 4
	}
	return 0
}

func decodeUnprefixed(opcode uint8) Definition {
	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7
	p := y >> 1
	q := y & 1

	d := Definition{OpCode: opcode, Bytes: 1}

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				d.Operator, d.Cycles = NOP, 4
			case 1:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, IndImm16, SP, 20
			case 2:
				d.Operator, d.Operand1, d.Cycles = STOP, Imm8, 4
			case 3:
				d.Operator, d.Operand1, d.Cycles = JR, Signed8, 12
			default:
				d.Operator, d.Condition, d.Operand1 = JR, cc[y-4], Signed8
				d.Cycles, d.BranchCycles = 8, 12
			}
		case 1:
			if q == 0 {
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, rp[p], Imm16, 12
			} else {
				d.Operator, d.Operand1, d.Operand2, d.Cycles = ADD, HL, rp[p], 8
			}
		case 2:
			ind := [4]Operand{IndBC, IndDE, IndHLInc, IndHLDec}[p]
			if q == 0 {
				d.Operator, d.Operand1, d.Operand2 = LD, ind, A
			} else {
				d.Operator, d.Operand1, d.Operand2 = LD, A, ind
			}
			d.Cycles = 8
		case 3:
			if q == 0 {
				d.Operator = INC
			} else {
				d.Operator = DEC
			}
			d.Operand1, d.Cycles = rp[p], 8
		case 4:
			d.Operator, d.Operand1, d.Cycles = INC, r[y], 4+memCost(r[y])*2
		case 5:
			d.Operator, d.Operand1, d.Cycles = DEC, r[y], 4+memCost(r[y])*2
		case 6:
			d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, r[y], Imm8, 8+memCost(r[y])
		case 7:
			d.Operator, d.Cycles = accOps[y], 4
		}

	case 1:
		if y == 6 && z == 6 {
			d.Operator, d.Cycles = HALT, 4
		} else {
			d.Operator, d.Operand1, d.Operand2 = LD, r[y], r[z]
			d.Cycles = 4 + memCost(r[y]) + memCost(r[z])
		}

	case 2:
		d.Operator, d.Operand1, d.Operand2, d.Cycles = alu[y], A, r[z], 4+memCost(r[z])

	case 3:
		switch z {
		case 0:
			switch y {
			case 0, 1, 2, 3:
				d.Operator, d.Condition = RET, cc[y]
				d.Cycles, d.BranchCycles = 8, 20
			case 4:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, HighImm8, A, 12
			case 5:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = ADD, SP, Signed8, 16
			case 6:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, A, HighImm8, 12
			case 7:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, HL, SPSigned8, 12
			}
		case 1:
			if q == 0 {
				d.Operator, d.Operand1, d.Cycles = POP, rp2[p], 12
			} else {
				switch p {
				case 0:
					d.Operator, d.Cycles = RET, 16
				case 1:
					d.Operator, d.Cycles = RETI, 16
				case 2:
					d.Operator, d.Operand1, d.Cycles = JP, HL, 4
				case 3:
					d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, SP, HL, 8
				}
			}
		case 2:
			switch y {
			case 0, 1, 2, 3:
				d.Operator, d.Condition, d.Operand1 = JP, cc[y], Imm16
				d.Cycles, d.BranchCycles = 12, 16
			case 4:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, HighC, A, 8
			case 5:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, IndImm16, A, 16
			case 6:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, A, HighC, 8
			case 7:
				d.Operator, d.Operand1, d.Operand2, d.Cycles = LD, A, IndImm16, 16
			}
		case 3:
			switch y {
			case 0:
				d.Operator, d.Operand1, d.Cycles = JP, Imm16, 16
			case 1:
				d.Operator, d.Bytes, d.Cycles = Prefix, 2, 0
			case 6:
				d.Operator, d.Cycles = DI, 4
			case 7:
				d.Operator, d.Cycles = EI, 4
			default:
				d.Operator = Illegal
			}
		case 4:
			if y < 4 {
				d.Operator, d.Condition, d.Operand1 = CALL, cc[y], Imm16
				d.Cycles, d.BranchCycles = 12, 24
			} else {
				d.Operator = Illegal
			}
		case 5:
			if q == 0 {
				d.Operator, d.Operand1, d.Cycles = PUSH, rp2[p], 16
			} else if p == 0 {
				d.Operator, d.Operand1, d.Cycles = CALL, Imm16, 24
			} else {
				d.Operator = Illegal
			}
		case 6:
			d.Operator, d.Operand1, d.Operand2, d.Cycles = alu[y], A, Imm8, 8
		case 7:
			d.Operator, d.Bit, d.Cycles = RST, y*8, 16
		}
	}

	d.Bytes += d.Operand1.Length() + d.Operand2.Length()
	if d.BranchCycles == 0 {
		d.BranchCycles = d.Cycles
	}

	return d
}

func decodePrefixed(opcode uint8) Definition {
	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7

	d := Definition{
		OpCode:   opcode,
		Prefixed: true,
		Bytes:    2,
		Operand1: r[z],
	}

	switch x {
	case 0:
		d.Operator = rot[y]
		d.Cycles = 8 + memCost(r[z])*2
	case 1:
		d.Operator = BIT
		d.Bit = y
		d.Cycles = 8 + memCost(r[z])
	case 2:
		d.Operator = RES
		d.Bit = y
		d.Cycles = 8 + memCost(r[z])*2
	case 3:
		d.Operator = SET
		d.Bit = y
		d.Cycles = 8 + memCost(r[z])*2
	}
	d.BranchCycles = d.Cycles

	return d
}
