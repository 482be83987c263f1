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

// Operand describes where the data for an instruction comes from or goes to.
type Operand int

// List of valid Operand values. The eight bit register operands are in the
// same order as the register encoding in the opcode.
const (
	None Operand = iota

	B
	C
	D
	E
	H
	L
	IndHL // (HL)
	A

	BC
	DE
	HL
	SP
	AF

	Imm8      // n8
	Imm16     // n16
	Signed8   // e8
	IndBC     // (BC)
	IndDE     // (DE)
	IndHLInc  // (HL+)
	IndHLDec  // (HL-)
	IndImm16  // (a16)
	HighImm8  // (FF00+a8)
	HighC     // (FF00+C)
	SPSigned8 // SP+e8
	CondNZ    // condition
	CondZ     // condition
	CondNC    // condition
	CondC     // condition
)

// r is the table of eight bit register operands, indexed by the three bit
// register field of the opcode.
var r = [8]Operand{B, C, D, E, H, L, IndHL, A}

// rp and rp2 are the tables of sixteen bit register operands, indexed by the
// two bit register pair field of the opcode.
var (
	rp  = [4]Operand{BC, DE, HL, SP}
	rp2 = [4]Operand{BC, DE, HL, AF}
)

// cc is the table of conditions.
var cc = [4]Operand{CondNZ, CondZ, CondNC, CondC}

func (o Operand) String() string {
	switch o {
	case None:
		return ""
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case IndHL:
		return "(HL)"
	case A:
		return "A"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case AF:
		return "AF"
	case Imm8:
		return "n8"
	case Imm16:
		return "n16"
	case Signed8:
		return "e8"
	case IndBC:
		return "(BC)"
	case IndDE:
		return "(DE)"
	case IndHLInc:
		return "(HL+)"
	case IndHLDec:
		return "(HL-)"
	case IndImm16:
		return "(a16)"
	case HighImm8:
		return "(a8)"
	case HighC:
		return "(C)"
	case SPSigned8:
		return "SP+e8"
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return "?"
}

// Is8Bit returns true if the operand is an eight bit register, including
// (HL).
func (o Operand) Is8Bit() bool {
	return o >= B && o <= A
}

// Is16Bit returns true if the operand is a sixteen bit register pair.
func (o Operand) Is16Bit() bool {
	return o >= BC && o <= AF
}

// IsCondition returns true if the operand is a branch condition.
func (o Operand) IsCondition() bool {
	return o >= CondNZ && o <= CondC
}

// IsMemory returns true if the operand causes a memory access.
func (o Operand) IsMemory() bool {
	switch o {
	case IndHL, IndBC, IndDE, IndHLInc, IndHLDec, IndImm16, HighImm8, HighC:
		return true
	}
	return false
}

// Length returns the number of bytes the operand adds to the instruction.
func (o Operand) Length() int {
	switch o {
	case Imm8, Signed8, HighImm8, SPSigned8:
		return 1
	case Imm16, IndImm16:
		return 2
	}
	return 0
}
