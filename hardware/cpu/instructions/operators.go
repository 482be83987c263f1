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

// Operator is the operation performed by an instruction.
type Operator int

// List of valid Operator values.
const (
	Illegal Operator = iota
	NOP
	LD
	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	RLCA
	RRCA
	RLA
	RRA
	DAA
	CPL
	SCF
	CCF
	JR
	JP
	CALL
	RET
	RETI
	RST
	PUSH
	POP
	HALT
	STOP
	DI
	EI
	Prefix

	// prefixed operators
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var operatorNames = map[Operator]string{
	Illegal: "ILLEGAL", NOP: "NOP", LD: "LD", INC: "INC", DEC: "DEC",
	ADD: "ADD", ADC: "ADC", SUB: "SUB", SBC: "SBC", AND: "AND", XOR: "XOR",
	OR: "OR", CP: "CP", RLCA: "RLCA", RRCA: "RRCA", RLA: "RLA", RRA: "RRA",
	DAA: "DAA", CPL: "CPL", SCF: "SCF", CCF: "CCF", JR: "JR", JP: "JP",
	CALL: "CALL", RET: "RET", RETI: "RETI", RST: "RST", PUSH: "PUSH",
	POP: "POP", HALT: "HALT", STOP: "STOP", DI: "DI", EI: "EI",
	Prefix: "PREFIX", RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR",
	SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL", BIT: "BIT",
	RES: "RES", SET: "SET",
}

func (o Operator) String() string {
	if s, ok := operatorNames[o]; ok {
		return s
	}
	return "unknown operator"
}

// the ALU operators indexed by the three bit operation field of the opcode.
var alu = [8]Operator{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}

// the accumulator rotates and flag operations indexed by the y field.
var accOps = [8]Operator{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

// the prefixed rotate and shift operators indexed by the y field.
var rot = [8]Operator{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
