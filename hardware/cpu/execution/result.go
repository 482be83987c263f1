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

// Package execution tracks the result of the most recently executed CPU
// step. The result can be checked for consistency against the instruction
// definition with the IsValid() function.
package execution

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Result records the state and outcome of a CPU step.
type Result struct {
	// address of the first byte of the instruction
	Address uint16

	// nil if the step did not execute an instruction
	Defn *instructions.Definition

	// number of bytes read from the program counter. includes the prefix
	// byte of prefixed instructions
	ByteCount int

	// the number of cycles consumed by the step
	Cycles int

	// whether a conditional branch was taken
	BranchTaken bool

	// the step dispatched an interrupt instead of executing an instruction.
	// the Interrupt field is the vector jumped to
	Interrupted bool
	Interrupt   uint16

	// the step was a halted or stopped cycle
	Idle bool

	// the opcode was fetched without incrementing the program counter
	HaltBug bool

	// the step has completed
	Final bool
}

// Reset the result.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Interrupted:
		return fmt.Sprintf("interrupt -> %#04x (%d cycles)", r.Interrupt, r.Cycles)
	case r.Idle:
		return fmt.Sprintf("idle (%d cycles)", r.Cycles)
	case r.Defn == nil:
		return "no instruction"
	}
	return fmt.Sprintf("%#04x %s (%d cycles)", r.Address, r.Defn.Mnemonic(), r.Cycles)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Interrupted || r.Idle {
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no definition")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.BranchTaken {
		expected = r.Defn.BranchCycles
	}
	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for [%s] (%d instead of %d)", r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
