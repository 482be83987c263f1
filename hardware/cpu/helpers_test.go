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

package cpu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/test"
)

// the address at which test programs are placed.
const origin = 0x0100

type flatMemory struct {
	data [0x10000]uint8
}

func (mem *flatMemory) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

func (mem *flatMemory) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

func newCPU(program ...uint8) (*cpu.CPU, *flatMemory, *interrupts.Controller) {
	mem := &flatMemory{}
	copy(mem.data[origin:], program)
	ic := interrupts.NewController()
	mc := cpu.NewCPU(mem, ic)
	mc.PC.Load(origin)
	mc.SP.Load(0xfffe)
	return mc, mem, ic
}

// step executes one step and checks that the result is consistent with the
// instruction definition.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	return cycles
}
