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
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestCycleCounts(t *testing.T) {
	for i := range instructions.Unprefixed {
		defn := instructions.Unprefixed[i]
		if defn.Operator == instructions.Illegal || defn.Operator == instructions.Prefix {
			continue
		}

		mc, _, _ := newCPU(defn.OpCode)
		cycles := step(t, mc)

		// with all flags clear the NZ and NC conditions are true
		expected := defn.Cycles
		if defn.Condition == instructions.CondNZ || defn.Condition == instructions.CondNC {
			expected = defn.BranchCycles
		}
		test.ExpectEquality(t, cycles, expected, defn.Mnemonic())
	}

	for i := range instructions.Prefixed {
		defn := instructions.Prefixed[i]
		mc, _, _ := newCPU(0xcb, defn.OpCode)
		cycles := step(t, mc)
		test.ExpectEquality(t, cycles, defn.Cycles, defn.Mnemonic())
		test.ExpectEquality(t, mc.PC.Address(), uint16(origin+2), defn.Mnemonic())
	}
}

func TestInvalidOpcode(t *testing.T) {
	mc, _, _ := newCPU(0xd3)
	_, err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidOpcode))
	test.ExpectSuccess(t, mc.Killed)

	// the CPU stays dead until it is reset
	_, again := mc.ExecuteInstruction()
	test.ExpectEquality(t, again.Error(), err.Error())

	mc.Reset()
	test.ExpectFailure(t, mc.Killed)
}

func TestBranches(t *testing.T) {
	// CALL $0200 and RET
	mc, mem, _ := newCPU(0xcd, 0x00, 0x02)
	mem.data[0x0200] = 0xc9
	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffc))
	test.ExpectEquality(t, mem.data[0xfffd], uint8(0x01))
	test.ExpectEquality(t, mem.data[0xfffc], uint8(0x03))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0103))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffe))

	// JR NZ is not taken when the zero flag is set. JR Z is taken
	mc, _, _ = newCPU(0x20, 0x10, 0x28, 0xfc)
	mc.F.Zero = true
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectFailure(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectSuccess(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0100))

	// RET C not taken
	mc, _, _ = newCPU(0xd8)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))

	// RST $38
	mc, _, _ = newCPU(0xff)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0038))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffc))

	// JP HL
	mc, _, _ = newCPU(0xe9)
	mc.H.Load(0x12)
	mc.L.Load(0x34)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
}

func TestStack(t *testing.T) {
	// PUSH BC; POP AF. the low nibble of F is always zero
	mc, _, _ := newCPU(0xc5, 0xf1)
	mc.B.Load(0x12)
	mc.C.Load(0xff)
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mc.AF(), uint16(0x12f0))
	test.ExpectEquality(t, mc.F.String(), "ZNHC")
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffe))
}

func TestLoads(t *testing.T) {
	// LD (HL+), A; LD A, (HL-)
	mc, mem, _ := newCPU(0x22, 0x3a)
	mc.A.Load(0x42)
	mc.H.Load(0xc0)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mem.data[0xc000], uint8(0x42))
	test.ExpectEquality(t, mc.HL(), uint16(0xc001))
	mem.data[0xc001] = 0x99
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, mc.HL(), uint16(0xc000))

	// LDH ($80), A; LD A, ($FF00+C)
	mc, mem, _ = newCPU(0xe0, 0x80, 0xf2)
	mc.A.Load(0x55)
	mc.C.Load(0x80)
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mem.data[0xff80], uint8(0x55))
	mc.A.Load(0)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))

	// LD ($C000), SP; LD A, ($C001)
	mc, mem, _ = newCPU(0x08, 0x00, 0xc0, 0xfa, 0x01, 0xc0)
	mc.SP.Load(0xbeef)
	test.ExpectEquality(t, step(t, mc), 20)
	test.ExpectEquality(t, mem.data[0xc000], uint8(0xef))
	test.ExpectEquality(t, mem.data[0xc001], uint8(0xbe))
	test.ExpectEquality(t, step(t, mc), 16)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xbe))

	// LD HL, n16; LD SP, HL; LD (HL), n8
	mc, mem, _ = newCPU(0x21, 0x00, 0xd0, 0xf9, 0x36, 0x77)
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xd000))
	test.ExpectEquality(t, step(t, mc), 12)
	test.ExpectEquality(t, mem.data[0xd000], uint8(0x77))
}

func TestInterruptPriority(t *testing.T) {
	mc, mem, ic := newCPU()
	ic.IE = 0x1f
	ic.IF = interrupts.VBlank.Bit() | interrupts.Timer.Bit()
	ic.IME = true

	test.ExpectEquality(t, step(t, mc), 20)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
	test.ExpectEquality(t, ic.IF, interrupts.Timer.Bit())
	test.ExpectFailure(t, ic.IME)
	test.ExpectEquality(t, mem.data[0xfffd], uint8(0x01))
	test.ExpectEquality(t, mem.data[0xfffc], uint8(0x00))

	// with IME off the pending timer interrupt is not serviced
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0041))

	ic.IME = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0050))
	test.ExpectEquality(t, ic.IF, uint8(0))
}

func TestEIDelay(t *testing.T) {
	// EI; NOP; NOP
	mc, mem, ic := newCPU(0xfb, 0x00, 0x00)
	ic.IE = interrupts.VBlank.Bit()
	ic.IF = interrupts.VBlank.Bit()

	step(t, mc)
	test.ExpectFailure(t, ic.IME)

	// the instruction following EI is always executed
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.Interrupted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))
	test.ExpectSuccess(t, ic.IME)

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
	test.ExpectEquality(t, mem.data[0xfffc], uint8(0x02))

	// DI cancels a pending EI
	mc, _, ic = newCPU(0xfb, 0xf3, 0x00)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, ic.IME)

	// RETI enables interrupts immediately
	mc, mem, ic = newCPU(0xd9)
	mem.data[0xfffe] = 0x00
	mem.data[0xffff] = 0x02
	mc.SP.Load(0xfffe)
	step(t, mc)
	test.ExpectSuccess(t, ic.IME)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
}

func TestHalt(t *testing.T) {
	// wake with IME set
	mc, _, ic := newCPU(0x76)
	ic.IE = interrupts.Timer.Bit()
	ic.IME = true

	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectSuccess(t, mc.LastResult.Idle)

	ic.Request(interrupts.Timer)
	test.ExpectEquality(t, step(t, mc), 24)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0050))

	// wake with IME clear. execution continues after the HALT
	mc, _, ic = newCPU(0x76, 0x04)
	ic.IE = interrupts.Timer.Bit()
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	ic.Request(interrupts.Timer)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(1))
	test.ExpectEquality(t, ic.IF, interrupts.Timer.Bit())
}

func TestHaltBug(t *testing.T) {
	// HALT; INC B
	mc, _, ic := newCPU(0x76, 0x04)
	ic.IE = interrupts.VBlank.Bit()
	ic.IF = interrupts.VBlank.Bit()

	step(t, mc)
	test.ExpectFailure(t, mc.Halted)

	// INC B is executed twice
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.HaltBug)
	test.ExpectEquality(t, mc.B.Value(), uint8(1))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))

	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.HaltBug)
	test.ExpectEquality(t, mc.B.Value(), uint8(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))
}

func TestHaltAfterEI(t *testing.T) {
	// EI; HALT; NOP
	mc, mem, ic := newCPU(0xfb, 0x76, 0x00)
	ic.IE = interrupts.VBlank.Bit()
	ic.IF = interrupts.VBlank.Bit()

	// JP $1234 in the VBlank handler and RETI at the destination
	copy(mem.data[0x0040:], []uint8{0xc3, 0x34, 0x12})
	mem.data[0x1234] = 0xd9

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectSuccess(t, ic.IME)

	// the return address is the HALT instruction
	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
	test.ExpectEquality(t, mem.data[0xfffc], uint8(0x01))
	test.ExpectEquality(t, mem.data[0xfffd], uint8(0x01))

	// the handler is decoded normally
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.HaltBug)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0101))

	// HALT runs again and with nothing pending the CPU halts
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))
}

func TestStop(t *testing.T) {
	mc, mem, ic := newCPU(0x10, 0x00, 0x04)
	mem.data[0xff04] = 0x55

	step(t, mc)
	test.ExpectSuccess(t, mc.Stopped)
	test.ExpectEquality(t, mem.data[0xff04], uint8(0))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))

	step(t, mc)
	test.ExpectSuccess(t, mc.LastResult.Idle)

	// a joypad request wakes the CPU even when the interrupt is not enabled
	ic.Request(interrupts.Joypad)
	step(t, mc)
	test.ExpectFailure(t, mc.Stopped)
	test.ExpectEquality(t, mc.B.Value(), uint8(1))
}

func TestPostBoot(t *testing.T) {
	mc, _, _ := newCPU()
	mc.PostBoot()
	test.ExpectEquality(t, mc.AF(), uint16(0x01b0))
	test.ExpectEquality(t, mc.BC(), uint16(0x0013))
	test.ExpectEquality(t, mc.DE(), uint16(0x00d8))
	test.ExpectEquality(t, mc.HL(), uint16(0x014d))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0xfffe))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0100))
	test.ExpectSuccess(t, strings.Contains(mc.String(), "PC=0100"))
}
