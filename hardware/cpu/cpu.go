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
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
)

// InvalidOpcode is returned when the CPU encounters an illegal opcode.
const InvalidOpcode = "cpu: invalid opcode (%#02x) at %#04x"

// cycle costs of the non-instruction steps.
const (
	idleCycles     = 4
	dispatchCycles = 20
	wakeCycles     = 4
)

// CPU implements the LR35902 as found in the DMG.
type CPU struct {
	mem cpubus.Memory
	ic  *interrupts.Controller

	A registers.Register
	F registers.Flags
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	SP registers.Address
	PC registers.Address

	// the CPU is waiting for an interrupt after a HALT instruction
	Halted bool

	// the CPU is waiting for a joypad interrupt after a STOP instruction
	Stopped bool

	// the CPU has encountered an illegal opcode. requires a Reset()
	Killed  bool
	killErr error

	// the next opcode fetch does not increment the program counter
	haltBug bool

	// the number of steps before the IME flag is set by EI
	imeDelay int

	// last result of ExecuteInstruction()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem cpubus.Memory, ic *interrupts.Controller) *CPU {
	mc := &CPU{
		mem: mem,
		ic:  ic,
		A:   registers.NewRegister(0, "A"),
		B:   registers.NewRegister(0, "B"),
		C:   registers.NewRegister(0, "C"),
		D:   registers.NewRegister(0, "D"),
		E:   registers.NewRegister(0, "E"),
		H:   registers.NewRegister(0, "H"),
		L:   registers.NewRegister(0, "L"),
		SP:  registers.NewAddress(0, "SP"),
		PC:  registers.NewAddress(0, "PC"),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s=%s %s %s %s %s %s %s %s %s IME=%v",
		mc.PC, mc.A, mc.F.Label(), mc.F, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L, mc.SP,
		mc.LastResult, mc.ic.IME)
}

// Reset the CPU to its power-on state. The program counter is zero.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.F.Reset()
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.SP.Load(0)
	mc.PC.Load(0)
	mc.Halted = false
	mc.Stopped = false
	mc.Killed = false
	mc.killErr = nil
	mc.haltBug = false
	mc.imeDelay = 0
	mc.LastResult.Reset()
}

// PostBoot sets the registers to the values left by the boot ROM.
func (mc *CPU) PostBoot() {
	mc.A.Load(0x01)
	mc.F.Load(0xb0)
	mc.B.Load(0x00)
	mc.C.Load(0x13)
	mc.D.Load(0x00)
	mc.E.Load(0xd8)
	mc.H.Load(0x01)
	mc.L.Load(0x4d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
}

// register pairs.

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B.Value())<<8 | uint16(mc.C.Value())
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D.Value())<<8 | uint16(mc.E.Value())
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H.Value())<<8 | uint16(mc.L.Value())
}

// AF returns the value of the AF register pair.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

func (mc *CPU) setBC(v uint16) {
	mc.B.Load(uint8(v >> 8))
	mc.C.Load(uint8(v))
}

func (mc *CPU) setDE(v uint16) {
	mc.D.Load(uint8(v >> 8))
	mc.E.Load(uint8(v))
}

func (mc *CPU) setHL(v uint16) {
	mc.H.Load(uint8(v >> 8))
	mc.L.Load(uint8(v))
}

func (mc *CPU) setAF(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.F.Load(uint8(v))
}

// memory access.

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, data uint8) error {
	return mc.mem.Write(address, data)
}

// read8BitPC reads the byte at the program counter and advances the
// program counter.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) push16Bit(v uint16) error {
	mc.SP.Add(0xffff)
	if err := mc.write8Bit(mc.SP.Address(), uint8(v>>8)); err != nil {
		return err
	}
	mc.SP.Add(0xffff)
	return mc.write8Bit(mc.SP.Address(), uint8(v))
}

func (mc *CPU) pop16Bit() (uint16, error) {
	lo, err := mc.read8Bit(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	hi, err := mc.read8Bit(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo), nil
}

// ExecuteInstruction performs one step of the CPU and returns the number of
// cycles consumed.
func (mc *CPU) ExecuteInstruction() (int, error) {
	if mc.Killed {
		return 0, mc.killErr
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.Stopped {
		if mc.ic.IF&interrupts.Joypad.Bit() == 0 {
			return mc.idle()
		}
		mc.Stopped = false
	}

	wake := 0
	if mc.Halted {
		if mc.ic.Pending() == 0 {
			return mc.idle()
		}
		mc.Halted = false
		wake = wakeCycles
	}

	if mc.ic.IME && mc.ic.Pending() != 0 {
		return mc.dispatch(wake)
	}

	if wake > 0 {
		return mc.idle()
	}

	cycles, err := mc.executeInstruction()
	if err != nil {
		return cycles, err
	}

	// EI takes effect after the instruction that follows it
	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.ic.IME = true
		}
	}

	return cycles, nil
}

func (mc *CPU) idle() (int, error) {
	mc.LastResult.Idle = true
	mc.LastResult.Cycles = idleCycles
	mc.LastResult.Final = true
	return idleCycles, nil
}

// dispatch the highest priority pending interrupt.
func (mc *CPU) dispatch(extra int) (int, error) {
	pending := mc.ic.Pending()
	for i := interrupts.Interrupt(0); i < interrupts.NumInterrupts; i++ {
		if pending&i.Bit() == 0 {
			continue
		}
		mc.ic.IME = false
		mc.imeDelay = 0
		mc.ic.Acknowledge(i)

		// a HALT that failed to halt because of an EI in the previous
		// instruction. the interrupt returns to the HALT instruction
		ret := mc.PC.Address()
		if mc.haltBug {
			mc.haltBug = false
			ret--
		}
		if err := mc.push16Bit(ret); err != nil {
			return 0, err
		}
		mc.PC.Load(i.Vector())

		mc.LastResult.Interrupted = true
		mc.LastResult.Interrupt = i.Vector()
		mc.LastResult.Cycles = dispatchCycles + extra
		mc.LastResult.Final = true
		return mc.LastResult.Cycles, nil
	}
	return 0, nil
}

func (mc *CPU) kill(err error) (int, error) {
	mc.Killed = true
	mc.killErr = err
	return 0, err
}

// executeInstruction fetches, decodes and executes the instruction at the
// program counter.
func (mc *CPU) executeInstruction() (int, error) {
	var opcode uint8
	var err error

	if mc.haltBug {
		mc.haltBug = false
		mc.LastResult.HaltBug = true
		opcode, err = mc.read8Bit(mc.PC.Address())
		mc.LastResult.ByteCount++
	} else {
		opcode, err = mc.read8BitPC()
	}
	if err != nil {
		return mc.kill(err)
	}

	defn := &instructions.Unprefixed[opcode]
	if defn.Operator == instructions.Prefix {
		opcode, err = mc.read8BitPC()
		if err != nil {
			return mc.kill(err)
		}
		defn = &instructions.Prefixed[opcode]
	}

	mc.LastResult.Defn = defn

	if defn.Operator == instructions.Illegal {
		return mc.kill(curated.Errorf(InvalidOpcode, defn.OpCode, mc.LastResult.Address))
	}

	taken, err := mc.execute(defn)
	if err != nil {
		return mc.kill(err)
	}

	mc.LastResult.BranchTaken = taken
	if taken {
		mc.LastResult.Cycles = defn.BranchCycles
	} else {
		mc.LastResult.Cycles = defn.Cycles
	}
	mc.LastResult.Final = true

	return mc.LastResult.Cycles, nil
}

// stop resets the divider through the bus, in the same way as a write to
// the DIV register.
func (mc *CPU) stop() error {
	mc.Stopped = true
	return mc.write8Bit(addresses.DIV, 0)
}
