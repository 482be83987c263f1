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

// Package timer implements the divider and the programmable timer.
//
// The divider is the upper eight bits of a sixteen bit counter that is
// incremented every clock cycle. The programmable timer (TIMA) is incremented
// whenever the selected bit of that counter falls from one to zero, while the
// timer is enabled. This means that writes to DIV and TAC can cause TIMA to
// increment "early", just as they do on the real hardware.
//
// When TIMA overflows it reads as zero for four cycles before being reloaded
// from TMA, at which point the timer interrupt is requested. Writing to TIMA
// during those four cycles cancels the reload.
package timer

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
)

// the number of cycles between TIMA overflowing and the reload from TMA.
const reloadDelay = 4

// PostBootCounter is the value of the internal counter at the point the boot
// ROM hands over to the cartridge.
const PostBootCounter = uint16(0xabcc)

// tacBits is the counter bit selected by the bottom two bits of TAC.
var tacBits = [4]uint16{
	0x0200, // 4096Hz (every 1024 cycles)
	0x0008, // 262144Hz (every 16 cycles)
	0x0020, // 65536Hz (every 64 cycles)
	0x0080, // 16384Hz (every 256 cycles)
}

// Timer implements the DIV, TIMA, TMA and TAC registers.
type Timer struct {
	irq interrupts.Requester

	// internal counter. DIV is the upper eight bits
	Counter uint16

	TIMA uint8
	TMA  uint8
	TAC  uint8

	// cycles remaining before TIMA is reloaded from TMA. zero if no reload is
	// pending
	Reload int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(irq interrupts.Requester) *Timer {
	return &Timer{irq: irq}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x", tmr.DIV(), tmr.TIMA, tmr.TMA, tmr.TAC|0xf8)
}

// Reset the timer to its power-on state.
func (tmr *Timer) Reset() {
	tmr.Counter = 0
	tmr.TIMA = 0
	tmr.TMA = 0
	tmr.TAC = 0
	tmr.Reload = 0
}

// DIV returns the current value of the divider.
func (tmr *Timer) DIV() uint8 {
	return uint8(tmr.Counter >> 8)
}

// signal is the input to the falling edge detector.
func (tmr *Timer) signal() bool {
	return tmr.TAC&0x04 == 0x04 && tmr.Counter&tacBits[tmr.TAC&0x03] != 0
}

func (tmr *Timer) increment() {
	tmr.TIMA++
	if tmr.TIMA == 0 {
		tmr.Reload = reloadDelay
	}
}

// Step the timer forward by the number of cycles.
func (tmr *Timer) Step(cycles int) {
	for i := 0; i < cycles; i++ {
		if tmr.Reload > 0 {
			tmr.Reload--
			if tmr.Reload == 0 {
				tmr.TIMA = tmr.TMA
				tmr.irq.Request(interrupts.Timer)
			}
		}

		old := tmr.signal()
		tmr.Counter++
		if old && !tmr.signal() {
			tmr.increment()
		}
	}
}

// ResetDivider sets the internal counter to zero, as happens when DIV is
// written to or when the STOP instruction is executed.
func (tmr *Timer) ResetDivider() {
	old := tmr.signal()
	tmr.Counter = 0
	if old {
		tmr.increment()
	}
}

// Read the timer register at address.
func (tmr *Timer) Read(address uint16) (uint8, bool) {
	switch address {
	case addresses.DIV:
		return tmr.DIV(), true
	case addresses.TIMA:
		return tmr.TIMA, true
	case addresses.TMA:
		return tmr.TMA, true
	case addresses.TAC:
		return tmr.TAC | 0xf8, true
	}
	return 0, false
}

// Write data to the timer register at address.
func (tmr *Timer) Write(address uint16, data uint8) bool {
	switch address {
	case addresses.DIV:
		tmr.ResetDivider()
	case addresses.TIMA:
		tmr.TIMA = data
		tmr.Reload = 0
	case addresses.TMA:
		tmr.TMA = data
	case addresses.TAC:
		old := tmr.signal()
		tmr.TAC = data & 0x07
		if old && !tmr.signal() {
			tmr.increment()
		}
	default:
		return false
	}
	return true
}
