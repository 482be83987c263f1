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

// Package interrupts holds the interrupt state of the console: the enable
// register (IE), the request register (IF) and the master enable flag (IME).
//
// The package contains no priority logic. Components request interrupts with
// the Request() function and the CPU acknowledges them when it services them.
package interrupts

import (
	"fmt"
	"strings"
)

// Interrupt identifies one of the five interrupt sources. The value of the
// Interrupt is also the bit number in the IE and IF registers.
type Interrupt int

// List of valid Interrupt values in order of priority.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
)

// NumInterrupts is the number of interrupt sources.
const NumInterrupts = 5

// Mask is the mask of valid bits in the IE and IF registers.
const Mask = uint8(0x1f)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Bit returns the bit pattern of the interrupt in the IE and IF registers.
func (i Interrupt) Bit() uint8 {
	return 0x01 << uint(i)
}

// Vector returns the address the CPU jumps to when servicing the interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Requester is implemented by types that can receive interrupt requests.
type Requester interface {
	Request(Interrupt)
}

// Controller is the interrupt state shared by the CPU and the devices that
// raise interrupts.
type Controller struct {
	// interrupt enable. 0xffff in the memory map
	IE uint8

	// interrupt request. 0xff0f in the memory map. only the bottom five bits
	// are stored
	IF uint8

	// interrupt master enable. not addressable
	IME bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("IE=%02x IF=%02x IME=", ic.IE, ic.IF))
	if ic.IME {
		s.WriteString("on")
	} else {
		s.WriteString("off")
	}
	return s.String()
}

// Reset the interrupt state.
func (ic *Controller) Reset() {
	ic.IE = 0
	ic.IF = 0
	ic.IME = false
}

// Request sets the request bit for the interrupt.
func (ic *Controller) Request(i Interrupt) {
	ic.IF |= i.Bit()
}

// Acknowledge clears the request bit for the interrupt.
func (ic *Controller) Acknowledge(i Interrupt) {
	ic.IF &^= i.Bit()
}

// Pending returns the interrupts that are both requested and enabled. The
// IME flag is not considered.
func (ic *Controller) Pending() uint8 {
	return ic.IE & ic.IF & Mask
}

// ReadIF returns the IF register as seen by the CPU. The unused upper bits
// always read as set.
func (ic *Controller) ReadIF() uint8 {
	return ic.IF | ^Mask
}

// WriteIF sets the IF register.
func (ic *Controller) WriteIF(data uint8) {
	ic.IF = data & Mask
}
