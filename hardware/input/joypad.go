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

// Package input implements the joypad register. The external input poller
// sets the state of the buttons with Press(), Release() or Set() and the CPU
// reads the state through the P1 register.
package input

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
)

// Button identifies one of the eight buttons.
type Button int

// List of valid Button values.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return "unknown button"
}

// the select lines in P1. a line is selected when the bit is zero.
const (
	selectDirections = 0x10
	selectButtons    = 0x20
	selectMask       = selectDirections | selectButtons
)

// Joypad is the P1 register and the state of the buttons.
type Joypad struct {
	irq interrupts.Requester

	pressed [NumButtons]bool

	// the select bits as last written by the CPU
	selection uint8

	// the low nibble of the last value, for edge detection
	lines uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(irq interrupts.Requester) *Joypad {
	jp := &Joypad{irq: irq}
	jp.Reset()
	return jp
}

func (jp *Joypad) String() string {
	s := strings.Builder{}
	for b := Button(0); b < NumButtons; b++ {
		if jp.pressed[b] {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	if s.Len() == 0 {
		return fmt.Sprintf("P1=%02x", jp.Read())
	}
	return fmt.Sprintf("P1=%02x [%s]", jp.Read(), s.String())
}

// Reset releases all buttons and deselects both lines.
func (jp *Joypad) Reset() {
	jp.pressed = [NumButtons]bool{}
	jp.selection = selectMask
	jp.lines = 0x0f
}

// value of the low nibble. a pressed button on a selected line reads as zero.
func (jp *Joypad) nibble() uint8 {
	v := uint8(0x0f)
	if jp.selection&selectDirections == 0 {
		for b := Right; b <= Down; b++ {
			if jp.pressed[b] {
				v &^= 1 << uint(b)
			}
		}
	}
	if jp.selection&selectButtons == 0 {
		for b := A; b <= Start; b++ {
			if jp.pressed[b] {
				v &^= 1 << uint(b-A)
			}
		}
	}
	return v
}

// update requests the joypad interrupt if any line has gone from high to low.
func (jp *Joypad) update() {
	v := jp.nibble()
	if jp.lines&^v != 0 {
		jp.irq.Request(interrupts.Joypad)
	}
	jp.lines = v
}

// Read the P1 register.
func (jp *Joypad) Read() uint8 {
	return 0xc0 | jp.selection | jp.nibble()
}

// Write the P1 register. Only the select bits are writable.
func (jp *Joypad) Write(data uint8) {
	jp.selection = data & selectMask
	jp.update()
}

// Set the state of the button.
func (jp *Joypad) Set(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	jp.pressed[b] = pressed
	jp.update()
}

// Press the button.
func (jp *Joypad) Press(b Button) {
	jp.Set(b, true)
}

// Release the button.
func (jp *Joypad) Release(b Button) {
	jp.Set(b, false)
}

// IsPressed returns true if the button is pressed.
func (jp *Joypad) IsPressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return jp.pressed[b]
}
