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

// Package serial implements the serial port registers. There is no link
// cable. Transfers started with the internal clock complete after the time
// taken to shift eight bits and the received byte is always 0xff.
//
// Transferred bytes can be echoed to an io.Writer. Many test ROMs use the
// serial port to report their results.
package serial

import (
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/logger"
)

// the number of cycles taken to transfer one byte with the internal clock.
const transferCycles = 4096

// bits in the SC register.
const (
	scStart    = 0x80
	scInternal = 0x01
	scUnused   = 0x7e
)

// Serial implements the SB and SC registers.
type Serial struct {
	env logger.Permission
	irq interrupts.Requester

	SB uint8
	SC uint8

	// cycles remaining in the current transfer. zero if no transfer is in
	// progress
	remaining int

	echo io.Writer
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(env logger.Permission, irq interrupts.Requester) *Serial {
	return &Serial{env: env, irq: irq}
}

func (sr *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", sr.SB, sr.SC|scUnused)
}

// Reset the serial port.
func (sr *Serial) Reset() {
	sr.SB = 0
	sr.SC = 0
	sr.remaining = 0
}

// SetEcho sets the io.Writer that receives every transferred byte. A nil
// writer disables the echo. The echo is also disabled if the writer returns
// an error.
func (sr *Serial) SetEcho(w io.Writer) {
	sr.echo = w
}

// Step the serial port forward by the number of cycles.
func (sr *Serial) Step(cycles int) {
	if sr.remaining == 0 {
		return
	}
	sr.remaining -= cycles
	if sr.remaining <= 0 {
		sr.remaining = 0
		sr.SB = 0xff
		sr.SC &^= scStart
		sr.irq.Request(interrupts.Serial)
	}
}

// Read the serial register at address.
func (sr *Serial) Read(address uint16) (uint8, bool) {
	switch address {
	case addresses.SB:
		return sr.SB, true
	case addresses.SC:
		return sr.SC | scUnused, true
	}
	return 0, false
}

// Write data to the serial register at address.
func (sr *Serial) Write(address uint16, data uint8) bool {
	switch address {
	case addresses.SB:
		sr.SB = data
	case addresses.SC:
		sr.SC = data & (scStart | scInternal)
		if sr.SC == scStart|scInternal {
			if sr.echo != nil {
				if _, err := sr.echo.Write([]byte{sr.SB}); err != nil {
					logger.Logf(sr.env, "serial", "echo disabled: %v", err)
					sr.echo = nil
				}
			}
			sr.remaining = transferCycles
		}
	default:
		return false
	}
	return true
}
