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

package serial_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestTransfer(t *testing.T) {
	ic := interrupts.NewController()
	sr := serial.NewSerial(logger.Allow, ic)
	w := &test.CompareWriter{}
	sr.SetEcho(w)

	for _, c := range []byte("ok") {
		sr.Write(addresses.SB, c)
		sr.Write(addresses.SC, 0x81)

		v, _ := sr.Read(addresses.SC)
		test.ExpectEquality(t, v, uint8(0xff))

		sr.Step(4092)
		test.ExpectEquality(t, ic.IF, uint8(0x00))
		sr.Step(4)
		test.ExpectEquality(t, ic.IF, interrupts.Serial.Bit())
		ic.Acknowledge(interrupts.Serial)

		v, _ = sr.Read(addresses.SC)
		test.ExpectEquality(t, v, uint8(0x7f))
		v, _ = sr.Read(addresses.SB)
		test.ExpectEquality(t, v, uint8(0xff))
	}

	test.ExpectSuccess(t, w.Compare("ok"))

	// external clock never completes
	sr.Write(addresses.SC, 0x80)
	sr.Step(100000)
	test.ExpectEquality(t, ic.IF, uint8(0x00))
	test.ExpectSuccess(t, w.Compare("ok"))
}

type brokenWriter struct {
	writes int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestEchoError(t *testing.T) {
	logger.Clear()

	ic := interrupts.NewController()
	sr := serial.NewSerial(logger.Allow, ic)
	w := &brokenWriter{}
	sr.SetEcho(w)

	sr.Write(addresses.SB, 'a')
	sr.Write(addresses.SC, 0x81)

	// the transfer still happens
	sr.Step(4096)
	test.ExpectEquality(t, ic.IF, interrupts.Serial.Bit())

	log := &strings.Builder{}
	logger.Write(log)
	test.ExpectSuccess(t, strings.Contains(log.String(), "serial: echo disabled: broken pipe"))

	// the echo is not used again
	sr.Write(addresses.SB, 'b')
	sr.Write(addresses.SC, 0x81)
	test.ExpectEquality(t, w.writes, 1)
}
