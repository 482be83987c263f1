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

package hardware

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// StepError wraps any error encountered during a Step(). The second value is
// the state of the CPU and of the components on the bus at the time of the
// error.
const StepError = "hardware: %v [%s]"

// Step the emulation by one CPU instruction, interrupt dispatch or idle
// cycle. The number of cycles consumed is returned.
//
// Once an error has been returned every subsequent call will return the same
// error until the hardware is reset.
func (gb *GameBoy) Step() (int, error) {
	if gb.fatal != nil {
		return 0, gb.fatal
	}

	cycles, err := gb.CPU.ExecuteInstruction()
	if err != nil {
		return 0, gb.kill(err)
	}

	if err := gb.advance(cycles); err != nil {
		return cycles, gb.kill(err)
	}

	return cycles, nil
}

// advance every component other than the CPU by the number of cycles.
func (gb *GameBoy) advance(cycles int) error {
	gb.Clock += uint64(cycles)
	gb.Timer.Step(cycles)
	gb.Serial.Step(cycles)
	gb.Cart.Step(cycles)
	return gb.PPU.Step(cycles)
}

func (gb *GameBoy) kill(err error) error {
	gb.fatal = curated.Errorf(StepError, err, gb.String())
	logger.Log(gb, "hardware", gb.fatal)
	return gb.fatal
}

// Error returns the error that stopped the emulation. Returns nil if the
// emulation is able to continue.
func (gb *GameBoy) Error() error {
	return gb.fatal
}
