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
	"github.com/gopherdmg/gopherdmg/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every step.
func (gb *GameBoy) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if _, err := gb.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running until the PPU has completed
// the specified number of frames. The continueCheck() function receives the
// current frame number and is called after every step.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := gb.PPU.FrameNum() + numFrames

	state := govern.Running
	for gb.PPU.FrameNum() < targetFrame && state != govern.Ending {
		if _, err := gb.Step(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(gb.PPU.FrameNum())
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the emulation running for at least the number of cycles.
// Emulation stops at the end of the step that reaches the target.
func (gb *GameBoy) RunForCycles(cycles uint64) error {
	target := gb.Clock + cycles
	for gb.Clock < target {
		if _, err := gb.Step(); err != nil {
			return err
		}
	}
	return nil
}
