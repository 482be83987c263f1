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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
)

// PerformanceError wraps errors encountered during Check().
const PerformanceError = "performance: %v"

// LeadTime is the amount of time the emulation runs for before measurement
// begins. This allows the frame rate to settle down.
var LeadTime = 2 * time.Second

var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the cartridge for the
// duration and reporting the achieved frame rate to output.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, prefs *preferences.Preferences, duration string) error {
	gb, err := hardware.NewGameBoy(prefs)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if err := gb.AttachCartridge(cartload); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := gb.PPU.FrameNum()

	runner := func() error {
		// signals false when the lead time has elapsed and measurement should
		// start. signals true when the measurement period has ended
		timerChan := make(chan bool, 1)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so only check every
		// PerformanceBrake steps
		performanceBrake := 0

		return gb.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = gb.PPU.FrameNum()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := gb.PPU.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
