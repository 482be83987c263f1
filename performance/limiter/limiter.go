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

// Package limiter paces the emulation to a fixed number of frames per
// second. The front end calls Wait() once per frame.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	// the time at which the next frame is due
	next time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero
// or less disables the limiter.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond > 0 {
		lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	} else {
		lim.secondsPerFrame = 0
	}
	lim.next = time.Time{}
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait will block until the next frame is due.
func (lim *FpsLimiter) Wait() {
	if lim.secondsPerFrame == 0 {
		return
	}

	now := time.Now()
	if lim.next.IsZero() {
		lim.next = now
	}
	lim.next = lim.next.Add(lim.secondsPerFrame)

	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
		return
	}

	// the emulation has fallen behind by more than a frame. don't try to
	// catch up
	if now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now
	}
}
