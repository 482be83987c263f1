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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios functions in functions with friendlier names and reads single
// key presses from the terminal.
package easyterm

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/gopherdmg/gopherdmg/curated"
)

// TerminalError is returned when the terminal can not be initialised.
const TerminalError = "easyterm: %v"

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// keys read by the goroutine started by Keys()
	keys     <-chan byte
	keysOnce sync.Once
}

// Initialise the fields in the Terminal struct. The attributes of the
// terminal at the time of the call are restored by CleanUp().
func (pt *Terminal) Initialise(inputFile *os.File, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TerminalError, "requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf(TerminalError, "requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp restores the terminal to the state it was in when Initialise()
// was called.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// Print writes the formatted string to the terminal output.
func (pt *Terminal) Print(s string, a ...interface{}) {
	fmt.Fprintf(pt.output, s, a...)
	_ = pt.output.Sync()
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Keys returns a channel on which every byte read from the terminal input is
// sent. The channel is closed when the input ends.
func (pt *Terminal) Keys() <-chan byte {
	pt.keysOnce.Do(func() {
		pt.keys = ReadKeys(pt.input)
	})
	return pt.keys
}

// ReadKeys starts a goroutine that sends every byte read from r on the
// returned channel. The channel is closed when r returns an error.
func ReadKeys(r io.Reader) <-chan byte {
	keys := make(chan byte, 16)
	go func() {
		defer close(keys)
		b := make([]byte, 1)
		for {
			n, err := r.Read(b)
			if n > 0 {
				keys <- b[0]
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}

// Key returns the next key press without blocking. The boolean is false if
// no key is waiting.
func (pt *Terminal) Key() (byte, bool) {
	select {
	case k, ok := <-pt.Keys():
		return k, ok
	default:
		return 0, false
	}
}
