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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/diagnostics"
	"github.com/gopherdmg/gopherdmg/digest"
	"github.com/gopherdmg/gopherdmg/easyterm"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/gui/sdlplay"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/screenshot"
	"github.com/gopherdmg/gopherdmg/statsview"
)

// SDL requires that window creation and event handling happen on the main
// thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "PERFORMANCE")

	prefsArg := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	sessionPrefs = *prefsArg

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// preference values specified on the command line. applied when preferences
// are loaded
var sessionPrefs string

// loadPreferences pushes any command line preferences onto the stack before
// loading. values in sessionPrefs take priority over values in extra.
func loadPreferences(extra string) (*preferences.Preferences, error) {
	cl := strings.TrimSpace(strings.Join([]string{extra, sessionPrefs}, ";"))
	if cl != ";" {
		prefs.PushCommandLineStack(cl)
	}
	return preferences.NewPreferences()
}

// cartridge returns the loader for the single remaining argument.
func cartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func newGameBoy(cartload cartridgeloader.Loader, extraPrefs string) (*hardware.GameBoy, error) {
	p, err := loadPreferences(extraPrefs)
	if err != nil {
		return nil, err
	}
	gb, err := hardware.NewGameBoy(p)
	if err != nil {
		return nil, err
	}
	if err := gb.AttachCartridge(cartload); err != nil {
		return nil, err
	}
	return gb, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("press q to end emulation when running without a frame limit")

	frames := md.AddInt("frames", 0, "number of frames to run (0 = until interrupted)")
	serial := md.AddBool("serial", true, "echo serial output to stdout")
	shot := md.AddString("screenshot", "", "save final frame to PNG file")
	scale := md.AddInt("scale", 1, "scaling of screenshot")
	dig := md.AddBool("digest", false, "print digest of all video frames")
	memviz := md.AddString("memviz", "", "save graphviz diagram of the hardware state on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(cartload, fmt.Sprintf("hardware.serialEcho::%v", *serial))
	if err != nil {
		return err
	}

	var vd *digest.Video
	if *dig {
		vd = digest.NewVideo()
		gb.AddFrameRenderer(vd)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// keyboard is only watched when there is no frame limit and stdin is a
	// terminal
	var term *easyterm.Terminal
	if *frames <= 0 {
		term = &easyterm.Terminal{}
		if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
			term = nil
		} else {
			term.CBreakMode()
			defer term.CleanUp()
		}
	}

	performanceBrake := 0
	check := func(frame int) (govern.State, error) {
		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceBrake = 0

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		if term != nil {
			if k, ok := term.Key(); ok && (k == 'q' || k == 'Q') {
				return govern.Ending, nil
			}
		}

		return govern.Running, nil
	}

	runErr := error(nil)
	if *frames > 0 {
		runErr = gb.RunForFrameCount(*frames, check)
	} else {
		runErr = gb.Run(func() (govern.State, error) {
			return check(gb.PPU.FrameNum())
		})
	}

	// diagnostics are written even if emulation failed
	if *memviz != "" {
		if err := diagnostics.Save(*memviz, gb); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}

	if *shot != "" {
		if err := screenshot.Save(*shot, gb.Frame(), *scale); err != nil {
			return err
		}
	}

	if vd != nil {
		fmt.Println(vd.Hash())
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the LCD refresh rate")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(cartload, "")
	if err != nil {
		return err
	}

	pl, err := sdlplay.NewSdlPlay(gb, cartload.ShortName(), *scale, *fpsCap)
	if err != nil {
		return err
	}
	defer pl.Destroy()

	if err := pl.Run(); err != nil {
		return err
	}

	return gb.Prefs.Save()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridge(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pr, err := loadPreferences("")
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, cartload, pr, *duration)
}
