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

// Package sdlplay is a minimal front end for playing games. It uses SDL to
// open a window, display the LCD and read the keyboard.
//
// SDL requires that window handling happens on the main thread. Callers must
// lock the main goroutine to the main OS thread (runtime.LockOSThread() in an
// init() function) and call Run() from there.
package sdlplay

import (
	"fmt"
	"image/color"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/performance/limiter"
	"github.com/gopherdmg/gopherdmg/screenshot"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"
)

// SdlPlayError wraps errors from the SDL library.
const SdlPlayError = "sdlplay: %v"

// bytes per pixel in the texture
const bpp = 4

// the colour of the area around the LCD if the window is resized
var border = colornames.Black

// SdlPlay is a simple SDL window showing the LCD of a GameBoy.
type SdlPlay struct {
	gb   *hardware.GameBoy
	keys gui.KeyMap
	lmtr *limiter.FpsLimiter

	// the name used when creating screenshot files
	name string

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixel data for the texture. updated by NewFrame()
	pixels []byte

	scale  int
	paused bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The name argument is used when naming screenshot files. If fpsCap is true
// then emulation is limited to the LCD refresh rate.
func NewSdlPlay(gb *hardware.GameBoy, name string, scale int, fpsCap bool) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	pl := &SdlPlay{
		gb:     gb,
		keys:   gui.DefaultKeyMap,
		lmtr:   limiter.NewFPSLimiter(0),
		name:   name,
		pixels: make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*bpp),
		scale:  scale,
	}

	if fpsCap {
		pl.lmtr.SetLimit(performance.FramesPerSecond)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SdlPlayError, err)
	}

	var err error

	pl.window, err = sdl.CreateWindow("GopherDMG",
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(ppu.ScreenWidth*scale), int32(ppu.ScreenHeight*scale),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		pl.Destroy()
		return nil, curated.Errorf(SdlPlayError, err)
	}

	pl.renderer, err = sdl.CreateRenderer(pl.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		pl.Destroy()
		return nil, curated.Errorf(SdlPlayError, err)
	}

	pl.texture, err = pl.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		pl.Destroy()
		return nil, curated.Errorf(SdlPlayError, err)
	}

	// draw the power-on frame before the first frame is completed
	_ = pl.NewFrame(gb.Frame())

	gb.AddFrameRenderer(pl)

	return pl, nil
}

// Destroy releases all SDL resources. Safe to call on a partially
// initialised SdlPlay.
func (pl *SdlPlay) Destroy() {
	if pl.texture != nil {
		_ = pl.texture.Destroy()
		pl.texture = nil
	}
	if pl.renderer != nil {
		_ = pl.renderer.Destroy()
		pl.renderer = nil
	}
	if pl.window != nil {
		_ = pl.window.Destroy()
		pl.window = nil
	}
	sdl.Quit()
}

// NewFrame implements the ppu.FrameRenderer interface.
func (pl *SdlPlay) NewFrame(frame ppu.FrameBuffer) error {
	i := 0
	for y := range frame {
		for _, shade := range frame[y] {
			c := ppu.Palette[shade&0x03]
			pl.pixels[i] = c.R
			pl.pixels[i+1] = c.G
			pl.pixels[i+2] = c.B
			pl.pixels[i+3] = c.A
			i += bpp
		}
	}
	return nil
}

// Run the emulation until the window is closed or the quit key is pressed.
func (pl *SdlPlay) Run() error {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			quit, err := pl.service(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}

		if !pl.paused {
			if err := pl.gb.RunForFrameCount(1, nil); err != nil {
				return err
			}
		}

		if err := pl.render(); err != nil {
			return err
		}

		pl.lmtr.Wait()
	}
}

// service a single SDL event. returns true if the emulation should end.
func (pl *SdlPlay) service(ev sdl.Event) (bool, error) {
	var act gui.Action

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		act = pl.keys.Handle(pl.gb.Input, gui.Event{ID: gui.EventWindowClose})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return false, nil
		}
		act = pl.keys.Handle(pl.gb.Input, gui.Event{
			ID: gui.EventKeyboard,
			Data: gui.EventDataKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Down: ev.Type == sdl.KEYDOWN,
				Mod:  keyMod(),
			},
		})
	}

	switch act {
	case gui.ActionQuit:
		return true, nil

	case gui.ActionPause:
		pl.paused = !pl.paused
		logger.Logf(logger.Allow, "sdlplay", "paused: %v", pl.paused)

	case gui.ActionReset:
		if err := pl.gb.Reset(); err != nil {
			return false, err
		}

	case gui.ActionScreenshot:
		fn := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", pl.name))
		if err := screenshot.Save(fn, pl.gb.Frame(), pl.scale); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		} else {
			logger.Logf(logger.Allow, "sdlplay", "screenshot saved to %s", fn)
		}
	}

	return false, nil
}

func keyMod() gui.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return gui.KeyModCtrl
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return gui.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return gui.KeyModShift
	}
	return gui.KeyModNone
}

func (pl *SdlPlay) render() error {
	if err := pl.texture.Update(nil, pl.pixels, ppu.ScreenWidth*bpp); err != nil {
		return curated.Errorf(SdlPlayError, err)
	}

	if err := setDrawColor(pl.renderer, border); err != nil {
		return curated.Errorf(SdlPlayError, err)
	}
	if err := pl.renderer.Clear(); err != nil {
		return curated.Errorf(SdlPlayError, err)
	}
	if err := pl.renderer.Copy(pl.texture, nil, pl.dest()); err != nil {
		return curated.Errorf(SdlPlayError, err)
	}
	pl.renderer.Present()

	return nil
}

// dest is the largest integer scaled rectangle that fits in the window,
// centred.
func (pl *SdlPlay) dest() *sdl.Rect {
	w, h := pl.window.GetSize()
	scale := w / ppu.ScreenWidth
	if s := h / ppu.ScreenHeight; s < scale {
		scale = s
	}
	if scale < 1 {
		return nil
	}
	dw := scale * ppu.ScreenWidth
	dh := scale * ppu.ScreenHeight
	return &sdl.Rect{X: (w - dw) / 2, Y: (h - dh) / 2, W: dw, H: dh}
}

func setDrawColor(r *sdl.Renderer, c color.RGBA) error {
	return r.SetDrawColor(c.R, c.G, c.B, c.A)
}
