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

// Package screenshot saves frames produced by the PPU as PNG images. Frames
// are scaled by an integer factor with nearest neighbour sampling so that the
// individual pixels remain sharp.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
)

// ScreenshotError is returned when the image can not be created or saved.
const ScreenshotError = "screenshot: %v"

// MaxScale is the largest scaling factor accepted by Scale().
const MaxScale = 16

// Scale returns the frame as an image scaled by the factor.
func Scale(frame ppu.FrameBuffer, scale int) (*image.RGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(ScreenshotError, fmt.Sprintf("unsupported scale (%d)", scale))
	}

	src := frame.Image()
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes the scaled frame to w in PNG format.
func Encode(w io.Writer, frame ppu.FrameBuffer, scale int) error {
	img, err := Scale(frame, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}

// Save the scaled frame to the named file. An existing file will not be
// overwritten.
func Save(filename string, frame ppu.FrameBuffer, scale int) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	return Encode(f, frame, scale)
}

// Renderer is an implementation of ppu.FrameRenderer that saves every nth
// frame to a sequence of files.
type Renderer struct {
	// base filename. the frame number and extension are appended
	Base  string
	Scale int
	Every int

	count int
}

// NewFrame implements the ppu.FrameRenderer interface.
func (r *Renderer) NewFrame(frame ppu.FrameBuffer) error {
	r.count++
	if r.Every <= 0 || r.count%r.Every != 0 {
		return nil
	}
	return Save(fmt.Sprintf("%s_%d.png", r.Base, r.count), frame, r.Scale)
}
