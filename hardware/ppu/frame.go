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

package ppu

import (
	"image"
	"image/color"
)

// Dimensions of the visible screen in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// FrameBuffer is a complete frame. Each entry is a shade from zero (lightest)
// to three (darkest). The shade has already been mapped through the palette
// registers.
type FrameBuffer [ScreenHeight][ScreenWidth]uint8

// FrameRenderer implementations receive every completed frame.
type FrameRenderer interface {
	NewFrame(frame FrameBuffer) error
}

// Palette is a reasonable approximation of the colour of the four shades on
// the original LCD.
var Palette = [4]color.RGBA{
	{R: 0xe0, G: 0xf8, B: 0xd0, A: 0xff},
	{R: 0x88, G: 0xc0, B: 0x70, A: 0xff},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xff},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xff},
}

// Image converts the frame to an RGBA image using the Palette.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := range fb {
		for x, shade := range fb[y] {
			img.SetRGBA(x, y, Palette[shade&0x03])
		}
	}
	return img
}
