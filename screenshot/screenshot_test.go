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

package screenshot_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/screenshot"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestScale(t *testing.T) {
	var frame ppu.FrameBuffer
	frame[0][0] = 3
	frame[143][159] = 1

	img, err := screenshot.Scale(frame, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 480)
	test.ExpectEquality(t, img.Bounds().Dy(), 432)

	// every pixel of the scaled block has the colour of the source pixel
	test.ExpectEquality(t, img.RGBAAt(0, 0), ppu.Palette[3])
	test.ExpectEquality(t, img.RGBAAt(2, 2), ppu.Palette[3])
	test.ExpectEquality(t, img.RGBAAt(3, 3), ppu.Palette[0])
	test.ExpectEquality(t, img.RGBAAt(479, 431), ppu.Palette[1])

	_, err = screenshot.Scale(frame, 0)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ScreenshotError))
}

func TestEncode(t *testing.T) {
	var frame ppu.FrameBuffer
	var buf bytes.Buffer
	test.DemandSuccess(t, screenshot.Encode(&buf, frame, 2))

	img, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 320)
}

func TestRenderer(t *testing.T) {
	var frame ppu.FrameBuffer
	base := filepath.Join(t.TempDir(), "shot")
	r := &screenshot.Renderer{Base: base, Scale: 1, Every: 2}

	for i := 0; i < 4; i++ {
		test.DemandSuccess(t, r.NewFrame(frame))
	}

	_, err := os.Stat(base + "_2.png")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(base + "_4.png")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(base + "_3.png")
	test.ExpectFailure(t, err)

	// files are never overwritten
	err = screenshot.Save(base+"_2.png", frame, 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ScreenshotError))
}
