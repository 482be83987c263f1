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

package ppu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/test"
)

type requests struct {
	count [interrupts.NumInterrupts]int
}

func (r *requests) Request(i interrupts.Interrupt) {
	r.count[i]++
}

type frames struct {
	count int
	last  ppu.FrameBuffer
}

func (f *frames) NewFrame(frame ppu.FrameBuffer) error {
	f.count++
	f.last = frame
	return nil
}

// stepToFrame steps the PPU until the frame number changes and returns the
// number of dots taken.
func stepToFrame(t *testing.T, p *ppu.PPU) int {
	t.Helper()
	n := p.FrameNum()
	dots := 0
	for p.FrameNum() == n {
		test.DemandSuccess(t, p.Step(1))
		dots++
		if dots > ppu.DotsPerFrame*2 {
			t.Fatalf("no frame after %d dots", dots)
		}
	}
	return dots
}

func TestFrameTiming(t *testing.T) {
	irq := &requests{}
	p := ppu.NewPPU(irq)
	r := &frames{}
	p.AddFrameRenderer(r)

	p.Write(addresses.LCDC, 0x91)

	// the first frame is shorter because the display is enabled at the
	// start of the frame, not at the start of the vblank
	test.ExpectEquality(t, stepToFrame(t, p), ppu.DotsPerLine*ppu.VisibleLines)
	test.ExpectEquality(t, p.LY, uint8(ppu.VisibleLines))
	test.ExpectEquality(t, p.Mode, ppu.VBlank)

	for i := 0; i < 5; i++ {
		test.ExpectEquality(t, stepToFrame(t, p), 70224)
	}

	// one frame and one VBlank interrupt per refresh
	test.ExpectEquality(t, r.count, 6)
	test.ExpectEquality(t, irq.count[interrupts.VBlank], 6)
	test.ExpectEquality(t, p.FrameNum(), 6)
}

func TestModeSequence(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	p.Write(addresses.LCDC, 0x91)

	test.ExpectEquality(t, p.Mode, ppu.OAMSearch)
	test.DemandSuccess(t, p.Step(79))
	test.ExpectEquality(t, p.Mode, ppu.OAMSearch)
	test.DemandSuccess(t, p.Step(1))
	test.ExpectEquality(t, p.Mode, ppu.Transfer)
	test.DemandSuccess(t, p.Step(171))
	test.ExpectEquality(t, p.Mode, ppu.Transfer)
	test.DemandSuccess(t, p.Step(1))
	test.ExpectEquality(t, p.Mode, ppu.HBlank)

	v, ok := p.Read(addresses.STAT)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v&0x03, uint8(ppu.HBlank))

	test.DemandSuccess(t, p.Step(ppu.DotsPerLine-252))
	test.ExpectEquality(t, p.LY, uint8(1))
	test.ExpectEquality(t, p.Mode, ppu.OAMSearch)

	// fine scroll lengthens the transfer
	p.Write(addresses.SCX, 0x03)
	test.DemandSuccess(t, p.Step(80+172))
	test.ExpectEquality(t, p.Mode, ppu.Transfer)
	test.DemandSuccess(t, p.Step(3))
	test.ExpectEquality(t, p.Mode, ppu.HBlank)
}

func TestLCDOff(t *testing.T) {
	irq := &requests{}
	p := ppu.NewPPU(irq)
	p.Write(addresses.LCDC, 0x91)
	test.DemandSuccess(t, p.Step(ppu.DotsPerLine*10+5))
	test.ExpectEquality(t, p.LY, uint8(10))

	p.Write(addresses.LCDC, 0x11)
	test.ExpectEquality(t, p.LY, uint8(0))
	v, _ := p.Read(addresses.STAT)
	test.ExpectEquality(t, v, uint8(0x80))

	test.DemandSuccess(t, p.Step(ppu.DotsPerLine*200))
	test.ExpectEquality(t, p.LY, uint8(0))
	test.ExpectEquality(t, irq.count[interrupts.VBlank], 0)
	test.ExpectEquality(t, irq.count[interrupts.LCDStat], 0)
}

func TestSTATInterrupt(t *testing.T) {
	irq := &requests{}
	p := ppu.NewPPU(irq)
	p.Write(addresses.LYC, 2)
	p.Write(addresses.STAT, 0x40)
	p.Write(addresses.LCDC, 0x91)

	test.DemandSuccess(t, p.Step(ppu.DotsPerLine*2-1))
	test.ExpectEquality(t, irq.count[interrupts.LCDStat], 0)
	test.DemandSuccess(t, p.Step(1))
	test.ExpectEquality(t, p.LY, uint8(2))
	test.ExpectEquality(t, irq.count[interrupts.LCDStat], 1)

	v, _ := p.Read(addresses.STAT)
	test.ExpectEquality(t, v&0x04, uint8(0x04))

	// the line stays high for the whole scanline so there is only one
	// interrupt
	test.DemandSuccess(t, p.Step(ppu.DotsPerLine-1))
	test.ExpectEquality(t, irq.count[interrupts.LCDStat], 1)

	// HBlank source. one interrupt per visible line
	p.Write(addresses.STAT, 0x08)
	stepToFrame(t, p)
	irq.count[interrupts.LCDStat] = 0
	stepToFrame(t, p)
	test.ExpectEquality(t, irq.count[interrupts.LCDStat], ppu.VisibleLines)
}

// setTile fills every row of the tile with the colour index.
func setTile(p *ppu.PPU, tile int, idx uint8) {
	var lo, hi uint8
	if idx&0x01 == 0x01 {
		lo = 0xff
	}
	if idx&0x02 == 0x02 {
		hi = 0xff
	}
	for row := 0; row < 8; row++ {
		p.VRAM[tile*16+row*2] = lo
		p.VRAM[tile*16+row*2+1] = hi
	}
}

func TestBackground(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	setTile(p, 1, 3)
	setTile(p, 2, 1)
	p.VRAM[0x1800] = 1
	p.VRAM[0x1802] = 2
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.LCDC, 0x91)

	stepToFrame(t, p)
	fb := p.Frame()
	test.ExpectEquality(t, fb[0][0], uint8(3))
	test.ExpectEquality(t, fb[7][7], uint8(3))
	test.ExpectEquality(t, fb[0][8], uint8(0))
	test.ExpectEquality(t, fb[0][16], uint8(1))
	test.ExpectEquality(t, fb[8][0], uint8(0))

	// palette is applied
	p.Write(addresses.BGP, 0x1b)
	stepToFrame(t, p)
	fb = p.Frame()
	test.ExpectEquality(t, fb[0][0], uint8(0))
	test.ExpectEquality(t, fb[0][8], uint8(3))

	// scrolling
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.SCX, 4)
	stepToFrame(t, p)
	fb = p.Frame()
	test.ExpectEquality(t, fb[0][3], uint8(3))
	test.ExpectEquality(t, fb[0][4], uint8(0))
}

func TestSignedTileData(t *testing.T) {
	p := ppu.NewPPU(&requests{})

	// with LCDC bit 4 clear, tile 0 is at 0x9000 and tile 0xff at 0x8ff0
	setTile(p, 0x100, 2)
	setTile(p, 0xff, 1)
	p.VRAM[0x1800] = 0x00
	p.VRAM[0x1801] = 0xff
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.LCDC, 0x81)

	stepToFrame(t, p)
	fb := p.Frame()
	test.ExpectEquality(t, fb[0][0], uint8(2))
	test.ExpectEquality(t, fb[0][8], uint8(1))
}

func TestWindow(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	setTile(p, 1, 3)

	// window map at 0x9c00 is all tile 1
	for i := 0x1c00; i < 0x2000; i++ {
		p.VRAM[i] = 1
	}
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.WY, 10)
	p.Write(addresses.WX, 7+20)
	p.Write(addresses.LCDC, 0xf1)

	stepToFrame(t, p)
	fb := p.Frame()
	test.ExpectEquality(t, fb[9][30], uint8(0))
	test.ExpectEquality(t, fb[10][19], uint8(0))
	test.ExpectEquality(t, fb[10][20], uint8(3))
	test.ExpectEquality(t, fb[143][159], uint8(3))
}

func TestSprites(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	setTile(p, 1, 1)
	setTile(p, 2, 2)
	setTile(p, 3, 3)

	// sprite 0 at screen x=10, sprite 1 at screen x=6. they overlap at
	// 10..13 where the sprite with the lower X wins
	copy(p.OAM[0:], []uint8{16, 18, 1, 0})
	copy(p.OAM[4:], []uint8{16, 14, 2, 0})

	// sprite 2 and 3 have the same X. the lower OAM index wins
	copy(p.OAM[8:], []uint8{32, 48, 3, 0x10})
	copy(p.OAM[12:], []uint8{32, 48, 1, 0})

	p.Write(addresses.OBP0, 0xe4)
	p.Write(addresses.OBP1, 0xe4)
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.LCDC, 0x93)

	stepToFrame(t, p)
	fb := p.Frame()
	test.ExpectEquality(t, fb[0][5], uint8(0))
	test.ExpectEquality(t, fb[0][6], uint8(2))
	test.ExpectEquality(t, fb[0][12], uint8(2))
	test.ExpectEquality(t, fb[0][14], uint8(1))
	test.ExpectEquality(t, fb[0][17], uint8(1))
	test.ExpectEquality(t, fb[0][18], uint8(0))
	test.ExpectEquality(t, fb[16][40], uint8(3))

	// OBP1 is selected by the palette bit
	p.Write(addresses.OBP1, 0x00)
	stepToFrame(t, p)
	fb = p.Frame()
	test.ExpectEquality(t, fb[16][40], uint8(0))

	// sprites disabled
	p.Write(addresses.LCDC, 0x91)
	stepToFrame(t, p)
	fb = p.Frame()
	test.ExpectEquality(t, fb[0][6], uint8(0))
}

func TestSpriteBGPriority(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	setTile(p, 1, 1)
	setTile(p, 2, 3)

	// background tile 1 at the first tile, tile 0 (colour 0) elsewhere
	p.VRAM[0x1800] = 1

	// sprite behind the background straddling the first two tiles
	copy(p.OAM[0:], []uint8{16, 12, 2, 0x80})

	p.Write(addresses.OBP0, 0xe4)
	p.Write(addresses.BGP, 0xe4)
	p.Write(addresses.LCDC, 0x93)

	stepToFrame(t, p)
	fb := p.Frame()

	// background colour 1 hides the sprite
	test.ExpectEquality(t, fb[0][4], uint8(1))

	// background colour 0 does not
	test.ExpectEquality(t, fb[0][8], uint8(3))
}

func TestSpriteLimit(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	setTile(p, 1, 3)

	// twelve sprites on the same line. only the first ten in OAM order are
	// drawn
	for i := 0; i < 12; i++ {
		copy(p.OAM[i*4:], []uint8{16, uint8(8 + i*8), 1, 0})
	}
	p.Write(addresses.OBP0, 0xe4)
	p.Write(addresses.LCDC, 0x93)

	stepToFrame(t, p)
	fb := p.Frame()
	test.ExpectEquality(t, fb[0][9*8], uint8(3))
	test.ExpectEquality(t, fb[0][10*8], uint8(0))
	test.ExpectEquality(t, fb[0][11*8], uint8(0))
}

func TestAccessRestriction(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	p.VRAM[0x10] = 0x42
	p.OAM[0x10] = 0x24
	p.Write(addresses.LCDC, 0x91)

	// unrestricted by default
	test.DemandSuccess(t, p.Step(100))
	test.ExpectEquality(t, p.Mode, ppu.Transfer)
	test.ExpectEquality(t, p.ReadVRAM(0x10), uint8(0x42))
	test.ExpectEquality(t, p.ReadOAM(0x10), uint8(0x24))

	p.AccessRestriction = true
	test.ExpectEquality(t, p.ReadVRAM(0x10), uint8(0xff))
	test.ExpectEquality(t, p.ReadOAM(0x10), uint8(0xff))
	p.WriteVRAM(0x10, 0x00)
	test.ExpectEquality(t, p.VRAM[0x10], uint8(0x42))

	test.DemandSuccess(t, p.Step(200))
	test.ExpectEquality(t, p.Mode, ppu.HBlank)
	test.ExpectEquality(t, p.ReadVRAM(0x10), uint8(0x42))
	test.ExpectEquality(t, p.ReadOAM(0x10), uint8(0x24))
}

func TestBlankFramesWhenOff(t *testing.T) {
	p := ppu.NewPPU(&requests{})
	r := &frames{}
	p.AddFrameRenderer(r)
	test.DemandSuccess(t, p.Step(ppu.DotsPerFrame*3))
	test.ExpectEquality(t, r.count, 3)
	test.ExpectEquality(t, r.last, ppu.FrameBuffer{})
}
