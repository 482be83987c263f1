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
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// Timing constants.
const (
	DotsPerLine    = 456
	LinesPerFrame  = 154
	VisibleLines   = ScreenHeight
	DotsPerFrame   = DotsPerLine * LinesPerFrame
	oamSearchDots  = 80
	transferDots   = 172
	spritePenalty  = 6
	windowPenalty  = 6
	maxLineSprites = 10
)

// Mode is the current mode of the PPU. The value is the same as the value
// in the bottom two bits of the STAT register.
type Mode uint8

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	Transfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMSearch:
		return "OAM"
	case Transfer:
		return "Transfer"
	}
	return "unknown mode"
}

// bits in the LCDC register.
const (
	lcdcBGEnable      = 0x01
	lcdcSpriteEnable  = 0x02
	lcdcSpriteSize    = 0x04
	lcdcBGMap         = 0x08
	lcdcTileData      = 0x10
	lcdcWindowEnable  = 0x20
	lcdcWindowMap     = 0x40
	lcdcDisplayEnable = 0x80
)

// bits in the STAT register.
const (
	statCoincidence  = 0x04
	statHBlankSource = 0x08
	statVBlankSource = 0x10
	statOAMSource    = 0x20
	statLYCSource    = 0x40
	statWritable     = statHBlankSource | statVBlankSource | statOAMSource | statLYCSource
	statUnused       = 0x80
	statModeBits     = 0x03
)

// PPU is the pixel processing unit. It owns the video RAM and the object
// attribute memory.
type PPU struct {
	irq interrupts.Requester

	VRAM [memorymap.SizeVRAM]uint8
	OAM  [memorymap.SizeOAM]uint8

	LCDC uint8
	STAT uint8
	SCY  uint8
	SCX  uint8
	LY   uint8
	LYC  uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8
	WY   uint8
	WX   uint8

	Mode Mode

	// dot number in the current scanline
	Dot int

	// whether the CPU is prevented from accessing VRAM during mode 3 and OAM
	// during modes 2 and 3
	AccessRestriction bool

	// the dot on which the pixel transfer ends for the current scanline
	transferEnd int

	// the internal line counter of the window. it only advances on lines
	// where the window was drawn
	windowLine   int
	windowOnLine bool

	// the state of the combined STAT interrupt line. the interrupt is
	// requested on the rising edge
	statLine bool

	// sprites selected by the OAM search for the current scanline
	sprites []sprite

	// dots counted while the display is disabled. a blank frame is published
	// every DotsPerFrame
	offDots int

	// the frame being drawn and the most recently completed frame
	back  FrameBuffer
	front FrameBuffer

	frameNum  int
	renderers []FrameRenderer
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(irq interrupts.Requester) *PPU {
	p := &PPU{
		irq:     irq,
		sprites: make([]sprite, 0, maxLineSprites),
	}
	p.Reset()
	return p
}

func (p *PPU) String() string {
	return fmt.Sprintf("LY=%03d dot=%03d mode=%s LCDC=%02x STAT=%02x SCX=%02x SCY=%02x WX=%02x WY=%02x",
		p.LY, p.Dot, p.Mode, p.LCDC, p.readSTAT(), p.SCX, p.SCY, p.WX, p.WY)
}

// Reset the PPU to its power-on state. The display is disabled.
func (p *PPU) Reset() {
	p.VRAM = [memorymap.SizeVRAM]uint8{}
	p.OAM = [memorymap.SizeOAM]uint8{}
	p.LCDC = 0
	p.STAT = 0
	p.SCY = 0
	p.SCX = 0
	p.LY = 0
	p.LYC = 0
	p.BGP = 0
	p.OBP0 = 0
	p.OBP1 = 0
	p.WY = 0
	p.WX = 0
	p.Mode = HBlank
	p.Dot = 0
	p.windowLine = 0
	p.windowOnLine = false
	p.statLine = false
	p.sprites = p.sprites[:0]
	p.offDots = 0
	p.back = FrameBuffer{}
	p.front = FrameBuffer{}
}

// AddFrameRenderer adds a FrameRenderer to the list of renderers that
// receive each completed frame.
func (p *PPU) AddFrameRenderer(r FrameRenderer) {
	p.renderers = append(p.renderers, r)
}

// Frame returns a copy of the most recently completed frame.
func (p *PPU) Frame() FrameBuffer {
	return p.front
}

// FrameNum returns the number of frames completed since power on.
func (p *PPU) FrameNum() int {
	return p.frameNum
}

// Enabled returns true if the display is enabled.
func (p *PPU) Enabled() bool {
	return p.LCDC&lcdcDisplayEnable == lcdcDisplayEnable
}

// Step the PPU forward by the number of cycles. There is one dot per cycle.
// The error from any FrameRenderer is returned.
func (p *PPU) Step(cycles int) error {
	var err error
	for i := 0; i < cycles; i++ {
		if e := p.tick(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func (p *PPU) tick() error {
	if !p.Enabled() {
		p.offDots++
		if p.offDots >= DotsPerFrame {
			p.offDots = 0
			return p.publish()
		}
		return nil
	}

	var err error

	p.Dot++
	if p.Dot == DotsPerLine {
		p.Dot = 0
		p.LY++
		if p.LY == LinesPerFrame {
			p.LY = 0
			p.windowLine = 0
		}
		err = p.startLine()
	} else if p.LY < VisibleLines {
		switch {
		case p.Mode == OAMSearch && p.Dot == oamSearchDots:
			p.oamSearch()
			p.Mode = Transfer
		case p.Mode == Transfer && p.Dot == p.transferEnd:
			p.renderLine()
			p.Mode = HBlank
		}
	}

	p.updateSTAT()
	return err
}

// startLine is called on dot zero of every scanline.
func (p *PPU) startLine() error {
	switch {
	case p.LY < VisibleLines:
		p.Mode = OAMSearch
	case p.LY == VisibleLines:
		p.Mode = VBlank
		p.irq.Request(interrupts.VBlank)
		return p.publish()
	}
	return nil
}

// publish the back buffer as the completed frame.
func (p *PPU) publish() error {
	p.front = p.back
	p.frameNum++
	for _, r := range p.renderers {
		if err := r.NewFrame(p.front); err != nil {
			return err
		}
	}
	return nil
}

// updateSTAT recalculates the combined STAT interrupt line and requests the
// interrupt on a rising edge.
func (p *PPU) updateSTAT() {
	line := false
	if p.Enabled() {
		switch p.Mode {
		case HBlank:
			line = p.STAT&statHBlankSource == statHBlankSource
		case VBlank:
			line = p.STAT&statVBlankSource == statVBlankSource
		case OAMSearch:
			line = p.STAT&statOAMSource == statOAMSource
		}
		if p.LY == p.LYC && p.STAT&statLYCSource == statLYCSource {
			line = true
		}
	}
	if line && !p.statLine {
		p.irq.Request(interrupts.LCDStat)
	}
	p.statLine = line
}

func (p *PPU) readSTAT() uint8 {
	v := statUnused | p.STAT&statWritable
	if p.Enabled() {
		if p.LY == p.LYC {
			v |= statCoincidence
		}
		v |= uint8(p.Mode) & statModeBits
	}
	return v
}

func (p *PPU) writeLCDC(data uint8) {
	was := p.Enabled()
	p.LCDC = data
	switch {
	case was && !p.Enabled():
		p.LY = 0
		p.Dot = 0
		p.Mode = HBlank
		p.windowLine = 0
		p.offDots = 0
		p.back = FrameBuffer{}
	case !was && p.Enabled():
		p.LY = 0
		p.Dot = 0
		p.windowLine = 0
		p.Mode = OAMSearch
	}
	p.updateSTAT()
}

// Read the PPU register at address. The DMA register is not handled by the
// PPU.
func (p *PPU) Read(address uint16) (uint8, bool) {
	switch address {
	case addresses.LCDC:
		return p.LCDC, true
	case addresses.STAT:
		return p.readSTAT(), true
	case addresses.SCY:
		return p.SCY, true
	case addresses.SCX:
		return p.SCX, true
	case addresses.LY:
		return p.LY, true
	case addresses.LYC:
		return p.LYC, true
	case addresses.BGP:
		return p.BGP, true
	case addresses.OBP0:
		return p.OBP0, true
	case addresses.OBP1:
		return p.OBP1, true
	case addresses.WY:
		return p.WY, true
	case addresses.WX:
		return p.WX, true
	}
	return 0, false
}

// Write data to the PPU register at address. LY is read-only.
func (p *PPU) Write(address uint16, data uint8) bool {
	switch address {
	case addresses.LCDC:
		p.writeLCDC(data)
	case addresses.STAT:
		p.STAT = data & statWritable
		p.updateSTAT()
	case addresses.SCY:
		p.SCY = data
	case addresses.SCX:
		p.SCX = data
	case addresses.LY:
	case addresses.LYC:
		p.LYC = data
		p.updateSTAT()
	case addresses.BGP:
		p.BGP = data
	case addresses.OBP0:
		p.OBP0 = data
	case addresses.OBP1:
		p.OBP1 = data
	case addresses.WY:
		p.WY = data
	case addresses.WX:
		p.WX = data
	default:
		return false
	}
	return true
}

func (p *PPU) vramLocked() bool {
	return p.AccessRestriction && p.Enabled() && p.Mode == Transfer
}

func (p *PPU) oamLocked() bool {
	return p.AccessRestriction && p.Enabled() && (p.Mode == Transfer || p.Mode == OAMSearch)
}

// ReadVRAM returns the byte at the offset into VRAM as seen by the CPU.
func (p *PPU) ReadVRAM(offset uint16) uint8 {
	if p.vramLocked() {
		return 0xff
	}
	return p.VRAM[offset]
}

// WriteVRAM writes to VRAM on behalf of the CPU.
func (p *PPU) WriteVRAM(offset uint16, data uint8) {
	if p.vramLocked() {
		return
	}
	p.VRAM[offset] = data
}

// ReadOAM returns the byte at the offset into OAM as seen by the CPU.
func (p *PPU) ReadOAM(offset uint16) uint8 {
	if p.oamLocked() {
		return 0xff
	}
	return p.OAM[offset]
}

// WriteOAM writes to OAM on behalf of the CPU.
func (p *PPU) WriteOAM(offset uint16, data uint8) {
	if p.oamLocked() {
		return
	}
	p.OAM[offset] = data
}

// DMA copies data into OAM. Unlike WriteOAM() the copy is never restricted.
func (p *PPU) DMA(data [memorymap.SizeOAM]uint8) {
	p.OAM = data
}
