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

import "sort"

// flags in the sprite attribute byte.
const (
	attrPriority = 0x80
	attrFlipY    = 0x40
	attrFlipX    = 0x20
	attrPalette  = 0x10
)

// sprite is a copy of an entry in OAM.
type sprite struct {
	y     int
	x     int
	tile  uint8
	attr  uint8
	index int
}

func (p *PPU) spriteHeight() int {
	if p.LCDC&lcdcSpriteSize == lcdcSpriteSize {
		return 16
	}
	return 8
}

// oamSearch selects the sprites that are visible on the current scanline
// and calculates the length of the pixel transfer.
func (p *PPU) oamSearch() {
	p.sprites = p.sprites[:0]

	h := p.spriteHeight()
	ly := int(p.LY)
	for i := 0; i < len(p.OAM)/4 && len(p.sprites) < maxLineSprites; i++ {
		s := sprite{
			y:     int(p.OAM[i*4]) - 16,
			x:     int(p.OAM[i*4+1]) - 8,
			tile:  p.OAM[i*4+2],
			attr:  p.OAM[i*4+3],
			index: i,
		}
		if ly >= s.y && ly < s.y+h {
			p.sprites = append(p.sprites, s)
		}
	}

	// lower X coordinate has priority. sprites with the same X coordinate
	// remain in OAM order
	sort.SliceStable(p.sprites, func(i, j int) bool {
		return p.sprites[i].x < p.sprites[j].x
	})

	p.windowOnLine = p.LCDC&lcdcWindowEnable == lcdcWindowEnable &&
		p.LCDC&lcdcBGEnable == lcdcBGEnable &&
		p.LY >= p.WY && p.WX <= 166

	p.transferEnd = oamSearchDots + transferDots + int(p.SCX%8)
	p.transferEnd += spritePenalty * len(p.sprites)
	if p.windowOnLine {
		p.transferEnd += windowPenalty
	}
}

// tilePixel returns the colour index of the pixel in the tile. the tile
// number is interpreted according to the tile data bit of LCDC unless the
// tile is a sprite.
func (p *PPU) tilePixel(tile uint8, row int, col int, isSprite bool) uint8 {
	var addr int
	if isSprite || p.LCDC&lcdcTileData == lcdcTileData {
		addr = int(tile) * 16
	} else {
		addr = 0x1000 + int(int8(tile))*16
	}
	addr += row * 2
	lo := p.VRAM[addr]
	hi := p.VRAM[addr+1]
	bit := 7 - col
	return (hi>>bit&0x01)<<1 | lo>>bit&0x01
}

// mapTile returns the tile number at the position in the tile map.
func (p *PPU) mapTile(useHighMap bool, x int, y int) uint8 {
	base := 0x1800
	if useHighMap {
		base = 0x1c00
	}
	return p.VRAM[base+(y/8)*32+x/8]
}

func shade(palette uint8, idx uint8) uint8 {
	return palette >> (idx * 2) & 0x03
}

// renderLine draws the current scanline into the back buffer.
func (p *PPU) renderLine() {
	row := &p.back[p.LY]

	// colour index of the background before the palette is applied. used
	// for sprite priority
	var bg [ScreenWidth]uint8

	if p.LCDC&lcdcBGEnable == lcdcBGEnable {
		y := int(p.SCY+p.LY) & 0xff
		wx := int(p.WX) - 7
		for x := 0; x < ScreenWidth; x++ {
			var idx uint8
			if p.windowOnLine && x >= wx {
				px := x - wx
				tile := p.mapTile(p.LCDC&lcdcWindowMap == lcdcWindowMap, px, p.windowLine)
				idx = p.tilePixel(tile, p.windowLine%8, px%8, false)
			} else {
				px := (x + int(p.SCX)) & 0xff
				tile := p.mapTile(p.LCDC&lcdcBGMap == lcdcBGMap, px, y)
				idx = p.tilePixel(tile, y%8, px%8, false)
			}
			bg[x] = idx
			row[x] = shade(p.BGP, idx)
		}
	} else {
		*row = [ScreenWidth]uint8{}
	}

	if p.windowOnLine {
		p.windowLine++
	}

	if p.LCDC&lcdcSpriteEnable == lcdcSpriteEnable {
		p.renderSprites(row, &bg)
	}
}

func (p *PPU) renderSprites(row *[ScreenWidth]uint8, bg *[ScreenWidth]uint8) {
	h := p.spriteHeight()
	ly := int(p.LY)

	for x := 0; x < ScreenWidth; x++ {
		for _, s := range p.sprites {
			if x < s.x || x >= s.x+8 {
				continue
			}

			line := ly - s.y
			if s.attr&attrFlipY == attrFlipY {
				line = h - 1 - line
			}
			col := x - s.x
			if s.attr&attrFlipX == attrFlipX {
				col = 7 - col
			}

			tile := s.tile
			if h == 16 {
				tile &= 0xfe
			}
			idx := p.tilePixel(tile+uint8(line/8), line%8, col, true)

			// colour zero is transparent and the next sprite is considered
			if idx == 0 {
				continue
			}

			if s.attr&attrPriority != attrPriority || bg[x] == 0 {
				palette := p.OBP0
				if s.attr&attrPalette == attrPalette {
					palette = p.OBP1
				}
				row[x] = shade(palette, idx)
			}
			break
		}
	}
}
