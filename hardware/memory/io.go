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

package memory

import (
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// bits that always read as set in the audio registers. indexed from
// addresses.AudioOrigin. entries for unused addresses are 0xff
var audioReadMask = [...]uint8{
	// NR10-NR14
	0x80, 0x3f, 0x00, 0xff, 0xbf,
	// unused, NR21-NR24
	0xff, 0x3f, 0x00, 0xff, 0xbf,
	// NR30-NR34
	0x7f, 0xff, 0x9f, 0xff, 0xbf,
	// unused, NR41-NR44
	0xff, 0xff, 0x00, 0x00, 0xbf,
	// NR50-NR52
	0x00, 0x00, 0x70,
	// unused
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

func isAudio(address uint16) bool {
	return address >= addresses.AudioOrigin && address <= addresses.AudioMemtop
}

func (mem *Memory) readIO(address uint16) uint8 {
	offset := address - memorymap.OriginIO

	switch address {
	case addresses.P1:
		return mem.Input.Read()
	case addresses.IF:
		return mem.Interrupts.ReadIF()
	case addresses.DMA:
		return mem.IO[offset]
	}

	if v, ok := mem.Timer.Read(address); ok {
		return v
	}
	if v, ok := mem.Serial.Read(address); ok {
		return v
	}
	if v, ok := mem.PPU.Read(address); ok {
		return v
	}

	if isAudio(address) {
		idx := int(address - addresses.AudioOrigin)
		if idx < len(audioReadMask) {
			return mem.IO[offset] | audioReadMask[idx]
		}
		return mem.IO[offset]
	}

	return 0xff
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	offset := address - memorymap.OriginIO

	switch address {
	case addresses.P1:
		mem.Input.Write(data)
		return
	case addresses.IF:
		mem.Interrupts.WriteIF(data)
		return
	case addresses.DMA:
		mem.IO[offset] = data
		mem.dma(data)
		return
	case addresses.BootROMDisable:
		if data != 0 && mem.bootEnabled {
			mem.bootEnabled = false
			logger.Log(mem.env, "memory", "boot rom disabled")
		}
		return
	}

	if mem.Timer.Write(address, data) {
		return
	}
	if mem.Serial.Write(address, data) {
		return
	}
	if mem.PPU.Write(address, data) {
		return
	}

	if isAudio(address) {
		mem.IO[offset] = data
		if mem.audio != nil {
			mem.audio.AudioRegister(address, data)
		}
	}
}

// dma copies 160 bytes from the page indicated by data into OAM. the copy
// happens immediately.
func (mem *Memory) dma(data uint8) {
	var oam [memorymap.SizeOAM]uint8
	src := uint16(data) << 8
	for i := range oam {
		oam[i] = mem.Peek(src + uint16(i))
	}
	mem.PPU.DMA(oam)
}
