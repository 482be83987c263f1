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

// Package diagnostics writes a description of the emulation's internal state
// for offline inspection. The graph is in the Graphviz dot format and can be
// viewed with any dot renderer.
package diagnostics

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
)

// DiagnosticsError is returned when the graph can not be written.
const DiagnosticsError = "diagnostics: %v"

// snapshot is the subset of the hardware that is useful to inspect. the large
// memory arrays are left out because they make the graph unreadable. every
// component is a separate node in the graph.
type snapshot struct {
	Clock uint64
	Frame int
	Error string

	CPU *cpuState
	Bus *busState
}

type cpuState struct {
	PC uint16
	SP uint16
	A  uint8
	F  uint8
	B  uint8
	C  uint8
	D  uint8
	E  uint8
	H  uint8
	L  uint8

	Halted  bool
	Stopped bool
	Killed  bool

	LastResult string
}

type busState struct {
	BootROM    bool
	Interrupts *interrupts.Controller
	Timer      *timerState
	PPU        *ppuState
	Serial     *serialState
	Joypad     string
	Cartridge  *cartridgeState
}

type timerState struct {
	Counter uint16
	DIV     uint8
	TIMA    uint8
	TMA     uint8
	TAC     uint8
	Reload  int
}

type ppuState struct {
	Enabled bool
	Mode    string
	Dot     int
	LCDC    uint8
	STAT    uint8
	LY      uint8
	LYC     uint8
	SCY     uint8
	SCX     uint8
	WY      uint8
	WX      uint8
	BGP     uint8
	OBP0    uint8
	OBP1    uint8
}

type serialState struct {
	SB uint8
	SC uint8
}

type cartridgeState struct {
	Filename string
	Mapper   string
	NumBanks int
	ROMXBank int
	Header   *cartridge.Header
}

func newSnapshot(gb *hardware.GameBoy) *snapshot {
	ic := *gb.Interrupts
	hdr := gb.Cart.Header

	s := &snapshot{
		Clock: gb.Clock,
		Frame: gb.PPU.FrameNum(),
		CPU: &cpuState{
			PC:         gb.CPU.PC.Address(),
			SP:         gb.CPU.SP.Address(),
			A:          gb.CPU.A.Value(),
			F:          gb.CPU.F.Value(),
			B:          gb.CPU.B.Value(),
			C:          gb.CPU.C.Value(),
			D:          gb.CPU.D.Value(),
			E:          gb.CPU.E.Value(),
			H:          gb.CPU.H.Value(),
			L:          gb.CPU.L.Value(),
			Halted:     gb.CPU.Halted,
			Stopped:    gb.CPU.Stopped,
			Killed:     gb.CPU.Killed,
			LastResult: gb.CPU.LastResult.String(),
		},
		Bus: &busState{
			BootROM:    gb.Mem.BootROMEnabled(),
			Interrupts: &ic,
			Timer: &timerState{
				Counter: gb.Timer.Counter,
				DIV:     gb.Timer.DIV(),
				TIMA:    gb.Timer.TIMA,
				TMA:     gb.Timer.TMA,
				TAC:     gb.Timer.TAC,
				Reload:  gb.Timer.Reload,
			},
			PPU: &ppuState{
				Enabled: gb.PPU.Enabled(),
				Mode:    gb.PPU.Mode.String(),
				Dot:     gb.PPU.Dot,
				LCDC:    gb.PPU.LCDC,
				STAT:    gb.PPU.STAT,
				LY:      gb.PPU.LY,
				LYC:     gb.PPU.LYC,
				SCY:     gb.PPU.SCY,
				SCX:     gb.PPU.SCX,
				WY:      gb.PPU.WY,
				WX:      gb.PPU.WX,
				BGP:     gb.PPU.BGP,
				OBP0:    gb.PPU.OBP0,
				OBP1:    gb.PPU.OBP1,
			},
			Serial: &serialState{
				SB: gb.Serial.SB,
				SC: gb.Serial.SC,
			},
			Joypad: gb.Input.String(),
			Cartridge: &cartridgeState{
				Filename: gb.Cart.Filename,
				Mapper:   gb.Cart.ID(),
				NumBanks: gb.Cart.NumBanks(),
				ROMXBank: gb.Cart.ROMXBank(),
				Header:   &hdr,
			},
		},
	}

	if err := gb.Error(); err != nil {
		s.Error = err.Error()
	}

	return s
}

// Write the state of the hardware to w.
func Write(w io.Writer, gb *hardware.GameBoy) {
	memviz.Map(w, newSnapshot(gb))
}

// Save the state of the hardware to the named file.
func Save(filename string, gb *hardware.GameBoy) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DiagnosticsError, err)
	}
	defer f.Close()

	Write(f, gb)
	return nil
}
