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

package hardware

import (
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
)

// register values left by the boot ROM. the order is the order in which the
// values are written.
var postBootIO = []struct {
	address uint16
	data    uint8
}{
	{addresses.TIMA, 0x00},
	{addresses.TMA, 0x00},
	{addresses.TAC, 0x00},
	{addresses.NR52, 0xf1},
	{addresses.NR10, 0x80},
	{addresses.NR11, 0xbf},
	{addresses.NR12, 0xf3},
	{addresses.NR14, 0xbf},
	{addresses.NR21, 0x3f},
	{addresses.NR22, 0x00},
	{addresses.NR24, 0xbf},
	{addresses.NR30, 0x7f},
	{addresses.NR31, 0xff},
	{addresses.NR32, 0x9f},
	{addresses.NR34, 0xbf},
	{addresses.NR41, 0xff},
	{addresses.NR42, 0x00},
	{addresses.NR43, 0x00},
	{addresses.NR44, 0xbf},
	{addresses.NR50, 0x77},
	{addresses.NR51, 0xf3},
	{addresses.SCY, 0x00},
	{addresses.SCX, 0x00},
	{addresses.LYC, 0x00},
	{addresses.BGP, 0xfc},
	{addresses.OBP0, 0xff},
	{addresses.OBP1, 0xff},
	{addresses.WY, 0x00},
	{addresses.WX, 0x00},
	{addresses.LCDC, 0x91},
	{addresses.IE, 0x00},
}

// postBoot puts the hardware into the state the boot ROM hands over in.
func (gb *GameBoy) postBoot() error {
	gb.CPU.PostBoot()

	for _, r := range postBootIO {
		if err := gb.Mem.Write(r.address, r.data); err != nil {
			return err
		}
	}

	gb.Timer.Counter = timer.PostBootCounter
	gb.Interrupts.IF = interrupts.VBlank.Bit()

	return nil
}
