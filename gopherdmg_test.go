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

package main

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
)

func BenchmarkFrame(b *testing.B) {
	data := make([]byte, 0x8000)

	// loop incrementing A forever
	copy(data[addresses.HeaderEntryPoint:], []byte{0x3c, 0x18, 0xfd})
	copy(data[addresses.HeaderTitle:], "BENCH")
	data[addresses.HeaderChecksum] = cartridge.HeaderChecksum(data)

	gb, err := hardware.NewGameBoy(preferences.NewDefaults())
	if err != nil {
		b.Fatal(err)
	}
	gb.Quiet = true

	cl := cartridgeloader.NewLoader("bench.gb")
	cl.Data = data
	if err := gb.AttachCartridge(cl); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := gb.RunForFrameCount(1, nil); err != nil {
			b.Fatal(err)
		}
	}
}
