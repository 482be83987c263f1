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

package cartridge_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

// makeROM creates cartridge data with a valid header. the first byte of every
// ROM bank is the bank number.
func makeROM(cartType uint8, romCode uint8, ramCode uint8) []byte {
	data := make([]byte, 0x8000<<romCode)
	for b := 0; b < len(data)/0x4000; b++ {
		data[b*0x4000] = uint8(b)
		data[b*0x4000+1] = uint8(b >> 8)
	}
	copy(data[addresses.HeaderTitle:], "TESTCART")
	data[addresses.HeaderCartType] = cartType
	data[addresses.HeaderROMSize] = romCode
	data[addresses.HeaderRAMSize] = ramCode
	data[addresses.HeaderChecksum] = cartridge.HeaderChecksum(data)
	return data
}

func attach(t *testing.T, data []byte) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge(logger.Allow)
	cl := cartridgeloader.NewLoader("test.gb")
	cl.Data = data
	test.DemandSuccess(t, cart.Attach(cl))
	return cart
}

func TestHeader(t *testing.T) {
	data := makeROM(0x03, 2, 3)
	h, err := cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title, "TESTCART")
	test.ExpectEquality(t, h.CartType, uint8(0x03))
	test.ExpectEquality(t, h.ROMSize, 0x20000)
	test.ExpectEquality(t, h.RAMSize, 0x8000)
	test.ExpectSuccess(t, h.ChecksumValid)
	test.ExpectSuccess(t, h.HasBattery())

	_, err = cartridge.ParseHeader(data[:0x100])
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidRomHeader))

	// declared size larger than the image
	data[addresses.HeaderROMSize] = 3
	_, err = cartridge.ParseHeader(data)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidRomHeader))
}

func TestUnsupportedType(t *testing.T) {
	cart := cartridge.NewCartridge(logger.Allow)
	cl := cartridgeloader.NewLoader("test.gb")
	cl.Data = makeROM(0xfc, 0, 0)
	err := cart.Attach(cl)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidRomHeader))
	test.ExpectSuccess(t, cart.IsEjected())
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge(logger.Allow)
	test.ExpectSuccess(t, cart.IsEjected())
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0xff))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0xff))
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
}

func TestROMOnly(t *testing.T) {
	cart := attach(t, makeROM(0x00, 0, 0))
	test.ExpectEquality(t, cart.ID(), "ROM")
	test.ExpectEquality(t, cart.NumBanks(), 2)
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// writes to ROM have no effect
	cart.Write(0x2000, 0x05)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// no RAM
	cart.Write(0xa000, 0x12)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	cart = attach(t, makeROM(0x08, 0, 2))
	cart.Write(0xa000, 0x12)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x12))
}

func TestMBC1(t *testing.T) {
	cart := attach(t, makeROM(0x03, 5, 3))
	test.ExpectEquality(t, cart.ID(), "MBC1")
	test.ExpectEquality(t, cart.NumBanks(), 64)

	// bank zero selects bank one
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	cart.Write(0x2000, 0x02)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(2))

	// upper bits
	cart.Write(0x4000, 0x01)
	test.ExpectEquality(t, cart.ROMXBank(), 0x22)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x22))
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0))

	// mode 1 maps the upper bits into ROM0 as well
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0x20))

	// RAM is disabled until enabled
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x55))

	// RAM bank is the upper bits register in mode 1
	cart.Write(0x4000, 0x02)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0x4000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x55))

	cart.Write(0x0000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
}

func TestMBC1Wrap(t *testing.T) {
	cart := attach(t, makeROM(0x01, 1, 0))
	test.ExpectEquality(t, cart.NumBanks(), 4)
	cart.Write(0x2000, 0x05)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))
	cart.Write(0x2000, 0x03)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(3))
}

func TestMBC2(t *testing.T) {
	cart := attach(t, makeROM(0x06, 3, 0))
	test.ExpectEquality(t, cart.ID(), "MBC2")

	// address bit 8 set selects ROM bank register
	cart.Write(0x2100, 0x03)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(3))
	cart.Write(0x2100, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	// address bit 8 clear selects RAM enable register
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x05)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xf5))

	// RAM is mirrored every 512 bytes
	test.ExpectEquality(t, cart.Read(0xa200), uint8(0xf5))
	test.ExpectEquality(t, cart.Read(0xbe00), uint8(0xf5))
}

func TestMBC3(t *testing.T) {
	cart := attach(t, makeROM(0x13, 6, 3))
	test.ExpectEquality(t, cart.ID(), "MBC3")
	test.ExpectEquality(t, cart.NumBanks(), 128)

	cart.Write(0x2000, 0x7f)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x7f))
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))

	cart.Write(0x0000, 0x0a)
	for b := uint8(0); b < 4; b++ {
		cart.Write(0x4000, b)
		cart.Write(0xa000, 0x10+b)
	}
	for b := uint8(0); b < 4; b++ {
		cart.Write(0x4000, b)
		test.ExpectEquality(t, cart.Read(0xa000), 0x10+b)
	}

	// no clock on this cartridge type
	cart.Write(0x4000, 0x08)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
}

func TestMBC3Clock(t *testing.T) {
	cart := attach(t, makeROM(0x10, 0, 2))
	cart.Write(0x0000, 0x0a)

	cart.Step(4194304 * 61)

	// values are not visible until latched
	cart.Write(0x4000, 0x08)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0))

	cart.Write(0x6000, 0x00)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(1))
	cart.Write(0x4000, 0x09)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(1))

	// halted clock does not advance
	cart.Write(0x4000, 0x0c)
	cart.Write(0xa000, 0x40)
	cart.Step(4194304 * 10)
	cart.Write(0x6000, 0x00)
	cart.Write(0x6000, 0x01)
	cart.Write(0x4000, 0x08)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(1))
}

func TestMBC5(t *testing.T) {
	cart := attach(t, makeROM(0x1b, 3, 4))
	test.ExpectEquality(t, cart.ID(), "MBC5")

	// bank zero can be mapped into the switchable area
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0))
	cart.Write(0x2000, 0x0f)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x0f))

	// ninth bit wraps on a small cartridge
	cart.Write(0x3000, 0x01)
	test.ExpectEquality(t, cart.ROMXBank(), 0x10f%16)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x0f)
	cart.Write(0xbfff, 0x99)
	test.ExpectEquality(t, cart.Read(0xbfff), uint8(0x99))
	cart.Write(0x4000, 0x00)
	test.ExpectEquality(t, cart.Read(0xbfff), uint8(0x00))
}
