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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
)

// InvalidRomHeader is returned when the cartridge data cannot be used.
const InvalidRomHeader = "cartridge: invalid rom header: %v"

// the size of a ROM bank and a RAM bank in bytes.
const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// Header is the information in the cartridge header that is relevant to the
// emulation.
type Header struct {
	Title    string
	CartType uint8

	// size of ROM as declared by the header
	ROMSize int

	// size of external RAM as declared by the header. does not include the
	// RAM built into MBC2
	RAMSize int

	// the header checksum and whether the stored checksum matches the data
	Checksum      uint8
	ChecksumValid bool
}

func (h Header) String() string {
	return fmt.Sprintf("%s [type %02x, %dk ROM, %dk RAM]", h.Title, h.CartType, h.ROMSize/1024, h.RAMSize/1024)
}

// HasBattery returns true if the cartridge type indicates battery backed RAM.
func (h Header) HasBattery() bool {
	switch h.CartType {
	case 0x03, 0x06, 0x09, 0x0f, 0x10, 0x13, 0x1b, 0x1e:
		return true
	}
	return false
}

// ParseHeader reads the header information from the cartridge data. The data
// must be at least as large as the ROM size declared in the header.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) <= int(addresses.HeaderEnd) {
		return h, curated.Errorf(InvalidRomHeader, fmt.Sprintf("image too small (%d bytes)", len(data)))
	}

	title := data[addresses.HeaderTitle : addresses.HeaderTitleEnd+1]
	h.Title = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, string(title)))

	h.CartType = data[addresses.HeaderCartType]

	romCode := data[addresses.HeaderROMSize]
	if romCode > 0x08 {
		return h, curated.Errorf(InvalidRomHeader, fmt.Sprintf("unsupported rom size code (%#02x)", romCode))
	}
	h.ROMSize = 0x8000 << romCode
	if len(data) < h.ROMSize {
		return h, curated.Errorf(InvalidRomHeader, fmt.Sprintf("rom image truncated (%d of %d bytes)", len(data), h.ROMSize))
	}

	switch ramCode := data[addresses.HeaderRAMSize]; ramCode {
	case 0x00:
		h.RAMSize = 0
	case 0x01:
		h.RAMSize = 0x800
	case 0x02:
		h.RAMSize = 0x2000
	case 0x03:
		h.RAMSize = 0x8000
	case 0x04:
		h.RAMSize = 0x20000
	case 0x05:
		h.RAMSize = 0x10000
	default:
		return h, curated.Errorf(InvalidRomHeader, fmt.Sprintf("unsupported ram size code (%#02x)", ramCode))
	}

	h.Checksum = HeaderChecksum(data)
	h.ChecksumValid = h.Checksum == data[addresses.HeaderChecksum]

	return h, nil
}

// HeaderChecksum computes the checksum of the header bytes in the same way
// as the boot ROM.
func HeaderChecksum(data []byte) uint8 {
	var x uint8
	for _, b := range data[addresses.HeaderTitle : addresses.HeaderChecksumEnd+1] {
		x = x - b - 1
	}
	return x
}
