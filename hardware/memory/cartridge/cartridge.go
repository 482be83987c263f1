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

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

const ejectedName = "ejected"

// Cartridge defines the information and operations for a Game Boy cartridge.
type Cartridge struct {
	env logger.Permission

	Filename string
	Hash     string
	Header   Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is initially ejected.
func NewCartridge(env logger.Permission) *Cartridge {
	cart := &Cartridge{env: env}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Eject removes the cartridge. The ejected cartridge reads 0xff for every
// address.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = &ejected{}
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach the cartridge loader. The data is loaded if necessary and the mapper
// is chosen from the cartridge type in the header.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	cart.Eject()

	h, err := ParseHeader(cartload.Data)
	if err != nil {
		return err
	}

	var m mapper

	switch h.CartType {
	case 0x00, 0x08, 0x09:
		m = newROMOnly(cartload.Data, h)
	case 0x01, 0x02, 0x03:
		m = newMBC1(cartload.Data, h)
	case 0x05, 0x06:
		m = newMBC2(cartload.Data)
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		m = newMBC3(cartload.Data, h)
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		m = newMBC5(cartload.Data, h)
	default:
		return curated.Errorf(InvalidRomHeader, fmt.Sprintf("unsupported cartridge type (%#02x)", h.CartType))
	}

	if !h.ChecksumValid {
		logger.Logf(cart.env, "cartridge", "header checksum mismatch (%#02x)", h.Checksum)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = h
	cart.mapper = m

	logger.Logf(cart.env, "cartridge", "%s: %s (%d banks)", h.Title, m.ID(), m.NumBanks())

	return nil
}

// Reset the mapper to its power-on state.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read is an implementation of the cartridge part of the memory bus.
// Addresses are in the ROM and external RAM areas.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.Read(addr)
}

// Write is an implementation of the cartridge part of the memory bus. Writes
// to the ROM area are commands to the memory bank controller.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// Step should be called with the number of cycles consumed by every CPU step.
func (cart *Cartridge) Step(cycles int) {
	cart.mapper.Step(cycles)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// ROMXBank returns the ROM bank mapped into the switchable area.
func (cart *Cartridge) ROMXBank() int {
	return cart.mapper.ROMXBank()
}
