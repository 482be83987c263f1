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

// ejected is the mapper used when no cartridge is attached. all reads return
// 0xff and all writes are ignored.
type ejected struct{}

func (cart *ejected) String() string {
	return "ejected"
}

func (cart *ejected) ID() string {
	return "-"
}

func (cart *ejected) Read(_ uint16) uint8 {
	return 0xff
}

func (cart *ejected) Write(_ uint16, _ uint8) {
}

func (cart *ejected) NumBanks() int {
	return 0
}

func (cart *ejected) Reset() {
}

func (cart *ejected) Step(_ int) {
}

func (cart *ejected) ROMXBank() int {
	return 0
}
