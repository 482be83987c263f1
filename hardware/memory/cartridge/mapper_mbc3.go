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

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// the number of cycles in one second of emulated time.
const rtcCyclesPerSecond = 4194304

// rtc register selectors, as written to the RAM bank register.
const (
	rtcSeconds = 0x08
	rtcMinutes = 0x09
	rtcHours   = 0x0a
	rtcDayLow  = 0x0b
	rtcDayHigh = 0x0c
)

// flags in the day high register.
const (
	rtcDayBit8  = 0x01
	rtcHalt     = 0x40
	rtcDayCarry = 0x80
)

// rtc is the real-time clock of the MBC3. the clock runs in emulated time,
// not wall-clock time.
type rtc struct {
	seconds uint8
	minutes uint8
	hours   uint8
	dayLow  uint8
	dayHigh uint8

	// cycles accumulated towards the next second
	cycles int
}

func (r *rtc) read(reg uint8) uint8 {
	switch reg {
	case rtcSeconds:
		return r.seconds
	case rtcMinutes:
		return r.minutes
	case rtcHours:
		return r.hours
	case rtcDayLow:
		return r.dayLow
	case rtcDayHigh:
		return r.dayHigh
	}
	return 0xff
}

func (r *rtc) write(reg uint8, data uint8) {
	switch reg {
	case rtcSeconds:
		r.seconds = data & 0x3f
		r.cycles = 0
	case rtcMinutes:
		r.minutes = data & 0x3f
	case rtcHours:
		r.hours = data & 0x1f
	case rtcDayLow:
		r.dayLow = data
	case rtcDayHigh:
		r.dayHigh = data & (rtcDayBit8 | rtcHalt | rtcDayCarry)
	}
}

func (r *rtc) step(cycles int) {
	if r.dayHigh&rtcHalt == rtcHalt {
		return
	}
	r.cycles += cycles
	for r.cycles >= rtcCyclesPerSecond {
		r.cycles -= rtcCyclesPerSecond
		r.tick()
	}
}

// tick advances the clock by one second.
func (r *rtc) tick() {
	r.seconds = (r.seconds + 1) & 0x3f
	if r.seconds != 60 {
		return
	}
	r.seconds = 0
	r.minutes = (r.minutes + 1) & 0x3f
	if r.minutes != 60 {
		return
	}
	r.minutes = 0
	r.hours = (r.hours + 1) & 0x1f
	if r.hours != 24 {
		return
	}
	r.hours = 0

	day := (uint16(r.dayHigh&rtcDayBit8)<<8 | uint16(r.dayLow)) + 1
	if day > 0x1ff {
		day = 0
		r.dayHigh |= rtcDayCarry
	}
	r.dayLow = uint8(day)
	r.dayHigh = r.dayHigh&^rtcDayBit8 | uint8(day>>8)&rtcDayBit8
}

type mbc3 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [][]uint8

	hasRTC bool
	state  mbc3State
}

type mbc3State struct {
	ramEnabled bool
	romBank    uint8

	// either a RAM bank (0 to 3) or an RTC register (0x08 to 0x0c)
	ramBank uint8

	clock   rtc
	latched rtc

	// the last value written to the latch register. the clock is latched on
	// a write of one following a write of zero
	latch uint8
}

func newMBC3(data []byte, h Header) *mbc3 {
	cart := &mbc3{
		mappingID:   "MBC3",
		description: "memory bank controller 3",
		banks:       romBanks(data),
		ram:         ramBanks(h.RAMSize),
		hasRTC:      h.CartType == 0x0f || h.CartType == 0x10,
	}
	if cart.hasRTC {
		cart.description = "memory bank controller 3 with clock"
	}
	cart.Reset()
	return cart
}

func (cart *mbc3) String() string {
	return fmt.Sprintf("%s [%s] ROM bank: %d, RAM bank: %d", cart.mappingID, cart.description,
		cart.ROMXBank(), cart.state.ramBank)
}

func (cart *mbc3) ID() string {
	return cart.mappingID
}

func (cart *mbc3) Reset() {
	cart.state = mbc3State{romBank: 1, latch: 0xff}
}

func (cart *mbc3) ROMXBank() int {
	return int(cart.state.romBank) % len(cart.banks)
}

func (cart *mbc3) Read(addr uint16) uint8 {
	switch {
	case addr <= memorymap.MemtopROM0:
		return readROM(cart.banks, 0, addr)
	case addr <= memorymap.MemtopROMX:
		return readROM(cart.banks, cart.ROMXBank(), addr-memorymap.OriginROMX)
	case isExtRAM(addr):
		if !cart.state.ramEnabled {
			return 0xff
		}
		if cart.state.ramBank >= rtcSeconds {
			if !cart.hasRTC {
				return 0xff
			}
			return cart.state.latched.read(cart.state.ramBank)
		}
		return readRAM(cart.ram, int(cart.state.ramBank), addr)
	}
	return 0xff
}

func (cart *mbc3) Write(addr uint16, data uint8) {
	switch {
	case addr <= 0x1fff:
		cart.state.ramEnabled = data&0x0f == 0x0a
	case addr <= 0x3fff:
		cart.state.romBank = data & 0x7f
		if cart.state.romBank == 0 {
			cart.state.romBank = 1
		}
	case addr <= 0x5fff:
		cart.state.ramBank = data & 0x0f
	case addr <= 0x7fff:
		if cart.state.latch == 0x00 && data == 0x01 {
			cart.state.latched = cart.state.clock
		}
		cart.state.latch = data
	case isExtRAM(addr):
		if !cart.state.ramEnabled {
			return
		}
		if cart.state.ramBank >= rtcSeconds {
			if cart.hasRTC {
				cart.state.clock.write(cart.state.ramBank, data)
				cart.state.latched.write(cart.state.ramBank, data)
			}
			return
		}
		writeRAM(cart.ram, int(cart.state.ramBank), addr, data)
	}
}

func (cart *mbc3) NumBanks() int {
	return len(cart.banks)
}

func (cart *mbc3) Step(cycles int) {
	if cart.hasRTC {
		cart.state.clock.step(cycles)
	}
}
