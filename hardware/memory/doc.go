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

// Package memory implements the memory bus. Every access by the CPU is
// routed through the Read() and Write() functions of the Memory type, which
// use the partition table in the memorymap package to decide which
// component services the access.
//
// The Memory type owns the work RAM, the high RAM and the storage for the
// I/O registers that have no other owner (the audio registers). It also owns
// the cartridge, the PPU, the timer, the joypad and the serial port. The
// side effects of writing to an I/O register, such as the DMA transfer and
// the removal of the boot ROM, are implemented here.
package memory
