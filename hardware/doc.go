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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GameBoy type owns every component of the console. The CPU is stepped
// one instruction at a time and the number of cycles consumed by each step
// is then replayed, in the same increment, against the timer, the serial
// port, the cartridge clock and the PPU. Interrupts requested by those
// components are seen by the CPU at the start of its next step.
//
// Preferences that affect the hardware are in the preferences sub-package.
package hardware
