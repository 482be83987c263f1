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

// Package cpu emulates the Sharp LR35902 CPU. Register logic is implemented
// by the types in the registers sub-package and the instruction set is
// defined in the instructions sub-package.
//
// The ExecuteInstruction() function performs one step of the CPU and
// returns the number of clock cycles consumed. A step is one of: an
// instruction, the dispatch of an interrupt, or an idle cycle while the CPU
// is halted or stopped. It is the responsibility of the caller to advance the
// other components of the console by the returned number of cycles.
//
// Interrupts are only dispatched between steps. The interrupt with the
// lowest bit number has priority.
//
// An illegal opcode kills the CPU. Once killed, every step returns the same
// error until the CPU is reset.
package cpu
