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

// Package curated wraps the Go error type with "pattern" errors. A curated
// error keeps the formatting pattern it was created with, which means that
// code higher up the call stack can test for a specific kind of error without
// resorting to string comparison of the final message.
//
// Sentinel patterns are stored as const strings in the package that
// produces them. For example, the cpu package exports:
//
//	const InvalidOpcode = "cpu: invalid opcode (%#02x) at %#04x"
//
// which a caller can test for with:
//
//	if curated.Is(err, cpu.InvalidOpcode) {
//		...
//	}
//
// Has() performs the same test but looks through the whole chain of curated
// errors passed as values to Errorf().
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, where parts are separated by ": ". This means that it is
// safe for each layer to wrap an error with its own package prefix:
//
//	memory: memory: inaccessible address
//
// will be reported as:
//
//	memory: inaccessible address
package curated
