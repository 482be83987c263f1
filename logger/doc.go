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

// Package logger is the central log for the emulator. Entries are tagged and
// consecutive duplicate entries are collapsed into a single entry with a
// repeat count.
//
// Logging requests must be accompanied by a Permission. The hardware package
// implements the Permission interface so that emulation instances that are
// not the main instance (for example, instances created during testing) can
// be prevented from adding to the log.
//
// For most purposes the package level functions should be used. These write
// to the central logger. Independent loggers can be created with NewLogger(),
// which is useful for testing.
package logger
