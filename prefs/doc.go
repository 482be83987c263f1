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

// Package prefs facilitates the storage of preferential values in the
// emulator. Values are stored on disk as "key :: value" lines in a plain text
// file. A preferences file can be shared by several Disk instances; saving
// one Disk will not clobber the entries added by another.
//
// Values are typed: Bool, String, Int, Float and Generic. The Generic type
// allows any value that can be represented as a string to be stored, by
// means of set and get functions supplied on creation.
//
// Individual values can be overridden from the command line with the
// PushCommandLineStack() function. Values taken from the command line stack
// are applied when the Disk is loaded and are never saved to disk unless
// they are subsequently changed.
package prefs
