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

// Package digest is used to create mathematical hashes of the emulation's
// output. The Video type implements the ppu.FrameRenderer interface and
// creates a new hash for every frame. The hash of each frame is chained with
// the hash of the previous frame, so the hash after N frames identifies the
// entire sequence of images.
//
// Digests are most useful for regression testing. Two emulations of the same
// cartridge for the same number of frames should produce the same digest.
package digest
