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

// Package ppu implements the pixel processing unit. The PPU is a state
// machine that is advanced one dot at a time. Each scanline is 456 dots
// long and there are 154 scanlines per frame, the last ten of which are the
// vertical blank.
//
// Visible scanlines pass through three modes: the OAM search (mode 2), the
// pixel transfer (mode 3) and the horizontal blank (mode 0). The length of
// the pixel transfer depends on the fine horizontal scroll, the number of
// sprites on the line and whether the window is visible. The horizontal
// blank takes up the remainder of the line.
//
// The scanline is rendered in its entirety at the end of the pixel transfer.
// Changes to the PPU registers during the transfer are therefore not seen
// until the following scanline.
//
// Completed frames are published on entry to the vertical blank. The frame
// is available with the Frame() function and is also sent to every attached
// FrameRenderer.
package ppu
