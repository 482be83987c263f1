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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/ppu"
)

// Video is an implementation of the ppu.FrameRenderer interface with an
// embedded frame buffer hash.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// the start of the pixels array is reserved for the digest of the
	// previous frame
	return &Video{
		pixels: make([]byte, sha1.Size+ppu.ScreenWidth*ppu.ScreenHeight),
	}
}

func (dig *Video) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frameNum)
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame implements ppu.FrameRenderer interface.
func (dig *Video) NewFrame(frame ppu.FrameBuffer) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	for y := range frame {
		n += copy(dig.pixels[n:], frame[y][:])
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return nil
}
