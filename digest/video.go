// This file is part of Retrocore.
//
// Retrocore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrocore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrocore.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
)

// Video is a Digest of a sequence of frames.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// room for the previous digest value followed by the frame
	return &Video{
		pixels: make([]byte, sha1.Size+clocks.FrameSize),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of frames added to the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// Frame adds a frame to the digest.
func (dig *Video) Frame(frame []byte) error {
	if len(frame) != clocks.FrameSize {
		return curated.Errorf("digest: %v", fmt.Sprintf("frame has wrong size (%d bytes)", len(frame)))
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[sha1.Size:], frame)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
