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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/retromachines/retrocore/clocks"
)

// length of buffer is arbitrary. the first bytes of the buffer are the
// previous digest value
const audioBufferLength = 1024 * 8

// Audio is a Digest of an audio stream. It implements the audio.Sink
// interface.
type Audio struct {
	digest     [sha1.Size]byte
	buffer     []byte
	bufferCt   int
	sampleRate int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) *Audio {
	if sampleRate <= 0 {
		sampleRate = clocks.SampleRate
	}
	return &Audio{
		buffer:     make([]byte, audioBufferLength),
		bufferCt:   sha1.Size,
		sampleRate: sampleRate,
	}
}

// Hash implements the Digest interface. Samples that have not yet been
// flushed are not included.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface. Unflushed samples are
// discarded.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// Play implements the audio.Sink interface.
func (dig *Audio) Play(left, right []float32) {
	n := min(len(left), len(right))
	for i := range n {
		dig.add(left[i])
		dig.add(right[i])
	}
}

func (dig *Audio) add(v float32) {
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(v))
	dig.bufferCt += 4
	if dig.bufferCt >= audioBufferLength {
		dig.Flush()
	}
}

// Flush adds buffered samples to the digest.
func (dig *Audio) Flush() {
	if dig.bufferCt == sha1.Size {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}

// SampleRate implements the audio.Sink interface.
func (dig *Audio) SampleRate() int {
	return dig.sampleRate
}

// Underflowed implements the audio.Sink interface.
func (dig *Audio) Underflowed() bool {
	return false
}
