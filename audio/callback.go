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

package audio

// Callback is a Sink that forwards audio to the host as soon as it is
// produced. The host is responsible for any buffering.
type Callback struct {
	sampleRate int
	fn         func(left, right []float32)
}

// NewCallback is the preferred method of initialisation for the Callback type.
// The function will be called from the emulation goroutine and must not
// block for longer than necessary.
func NewCallback(sampleRate int, fn func(left, right []float32)) *Callback {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &Callback{
		sampleRate: sampleRate,
		fn:         fn,
	}
}

// Play implements the Sink interface. The data is copied so the host may
// retain the slices. The two slices given to the host are always of equal
// length.
func (cb *Callback) Play(left, right []float32) {
	if cb.fn == nil {
		return
	}
	n := min(len(left), len(right))
	if n == 0 {
		return
	}
	l := make([]float32, n)
	r := make([]float32, n)
	copy(l, left)
	copy(r, right)
	cb.fn(l, r)
}

// SampleRate implements the Sink interface.
func (cb *Callback) SampleRate() int {
	return cb.sampleRate
}

// Underflowed implements the Sink interface. The host owns the buffer so we
// can never know if it has underflowed.
func (cb *Callback) Underflowed() bool {
	return false
}
