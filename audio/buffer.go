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

import (
	"encoding/binary"
	"math"
	"sync"
)

// the number of bytes in one interleaved stereo float32 sample, as read by
// the Read() function
const bytesPerSample = 8

// Buffer is a bounded FIFO of samples shared between the emulation goroutine
// (Push/Play) and the audio device callback (Drain/Read). The capacity is
// equal to the sample rate, ie. at most one second of audio is buffered.
type Buffer struct {
	crit sync.Mutex
	data []Sample

	sampleRate int
	capacity   int
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(sampleRate int) *Buffer {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &Buffer{
		sampleRate: sampleRate,
		capacity:   sampleRate,
		data:       make([]Sample, 0, sampleRate),
	}
}

// Push adds samples to the end of the buffer. Once the buffer is at capacity
// the remaining samples are dropped. The buffer is never allowed to grow
// beyond one second of audio so that a fast-forwarding emulation can not
// cause unbounded growth, and so that resynchronisation after fast-forward is
// quick.
func (b *Buffer) Push(samples ...Sample) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for _, s := range samples {
		if len(b.data) >= b.capacity {
			return
		}
		b.data = append(b.data, s)
	}
}

// Play implements the Sink interface.
func (b *Buffer) Play(left, right []float32) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(left), len(right))
	for i := range n {
		if len(b.data) >= b.capacity {
			return
		}
		b.data = append(b.data, Sample{Left: left[i], Right: right[i]})
	}
}

// Drain removes and returns up to n samples from the front of the buffer.
// Fewer than n samples are returned if the buffer does not hold enough. Drain
// never waits for more data.
func (b *Buffer) Drain(n int) []Sample {
	b.crit.Lock()
	defer b.crit.Unlock()

	n = max(0, min(n, len(b.data)))
	d := make([]Sample, n)
	copy(d, b.data[:n])
	b.consume(n)
	return d
}

// consume n samples from the front of the buffer. the backing array is reused
// so that steady state operation does not allocate. must be called in the
// critical section
func (b *Buffer) consume(n int) {
	r := copy(b.data, b.data[n:])
	b.data = b.data[:r]
}

// Read implements the io.Reader interface. It fills p with interleaved
// little-endian float32 stereo data, which is the format expected by the
// native audio device. If the buffer does not hold enough samples the
// remainder of p is filled with silence. Read always returns len(p).
func (b *Buffer) Read(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(p)/bytesPerSample, len(b.data))
	for i, s := range b.data[:n] {
		o := i * bytesPerSample
		binary.LittleEndian.PutUint32(p[o:], math.Float32bits(s.Left))
		binary.LittleEndian.PutUint32(p[o+4:], math.Float32bits(s.Right))
	}
	b.consume(n)

	clear(p[n*bytesPerSample:])

	return len(p), nil
}

// Underflowed implements the Sink interface. Returns true if the buffer is
// empty.
func (b *Buffer) Underflowed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.data) == 0
}

// SampleRate implements the Sink interface.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Resync implements the Resyncer interface. All buffered samples are
// discarded.
func (b *Buffer) Resync() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.data = b.data[:0]
}

// Len returns the number of buffered samples.
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.data)
}

// Capacity returns the maximum number of samples the buffer will hold.
func (b *Buffer) Capacity() int {
	return b.capacity
}
