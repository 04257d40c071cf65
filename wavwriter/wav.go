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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when the WavWriter is closed. It is therefore probably only suitable for
// testing and for short recordings.
//
// The WavWriter is an audio.Sink that decorates another sink, so audio can be
// recorded while it is being played.
package wavwriter

import (
	"os"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/logger"
)

const bitDepth = 16

// WavWriter implements the audio.Sink interface.
type WavWriter struct {
	filename string
	sink     audio.Sink

	crit   sync.Mutex
	buffer []int
	closed bool
}

// New is the preferred method of initialisation for the WavWriter type. All
// audio will be forwarded to the sink argument. If sink is nil then
// audio.Discard is used.
func New(filename string, sink audio.Sink) *WavWriter {
	if sink == nil {
		sink = audio.Discard
	}
	return &WavWriter{
		filename: filename,
		sink:     sink,
		buffer:   make([]int, 0),
	}
}

// convert float sample in the range -1.0 to 1.0 to a signed 16 bit value
func quantise(v float32) int {
	v = max(-1.0, min(1.0, v))
	return int(v * 32767)
}

// Play implements the audio.Sink interface.
func (aw *WavWriter) Play(left, right []float32) {
	aw.sink.Play(left, right)

	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return
	}

	n := min(len(left), len(right))
	for i := range n {
		aw.buffer = append(aw.buffer, quantise(left[i]), quantise(right[i]))
	}
}

// SampleRate implements the audio.Sink interface.
func (aw *WavWriter) SampleRate() int {
	return aw.sink.SampleRate()
}

// Underflowed implements the audio.Sink interface.
func (aw *WavWriter) Underflowed() bool {
	return aw.sink.Underflowed()
}

// Resync implements the audio.Resyncer interface. The request is forwarded
// to the decorated sink. The recording is not affected.
func (aw *WavWriter) Resync() {
	if r, ok := aw.sink.(audio.Resyncer); ok {
		r.Resync()
	}
}

// Len returns the number of stereo samples recorded so far.
func (aw *WavWriter) Len() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer) / 2
}

// Close writes the recorded audio to disk. Audio played after Close() is
// forwarded to the decorated sink but is not recorded. Calling Close() more
// than once has no effect.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return nil
	}
	aw.closed = true

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	rate := aw.sink.SampleRate()
	enc := wav.NewEncoder(f, rate, bitDepth, 2, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 2,
			SampleRate:  rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
