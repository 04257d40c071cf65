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

// Package audio decouples the production of audio samples, which happens on
// the emulation goroutine at a rate driven by emulated cycles, from their
// consumption, which happens in a platform audio callback at a rate driven by
// the wall-clock.
//
// The Engine depends only on the Sink interface. Three implementations are
// provided: Buffer, which is read by a native audio device (see the otoaudio
// package); Callback, which forwards samples to a function supplied by the
// host; and Discard.
//
// None of the implementations block and none of the overflow or underflow
// conditions are errors. A full Buffer drops incoming samples and an empty
// Buffer is padded with silence by the reader.
package audio

// Sample is the left and right amplitude for a single sampling instant.
type Sample struct {
	Left  float32
	Right float32
}

// Sink is the capability the Engine requires of an audio output.
type Sink interface {
	// Play queues matched-length left and right channel data. Play must not
	// block.
	Play(left, right []float32)

	// SampleRate is fixed for the lifetime of the Sink.
	SampleRate() int

	// Underflowed returns true if the consumer has run out of data. The
	// Engine can use this to favour audio catch-up.
	Underflowed() bool
}

// Resyncer is implemented by sinks that can discard buffered audio. Used when
// the emulation leaves fast-forward so that the stale audio accumulated in
// the meantime is not played.
type Resyncer interface {
	Resync()
}

// Discard is a Sink that throws everything away.
var Discard Sink = discard{}

type discard struct{}

func (discard) Play(_, _ []float32) {}

func (discard) SampleRate() int {
	return defaultSampleRate
}

func (discard) Underflowed() bool {
	return false
}

const defaultSampleRate = 44100
