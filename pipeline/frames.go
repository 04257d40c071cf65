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

package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/retromachines/retrocore/curated"
)

// Frame is the pixel data for one complete screen. A frame must not be
// modified once it has been published.
type Frame []byte

type frames struct {
	slot chan Frame

	// closed when the receiver is closed
	detached   chan struct{}
	detachOnce sync.Once

	// the slot channel is closed by the sender
	endOnce sync.Once

	published atomic.Uint64
	dropped   atomic.Uint64
}

// FrameSender is the publishing endpoint of the frame pipeline.
type FrameSender struct {
	f *frames
}

// FrameReceiver is the consuming endpoint of the frame pipeline.
type FrameReceiver struct {
	f *frames
}

// NewFrames creates a frame pipeline and returns both endpoints.
func NewFrames() (*FrameSender, *FrameReceiver) {
	f := &frames{
		slot:     make(chan Frame, 1),
		detached: make(chan struct{}),
	}
	return &FrameSender{f: f}, &FrameReceiver{f: f}
}

// Publish a frame without blocking. If the slot is occupied by an earlier
// frame that has not yet been consumed, the new frame is dropped and the
// function returns nil. Only when the receiver has been closed does Publish
// return an error (the Disconnected pattern).
func (s *FrameSender) Publish(frame Frame) error {
	select {
	case <-s.f.detached:
		return curated.Errorf(Disconnected)
	default:
	}

	select {
	case s.f.slot <- frame:
		s.f.published.Add(1)
	default:
		s.f.dropped.Add(1)
	}

	return nil
}

// Close the sender. The receiver will see end-of-stream once any frame in the
// slot has been consumed. Publish() must not be called after Close().
func (s *FrameSender) Close() {
	s.f.endOnce.Do(func() {
		close(s.f.slot)
	})
}

// Published returns the number of frames that have been placed in the slot.
func (s *FrameSender) Published() uint64 {
	return s.f.published.Load()
}

// Dropped returns the number of frames discarded because the slot was
// occupied.
func (s *FrameSender) Dropped() uint64 {
	return s.f.dropped.Load()
}

// Poll blocks until a frame is available. The boolean return value is false
// when the sender has been closed and there are no more frames.
func (r *FrameReceiver) Poll() (Frame, bool) {
	frame, ok := <-r.f.slot
	return frame, ok
}

// Close the receiver. Subsequent calls to Publish() will return the
// Disconnected error. It is safe to call Close() more than once.
func (r *FrameReceiver) Close() {
	r.f.detachOnce.Do(func() {
		close(r.f.detached)
	})
}
