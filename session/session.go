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

package session

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/audio/otoaudio"
	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/engine/dummy"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/pipeline"
	"github.com/retromachines/retrocore/scheduler"
	"github.com/retromachines/retrocore/userinput"
	"github.com/retromachines/retrocore/wavwriter"
)

// ConstructionFailed is the pattern of all errors returned by New().
const ConstructionFailed = "session: construction failed: %v"

// State of a Session.
type State int32

// List of valid State values.
const (
	Created State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// the parts of a Session that are handed to the scheduler
type bundle struct {
	eng    engine.Engine
	frames *pipeline.FrameSender
	events *pipeline.EventReceiver
}

// release the bundle without it ever having been run
func (b *bundle) release() {
	b.frames.Close()
	b.events.Close()
	if c, ok := b.eng.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}
}

// Session is a single emulation. See the package documentation for the
// lifecycle.
type Session struct {
	id uuid.UUID

	inner atomic.Pointer[bundle]
	sched *scheduler.Scheduler

	frames *pipeline.FrameReceiver
	events *pipeline.EventSender

	// non-nil if audio is played through the native device
	buffer *audio.Buffer

	// non-nil if audio is being recorded. the recording is completed when
	// the scheduler terminates
	wav *wavwriter.WavWriter

	// resources that must live for as long as the Session
	keepAlive []io.Closer

	state     atomic.Int32
	destroyed atomic.Bool
}

// New creates a Session for the ROM. No resources are held if an error is
// returned. All errors match the ConstructionFailed pattern.
func New(rom []byte, opts Options) (*Session, error) {
	if opts.Factory == nil {
		opts.Factory = dummy.Factory
	}
	if opts.SampleRate == 0 {
		opts.SampleRate = clocks.SampleRate
	}

	sched, err := scheduler.New(opts.Scheduler)
	if err != nil {
		return nil, curated.Errorf(ConstructionFailed, err)
	}

	eng, err := opts.Factory(rom, opts.Revision, engine.FactoryOptions{
		SavePath:     opts.SavePath,
		SkipChecksum: opts.SkipChecksum,
	})
	if err != nil {
		return nil, curated.Errorf(ConstructionFailed, err)
	}

	s := &Session{
		id:    uuid.New(),
		sched: sched,
	}

	sink, err := s.openAudio(opts)
	if err != nil {
		if c, ok := eng.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, curated.Errorf(ConstructionFailed, err)
	}

	if opts.WavFile != "" {
		s.wav = wavwriter.New(opts.WavFile, sink)
		sink = s.wav
	}

	eng.SetAudioSink(sink)
	eng.SetTextOutput(opts.Text)

	fs, fr := pipeline.NewFrames()
	es, er := pipeline.NewEvents()

	s.frames = fr
	s.events = es
	s.inner.Store(&bundle{
		eng:    eng,
		frames: fs,
		events: er,
	})
	s.state.Store(int32(Created))

	logger.Logf(logger.Allow, "session", "%s: created (%s, audio %s)", s.id, opts.Revision, opts.Audio)

	return s, nil
}

func (s *Session) openAudio(opts Options) (audio.Sink, error) {
	switch opts.Audio {
	case AudioNone:
		return audio.Discard, nil
	case AudioNative:
		buf := audio.NewBuffer(opts.SampleRate)
		out, err := otoaudio.New(buf)
		if err != nil {
			return nil, err
		}
		s.buffer = buf
		s.keepAlive = append(s.keepAlive, out)
		return buf, nil
	case AudioHost:
		if opts.HostAudio == nil {
			return nil, curated.Errorf(NoHostAudio)
		}
		return audio.NewCallback(opts.SampleRate, opts.HostAudio), nil
	}
	return nil, curated.Errorf(UnknownAudioMode, opts.Audio)
}

// ID returns the unique identifier of the Session.
func (s *Session) ID() string {
	return s.id.String()
}

// State returns the current state of the Session.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Stats returns the scheduler's statistics.
func (s *Session) Stats() scheduler.Stats {
	return s.sched.Stats()
}

// AudioBuffer returns the buffer feeding the native audio device. Returns nil
// if the Session is not using native audio.
func (s *Session) AudioBuffer() *audio.Buffer {
	return s.buffer
}

// Run the emulation. Run() should be called from a dedicated goroutine and
// does not return until the emulation has terminated.
//
// Calling Run() more than once, or after Destroy(), will cause a panic.
func (s *Session) Run() scheduler.Reason {
	b := s.inner.Swap(nil)
	if b == nil {
		panic(fmt.Sprintf("session: %s: Run() on a session that has already run or been destroyed", s.id))
	}

	s.state.Store(int32(Running))
	logger.Logf(logger.Allow, "session", "%s: running", s.id)

	r := s.sched.Run(b.eng, b.frames, b.events)

	// the engine will play no more audio so the recording can be completed
	s.closeWav()

	s.state.Store(int32(Terminated))
	logger.Logf(logger.Allow, "session", "%s: terminated (%s)", s.id, r)

	return r
}

// PollFrame blocks until a frame is available. The boolean is false if the
// emulation has terminated and all frames have been consumed.
//
// Calling PollFrame() after Destroy() will cause a panic.
func (s *Session) PollFrame() ([]byte, bool) {
	if s.destroyed.Load() {
		panic(fmt.Sprintf("session: %s: PollFrame() after Destroy()", s.id))
	}
	return s.frames.Poll()
}

// SendEvent queues an event for the emulation. It does not block. Events sent
// after the emulation has terminated are ignored.
//
// Calling SendEvent() after Destroy() will cause a panic.
func (s *Session) SendEvent(ev userinput.Event) {
	if s.destroyed.Load() {
		panic(fmt.Sprintf("session: %s: SendEvent() after Destroy()", s.id))
	}
	if err := s.events.Send(ev); err != nil && !curated.Is(err, pipeline.Disconnected) {
		logger.Log(logger.Allow, "session", err)
	}
}

// Destroy releases the resources held by the Session. If the Session is
// running, the scheduler will terminate once it has seen any queued events.
// If the Session was never run then the Engine is released immediately.
//
// Calling Destroy() more than once will cause a panic.
func (s *Session) Destroy() {
	if !s.destroyed.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("session: %s: Destroy() called more than once", s.id))
	}

	s.events.Close()
	s.frames.Close()

	if b := s.inner.Swap(nil); b != nil {
		b.release()
		s.closeWav()
		s.state.Store(int32(Terminated))
	}

	for _, c := range s.keepAlive {
		if err := c.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}

	logger.Logf(logger.Allow, "session", "%s: destroyed", s.id)
}

func (s *Session) closeWav() {
	if s.wav == nil {
		return
	}
	if err := s.wav.Close(); err != nil {
		logger.Log(logger.Allow, "session", err)
	}
}
