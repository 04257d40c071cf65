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

package session_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/engine/dummy"
	"github.com/retromachines/retrocore/scheduler"
	"github.com/retromachines/retrocore/session"
	"github.com/retromachines/retrocore/test"
	"github.com/retromachines/retrocore/userinput"
)

// closeCounter wraps the reference engine and counts calls to Close()
type closeCounter struct {
	*dummy.Dummy
	closed *atomic.Int32
}

func (c closeCounter) Close() error {
	c.closed.Add(1)
	return c.Dummy.Close()
}

func countingFactory(closed *atomic.Int32) engine.Factory {
	return func(rom []byte, rev engine.Revision, opts engine.FactoryOptions) (engine.Engine, error) {
		d, err := dummy.New(rom, rev, opts)
		if err != nil {
			return nil, err
		}
		return closeCounter{Dummy: d, closed: closed}, nil
	}
}

func runSession(s *session.Session) chan scheduler.Reason {
	done := make(chan scheduler.Reason, 1)
	go func() {
		done <- s.Run()
	}()
	return done
}

func waitFor(t *testing.T, done chan scheduler.Reason) scheduler.Reason {
	t.Helper()
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not terminate")
	}
	return scheduler.NotTerminated
}

func TestEndToEnd(t *testing.T) {
	var closed atomic.Int32

	s, err := session.New(cartridgeloader.NewBlankROM("E2E", false), session.Options{
		Factory: countingFactory(&closed),
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.State(), session.Created)
	test.ExpectInequality(t, s.ID(), "")
	test.ExpectEquality(t, s.AudioBuffer() == nil, true)

	done := runSession(s)
	s.SendEvent(userinput.Press(userinput.KeyA))

	frame, ok := s.PollFrame()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, len(frame), clocks.FrameSize)
	test.ExpectEquality(t, s.State(), session.Running)

	s.SendEvent(userinput.EventStop)
	test.ExpectEquality(t, waitFor(t, done), scheduler.Stopped)
	test.ExpectEquality(t, s.State(), session.Terminated)

	// at most one frame can be waiting in the pipeline after which the stream
	// ends
	_, ok = s.PollFrame()
	if ok {
		_, ok = s.PollFrame()
	}
	test.ExpectEquality(t, ok, false)

	st := s.Stats()
	test.ExpectEquality(t, st.Reason, scheduler.Stopped)
	test.ExpectEquality(t, st.Events, uint64(2))

	// events sent after termination are ignored
	s.SendEvent(userinput.Press(userinput.KeyB))

	s.Destroy()
	test.ExpectEquality(t, closed.Load(), int32(1))
}

func TestDestroyBeforeRun(t *testing.T) {
	var closed atomic.Int32

	s, err := session.New(cartridgeloader.NewBlankROM("UNRUN", false), session.Options{
		Factory: countingFactory(&closed),
	})
	test.DemandSuccess(t, err)

	s.Destroy()
	test.ExpectEquality(t, s.State(), session.Terminated)
	test.ExpectEquality(t, closed.Load(), int32(1))

	test.ExpectPanic(t, func() { s.Run() })
	test.ExpectPanic(t, func() { s.Destroy() })
	test.ExpectPanic(t, func() { s.SendEvent(userinput.EventStop) })
	test.ExpectPanic(t, func() { s.PollFrame() })
}

func TestRunTwice(t *testing.T) {
	s, err := session.New(cartridgeloader.NewBlankROM("TWICE", false), session.Options{})
	test.DemandSuccess(t, err)

	s.SendEvent(userinput.EventStop)
	test.ExpectEquality(t, s.Run(), scheduler.Stopped)
	test.ExpectPanic(t, func() { s.Run() })

	s.Destroy()
}

func TestDestroyStopsScheduler(t *testing.T) {
	s, err := session.New(cartridgeloader.NewBlankROM("DESTROY", false), session.Options{})
	test.DemandSuccess(t, err)

	done := runSession(s)
	_, ok := s.PollFrame()
	test.DemandEquality(t, ok, true)

	// destroying the session disconnects both pipelines. which one the
	// scheduler notices first depends on timing
	s.Destroy()
	r := waitFor(t, done)
	test.ExpectEquality(t, r == scheduler.EventsDisconnected || r == scheduler.FramesDisconnected, true)
}

func TestConstructionFailure(t *testing.T) {
	rom := cartridgeloader.NewBlankROM("FAIL", false)

	bad := append([]byte{}, rom...)
	bad[0x14d]++
	_, err := session.New(bad, session.Options{})
	test.ExpectEquality(t, curated.Is(err, session.ConstructionFailed), true)
	test.ExpectEquality(t, curated.Has(err, cartridgeloader.HeaderChecksum), true)

	// a bad checksum can be ignored
	s, err := session.New(bad, session.Options{SkipChecksum: true})
	test.DemandSuccess(t, err)
	s.Destroy()

	_, err = session.New(rom, session.Options{Audio: session.AudioHost})
	test.ExpectEquality(t, curated.Is(err, session.ConstructionFailed), true)
	test.ExpectEquality(t, curated.Has(err, session.NoHostAudio), true)

	_, err = session.New(rom, session.Options{Audio: session.AudioMode(99)})
	test.ExpectEquality(t, curated.Has(err, session.UnknownAudioMode), true)

	_, err = session.New(rom, session.Options{Scheduler: scheduler.Config{ClockHz: -1}})
	test.ExpectEquality(t, curated.Has(err, scheduler.InvalidConfig), true)

	// engine must be released if audio can not be opened
	var closed atomic.Int32
	_, err = session.New(rom, session.Options{
		Factory: countingFactory(&closed),
		Audio:   session.AudioHost,
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, closed.Load(), int32(1))
}

func TestHostAudio(t *testing.T) {
	var samples atomic.Int64
	var mismatched atomic.Bool

	s, err := session.New(cartridgeloader.NewBlankROM("AUDIO", false), session.Options{
		Audio: session.AudioHost,
		HostAudio: func(left, right []float32) {
			if len(left) != len(right) {
				mismatched.Store(true)
			}
			samples.Add(int64(len(left)))
		},
	})
	test.DemandSuccess(t, err)

	done := runSession(s)
	s.SendEvent(userinput.Press(userinput.KeyA))

	// audio for a frame is played before the frame is published
	_, ok := s.PollFrame()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, samples.Load() > 0, true)

	s.SendEvent(userinput.EventStop)
	waitFor(t, done)
	s.Destroy()

	test.ExpectEquality(t, mismatched.Load(), false)
}

func TestWavCapture(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "capture.wav")

	s, err := session.New(cartridgeloader.NewBlankROM("WAV", false), session.Options{
		WavFile: fn,
	})
	test.DemandSuccess(t, err)

	done := runSession(s)
	s.SendEvent(userinput.Press(userinput.KeyStart))
	_, ok := s.PollFrame()
	test.DemandEquality(t, ok, true)
	s.SendEvent(userinput.EventStop)
	waitFor(t, done)

	// the file is written when the scheduler terminates
	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size() > 44, true)

	s.Destroy()
}

func TestParseAudioMode(t *testing.T) {
	for _, m := range []session.AudioMode{session.AudioNone, session.AudioNative, session.AudioHost} {
		p, err := session.ParseAudioMode(m.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, m)
	}

	p, err := session.ParseAudioMode(" Native ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, session.AudioNative)

	_, err = session.ParseAudioMode("loud")
	test.ExpectEquality(t, curated.Is(err, session.UnknownAudioMode), true)
}
