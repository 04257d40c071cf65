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

package scheduler

import (
	"io"
	"sync/atomic"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/pipeline"
	"github.com/retromachines/retrocore/userinput"
)

// Scheduler runs the pacing loop. A Scheduler can be run only once.
type Scheduler struct {
	cfg    Config
	budget int

	running atomic.Bool

	ticks     atomic.Uint64
	cycles    atomic.Uint64
	published atomic.Uint64
	dropped   atomic.Uint64
	events    atomic.Uint64
	pacing    atomic.Bool
	reason    atomic.Int32
}

// New is the preferred method of initialisation for the Scheduler type. Zero
// values in the Config are replaced by the values in DefaultConfig(). An
// error is returned if the resulting configuration is not valid.
func New(cfg Config) (*Scheduler, error) {
	def := DefaultConfig()
	if cfg.ClockHz == 0 {
		cfg.ClockHz = def.ClockHz
	}
	if cfg.Tick == 0 {
		cfg.Tick = def.Tick
	}
	if cfg.Pulse == nil {
		cfg.Pulse = wallClock
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		cfg:    cfg,
		budget: cfg.Budget(),
	}
	s.pacing.Store(!cfg.Unlimited)

	return s, nil
}

// Run the Engine with the default configuration. See Scheduler.Run() for
// details.
func Run(eng engine.Engine, frames *pipeline.FrameSender, events *pipeline.EventReceiver) Reason {
	s, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s.Run(eng, frames, events)
}

// Budget returns the number of cycles consumed every tick.
func (s *Scheduler) Budget() int {
	return s.budget
}

// Stats returns a snapshot of the Scheduler's counters. It is safe to call
// from any goroutine while Run() is executing.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Ticks:           s.ticks.Load(),
		Cycles:          s.cycles.Load(),
		FramesPublished: s.published.Load(),
		FramesDropped:   s.dropped.Load(),
		Events:          s.events.Load(),
		Pacing:          s.pacing.Load(),
		Reason:          Reason(s.reason.Load()),
	}
}

// Run takes ownership of the Engine and both pipeline endpoints and returns
// only when the emulation has terminated. On return the frame sender and
// event receiver have been closed and, if the Engine implements io.Closer,
// the Engine has been closed.
//
// Calling Run() more than once on the same Scheduler will cause a panic.
func (s *Scheduler) Run(eng engine.Engine, frames *pipeline.FrameSender, events *pipeline.EventReceiver) Reason {
	if !s.running.CompareAndSwap(false, true) {
		panic("scheduler: Run() called more than once")
	}

	pulse := s.cfg.Pulse(s.cfg.Tick)

	defer func() {
		pulse.Stop()
		frames.Close()
		events.Close()
		if c, ok := eng.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Log(logger.Allow, "scheduler", err)
			}
		}
	}()

	// cycles consumed in the current tick. may start a tick with a value
	// carried from the previous tick
	var acc int

	for {
		for acc < s.budget {
			n := eng.Step()
			acc += n
			s.cycles.Add(uint64(n))

			if eng.FrameReady() {
				frame := append(pipeline.Frame(nil), eng.Frame()...)
				if err := frames.Publish(frame); err != nil {
					return s.terminate(FramesDisconnected)
				}
				s.published.Store(frames.Published())
				s.dropped.Store(frames.Dropped())
			}
		}
		acc -= s.budget
		s.ticks.Add(1)

		if r := s.applyEvents(eng, events); r != NotTerminated {
			return s.terminate(r)
		}

		if s.cfg.OnTick != nil {
			s.cfg.OnTick(s.Stats())
		}

		if s.pacing.Load() {
			pulse.Wait()
		}
	}
}

// applyEvents drains the event pipeline without blocking. returns
// NotTerminated if the loop should continue.
func (s *Scheduler) applyEvents(eng engine.Engine, events *pipeline.EventReceiver) Reason {
	for {
		ev, err := events.TryRecv()
		if err != nil {
			if curated.Is(err, pipeline.Disconnected) {
				return EventsDisconnected
			}
			return NotTerminated
		}

		s.events.Add(1)

		switch ev.Kind {
		case userinput.KindKeyDown:
			eng.SetKey(ev.Key, true)
		case userinput.KindKeyUp:
			eng.SetKey(ev.Key, false)
		case userinput.SpeedUnlimited:
			s.pacing.Store(false)
		case userinput.SpeedNormal:
			s.pacing.Store(true)
			eng.ResyncAudio()
		case userinput.Stop:
			return Stopped
		}
	}
}

func (s *Scheduler) terminate(r Reason) Reason {
	s.reason.Store(int32(r))
	logger.Logf(logger.Allow, "scheduler", "terminated: %s (%s)", r, s.Stats())
	return r
}
