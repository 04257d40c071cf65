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

package limiter

import "sync"

// Manual is a Pulse that only fires when told to. It is useful for driving
// the emulation deterministically, one tick at a time.
type Manual struct {
	tick     chan struct{}
	quit     chan struct{}
	stopOnce sync.Once

	// the number of times Wait() has been called. a Wait() that is in
	// progress is counted
	crit  sync.Mutex
	waits int

	// signalled whenever Wait() is entered
	waiting chan struct{}
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual() *Manual {
	return &Manual{
		tick:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		waiting: make(chan struct{}, 1),
	}
}

// Fire a pulse. As with the WallClock, if a pulse is already pending the new
// pulse is lost. Returns false if the pulse was lost.
func (p *Manual) Fire() bool {
	select {
	case p.tick <- struct{}{}:
		return true
	default:
		return false
	}
}

// Wait implements the Pulse interface.
func (p *Manual) Wait() {
	p.crit.Lock()
	p.waits++
	p.crit.Unlock()

	select {
	case p.waiting <- struct{}{}:
	default:
	}

	select {
	case <-p.tick:
	case <-p.quit:
	}
}

// Waiting returns a channel that receives a value whenever Wait() is called.
// It allows a test to know that the paced goroutine has reached the end of a
// tick.
func (p *Manual) Waiting() <-chan struct{} {
	return p.waiting
}

// Waits returns the number of times Wait() has been called.
func (p *Manual) Waits() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.waits
}

// Stop implements the Pulse interface.
func (p *Manual) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
}
