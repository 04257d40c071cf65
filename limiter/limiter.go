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

// Package limiter provides the wall-clock pulse that paces the emulation, and
// a simple rate meter.
//
// A new Pulse can be created with:
//
//	p := limiter.NewPulse(16 * time.Millisecond)
//	defer p.Stop()
//
// Operations can then be stalled with the Wait() function:
//
//	for {
//		emulateOneTick()
//		p.Wait()
//	}
//
// The pulse is a single-slot rendezvous. If the waiting side falls behind
// then at most one tick is held for it and the remainder are lost. This
// throttles catch-up rather than allowing the emulation to run in bursts.
package limiter

import (
	"sync"
	"time"
)

// Pulse is the interface for anything that can pace the emulation.
type Pulse interface {
	// Wait blocks until the next pulse. Wait returns immediately once Stop()
	// has been called.
	Wait()

	// Stop the pulse and release any resources. Safe to call more than once.
	Stop()
}

// WallClock is a Pulse driven by a time.Ticker running in its own goroutine.
type WallClock struct {
	tick     chan struct{}
	quit     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewPulse is the preferred method of initialisation for the WallClock type.
// The pulse starts immediately.
func NewPulse(interval time.Duration) *WallClock {
	p := &WallClock{
		tick: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(p.done)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-p.quit:
				return
			case <-t.C:
				select {
				case p.tick <- struct{}{}:
				default:
					// previous tick has not been collected
				}
			}
		}
	}()

	return p
}

// Wait implements the Pulse interface.
func (p *WallClock) Wait() {
	select {
	case <-p.tick:
	case <-p.quit:
	}
}

// HasWaited returns true if a pulse is pending, consuming it. It does not
// block.
func (p *WallClock) HasWaited() bool {
	select {
	case <-p.tick:
		return true
	default:
		return false
	}
}

// Stop implements the Pulse interface. Stop does not return until the ticker
// goroutine has ended.
func (p *WallClock) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	<-p.done
}
