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

package limiter_test

import (
	"testing"
	"time"

	"github.com/retromachines/retrocore/limiter"
	"github.com/retromachines/retrocore/test"
)

func TestSingleSlot(t *testing.T) {
	p := limiter.NewPulse(2 * time.Millisecond)
	defer p.Stop()

	// let many ticks elapse without waiting for them
	time.Sleep(30 * time.Millisecond)

	// only one tick is pending
	test.ExpectSuccess(t, p.HasWaited())
	test.ExpectFailure(t, p.HasWaited())
}

func TestPacing(t *testing.T) {
	const interval = 5 * time.Millisecond
	const numTicks = 20

	p := limiter.NewPulse(interval)
	defer p.Stop()

	start := time.Now()
	for range numTicks {
		p.Wait()
	}
	el := time.Since(start)

	// the first tick may arrive early but the rest are paced
	test.ExpectSuccess(t, el >= interval*(numTicks-1))
}

func TestStop(t *testing.T) {
	p := limiter.NewPulse(time.Hour)
	p.Stop()
	p.Stop()

	// returns immediately even though the interval is very long
	p.Wait()
}

func TestManual(t *testing.T) {
	p := limiter.NewManual()

	test.ExpectSuccess(t, p.Fire())
	test.ExpectFailure(t, p.Fire())

	p.Wait()
	<-p.Waiting()
	test.ExpectEquality(t, p.Waits(), 1)

	done := make(chan bool)
	go func() {
		p.Wait()
		done <- true
	}()

	<-p.Waiting()
	test.ExpectSuccess(t, p.Fire())
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, p.Waits(), 2)

	p.Stop()
	p.Wait()
}
