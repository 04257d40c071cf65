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

import (
	"sync"
	"time"
)

// Meter measures the rate at which something happens. Call Count() whenever
// the event happens and Measure() as often as a new value is wanted. The
// rate is only recalculated once the measuring period has elapsed.
type Meter struct {
	crit sync.Mutex

	period time.Duration

	// the time of the start of the current measuring period and the number
	// of events counted in it
	start time.Time
	count int

	measured float64

	// used instead of time.Now() when not nil
	now func() time.Time
}

// NewMeter is the preferred method of initialisation for the Meter type.
func NewMeter(period time.Duration) *Meter {
	m := &Meter{
		period: period,
		now:    time.Now,
	}
	m.start = m.now()
	return m
}

// Count adds n events to the current measuring period.
func (m *Meter) Count(n int) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.count += n
}

// Measure returns the rate per second. The value only changes once per
// measuring period.
func (m *Meter) Measure() float64 {
	m.crit.Lock()
	defer m.crit.Unlock()

	t := m.now()
	el := t.Sub(m.start)
	if el >= m.period {
		m.measured = float64(m.count) / el.Seconds()
		m.start = t
		m.count = 0
	}

	return m.measured
}
