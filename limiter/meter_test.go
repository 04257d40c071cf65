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
	"testing"
	"time"

	"github.com/retromachines/retrocore/test"
)

func TestMeter(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMeter(time.Second)
	m.now = func() time.Time { return now }
	m.start = now

	m.Count(30)
	now = now.Add(500 * time.Millisecond)
	test.ExpectEquality(t, m.Measure(), 0.0)

	m.Count(30)
	now = now.Add(500 * time.Millisecond)
	test.ExpectEquality(t, m.Measure(), 60.0)

	// value remains until the next period has elapsed
	m.Count(10)
	test.ExpectEquality(t, m.Measure(), 60.0)

	now = now.Add(2 * time.Second)
	test.ExpectEquality(t, m.Measure(), 5.0)
}
