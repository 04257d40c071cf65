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

package clocks_test

import (
	"testing"
	"time"

	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/test"
)

func TestCycleBudget(t *testing.T) {
	// 4194304 / 1000 * 16 = 67108.864
	test.ExpectEquality(t, clocks.CycleBudget(clocks.DMG, clocks.Tick), 67109)
	test.ExpectEquality(t, clocks.CycleBudget(clocks.DMG, time.Millisecond), 4194)
	test.ExpectEquality(t, clocks.CycleBudget(1000, 10*time.Millisecond), 10)
}

func TestRefreshRate(t *testing.T) {
	test.ExpectApproximate(t, clocks.RefreshRate(clocks.DMG), 59.73, 0.001)
	test.ExpectEquality(t, clocks.FrameSize, 69120)
}
