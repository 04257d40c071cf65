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

package userinput_test

import (
	"testing"

	"github.com/retromachines/retrocore/test"
	"github.com/retromachines/retrocore/userinput"
)

func TestCodes(t *testing.T) {
	codes := userinput.Codes()
	test.ExpectEquality(t, len(codes), userinput.NumCodes)
	test.ExpectEquality(t, userinput.NumCodes, 19)

	seen := make(map[userinput.Event]bool)
	for _, c := range codes {
		ev := userinput.Decode(c)
		test.ExpectEquality(t, userinput.Encode(ev), c, c)
		test.ExpectFailure(t, seen[ev], ev)
		seen[ev] = true
	}
}

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, userinput.Decode(userinput.CodeADown), userinput.Press(userinput.KeyA))
	test.ExpectEquality(t, userinput.Decode(userinput.CodeStartDown), userinput.Press(userinput.KeyStart))
	test.ExpectEquality(t, userinput.Decode(userinput.CodeAUp), userinput.Release(userinput.KeyA))
	test.ExpectEquality(t, userinput.Decode(userinput.CodeStartUp), userinput.Release(userinput.KeyStart))
	test.ExpectEquality(t, userinput.Decode(userinput.CodeStop), userinput.EventStop)
	test.ExpectEquality(t, userinput.Decode(userinput.CodeSpeedUp), userinput.EventSpeedUnlimited)
	test.ExpectEquality(t, userinput.Decode(userinput.CodeSpeedDown), userinput.EventSpeedNormal)
}

func TestUnknownCodes(t *testing.T) {
	for _, c := range []userinput.Code{0, 17, 100, 104, 202, 203, -1} {
		test.ExpectPanic(t, func() { userinput.Decode(c) }, c)
	}
	test.ExpectPanic(t, func() { userinput.Encode(userinput.Press(userinput.Key(8))) })
	test.ExpectPanic(t, func() { userinput.Encode(userinput.Event{Kind: userinput.Kind(99)}) })
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, userinput.Press(userinput.KeyLeft).String(), "KeyDown(Left)")
	test.ExpectEquality(t, userinput.EventStop.String(), "Stop")
}

func TestKindsAndKeys(t *testing.T) {
	// the d-pad keys and the key transition kinds are distinct
	down := userinput.Press(userinput.KeyDown)
	test.ExpectEquality(t, down.Kind, userinput.KindKeyDown)
	test.ExpectEquality(t, down.Key, userinput.KeyDown)
	test.ExpectEquality(t, down.String(), "KeyDown(Down)")

	up := userinput.Release(userinput.KeyUp)
	test.ExpectEquality(t, up.Kind, userinput.KindKeyUp)
	test.ExpectEquality(t, up.Key, userinput.KeyUp)
	test.ExpectEquality(t, up.String(), "KeyUp(Up)")

	test.ExpectEquality(t, userinput.Decode(userinput.Encode(down)), down)
	test.ExpectEquality(t, userinput.Decode(userinput.Encode(up)), up)
}
