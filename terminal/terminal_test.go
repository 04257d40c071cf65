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

package terminal

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/test"
	"github.com/retromachines/retrocore/userinput"
)

func eventString(evs []userinput.Event) string {
	s := make([]string, len(evs))
	for i := range evs {
		s[i] = evs[i].String()
	}
	return strings.Join(s, " ")
}

func TestDecode(t *testing.T) {
	acts, keys := decode([]byte("zx \r\x1b[A\x1b[B\x1b[C\x1b[Dwasdfq"))
	test.DemandEquality(t, len(acts), len(keys))
	test.DemandEquality(t, len(acts), 14)

	expected := []userinput.Key{
		userinput.KeyA, userinput.KeyB, userinput.KeySelect, userinput.KeyStart,
		userinput.KeyUp, userinput.KeyDown, userinput.KeyRight, userinput.KeyLeft,
		userinput.KeyUp, userinput.KeyLeft, userinput.KeyDown, userinput.KeyRight,
	}
	for i, k := range expected {
		test.ExpectEquality(t, acts[i], actKey, i)
		test.ExpectEquality(t, keys[i], k, i)
	}
	test.ExpectEquality(t, acts[12], actToggleSpeed)
	test.ExpectEquality(t, acts[13], actQuit)

	// ctrl-c quits
	acts, _ = decode([]byte{0x03})
	test.DemandEquality(t, len(acts), 1)
	test.ExpectEquality(t, acts[0], actQuit)

	// unassigned keys and incomplete escape sequences are ignored
	acts, _ = decode([]byte("1\x1b["))
	test.ExpectEquality(t, len(acts), 0)
}

func TestKeyboard(t *testing.T) {
	kb := NewKeyboard()
	now := time.Now()

	test.ExpectEquality(t, eventString(kb.Input([]byte("z"), now)), "KeyDown(A)")

	// auto-repeat does not generate more events
	now = now.Add(100 * time.Millisecond)
	test.ExpectEquality(t, eventString(kb.Input([]byte("zz"), now)), "")
	test.ExpectEquality(t, eventString(kb.Expire(now)), "")

	// the key is released once it has not been seen for the hold time
	now = now.Add(holdTime)
	test.ExpectEquality(t, eventString(kb.Expire(now)), "KeyUp(A)")
	test.ExpectEquality(t, eventString(kb.Expire(now)), "")

	// several keys at once
	test.ExpectEquality(t, eventString(kb.Input([]byte("x\x1b[C"), now)), "KeyDown(B) KeyDown(Right)")
	now = now.Add(holdTime)
	test.ExpectEquality(t, eventString(kb.Expire(now)), "KeyUp(B) KeyUp(Right)")

	// fast-forward toggle
	test.ExpectEquality(t, eventString(kb.Input([]byte("f"), now)), "SpeedUnlimited")
	test.ExpectEquality(t, kb.Unlimited(), true)
	test.ExpectEquality(t, eventString(kb.Input([]byte("f"), now)), "SpeedNormal")
	test.ExpectEquality(t, kb.Unlimited(), false)

	// input after quit is ignored
	test.ExpectEquality(t, eventString(kb.Input([]byte("zqx"), now)), "KeyDown(A) Stop")
	test.ExpectEquality(t, kb.Quit(), true)
	test.ExpectEquality(t, eventString(kb.Input([]byte("q"), now)), "")
}

func TestReadEvents(t *testing.T) {
	var evs []userinput.Event
	err := ReadEvents(strings.NewReader("zq"), func(ev userinput.Event) {
		evs = append(evs, ev)
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, eventString(evs), "KeyDown(A) Stop")

	// end of input without a quit key still sends Stop
	evs = evs[:0]
	err = ReadEvents(strings.NewReader("x"), func(ev userinput.Event) {
		evs = append(evs, ev)
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, eventString(evs), "KeyDown(B) Stop")
}

func TestNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	_, err = New(r, w)
	test.ExpectEquality(t, curated.Is(err, NotATerminal), true)
}
