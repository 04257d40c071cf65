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
	"time"

	"github.com/retromachines/retrocore/userinput"
)

// the time after the most recent sighting of a key that it is considered
// released. longer than the initial delay of typical keyboard auto-repeat
const holdTime = 550 * time.Millisecond

// action is the result of decoding terminal input.
type action int

const (
	actNone action = iota
	actKey
	actQuit
	actToggleSpeed
)

// decode the bytes read from the terminal into a list of actions and the keys
// they refer to
func decode(p []byte) ([]action, []userinput.Key) {
	var acts []action
	var keys []userinput.Key

	add := func(a action, k userinput.Key) {
		acts = append(acts, a)
		keys = append(keys, k)
	}

	for i := 0; i < len(p); i++ {
		// arrow keys are sent as the escape sequence ESC [ A..D
		if p[i] == 0x1b && i+2 < len(p) && p[i+1] == '[' {
			switch p[i+2] {
			case 'A':
				add(actKey, userinput.KeyUp)
			case 'B':
				add(actKey, userinput.KeyDown)
			case 'C':
				add(actKey, userinput.KeyRight)
			case 'D':
				add(actKey, userinput.KeyLeft)
			}
			i += 2
			continue
		}

		switch p[i] {
		case 'q', 'Q', 0x03:
			add(actQuit, 0)
		case 'f', 'F':
			add(actToggleSpeed, 0)
		case 'w', 'W':
			add(actKey, userinput.KeyUp)
		case 's', 'S':
			add(actKey, userinput.KeyDown)
		case 'a', 'A':
			add(actKey, userinput.KeyLeft)
		case 'd', 'D':
			add(actKey, userinput.KeyRight)
		case 'z', 'Z':
			add(actKey, userinput.KeyA)
		case 'x', 'X':
			add(actKey, userinput.KeyB)
		case '\r', '\n':
			add(actKey, userinput.KeyStart)
		case ' ':
			add(actKey, userinput.KeySelect)
		}
	}

	return acts, keys
}

// Keyboard converts terminal input into control events.
type Keyboard struct {
	hold      time.Duration
	held      map[userinput.Key]time.Time
	unlimited bool
	quit      bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		hold: holdTime,
		held: make(map[userinput.Key]time.Time),
	}
}

// Input converts bytes read from the terminal into events. The time is the
// time the bytes were read.
func (kb *Keyboard) Input(p []byte, now time.Time) []userinput.Event {
	var evs []userinput.Event

	acts, keys := decode(p)
	for i, a := range acts {
		switch a {
		case actKey:
			if _, ok := kb.held[keys[i]]; !ok {
				evs = append(evs, userinput.Press(keys[i]))
			}
			kb.held[keys[i]] = now
		case actToggleSpeed:
			kb.unlimited = !kb.unlimited
			if kb.unlimited {
				evs = append(evs, userinput.EventSpeedUnlimited)
			} else {
				evs = append(evs, userinput.EventSpeedNormal)
			}
		case actQuit:
			if !kb.quit {
				kb.quit = true
				evs = append(evs, userinput.EventStop)
			}
			return evs
		}
	}

	return evs
}

// Expire releases keys that have not been seen for the hold time.
func (kb *Keyboard) Expire(now time.Time) []userinput.Event {
	var evs []userinput.Event
	for _, k := range heldOrder {
		if t, ok := kb.held[k]; ok && now.Sub(t) >= kb.hold {
			delete(kb.held, k)
			evs = append(evs, userinput.Release(k))
		}
	}
	return evs
}

// Quit returns true once a quit key has been seen.
func (kb *Keyboard) Quit() bool {
	return kb.quit
}

// Unlimited returns true if fast-forward has been requested.
func (kb *Keyboard) Unlimited() bool {
	return kb.unlimited
}

// keys are released in a consistent order
var heldOrder = [...]userinput.Key{
	userinput.KeyA, userinput.KeyB,
	userinput.KeyUp, userinput.KeyDown, userinput.KeyLeft, userinput.KeyRight,
	userinput.KeySelect, userinput.KeyStart,
}
