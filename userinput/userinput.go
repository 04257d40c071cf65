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

package userinput

import "fmt"

// Key is one of the eight buttons on the handheld.
type Key int

// List of valid Key values.
const (
	KeyA Key = iota
	KeyB
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySelect
	KeyStart
)

// NumKeys is the number of distinct Key values.
const NumKeys = 8

func (k Key) String() string {
	switch k {
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Kind is the tag of the Event variant.
type Kind int

// List of valid Kind values.
const (
	KindKeyDown Kind = iota
	KindKeyUp
	SpeedUnlimited
	SpeedNormal
	Stop
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case SpeedUnlimited:
		return "SpeedUnlimited"
	case SpeedNormal:
		return "SpeedNormal"
	case Stop:
		return "Stop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a control event sent to the emulation. The Key field is only
// meaningful for the KindKeyDown and KindKeyUp kinds.
type Event struct {
	Kind Kind
	Key  Key
}

func (ev Event) String() string {
	switch ev.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s(%s)", ev.Kind, ev.Key)
	}
	return ev.Kind.String()
}

// Press returns a KindKeyDown event for the key.
func Press(k Key) Event {
	return Event{Kind: KindKeyDown, Key: k}
}

// Release returns a KindKeyUp event for the key.
func Release(k Key) Event {
	return Event{Kind: KindKeyUp, Key: k}
}

// Convenience values for the events that have no key.
var (
	EventStop           = Event{Kind: Stop}
	EventSpeedUnlimited = Event{Kind: SpeedUnlimited}
	EventSpeedNormal    = Event{Kind: SpeedNormal}
)
