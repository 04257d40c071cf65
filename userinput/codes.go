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

// Code is the integer representation of an Event used by hosts on the far
// side of the library boundary. The values must match those compiled into
// the host application and must never change.
type Code int32

// List of valid Code values.
const (
	CodeADown      Code = 1
	CodeBDown      Code = 2
	CodeUpDown     Code = 3
	CodeDownDown   Code = 4
	CodeLeftDown   Code = 5
	CodeRightDown  Code = 6
	CodeSelectDown Code = 7
	CodeStartDown  Code = 8
	CodeAUp        Code = 9
	CodeBUp        Code = 10
	CodeUpUp       Code = 11
	CodeDownUp     Code = 12
	CodeLeftUp     Code = 13
	CodeRightUp    Code = 14
	CodeSelectUp   Code = 15
	CodeStartUp    Code = 16

	CodeStop      Code = 101
	CodeSpeedUp   Code = 102
	CodeSpeedDown Code = 103
)

// NumCodes is the number of valid Code values.
const NumCodes = NumKeys*2 + 3

// key codes are contiguous: down codes start at codeKeyDownBase and up codes
// follow immediately after.
const (
	codeKeyDownBase = CodeADown
	codeKeyUpBase   = CodeAUp
)

// Decode converts a Code to an Event. An unrecognised code is a breach of the
// boundary contract and causes a panic.
func Decode(c Code) Event {
	switch {
	case c >= codeKeyDownBase && c < codeKeyDownBase+NumKeys:
		return Press(Key(c - codeKeyDownBase))
	case c >= codeKeyUpBase && c < codeKeyUpBase+NumKeys:
		return Release(Key(c - codeKeyUpBase))
	}

	switch c {
	case CodeStop:
		return EventStop
	case CodeSpeedUp:
		return EventSpeedUnlimited
	case CodeSpeedDown:
		return EventSpeedNormal
	}

	panic(fmt.Sprintf("userinput: unknown event code (%d)", c))
}

// Encode converts an Event to its Code. Encode panics if the event is not
// valid.
func Encode(ev Event) Code {
	switch ev.Kind {
	case KindKeyDown, KindKeyUp:
		if ev.Key < 0 || ev.Key >= NumKeys {
			panic(fmt.Sprintf("userinput: unknown key (%d)", ev.Key))
		}
		if ev.Kind == KindKeyDown {
			return codeKeyDownBase + Code(ev.Key)
		}
		return codeKeyUpBase + Code(ev.Key)
	case Stop:
		return CodeStop
	case SpeedUnlimited:
		return CodeSpeedUp
	case SpeedNormal:
		return CodeSpeedDown
	}
	panic(fmt.Sprintf("userinput: unknown event kind (%d)", ev.Kind))
}

// Codes returns every valid Code in ascending order.
func Codes() []Code {
	c := make([]Code, 0, NumCodes)
	for i := range Code(NumKeys * 2) {
		c = append(c, codeKeyDownBase+i)
	}
	return append(c, CodeStop, CodeSpeedUp, CodeSpeedDown)
}
