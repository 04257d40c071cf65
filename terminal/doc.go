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

// Package terminal is a text frontend for the emulation. The terminal is put
// into raw mode so that individual key presses can be read and converted into
// control events.
//
// Terminals do not report key releases. A key is released automatically if
// it has not been seen for a short time. Keyboard auto-repeat keeps a key
// that is held down from being released.
//
// Key assignments:
//
//	arrow keys or w/a/s/d    direction pad
//	z and x                  A and B buttons
//	return                   Start
//	space                    Select
//	f                        toggle fast-forward
//	q or ctrl-c              quit
package terminal
