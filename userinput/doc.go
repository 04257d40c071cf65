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

// Package userinput defines the control events sent to the emulation: key
// transitions for the eight buttons of the handheld, the speed toggle, and
// the request to stop.
//
// Hosts on the far side of the library boundary identify events by an
// integer Code. The mapping between Code and Event is kept in this package
// only and is closed: Decode() panics on an unrecognised code rather than
// guessing, because a mismatch between the host's constants and ours means
// the two sides were built from different sources.
package userinput
