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

// Package dummy is a reference implementation of the engine.Engine interface.
// It does not emulate a CPU. Instead it consumes cycles in a fixed pattern,
// draws a moving test card and produces a tone while any key is held down.
//
// It is useful for exercising the scheduler and the host frontends without
// the emulated hardware.
package dummy
