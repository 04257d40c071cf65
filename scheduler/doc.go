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

// Package scheduler paces the emulation against the wall-clock.
//
// Each tick of the wall-clock the Engine is stepped until a fixed budget of
// master clock cycles has been consumed. Completed frames are published to
// the frame pipeline and pending control events are applied. The loop then
// waits for the next tick. Cycles consumed in excess of the budget are
// carried over to the next tick so that the long-run rate is exact.
//
// The scheduler owns the Engine for as long as Run() is executing. Nothing
// else may touch the Engine during that time.
//
// Run() terminates when a Stop event is received, when every event sender
// has been closed, or when the frame receiver has been closed. On
// termination the frame sender is closed so that the consumer sees the end
// of the stream.
package scheduler
