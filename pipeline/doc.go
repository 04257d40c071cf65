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

// Package pipeline carries data between the emulation goroutine and the rest
// of the program.
//
// Frames travel from the emulation outwards through a single-slot channel.
// Publishing never blocks: if the previous frame has not been consumed the
// new frame is dropped. Staleness is preferable to stalling the emulation.
//
// Events travel into the emulation through an unbounded queue. Any number of
// goroutines can send events; the emulation is the only receiver and drains
// the queue without blocking.
//
// Both pipes have two endpoints. When one endpoint is closed the other
// endpoint sees the Disconnected error (or end-of-stream in the case of
// FrameReceiver.Poll()). This is how the emulation learns that its host has
// gone away, and how the host learns that the emulation has ended.
package pipeline

// Sentinel error patterns.
const (
	// the other endpoint has been closed
	Disconnected = "pipeline: disconnected"

	// no event is waiting in the queue
	Empty = "pipeline: empty"

	// the sending endpoint has itself been closed
	SenderClosed = "pipeline: send on closed sender"
)
