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

package scheduler

import "fmt"

// Reason indicates why a Scheduler stopped running.
type Reason int32

// List of valid Reason values.
const (
	NotTerminated Reason = iota
	Stopped
	EventsDisconnected
	FramesDisconnected
)

func (r Reason) String() string {
	switch r {
	case NotTerminated:
		return "not terminated"
	case Stopped:
		return "stopped"
	case EventsDisconnected:
		return "events disconnected"
	case FramesDisconnected:
		return "frames disconnected"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Stats is a snapshot of the Scheduler's counters.
type Stats struct {
	// number of ticks completed
	Ticks uint64

	// number of cycles consumed by the Engine. this will be slightly more
	// than Ticks multiplied by the budget because of the carry
	Cycles uint64

	// frames placed in the frame pipeline and frames dropped because the
	// pipeline was full
	FramesPublished uint64
	FramesDropped   uint64

	// number of control events applied
	Events uint64

	// whether the scheduler is waiting for the wall-clock at the end of each
	// tick
	Pacing bool

	Reason Reason
}

func (s Stats) String() string {
	return fmt.Sprintf("ticks=%d cycles=%d frames=%d dropped=%d events=%d pacing=%v",
		s.Ticks, s.Cycles, s.FramesPublished, s.FramesDropped, s.Events, s.Pacing)
}
