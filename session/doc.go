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

// Package session ties together an Engine, the frame and event pipelines, an
// audio output and a Scheduler. A Session is the unit of emulation that a
// host application creates, runs and eventually destroys.
//
// The typed API is used by Go hosts:
//
//	s, err := session.New(rom, session.Options{})
//	go s.Run()
//	frame, ok := s.PollFrame()
//	s.SendEvent(userinput.EventStop)
//	s.Destroy()
//
// The numeric API wraps the typed API for hosts that cannot hold a Go
// pointer. Sessions are identified by a Handle, which is a plain integer.
// Sending the Stop event code through SendEvent() destroys the Session and
// invalidates the Handle. Any subsequent use of the Handle causes a panic.
//
// A Session moves through three states: Created, Running and Terminated.
// Ownership of the Engine passes to the Scheduler when Run() is called and
// the Engine is released when Run() returns. The Session itself never
// touches the Engine after construction.
package session
