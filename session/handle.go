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

package session

import (
	"fmt"
	"sync"

	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/userinput"
)

// Handle identifies a Session in the numeric API. The zero value is never a
// valid Handle.
type Handle uint64

// registry of live sessions. handle values increase monotonically and are
// never reused, so a stale handle can not refer to a newer session
var registry = struct {
	crit     sync.Mutex
	next     Handle
	sessions map[Handle]*Session
}{
	sessions: make(map[Handle]*Session),
}

// lookup panics if the handle is not live
func lookup(h Handle) *Session {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	s, ok := registry.sessions[h]
	if !ok {
		panic(fmt.Sprintf("session: protocol violation: handle %d is not live", h))
	}
	return s
}

// take removes the handle from the registry. panics if the handle is not live
func take(h Handle) *Session {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	s, ok := registry.sessions[h]
	if !ok {
		panic(fmt.Sprintf("session: protocol violation: handle %d is not live", h))
	}
	delete(registry.sessions, h)
	return s
}

// Construct creates a new Session and returns its Handle. Returns zero if the
// Session could not be created. The reason for the failure is logged.
func Construct(rom []byte, opts Options) Handle {
	s, err := New(rom, opts)
	if err != nil {
		logger.Log(logger.Allow, "session", err)
		return 0
	}

	registry.crit.Lock()
	defer registry.crit.Unlock()

	registry.next++
	h := registry.next
	registry.sessions[h] = s

	return h
}

// Run the Session identified by the Handle. See Session.Run().
func Run(h Handle) {
	lookup(h).Run()
}

// PollFrame for the Session identified by the Handle. See
// Session.PollFrame().
func PollFrame(h Handle) ([]byte, bool) {
	return lookup(h).PollFrame()
}

// SendEvent decodes the event code and sends it to the Session identified by
// the Handle. An unrecognised code causes a panic.
//
// If the code is the Stop event then the Session is destroyed and the Handle
// is no longer valid. Any further use of the Handle will cause a panic. The
// scheduler terminates on its own goroutine once it sees the Stop event.
func SendEvent(h Handle, code int32) {
	ev := userinput.Decode(userinput.Code(code))

	if ev.Kind != userinput.Stop {
		lookup(h).SendEvent(ev)
		return
	}

	s := take(h)
	s.SendEvent(ev)
	s.Destroy()
}

// Live returns the number of handles that have been constructed but not yet
// stopped.
func Live() int {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	return len(registry.sessions)
}
