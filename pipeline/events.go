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

package pipeline

import (
	"sync"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/userinput"
)

type events struct {
	crit  sync.Mutex
	queue []userinput.Event

	// number of open EventSender endpoints
	senders int

	// the receiver has been closed
	detached bool
}

// EventSender is a producing endpoint of the event pipeline. Additional
// endpoints can be created with Clone().
type EventSender struct {
	e *events

	crit   sync.Mutex
	closed bool
}

// EventReceiver is the consuming endpoint of the event pipeline.
type EventReceiver struct {
	e *events
}

// NewEvents creates an event pipeline and returns a sender and the receiver.
func NewEvents() (*EventSender, *EventReceiver) {
	e := &events{
		queue:   make([]userinput.Event, 0, 16),
		senders: 1,
	}
	return &EventSender{e: e}, &EventReceiver{e: e}
}

// Send queues an event. Send never blocks. An error (the Disconnected pattern)
// is returned if the receiver has been closed. Sending on an endpoint that has
// been closed with Close() returns the SenderClosed pattern.
//
// Events from a single sender are received in the order they were sent.
func (s *EventSender) Send(ev userinput.Event) error {
	s.crit.Lock()
	closed := s.closed
	s.crit.Unlock()
	if closed {
		return curated.Errorf(SenderClosed)
	}

	s.e.crit.Lock()
	defer s.e.crit.Unlock()

	if s.e.detached {
		return curated.Errorf(Disconnected)
	}
	s.e.queue = append(s.e.queue, ev)

	return nil
}

// Clone creates a new sending endpoint for the same pipeline. Each clone must
// be closed independently.
func (s *EventSender) Clone() *EventSender {
	s.e.crit.Lock()
	defer s.e.crit.Unlock()
	s.e.senders++
	return &EventSender{e: s.e}
}

// Close the sending endpoint. Once every endpoint has been closed the receiver
// will see the Disconnected error after the queue is empty. It is safe to call
// Close() more than once.
func (s *EventSender) Close() {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.e.crit.Lock()
	defer s.e.crit.Unlock()
	s.e.senders--
}

// TryRecv returns the next event in the queue without blocking. If the queue
// is empty the error matches the Empty pattern, or the Disconnected pattern if
// no senders remain.
func (r *EventReceiver) TryRecv() (userinput.Event, error) {
	r.e.crit.Lock()
	defer r.e.crit.Unlock()

	if len(r.e.queue) == 0 {
		if r.e.senders == 0 {
			return userinput.Event{}, curated.Errorf(Disconnected)
		}
		return userinput.Event{}, curated.Errorf(Empty)
	}

	ev := r.e.queue[0]
	n := copy(r.e.queue, r.e.queue[1:])
	r.e.queue = r.e.queue[:n]

	return ev, nil
}

// Pending returns the number of events waiting in the queue.
func (r *EventReceiver) Pending() int {
	r.e.crit.Lock()
	defer r.e.crit.Unlock()
	return len(r.e.queue)
}

// Close the receiver. Any queued events are discarded and subsequent calls to
// Send() will return the Disconnected error.
func (r *EventReceiver) Close() {
	r.e.crit.Lock()
	defer r.e.crit.Unlock()
	r.e.detached = true
	r.e.queue = nil
}
