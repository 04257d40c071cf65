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

package scheduler_test

import (
	"fmt"
	"time"

	"github.com/retromachines/retrocore/assert"
	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/userinput"
)

// mockEngine records the calls made to it. every method checks that it is
// called from the same goroutine
type mockEngine struct {
	owner assert.Owner

	// cost of every step
	cost int

	// a frame is ready every frameEvery steps. zero means never
	frameEvery int

	steps int
	ready bool
	frame []byte

	// record of SetKey() calls in the order they were made
	calls []string

	resyncs int
	sink    audio.Sink
	text    engine.TextOutput
	closed  int
}

func newMockEngine(cost int, frameEvery int) *mockEngine {
	return &mockEngine{
		cost:       cost,
		frameEvery: frameEvery,
		frame:      make([]byte, 16),
		sink:       audio.Discard,
	}
}

func (m *mockEngine) Step() int {
	m.owner.Check()
	m.steps++
	if m.frameEvery > 0 && m.steps%m.frameEvery == 0 {
		m.ready = true
		m.frame[0] = byte(m.steps / m.frameEvery)
	}
	return m.cost
}

func (m *mockEngine) FrameReady() bool {
	m.owner.Check()
	r := m.ready
	m.ready = false
	return r
}

func (m *mockEngine) Frame() []byte {
	m.owner.Check()
	return m.frame
}

func (m *mockEngine) SetKey(key userinput.Key, pressed bool) {
	m.owner.Check()
	m.calls = append(m.calls, fmt.Sprintf("%s:%v", key, pressed))
}

func (m *mockEngine) ResyncAudio() {
	m.owner.Check()
	m.resyncs++
	if r, ok := m.sink.(audio.Resyncer); ok {
		r.Resync()
	}
}

func (m *mockEngine) SetAudioSink(sink audio.Sink) {
	m.owner.Check()
	m.sink = sink
}

func (m *mockEngine) SetTextOutput(mode engine.TextOutput) {
	m.owner.Check()
	m.text = mode
}

func (m *mockEngine) Close() error {
	m.owner.Check()
	m.closed++
	return nil
}

// the configuration used by most tests. budget of 1000 cycles per tick
const (
	testClock = 100000
	testTick  = 10 * time.Millisecond
)
