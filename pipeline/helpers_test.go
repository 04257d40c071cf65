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

package pipeline_test

import "github.com/retromachines/retrocore/userinput"

func eventSequence(n int) []userinput.Event {
	evs := make([]userinput.Event, n)
	for i := range evs {
		k := userinput.Key(i % userinput.NumKeys)
		if i%2 == 0 {
			evs[i] = userinput.Press(k)
		} else {
			evs[i] = userinput.Release(k)
		}
	}
	return evs
}

// the event type has no payload so the producer and sequence number are
// encoded in the key and kind. the sequence number wraps at eventCycle
const eventCycle = 2

func eventFor(producer, seq int) userinput.Event {
	k := userinput.Key(producer % userinput.NumKeys)
	if seq%eventCycle == 0 {
		return userinput.Press(k)
	}
	return userinput.Release(k)
}

func producerOf(ev userinput.Event) (int, int) {
	if ev.Kind == userinput.KindKeyDown {
		return int(ev.Key), 0
	}
	return int(ev.Key), 1
}
