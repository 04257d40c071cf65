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

package terminal

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/userinput"
)

// how often held keys are checked for release
const expireInterval = 50 * time.Millisecond

// ReadEvents reads from the input until a quit key is pressed or the input
// ends, sending the converted events to the send function. The function
// returns after a Stop event has been sent. If the input ends without a quit
// key being pressed a Stop event is sent anyway.
func ReadEvents(input io.Reader, send func(userinput.Event)) error {
	kb := NewKeyboard()

	type read struct {
		p   []byte
		err error
	}
	reads := make(chan read)

	// the reading goroutine may be blocked in Read() when this function
	// returns. it ends when the input is closed or the next read completes
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			b := make([]byte, 16)
			n, err := input.Read(b)
			select {
			case reads <- read{p: b[:n], err: err}:
			case <-quit:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	tick := time.NewTicker(expireInterval)
	defer tick.Stop()

	for {
		select {
		case r := <-reads:
			for _, ev := range kb.Input(r.p, time.Now()) {
				send(ev)
			}
			if kb.Quit() {
				return nil
			}
			if r.err != nil {
				send(userinput.EventStop)
				if errors.Is(r.err, io.EOF) || errors.Is(r.err, os.ErrClosed) {
					return nil
				}
				logger.Log(logger.Allow, "terminal", r.err)
				return r.err
			}
		case now := <-tick.C:
			for _, ev := range kb.Expire(now) {
				send(ev)
			}
		}
	}
}
