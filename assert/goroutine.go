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

// Package assert contains helpers for asserting program invariants that the
// type system cannot express. They are intended for debugging and testing.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first calls Check() and panics if any
// other goroutine calls Check() afterwards. The zero value is ready to use.
//
// Used to verify that state with a single-writer contract (for example, the
// emulation Engine) is only ever touched from one goroutine.
type Owner struct {
	id atomic.Uint64
}

// Check the calling goroutine against the recorded owner.
func (o *Owner) Check() {
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if owner := o.id.Load(); owner != id {
		panic(fmt.Sprintf("assert: owned by goroutine %d but accessed from goroutine %d", owner, id))
	}
}

// Reset forgets the recorded owner. Ownership is then taken by the next
// goroutine to call Check().
func (o *Owner) Reset() {
	o.id.Store(0)
}
