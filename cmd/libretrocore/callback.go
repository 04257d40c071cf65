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

//go:build cgo

package main

/*
#include "retrocore.h"

static void rc_call_audio(rc_audio_callback cb, const float *left, const float *right, int n) {
	cb(left, right, n);
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

// the callback registered by the host
var callback struct {
	crit sync.Mutex
	fn   C.rc_audio_callback
}

func setCallback(fn C.rc_audio_callback) {
	callback.crit.Lock()
	defer callback.crit.Unlock()
	callback.fn = fn
}

// hostAudio forwards audio to the host callback. audio is discarded if no
// callback has been registered.
func hostAudio(left, right []float32) {
	callback.crit.Lock()
	fn := callback.fn
	callback.crit.Unlock()

	n := min(len(left), len(right))
	if fn == nil || n == 0 {
		return
	}

	C.rc_call_audio(fn,
		(*C.float)(unsafe.Pointer(&left[0])),
		(*C.float)(unsafe.Pointer(&right[0])),
		C.int(n))
}
