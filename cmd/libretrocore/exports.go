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

package main

/*
#include "retrocore.h"
*/
import "C"

import (
	"unsafe"

	"github.com/retromachines/retrocore/session"
)

// rc_construct returns zero if the ROM could not be used. The save argument
// names the battery save file and may be NULL. The flags argument is a
// combination of the RC_FLAG_ values.
//
//export rc_construct
func rc_construct(rom *C.uchar, length C.int, classic C.int, audioMode C.int, save *C.char, flags C.int) C.longlong {
	if rom == nil || length <= 0 {
		return 0
	}
	data := C.GoBytes(unsafe.Pointer(rom), length)

	var savePath string
	if save != nil {
		savePath = C.GoString(save)
	}

	return C.longlong(construct(data, classic != 0, int(audioMode), savePath, int(flags)))
}

// rc_run blocks until the emulation terminates. It should be called on a
// thread dedicated to the emulation.
//
//export rc_run
func rc_run(h C.longlong) {
	session.Run(session.Handle(h))
}

// rc_poll_frame blocks until a frame is ready and copies at most capacity
// bytes of it into buf.
//
//export rc_poll_frame
func rc_poll_frame(h C.longlong, buf *C.uchar, capacity C.int) C.int {
	if buf == nil || capacity <= 0 {
		return 0
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(capacity))
	return C.int(pollFrame(session.Handle(h), dst))
}

//export rc_send_event
func rc_send_event(h C.longlong, code C.int) {
	session.SendEvent(session.Handle(h), int32(code))
}

// rc_set_audio_callback applies to sessions constructed with the host audio
// mode. A NULL callback discards audio.
//
//export rc_set_audio_callback
func rc_set_audio_callback(cb C.rc_audio_callback) {
	setCallback(cb)
}
