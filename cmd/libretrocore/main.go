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

// Libretrocore is the emulation core built as a C shared library, for use by
// hosts written in other languages:
//
//	go build -buildmode=c-shared -o libretrocore.so ./cmd/libretrocore
//
// The exported functions are thin wrappers around the numeric handle API of
// the session package. A handle is a non-zero 64 bit value. Sending the Stop
// event code (101) invalidates the handle.
//
// Host audio is delivered by the function registered with
// rc_set_audio_callback(). The callback is called on the emulation thread and
// must not block.
package main

import (
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/session"
)

func main() {}

// construction flags. the values must match the RC_FLAG_ definitions in
// retrocore.h
const (
	flagSerial       = 1 << 0
	flagPrinter      = 1 << 1
	flagSkipChecksum = 1 << 2
)

// options for a new session. the audio mode is the integer value of the
// session.AudioMode type. an empty save path disables battery saves. if both
// text flags are set the serial port wins
func options(classic bool, audioMode int, savePath string, flags int) (session.Options, bool) {
	mode := session.AudioMode(audioMode)
	switch mode {
	case session.AudioNone, session.AudioNative, session.AudioHost:
	default:
		logger.Logf(logger.Allow, "libretrocore", "unknown audio mode (%d)", audioMode)
		return session.Options{}, false
	}

	if flags&^(flagSerial|flagPrinter|flagSkipChecksum) != 0 {
		logger.Logf(logger.Allow, "libretrocore", "unknown construction flags (%#x)", flags)
		return session.Options{}, false
	}

	opts := session.Options{
		Revision:     engine.CGB,
		Audio:        mode,
		SavePath:     savePath,
		SkipChecksum: flags&flagSkipChecksum != 0,
	}

	if classic {
		opts.Revision = engine.DMG
	}

	switch {
	case flags&flagSerial != 0:
		opts.Text = engine.TextSerial
	case flags&flagPrinter != 0:
		opts.Text = engine.TextPrinter
	}

	if mode == session.AudioHost {
		opts.HostAudio = hostAudio
	}

	return opts, true
}

func construct(rom []byte, classic bool, audioMode int, savePath string, flags int) session.Handle {
	opts, ok := options(classic, audioMode, savePath, flags)
	if !ok {
		return 0
	}
	return session.Construct(rom, opts)
}

// pollFrame copies the next frame into dst and returns the number of bytes
// copied. zero is returned once the emulation has terminated.
func pollFrame(h session.Handle, dst []byte) int {
	frame, ok := session.PollFrame(h)
	if !ok {
		return 0
	}
	return copy(dst, frame)
}
