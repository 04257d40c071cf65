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

// Package engine defines the contract between the real-time core and the
// emulated hardware. The hardware itself (CPU, memory controllers, video
// and sound) is not part of this module; anything that implements the Engine
// interface can be driven by the scheduler.
//
// An Engine has a single owner. Once an Engine has been handed to the
// scheduler it must only be touched by the scheduler's goroutine.
package engine

import (
	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/userinput"
)

// Engine is the emulated hardware as seen by the scheduler.
type Engine interface {
	// Step advances the emulation by one instruction (or equivalent unit)
	// and returns the number of master clock cycles consumed.
	Step() int

	// FrameReady returns true if a new frame has been completed since the
	// previous call. The flag is cleared by the call.
	FrameReady() bool

	// Frame returns the most recently completed frame. The slice is owned by
	// the Engine and will be overwritten; callers must copy it.
	Frame() []byte

	// SetKey changes the state of a key.
	SetKey(key userinput.Key, pressed bool)

	// ResyncAudio discards accumulated audio lag. Called when the emulation
	// returns to normal speed after running unlimited.
	ResyncAudio()

	// SetAudioSink changes where audio is sent.
	SetAudioSink(sink audio.Sink)

	// SetTextOutput changes how data sent to the link port is handled.
	SetTextOutput(mode TextOutput)
}

// Revision identifies the hardware generation to emulate.
type Revision int

// List of valid Revision values.
const (
	// the original monochrome handheld
	DMG Revision = iota

	// the colour handheld
	CGB
)

func (r Revision) String() string {
	switch r {
	case DMG:
		return "DMG"
	case CGB:
		return "CGB"
	}
	return "unknown revision"
}

// TextOutput specifies how the link port (serial) output is handled.
type TextOutput int

// List of valid TextOutput values.
const (
	// serial output is ignored
	TextNone TextOutput = iota

	// serial output is written as text to stdout
	TextSerial

	// a printer peripheral is attached to the link port
	TextPrinter
)

func (t TextOutput) String() string {
	switch t {
	case TextNone:
		return "none"
	case TextSerial:
		return "serial"
	case TextPrinter:
		return "printer"
	}
	return "unknown"
}

// FactoryOptions are the options given to a Factory in addition to the ROM
// data.
type FactoryOptions struct {
	// path of the battery backed save file. empty if saving is not required
	SavePath string

	// do not reject ROMs with an incorrect header checksum
	SkipChecksum bool
}

// Factory creates a new Engine for the ROM data. An error is returned if the
// ROM is not valid. No resources are held by a Factory that returns an error.
type Factory func(rom []byte, rev Revision, opts FactoryOptions) (Engine, error)
