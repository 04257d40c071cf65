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
	"strings"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/scheduler"
)

// AudioMode specifies where the audio produced by the Engine is sent.
type AudioMode int

// List of valid AudioMode values.
const (
	// audio is discarded
	AudioNone AudioMode = iota

	// audio is played through the platform's audio device
	AudioNative

	// audio is passed to the Options.HostAudio function
	AudioHost
)

func (m AudioMode) String() string {
	switch m {
	case AudioNone:
		return "none"
	case AudioNative:
		return "native"
	case AudioHost:
		return "host"
	}
	return fmt.Sprintf("AudioMode(%d)", int(m))
}

// Sentinel error patterns.
const (
	UnknownAudioMode = "session: unknown audio mode (%s)"

	// AudioHost was requested without a HostAudio function
	NoHostAudio = "session: no host audio function"
)

// ParseAudioMode converts the string representation of an AudioMode.
func ParseAudioMode(s string) (AudioMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AudioNone, nil
	case "native":
		return AudioNative, nil
	case "host":
		return AudioHost, nil
	}
	return AudioNone, curated.Errorf(UnknownAudioMode, s)
}

// Options for a new Session. The zero value is a valid set of options: the
// reference Engine emulating the original hardware with no audio output.
type Options struct {
	// creates the Engine. defaults to dummy.Factory
	Factory engine.Factory

	// hardware revision
	Revision engine.Revision

	// how link port output is handled
	Text engine.TextOutput

	// battery backed save file
	SavePath string

	// do not reject ROMs with a bad header checksum
	SkipChecksum bool

	Audio AudioMode

	// sample rate of the audio output. defaults to clocks.SampleRate
	SampleRate int

	// receives audio when Audio is AudioHost. the function is called on the
	// scheduler goroutine and must not block
	HostAudio func(left, right []float32)

	// record audio to a WAV file. the file is written when the scheduler
	// terminates
	WavFile string

	// configuration of the scheduler. zero values are replaced by defaults
	Scheduler scheduler.Config
}
