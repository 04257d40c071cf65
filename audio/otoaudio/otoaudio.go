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

// Package otoaudio plays the contents of an audio.Buffer through the
// platform's native audio device.
//
// The device pulls data from the buffer through the io.Reader interface at
// its own pace. When the buffer is empty the device is fed silence.
//
// Only one device context can exist per process. The context is created on
// the first call to New() and every subsequent Output must use the same
// sample rate.
package otoaudio

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/logger"
)

// the amount of data held by the device. short enough not to introduce a
// noticeable lag between video and audio
const deviceBuffer = 50 * time.Millisecond

// Sentinel error patterns.
const (
	NoDevice       = "otoaudio: no audio device: %v"
	RateMismatched = "otoaudio: sample rate %d does not match device rate %d"
)

var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ctxRate int
	ctxErr  error
)

func openContext(sampleRate int) (*oto.Context, error) {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
			BufferSize:   deviceBuffer,
		}

		var ready chan struct{}
		ctx, ready, ctxErr = oto.NewContext(op)
		if ctxErr != nil {
			return
		}
		<-ready
		ctxRate = sampleRate
		logger.Logf(logger.Allow, "audio", "native device opened at %dHz", sampleRate)
	})

	if ctxErr != nil {
		return nil, curated.Errorf(NoDevice, ctxErr)
	}
	if sampleRate != ctxRate {
		return nil, curated.Errorf(RateMismatched, sampleRate, ctxRate)
	}
	return ctx, nil
}

// Output is a playing audio stream. It must be kept alive for as long as
// audio should be heard.
type Output struct {
	crit   sync.Mutex
	player *oto.Player
}

// New opens the native audio device (if necessary) and starts playing the
// contents of the buffer.
func New(buf *audio.Buffer) (*Output, error) {
	c, err := openContext(buf.SampleRate())
	if err != nil {
		return nil, err
	}

	out := &Output{
		player: c.NewPlayer(buf),
	}
	out.player.Play()

	return out, nil
}

// Close stops the stream. The audio.Buffer is not affected. It is safe to call
// Close more than once.
func (out *Output) Close() error {
	out.crit.Lock()
	defer out.crit.Unlock()

	if out.player == nil {
		return nil
	}

	err := out.player.Close()
	out.player = nil
	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
