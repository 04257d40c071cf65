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

package digest

import (
	"fmt"

	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
)

// Result of a call to Run().
type Result struct {
	Frames int
	Cycles uint64
	Video  string
	Audio  string
}

func (r Result) String() string {
	return fmt.Sprintf("frames=%d cycles=%d\nvideo: %s\naudio: %s", r.Frames, r.Cycles, r.Video, r.Audio)
}

// Run the Engine as fast as possible for the number of frames and return the
// digests of the video and audio produced. The Engine's audio sink is
// replaced for the duration of the run.
//
// Run does not use a scheduler so no frames are dropped and the result is
// deterministic.
func Run(eng engine.Engine, numFrames int, sampleRate int) (Result, error) {
	if numFrames <= 0 {
		return Result{}, curated.Errorf("digest: %v", "number of frames must be positive")
	}

	vid := NewVideo()
	aud := NewAudio(sampleRate)
	eng.SetAudioSink(aud)

	var res Result
	for vid.Frames() < numFrames {
		res.Cycles += uint64(eng.Step())
		if eng.FrameReady() {
			if err := vid.Frame(eng.Frame()); err != nil {
				return Result{}, err
			}
		}
	}
	aud.Flush()

	res.Frames = vid.Frames()
	res.Video = vid.Hash()
	res.Audio = aud.Hash()

	return res, nil
}
