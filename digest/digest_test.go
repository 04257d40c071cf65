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

package digest_test

import (
	"testing"

	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/digest"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/engine/dummy"
	"github.com/retromachines/retrocore/test"
)

// zero value of a digest
const zero = "0000000000000000000000000000000000000000"

func TestVideo(t *testing.T) {
	var _ digest.Digest = digest.NewVideo()

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), zero)

	frame := make([]byte, clocks.FrameSize)
	test.DemandSuccess(t, a.Frame(frame))
	test.DemandSuccess(t, b.Frame(frame))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), zero)

	// the same frame a second time produces a new digest
	h := a.Hash()
	test.DemandSuccess(t, a.Frame(frame))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	test.ExpectFailure(t, a.Frame(frame[1:]))

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestAudio(t *testing.T) {
	var _ audio.Sink = digest.NewAudio(0)
	var _ digest.Digest = digest.NewAudio(0)

	a := digest.NewAudio(0)
	test.ExpectEquality(t, a.SampleRate(), clocks.SampleRate)
	test.ExpectEquality(t, a.Underflowed(), false)

	// nothing has been flushed
	a.Play([]float32{0.1, 0.2}, []float32{0.3, 0.4})
	test.ExpectEquality(t, a.Hash(), zero)

	a.Flush()
	h := a.Hash()
	test.ExpectInequality(t, h, zero)

	// flushing an empty buffer does not change the digest
	a.Flush()
	test.ExpectEquality(t, a.Hash(), h)

	// the buffer is flushed automatically once it is full
	b := digest.NewAudio(0)
	l := make([]float32, 2048)
	b.Play(l, l)
	test.ExpectInequality(t, b.Hash(), zero)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
}

func newEngine(t *testing.T, rev engine.Revision) engine.Engine {
	t.Helper()
	eng, err := dummy.New(cartridgeloader.NewBlankROM("DIGEST", true), rev, engine.FactoryOptions{})
	test.DemandSuccess(t, err)
	return eng
}

func TestRun(t *testing.T) {
	a, err := digest.Run(newEngine(t, engine.DMG), 10, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Frames, 10)
	test.ExpectEquality(t, a.Cycles >= 10*clocks.CyclesPerFrame, true)

	b, err := digest.Run(newEngine(t, engine.DMG), 10, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a, b)

	c, err := digest.Run(newEngine(t, engine.CGB), 10, 0)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, c.Video, a.Video)

	_, err = digest.Run(newEngine(t, engine.DMG), 0, 0)
	test.ExpectFailure(t, err)
}
