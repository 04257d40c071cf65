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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/scheduler"
	"github.com/retromachines/retrocore/session"
	"github.com/retromachines/retrocore/userinput"
)

// the emulation runs for this long before measurement begins, to allow the
// frame rate to settle
const leadtime = 2 * time.Second

// Result of a performance measurement.
type Result struct {
	Duration time.Duration
	Frames   int
	Cycles   uint64

	// frames per second and accuracy of the frame rate as a percentage
	FPS      float64
	Accuracy float64

	// accuracy of the cycle rate as a percentage
	CycleAccuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% [cycles %.1f%%]",
		r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy, r.CycleAccuracy)
}

// Check the performance of the emulation using the supplied cartridge. The
// emulation runs without audio for the specified duration. Profiling
// information is generated as defined by the Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, opts session.Options, duration time.Duration) error {
	if err := cartload.Load(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var res Result
	err := RunProfiler(profile, "performance", func() error {
		var err error
		res, err = Measure(cartload.Data, opts, leadtime, duration)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(output, res)

	return nil
}

// Measure runs the emulation of the ROM for the leadtime and then for the
// measurement duration. Audio is always disabled. The scheduler's statistics
// at the beginning and end of the measurement period are used to calculate
// the Result.
func Measure(rom []byte, opts session.Options, lead time.Duration, duration time.Duration) (Result, error) {
	if duration <= 0 {
		return Result{}, curated.Errorf("performance: %v", "duration must be positive")
	}

	opts.Audio = session.AudioNone
	opts.WavFile = ""

	s, err := session.New(rom, opts)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	done := make(chan scheduler.Reason, 1)
	go func() {
		done <- s.Run()
	}()

	// consume frames so that the frame pipeline is never the bottleneck
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		for {
			if _, ok := s.PollFrame(); !ok {
				return
			}
		}
	}()

	time.Sleep(lead)
	start := s.Stats()
	time.Sleep(duration)
	end := s.Stats()

	s.SendEvent(userinput.EventStop)
	<-done
	<-consumed
	s.Destroy()

	hz := opts.Scheduler.ClockHz
	if hz == 0 {
		hz = clocks.DMG
	}

	res := Result{
		Duration: duration,
		Frames:   int((end.FramesPublished + end.FramesDropped) - (start.FramesPublished + start.FramesDropped)),
		Cycles:   end.Cycles - start.Cycles,
	}
	res.FPS, res.Accuracy = CalcFPS(hz, res.Frames, duration.Seconds())
	res.CycleAccuracy = CalcCycleRate(hz, res.Cycles, duration.Seconds())

	return res, nil
}
