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

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/config"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/limiter"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/modalflag"
	"github.com/retromachines/retrocore/paths"
	"github.com/retromachines/retrocore/scheduler"
	"github.com/retromachines/retrocore/screenshot"
	"github.com/retromachines/retrocore/session"
	"github.com/retromachines/retrocore/statsview"
	"github.com/retromachines/retrocore/terminal"
	"github.com/retromachines/retrocore/userinput"
)

// how often the status line is redrawn. redrawing on wall time rather than on
// frame count keeps the terminal quiet when the emulation runs unlimited
const statusInterval = 250 * time.Millisecond

func run(md *modalflag.Modes) error {
	md.NewMode()

	prefs, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	pf := addPrefsFlags(md, prefs)
	save := md.AddString("save", "", "battery save file for the cartridge")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	saveprefs := md.AddBool("saveprefs", false, "save preferences, including those set on the command line")
	shot := md.AddInt("screenshot", 0, "save the final frame as a PNG at this scale (0 for no screenshot)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("keys: arrows/wasd = d-pad, z/x = B/A, enter = start, space = select, f = fast-forward, q = quit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if err := pf.apply(md, &prefs); err != nil {
		return err
	}

	if *saveprefs {
		if err := prefs.Save(config.DefaultPath()); err != nil {
			return err
		}
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	cl, err := loadCartridge(md, !prefs.Classic)
	if err != nil {
		return err
	}

	opts := prefs.Options()
	opts.SavePath = *save
	opts.WavFile = wavFilename(opts.WavFile, cl)

	title := cl.ShortName()
	if h, err := cartridgeloader.ParseHeader(cl.Data); err == nil && h.Title != "" {
		title = h.Title
	}

	s, err := session.New(cl.Data, opts)
	if err != nil {
		return err
	}

	var sc *screenshot.Screenshot
	if *shot > 0 {
		sc = &screenshot.Screenshot{}
	}

	if err := play(md.Output, s, title, sc); err != nil {
		return err
	}

	if sc != nil {
		fn, err := sc.Save(paths.UniqueFilename("screenshot", cl.ShortName()), *shot)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "screenshot saved to %s\n", fn)
	}

	return nil
}

// sender forwards events to the session until the session is destroyed.
// events may arrive from the input goroutine and the interrupt handler after
// the emulation has ended.
type sender struct {
	crit      sync.Mutex
	s         *session.Session
	destroyed bool
}

func (snd *sender) send(ev userinput.Event) {
	snd.crit.Lock()
	defer snd.crit.Unlock()
	if snd.destroyed {
		return
	}
	snd.s.SendEvent(ev)
}

func (snd *sender) destroy() {
	snd.crit.Lock()
	defer snd.crit.Unlock()
	snd.destroyed = true
	snd.s.Destroy()
}

// play runs the session until it is stopped. the session is destroyed before
// the function returns. the screenshot argument may be nil.
func play(output io.Writer, s *session.Session, title string, sc *screenshot.Screenshot) error {
	snd := &sender{s: s}

	var input io.Reader = os.Stdin
	status := func(format string, args ...any) {
		fmt.Fprintf(output, "\r"+format, args...)
	}

	term, err := terminal.New(os.Stdin, output)
	if err != nil {
		if !curated.Is(err, terminal.NotATerminal) {
			snd.destroy()
			return err
		}
		logger.Log(logger.Allow, "retrocore", err)
	} else {
		if err := term.RawMode(); err != nil {
			snd.destroy()
			return err
		}
		defer func() {
			if err := term.Close(); err != nil {
				logger.Log(logger.Allow, "retrocore", err)
			}
		}()
		input = term.Input()
		status = term.Status
	}

	done := make(chan scheduler.Reason, 1)
	go func() {
		done <- s.Run()
	}()

	go func() {
		if err := terminal.ReadEvents(input, snd.send); err != nil {
			logger.Log(logger.Allow, "retrocore", err)
		}
	}()

	// in canonical mode ctrl-c arrives as a signal rather than as input
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	quit := make(chan struct{})
	defer close(quit)

	go func() {
		select {
		case <-intChan:
			snd.send(userinput.EventStop)
		case <-quit:
		}
	}()

	meter := limiter.NewMeter(time.Second)
	buf := s.AudioBuffer()

	redraw := limiter.NewPulse(statusInterval)
	defer redraw.Stop()

	var frames int
	for {
		frame, ok := s.PollFrame()
		if !ok {
			break // for loop
		}
		meter.Count(1)

		if sc != nil {
			if err := sc.Record(frame); err != nil {
				logger.Log(logger.Allow, "retrocore", err)
			}
		}
		frames++

		if redraw.HasWaited() {
			st := s.Stats()

			pacing := "paced"
			if !st.Pacing {
				pacing = "unlimited"
			}

			audio := "no audio"
			if buf != nil {
				audio = fmt.Sprintf("audio %d/%d", buf.Len(), buf.Capacity())
			}

			status("%s | %.1f fps | %s | dropped %d | %s", title, meter.Measure(), pacing, st.FramesDropped, audio)
		}
	}

	reason := <-done
	snd.destroy()

	logger.Logf(logger.Allow, "retrocore", "%s: %s after %d frames", title, reason, frames)

	return nil
}
