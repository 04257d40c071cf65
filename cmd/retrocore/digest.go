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

	"github.com/retromachines/retrocore/config"
	"github.com/retromachines/retrocore/digest"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/engine/dummy"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/modalflag"
)

const defaultDigestFrames = 600

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	prefs, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	pf := addPrefsFlags(md, prefs)
	frames := md.AddInt("frames", defaultDigestFrames, "number of frames to run")

	md.AdditionalHelp("the video and audio digests of the frames are printed on completion")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if err := pf.apply(md, &prefs); err != nil {
		return err
	}

	cl, err := loadCartridge(md, !prefs.Classic)
	if err != nil {
		return err
	}

	return runDigest(md.Output, dummy.Factory, cl.Data, prefs, *frames)
}

func runDigest(output io.Writer, factory engine.Factory, rom []byte, prefs config.Prefs, frames int) error {
	opts := prefs.Options()

	eng, err := factory(rom, opts.Revision, engine.FactoryOptions{SkipChecksum: opts.SkipChecksum})
	if err != nil {
		return err
	}

	if c, ok := eng.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.Log(logger.Allow, "digest", err)
			}
		}()
	}

	res, err := digest.Run(eng, frames, opts.SampleRate)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, res)

	return nil
}
