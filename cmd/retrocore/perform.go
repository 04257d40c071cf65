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
	"os"
	"time"

	"github.com/retromachines/retrocore/config"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/modalflag"
	"github.com/retromachines/retrocore/performance"
	"github.com/retromachines/retrocore/statsview"
)

const defaultDuration = 5 * time.Second

func perform(md *modalflag.Modes) error {
	md.NewMode()

	prefs, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	pf := addPrefsFlags(md, prefs)
	duration := md.AddDuration("duration", defaultDuration, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE (comma sep)")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

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

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	cl, err := loadCartridge(md, !prefs.Classic)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, cl, prefs.Options(), *duration)
}
