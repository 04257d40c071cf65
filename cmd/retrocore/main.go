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

// Retrocore runs a cartridge in the terminal. With no cartridge argument a
// blank demonstration cartridge is run.
//
// The RUN mode is the default. The PERFORMANCE mode runs the emulation
// without output and reports the frame rate. The DIGEST mode prints
// fingerprints of the video and audio produced in a number of frames, for
// regression testing.
package main

import (
	"fmt"
	"os"

	"github.com/retromachines/retrocore/modalflag"
	"github.com/retromachines/retrocore/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit code of the process.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %s\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "DIGEST":
		err = digestMode(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.Version())

	return nil
}
