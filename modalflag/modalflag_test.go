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

package modalflag_test

import (
	"strings"
	"testing"
	"time"

	"github.com/retromachines/retrocore/modalflag"
	"github.com/retromachines/retrocore/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"performance", "-duration", "2s", "rom.gb"})
	md.AddSubModes("run", "performance")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")

	md.NewMode()
	duration := md.AddDuration("duration", time.Second, "")
	unlimited := md.AddBool("unlimited", false, "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *duration, 2*time.Second)
	test.ExpectEquality(t, *unlimited, false)
	test.ExpectEquality(t, md.GetArg(0), "rom.gb")
	test.ExpectEquality(t, md.Path(), "PERFORMANCE")

	var set []string
	md.Visit(func(flag string) {
		set = append(set, flag)
	})
	test.ExpectEquality(t, strings.Join(set, ","), "duration")
}

func TestDefaultMode(t *testing.T) {
	// the flag belongs to the default mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"-dmg", "rom.gb"})
	md.AddSubModes("run", "performance")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	dmg := md.AddBool("dmg", false, "")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *dmg, true)
	test.ExpectEquality(t, md.GetArg(0), "rom.gb")

	// an argument that isn't a mode
	md = modalflag.Modes{}
	md.NewArgs([]string{"rom.gb"})
	md.AddSubModes("run", "performance")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "rom.gb")
}

func TestNoHelpAvailable(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectEquality(t, out.String(), expectedHelp)
}

func TestHelpForMode(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("run")
	_, _ = md.Parse()

	md.NewMode()
	md.AdditionalHelp("additional")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "Usage for RUN mode:\n\nadditional\n")
}
