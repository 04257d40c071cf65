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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Arguments are given with NewArgs() and parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first
// non-flag argument is not a listed mode. Sub-mode comparisons are case
// insensitive and mode names are reported in upper case:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		save := md.AddString("save", "", "battery save file")
//		p, err := md.Parse()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags. Non-flag arguments that
// follow are available through RemainingArgs() and GetArg().
//
// Help is printed to the Output writer when the -help flag is given, in which
// case Parse() returns ParseHelp.
package modalflag
