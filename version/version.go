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

// Package version reports the version of the application. The version number
// is set by the linker when building a release:
//
//	go build -ldflags "-X github.com/retromachines/retrocore/version.number=v0.1.0"
//
// Otherwise the version is derived from the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "Retrocore"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// "unreleased" if built from a VCS checkout without a version number.
	// "local" if there is no version number or VCS information, which is
	// the case with "go run"
	Version string

	// the VCS revision suffixed with "+dirty" if the source was modified
	Revision string

	// the Go version used to build the application
	GoVersion string

	// true if this is a numbered release
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, i.Version, i.Revision, i.GoVersion)
}

// Version returns the build information for the running binary.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(number, "", nil)
	}
	return fromSettings(number, info.GoVersion, info.Settings)
}

func fromSettings(num string, goVersion string, settings []debug.BuildSetting) Info {
	var vcs bool
	var modified bool

	i := Info{
		GoVersion: goVersion,
	}

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			i.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case num != "":
		i.Version = num
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
