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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/retromachines/retrocore/test"
)

func TestLocal(t *testing.T) {
	i := fromSettings("", "go1.24", nil)
	test.ExpectEquality(t, i.Version, "local")
	test.ExpectEquality(t, i.Revision, "no revision information")
	test.ExpectEquality(t, i.Release, false)
	test.ExpectEquality(t, i.String(), "Retrocore local (no revision information) go1.24")
}

func TestUnreleased(t *testing.T) {
	i := fromSettings("", "go1.24", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, i.Version, "unreleased")
	test.ExpectEquality(t, i.Revision, "abc123+dirty")
	test.ExpectEquality(t, i.Release, false)
}

func TestRelease(t *testing.T) {
	i := fromSettings("v0.1.0", "go1.24", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "false"},
	})
	test.ExpectEquality(t, i.Version, "v0.1.0")
	test.ExpectEquality(t, i.Revision, "abc123")
	test.ExpectEquality(t, i.Release, true)
	test.ExpectEquality(t, i.String(), "Retrocore v0.1.0")
}
