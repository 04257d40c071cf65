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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/retromachines/retrocore/test"
)

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())

	// base directory does not exist in the current directory
	cnf, err := os.UserConfigDir()
	if err == nil {
		test.ExpectEquality(t, ResourcePath("foo", "bar"), filepath.Join(cnf, "retrocore", "foo", "bar"))
	}

	test.DemandSuccess(t, os.Mkdir(".retrocore", 0o700))
	test.ExpectEquality(t, ResourcePath("foo/bar", "baz"), ".retrocore/foo/bar/baz")
	test.ExpectEquality(t, ResourcePath("foo/bar", ""), ".retrocore/foo/bar")
	test.ExpectEquality(t, ResourcePath("", "baz"), ".retrocore/baz")
	test.ExpectEquality(t, ResourcePath(), ".retrocore")

	pth := ResourcePath("sub", "retrocore.yaml")
	test.DemandSuccess(t, EnsureDir(pth))
	info, err := os.Stat(".retrocore/sub")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.IsDir(), true)
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("audio", "tetris", n), "audio_tetris_20240307_090503")
	test.ExpectEquality(t, uniqueFilename("audio", "  ", n), "audio_20240307_090503")
}
