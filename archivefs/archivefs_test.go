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

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retromachines/retrocore/archivefs"
	"github.com/retromachines/retrocore/test"
)

// createArchive in a temporary directory and return the path of the
// directory
func createArchive(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("plain"), 0o600))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"root.gb":      "root",
		"readme.txt":   "readme",
		"games/b.gb":   "b",
		"games/A.gbc":  "a",
		"games/notes":  "notes",
		"other/c.gb":   "c",
		"empty/x.json": "{}",
	} {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(content))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func readAll(t *testing.T, r io.ReadSeeker, n int) string {
	t.Helper()
	b, err := io.ReadAll(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), n)
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
	return string(b)
}

func TestArchivefsPath(t *testing.T) {
	dir := createArchive(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "foo")))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	test.ExpectSuccess(t, afs.Set(dir))
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectEquality(t, afs.IsDir(), true)
	test.ExpectEquality(t, afs.InArchive(), false)

	_, _, err := afs.Open()
	test.ExpectFailure(t, err)

	// a real file
	path := filepath.Join(dir, "testfile")
	test.ExpectSuccess(t, afs.Set(path))
	test.ExpectEquality(t, afs.IsDir(), false)
	test.ExpectEquality(t, afs.InArchive(), false)
	test.ExpectEquality(t, afs.Base(), "testfile")

	r, n, err := afs.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, readAll(t, r, n), "plain")

	// the archive is a directory
	path = filepath.Join(dir, "testarchive.zip")
	test.ExpectSuccess(t, afs.Set(path))
	test.ExpectEquality(t, afs.IsDir(), true)
	test.ExpectEquality(t, afs.InArchive(), true)

	// directory inside the archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(path, "games")))
	test.ExpectEquality(t, afs.IsDir(), true)
	test.ExpectEquality(t, afs.InArchive(), true)

	// file inside the archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(path, "games", "b.gb")))
	test.ExpectEquality(t, afs.IsDir(), false)
	test.ExpectEquality(t, afs.InArchive(), true)

	r, n, err = afs.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, readAll(t, r, n), "b")

	// non-existant file inside the archive
	test.ExpectFailure(t, afs.Set(filepath.Join(path, "games", "foo")))
	test.ExpectEquality(t, afs.InArchive(), false)
}

func TestChoose(t *testing.T) {
	dir := createArchive(t)
	exts := []string{".gb", ".GBC"}

	path := filepath.Join(dir, "testarchive.zip")
	r, n, err := archivefs.Open(path, exts...)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, readAll(t, r, n), "root")

	// alphabetical order without regard to case
	r, n, err = archivefs.Open(filepath.Join(path, "games"), exts...)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, readAll(t, r, n), "a")

	_, _, err = archivefs.Open(filepath.Join(path, "empty"), exts...)
	test.ExpectFailure(t, err)

	// directories can not be opened without extensions to choose from
	_, _, err = archivefs.Open(path)
	test.ExpectFailure(t, err)

	var afs archivefs.Path
	defer afs.Close()
	test.ExpectFailure(t, afs.Choose(exts))
}

func TestTrimArchiveExt(t *testing.T) {
	test.ExpectEquality(t, archivefs.TrimArchiveExt("foo.zip"), "foo")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("foo.ZIP"), "foo")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("foo.gb"), "foo.gb")
}
