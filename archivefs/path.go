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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retromachines/retrocore/curated"
)

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a file and the file itself
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %v", "path is a directory")
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Choose the first file, in alphabetical order, in the current archive
// directory that has one of the file extensions. Extensions are compared
// without regard to case.
func (afs *Path) Choose(extensions []string) error {
	if afs.zf == nil || !afs.isDir {
		return curated.Errorf("archivefs: choose: %v", "path is not a directory in an archive")
	}

	var names []string
	for _, f := range afs.zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		dir, name := path.Split(path.Clean(f.Name))
		if strings.TrimSuffix(dir, "/") != afs.inZipPath {
			continue
		}
		ext := strings.ToUpper(path.Ext(name))
		if slices.ContainsFunc(extensions, func(e string) bool { return strings.ToUpper(e) == ext }) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return curated.Errorf("archivefs: choose: %v", "no suitable file in archive")
	}

	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	afs.inZipFile = names[0]
	afs.isDir = false
	afs.current = filepath.Join(afs.current, names[0])

	return nil
}

// Set the path. Parts of the path that are zip archives are treated as
// directories.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

		} else {
			fi, err := os.Stat(pth)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.zf, err = zip.OpenReader(pth)
			if err == nil {
				// the root of an archive file is considered to be a directory
				afs.isDir = true
				continue
			}
			afs.zf = nil

			if !errors.Is(err, zip.ErrFormat) {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}
