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

// Package archivefs allows files inside zip archives to be addressed by
// ordinary looking paths. For example:
//
//	roms/collection.zip/games/tetris.gb
//
// An archive is treated as a directory. A path naming a directory inside an
// archive, or the archive itself, can be resolved to a file with Choose().
package archivefs

import (
	"io"
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}

// Open and return an io.ReadSeeker for the specified filename. The filename
// can be inside an archive. If the filename names an archive, or a directory
// inside an archive, then the first file with one of the extensions is
// opened.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func Open(filename string, extensions ...string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()

	if afs.IsDir() && afs.InArchive() && len(extensions) > 0 {
		if err := afs.Choose(extensions); err != nil {
			return nil, 0, err
		}
	}

	return afs.Open()
}
