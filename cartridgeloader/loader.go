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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/retromachines/retrocore/archivefs"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/logger"
)

// Loader is used to specify the ROM to load into the emulation.
type Loader struct {
	// filename of the ROM to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// FileExtensions is the list of file extensions that are recognised as ROM
// files.
var FileExtensions = [...]string{".GB", ".GBC", ".CGB", ".SGB", ".BIN", ".ROM"}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. Local files can be inside a zip archive.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("http status (%s)", resp.Status))
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		// the file may be inside a zip archive. if the filename names the
		// archive itself then the first ROM file in the archive is loaded
		r, size, err := archivefs.Open(strings.TrimPrefix(cl.Filename, "file://"), FileExtensions[:]...)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		cl.Data = make([]byte, size)
		if _, err := io.ReadFull(r, cl.Data); err != nil {
			cl.Data = nil
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes)", cl.ShortName(), len(cl.Data))

	return nil
}
