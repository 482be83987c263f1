// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// Sentinal errors.
const (
	LoadError      = "cartridgeloader: %v"
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge data. The boot ROM is usually stored with the .bin extension.
var FileExtensions = [...]string{".GB", ".DMG", ".BIN", ".ROM"}

// Loader specifies what data is to be loaded and how to load it.
type Loader struct {
	// filename or URL of the data to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
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

func (cl Loader) String() string {
	return cl.Filename
}

// ShortName returns the filename without the path and extension.
func (cl Loader) ShortName() string {
	n := filepath.Base(cl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// HasRecognisedExtension returns true if the filename has one of the
// extensions listed in FileExtensions.
func (cl Loader) HasRecognisedExtension() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the data from the filename or URL. The hash of the data is computed
// and compared with the Hash field if it is not empty.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		scheme := "file"
		if u, err := url.Parse(cl.Filename); err == nil && len(u.Scheme) > 1 {
			scheme = u.Scheme
		}

		switch scheme {
		case "http", "https":
			resp, err := http.Get(cl.Filename)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return curated.Errorf(LoadError, fmt.Sprintf("http status %d", resp.StatusCode))
			}

			cl.Data, err = io.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}

		case "file":
			var err error
			cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
			if err != nil {
				return curated.Errorf(LoadError, err)
			}

		default:
			return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}

		if len(cl.Data) == 0 {
			return curated.Errorf(LoadError, "no data")
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, cl.Hash)
	}
	cl.Hash = hash

	return nil
}
