// This file is part of Gopherdrive.
//
// Gopherdrive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdrive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdrive.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
)

// UnexpectedHash is returned by Load() when the loaded data does not match
// the hash specified in the Loader.
var UnexpectedHash = errors.New("unexpected hash value")

// Loader is used to specify the cartridge to use when initialising a system.
// It also permits the caller to specify the system that the cartridge is
// intended for, if the file extension is not enough.
type Loader struct {
	// filename of cartridge to load. can be a URL with a http or https
	// scheme
	Filename string

	// the system the cartridge is intended for. SysNone indicates that the
	// system could not be decided from the filename
	System memorymap.SysID

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The system argument will be used to set the System field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, system string) (Loader, error) {
	cl := Loader{
		Filename: filename,
	}

	system = strings.TrimSpace(strings.ToUpper(system))
	if system != "AUTO" && system != "" {
		sys, err := memorymap.ParseSysID(system)
		if err != nil {
			return cl, fmt.Errorf("cartridgeloader: %w", err)
		}
		cl.System = sys
		return cl, nil
	}

	cl.System = SystemFromExtension(filename)

	return cl, nil
}

// SystemFromExtension returns the system suggested by the file extension.
// Returns SysNone if the extension is not recognised. Alphabetic characters in
// the extension can be in upper or lower case.
func SystemFromExtension(filename string) memorymap.SysID {
	switch strings.ToUpper(path.Ext(filename)) {
	case ".MD", ".BIN", ".GEN", ".SMD":
		return memorymap.SysMD
	case ".32X":
		return memorymap.Sys32X
	case ".PCO":
		return memorymap.SysPico
	case ".ISO", ".CUE":
		return memorymap.SysMCD
	}
	return memorymap.SysNone
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".MD", ".BIN", ".GEN", ".SMD", ".32X", ".PCO", ".ISO", ".CUE"}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		return fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return fmt.Errorf("cartridgeloader: %w", UnexpectedHash)
	}

	cl.Hash = hash

	return nil
}
