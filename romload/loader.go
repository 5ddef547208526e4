// This file is part of Invaders8080.
//
// Invaders8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Invaders8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Invaders8080.  If not, see <https://www.gnu.org/licenses/>.

// Package romload reads the Space Invaders ROM image from disk. Two layouts
// are understood: a single 8 KiB file containing the concatenated image, or
// a directory holding the four original part files (invaders.h, invaders.g,
// invaders.f, invaders.e) which are concatenated in that order.
//
// Loading problems are host errors in the sense of the error handling
// design: they are reported here, at startup, and the core never sees them.
package romload

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/logger"
)

// Size is the expected size of the complete ROM image.
const Size = 0x2000

// the four part files of the original board, in load order. invaders.h sits
// at address zero.
var partFiles = [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// Sentinel errors returned by NewLoader.
const (
	LoadError = "romload: %v"
	SizeError = "romload: %s: image is %d bytes (want %d)"
)

// Loader holds a loaded ROM image.
type Loader struct {
	// the file or directory the image was loaded from
	Filename string

	// the complete 8 KiB image
	Data []uint8

	// the SHA1 digest of the image
	Hash string
}

// NewLoader reads the ROM image from the named file, or from the four part
// files if the name refers to a directory.
func NewLoader(filename string) (Loader, error) {
	ld := Loader{Filename: filename}

	fi, err := os.Stat(filename)
	if err != nil {
		return Loader{}, curated.Errorf(LoadError, err)
	}

	if fi.IsDir() {
		for _, p := range partFiles {
			d, err := os.ReadFile(filepath.Join(filename, p))
			if err != nil {
				return Loader{}, curated.Errorf(LoadError, err)
			}
			ld.Data = append(ld.Data, d...)
		}
	} else {
		ld.Data, err = os.ReadFile(filename)
		if err != nil {
			return Loader{}, curated.Errorf(LoadError, err)
		}
	}

	if len(ld.Data) != Size {
		return Loader{}, curated.Errorf(SizeError, filename, len(ld.Data), Size)
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	logger.Logf("romload", "%s (SHA1 %s)", ld.Filename, ld.Hash)

	return ld, nil
}

// NewLoaderFromData wraps an in-memory image in a Loader. Used by tests,
// which load images that are not the Space Invaders ROM.
func NewLoaderFromData(name string, data []uint8) Loader {
	return Loader{
		Filename: name,
		Data:     data,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
	}
}
