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

package romload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/romload"
	"github.com/mustafasegf/intel-8080-emu/test"
)

func TestSingleFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "invaders")

	image := make([]uint8, romload.Size)
	image[0] = 0xc3
	if err := os.WriteFile(name, image, 0644); err != nil {
		t.Fatal(err)
	}

	ld, err := romload.NewLoader(name)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(ld.Data), romload.Size)
	test.Equate(t, ld.Data[0], 0xc3)
	if ld.Hash == "" {
		t.Error("loader did not hash the image")
	}
}

func TestPartFiles(t *testing.T) {
	dir := t.TempDir()

	// four 2 KiB parts, each filled with a marker byte
	for i, p := range []string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"} {
		part := make([]uint8, romload.Size/4)
		for j := range part {
			part[j] = uint8(i + 1)
		}
		if err := os.WriteFile(filepath.Join(dir, p), part, 0644); err != nil {
			t.Fatal(err)
		}
	}

	ld, err := romload.NewLoader(dir)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(ld.Data), romload.Size)

	// invaders.h at the bottom, invaders.e at the top
	test.Equate(t, ld.Data[0x0000], 0x01)
	test.Equate(t, ld.Data[0x0800], 0x02)
	test.Equate(t, ld.Data[0x1000], 0x03)
	test.Equate(t, ld.Data[0x1800], 0x04)
}

func TestWrongSize(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "short")
	if err := os.WriteFile(name, make([]uint8, 0x1000), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := romload.NewLoader(name)
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, romload.SizeError), true)
}

func TestMissingFile(t *testing.T) {
	_, err := romload.NewLoader(filepath.Join(t.TempDir(), "nope"))
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, romload.LoadError), true)
}
