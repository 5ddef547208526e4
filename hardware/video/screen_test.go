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

package video_test

import (
	"testing"

	"github.com/mustafasegf/intel-8080-emu/hardware/memory"
	"github.com/mustafasegf/intel-8080-emu/hardware/video"
	"github.com/mustafasegf/intel-8080-emu/test"
)

func newMem(t *testing.T) *memory.Memory {
	t.Helper()
	mem := memory.NewMemory()
	if err := mem.LoadROM(make([]uint8, memory.ROMSize)); err != nil {
		t.Fatal(err)
	}
	return mem
}

// pixel returns the framebuffer value at screen coordinates (col, row).
func pixel(scr *video.Screen, col, row int) uint8 {
	return scr.Pixels()[row*video.Width+col]
}

func TestExtractRotation(t *testing.T) {
	mem := newMem(t)
	scr := video.NewScreen()

	// the first byte of video RAM holds native pixels (0,0) to (7,0), LSB
	// topmost. bit 0 is native (0,0), which lands at screen (0,255)
	mem.Write(0x2400, 0x01)

	// byte 32 is the start of native row 1: bit 7 is native (7,1), which
	// lands at screen (1,248)
	mem.Write(0x2400+32, 0x80)

	scr.Extract(mem)

	test.Equate(t, pixel(scr, 0, 255), 0xff)
	test.Equate(t, pixel(scr, 1, 248), 0xff)

	// nothing else is lit
	count := 0
	for _, p := range scr.Pixels() {
		if p != 0x00 {
			count++
		}
	}
	test.Equate(t, count, 2)
}

func TestExtractLastByte(t *testing.T) {
	mem := newMem(t)
	scr := video.NewScreen()

	// the last byte of video RAM is native column group 31 of row 223.
	// bit 7 is native (255,223): screen (223,0)
	mem.Write(0x3fff, 0x80)
	scr.Extract(mem)
	test.Equate(t, pixel(scr, 223, 0), 0xff)
}

func TestExtractClearsStalePixels(t *testing.T) {
	mem := newMem(t)
	scr := video.NewScreen()

	mem.Write(0x2400, 0x01)
	scr.Extract(mem)
	test.Equate(t, pixel(scr, 0, 255), 0xff)

	// the pixel goes out when the bit does
	mem.Write(0x2400, 0x00)
	scr.Extract(mem)
	test.Equate(t, pixel(scr, 0, 255), 0x00)
}

func TestFramebufferShape(t *testing.T) {
	scr := video.NewScreen()
	test.Equate(t, len(scr.Pixels()), 224*256)
}
