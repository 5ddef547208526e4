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

// Package video extracts a pixel framebuffer from the 1-bit video RAM.
//
// The monitor in the cabinet is mounted on its side. In memory the display
// is 256 pixels by 224, packed eight pixels of a line to the byte with the
// least significant bit first; on screen it is 224 by 256, rotated a
// quarter turn anti-clockwise, so the eight pixels of a byte stand in a
// column with the least significant bit lowest. The extractor performs the
// unpacking and the rotation in one pass.
package video

import (
	"github.com/mustafasegf/intel-8080-emu/hardware/memory"
)

// Dimensions of the extracted framebuffer. Width and Height describe the
// screen as the player sees it, after rotation.
const (
	Width  = 224
	Height = 256
)

// Pixel values in the extracted framebuffer.
const (
	PixelOff uint8 = 0x00
	PixelOn  uint8 = 0xff
)

// Screen holds the most recently extracted framebuffer.
type Screen struct {
	pixels [Width * Height]uint8
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{}
}

// Reset blanks the framebuffer.
func (scr *Screen) Reset() {
	for i := range scr.pixels {
		scr.pixels[i] = PixelOff
	}
}

// Extract unpacks the video RAM into the framebuffer. Memory is read only,
// never written. Called once per frame by the machine scheduler.
//
// A byte at offset i of video RAM holds the eight pixels at native
// coordinates (8*(i%32)+bit, i/32). Rotating anti-clockwise, native (x, y)
// lands at screen (y, 255-x).
func (scr *Screen) Extract(mem *memory.Memory) {
	vram := mem.VideoRAM()

	for i, b := range vram {
		y := i >> 5
		x := (i & 0x1f) << 3

		for bit := 0; bit < 8; bit++ {
			p := PixelOff
			if b>>bit&0x01 == 0x01 {
				p = PixelOn
			}
			scr.pixels[(255-(x+bit))*Width+y] = p
		}
	}
}

// Pixels returns the framebuffer as a slice: Width*Height bytes, row-major,
// one byte per pixel, PixelOff or PixelOn. The slice aliases the Screen's
// internal array and is valid until the next Extract.
func (scr *Screen) Pixels() []uint8 {
	return scr.pixels[:]
}
