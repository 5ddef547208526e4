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

// Package memory implements the address space of the Space Invaders
// cabinet: 8 KiB of ROM, 1 KiB of work RAM and 7 KiB of video RAM, with the
// RAM block mirrored in the window above it.
//
// The video RAM is ordinary memory. Writes to it have no side effects;
// the framebuffer is pulled from it once per frame by the video package.
package memory

import (
	"github.com/mustafasegf/intel-8080-emu/curated"
)

// The memory map of the cabinet.
const (
	ROMOrigin uint16 = 0x0000
	ROMMemtop uint16 = 0x1fff

	RAMOrigin uint16 = 0x2000
	RAMMemtop uint16 = 0x3fff

	VideoOrigin uint16 = 0x2400
	VideoMemtop uint16 = 0x3fff

	// the address decoding on the cabinet mirrors the RAM block in the 8 KiB
	// window above it
	MirrorOrigin uint16 = 0x4000
	MirrorMemtop uint16 = 0x5fff
)

// ROMSize is the required size of the ROM image.
const ROMSize = 0x2000

// WrongROMSize is returned by LoadROM when the image is not ROMSize bytes.
const WrongROMSize = "memory: ROM image is %d bytes (want %d)"

// Memory is the flat 64 KiB address space. Above the mirror window the
// space is plain undecoded storage; the game never reaches it.
type Memory struct {
	internal [0x10000]uint8

	// a pristine copy of the ROM image, so Reset() can restore memory
	// without the loader
	rom [ROMSize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of the memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// LoadROM copies the ROM image into the bottom of the address space. The
// image must be exactly ROMSize bytes - the concatenation of invaders.h,
// invaders.g, invaders.f and invaders.e.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) != ROMSize {
		return curated.Errorf(WrongROMSize, len(data), ROMSize)
	}
	copy(mem.rom[:], data)
	copy(mem.internal[:ROMSize], data)
	return nil
}

// Reset clears the RAM and restores the ROM image. The loader is not
// involved.
func (mem *Memory) Reset() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
	copy(mem.internal[:ROMSize], mem.rom[:])
}

// mirror translates an address in the mirror window onto the RAM block.
func mirror(address uint16) uint16 {
	if address >= MirrorOrigin && address <= MirrorMemtop {
		return address - 0x2000
	}
	return address
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.internal[mirror(address)]
}

// Write implements the bus.CPUBus interface. Writes to the ROM region are
// silently discarded.
func (mem *Memory) Write(address uint16, data uint8) {
	address = mirror(address)
	if address <= ROMMemtop {
		return
	}
	mem.internal[address] = data
}

// Peek implements the bus.DebugBus interface. No mirroring; the debugger
// sees the array as it is.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.internal[address]
}

// VideoRAM returns the video RAM as a slice. The slice aliases the memory
// array - the caller must not hold onto it across a Reset().
func (mem *Memory) VideoRAM() []uint8 {
	return mem.internal[VideoOrigin : VideoMemtop+1]
}
