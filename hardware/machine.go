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

package hardware

import (
	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/hardware/cpu"
	"github.com/mustafasegf/intel-8080-emu/hardware/limiter"
	"github.com/mustafasegf/intel-8080-emu/hardware/memory"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/hardware/shifter"
	"github.com/mustafasegf/intel-8080-emu/hardware/video"
	"github.com/mustafasegf/intel-8080-emu/romload"
)

// The clock of the cabinet and the frame schedule derived from it. The CPU
// runs at 2MHz against a 60Hz display, which is 33333.33 cycles per frame;
// the third of a cycle is dropped. The display interrupt fires twice per
// frame: RST 1 as the raster crosses the middle of the screen and RST 2 in
// the vertical blank.
const (
	ClockHz         = 2_000_000
	FramesPerSecond = 60

	CyclesPerFrame     = 33333
	CyclesPerHalfFrame = 16667
)

// the interrupt vectors raised by the display hardware.
const (
	midFrameVector = 1
	endFrameVector = 2
)

// Machine is the main container for the emulated components of the cabinet.
type Machine struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Shifter *shifter.Shifter
	Ports   *ports.Ports
	Screen  *video.Screen
	Limiter *limiter.Limiter

	// the loaded ROM. kept so a debug surface can identify the image
	Loader romload.Loader

	// cycle counter within the current frame. overshoot from the last
	// instruction of a frame is carried into the next
	frameCycles int

	// whether the mid-frame interrupt has been raised this frame
	raisedMid bool

	// set when the frame boundary is crossed; cleared by RunFrame()
	frameEnd bool

	// number of completed frames since the last reset
	FrameCount int

	paused bool
}

// NewMachine creates a new cabinet and everything inside it. The ROM image
// comes from the loader; the DIP switches are soldered in at construction.
func NewMachine(cartload romload.Loader, dips ports.DIPs) (*Machine, error) {
	mch := &Machine{Loader: cartload}

	mch.Mem = memory.NewMemory()
	if err := mch.Mem.LoadROM(cartload.Data); err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	mch.Shifter = shifter.NewShifter()
	mch.Ports = ports.NewPorts(mch.Shifter, dips)
	mch.CPU = cpu.NewCPU(mch.Mem, mch.Ports)
	mch.Screen = video.NewScreen()
	mch.Limiter = limiter.NewLimiter(FramesPerSecond)

	return mch, nil
}

// Reset emulates the reset switch on the cabinet. The ROM is restored from
// the loader image; every other component returns to its initial state.
func (mch *Machine) Reset() {
	mch.CPU.Reset()
	mch.Mem.Reset()
	mch.Shifter.Reset()
	mch.Ports.Reset()
	mch.Screen.Reset()
	mch.frameCycles = 0
	mch.raisedMid = false
	mch.frameEnd = false
	mch.FrameCount = 0
}

// Step executes one CPU instruction and advances the frame schedule,
// raising the display interrupts as the cycle counter crosses them. Works
// whether or not the machine is paused - this is the single-step facility
// of the debugger.
//
// Returns the cycles consumed by the instruction.
func (mch *Machine) Step() int {
	cycles := mch.CPU.Step()
	mch.frameCycles += cycles

	if !mch.raisedMid && mch.frameCycles >= CyclesPerHalfFrame {
		mch.CPU.RaiseInterrupt(midFrameVector)
		mch.raisedMid = true
	}

	if mch.frameCycles >= CyclesPerFrame {
		mch.CPU.RaiseInterrupt(endFrameVector)
		mch.frameCycles -= CyclesPerFrame
		mch.raisedMid = false
		mch.frameEnd = true
		mch.FrameCount++
		mch.Screen.Extract(mch.Mem)
	}

	return cycles
}

// RunFrame runs the machine for one 60Hz frame: both halves of the frame
// schedule, a framebuffer extraction, and a wait for the wall-clock frame
// boundary. If the machine is paused no instructions run; only the wait for
// the wall-clock frame boundary happens.
func (mch *Machine) RunFrame() {
	if mch.paused {
		// keep the wall-clock pacing so a paused play loop doesn't spin
		mch.Limiter.CheckFrame()
		return
	}

	for !mch.frameEnd {
		mch.Step()
	}
	mch.frameEnd = false

	mch.Limiter.CheckFrame()
}

// SetPaused suspends or resumes the frame scheduler. CPU state is not
// disturbed; a paused machine can still be single-stepped.
func (mch *Machine) SetPaused(paused bool) {
	mch.paused = paused
}

// Paused returns the pause state of the machine.
func (mch *Machine) Paused() bool {
	return mch.paused
}

// SetInputBit presses or releases a button bit in one of the two input
// latches. Safe to call at any time; the CPU sees the change on its next IN
// instruction.
func (mch *Machine) SetInputBit(player ports.Player, mask uint8, pressed bool) {
	mch.Ports.SetInputBit(player, mask, pressed)
}

// Framebuffer returns the most recently extracted framebuffer: 224x256
// bytes, row-major, zero for an unlit pixel and 0xff for a lit one.
func (mch *Machine) Framebuffer() []uint8 {
	return mch.Screen.Pixels()
}

// CPUState returns a snapshot of the CPU for the debug surfaces.
func (mch *Machine) CPUState() *cpu.CPU {
	return mch.CPU.Snapshot()
}

// ReadMemory returns a copy of length bytes of memory starting at the
// address. For the debug surfaces; no mirroring is applied.
func (mch *Machine) ReadMemory(address uint16, length int) []uint8 {
	d := make([]uint8, length)
	for i := range d {
		d[i] = mch.Mem.Peek(address + uint16(i))
	}
	return d
}
