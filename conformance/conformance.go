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

// Package conformance runs the industry-standard 8080 CPU test programs
// (cpudiag.bin, TST8080.COM, 8080EXM.COM and friends) against the CPU
// implementation. The programs are CP/M binaries: they load at 0x100 and
// print through the BDOS entry point at address 5, so the harness provides
// a flat 64 KiB memory and a two-function BDOS.
//
// The test programs themselves are not distributed with this repository.
// The conformance test skips when they are absent from the testdata
// directory.
package conformance

import (
	"strings"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/hardware/cpu"
)

// LoadAddress is where CP/M transient programs load and start.
const LoadAddress = 0x100

// NotCompleted is returned by Run when the cycle limit is exhausted.
const NotCompleted = "conformance: not completed after %d cycles"

// flatMemory is 64 KiB with no decoding at all. Test programs expect to
// write wherever they like.
type flatMemory struct {
	internal [0x10000]uint8
}

func (mem *flatMemory) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *flatMemory) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

// nullPorts satisfies the IO bus. The test programs never touch ports.
type nullPorts struct{}

func (p nullPorts) PortIn(port uint8) uint8 {
	return 0
}

func (p nullPorts) PortOut(port uint8, data uint8) {
}

// Run executes a CP/M test program and returns everything it printed. The
// run ends when the program jumps back to the warm boot address; if that
// has not happened within cycleLimit cycles an error is returned along with
// the output so far.
func Run(program []uint8, cycleLimit uint64) (string, error) {
	mem := &flatMemory{}
	copy(mem.internal[LoadAddress:], program)

	// a RET at the BDOS entry point. the BDOS calls themselves are
	// intercepted below, before the RET executes
	mem.internal[0x0005] = 0xc9

	mc := cpu.NewCPU(mem, nullPorts{})
	mc.PC = LoadAddress

	output := strings.Builder{}

	var cycles uint64
	for cycles < cycleLimit {
		switch mc.PC {
		case 0x0000:
			// warm boot. the program is done
			return output.String(), nil

		case 0x0005:
			// BDOS console functions: 2 prints the character in E, 9 prints
			// the '$'-terminated string at DE
			switch mc.C {
			case 2:
				output.WriteByte(mc.E)
			case 9:
				addr := mc.DE()
				for {
					ch := mem.Read(addr)
					if ch == '$' {
						break
					}
					output.WriteByte(ch)
					addr++
				}
			}
		}

		cycles += uint64(mc.Step())
	}

	return output.String(), curated.Errorf(NotCompleted, cycleLimit)
}
