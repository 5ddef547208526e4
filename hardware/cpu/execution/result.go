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

// Package execution records the result of a single call to cpu.Step(). Very
// useful to the debugger but not required for the emulation itself.
package execution

import (
	"fmt"

	"github.com/mustafasegf/intel-8080-emu/hardware/cpu/instructions"
)

// Result records the execution details of the most recent instruction.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// a pointer into the instruction table. nil when the CPU has been reset
	// and nothing has run yet
	Defn *instructions.Definition

	// the cycles consumed, including the branched-to count for conditional
	// calls and returns that took their branch
	Cycles int

	// whether a conditional jump, call or return took its branch
	BranchTaken bool

	// the result is an interrupt acknowledgment rather than a fetched
	// instruction. Address is the value of PC at the moment of
	// acknowledgment and Defn describes the injected RST opcode
	Interrupt bool
}

// Reset nullifies the result. Used when the CPU is reset.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Cycles = 0
	r.BranchTaken = false
	r.Interrupt = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no execution"
	}
	if r.Interrupt {
		return fmt.Sprintf("%04x: %s (interrupt, %d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
	}
	return fmt.Sprintf("%04x: %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}
