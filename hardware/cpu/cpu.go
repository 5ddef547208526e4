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

package cpu

import (
	"fmt"

	"github.com/mustafasegf/intel-8080-emu/hardware/bus"
	"github.com/mustafasegf/intel-8080-emu/hardware/cpu/execution"
	"github.com/mustafasegf/intel-8080-emu/hardware/cpu/instructions"
)

// the value of the pending interrupt latch when no interrupt is waiting.
const noInterrupt = -1

// cycle counts that are not part of the instruction table: acknowledging an
// interrupt takes as long as the RST it injects; a halted CPU marks time in
// NOP-sized steps until an interrupt arrives.
const (
	interruptCycles = 11
	haltedCycles    = 4
)

// CPU implements the Intel 8080 found in the Space Invaders cabinet.
type CPU struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP     uint16
	PC     uint16
	Status StatusRegister

	mem bus.CPUBus
	io  bus.IOBus

	// InterruptsEnabled is the IE flip-flop, set by EI and cleared by DI and
	// by interrupt acknowledgment
	InterruptsEnabled bool

	// set when the EI instruction executes and cleared when the following
	// instruction completes. while set, a pending interrupt is held back
	// even though InterruptsEnabled is true
	eiDelay bool

	// the one-slot pending interrupt latch. holds an RST vector number in
	// the range 0 to 7, or noInterrupt
	pendingInterrupt int

	// Halted is set by the HLT instruction and cleared by a pending
	// interrupt
	Halted bool

	// last result. the Defn field is nil if the CPU has been reset and
	// nothing has been executed
	LastResult execution.Result

	instructions *[256]instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus, io bus.IOBus) *CPU {
	mc := &CPU{
		mem:          mem,
		io:           io,
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory and I/O buses with the original - it is intended for the debug
// surfaces, which only look at register state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new bus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus, io bus.IOBus) {
	mc.mem = mem
	mc.io = io
}

// Reset reinitialises all registers. Matches the power-on state of the 8080:
// everything zero, interrupts disabled.
func (mc *CPU) Reset() {
	mc.A = 0
	mc.B = 0
	mc.C = 0
	mc.D = 0
	mc.E = 0
	mc.H = 0
	mc.L = 0
	mc.SP = 0
	mc.PC = 0
	mc.Status.Reset()
	mc.InterruptsEnabled = false
	mc.eiDelay = false
	mc.pendingInterrupt = noInterrupt
	mc.Halted = false
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x BC=%04x DE=%04x HL=%04x %s",
		mc.PC, mc.SP, mc.A, mc.BC(), mc.DE(), mc.HL(), mc.Status)
}

// RaiseInterrupt latches an RST vector for acknowledgment at the next
// instruction boundary. Only the low three bits of the vector are used. At
// most one interrupt is pending at a time; an unserviced vector is
// overwritten.
func (mc *CPU) RaiseInterrupt(vector int) {
	mc.pendingInterrupt = vector & 0x07
}

// HasPendingInterrupt returns true if an interrupt has been raised but not
// yet acknowledged.
func (mc *CPU) HasPendingInterrupt() bool {
	return mc.pendingInterrupt != noInterrupt
}

// fetch returns the byte at PC and advances PC.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC)
	mc.PC++
	return v
}

// fetch16 returns the little-endian word at PC and advances PC twice.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(v uint16) {
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v>>8))
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v))
}

func (mc *CPU) pop() uint16 {
	lo := mc.mem.Read(mc.SP)
	mc.SP++
	hi := mc.mem.Read(mc.SP)
	mc.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// rpRead returns the register pair selected by a two bit pair code: BC, DE,
// HL or SP.
func (mc *CPU) rpRead(code uint8) uint16 {
	switch code & 0x03 {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	}
	return mc.SP
}

// rpWrite sets the register pair selected by a two bit pair code.
func (mc *CPU) rpWrite(code uint8, v uint16) {
	switch code & 0x03 {
	case 0:
		mc.SetBC(v)
	case 1:
		mc.SetDE(v)
	case 2:
		mc.SetHL(v)
	default:
		mc.SP = v
	}
}

// condition evaluates a three bit condition code: NZ, Z, NC, C, PO, PE, P, M.
func (mc *CPU) condition(code uint8) bool {
	switch code & 0x07 {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	case 3:
		return mc.Status.Carry
	case 4:
		return !mc.Status.Parity
	case 5:
		return mc.Status.Parity
	case 6:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}

// acknowledgeInterrupt performs the interrupt sequence: the latched vector
// is executed as though an RST instruction had been jammed onto the data
// bus. IE is cleared; the interrupted PC is pushed.
func (mc *CPU) acknowledgeInterrupt() int {
	vector := mc.pendingInterrupt
	mc.pendingInterrupt = noInterrupt
	mc.InterruptsEnabled = false

	addr := mc.PC
	mc.push(mc.PC)
	mc.PC = uint16(vector) * 8

	opcode := 0xc7 | uint8(vector)<<3
	mc.LastResult = execution.Result{
		Address:   addr,
		Defn:      &mc.instructions[opcode],
		Cycles:    interruptCycles,
		Interrupt: true,
	}

	return interruptCycles
}

// Step executes the instruction at the current program counter and returns
// the number of machine cycles consumed.
//
// A pending interrupt is serviced at the top of Step(), before any fetch, so
// interrupts are only ever honoured at instruction boundaries. An interrupt
// also wakes a halted CPU, whether or not it can be serviced.
func (mc *CPU) Step() int {
	if mc.pendingInterrupt != noInterrupt {
		mc.Halted = false
		if mc.InterruptsEnabled && !mc.eiDelay {
			return mc.acknowledgeInterrupt()
		}
	}

	if mc.Halted {
		return haltedCycles
	}

	addr := mc.PC
	opcode := mc.fetch()
	defn := &mc.instructions[opcode]
	cycles := defn.Cycles
	branchTaken := false

	switch {
	case opcode == 0x76: // HLT
		mc.Halted = true

	case opcode&0xc0 == 0x40: // MOV group. dst in bits 3-5, src in bits 0-2
		mc.regWrite(opcode>>3, mc.regRead(opcode))

	case opcode&0xc0 == 0x80: // register ALU group
		v := mc.regRead(opcode)
		switch (opcode >> 3) & 0x07 {
		case 0:
			mc.add(v, false) // ADD
		case 1:
			mc.add(v, true) // ADC
		case 2:
			mc.sub(v, false) // SUB
		case 3:
			mc.sub(v, true) // SBB
		case 4:
			mc.and(v) // ANA
		case 5:
			mc.xor(v) // XRA
		case 6:
			mc.or(v) // ORA
		case 7:
			mc.compare(v) // CMP
		}

	case opcode&0xc7 == 0x00: // NOP, documented and otherwise

	case opcode&0xc7 == 0x04: // INR group
		code := (opcode >> 3) & 0x07
		mc.regWrite(code, mc.inr(mc.regRead(code)))

	case opcode&0xc7 == 0x05: // DCR group
		code := (opcode >> 3) & 0x07
		mc.regWrite(code, mc.dcr(mc.regRead(code)))

	case opcode&0xc7 == 0x06: // MVI group
		mc.regWrite((opcode>>3)&0x07, mc.fetch())

	case opcode&0xcf == 0x01: // LXI group
		mc.rpWrite(opcode>>4, mc.fetch16())

	case opcode&0xcf == 0x03: // INX group
		mc.rpWrite(opcode>>4, mc.rpRead(opcode>>4)+1)

	case opcode&0xcf == 0x0b: // DCX group
		mc.rpWrite(opcode>>4, mc.rpRead(opcode>>4)-1)

	case opcode&0xcf == 0x09: // DAD group
		mc.dad(mc.rpRead(opcode >> 4))

	case opcode&0xc7 == 0xc0: // conditional return group
		if mc.condition(opcode >> 3) {
			mc.PC = mc.pop()
			cycles = defn.CyclesBranched
			branchTaken = true
		}

	case opcode&0xc7 == 0xc2: // conditional jump group
		target := mc.fetch16()
		if mc.condition(opcode >> 3) {
			mc.PC = target
			branchTaken = true
		}

	case opcode&0xc7 == 0xc4: // conditional call group
		target := mc.fetch16()
		if mc.condition(opcode >> 3) {
			mc.push(mc.PC)
			mc.PC = target
			cycles = defn.CyclesBranched
			branchTaken = true
		}

	case opcode&0xc7 == 0xc6: // immediate ALU group
		v := mc.fetch()
		switch (opcode >> 3) & 0x07 {
		case 0:
			mc.add(v, false) // ADI
		case 1:
			mc.add(v, true) // ACI
		case 2:
			mc.sub(v, false) // SUI
		case 3:
			mc.sub(v, true) // SBI
		case 4:
			mc.and(v) // ANI
		case 5:
			mc.xor(v) // XRI
		case 6:
			mc.or(v) // ORI
		case 7:
			mc.compare(v) // CPI
		}

	case opcode&0xc7 == 0xc7: // RST group. the vector times eight is the
		// middle three bits of the opcode in place
		mc.push(mc.PC)
		mc.PC = uint16(opcode & 0x38)

	case opcode&0xcf == 0xc1: // POP group (PSW in slot 3)
		if opcode == 0xf1 {
			mc.SetPSW(mc.pop())
		} else {
			mc.rpWrite(opcode>>4, mc.pop())
		}

	case opcode&0xcf == 0xc5: // PUSH group (PSW in slot 3)
		if opcode == 0xf5 {
			mc.push(mc.PSW())
		} else {
			mc.push(mc.rpRead(opcode >> 4))
		}

	default:
		switch opcode {
		case 0x02: // STAX B
			mc.mem.Write(mc.BC(), mc.A)
		case 0x12: // STAX D
			mc.mem.Write(mc.DE(), mc.A)
		case 0x0a: // LDAX B
			mc.A = mc.mem.Read(mc.BC())
		case 0x1a: // LDAX D
			mc.A = mc.mem.Read(mc.DE())
		case 0x07: // RLC
			mc.rlc()
		case 0x0f: // RRC
			mc.rrc()
		case 0x17: // RAL
			mc.ral()
		case 0x1f: // RAR
			mc.rar()
		case 0x22: // SHLD
			target := mc.fetch16()
			mc.mem.Write(target, mc.L)
			mc.mem.Write(target+1, mc.H)
		case 0x2a: // LHLD
			target := mc.fetch16()
			mc.L = mc.mem.Read(target)
			mc.H = mc.mem.Read(target + 1)
		case 0x32: // STA
			mc.mem.Write(mc.fetch16(), mc.A)
		case 0x3a: // LDA
			mc.A = mc.mem.Read(mc.fetch16())
		case 0x27: // DAA
			mc.daa()
		case 0x2f: // CMA
			mc.A = ^mc.A
		case 0x37: // STC
			mc.Status.Carry = true
		case 0x3f: // CMC
			mc.Status.Carry = !mc.Status.Carry
		case 0xc3, 0xcb: // JMP
			mc.PC = mc.fetch16()
		case 0xc9, 0xd9: // RET
			mc.PC = mc.pop()
		case 0xcd, 0xdd, 0xed, 0xfd: // CALL
			target := mc.fetch16()
			mc.push(mc.PC)
			mc.PC = target
		case 0xd3: // OUT
			mc.io.PortOut(mc.fetch(), mc.A)
		case 0xdb: // IN
			mc.A = mc.io.PortIn(mc.fetch())
		case 0xe3: // XTHL
			lo := mc.mem.Read(mc.SP)
			hi := mc.mem.Read(mc.SP + 1)
			mc.mem.Write(mc.SP, mc.L)
			mc.mem.Write(mc.SP+1, mc.H)
			mc.L = lo
			mc.H = hi
		case 0xe9: // PCHL
			mc.PC = mc.HL()
		case 0xeb: // XCHG
			d, e := mc.D, mc.E
			mc.D, mc.E = mc.H, mc.L
			mc.H, mc.L = d, e
		case 0xf3: // DI
			mc.InterruptsEnabled = false
			mc.eiDelay = false
		case 0xf9: // SPHL
			mc.SP = mc.HL()
		case 0xfb: // EI
			mc.InterruptsEnabled = true
		default:
			// the instruction table is total so this is unreachable. if it
			// does trip, the decoder above has lost an opcode - a bug in the
			// emulator, not in the ROM
			panic(fmt.Sprintf("cpu: no implementation for opcode %#02x (PC=%#04x)", opcode, addr))
		}
	}

	// the EI delay: an interrupt must not fire until the instruction after
	// EI has completed
	if opcode == 0xfb {
		mc.eiDelay = true
	} else if mc.eiDelay {
		mc.eiDelay = false
	}

	mc.LastResult = execution.Result{
		Address:     addr,
		Defn:        defn,
		Cycles:      cycles,
		BranchTaken: branchTaken,
	}

	return cycles
}
