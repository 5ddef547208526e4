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

package cpu_test

import (
	"testing"

	"github.com/mustafasegf/intel-8080-emu/hardware/cpu"
	"github.com/mustafasegf/intel-8080-emu/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)",
			mem.internal[address], value, address)
	}
}

// mockIO records port traffic and plays back canned input values.
type mockIO struct {
	in  [256]uint8
	out map[uint8][]uint8
}

func newMockIO() *mockIO {
	return &mockIO{out: make(map[uint8][]uint8)}
}

func (io *mockIO) PortIn(port uint8) uint8 {
	return io.in[port]
}

func (io *mockIO) PortOut(port uint8, data uint8) {
	io.out[port] = append(io.out[port], data)
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	return mc.Step()
}

// assertFlags compares the status register with a string in the same
// pattern produced by StatusRegister.String(): upper-case set, lower-case
// clear, in the order S Z A P C.
func assertFlags(t *testing.T, mc *cpu.CPU, pattern string) {
	t.Helper()
	test.Equate(t, mc.Status.String(), "SR="+pattern)
}

func TestDataTransfer(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// MVI A,$de; MVI B,$ad; MOV C,A; MOV A,B
	mem.putInstructions(0x0000, 0x3e, 0xde, 0x06, 0xad, 0x4f, 0x78)
	step(t, mc)
	test.Equate(t, mc.A, 0xde)
	step(t, mc)
	test.Equate(t, mc.B, 0xad)
	step(t, mc)
	test.Equate(t, mc.C, 0xde)
	step(t, mc)
	test.Equate(t, mc.A, 0xad)

	// flags are never touched by data transfer
	assertFlags(t, mc, "szapc")

	// LXI H,$2100; MVI M,$99; MOV A,M
	mem.putInstructions(0x0006, 0x21, 0x00, 0x21, 0x36, 0x99, 0x7e)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x2100)
	step(t, mc)
	mem.assert(t, 0x2100, 0x99)
	step(t, mc)
	test.Equate(t, mc.A, 0x99)

	// STA; LDA
	mem.putInstructions(0x000c, 0x32, 0x80, 0x21, 0x3e, 0x00, 0x3a, 0x80, 0x21)
	step(t, mc)
	mem.assert(t, 0x2180, 0x99)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	step(t, mc)
	test.Equate(t, mc.A, 0x99)

	// SHLD; LHLD
	mem.putInstructions(0x0014, 0x22, 0x90, 0x21, 0x21, 0x00, 0x00, 0x2a, 0x90, 0x21)
	step(t, mc)
	mem.assert(t, 0x2190, 0x00)
	mem.assert(t, 0x2191, 0x21)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0000)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x2100)

	// STAX B / LDAX D
	mem.putInstructions(0x001d, 0x01, 0xa0, 0x21, 0x02, 0x11, 0xa0, 0x21, 0x1a)
	step(t, mc) // LXI B
	step(t, mc) // STAX B
	mem.assert(t, 0x21a0, 0x99)
	step(t, mc) // LXI D
	step(t, mc) // LDAX D
	test.Equate(t, mc.A, 0x99)
}

func TestXCHGSelfInverse(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SetDE(0x1234)
	mc.SetHL(0x5678)

	mem.putInstructions(0x0000, 0xeb, 0xeb)
	step(t, mc)
	test.Equate(t, mc.DE(), 0x5678)
	test.Equate(t, mc.HL(), 0x1234)
	step(t, mc)
	test.Equate(t, mc.DE(), 0x1234)
	test.Equate(t, mc.HL(), 0x5678)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// ADI $0f; ADI $01 - aux carry across the nibble boundary
	mem.putInstructions(0x0000, 0xc6, 0x0f, 0xc6, 0x01)
	step(t, mc)
	test.Equate(t, mc.A, 0x0f)
	assertFlags(t, mc, "szaPc")
	step(t, mc)
	test.Equate(t, mc.A, 0x10)
	assertFlags(t, mc, "szApc")

	// ADI $f0 - carry out of bit 7, result zero
	mem.putInstructions(0x0004, 0xc6, 0xf0)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "sZaPC")

	// ACI $00 - the carry feeds in
	mem.putInstructions(0x0006, 0xce, 0x00)
	step(t, mc)
	test.Equate(t, mc.A, 0x01)
	assertFlags(t, mc, "szapc")

	// SUI $02 - borrow sets carry and sign; the low nibble borrows too
	mem.putInstructions(0x0008, 0xd6, 0x02)
	step(t, mc)
	test.Equate(t, mc.A, 0xff)
	assertFlags(t, mc, "SzAPC")

	// SBI $fe - subtract with borrow: 0xff - 0xfe - 1 = 0
	mem.putInstructions(0x000a, 0xde, 0xfe)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "sZaPc")
}

func TestRegisterALUGroup(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.A = 0x10
	mc.B = 0x22
	mc.SetHL(0x2100)
	mem.Write(0x2100, 0x03)

	// ADD B; ADD M
	mem.putInstructions(0x0000, 0x80, 0x86)
	step(t, mc)
	test.Equate(t, mc.A, 0x32)
	step(t, mc)
	test.Equate(t, mc.A, 0x35)

	// SUB A always leaves zero
	mem.putInstructions(0x0002, 0x97)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "sZaPc")
}

func TestINRDCRLeaveCarryAlone(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// STC; MVI B,$ff; INR B - carry survives, zero and aux set
	mem.putInstructions(0x0000, 0x37, 0x06, 0xff, 0x04)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.B, 0x00)
	assertFlags(t, mc, "sZAPC")

	// DCR B - back to 0xff, carry still set, borrow from the nibble
	mem.putInstructions(0x0004, 0x05)
	step(t, mc)
	test.Equate(t, mc.B, 0xff)
	assertFlags(t, mc, "SzAPC")

	// INR M / DCR M work on memory
	mc.SetHL(0x2100)
	mem.putInstructions(0x0005, 0x34, 0x35)
	step(t, mc)
	mem.assert(t, 0x2100, 0x01)
	step(t, mc)
	mem.assert(t, 0x2100, 0x00)
}

func TestINXDCXLeaveFlagsAlone(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SetBC(0xffff)
	mem.putInstructions(0x0000, 0x03, 0x0b, 0x3b)
	step(t, mc)
	test.Equate(t, mc.BC(), 0x0000)
	assertFlags(t, mc, "szapc")
	step(t, mc)
	test.Equate(t, mc.BC(), 0xffff)
	assertFlags(t, mc, "szapc")
	step(t, mc) // DCX SP
	test.Equate(t, mc.SP, 0xffff)
	assertFlags(t, mc, "szapc")
}

func TestDADOnlyCarry(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SetHL(0x8000)
	mc.SetBC(0x8000)

	// DAD B - 0x8000 + 0x8000 overflows bit 15
	mem.putInstructions(0x0000, 0x09)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0000)
	assertFlags(t, mc, "szapC")

	// DAD D - no overflow, carry cleared, nothing else touched
	mc.SetDE(0x0001)
	mem.putInstructions(0x0001, 0x19)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0001)
	assertFlags(t, mc, "szapc")

	// DAD H doubles HL
	mem.putInstructions(0x0002, 0x29)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0002)
}

func TestDAA(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// the canonical example from the 8080 programming manual
	mc.A = 0x9b
	mem.putInstructions(0x0000, 0x27)
	step(t, mc)
	test.Equate(t, mc.A, 0x01)
	assertFlags(t, mc, "szApC")

	// BCD addition: 19 + 28 = 47
	mc.Status.Reset()
	mc.A = 0x19
	mc.B = 0x28
	mem.putInstructions(0x0001, 0x80, 0x27)
	step(t, mc)
	test.Equate(t, mc.A, 0x41)
	step(t, mc)
	test.Equate(t, mc.A, 0x47)
	test.Equate(t, mc.Status.Carry, false)
}

func TestLogical(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// ANI clears carry; aux carry takes bit 3 of the OR of the operands
	mc.Status.Carry = true
	mc.A = 0xf0
	mem.putInstructions(0x0000, 0xe6, 0x0f)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "sZAPc")

	// ORI clears both carry flags
	mc.Status.Carry = true
	mc.Status.AuxCarry = true
	mem.putInstructions(0x0002, 0xf6, 0x81)
	step(t, mc)
	test.Equate(t, mc.A, 0x81)
	assertFlags(t, mc, "SzaPc")

	// XRA A is the idiomatic clear
	mem.putInstructions(0x0004, 0xaf)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "sZaPc")

	// CMA has no effect on flags
	mem.putInstructions(0x0005, 0x2f)
	step(t, mc)
	test.Equate(t, mc.A, 0xff)
	assertFlags(t, mc, "sZaPc")
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// CPI: flags of a subtraction, A untouched
	mc.A = 0x40
	mem.putInstructions(0x0000, 0xfe, 0x41, 0xfe, 0x40, 0xfe, 0x3f)
	step(t, mc)
	test.Equate(t, mc.A, 0x40)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, false)
	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Zero, true)
	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Zero, false)

	// CMP B is the same operation from a register
	mc.B = 0x41
	mem.putInstructions(0x0006, 0xb8)
	step(t, mc)
	test.Equate(t, mc.A, 0x40)
	test.Equate(t, mc.Status.Carry, true)
}

func TestRotates(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// RLC
	mc.A = 0x80
	mem.putInstructions(0x0000, 0x07)
	step(t, mc)
	test.Equate(t, mc.A, 0x01)
	test.Equate(t, mc.Status.Carry, true)

	// RRC
	mc.A = 0x01
	mem.putInstructions(0x0001, 0x0f)
	step(t, mc)
	test.Equate(t, mc.A, 0x80)
	test.Equate(t, mc.Status.Carry, true)

	// RAL rotates through carry: carry was set so bit 0 becomes one
	mc.A = 0x00
	mem.putInstructions(0x0002, 0x17)
	step(t, mc)
	test.Equate(t, mc.A, 0x01)
	test.Equate(t, mc.Status.Carry, false)

	// RAR symmetric
	mc.A = 0x01
	mc.Status.Carry = false
	mem.putInstructions(0x0003, 0x1f)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	test.Equate(t, mc.Status.Carry, true)
}

func TestRLCRRCRoundTrip(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// for every accumulator value, RLC then RRC restores A. both rotates
	// shift out the same bit - bit 7 of the original value - so carry is
	// consistent across the pair
	mem.putInstructions(0x0000, 0x07, 0x0f)
	for v := 0; v < 256; v++ {
		mc.PC = 0x0000
		mc.A = uint8(v)
		mc.Status.Carry = false
		step(t, mc)
		test.Equate(t, mc.Status.Carry, v&0x80 == 0x80)
		step(t, mc)
		test.Equate(t, mc.A, uint8(v))
		test.Equate(t, mc.Status.Carry, v&0x80 == 0x80)
	}
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mc.SetBC(0x1234)
	mc.SetDE(0x5678)

	// PUSH B; POP D - the pair comes back exactly
	mem.putInstructions(0x0000, 0xc5, 0xd1)
	step(t, mc)
	test.Equate(t, mc.SP, 0x23fe)
	mem.assert(t, 0x23ff, 0x12)
	mem.assert(t, 0x23fe, 0x34)
	step(t, mc)
	test.Equate(t, mc.SP, 0x2400)
	test.Equate(t, mc.DE(), 0x1234)

	// XTHL swaps HL with the top of stack
	mc.SetHL(0xbeef)
	mem.putInstructions(0x0002, 0xc5, 0xe3)
	step(t, mc) // PUSH B
	step(t, mc) // XTHL
	test.Equate(t, mc.HL(), 0x1234)
	mem.assert(t, 0x23fe, 0xef)
	mem.assert(t, 0x23ff, 0xbe)

	// SPHL
	mem.putInstructions(0x0004, 0xf9)
	step(t, mc)
	test.Equate(t, mc.SP, 0x1234)
}

func TestPushPopPSW(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mc.A = 0xa5
	mc.Status.Sign = true
	mc.Status.Zero = false
	mc.Status.AuxCarry = true
	mc.Status.Parity = false
	mc.Status.Carry = true

	// PUSH PSW writes the packed flag byte: S and AC and C plus the
	// always-set bit 1
	mem.putInstructions(0x0000, 0xf5)
	step(t, mc)
	mem.assert(t, 0x23ff, 0xa5)
	mem.assert(t, 0x23fe, 0x93)

	// mangle everything then POP PSW restores A and all five flags
	mc.A = 0x00
	mc.Status.Reset()
	mem.putInstructions(0x0001, 0xf1)
	step(t, mc)
	test.Equate(t, mc.A, 0xa5)
	assertFlags(t, mc, "SzApC")

	// bits 5 and 3 of the popped byte are ignored
	mc.SP = 0x2400
	mem.Write(0x23fe, 0xff)
	mem.Write(0x23ff, 0x00)
	mc.SP = 0x23fe
	mem.putInstructions(0x0002, 0xf1)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	assertFlags(t, mc, "SZAPC")
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// JMP
	mem.putInstructions(0x0000, 0xc3, 0x00, 0x10)
	step(t, mc)
	test.Equate(t, mc.PC, 0x1000)

	// PCHL
	mc.SetHL(0x2000)
	mem.putInstructions(0x1000, 0xe9)
	step(t, mc)
	test.Equate(t, mc.PC, 0x2000)

	// JNZ not taken falls through to the next instruction
	mc.Status.Zero = true
	mem.putInstructions(0x2000, 0xc2, 0x00, 0x30)
	step(t, mc)
	test.Equate(t, mc.PC, 0x2003)
}

func TestCallAndReturn(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400

	// CALL pushes the address of the next instruction
	mem.putInstructions(0x0000, 0xcd, 0x00, 0x10)
	step(t, mc)
	test.Equate(t, mc.PC, 0x1000)
	test.Equate(t, mc.SP, 0x23fe)
	mem.assert(t, 0x23fe, 0x03)
	mem.assert(t, 0x23ff, 0x00)

	// RET comes back
	mem.putInstructions(0x1000, 0xc9)
	step(t, mc)
	test.Equate(t, mc.PC, 0x0003)
	test.Equate(t, mc.SP, 0x2400)

	// RST 2 vectors through 0x0010
	mem.putInstructions(0x0003, 0xd7)
	step(t, mc)
	test.Equate(t, mc.PC, 0x0010)
	mem.assert(t, 0x23fe, 0x04)
}

func TestConditionalCycleCounts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// representative opcodes from each conditional family, with the flag
	// that controls them
	conditions := []struct {
		name   string
		opcode uint8
		flag   *bool
		taken  bool // value of flag for the branch to be taken
		ncyc   int
		tcyc   int
	}{
		{"JNZ", 0xc2, &mc.Status.Zero, false, 10, 10},
		{"JZ", 0xca, &mc.Status.Zero, true, 10, 10},
		{"JNC", 0xd2, &mc.Status.Carry, false, 10, 10},
		{"JC", 0xda, &mc.Status.Carry, true, 10, 10},
		{"JPO", 0xe2, &mc.Status.Parity, false, 10, 10},
		{"JPE", 0xea, &mc.Status.Parity, true, 10, 10},
		{"JP", 0xf2, &mc.Status.Sign, false, 10, 10},
		{"JM", 0xfa, &mc.Status.Sign, true, 10, 10},
		{"CNZ", 0xc4, &mc.Status.Zero, false, 11, 17},
		{"CZ", 0xcc, &mc.Status.Zero, true, 11, 17},
		{"CNC", 0xd4, &mc.Status.Carry, false, 11, 17},
		{"CC", 0xdc, &mc.Status.Carry, true, 11, 17},
		{"CPO", 0xe4, &mc.Status.Parity, false, 11, 17},
		{"CPE", 0xec, &mc.Status.Parity, true, 11, 17},
		{"CP", 0xf4, &mc.Status.Sign, false, 11, 17},
		{"CM", 0xfc, &mc.Status.Sign, true, 11, 17},
		{"RNZ", 0xc0, &mc.Status.Zero, false, 5, 11},
		{"RZ", 0xc8, &mc.Status.Zero, true, 5, 11},
		{"RNC", 0xd0, &mc.Status.Carry, false, 5, 11},
		{"RC", 0xd8, &mc.Status.Carry, true, 5, 11},
		{"RPO", 0xe0, &mc.Status.Parity, false, 5, 11},
		{"RPE", 0xe8, &mc.Status.Parity, true, 5, 11},
		{"RP", 0xf0, &mc.Status.Sign, false, 5, 11},
		{"RM", 0xf8, &mc.Status.Sign, true, 5, 11},
	}

	for _, c := range conditions {
		// not taken
		mem.Clear()
		mc.Reset()
		mc.SP = 0x2400
		mem.putInstructions(0x0100, c.opcode, 0x00, 0x10)
		mc.PC = 0x0100
		*c.flag = !c.taken
		if cyc := step(t, mc); cyc != c.ncyc {
			t.Errorf("%s not taken: %d cycles (wanted %d)", c.name, cyc, c.ncyc)
		}

		// taken
		mc.PC = 0x0100
		*c.flag = c.taken
		if cyc := step(t, mc); cyc != c.tcyc {
			t.Errorf("%s taken: %d cycles (wanted %d)", c.name, cyc, c.tcyc)
		}
	}
}

func TestPCAdvance(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// a non-branching instruction advances PC by its byte count
	for _, c := range []struct {
		opcode uint8
		bytes  uint16
	}{
		{0x00, 1}, // NOP
		{0x3e, 2}, // MVI A
		{0x01, 3}, // LXI B
		{0x32, 3}, // STA
		{0xdb, 2}, // IN
	} {
		mem.Clear()
		mc.Reset()
		mem.putInstructions(0x0100, c.opcode, 0x00, 0x20)
		mc.PC = 0x0100
		step(t, mc)
		test.Equate(t, mc.PC, 0x0100+c.bytes)
	}
}

func TestUndocumentedAliases(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	// 0x08 is a NOP
	mem.putInstructions(0x0000, 0x08)
	test.Equate(t, step(t, mc), 4)
	test.Equate(t, mc.PC, 0x0001)

	// 0xcb is a JMP
	mem.putInstructions(0x0001, 0xcb, 0x00, 0x10)
	step(t, mc)
	test.Equate(t, mc.PC, 0x1000)

	// 0xdd is a CALL, 0xd9 is a RET
	mc.SP = 0x2400
	mem.putInstructions(0x1000, 0xdd, 0x00, 0x20)
	mem.putInstructions(0x2000, 0xd9)
	step(t, mc)
	test.Equate(t, mc.PC, 0x2000)
	step(t, mc)
	test.Equate(t, mc.PC, 0x1003)
}

func TestInOut(t *testing.T) {
	mem := newMockMem()
	io := newMockIO()
	mc := cpu.NewCPU(mem, io)

	io.in[3] = 0xe9

	// OUT 4; IN 3
	mc.A = 0xab
	mem.putInstructions(0x0000, 0xd3, 0x04, 0xdb, 0x03)
	step(t, mc)
	test.Equate(t, io.out[4][0], 0xab)
	step(t, mc)
	test.Equate(t, mc.A, 0xe9)
}

func TestInterruptAcknowledge(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mc.InterruptsEnabled = true
	mem.putInstructions(0x0100, 0x00, 0x00)
	mc.PC = 0x0100

	mc.RaiseInterrupt(1)
	test.Equate(t, mc.HasPendingInterrupt(), true)

	// acknowledgment costs 11 cycles, pushes PC, clears IE, vectors to 0x08
	cyc := step(t, mc)
	test.Equate(t, cyc, 11)
	test.Equate(t, mc.PC, 0x0008)
	test.Equate(t, mc.InterruptsEnabled, false)
	test.Equate(t, mc.HasPendingInterrupt(), false)
	mem.assert(t, 0x23fe, 0x00)
	mem.assert(t, 0x23ff, 0x01)
	test.Equate(t, mc.LastResult.Interrupt, true)
}

func TestInterruptHeldWhileDisabled(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mem.putInstructions(0x0000, 0x00, 0x00, 0xfb, 0x00, 0x00)

	// interrupt raised with IE false is held, not dropped
	mc.RaiseInterrupt(2)
	step(t, mc) // NOP
	test.Equate(t, mc.PC, 0x0001)
	test.Equate(t, mc.HasPendingInterrupt(), true)
	step(t, mc) // NOP
	step(t, mc) // EI
	step(t, mc) // NOP (the EI delay instruction)

	// now it fires
	mc.SP = 0x2400
	step(t, mc)
	test.Equate(t, mc.PC, 0x0010)
}

func TestInterruptOverwrite(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mc.InterruptsEnabled = true

	// a second interrupt raised before the first is serviced wins
	mc.RaiseInterrupt(1)
	mc.RaiseInterrupt(2)
	step(t, mc)
	test.Equate(t, mc.PC, 0x0010)
}

func TestEIDelay(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mem.putInstructions(0x0000, 0xfb, 0x00, 0x00)

	// interrupt already pending when EI executes. it must not fire until
	// the instruction after EI has completed: at the third step, not the
	// second
	mc.RaiseInterrupt(1)
	step(t, mc) // EI
	test.Equate(t, mc.PC, 0x0001)
	step(t, mc) // NOP - still not interrupted
	test.Equate(t, mc.PC, 0x0002)
	step(t, mc) // interrupt fires here
	test.Equate(t, mc.PC, 0x0008)
}

func TestHalt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.SP = 0x2400
	mem.putInstructions(0x0000, 0x76)

	test.Equate(t, step(t, mc), 7)
	test.Equate(t, mc.Halted, true)

	// a halted CPU marks time without advancing PC
	test.Equate(t, step(t, mc), 4)
	test.Equate(t, step(t, mc), 4)
	test.Equate(t, mc.PC, 0x0001)

	// an interrupt wakes it
	mc.InterruptsEnabled = true
	mc.RaiseInterrupt(1)
	step(t, mc)
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.PC, 0x0008)
}

func TestSnapshot(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, newMockIO())

	mc.A = 0x42
	mc.PC = 0x1234

	snap := mc.Snapshot()
	mc.A = 0x00
	mc.PC = 0x0000

	test.Equate(t, snap.A, 0x42)
	test.Equate(t, snap.PC, 0x1234)
}
