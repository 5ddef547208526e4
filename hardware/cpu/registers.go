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

// The 8080 addresses its six general purpose registers as three 16-bit pairs
// for a handful of instructions (LXI, INX, DCX, DAD, PUSH, POP, XCHG). The
// pair accessors below keep the opcode arms short.

// BC returns the B and C registers as a 16-bit pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

// DE returns the D and E registers as a 16-bit pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

// HL returns the H and L registers as a 16-bit pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

// SetBC loads the B and C registers from a 16-bit value.
func (mc *CPU) SetBC(v uint16) {
	mc.B = uint8(v >> 8)
	mc.C = uint8(v)
}

// SetDE loads the D and E registers from a 16-bit value.
func (mc *CPU) SetDE(v uint16) {
	mc.D = uint8(v >> 8)
	mc.E = uint8(v)
}

// SetHL loads the H and L registers from a 16-bit value.
func (mc *CPU) SetHL(v uint16) {
	mc.H = uint8(v >> 8)
	mc.L = uint8(v)
}

// PSW returns the A register and the packed status register as a 16-bit
// pair. This is the value pushed by PUSH PSW.
func (mc *CPU) PSW() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.Status.Value())
}

// SetPSW loads the A register and the status register from a 16-bit value,
// as popped by POP PSW.
func (mc *CPU) SetPSW(v uint16) {
	mc.A = uint8(v >> 8)
	mc.Status.FromValue(uint8(v))
}

// register source/destination codes as used by the MOV, MVI, INR, DCR and
// arithmetic/logical register groups. code 6 refers to the memory location
// addressed by HL.
const regCodeMem = 6

// regRead returns the value of the register (or memory location) selected by
// a three bit register code.
func (mc *CPU) regRead(code uint8) uint8 {
	switch code & 0x07 {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case regCodeMem:
		return mc.mem.Read(mc.HL())
	}
	return mc.A
}

// regWrite sets the value of the register (or memory location) selected by a
// three bit register code.
func (mc *CPU) regWrite(code uint8, v uint8) {
	switch code & 0x07 {
	case 0:
		mc.B = v
	case 1:
		mc.C = v
	case 2:
		mc.D = v
	case 3:
		mc.E = v
	case 4:
		mc.H = v
	case 5:
		mc.L = v
	case regCodeMem:
		mc.mem.Write(mc.HL(), v)
	default:
		mc.A = v
	}
}
