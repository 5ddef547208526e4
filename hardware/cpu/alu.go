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

// The ALU helpers centralise all flag arithmetic. Every 8-bit operation
// funnels through one of these so the opcode arms in Step() stay short.

// parity returns true if the value has an even number of set bits.
func parity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&0x01 == 0x00
}

// setSZP updates the sign, zero and parity flags from an 8-bit result.
func (mc *CPU) setSZP(v uint8) {
	mc.Status.Sign = v&0x80 == 0x80
	mc.Status.Zero = v == 0x00
	mc.Status.Parity = parity(v)
}

// add performs A := A + v (+1 if withCarry and the carry flag is set),
// updating all five flags.
func (mc *CPU) add(v uint8, withCarry bool) {
	c := uint16(0)
	if withCarry && mc.Status.Carry {
		c = 1
	}

	r := uint16(mc.A) + uint16(v) + c
	mc.Status.Carry = r > 0xff
	mc.Status.AuxCarry = (mc.A&0x0f)+(v&0x0f)+uint8(c) > 0x0f
	mc.A = uint8(r)
	mc.setSZP(mc.A)
}

// sub performs A := A - v (-1 if withBorrow and the carry flag is set),
// updating all five flags. The carry flag acts as a borrow.
func (mc *CPU) sub(v uint8, withBorrow bool) {
	mc.A = mc.subValue(mc.A, v, withBorrow)
}

// compare sets the flags as sub would but discards the result.
func (mc *CPU) compare(v uint8) {
	mc.subValue(mc.A, v, false)
}

// subValue is the subtraction behind sub and compare.
func (mc *CPU) subValue(a uint8, v uint8, withBorrow bool) uint8 {
	b := uint16(0)
	if withBorrow && mc.Status.Carry {
		b = 1
	}

	r := uint16(a) - uint16(v) - b
	mc.Status.Carry = r > 0xff
	mc.Status.AuxCarry = a&0x0f < (v&0x0f)+uint8(b)
	mc.setSZP(uint8(r))

	return uint8(r)
}

// and performs A := A & v. Carry is cleared. Aux carry takes on bit 3 of the
// OR of the operands - a quirk documented in the 8080/8085 assembly manual.
func (mc *CPU) and(v uint8) {
	mc.Status.AuxCarry = (mc.A|v)&0x08 == 0x08
	mc.A &= v
	mc.Status.Carry = false
	mc.setSZP(mc.A)
}

// or performs A := A | v. Carry and aux carry are cleared.
func (mc *CPU) or(v uint8) {
	mc.A |= v
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.setSZP(mc.A)
}

// xor performs A := A ^ v. Carry and aux carry are cleared.
func (mc *CPU) xor(v uint8) {
	mc.A ^= v
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.setSZP(mc.A)
}

// inr increments a value by one. Updates every flag except carry.
func (mc *CPU) inr(v uint8) uint8 {
	r := v + 1
	mc.Status.AuxCarry = v&0x0f == 0x0f
	mc.setSZP(r)
	return r
}

// dcr decrements a value by one. Updates every flag except carry.
func (mc *CPU) dcr(v uint8) uint8 {
	r := v - 1
	mc.Status.AuxCarry = v&0x0f == 0x00
	mc.setSZP(r)
	return r
}

// dad performs HL := HL + v. The only flag affected is carry, which takes
// the carry out of bit 15.
func (mc *CPU) dad(v uint16) {
	r := uint32(mc.HL()) + uint32(v)
	mc.Status.Carry = r > 0xffff
	mc.SetHL(uint16(r))
}

// daa adjusts the accumulator after a binary addition of BCD operands. The
// low nibble is corrected first, then the high nibble; the carry flag is
// only ever set by the adjustment, never cleared.
func (mc *CPU) daa() {
	if mc.A&0x0f > 0x09 || mc.Status.AuxCarry {
		mc.Status.AuxCarry = mc.A&0x0f+0x06 > 0x0f
		mc.A += 0x06
	} else {
		mc.Status.AuxCarry = false
	}

	if mc.A&0xf0 > 0x90 || mc.Status.Carry {
		if uint16(mc.A)+0x60 > 0xff {
			mc.Status.Carry = true
		}
		mc.A += 0x60
	}

	mc.setSZP(mc.A)
}

// rlc rotates the accumulator left by one. Carry takes the old bit 7, which
// also wraps into bit 0.
func (mc *CPU) rlc() {
	mc.Status.Carry = mc.A&0x80 == 0x80
	mc.A = mc.A<<1 | mc.A>>7
}

// rrc rotates the accumulator right by one. Carry takes the old bit 0, which
// also wraps into bit 7.
func (mc *CPU) rrc() {
	mc.Status.Carry = mc.A&0x01 == 0x01
	mc.A = mc.A>>1 | mc.A<<7
}

// ral rotates the accumulator left through the carry flag.
func (mc *CPU) ral() {
	c := uint8(0)
	if mc.Status.Carry {
		c = 1
	}
	mc.Status.Carry = mc.A&0x80 == 0x80
	mc.A = mc.A<<1 | c
}

// rar rotates the accumulator right through the carry flag.
func (mc *CPU) rar() {
	c := uint8(0)
	if mc.Status.Carry {
		c = 0x80
	}
	mc.Status.Carry = mc.A&0x01 == 0x01
	mc.A = mc.A>>1 | c
}
