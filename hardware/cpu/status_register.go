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

import "fmt"

// StatusRegister is the condition flags of the 8080. The flags are
// represented by bool fields; the packed byte form required by PUSH PSW and
// POP PSW is produced on demand by Value() and FromValue().
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// Value returns the flags packed into the byte layout pushed by PUSH PSW:
// bit 7 sign, bit 6 zero, bit 4 aux carry, bit 2 parity, bit 0 carry. Bit 1
// is always set; bits 5 and 3 are always clear.
func (sr StatusRegister) Value() uint8 {
	v := uint8(0x02)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue unpacks the flags from the PUSH PSW byte layout. Bits 5, 3 and 1
// are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.Sign = false
	sr.Zero = false
	sr.AuxCarry = false
	sr.Parity = false
	sr.Carry = false
}

// String returns the flags as a labelled bit pattern. An upper-case letter
// means the flag is set, lower-case means it is clear.
func (sr StatusRegister) String() string {
	v := ""

	if sr.Sign {
		v += "S"
	} else {
		v += "s"
	}
	if sr.Zero {
		v += "Z"
	} else {
		v += "z"
	}
	if sr.AuxCarry {
		v += "A"
	} else {
		v += "a"
	}
	if sr.Parity {
		v += "P"
	} else {
		v += "p"
	}
	if sr.Carry {
		v += "C"
	} else {
		v += "c"
	}

	return fmt.Sprintf("SR=%s", v)
}
