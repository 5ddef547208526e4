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

package instructions_test

import (
	"testing"

	"github.com/mustafasegf/intel-8080-emu/hardware/cpu/instructions"
	"github.com/mustafasegf/intel-8080-emu/test"
)

func TestTableIsTotal(t *testing.T) {
	defs := instructions.GetDefinitions()

	for i, d := range defs {
		if d.Mnemonic == "" {
			t.Fatalf("opcode %#02x has no definition", i)
		}
		test.Equate(t, int(d.OpCode), i)

		if d.Bytes < 1 || d.Bytes > 3 {
			t.Errorf("opcode %#02x has impossible byte count %d", i, d.Bytes)
		}

		// every cycle count in the documented table
		switch d.Cycles {
		case 4, 5, 7, 10, 11, 13, 16, 17, 18:
		default:
			t.Errorf("opcode %#02x has undocumented cycle count %d", i, d.Cycles)
		}
	}
}

func TestConditionals(t *testing.T) {
	defs := instructions.GetDefinitions()

	// conditional calls and returns carry two cycle counts, six apart;
	// conditional jumps carry one
	for i, d := range defs {
		op := uint8(i)
		switch {
		case op&0xc7 == 0xc0: // Rcc
			test.Equate(t, d.Cycles, 5)
			test.Equate(t, d.CyclesBranched, 11)
			test.Equate(t, d.IsConditional(), true)
		case op&0xc7 == 0xc4: // Ccc
			test.Equate(t, d.Cycles, 11)
			test.Equate(t, d.CyclesBranched, 17)
			test.Equate(t, d.IsConditional(), true)
		case op&0xc7 == 0xc2: // Jcc
			test.Equate(t, d.Cycles, 10)
			test.Equate(t, d.IsConditional(), false)
		default:
			test.Equate(t, d.IsConditional(), false)
		}
	}
}

func TestByteLengths(t *testing.T) {
	defs := instructions.GetDefinitions()

	// the three-byte instructions are exactly the d16/a16 operations
	for i, d := range defs {
		op := uint8(i)
		want := 1
		switch {
		case op&0xcf == 0x01: // LXI
			want = 3
		case op == 0x22, op == 0x2a, op == 0x32, op == 0x3a: // SHLD LHLD STA LDA
			want = 3
		case op&0xc7 == 0xc2, op&0xc7 == 0xc4: // Jcc, Ccc
			want = 3
		case op == 0xc3, op == 0xcb: // JMP
			want = 3
		case op == 0xcd, op == 0xdd, op == 0xed, op == 0xfd: // CALL
			want = 3
		case op&0xc7 == 0x06: // MVI
			want = 2
		case op&0xc7 == 0xc6: // immediate ALU
			want = 2
		case op == 0xd3, op == 0xdb: // OUT, IN
			want = 2
		}
		if d.Bytes != want {
			t.Errorf("opcode %#02x (%s): %d bytes (wanted %d)", i, d.Mnemonic, d.Bytes, want)
		}
	}
}
