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

// Package instructions defines every opcode in the Intel 8080 instruction
// set: mnemonic, byte length, cycle count and effect category. The table is
// total - all 256 opcode slots are defined, with the undocumented aliases
// (the 0x08-style NOPs, the extra JMP/CALL/RET encodings) marked as such.
//
// Mnemonics follow the Intel convention. Operand placeholders are written
// d8 (immediate byte), d16 (immediate word) and a16 (absolute address); the
// disassembly package substitutes the real operand value.
package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Data EffectCategory = iota
	Arithmetic
	Logical
	Flow
	Subroutine
	Stack
	IO
	Control
)

// Definition defines each instruction in the instruction set; one per opcode
// slot.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Bytes    int

	// Cycles is the number of machine cycles consumed by the instruction. For
	// conditional calls and returns it is the not-taken count; CyclesBranched
	// is the taken count. Conditional jumps consume the same count either
	// way, so CyclesBranched is zero for those (as it is for everything
	// else).
	Cycles         int
	CyclesBranched int

	Effect EffectCategory

	// Undocumented opcodes behave as their documented equivalents but do not
	// appear in the Intel programming manual.
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	s := fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
	if defn.CyclesBranched > 0 {
		s = fmt.Sprintf("%s (%d branched)", s, defn.CyclesBranched)
	}
	if defn.Undocumented {
		s = fmt.Sprintf("%s [undocumented]", s)
	}
	return s
}

// IsConditional returns true if the cycle count of the instruction depends on
// whether the condition held.
func (defn Definition) IsConditional() bool {
	return defn.CyclesBranched > 0
}

// GetDefinitions returns the table of all 256 instruction definitions,
// indexed by opcode.
func GetDefinitions() *[256]Definition {
	return &definitions
}

var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control},
	{OpCode: 0x01, Mnemonic: "LXI B,d16", Bytes: 3, Cycles: 10, Effect: Data},
	{OpCode: 0x02, Mnemonic: "STAX B", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x03, Mnemonic: "INX B", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x04, Mnemonic: "INR B", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x05, Mnemonic: "DCR B", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x06, Mnemonic: "MVI B,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x07, Mnemonic: "RLC", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x08, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x09, Mnemonic: "DAD B", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x0a, Mnemonic: "LDAX B", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x0b, Mnemonic: "DCX B", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x0c, Mnemonic: "INR C", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x0d, Mnemonic: "DCR C", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x0e, Mnemonic: "MVI C,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x0f, Mnemonic: "RRC", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x10, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x11, Mnemonic: "LXI D,d16", Bytes: 3, Cycles: 10, Effect: Data},
	{OpCode: 0x12, Mnemonic: "STAX D", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x13, Mnemonic: "INX D", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x14, Mnemonic: "INR D", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x15, Mnemonic: "DCR D", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x16, Mnemonic: "MVI D,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x17, Mnemonic: "RAL", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x18, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x19, Mnemonic: "DAD D", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x1a, Mnemonic: "LDAX D", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x1b, Mnemonic: "DCX D", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x1c, Mnemonic: "INR E", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x1d, Mnemonic: "DCR E", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x1e, Mnemonic: "MVI E,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x1f, Mnemonic: "RAR", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x20, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x21, Mnemonic: "LXI H,d16", Bytes: 3, Cycles: 10, Effect: Data},
	{OpCode: 0x22, Mnemonic: "SHLD a16", Bytes: 3, Cycles: 16, Effect: Data},
	{OpCode: 0x23, Mnemonic: "INX H", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x24, Mnemonic: "INR H", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x25, Mnemonic: "DCR H", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x26, Mnemonic: "MVI H,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x28, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x29, Mnemonic: "DAD H", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x2a, Mnemonic: "LHLD a16", Bytes: 3, Cycles: 16, Effect: Data},
	{OpCode: 0x2b, Mnemonic: "DCX H", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x2c, Mnemonic: "INR L", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x2d, Mnemonic: "DCR L", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x2e, Mnemonic: "MVI L,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x2f, Mnemonic: "CMA", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x30, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x31, Mnemonic: "LXI SP,d16", Bytes: 3, Cycles: 10, Effect: Data},
	{OpCode: 0x32, Mnemonic: "STA a16", Bytes: 3, Cycles: 13, Effect: Data},
	{OpCode: 0x33, Mnemonic: "INX SP", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x34, Mnemonic: "INR M", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x35, Mnemonic: "DCR M", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x36, Mnemonic: "MVI M,d8", Bytes: 2, Cycles: 10, Effect: Data},
	{OpCode: 0x37, Mnemonic: "STC", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x38, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control, Undocumented: true},
	{OpCode: 0x39, Mnemonic: "DAD SP", Bytes: 1, Cycles: 10, Effect: Arithmetic},
	{OpCode: 0x3a, Mnemonic: "LDA a16", Bytes: 3, Cycles: 13, Effect: Data},
	{OpCode: 0x3b, Mnemonic: "DCX SP", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x3c, Mnemonic: "INR A", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x3d, Mnemonic: "DCR A", Bytes: 1, Cycles: 5, Effect: Arithmetic},
	{OpCode: 0x3e, Mnemonic: "MVI A,d8", Bytes: 2, Cycles: 7, Effect: Data},
	{OpCode: 0x3f, Mnemonic: "CMC", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0x40, Mnemonic: "MOV B,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x41, Mnemonic: "MOV B,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x42, Mnemonic: "MOV B,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x43, Mnemonic: "MOV B,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x44, Mnemonic: "MOV B,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x45, Mnemonic: "MOV B,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x46, Mnemonic: "MOV B,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x47, Mnemonic: "MOV B,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x48, Mnemonic: "MOV C,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x49, Mnemonic: "MOV C,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x4a, Mnemonic: "MOV C,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x4b, Mnemonic: "MOV C,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x4c, Mnemonic: "MOV C,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x4d, Mnemonic: "MOV C,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x4e, Mnemonic: "MOV C,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x4f, Mnemonic: "MOV C,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x50, Mnemonic: "MOV D,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x51, Mnemonic: "MOV D,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x52, Mnemonic: "MOV D,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x53, Mnemonic: "MOV D,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x54, Mnemonic: "MOV D,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x55, Mnemonic: "MOV D,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x56, Mnemonic: "MOV D,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x57, Mnemonic: "MOV D,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x58, Mnemonic: "MOV E,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x59, Mnemonic: "MOV E,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x5a, Mnemonic: "MOV E,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x5b, Mnemonic: "MOV E,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x5c, Mnemonic: "MOV E,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x5d, Mnemonic: "MOV E,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x5e, Mnemonic: "MOV E,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x5f, Mnemonic: "MOV E,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x60, Mnemonic: "MOV H,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x61, Mnemonic: "MOV H,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x62, Mnemonic: "MOV H,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x63, Mnemonic: "MOV H,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x64, Mnemonic: "MOV H,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x65, Mnemonic: "MOV H,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x66, Mnemonic: "MOV H,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x67, Mnemonic: "MOV H,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x68, Mnemonic: "MOV L,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x69, Mnemonic: "MOV L,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x6a, Mnemonic: "MOV L,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x6b, Mnemonic: "MOV L,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x6c, Mnemonic: "MOV L,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x6d, Mnemonic: "MOV L,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x6e, Mnemonic: "MOV L,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x6f, Mnemonic: "MOV L,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x70, Mnemonic: "MOV M,B", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x71, Mnemonic: "MOV M,C", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x72, Mnemonic: "MOV M,D", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x73, Mnemonic: "MOV M,E", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x74, Mnemonic: "MOV M,H", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x75, Mnemonic: "MOV M,L", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x76, Mnemonic: "HLT", Bytes: 1, Cycles: 7, Effect: Control},
	{OpCode: 0x77, Mnemonic: "MOV M,A", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x78, Mnemonic: "MOV A,B", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x79, Mnemonic: "MOV A,C", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x7a, Mnemonic: "MOV A,D", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x7b, Mnemonic: "MOV A,E", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x7c, Mnemonic: "MOV A,H", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x7d, Mnemonic: "MOV A,L", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x7e, Mnemonic: "MOV A,M", Bytes: 1, Cycles: 7, Effect: Data},
	{OpCode: 0x7f, Mnemonic: "MOV A,A", Bytes: 1, Cycles: 5, Effect: Data},
	{OpCode: 0x80, Mnemonic: "ADD B", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x81, Mnemonic: "ADD C", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x82, Mnemonic: "ADD D", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x83, Mnemonic: "ADD E", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x84, Mnemonic: "ADD H", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x85, Mnemonic: "ADD L", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x86, Mnemonic: "ADD M", Bytes: 1, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0x87, Mnemonic: "ADD A", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x88, Mnemonic: "ADC B", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x89, Mnemonic: "ADC C", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x8a, Mnemonic: "ADC D", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x8b, Mnemonic: "ADC E", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x8c, Mnemonic: "ADC H", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x8d, Mnemonic: "ADC L", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x8e, Mnemonic: "ADC M", Bytes: 1, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0x8f, Mnemonic: "ADC A", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x90, Mnemonic: "SUB B", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x91, Mnemonic: "SUB C", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x92, Mnemonic: "SUB D", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x93, Mnemonic: "SUB E", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x94, Mnemonic: "SUB H", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x95, Mnemonic: "SUB L", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x96, Mnemonic: "SUB M", Bytes: 1, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0x97, Mnemonic: "SUB A", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x98, Mnemonic: "SBB B", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x99, Mnemonic: "SBB C", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x9a, Mnemonic: "SBB D", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x9b, Mnemonic: "SBB E", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x9c, Mnemonic: "SBB H", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x9d, Mnemonic: "SBB L", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0x9e, Mnemonic: "SBB M", Bytes: 1, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0x9f, Mnemonic: "SBB A", Bytes: 1, Cycles: 4, Effect: Arithmetic},
	{OpCode: 0xa0, Mnemonic: "ANA B", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa1, Mnemonic: "ANA C", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa2, Mnemonic: "ANA D", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa3, Mnemonic: "ANA E", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa4, Mnemonic: "ANA H", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa5, Mnemonic: "ANA L", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa6, Mnemonic: "ANA M", Bytes: 1, Cycles: 7, Effect: Logical},
	{OpCode: 0xa7, Mnemonic: "ANA A", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa8, Mnemonic: "XRA B", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xa9, Mnemonic: "XRA C", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xaa, Mnemonic: "XRA D", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xab, Mnemonic: "XRA E", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xac, Mnemonic: "XRA H", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xad, Mnemonic: "XRA L", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xae, Mnemonic: "XRA M", Bytes: 1, Cycles: 7, Effect: Logical},
	{OpCode: 0xaf, Mnemonic: "XRA A", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb0, Mnemonic: "ORA B", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb1, Mnemonic: "ORA C", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb2, Mnemonic: "ORA D", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb3, Mnemonic: "ORA E", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb4, Mnemonic: "ORA H", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb5, Mnemonic: "ORA L", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb6, Mnemonic: "ORA M", Bytes: 1, Cycles: 7, Effect: Logical},
	{OpCode: 0xb7, Mnemonic: "ORA A", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb8, Mnemonic: "CMP B", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xb9, Mnemonic: "CMP C", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xba, Mnemonic: "CMP D", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xbb, Mnemonic: "CMP E", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xbc, Mnemonic: "CMP H", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xbd, Mnemonic: "CMP L", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xbe, Mnemonic: "CMP M", Bytes: 1, Cycles: 7, Effect: Logical},
	{OpCode: 0xbf, Mnemonic: "CMP A", Bytes: 1, Cycles: 4, Effect: Logical},
	{OpCode: 0xc0, Mnemonic: "RNZ", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xc1, Mnemonic: "POP B", Bytes: 1, Cycles: 10, Effect: Stack},
	{OpCode: 0xc2, Mnemonic: "JNZ a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xc3, Mnemonic: "JMP a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xc4, Mnemonic: "CNZ a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xc5, Mnemonic: "PUSH B", Bytes: 1, Cycles: 11, Effect: Stack},
	{OpCode: 0xc6, Mnemonic: "ADI d8", Bytes: 2, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0xc7, Mnemonic: "RST 0", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xc8, Mnemonic: "RZ", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 10, Effect: Subroutine},
	{OpCode: 0xca, Mnemonic: "JZ a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xcb, Mnemonic: "JMP a16", Bytes: 3, Cycles: 10, Effect: Flow, Undocumented: true},
	{OpCode: 0xcc, Mnemonic: "CZ a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xcd, Mnemonic: "CALL a16", Bytes: 3, Cycles: 17, Effect: Subroutine},
	{OpCode: 0xce, Mnemonic: "ACI d8", Bytes: 2, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0xcf, Mnemonic: "RST 1", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xd0, Mnemonic: "RNC", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xd1, Mnemonic: "POP D", Bytes: 1, Cycles: 10, Effect: Stack},
	{OpCode: 0xd2, Mnemonic: "JNC a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xd3, Mnemonic: "OUT d8", Bytes: 2, Cycles: 10, Effect: IO},
	{OpCode: 0xd4, Mnemonic: "CNC a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xd5, Mnemonic: "PUSH D", Bytes: 1, Cycles: 11, Effect: Stack},
	{OpCode: 0xd6, Mnemonic: "SUI d8", Bytes: 2, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0xd7, Mnemonic: "RST 2", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xd8, Mnemonic: "RC", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xd9, Mnemonic: "RET", Bytes: 1, Cycles: 10, Effect: Subroutine, Undocumented: true},
	{OpCode: 0xda, Mnemonic: "JC a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xdb, Mnemonic: "IN d8", Bytes: 2, Cycles: 10, Effect: IO},
	{OpCode: 0xdc, Mnemonic: "CC a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xdd, Mnemonic: "CALL a16", Bytes: 3, Cycles: 17, Effect: Subroutine, Undocumented: true},
	{OpCode: 0xde, Mnemonic: "SBI d8", Bytes: 2, Cycles: 7, Effect: Arithmetic},
	{OpCode: 0xdf, Mnemonic: "RST 3", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xe0, Mnemonic: "RPO", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xe1, Mnemonic: "POP H", Bytes: 1, Cycles: 10, Effect: Stack},
	{OpCode: 0xe2, Mnemonic: "JPO a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xe3, Mnemonic: "XTHL", Bytes: 1, Cycles: 18, Effect: Stack},
	{OpCode: 0xe4, Mnemonic: "CPO a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xe5, Mnemonic: "PUSH H", Bytes: 1, Cycles: 11, Effect: Stack},
	{OpCode: 0xe6, Mnemonic: "ANI d8", Bytes: 2, Cycles: 7, Effect: Logical},
	{OpCode: 0xe7, Mnemonic: "RST 4", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xe8, Mnemonic: "RPE", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xe9, Mnemonic: "PCHL", Bytes: 1, Cycles: 5, Effect: Flow},
	{OpCode: 0xea, Mnemonic: "JPE a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xeb, Mnemonic: "XCHG", Bytes: 1, Cycles: 4, Effect: Data},
	{OpCode: 0xec, Mnemonic: "CPE a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xed, Mnemonic: "CALL a16", Bytes: 3, Cycles: 17, Effect: Subroutine, Undocumented: true},
	{OpCode: 0xee, Mnemonic: "XRI d8", Bytes: 2, Cycles: 7, Effect: Logical},
	{OpCode: 0xef, Mnemonic: "RST 5", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xf0, Mnemonic: "RP", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xf1, Mnemonic: "POP PSW", Bytes: 1, Cycles: 10, Effect: Stack},
	{OpCode: 0xf2, Mnemonic: "JP a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 4, Effect: Control},
	{OpCode: 0xf4, Mnemonic: "CP a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xf5, Mnemonic: "PUSH PSW", Bytes: 1, Cycles: 11, Effect: Stack},
	{OpCode: 0xf6, Mnemonic: "ORI d8", Bytes: 2, Cycles: 7, Effect: Logical},
	{OpCode: 0xf7, Mnemonic: "RST 6", Bytes: 1, Cycles: 11, Effect: Subroutine},
	{OpCode: 0xf8, Mnemonic: "RM", Bytes: 1, Cycles: 5, CyclesBranched: 11, Effect: Subroutine},
	{OpCode: 0xf9, Mnemonic: "SPHL", Bytes: 1, Cycles: 5, Effect: Stack},
	{OpCode: 0xfa, Mnemonic: "JM a16", Bytes: 3, Cycles: 10, Effect: Flow},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 4, Effect: Control},
	{OpCode: 0xfc, Mnemonic: "CM a16", Bytes: 3, Cycles: 11, CyclesBranched: 17, Effect: Subroutine},
	{OpCode: 0xfd, Mnemonic: "CALL a16", Bytes: 3, Cycles: 17, Effect: Subroutine, Undocumented: true},
	{OpCode: 0xfe, Mnemonic: "CPI d8", Bytes: 2, Cycles: 7, Effect: Logical},
	{OpCode: 0xff, Mnemonic: "RST 7", Bytes: 1, Cycles: 11, Effect: Subroutine},
}
