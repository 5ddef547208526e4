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

// Package disassembly turns 8080 machine code back into assembly language.
// It is a linear disassembler: decoding starts at the given address and
// follows the byte stream, without trying to separate code from data. Good
// enough for the debugger's listing window and for eyeballing the ROM.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/mustafasegf/intel-8080-emu/hardware/bus"
	"github.com/mustafasegf/intel-8080-emu/hardware/cpu/instructions"
	"github.com/mustafasegf/intel-8080-emu/romload"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the address the opcode was read from
	Address uint16

	// the raw bytes of the instruction, space separated
	Bytecode string

	// the mnemonic with the operand value substituted in
	Mnemonic string

	// the definition of the decoded opcode
	Defn instructions.Definition
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%04x  %-9s  %s", e.Address, e.Bytecode, e.Mnemonic)
}

// Disassemble decodes n instructions starting at the given address.
// Implements the debug panel's listing operation.
func Disassemble(mem bus.CPUBus, address uint16, n int) []Entry {
	entries := make([]Entry, 0, n)

	for i := 0; i < n; i++ {
		e := decodeEntry(mem, address)
		entries = append(entries, e)
		address += uint16(e.Defn.Bytes)
	}

	return entries
}

// Write dumps a linear disassembly of a ROM image to the io.Writer.
func Write(cartload romload.Loader, output io.Writer) error {
	mem := sliceBus(cartload.Data)

	var address uint16
	for int(address) < len(cartload.Data) {
		e := decodeEntry(mem, address)
		if _, err := io.WriteString(output, e.String()+"\n"); err != nil {
			return err
		}
		address += uint16(e.Defn.Bytes)
	}

	return nil
}

// sliceBus adapts a byte slice to the bus.CPUBus interface.
type sliceBus []uint8

func (s sliceBus) Read(address uint16) uint8 {
	if int(address) >= len(s) {
		return 0
	}
	return s[address]
}

func (s sliceBus) Write(address uint16, data uint8) {
}

func decodeEntry(mem bus.CPUBus, address uint16) Entry {
	opcode := mem.Read(address)
	defn := instructions.GetDefinitions()[opcode]

	e := Entry{
		Address: address,
		Defn:    defn,
	}

	switch defn.Bytes {
	case 1:
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		e.Mnemonic = defn.Mnemonic
	case 2:
		operand := mem.Read(address + 1)
		e.Bytecode = fmt.Sprintf("%02x %02x", opcode, operand)
		e.Mnemonic = strings.Replace(defn.Mnemonic, "d8", fmt.Sprintf("$%02x", operand), 1)
	case 3:
		lo := mem.Read(address + 1)
		hi := mem.Read(address + 2)
		operand := uint16(hi)<<8 | uint16(lo)
		e.Bytecode = fmt.Sprintf("%02x %02x %02x", opcode, lo, hi)
		m := strings.Replace(defn.Mnemonic, "d16", fmt.Sprintf("$%04x", operand), 1)
		m = strings.Replace(m, "a16", fmt.Sprintf("$%04x", operand), 1)
		e.Mnemonic = m
	}

	return e
}
