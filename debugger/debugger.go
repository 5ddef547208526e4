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

// Package debugger is a terminal debugger for the emulated machine. It
// drives exactly the same machine API as play mode: single instruction
// steps, whole frames, register and memory inspection, disassembly and
// breakpoints.
package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/debugger/terminal"
	"github.com/mustafasegf/intel-8080-emu/disassembly"
	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/romload"
)

// Debugger is the connection between the terminal and the machine.
type Debugger struct {
	mch  *hardware.Machine
	term terminal.Terminal

	breakpoints map[uint16]bool

	// interrupt signals from the operating system. checked during RUN so a
	// ctrl-c returns to the prompt rather than killing the process
	intChan chan os.Signal
}

// NewDebugger creates a machine from the loader and attaches it to the
// terminal.
func NewDebugger(cartload romload.Loader, dips ports.DIPs, term terminal.Terminal) (*Debugger, error) {
	mch, err := hardware.NewMachine(cartload, dips)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	// a debugged machine is never waiting on the wall clock
	mch.Limiter.Active = false

	dbg := &Debugger{
		mch:         mch,
		term:        term,
		breakpoints: make(map[uint16]bool),
		intChan:     make(chan os.Signal, 1),
	}

	return dbg, nil
}

// Start the input loop. Returns when the user quits.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	dbg.term.TermPrintLine(terminal.StyleFeedback, "Invaders8080 debugger. HELP for commands.")

	for {
		input, err := dbg.term.TermRead(fmt.Sprintf("[ %04x ] ", dbg.mch.CPU.PC))
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		quit, err := dbg.parseInput(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return nil
		}
	}
}

// parseInput splits a line of input and dispatches the command. The bool
// return is true if the debugger should quit.
func (dbg *Debugger) parseInput(input string) (bool, error) {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return false, nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "HELP":
		dbg.printHelp()

	case "QUIT", "EXIT":
		return true, nil

	case "STEP", "S":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return false, curated.Errorf("debugger: not a step count: %s", args[0])
			}
			n = v
		}
		for i := 0; i < n; i++ {
			dbg.mch.Step()
		}
		dbg.printLastResult()

	case "FRAME", "F":
		dbg.mch.RunFrame()
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("frame %d", dbg.mch.FrameCount))
		dbg.printLastResult()

	case "RUN", "R":
		return false, dbg.run()

	case "CPU":
		dbg.term.TermPrintLine(terminal.StyleCPUStep, dbg.mch.CPU.String())

	case "MEM", "M":
		return false, dbg.dumpMemory(args)

	case "DISASM", "D":
		return false, dbg.listDisasm(args)

	case "BREAK", "B":
		if len(args) == 0 {
			for addr := range dbg.breakpoints {
				dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break at %04x", addr))
			}
			return false, nil
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, err
		}
		dbg.breakpoints[addr] = true

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)

	case "RESET":
		dbg.mch.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	default:
		return false, curated.Errorf("debugger: unknown command: %s", command)
	}

	return false, nil
}

// run steps the machine until a breakpoint is hit or the user interrupts.
func (dbg *Debugger) run() error {
	for {
		dbg.mch.Step()

		if dbg.breakpoints[dbg.mch.CPU.PC] {
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break at %04x", dbg.mch.CPU.PC))
			dbg.printLastResult()
			return nil
		}

		select {
		case <-dbg.intChan:
			dbg.printLastResult()
			return nil
		default:
		}
	}
}

func (dbg *Debugger) printLastResult() {
	dbg.term.TermPrintLine(terminal.StyleCPUStep, dbg.mch.CPU.LastResult.String())
}

func (dbg *Debugger) dumpMemory(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("debugger: MEM requires an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	length := 64
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return curated.Errorf("debugger: not a length: %s", args[1])
		}
		length = v
	}

	d := dbg.mch.ReadMemory(addr, length)
	for o := 0; o < len(d); o += 16 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x  ", addr+uint16(o)))
		for i := o; i < o+16 && i < len(d); i++ {
			s.WriteString(fmt.Sprintf("%02x ", d[i]))
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}

	return nil
}

func (dbg *Debugger) listDisasm(args []string) error {
	addr := dbg.mch.CPU.PC
	if len(args) > 0 {
		v, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		addr = v
	}

	n := 16
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return curated.Errorf("debugger: not an instruction count: %s", args[1])
		}
		n = v
	}

	for _, e := range disassembly.Disassemble(dbg.mch.Mem, addr, n) {
		dbg.term.TermPrintLine(terminal.StyleFeedback, e.String())
	}

	return nil
}

func (dbg *Debugger) printHelp() {
	for _, s := range []string{
		"STEP [n]        execute n instructions (default 1)",
		"FRAME           run to the end of the current frame",
		"RUN             run until a breakpoint or ctrl-c",
		"CPU             show the CPU registers",
		"MEM addr [n]    dump n bytes of memory (default 64)",
		"DISASM [addr] [n]  disassemble from addr (default PC)",
		"BREAK [addr]    set a breakpoint, or list them",
		"CLEAR           remove all breakpoints",
		"RESET           reset the machine",
		"QUIT            leave the debugger",
	} {
		dbg.term.TermPrintLine(terminal.StyleFeedback, s)
	}
}

// parseAddress accepts hex with an optional 0x or $ prefix. Bare numbers
// are hex too - this is a debugger for a 16-bit address space.
func parseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address: %s", s)
	}
	return uint16(v), nil
}
