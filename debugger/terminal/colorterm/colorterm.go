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

// Package colorterm implements the terminal.Terminal interface on a real
// terminal: cbreak input handling via the termios wrapper in pkg/term, a
// modest line editor (backspace, ctrl-c, ctrl-d) and ANSI colours keyed on
// the output style.
package colorterm

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/mustafasegf/intel-8080-emu/debugger/terminal"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	input  *os.File
	output *os.File

	// the terminal attributes on entry, restored by CleanUp()
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// Initialise implements the terminal.Terminal interface. Puts the terminal
// into cbreak mode.
func (ct *ColorTerminal) Initialise() error {
	if err := termios.Tcgetattr(ct.input.Fd(), &ct.canAttr); err != nil {
		return err
	}

	ct.cbreakAttr = ct.canAttr
	termios.Cfmakecbreak(&ct.cbreakAttr)

	return termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.cbreakAttr)
}

// CleanUp implements the terminal.Terminal interface. Restores canonical
// mode.
func (ct *ColorTerminal) CleanUp() {
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
}

// TermRead implements the terminal.Terminal interface. A small line editor:
// printable characters are echoed, backspace deletes, ctrl-c abandons the
// line and ctrl-d on an empty line ends the session.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	fmt.Fprintf(ct.output, "%s%s%s", ansiBold, prompt, ansiNormal)

	line := make([]byte, 0, 64)
	buf := make([]byte, 1)

	for {
		n, err := ct.input.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", io.EOF
		}

		switch buf[0] {
		case '\n', '\r':
			fmt.Fprintln(ct.output)
			return string(line), nil

		case 0x03: // ctrl-c
			fmt.Fprintln(ct.output, "^C")
			return "", nil

		case 0x04: // ctrl-d
			if len(line) == 0 {
				fmt.Fprintln(ct.output)
				return "", io.EOF
			}

		case 0x08, 0x7f: // backspace / delete
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(ct.output, "\b \b")
			}

		default:
			if buf[0] >= 0x20 && buf[0] < 0x7f {
				line = append(line, buf[0])
				fmt.Fprintf(ct.output, "%c", buf[0])
			}
		}
	}
}

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleCPUStep:
		fmt.Fprintf(ct.output, "%s%s%s\n", ansiYellow, s, ansiNormal)
	case terminal.StyleError:
		fmt.Fprintf(ct.output, "%s%s%s\n", ansiRed, s, ansiNormal)
	case terminal.StyleFeedback:
		fmt.Fprintf(ct.output, "%s%s%s\n", ansiCyan, s, ansiNormal)
	default:
		fmt.Fprintln(ct.output, s)
	}
}
