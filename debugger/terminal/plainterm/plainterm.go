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

// Package plainterm implements the terminal.Terminal interface with plain
// line-buffered reads and no decoration. It works wherever stdin works:
// pipes, redirections, terminals without ANSI support.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mustafasegf/intel-8080-emu/debugger/terminal"
)

// PlainTerminal implements the terminal.Terminal interface.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal() *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// TermRead implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	fmt.Fprint(pt.output, prompt)

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return pt.input.Text(), nil
}

// TermPrintLine implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(_ terminal.Style, s string) {
	fmt.Fprintln(pt.output, s)
}
