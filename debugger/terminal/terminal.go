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

// Package terminal defines the operations required by the debugger's
// command line interface. There are two implementations: colorterm, which
// uses raw terminal handling and ANSI colours, and plainterm, a fallback
// for when input is not a terminal.
package terminal

// Style is used to hint at what the terminal should do with a line of
// output. Implementations are free to ignore it.
type Style int

// List of terminal styles.
const (
	// input that has been echoed back to the user
	StyleEcho Style = iota

	// information from the debugger: help text, memory dumps
	StyleFeedback

	// the result of a CPU step
	StyleCPUStep

	// an error message
	StyleError
)

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Initialise the terminal. not all implementations need do anything
	Initialise() error

	// CleanUp restores the terminal to its original state
	CleanUp()

	// TermRead reads a line of input, showing the prompt. Returns io.EOF
	// when the input is exhausted or the user has asked to leave
	TermRead(prompt string) (string, error)

	// TermPrintLine prints a line of output in the given style
	TermPrintLine(style Style, s string)
}
