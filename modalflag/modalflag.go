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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. The command line is parsed in phases: a call to
// NewMode() begins a phase with its own flag set and (optionally) a list of
// sub-modes; Parse() consumes flags up to the first sub-mode word and
// leaves the rest for the next phase.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DEBUG")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	...
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments with
// sub-modes. The Output field should be specified before calling Parse() or
// you will not see any help messages.
type Modes struct {
	// where to print output (help messages etc). nothing is printed if nil
	Output io.Writer

	// the underlying flag set. a new one is created by every call to
	// NewMode()
	flags *flag.FlagSet

	// the arguments still to be parsed
	args []string

	// the sub-modes valid in the current phase. the first entry is the
	// default, chosen when no sub-mode word is present
	subModes []string

	// the series of sub-modes encountered over successive calls to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return strings.Join(md.path, modeSeparator)
}

// Mode returns the last sub-mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs begins parsing with a fresh argument list (from the command line,
// usually).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.NewMode()
}

// NewMode begins a new parsing phase. Flags and sub-modes registered before
// the next Parse() belong to this phase.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = nil
	md.additionalHelp = ""
}

// AddSubModes registers the sub-modes valid in this phase. The first is the
// default.
func (md *Modes) AddSubModes(subModes ...string) {
	md.subModes = append(md.subModes, subModes...)
}

// AdditionalHelp adds text displayed after the flag summary in the help
// message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// A list of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current phase of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the first argument says
		// otherwise
		mode := md.subModes[0]

		if len(md.args) > 0 {
			arg := strings.ToUpper(md.args[0])
			for _, m := range md.subModes {
				if m == arg {
					mode = arg
					md.args = md.args[1:]
					break
				}
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp() {
	if md.Output == nil {
		return
	}

	if len(md.path) > 0 {
		fmt.Fprintf(md.Output, "usage of %s:\n", md.String())
	} else {
		fmt.Fprintf(md.Output, "usage:\n")
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "sub-modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs are the arguments left over after a call to Parse():
// whatever wasn't a flag or a sub-mode word.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the remaining argument at position i, or the empty string.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool adds a bool flag to the current phase.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an int flag to the current phase.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current phase.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint adds a uint flag to the current phase.
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}

// AddDuration adds a time.Duration flag to the current phase.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
