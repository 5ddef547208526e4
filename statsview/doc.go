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

//go:build !statsview
// +build !statsview

// Package statsview is an optional package that will be built only when the
// statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics.
// Underlying functionality provided by github.com/go-echarts/statsview.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12680/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12680/debug/pprof/
package statsview

import (
	"io"
)

// Address of the statsview server. Meaningless without the statsview build
// constraint.
const Address = ""

// Launch is a stub. Build with the statsview constraint for the real thing.
func Launch(output io.Writer) {
	io.WriteString(output, "statsview not compiled in. build with the statsview tag\n")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
