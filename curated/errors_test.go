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

package curated_test

import (
	"errors"
	"testing"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/test"
)

const testPattern = "test: value = %d"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.Equate(t, e.Error(), "test: value = 10")

	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, "some other pattern"), false)

	// uncurated errors are never matched
	f := errors.New("test: value = 10")
	test.Equate(t, curated.IsAny(f), false)
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("fatal: %v", e)

	// the head of the chain is f's pattern, not e's
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, "fatal: %v"), true)

	test.Equate(t, f.Error(), "fatal: test: value = 10")
}

func TestDeduplication(t *testing.T) {
	// a wrapped error repeating the same context collapses
	e := curated.Errorf("shifter: %v", curated.Errorf("shifter: bad offset"))
	test.Equate(t, e.Error(), "shifter: bad offset")
}
