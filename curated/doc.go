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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It looks like the
// Errorf() function from the fmt package but the formatting pattern doubles as
// the error's identity. The Is() function compares identities:
//
//	e := curated.Errorf("shifter: bad offset %d", n)
//
//	if curated.Is(e, "shifter: bad offset %d") {
//		...
//	}
//
// Errors wrap naturally by passing an error as one of the placeholder values.
// The Has() function checks for a pattern anywhere in the chain, not just at
// the head.
//
// The IsAny() function says whether an error originated from this package at
// all. A convenient way of thinking about the distinction is expected versus
// unexpected: errors a caller knows how to recover from are curated at the
// point of creation.
package curated
