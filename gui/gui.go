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

// Package gui defines the interface between the play loop and whatever is
// presenting pixels and collecting input. The only implementation in this
// repository is sdlplay but nothing in the play loop knows that.
package gui

// GUI is implemented by the presentation layer.
type GUI interface {
	// Destroy cleans up resources used by the gui
	Destroy()

	// Service processes windowing and input events. MUST be called from the
	// main thread, once per frame. Returns false when the user has asked to
	// quit
	Service() bool

	// UpdateScreen presents the machine's current framebuffer
	UpdateScreen() error
}
