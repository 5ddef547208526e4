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

// Package hardware is the top of the emulated machine. The Machine type
// owns every component of the cabinet - CPU, memory, shift register, I/O
// ports, screen - and schedules them.
//
// The emulation is single threaded and cooperative. The host drives it by
// calling RunFrame() in a loop; everything that happens, happens inside
// that call. There are no goroutines inside the core and no suspension
// points inside an instruction.
package hardware
