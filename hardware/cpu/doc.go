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

// Package cpu emulates the Intel 8080 microprocessor found in the Space
// Invaders cabinet. Like all 8-bit processors of the era, the 8080 executes
// instructions according to the single byte value read from the address
// pointed to by the program counter. The instruction definitions live in the
// instructions sub-package.
//
// The bread-and-butter of the CPU type is the Step() function. It fetches,
// decodes and executes a single instruction and returns the number of
// machine cycles consumed - the machine scheduler in the hardware package
// sums these to pace the emulation.
//
// Interrupts are delivered with RaiseInterrupt(). The vector is held in a
// one-slot latch and acknowledged at the next instruction boundary, provided
// interrupts are enabled. A newly raised interrupt overwrites an unserviced
// one. The one-instruction delay of the EI instruction is honoured: an
// interrupt can never fire between EI and the instruction that follows it.
//
// The LastResult field can be probed for information about the most recently
// executed instruction. Very useful for debuggers; ignored by everything
// else.
package cpu
