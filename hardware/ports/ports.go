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

// Package ports implements the I/O port space of the Space Invaders
// cabinet: the two input latches with their button and DIP switch bits, the
// shift register ports and the two sound ports.
//
// The input latches are written by the host input layer (keyboard, panel
// buttons) and read by the game with the IN instruction. There is no
// buffering - the CPU sees the latch as it is at the moment of the IN.
package ports

import (
	"github.com/mustafasegf/intel-8080-emu/hardware/shifter"
)

// Player is used to select one of the two input latches.
type Player int

// List of valid Player values.
const (
	Player1 Player = iota
	Player2
)

// Input bit masks for the port 1 latch.
const (
	Port1Coin           uint8 = 0x01
	Port1TwoPlayerStart uint8 = 0x02
	Port1OnePlayerStart uint8 = 0x04
	Port1Fire           uint8 = 0x10
	Port1Left           uint8 = 0x20
	Port1Right          uint8 = 0x40
)

// Input bit masks for the port 2 latch. The low bits are DIP switches.
const (
	Port2LivesMask uint8 = 0x03
	Port2Tilt      uint8 = 0x04
	Port2BonusLife uint8 = 0x08
	Port2Fire      uint8 = 0x10
	Port2Left      uint8 = 0x20
	Port2Right     uint8 = 0x40
	Port2CoinInfo  uint8 = 0x80
)

// bit 3 of the port 1 latch is wired high on the cabinet.
const port1WiredHigh uint8 = 0x08

// port 0 is unused by the shipping ROM. the hardware reference gives the
// idle bit pattern.
const port0Idle uint8 = 0x0e

// SoundReceiver is any type that wants to know about writes to the two
// sound ports. Channel 0 is port 3, channel 1 is port 5. The receiver gets
// the whole port value; edge detection is its own business.
type SoundReceiver interface {
	SetSoundBits(channel int, bits uint8)
}

// DIPs holds the cabinet DIP switch settings that are folded into the
// port 2 latch.
type DIPs struct {
	// number of lives: 0 to 3 meaning 3 to 6 lives
	Lives uint8

	// bonus ship at 1000 points rather than 1500
	BonusLifeEarly bool

	// show coin info on the demo screen
	CoinInfo bool
}

// Ports implements the bus.IOBus interface for the cabinet.
type Ports struct {
	shft *shifter.Shifter

	latch [2]uint8
	dips  DIPs

	sound SoundReceiver
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(shft *shifter.Shifter, dips DIPs) *Ports {
	p := &Ports{shft: shft, dips: dips}
	p.Reset()
	return p
}

// Reset returns both latches to their idle state. Held buttons are
// released; DIP switches keep their setting.
func (p *Ports) Reset() {
	p.latch[Player1] = port1WiredHigh
	p.latch[Player2] = p.dipBits()
}

func (p *Ports) dipBits() uint8 {
	v := p.dips.Lives & Port2LivesMask
	if p.dips.BonusLifeEarly {
		v |= Port2BonusLife
	}
	if p.dips.CoinInfo {
		v |= Port2CoinInfo
	}
	return v
}

// AttachSoundReceiver connects a receiver for sound port writes. A nil
// receiver detaches.
func (p *Ports) AttachSoundReceiver(snd SoundReceiver) {
	p.sound = snd
}

// SetInputBit presses or releases an input bit in one of the two latches.
// Mask should be one of the Port1 or Port2 bit masks.
func (p *Ports) SetInputBit(player Player, mask uint8, pressed bool) {
	if pressed {
		p.latch[player] |= mask
	} else {
		p.latch[player] &^= mask
	}
}

// PortIn implements the bus.IOBus interface.
func (p *Ports) PortIn(port uint8) uint8 {
	switch port {
	case 0:
		return port0Idle
	case 1:
		return p.latch[Player1]
	case 2:
		return p.latch[Player2]
	case 3:
		return p.shft.Read()
	}

	// unknown ports read as zero
	return 0
}

// PortOut implements the bus.IOBus interface.
func (p *Ports) PortOut(port uint8, data uint8) {
	switch port {
	case 2:
		p.shft.SetOffset(data)
	case 3:
		if p.sound != nil {
			p.sound.SetSoundBits(0, data)
		}
	case 4:
		p.shft.Push(data)
	case 5:
		if p.sound != nil {
			p.sound.SetSoundBits(1, data)
		}
	case 6:
		// watchdog. the cabinet resets if the game stops patting it; the
		// emulation has no need
	}
}
