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

package hardware_test

import (
	"testing"

	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/romload"
	"github.com/mustafasegf/intel-8080-emu/test"
)

// the game keeps its credit count at this address.
const creditsAddress = 0x20eb

// invadersMachine loads the real ROM from the testdata directory, skipping
// the test when it is not present. The ROM is copyrighted and not
// distributed with the repository.
func invadersMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	cartload, err := romload.NewLoader("testdata/invaders")
	if err != nil {
		t.Skip("Space Invaders ROM not present in testdata")
	}

	mch, err := hardware.NewMachine(cartload, ports.DIPs{})
	if err != nil {
		t.Fatal(err)
	}
	mch.Limiter.Active = false

	return mch
}

func TestBootToAttract(t *testing.T) {
	mch := invadersMachine(t)

	// five seconds of attract mode with no input
	for i := 0; i < 300; i++ {
		mch.RunFrame()
	}

	// the attract animation is drawing and the program is where it should
	// be
	lit := 0
	for _, p := range mch.Framebuffer() {
		if p != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("framebuffer empty after 300 frames of attract mode")
	}
	if mch.CPU.PC >= 0x2000 {
		t.Errorf("PC outside ROM after 300 frames (%04x)", mch.CPU.PC)
	}
}

func TestCoinAndStart(t *testing.T) {
	mch := invadersMachine(t)

	runFrames := func(n int) {
		for i := 0; i < n; i++ {
			mch.RunFrame()
		}
	}

	runFrames(120)

	// push the coin button for two frames
	mch.SetInputBit(ports.Player1, ports.Port1Coin, true)
	runFrames(2)
	mch.SetInputBit(ports.Player1, ports.Port1Coin, false)
	runFrames(60)

	credits := mch.Mem.Peek(creditsAddress)
	if credits < 1 {
		t.Fatalf("no credit registered after coin press (credits=%d)", credits)
	}

	// start a one player game
	mch.SetInputBit(ports.Player1, ports.Port1OnePlayerStart, true)
	runFrames(2)
	mch.SetInputBit(ports.Player1, ports.Port1OnePlayerStart, false)
	runFrames(120)

	// the credit was spent
	test.Equate(t, int(mch.Mem.Peek(creditsAddress)), int(credits)-1)
}
