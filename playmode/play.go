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

// Package playmode runs the emulation for playing, without any debugging
// features. The machine and the gui alternate on the calling goroutine:
// service input, run a frame, present the frame. The frame limiter inside
// the machine paces the loop to 60Hz.
package playmode

import (
	"os"
	"os/signal"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/gui"
	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/romload"
	"github.com/mustafasegf/intel-8080-emu/sound"
)

// GuiCreator facilitates creation of the gui by the caller. Play itself
// doesn't know which gui implementation it is given.
type GuiCreator func(mch *hardware.Machine) (gui.GUI, error)

// Play sets the emulation running. An fpsCap of false lets the machine run
// as fast as the host allows.
func Play(cartload romload.Loader, dips ports.DIPs, sampleDir string, fpsCap bool, create GuiCreator) error {
	mch, err := hardware.NewMachine(cartload, dips)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	mch.Limiter.Active = fpsCap

	snd, err := sound.NewPlayer(sampleDir)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	mch.Ports.AttachSoundReceiver(snd)

	scr, err := create(mch)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	// a ctrl-c ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		if !scr.Service() {
			return nil
		}

		mch.RunFrame()

		if err := scr.UpdateScreen(); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}
}
