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

// Package sound plays the discrete sound samples of the Space Invaders
// cabinet. The original board has no programmable sound chip; the game
// raises bits on two output ports and analogue circuits play fixed sounds.
// This package watches those port writes and plays sampled recordings of
// the circuits instead.
//
// Samples are loaded from a directory of files named 0.wav to 8.wav (or
// .mp3), following the numbering every set of Space Invaders samples in
// circulation uses. If the directory is absent the Player stays disabled
// and the emulation runs silent.
package sound

import (
	"bytes"
	"io"
	"os"

	"github.com/ebitengine/oto/v3"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/logger"
)

const soundLogTag = "sound"

// The numbered samples and the port bits that trigger them. Channel 0 is
// output port 3, channel 1 is output port 5.
const (
	SampleUFO        = 0 // channel 0 bit 0, loops while held
	SampleShot       = 1 // channel 0 bit 1
	SamplePlayerDie  = 2 // channel 0 bit 2
	SampleInvaderDie = 3 // channel 0 bit 3
	SampleFleet1     = 4 // channel 1 bit 0
	SampleFleet2     = 5 // channel 1 bit 1
	SampleFleet3     = 6 // channel 1 bit 2
	SampleFleet4     = 7 // channel 1 bit 3
	SampleUFOHit     = 8 // channel 1 bit 4

	numSamples = 9
)

// trigger maps a (channel, bit) pair onto a sample number.
var trigger = [2][5]int{
	{SampleUFO, SampleShot, SamplePlayerDie, SampleInvaderDie, -1},
	{SampleFleet1, SampleFleet2, SampleFleet3, SampleFleet4, SampleUFOHit},
}

// Player implements the ports.SoundReceiver interface, playing a sample on
// each rising edge of a sound port bit.
type Player struct {
	ctx     *oto.Context
	samples [numSamples]pcmData

	// last value seen on each channel, for edge detection
	last [2]uint8

	// the UFO sound loops for as long as its bit is held
	ufo *oto.Player

	enabled bool
}

// NewPlayer loads the sample set from the directory and prepares the audio
// device. A missing directory is not an error: the returned Player is
// disabled and every trigger is a no-op.
func NewPlayer(dir string) (*Player, error) {
	pl := &Player{}

	if _, err := os.Stat(dir); err != nil {
		logger.Logf(soundLogTag, "no sample directory at %s, running silent", dir)
		return pl, nil
	}

	set, rate, err := loadSampleSet(dir)
	if err != nil {
		return nil, err
	}
	if rate == 0 {
		logger.Logf(soundLogTag, "no samples in %s, running silent", dir)
		return pl, nil
	}
	pl.samples = set

	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("sound: %v", err)
	}
	<-ready

	pl.ctx = ctx
	pl.enabled = true

	return pl, nil
}

// SetSoundBits implements the ports.SoundReceiver interface.
func (pl *Player) SetSoundBits(channel int, bits uint8) {
	if channel < 0 || channel > 1 {
		return
	}

	rising := bits &^ pl.last[channel]
	falling := pl.last[channel] &^ bits
	pl.last[channel] = bits

	if !pl.enabled {
		return
	}

	// the UFO drone starts and stops with its bit
	if channel == 0 {
		if rising&0x01 == 0x01 {
			pl.startUFO()
		}
		if falling&0x01 == 0x01 {
			pl.stopUFO()
		}
	}

	for bit := 0; bit < 5; bit++ {
		if rising>>bit&0x01 != 0x01 {
			continue
		}
		n := trigger[channel][bit]
		if n <= SampleUFO {
			// the UFO loop is handled above; unmapped bits are ignored
			continue
		}
		pl.play(n)
	}
}

// play fires a one-shot sample. The player drains and is collected on its
// own; samples are short enough that tracking them is not worth the
// bookkeeping.
func (pl *Player) play(n int) {
	if len(pl.samples[n].data) == 0 {
		return
	}
	p := pl.ctx.NewPlayer(bytes.NewReader(pl.samples[n].data))
	p.Play()
}

func (pl *Player) startUFO() {
	if pl.ufo != nil || len(pl.samples[SampleUFO].data) == 0 {
		return
	}
	pl.ufo = pl.ctx.NewPlayer(&loopReader{data: pl.samples[SampleUFO].data})
	pl.ufo.Play()
}

func (pl *Player) stopUFO() {
	if pl.ufo == nil {
		return
	}
	pl.ufo.Close()
	pl.ufo = nil
}

// loopReader replays its data forever.
type loopReader struct {
	data []byte
	pos  int
}

func (lr *loopReader) Read(p []byte) (int, error) {
	if len(lr.data) == 0 {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		c := copy(p[n:], lr.data[lr.pos:])
		n += c
		lr.pos = (lr.pos + c) % len(lr.data)
	}
	return n, nil
}
