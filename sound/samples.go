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

package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/logger"
)

// pcmData is a decoded sample: mono, signed 16-bit little endian.
type pcmData struct {
	sampleRate int
	data       []byte
}

// loadSample reads and decodes a single sample file. The format is chosen
// by the file extension.
func loadSample(filename string) (pcmData, error) {
	switch filepath.Ext(filename) {
	case ".wav":
		return loadWAV(filename)
	case ".mp3":
		return loadMP3(filename)
	}
	return pcmData{}, curated.Errorf("sound: %s: unsupported sample format", filename)
}

func loadWAV(filename string) (pcmData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return pcmData{}, curated.Errorf("sound: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return pcmData{}, curated.Errorf("sound: %s: not a valid wav file", filename)
	}

	logger.Logf(soundLogTag, "loading %s", filepath.Base(filename))

	// load all data at once. the samples are all well under a second long
	var buf *audio.IntBuffer
	buf, err = dec.FullPCMBuffer()
	if err != nil {
		return pcmData{}, curated.Errorf("sound: wav: %v", err)
	}

	p := pcmData{sampleRate: int(dec.SampleRate)}

	// keep the first channel only and convert to 16-bit
	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}
	for i := 0; i < len(buf.Data); i += numChans {
		var s int16
		switch dec.BitDepth {
		case 8:
			// 8-bit wav data is unsigned
			s = int16(buf.Data[i]-128) << 8
		default:
			s = int16(buf.Data[i])
		}
		p.data = append(p.data, byte(s), byte(s>>8))
	}

	return p, nil
}

func loadMP3(filename string) (pcmData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return pcmData{}, curated.Errorf("sound: %v", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return pcmData{}, curated.Errorf("sound: mp3: %v", err)
	}

	logger.Logf(soundLogTag, "loading %s", filepath.Base(filename))

	p := pcmData{sampleRate: dec.SampleRate()}

	// the go-mp3 stream is always 16-bit little endian, two channels, four
	// bytes per sample pair. keep the left channel
	chunk := make([]byte, 4096)
	err = nil
	for err != io.EOF {
		var n int
		n, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return pcmData{}, curated.Errorf("sound: mp3: %v", err)
		}
		for i := 0; i+1 < n; i += 4 {
			p.data = append(p.data, chunk[i], chunk[i+1])
		}
	}

	return p, nil
}

// loadSampleSet loads the numbered sample files from a directory. A missing
// number leaves a silent slot; a decode failure is an error.
func loadSampleSet(dir string) ([numSamples]pcmData, int, error) {
	var set [numSamples]pcmData

	rate := 0
	for i := 0; i < numSamples; i++ {
		var filename string
		for _, ext := range []string{".wav", ".mp3"} {
			n := filepath.Join(dir, fmt.Sprintf("%d%s", i, ext))
			if _, err := os.Stat(n); err == nil {
				filename = n
				break
			}
		}
		if filename == "" {
			continue
		}

		p, err := loadSample(filename)
		if err != nil {
			return set, 0, err
		}
		set[i] = p

		// all samples must agree on the sample rate. the first one loaded
		// wins
		if rate == 0 {
			rate = p.sampleRate
		} else if rate != p.sampleRate {
			return set, 0, curated.Errorf("sound: %s: sample rate %d does not match set rate %d",
				filepath.Base(filename), p.sampleRate, rate)
		}
	}

	return set, rate, nil
}
