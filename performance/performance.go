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

// Package performance measures the emulation's raw speed: how many frames
// the machine can produce in a fixed wall-clock period with the frame
// limiter switched off. Optionally writes CPU and memory profiles for
// later study with pprof.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/romload"
)

// Check runs the emulation as fast as it will go for the specified
// duration and writes a report to the output.
func Check(output io.Writer, cartload romload.Loader, duration string, profile bool) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	mch, err := hardware.NewMachine(cartload, ports.DIPs{})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the whole point is to not wait for the wall clock
	mch.Limiter.Active = false

	runner := func() error {
		end := time.Now().Add(d)
		for time.Now().Before(end) {
			// check the clock once per frame, not once per instruction
			mch.RunFrame()
		}
		return nil
	}

	if profile {
		err = profileRun("invaders8080", runner)
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	frames := mch.FrameCount
	fps := float64(frames) / d.Seconds()
	fmt.Fprintf(output, "%d frames in %v: %.1f fps (%.1fx actual speed)\n",
		frames, d, fps, fps/hardware.FramesPerSecond)

	return nil
}
