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

// Package limiter paces the emulation to the display rate of the cabinet.
// The machine scheduler calls CheckFrame() once per frame; the call blocks
// until the next 1/60s boundary.
package limiter

import (
	"time"
)

// Limiter paces frames to a fixed rate and measures the rate achieved.
type Limiter struct {
	// whether CheckFrame() waits at all. performance mode turns this off
	Active bool

	pulse *time.Ticker

	// measuring the actual frame rate is relatively expensive so it is done
	// over a one second pulse rather than per frame
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int
	measured       float32
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type. The rate is fixed on creation.
func NewLimiter(hz int) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Second / time.Duration(hz)),
		measuringPulse: time.NewTicker(time.Second),
		measureTime:    time.Now(),
		measured:       float32(hz),
	}
	return lmtr
}

// CheckFrame is called every frame. Blocks until the frame boundary if the
// limiter is active.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active {
		<-lmtr.pulse.C
	}

	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.measured = float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.measureCt = 0
		lmtr.measureTime = t
	default:
	}
}

// Measured returns the frame rate achieved over the last measurement
// period.
func (lmtr *Limiter) Measured() float32 {
	return lmtr.measured
}
