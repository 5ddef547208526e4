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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/mustafasegf/intel-8080-emu/curated"
)

// profileRun brackets the run function with a CPU profile and follows it
// with a heap snapshot. Profiles are written to the working directory as
// <tag>_cpu.profile and <tag>_mem.profile.
func profileRun(tag string, run func() error) error {
	cf, err := os.Create(tag + "_cpu.profile")
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer cf.Close()

	if err := pprof.StartCPUProfile(cf); err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	if err := run(); err != nil {
		return err
	}

	mf, err := os.Create(tag + "_mem.profile")
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer mf.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(mf); err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	return nil
}
