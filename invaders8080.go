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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/debugger"
	"github.com/mustafasegf/intel-8080-emu/debugger/terminal"
	"github.com/mustafasegf/intel-8080-emu/debugger/terminal/colorterm"
	"github.com/mustafasegf/intel-8080-emu/debugger/terminal/plainterm"
	"github.com/mustafasegf/intel-8080-emu/disassembly"
	"github.com/mustafasegf/intel-8080-emu/gui"
	"github.com/mustafasegf/intel-8080-emu/gui/sdlplay"
	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
	"github.com/mustafasegf/intel-8080-emu/logger"
	"github.com/mustafasegf/intel-8080-emu/modalflag"
	"github.com/mustafasegf/intel-8080-emu/performance"
	"github.com/mustafasegf/intel-8080-emu/playmode"
	"github.com/mustafasegf/intel-8080-emu/romload"
	"github.com/mustafasegf/intel-8080-emu/statsview"
	"github.com/mustafasegf/intel-8080-emu/version"
)

func init() {
	// SDL requires the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	ver := md.AddBool("version", false, "print version and quit")
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *ver {
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Revision)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// dipsFromFlags folds the DIP switch command line flags into a ports.DIPs
// value. Lives outside the valid range of the cabinet's switches is an
// error.
func dipsFromFlags(lives int, bonusEarly bool, coinInfo bool) (ports.DIPs, error) {
	if lives < 3 || lives > 6 {
		return ports.DIPs{}, curated.Errorf("invaders8080: lives must be between 3 and 6")
	}
	return ports.DIPs{
		Lives:          uint8(lives - 3),
		BonusLifeEarly: bonusEarly,
		CoinInfo:       coinInfo,
	}, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window size as a multiple of the native resolution")
	fpsCap := md.AddBool("fpscap", true, "cap emulation to 60fps")
	sampleDir := md.AddString("samples", "samples", "directory of sound sample files (0.wav to 8.wav)")
	lives := md.AddInt("lives", 3, "DIP: number of lives (3 to 6)")
	bonusEarly := md.AddBool("bonusearly", false, "DIP: bonus ship at 1000 points rather than 1500")
	coinInfo := md.AddBool("coininfo", false, "DIP: show coin info on demo screen")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	cartload, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	dips, err := dipsFromFlags(*lives, *bonusEarly, *coinInfo)
	if err != nil {
		return err
	}

	return playmode.Play(cartload, dips, *sampleDir, *fpsCap,
		func(mch *hardware.Machine) (gui.GUI, error) {
			return sdlplay.NewSdlPlay(mch, *scale)
		})
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	lives := md.AddInt("lives", 3, "DIP: number of lives (3 to 6)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	cartload, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	dips, err := dipsFromFlags(*lives, false, false)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		term = colorterm.NewColorTerminal()
	case "PLAIN":
		term = plainterm.NewPlainTerminal()
	default:
		return curated.Errorf("invaders8080: unknown terminal type: %s", *termType)
	}

	dbg, err := debugger.NewDebugger(cartload, dips, term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	return disassembly.Write(cartload, os.Stdout)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write CPU and memory profiles")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		output := io.Writer(os.Stdout)
		if !statsview.Available() {
			fmt.Println("* statsview not available")
		} else {
			statsview.Launch(output)
		}
	}

	cartload, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, cartload, *duration, *profile)
}

// loaderFromArgs loads the ROM named by the single remaining argument.
func loaderFromArgs(md *modalflag.Modes) (romload.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romload.Loader{}, curated.Errorf("invaders8080: ROM file required for %s mode", md)
	case 1:
		return romload.NewLoader(md.GetArg(0))
	}
	return romload.Loader{}, curated.Errorf("invaders8080: too many arguments for %s mode", md)
}
