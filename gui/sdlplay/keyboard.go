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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mustafasegf/intel-8080-emu/hardware/ports"
)

// cabinetKey ties a keyboard key to a bit in one of the input latches.
type cabinetKey struct {
	player ports.Player
	mask   uint8
}

// the keyboard map. several cabinet buttons have two keys so that both
// hands-on-keyboard styles work.
var keyMap = map[sdl.Keycode]cabinetKey{
	sdl.K_c:     {ports.Player1, ports.Port1Coin},
	sdl.K_1:     {ports.Player1, ports.Port1OnePlayerStart},
	sdl.K_2:     {ports.Player1, ports.Port1TwoPlayerStart},
	sdl.K_SPACE: {ports.Player1, ports.Port1Fire},
	sdl.K_w:     {ports.Player1, ports.Port1Fire},
	sdl.K_a:     {ports.Player1, ports.Port1Left},
	sdl.K_LEFT:  {ports.Player1, ports.Port1Left},
	sdl.K_d:     {ports.Player1, ports.Port1Right},
	sdl.K_RIGHT: {ports.Player1, ports.Port1Right},

	sdl.K_i: {ports.Player2, ports.Port2Fire},
	sdl.K_j: {ports.Player2, ports.Port2Left},
	sdl.K_l: {ports.Player2, ports.Port2Right},
	sdl.K_t: {ports.Player2, ports.Port2Tilt},
}

// keyDown handles a key press. Returns false if the key asks for the
// emulation to end.
func (scr *SdlPlay) keyDown(key sdl.Keycode) bool {
	switch key {
	case sdl.K_ESCAPE:
		return false
	case sdl.K_p:
		scr.mch.SetPaused(!scr.mch.Paused())
	case sdl.K_n:
		if scr.mch.Paused() {
			scr.mch.Step()
		}
	case sdl.K_r:
		scr.mch.Reset()
	case sdl.K_F11:
		if scr.window.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP != 0 {
			scr.window.SetFullscreen(0)
		} else {
			scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
	default:
		if k, ok := keyMap[key]; ok {
			scr.mch.SetInputBit(k.player, k.mask, true)
		}
	}
	return true
}

// keyUp handles a key release.
func (scr *SdlPlay) keyUp(key sdl.Keycode) {
	if k, ok := keyMap[key]; ok {
		scr.mch.SetInputBit(k.player, k.mask, false)
	}
}
