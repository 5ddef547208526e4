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

// Package sdlplay is the SDL implementation of the gui.GUI interface: a
// window showing the rotated framebuffer and a keyboard mapped onto the
// cabinet's buttons.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mustafasegf/intel-8080-emu/curated"
	"github.com/mustafasegf/intel-8080-emu/gui"
	"github.com/mustafasegf/intel-8080-emu/hardware"
	"github.com/mustafasegf/intel-8080-emu/hardware/video"
	"github.com/mustafasegf/intel-8080-emu/logger"
)

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	mch *hardware.Machine

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the RGBA staging buffer copied to the texture every frame
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Scale
// is the integer size of a cabinet pixel on the desktop.
func NewSdlPlay(mch *hardware.Machine, scale int) (gui.GUI, error) {
	scr := &SdlPlay{mch: mch}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("Invaders8080",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the native resolution up to the window size
	if err := scr.renderer.SetLogicalSize(video.Width, video.Height); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	logger.Logf("sdlplay", "window %dx%d (scale %d)", video.Width*scale, video.Height*scale, scale)

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// Service implements the gui.GUI interface. Polls and handles all pending
// SDL events. Must be called from the main thread.
func (scr *SdlPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Repeat == 0 {
					if !scr.keyDown(ev.Keysym.Sym) {
						return false
					}
				}
			case sdl.KEYUP:
				scr.keyUp(ev.Keysym.Sym)
			}
		}
	}
	return true
}

// UpdateScreen implements the gui.GUI interface.
func (scr *SdlPlay) UpdateScreen() error {
	fb := scr.mch.Framebuffer()

	for i, p := range fb {
		o := i * pixelDepth
		scr.pixels[o] = p
		scr.pixels[o+1] = p
		scr.pixels[o+2] = p
		scr.pixels[o+3] = 0xff
	}

	if err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}
