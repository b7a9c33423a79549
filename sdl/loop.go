package sdl

import (
	"fmt"

	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
	"github.com/veandco/go-sdl2/sdl"
)

const title = "Game of Life"

// Run opens the window and drives game once per frame until the window is
// closed or ESC is pressed. It must be called from the main thread.
func Run(p golUtils.Params, game *gol.Game) error {
	w, err := NewWindow(title, int32(p.ScreenWidth), int32(p.ScreenHeight))
	if err != nil {
		return err
	}
	defer w.Destroy()

	frameTime := uint32(1000 / p.TargetFPS)
	frames := 0
	lastReport := sdl.GetTicks()

	for {
		start := sdl.GetTicks()

		randomize, quit := pollInput(w)
		if quit {
			return nil
		}

		w.ClearPixels()
		game.Tick(randomize, w)
		if err := w.RenderFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		frames++
		if now := sdl.GetTicks(); now-lastReport >= 1000 {
			w.SetTitle(fmt.Sprintf("%s - SPACE: Randomize - %d FPS", title, frames))
			frames = 0
			lastReport = now
		}

		if elapsed := sdl.GetTicks() - start; elapsed < frameTime {
			sdl.Delay(frameTime - elapsed)
		}
	}
}

// pollInput drains the SDL event queue for this frame.
func pollInput(w *Window) (randomize, quit bool) {
	for event := w.PollEvent(); event != nil; event = w.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_SPACE:
				randomize = true
			case sdl.K_ESCAPE:
				quit = true
			}
		}
	}
	return
}
