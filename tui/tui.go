// Package tui draws the board in a terminal, two columns per cell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
)

const help = "SPACE: Randomize  ESC: Quit"

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorWhite)
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Params fits the pixel layout to terminal cells: each board cell becomes
// a 2×1 block of characters.
func Params(p golUtils.Params) golUtils.Params {
	p.ScreenWidth = p.GridWidth * 2
	p.ScreenHeight = p.GridHeight
	return p
}

type screenCanvas struct {
	screen tcell.Screen
}

func (c screenCanvas) FillRect(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.screen.SetContent(x+dx, y+dy, ' ', nil, aliveStyle)
		}
	}
}

// Run takes over the terminal until ESC or q is pressed. game must have
// been built with Params.
func Run(p golUtils.Params, game *gol.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	return run(screen, p, game)
}

// run expects an initialized screen.
func run(screen tcell.Screen, p golUtils.Params, game *gol.Game) error {

	keys := make(chan *tcell.EventKey, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if keyEv, ok := ev.(*tcell.EventKey); ok {
				select {
				case keys <- keyEv:
				case <-quit:
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(p.TargetFPS))
	defer ticker.Stop()

	canvas := screenCanvas{screen: screen}
	randomize := false
	for {
		select {
		case keyEv := <-keys:
			if keyEv.Key() == tcell.KeyEscape || keyEv.Rune() == 'q' {
				return nil
			}
			if keyEv.Rune() == ' ' {
				randomize = true
			}
		case <-ticker.C:
			drawFrame(screen, canvas, game, randomize)
			randomize = false
			screen.Show()
		}
	}
}

// drawFrame ticks game onto the screen. The help line goes on row 0,
// which is the dead border ring after every step.
func drawFrame(screen tcell.Screen, canvas screenCanvas, game *gol.Game, randomize bool) {
	screen.Clear()
	game.Tick(randomize, canvas)
	drawText(screen, 0, 0, help)
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, helpStyle)
	}
}
