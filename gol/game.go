package gol

import "github.com/lifeview/gameoflife/golUtils"

// Canvas receives one filled rectangle per live cell, in pixels.
type Canvas interface {
	FillRect(x, y, w, h int)
}

// Game is what a render loop drives once per frame.
type Game struct {
	life       *Automaton
	cellWidth  float64
	cellHeight float64
	turn       int
}

// NewGame allocates the board and fills it from rng.
func NewGame(p golUtils.Params, rng RandomSource) *Game {
	g := &Game{
		life:       NewAutomaton(p.GridWidth, p.GridHeight, rng),
		cellWidth:  float64(p.ScreenWidth) / float64(p.GridWidth),
		cellHeight: float64(p.ScreenHeight) / float64(p.GridHeight),
	}
	g.life.Randomize(g.life.Current())
	return g
}

func (g *Game) Automaton() *Automaton { return g.life }

// Turn is the number of completed ticks.
func (g *Game) Turn() int { return g.turn }

// Tick randomizes if asked, advances one generation and draws it onto c.
// A nil canvas skips drawing.
func (g *Game) Tick(randomize bool, c Canvas) {
	if randomize {
		g.life.Randomize(g.life.Current())
	}
	g.life.Advance()
	g.turn++

	if c != nil {
		g.Draw(c)
	}
}

// Draw paints the current generation without advancing it.
func (g *Game) Draw(c Canvas) {
	life := g.life
	for y := 0; y < life.Height(); y++ {
		for x := 0; x < life.Width(); x++ {
			if life.ReadCell(x, y, life.current) {
				c.FillRect(
					int(float64(x)*g.cellWidth),
					int(float64(y)*g.cellHeight),
					int(g.cellWidth),
					int(g.cellHeight),
				)
			}
		}
	}
}
