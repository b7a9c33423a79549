package gol

import (
	"github.com/lifeview/gameoflife/golUtils"
	"github.com/lifeview/gameoflife/util"
)

// Automaton owns the two generation buffers of a Game of Life board.
//
// Reads and writes treat the border differently. ReadCell reports anything
// outside the board as dead, so neighbour counts never see across an edge.
// WriteCell wraps an out-of-range coordinate by one step onto the opposite
// edge. Step only writes interior coordinates, so the wrap is never taken
// by the simulation itself.
type Automaton struct {
	width   int
	height  int
	current golUtils.Grid
	next    golUtils.Grid
	rng     RandomSource
}

func NewAutomaton(width, height int, rng RandomSource) *Automaton {
	return &Automaton{
		width:   width,
		height:  height,
		current: golUtils.MakeGrid(width, height),
		next:    golUtils.MakeGrid(width, height),
		rng:     rng,
	}
}

func (a *Automaton) Width() int  { return a.width }
func (a *Automaton) Height() int { return a.height }

// Current returns the latest completed generation. Callers must not keep it
// across a call to Advance.
func (a *Automaton) Current() golUtils.Grid { return a.current }

func (a *Automaton) ReadCell(x, y int, g golUtils.Grid) bool {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return false
	}
	return g[y*a.width+x]
}

func (a *Automaton) WriteCell(x, y int, value bool, g golUtils.Grid) {
	if x < 0 {
		x = a.width - 1
	} else if x >= a.width {
		x = 0
	}

	if y < 0 {
		y = a.height - 1
	} else if y >= a.height {
		y = 0
	}

	g[y*a.width+x] = value
}

func (a *Automaton) CountLiveNeighbors(x, y int, g golUtils.Grid) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if a.ReadCell(x+dx, y+dy, g) {
				count++
			}
		}
	}
	return count
}

// Step writes the generation after current into next. The outer ring of
// next is always left dead.
func (a *Automaton) Step(current, next golUtils.Grid) {
	next.Clear()

	for y := 1; y < a.height-1; y++ {
		for x := 1; x < a.width-1; x++ {
			count := a.CountLiveNeighbors(x, y, current)
			alive := a.ReadCell(x, y, current)

			if alive {
				if count == 2 || count == 3 {
					a.WriteCell(x, y, true, next)
				}
			} else if count == 3 {
				a.WriteCell(x, y, true, next)
			}
		}
	}
}

// Advance steps the owned buffers and swaps them.
func (a *Automaton) Advance() {
	a.Step(a.current, a.next)
	a.current, a.next = a.next, a.current
}

// Randomize sets each cell alive with probability 1/2.
func (a *Automaton) Randomize(g golUtils.Grid) {
	for i := range g {
		g[i] = a.rng.Intn(2) == 1
	}
}

// SetCells replaces the current generation with the given live cells.
func (a *Automaton) SetCells(cells []util.Cell) {
	a.current.Clear()
	for _, c := range cells {
		a.WriteCell(c.X, c.Y, true, a.current)
	}
}

func (a *Automaton) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			if a.current[y*a.width+x] {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (a *Automaton) CountAlive() int {
	liveCount := 0
	for _, alive := range a.current {
		if alive {
			liveCount++
		}
	}
	return liveCount
}
