package gol

import (
	"reflect"
	"testing"

	"github.com/lifeview/gameoflife/golUtils"
	"github.com/lifeview/gameoflife/util"
)

type rect struct {
	x, y, w, h int
}

type recordingCanvas struct {
	rects []rect
}

func (c *recordingCanvas) FillRect(x, y, w, h int) {
	c.rects = append(c.rects, rect{x, y, w, h})
}

func testParams() golUtils.Params {
	return golUtils.Params{
		GridWidth:    8,
		GridHeight:   8,
		ScreenWidth:  100,
		ScreenHeight: 100,
		TargetFPS:    60,
	}
}

func TestTickDrawsNextGeneration(t *testing.T) {
	game := NewGame(testParams(), NewSeededSource(1))
	game.Automaton().SetCells([]util.Cell{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}})

	canvas := &recordingCanvas{}
	game.Tick(false, canvas)

	// 100/8 = 12.5 pixels per cell, truncated when drawn
	want := []rect{
		{37, 25, 12, 12},
		{37, 37, 12, 12},
		{37, 50, 12, 12},
	}
	if !reflect.DeepEqual(canvas.rects, want) {
		t.Errorf("drawn rects = %v, want %v", canvas.rects, want)
	}
	if game.Turn() != 1 {
		t.Errorf("Turn() = %d, want 1", game.Turn())
	}
}

func TestTickOneRectPerAliveCell(t *testing.T) {
	p := golUtils.DefaultParams()
	game := NewGame(p, NewSeededSource(99))
	for i := 0; i < 10; i++ {
		canvas := &recordingCanvas{}
		game.Tick(false, canvas)
		if got, want := len(canvas.rects), game.Automaton().CountAlive(); got != want {
			t.Fatalf("tick %d drew %d rects for %d alive cells", i, got, want)
		}
		for _, r := range canvas.rects {
			if r.w != 12 || r.h != 12 {
				t.Fatalf("rect %v has the wrong size for an 800x800 screen", r)
			}
		}
	}
}

func TestTickRandomizesBeforeStepping(t *testing.T) {
	p := testParams()
	game := NewGame(p, NewSeededSource(5))
	game.Tick(true, nil)

	ref := NewAutomaton(p.GridWidth, p.GridHeight, NewSeededSource(5))
	ref.Randomize(ref.Current())
	ref.Randomize(ref.Current())
	ref.Advance()

	if !reflect.DeepEqual(game.Automaton().Current(), ref.Current()) {
		t.Errorf("Tick(true) = %v, want %v", game.Automaton().AliveCells(), ref.AliveCells())
	}
}

func TestTickNilCanvas(t *testing.T) {
	game := NewGame(testParams(), NewSeededSource(2))
	game.Tick(false, nil)
	game.Tick(true, nil)
	if game.Turn() != 2 {
		t.Errorf("Turn() = %d, want 2", game.Turn())
	}
}

func TestNewGameSameSeed(t *testing.T) {
	first := NewGame(testParams(), NewSeededSource(11))
	second := NewGame(testParams(), NewSeededSource(11))
	if !reflect.DeepEqual(first.Automaton().Current(), second.Automaton().Current()) {
		t.Error("games built from the same seed start differently")
	}
}
