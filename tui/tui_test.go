package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
	"github.com/lifeview/gameoflife/util"
)

func TestParams(t *testing.T) {
	p := Params(golUtils.DefaultParams())
	if p.ScreenWidth != 128 || p.ScreenHeight != 64 {
		t.Errorf("screen = %dx%d, want 128x64", p.ScreenWidth, p.ScreenHeight)
	}
}

func TestCanvasFillRect(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	p := Params(golUtils.Params{GridWidth: 6, GridHeight: 6, TargetFPS: 60})
	game := gol.NewGame(p, gol.NewSeededSource(1))
	game.Automaton().SetCells([]util.Cell{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}})

	screen.Clear()
	game.Tick(false, screenCanvas{screen: screen})

	// the vertical blinker turns horizontal on row 3
	for x := 0; x < 12; x++ {
		_, _, style, _ := screen.GetContent(x, 3)
		want := x >= 4 && x < 10
		if got := style == aliveStyle; got != want {
			t.Errorf("column %d alive = %v, want %v", x, got, want)
		}
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	p := Params(golUtils.Params{GridWidth: 8, GridHeight: 8, TargetFPS: 60})
	game := gol.NewGame(p, gol.NewSeededSource(1))

	done := make(chan error, 1)
	go func() { done <- run(screen, p, game) }()

	deadline := time.After(5 * time.Second)
	for {
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("run returned %v", err)
			}
			return
		case <-deadline:
			t.Fatal("run did not return after ESC")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestDrawFrameHelpOnTopRow(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	// as short as the board itself, with no spare row below it
	screen.SetSize(64, 32)

	p := Params(golUtils.Params{GridWidth: 32, GridHeight: 32, TargetFPS: 60})
	game := gol.NewGame(p, gol.NewSeededSource(4))
	drawFrame(screen, screenCanvas{screen: screen}, game, false)

	for i, want := range help {
		r, _, style, _ := screen.GetContent(i, 0)
		if r != want || style != helpStyle {
			t.Fatalf("column %d of row 0 = %q, want %q", i, r, want)
		}
	}
	for y := 1; y < 31; y++ {
		for x := 2; x < 62; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			alive := game.Automaton().ReadCell(x/2, y, game.Automaton().Current())
			if got := style == aliveStyle; got != alive {
				t.Fatalf("cell (%d, %d) drawn = %v, alive = %v", x/2, y, got, alive)
			}
		}
	}
}
