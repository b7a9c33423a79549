package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/lifeview/gameoflife/ebitengui"
	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
	"github.com/lifeview/gameoflife/raylib"
	"github.com/lifeview/gameoflife/sdl"
	"github.com/lifeview/gameoflife/tui"
	"golang.org/x/sync/errgroup"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	runtime.LockOSThread()

	params := golUtils.DefaultParams()

	backend := flag.String(
		"backend",
		"raylib",
		"Front end to use: raylib, sdl, ebiten, tui or none. Defaults to raylib.")

	flag.Int64Var(
		&params.Seed,
		"seed",
		0,
		"Seed for randomizing the board. Defaults to 0, which seeds from the clock.")

	flag.IntVar(
		&params.Turns,
		"turns",
		1000,
		"Number of turns to process without visualisation. Defaults to 1000.")

	flag.IntVar(
		&params.TargetFPS,
		"fps",
		60,
		"Target frames per second. Defaults to 60.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the window and runs -turns turns headless.")

	flag.Parse()

	if *noVis {
		*backend = "none"
	}
	if params.TargetFPS <= 0 {
		log.Fatalf("fps must be positive, got %d", params.TargetFPS)
	}

	fmt.Println("Backend:", *backend)
	fmt.Println("Width:", params.GridWidth)
	fmt.Println("Height:", params.GridHeight)

	rng := gol.SourceFor(params, time.Now)

	var err error
	switch *backend {
	case "raylib":
		err = raylib.Run(params, gol.NewGame(params, rng))
	case "sdl":
		err = sdl.Run(params, gol.NewGame(params, rng))
	case "ebiten":
		err = ebitengui.Run(params, gol.NewGame(params, rng))
	case "tui":
		p := tui.Params(params)
		err = tui.Run(p, gol.NewGame(p, rng))
	case "none":
		err = runHeadless(params, rng)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runHeadless(p golUtils.Params, rng gol.RandomSource) error {
	events := make(chan gol.Event, 1000)

	var eg errgroup.Group
	eg.Go(func() error {
		gol.Run(p, rng, events, nil)
		return nil
	})
	eg.Go(func() error {
		return printEvents(os.Stdout, events)
	})
	return eg.Wait()
}

// printEvents reports progress until events is closed. It fails if the run
// ended without a final turn.
func printEvents(w io.Writer, events <-chan gol.Event) error {
	finished := false
	for event := range events {
		switch e := event.(type) {
		case gol.FinalTurnComplete:
			finished = true
			fmt.Fprintf(w, "Completed Turns %-8v%v\n", e.GetCompletedTurns(), e)
		case gol.AliveCellsCount, gol.StateChange:
			fmt.Fprintf(w, "Completed Turns %-8v%v\n", e.GetCompletedTurns(), e)
		}
	}
	if !finished {
		return errors.New("events closed before the final turn")
	}
	return nil
}
