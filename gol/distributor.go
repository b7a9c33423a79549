package gol

import (
	"time"

	"github.com/lifeview/gameoflife/golUtils"
)

const reportInterval = 2 * time.Second

func tick(finish chan bool, tick chan bool) {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()
	for {
		select {
		case <-finish:
			return
		case <-ticker.C:
			select {
			case tick <- true:
			case <-finish:
				return
			}
		}
	}
}

// Run ticks the board p.Turns times without drawing and reports progress on
// events, which it closes when done. Keys: 'r' randomizes on the next tick,
// 'p' toggles pause, 'q' stops early.
func Run(p golUtils.Params, rng RandomSource, events chan<- Event, keyPresses <-chan rune) {
	game := NewGame(p, rng)
	life := game.Automaton()

	tickerEnd := make(chan bool)
	tickerNotify := make(chan bool)
	go tick(tickerEnd, tickerNotify)

	events <- StateChange{0, Executing}

	randomize := false
	quit := false
	for !quit && game.Turn() < p.Turns {
		select {
		case key := <-keyPresses:
			switch key {
			case 'r':
				randomize = true
			case 'q':
				quit = true
				continue
			case 'p':
				events <- StateChange{game.Turn(), Paused}
				quit = waitForResume(keyPresses)
				if quit {
					continue
				}
				events <- StateChange{game.Turn(), Executing}
			}
		case <-tickerNotify:
			events <- AliveCellsCount{game.Turn(), life.CountAlive()}
		default:
		}

		game.Tick(randomize, nil)
		randomize = false
		events <- TurnComplete{game.Turn()}
	}

	close(tickerEnd)

	events <- FinalTurnComplete{game.Turn(), life.AliveCells()}
	events <- StateChange{game.Turn(), Quitting}

	close(events)
}

// waitForResume blocks until 'p' is pressed again. It reports true if the
// run should stop instead.
func waitForResume(keyPresses <-chan rune) bool {
	for key := range keyPresses {
		switch key {
		case 'p':
			return false
		case 'q':
			return true
		}
	}
	return true
}
