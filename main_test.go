package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
)

func TestPrintEventsNeedsFinalTurn(t *testing.T) {
	events := make(chan gol.Event, 2)
	events <- gol.StateChange{CompletedTurns: 0, NewState: gol.Executing}
	events <- gol.TurnComplete{CompletedTurns: 1}
	close(events)

	var out bytes.Buffer
	if err := printEvents(&out, events); err == nil {
		t.Error("printEvents returned nil without a FinalTurnComplete")
	}
	if !strings.Contains(out.String(), "Executing") {
		t.Errorf("output %q does not report the state change", out.String())
	}
}

func TestPrintEventsFinalTurn(t *testing.T) {
	events := make(chan gol.Event, 2)
	events <- gol.FinalTurnComplete{CompletedTurns: 5}
	events <- gol.StateChange{CompletedTurns: 5, NewState: gol.Quitting}
	close(events)

	var out bytes.Buffer
	if err := printEvents(&out, events); err != nil {
		t.Fatalf("printEvents returned %v", err)
	}
	if !strings.Contains(out.String(), "Final Turn Complete") {
		t.Errorf("output %q does not report the final turn", out.String())
	}
}

func TestRunHeadless(t *testing.T) {
	p := golUtils.DefaultParams()
	p.Turns = 20
	if err := runHeadless(p, gol.NewSeededSource(1)); err != nil {
		t.Errorf("runHeadless returned %v", err)
	}
}
