package gol

import (
	"fmt"

	"github.com/lifeview/gameoflife/util"
)

// Event represents any Game of Life event that the headless run emits.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// AliveCellsCount is sent every 2 seconds.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// StateChange is sent whenever the run pauses, resumes or quits.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// TurnComplete is sent after every tick.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete carries the alive cells after the last tick.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return ""
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete, %v alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
