package gol

import (
	"math/rand"
	"time"

	"github.com/lifeview/gameoflife/golUtils"
)

// RandomSource is the entropy used by Randomize. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// NewClockSource seeds from the given clock, normally time.Now.
func NewClockSource(now func() time.Time) RandomSource {
	return NewSeededSource(now().UnixNano())
}

// SourceFor uses p.Seed when set and now otherwise.
func SourceFor(p golUtils.Params, now func() time.Time) RandomSource {
	if p.Seed != 0 {
		return NewSeededSource(p.Seed)
	}
	return NewClockSource(now)
}
