package golUtils

// Grid is a flat row-major board, indexed y*width + x.
type Grid []bool

// Params holds the construction parameters of a viewer.
type Params struct {
	GridWidth    int
	GridHeight   int
	ScreenWidth  int
	ScreenHeight int
	TargetFPS    int
	Turns        int   // only used by the headless run
	Seed         int64 // 0 seeds from the clock
}

func DefaultParams() Params {
	return Params{
		GridWidth:    64,
		GridHeight:   64,
		ScreenWidth:  800,
		ScreenHeight: 800,
		TargetFPS:    60,
	}
}

func MakeGrid(width, height int) Grid {
	return make(Grid, width*height)
}

// Clear sets every cell dead without reallocating.
func (g Grid) Clear() {
	for i := range g {
		g[i] = false
	}
}
