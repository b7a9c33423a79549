// Package raylib draws the board with raylib, including the help text and
// FPS overlay.
package raylib

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
)

const help = "SPACE: Randomize"

// canvas forwards cell rectangles to a rectangle drawing function, normally
// rl.DrawRectangle. It is only valid between BeginDrawing and EndDrawing.
type canvas struct {
	drawRect func(posX, posY, width, height int32, col color.RGBA)
	col      color.RGBA
}

func newCanvas(drawRect func(posX, posY, width, height int32, col color.RGBA)) canvas {
	return canvas{drawRect: drawRect, col: rl.RayWhite}
}

func (c canvas) FillRect(x, y, w, h int) {
	c.drawRect(int32(x), int32(y), int32(w), int32(h), c.col)
}

// Run opens the window and drives game until it is closed. It must be
// called from the main thread.
func Run(p golUtils.Params, game *gol.Game) error {
	rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(p.ScreenWidth), int32(p.ScreenHeight), "Game of Life")
	if !rl.IsWindowReady() {
		return errors.New("raylib: window not ready")
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(p.TargetFPS))

	c := newCanvas(rl.DrawRectangle)
	for !rl.WindowShouldClose() {
		randomize := rl.IsKeyPressed(rl.KeySpace)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		game.Tick(randomize, c)

		rl.DrawText(help, 10, 10, 20, rl.Gray)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}
	return nil
}
