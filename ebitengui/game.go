// Package ebitengui drives a gol.Game from ebiten's update loop.
package ebitengui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lifeview/gameoflife/gol"
	"github.com/lifeview/gameoflife/golUtils"
	"github.com/lifeview/gameoflife/pixels"
	"golang.org/x/image/font/basicfont"
)

const help = "SPACE: Randomize"

var helpColor = color.Gray{Y: 0x82}

type Game struct {
	params golUtils.Params
	life   *gol.Game
	canvas *pixels.Canvas
}

func NewGame(p golUtils.Params, life *gol.Game) *Game {
	return &Game{
		params: p,
		life:   life,
		canvas: pixels.New(p.ScreenWidth, p.ScreenHeight),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	randomize := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	g.canvas.Clear()
	g.life.Tick(randomize, g.canvas)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.canvas.Pix())
	text.Draw(screen, help, basicfont.Face7x13, 10, 20, helpColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%0.f FPS", ebiten.ActualFPS()), 10, 40)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.params.ScreenWidth, g.params.ScreenHeight
}

// Run blocks until the window is closed.
func Run(p golUtils.Params, life *gol.Game) error {
	ebiten.SetWindowSize(p.ScreenWidth, p.ScreenHeight)
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(p.TargetFPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(p, life)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
