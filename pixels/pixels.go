// Package pixels is an RGBA framebuffer that the window front ends upload
// to the screen once per frame.
package pixels

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	Background = color.RGBA{A: 0xff}
	Foreground = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
)

type Canvas struct {
	img *image.RGBA
	fg  *image.Uniform
	bg  *image.Uniform
}

func New(width, height int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		fg:  image.NewUniform(Foreground),
		bg:  image.NewUniform(Background),
	}
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Pix is the backing buffer, 4 bytes per pixel in RGBA order.
func (c *Canvas) Pix() []byte { return c.img.Pix }

func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Rect, c.bg, image.Point{}, draw.Src)
}

// FillRect paints the foreground colour, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, c.fg, image.Point{}, draw.Src)
}
