package sdl

import (
	"fmt"

	"github.com/lifeview/gameoflife/pixels"
	"github.com/veandco/go-sdl2/sdl"
)

type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	canvas        *pixels.Canvas
}

func NewWindow(title string, width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err = renderer.SetLogicalSize(width, height); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		canvas:   pixels.New(int(width), int(height)),
	}, nil
}

func (w *Window) Destroy() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// FillRect draws into the frame being built; it shows on RenderFrame.
func (w *Window) FillRect(x, y, width, height int) {
	w.canvas.FillRect(x, y, width, height)
}

func (w *Window) ClearPixels() {
	w.canvas.Clear()
}

func (w *Window) RenderFrame() error {
	if err := w.texture.Update(nil, w.canvas.Pix(), w.canvas.Width()*4); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *Window) PollEvent() sdl.Event {
	return sdl.PollEvent()
}
