package platform

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/adrichey/chip8-display/emulator"
)

// Colors of lit and unlit pixels in the RGBA8888 streaming texture.
const (
	PIXEL_COLOR_ON  uint32 = 0xFFFFFFFF
	PIXEL_COLOR_OFF uint32 = 0x00000000
)

/*
Window presents the display in an SDL window.

The display is copied into a VIDEO_WIDTH x VIDEO_HEIGHT streaming texture every frame and SDL scales
the texture to the window, which is Scale times the display size.
*/
type Window struct {
	Scale  int32
	Keypad Keypad

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	frame    [emulator.VIDEO_WIDTH * emulator.VIDEO_HEIGHT]uint32
}

// NewWindow returns an SDL presenter. The window is created by Init.
func NewWindow(scale int32) *Window {
	return &Window{Scale: scale}
}

func (w *Window) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	winWidth, winHeight := emulator.VIDEO_WIDTH*w.Scale, emulator.VIDEO_HEIGHT*w.Scale

	window, err := sdl.CreateWindow(WINDOW_TITLE, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	w.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.Shutdown()
		return fmt.Errorf("creating renderer: %w", err)
	}
	w.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING, emulator.VIDEO_WIDTH, emulator.VIDEO_HEIGHT)
	if err != nil {
		w.Shutdown()
		return fmt.Errorf("creating texture: %w", err)
	}
	w.texture = texture

	return nil
}

// Shutdown destroys the texture, renderer and window in reverse order of creation.
func (w *Window) Shutdown() {
	if w.texture != nil {
		_ = w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		_ = w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}

func (w *Window) ProcessInput() bool {
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if w.handleEvent(event) {
			quit = true
		}
	}

	return quit
}

// handleEvent updates the keypad from a keyboard event and returns true when the event asks to quit.
func (w *Window) handleEvent(event sdl.Event) bool {
	switch t := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.KeyboardEvent:
		pressed := t.Type == sdl.KEYDOWN

		if t.Keysym.Sym == sdl.K_ESCAPE {
			return pressed
		}

		// SDL keycodes of letters and digits are their lower case characters
		if key, ok := KeypadKey(rune(t.Keysym.Sym)); ok {
			w.Keypad.Set(key, pressed)
		}
	}

	return false
}

func (w *Window) Present(d *emulator.Display) error {
	fillFrame(&w.frame, d)

	if err := w.texture.UpdateRGBA(nil, w.frame[:], emulator.VIDEO_WIDTH); err != nil {
		return fmt.Errorf("updating texture: %w", err)
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

// fillFrame converts the display state into texture pixels.
func fillFrame(frame *[emulator.VIDEO_WIDTH * emulator.VIDEO_HEIGHT]uint32, d *emulator.Display) {
	for k, on := range d.State() {
		if on {
			frame[k] = PIXEL_COLOR_ON
		} else {
			frame[k] = PIXEL_COLOR_OFF
		}
	}
}
