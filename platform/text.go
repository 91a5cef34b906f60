package platform

import (
	"fmt"
	"io"

	"github.com/adrichey/chip8-display/emulator"
)

// Text writes the rendered display to a writer every time it is presented.
type Text struct {
	w io.Writer
}

// NewText returns a presenter writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Init() error {
	return nil
}

// ProcessInput never requests a quit, text output has no input.
func (t *Text) ProcessInput() bool {
	return false
}

func (t *Text) Present(d *emulator.Display) error {
	if _, err := io.WriteString(t.w, d.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

func (t *Text) Shutdown() {}
