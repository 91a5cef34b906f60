// Package platform presents a CHIP-8 display to the user and collects keypad input.
package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/adrichey/chip8-display/emulator"
	"github.com/retroenv/retrogolib/log"
)

const WINDOW_TITLE = "Chip-8 Emulator"

// Presenter is a front-end that shows a display and reads input.
type Presenter interface {
	// Init prepares the output surface.
	Init() error
	// ProcessInput handles pending input events and returns true when the user asked to quit.
	ProcessInput() bool
	// Present shows the current state of the display.
	Present(d *emulator.Display) error
	// Shutdown releases the output surface.
	Shutdown()
}

/*
Key Mappings:
Keypad       Keyboard
+-+-+-+-+    +-+-+-+-+
|1|2|3|C|    |1|2|3|4|
+-+-+-+-+    +-+-+-+-+
|4|5|6|D|    |Q|W|E|R|
+-+-+-+-+ => +-+-+-+-+
|7|8|9|E|    |A|S|D|F|
+-+-+-+-+    +-+-+-+-+
|A|0|B|F|    |Z|X|C|V|
+-+-+-+-+    +-+-+-+-+
*/
var keyLayout = map[rune]byte{
	'x': 0x0,
	'1': 0x1,
	'2': 0x2,
	'3': 0x3,
	'q': 0x4,
	'w': 0x5,
	'e': 0x6,
	'a': 0x7,
	's': 0x8,
	'd': 0x9,
	'z': 0xA,
	'c': 0xB,
	'4': 0xC,
	'r': 0xD,
	'f': 0xE,
	'v': 0xF,
}

// KeypadKey returns the keypad key bound to a keyboard character.
func KeypadKey(r rune) (byte, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok := keyLayout[r]
	return k, ok
}

// Keypad holds the state of the 16 hexadecimal keys, 1 meaning pressed.
// Front-ends write it while processing input. An interpreter reads it for the skip-if-key and
// wait-for-key instructions, and the terminal front-end shows the held keys below the display.
type Keypad [16]byte

// Set updates the state of key.
func (k *Keypad) Set(key byte, pressed bool) {
	var s byte
	if pressed {
		s = 1
	}
	k[key&0xF] = s
}

// Pressed reports whether key is held down.
func (k *Keypad) Pressed(key byte) bool {
	return k[key&0xF] != 0
}

// String lists the held keys as hexadecimal digits, lowest first.
func (k *Keypad) String() string {
	var held []byte
	for key, s := range k {
		if s != 0 {
			held = append(held, "0123456789ABCDEF"[key])
		}
	}
	return string(held)
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	for i := range k {
		k[i] = 0
	}
}

/*
Run is the presentation loop. With each iteration input is processed, the display is presented and
the loop waits for the next frame. It returns nil when the user quits or ctx is cancelled.

The presenter is initialized and shut down by Run.
*/
func Run(ctx context.Context, p Presenter, d *emulator.Display, logger *log.Logger, fps int) error {
	if fps < 1 {
		return fmt.Errorf("invalid frame rate %d", fps)
	}

	if err := p.Init(); err != nil {
		return fmt.Errorf("initializing presenter: %w", err)
	}
	defer p.Shutdown()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frames := 0
	for {
		if p.ProcessInput() {
			logger.Debug("Quit requested", log.Int("frames", frames))
			return nil
		}

		if err := p.Present(d); err != nil {
			return fmt.Errorf("presenting frame %d: %w", frames, err)
		}
		frames++

		select {
		case <-ctx.Done():
			logger.Debug("Presentation cancelled", log.Int("frames", frames))
			return nil
		case <-ticker.C:
		}
	}
}
