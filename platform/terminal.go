package platform

import (
	"github.com/gdamore/tcell/v2"

	"github.com/adrichey/chip8-display/emulator"
)

const displayBoxTitle = "Display"
const keysLabel = "Keys: "

// cellWidth is the number of terminal columns used per display pixel.
const cellWidth = 2

// Terminal presents the display on a text terminal using tcell.
// Terminals do not report key releases, so a key is held for the frame in which it was typed.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	Keypad Keypad
}

// NewTerminal creates a terminal presenter on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal presenter on an existing screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()

	t.events = make(chan tcell.Event, 16)
	t.done = make(chan struct{})
	go t.forwardEvents(t.events, t.done)

	return nil
}

// forwardEvents moves events from the blocking PollEvent onto a channel the frame loop can drain.
func (t *Terminal) forwardEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *Terminal) Shutdown() {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	t.screen.Fini()
}

func (t *Terminal) ProcessInput() bool {
	t.Keypad.Reset()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return true
			}
			if t.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if key, ok := KeypadKey(ev.Rune()); ok {
				t.Keypad.Set(key, true)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}

	return false
}

func (t *Terminal) Present(d *emulator.Display) error {
	t.screen.Clear()

	width, _ := t.screen.Size()
	t.drawTitle(width)
	left, bottom := t.drawDisplay(d, width)
	t.drawString(left, bottom+1, keysLabel+t.Keypad.String(), tcell.StyleDefault)

	t.screen.Show()
	return nil
}

func (t *Terminal) drawTitle(width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	x := (width - len(WINDOW_TITLE)) / 2
	if x < 0 {
		x = 0
	}
	t.drawString(x, 0, WINDOW_TITLE, style)
}

// drawDisplay renders the pixels inside a box placed below the title and returns the left column
// and bottom row of the box.
func (t *Terminal) drawDisplay(d *emulator.Display, width int) (int, int) {
	cols, rows := d.Dimensions()
	boxWidth := cols*cellWidth + 2
	boxHeight := rows + 2

	left := (width - boxWidth) / 2
	if left < 0 {
		left = 0
	}
	top := 1

	t.drawBox(left, top, boxWidth, boxHeight, displayBoxTitle)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	on := []rune(emulator.PIXEL_ON)[0]
	off := []rune(emulator.PIXEL_OFF)[0]

	state := d.State()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := off
			if state[y*cols+x] {
				r = on
			}
			sx := left + 1 + x*cellWidth
			sy := top + 1 + y
			t.screen.SetContent(sx, sy, r, nil, style)
			t.screen.SetContent(sx+1, sy, ' ', nil, style)
		}
	}

	return left, top + boxHeight - 1
}

func (t *Terminal) drawBox(left, top, width, height int, title string) {
	style := tcell.StyleDefault
	right := left + width - 1
	bottom := top + height - 1

	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	t.drawString(left+1, top, title, style)
}

func (t *Terminal) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
