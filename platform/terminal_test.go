package platform

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/adrichey/chip8-display/emulator"
	"github.com/retroenv/retrogolib/assert"
)

func newSimulationTerminal(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	assert.NoError(t, term.Init())
	screen.SetSize(width, height)
	t.Cleanup(term.Shutdown)

	return term, screen
}

func contentAt(screen tcell.SimulationScreen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return mainc
}

func TestTerminalPresent(t *testing.T) {
	term, screen := newSimulationTerminal(t, 140, 40)

	d := emulator.NewDisplay()
	assert.NoError(t, d.SetPixel(emulator.PixelLocation{X: 0, Y: 0}, true))
	assert.NoError(t, d.SetPixel(emulator.PixelLocation{X: 63, Y: 31}, true))
	assert.NoError(t, term.Present(d))

	// box is 130 wide, centered in 140 columns
	left, top := 5, 1

	title := ""
	for x := 0; x < 140; x++ {
		if r := contentAt(screen, x, 0); r != ' ' && r != 0 {
			title += string(r)
		}
	}
	assert.Equal(t, "Chip-8Emulator", title)

	assert.Equal(t, tcell.RuneULCorner, contentAt(screen, left, top))
	assert.Equal(t, tcell.RuneLRCorner, contentAt(screen, left+129, top+33))
	assert.Equal(t, 'D', contentAt(screen, left+1, top))

	assert.Equal(t, '■', contentAt(screen, left+1, top+1))
	assert.Equal(t, ' ', contentAt(screen, left+3, top+1))
	assert.Equal(t, '■', contentAt(screen, left+1+63*2, top+32))
}

func TestTerminalPresentSmallScreen(t *testing.T) {
	term, _ := newSimulationTerminal(t, 20, 5)
	assert.NoError(t, term.Present(emulator.NewDisplay()))
}

func TestTerminalHandleEvent(t *testing.T) {
	term, _ := newSimulationTerminal(t, 80, 25)

	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, term.Keypad.Pressed(0x5))

	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))

	assert.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestTerminalProcessInputReleasesKeys(t *testing.T) {
	term, _ := newSimulationTerminal(t, 80, 25)

	term.Keypad.Set(0x3, true)
	assert.False(t, term.ProcessInput())
	assert.False(t, term.Keypad.Pressed(0x3))
}

func TestTerminalPresentShowsHeldKeys(t *testing.T) {
	term, screen := newSimulationTerminal(t, 140, 40)

	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.NoError(t, term.Present(emulator.NewDisplay()))

	// box spans rows 1 to 34, the keys line follows at the box's left column
	line := ""
	for x := 5; x < 5+len(keysLabel)+2; x++ {
		line += string(contentAt(screen, x, 35))
	}
	assert.Equal(t, "Keys: 05", line)
}
