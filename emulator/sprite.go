package emulator

import (
	"errors"
	"fmt"
)

// ErrNoGlyph is returned when a symbol has no built-in character.
var ErrNoGlyph = errors.New("no glyph for symbol")

/*
DrawSprite XORs a sprite onto the display with its top left corner at (x, y) and reports collision.

Sprites are eight pixels wide: row i is drawn at y+i with bit 7 at x and bit 0 at x+7. If a sprite
pixel is on and the screen pixel in the same location is already set, the screen pixel is turned off
and a collision is reported. Locations past the edges wrap around through PixelLocation.Index.
Drawing stops at the first pixel the display refuses.
*/
func DrawSprite(d *Display, x, y uint, rows []byte) (bool, error) {
	collision := false

	for row, sprite := range rows {
		for col := uint(0); col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			loc := PixelLocation{X: x + col, Y: y + uint(row)}
			on := d.PixelAt(loc)
			if on {
				collision = true
			}

			if err := d.SetPixel(loc, !on); err != nil {
				return collision, err
			}
		}
	}

	return collision, nil
}

// DrawGlyph draws the built-in character for symbol. The display is untouched and ErrNoGlyph
// is returned when symbol has no glyph.
func DrawGlyph(d *Display, symbol rune, x, y uint) (bool, error) {
	glyph, ok := LookupGlyph(symbol)
	if !ok {
		return false, fmt.Errorf("%w %q", ErrNoGlyph, symbol)
	}
	return DrawSprite(d, x, y, glyph[:])
}

// DrawText draws each symbol of text, advancing x by spacing per character. Symbols without a
// glyph are skipped without advancing. It returns the number of glyphs drawn.
func DrawText(d *Display, text string, x, y, spacing uint) (int, error) {
	drawn := 0
	for _, symbol := range text {
		_, err := DrawGlyph(d, symbol, x, y)
		if errors.Is(err, ErrNoGlyph) {
			continue
		}
		if err != nil {
			return drawn, err
		}
		x += spacing
		drawn++
	}
	return drawn, nil
}
