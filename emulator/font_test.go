package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookupGlyph(t *testing.T) {
	g, ok := LookupGlyph('A')
	assert.True(t, ok)
	assert.Equal(t, Glyph{0xF0, 0x90, 0xF0, 0x90, 0x90}, g)

	g, ok = LookupGlyph('0')
	assert.True(t, ok)
	assert.Equal(t, Glyph{0xF0, 0x90, 0x90, 0x90, 0xF0}, g)

	g, ok = LookupGlyph('F')
	assert.True(t, ok)
	assert.Equal(t, Glyph{0xF0, 0x80, 0xF0, 0x80, 0x80}, g)

	for _, symbol := range []rune{'G', 'a', 'f', ' ', '/', ':', '@', '■'} {
		_, ok = LookupGlyph(symbol)
		assert.False(t, ok)
	}
}

func TestLookupGlyphMatchesDigits(t *testing.T) {
	for k, symbol := range "0123456789ABCDEF" {
		byRune, ok := LookupGlyph(symbol)
		assert.True(t, ok)

		byDigit, ok := GlyphForDigit(byte(k))
		assert.True(t, ok)
		assert.Equal(t, byDigit, byRune)

		for _, row := range byRune {
			assert.Equal(t, byte(0), row&0x0F)
		}
	}

	_, ok := GlyphForDigit(16)
	assert.False(t, ok)
}

func TestGlyphCopyDoesNotMutateTable(t *testing.T) {
	g, _ := LookupGlyph('8')
	g[0] = 0x00

	again, _ := LookupGlyph('8')
	assert.Equal(t, byte(0xF0), again[0])
}

func TestFontset(t *testing.T) {
	fontset := Fontset()
	assert.Equal(t, 80, len(fontset))

	a, _ := LookupGlyph('A')
	assert.Equal(t, a[:], fontset[10*GLYPH_HEIGHT:11*GLYPH_HEIGHT])
}
