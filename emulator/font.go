package emulator

// GLYPH_HEIGHT is the number of rows in a built-in character.
const GLYPH_HEIGHT = 5

// Glyph is a built-in character. Only the upper nibble of each row is drawn, giving 4x5 pixels.
type Glyph [GLYPH_HEIGHT]byte

// glyphs is indexed by digit value and never written after initialization.
var glyphs = [16]Glyph{
	{0xF0, 0x90, 0x90, 0x90, 0xF0}, // 0
	{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
	{0xF0, 0x10, 0xF0, 0x80, 0xF0}, // 2
	{0xF0, 0x10, 0xF0, 0x10, 0xF0}, // 3
	{0x90, 0x90, 0xF0, 0x10, 0x10}, // 4
	{0xF0, 0x80, 0xF0, 0x10, 0xF0}, // 5
	{0xF0, 0x80, 0xF0, 0x90, 0xF0}, // 6
	{0xF0, 0x10, 0x20, 0x40, 0x40}, // 7
	{0xF0, 0x90, 0xF0, 0x90, 0xF0}, // 8
	{0xF0, 0x90, 0xF0, 0x10, 0xF0}, // 9
	{0xF0, 0x90, 0xF0, 0x90, 0x90}, // A
	{0xE0, 0x90, 0xE0, 0x90, 0xE0}, // B
	{0xF0, 0x80, 0x80, 0x80, 0xF0}, // C
	{0xE0, 0x90, 0x90, 0x90, 0xE0}, // D
	{0xF0, 0x80, 0xF0, 0x80, 0xF0}, // E
	{0xF0, 0x80, 0xF0, 0x80, 0x80}, // F
}

// LookupGlyph returns the glyph for one of the symbols 0-9 and A-F.
func LookupGlyph(symbol rune) (Glyph, bool) {
	switch {
	case symbol >= '0' && symbol <= '9':
		return glyphs[symbol-'0'], true
	case symbol >= 'A' && symbol <= 'F':
		return glyphs[symbol-'A'+10], true
	}
	return Glyph{}, false
}

// GlyphForDigit returns the glyph for a digit value between 0x0 and 0xF.
func GlyphForDigit(digit byte) (Glyph, bool) {
	if int(digit) >= len(glyphs) {
		return Glyph{}, false
	}
	return glyphs[digit], true
}

// Fontset returns all glyphs laid out back to back, digit 0 first.
func Fontset() [len(glyphs) * GLYPH_HEIGHT]byte {
	var fontset [len(glyphs) * GLYPH_HEIGHT]byte
	for k, g := range glyphs {
		copy(fontset[k*GLYPH_HEIGHT:], g[:])
	}
	return fontset
}
