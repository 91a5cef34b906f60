// Package emulator holds the display side of a CHIP-8 machine: the 64x32 monochrome
// framebuffer, the built-in hexadecimal glyphs and the sprite drawing used by an interpreter.
package emulator

import (
	"errors"
	"fmt"
)

/*
The CHIP-8 has 4096 bytes of memory, meaning the address space is from 0x000 to 0xFFF.
The address space is segmented into three sections:

	0x000-0x1FF: Originally reserved for the CHIP-8 interpreter. Except for...
	0x050-0x0A0: Storage space for the 16 built-in characters (0 through F), which an interpreter copies into its memory because ROMs will be looking for those characters.
	0x200-0xFFF: Instructions from the ROM are stored starting at 0x200, and anything left after the ROM's space is free to use.

The interpreter itself lives outside this package. It owns a Display and a memory image and
uses LoadFontset to place the glyphs where programs expect them.
*/
const START_ADDRESS uint = 0x200
const FONTSET_START_ADDRESS uint = 0x50

const MEMORY_SIZE = 4096

const VIDEO_HEIGHT = 32
const VIDEO_WIDTH = 64

// ErrMemoryTooSmall is returned when a memory image cannot hold the fontset.
var ErrMemoryTooSmall = errors.New("memory image too small for fontset")

// LoadFontset copies the built-in glyphs into memory starting at FONTSET_START_ADDRESS.
func LoadFontset(memory []byte) error {
	fontset := Fontset()

	end := FONTSET_START_ADDRESS + uint(len(fontset))
	if uint(len(memory)) < end {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrMemoryTooSmall, end, len(memory))
	}

	for k, v := range fontset {
		memory[FONTSET_START_ADDRESS+uint(k)] = v
	}

	return nil
}
