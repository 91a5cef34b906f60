package emulator

import "strings"

// PIXEL_ON and PIXEL_OFF are the text renderings of a lit and an unlit cell.
const PIXEL_ON = "■"
const PIXEL_OFF = " "

const pixelSeparator = " "

// PixelLocation is a point on the display. Values past the edges are valid and wrap around.
type PixelLocation struct {
	X uint
	Y uint
}

/*
Index maps the location onto the flat pixel array.

The coordinate space is toroidal: x wraps modulo VIDEO_WIDTH and y modulo VIDEO_HEIGHT, so
(64, 0) addresses the same cell as (0, 0) and (129, 66) lands on (1, 2). A sprite that runs off
one edge keeps drawing from the opposite edge instead of being clipped.
*/
func (p PixelLocation) Index() int {
	wrappedY := p.Y % VIDEO_HEIGHT
	wrappedX := p.X % VIDEO_WIDTH

	return int(wrappedX + wrappedY*VIDEO_WIDTH)
}

/*
DisplayError is the failure type of the display's mutation path.

No operation produces one today: every coordinate is accepted through the wraparound in Index.
SetPixel still returns error so a bounds-checked mode can add failures without changing callers.
*/
type DisplayError struct {
	Location PixelLocation
	Reason   string
}

func (e *DisplayError) Error() string {
	return "display: " + e.Reason
}

// Display is the monochrome framebuffer, stored row-major.
type Display struct {
	pixels [VIDEO_WIDTH * VIDEO_HEIGHT]bool
}

// NewDisplay returns a display with every pixel off.
func NewDisplay() *Display {
	return &Display{}
}

// Dimensions returns the number of columns and rows.
func (d *Display) Dimensions() (int, int) {
	return VIDEO_WIDTH, VIDEO_HEIGHT
}

// SetPixel sets the pixel at the provided location to value.
func (d *Display) SetPixel(pixel PixelLocation, value bool) error {
	d.pixels[pixel.Index()] = value
	return nil
}

// PixelAt returns the value (on or off) of the pixel at the provided location.
func (d *Display) PixelAt(pixel PixelLocation) bool {
	return d.pixels[pixel.Index()]
}

// State returns the backing pixel slice. Writes through it change the display.
func (d *Display) State() []bool {
	return d.pixels[:]
}

// Pixels returns a copy of the current pixel state.
func (d *Display) Pixels() [VIDEO_WIDTH * VIDEO_HEIGHT]bool {
	return d.pixels
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	for k := range d.pixels {
		d.pixels[k] = false
	}
}

// String renders the display one line per row, each pixel followed by a space.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(VIDEO_HEIGHT * (VIDEO_WIDTH*(len(PIXEL_ON)+len(pixelSeparator)) + 1))

	for row := 0; row < VIDEO_HEIGHT; row++ {
		for col := 0; col < VIDEO_WIDTH; col++ {
			if d.pixels[row*VIDEO_WIDTH+col] {
				sb.WriteString(PIXEL_ON)
			} else {
				sb.WriteString(PIXEL_OFF)
			}
			sb.WriteString(pixelSeparator)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
