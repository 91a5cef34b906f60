// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/adrichey/chip8-display/internal/config"
)

// maxScale keeps the SDL window size within int32 and reasonable screen sizes.
const maxScale = 64

var (
	errUnknownFrontend = errors.New("unknown frontend")
	errUnknownDemo     = errors.New("unknown demo")
	errInvalidValue    = errors.New("invalid value")
)

// ParseArgs parses the command line arguments, without the program name.
func ParseArgs(name string, args []string, output io.Writer) (config.Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {}

	opts := config.DefaultOptions()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if flags.NArg() > 0 {
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("unexpected argument %q", flags.Arg(0))}
	}

	if err := validateOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *config.Options) {
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "display frontend: text, terminal or sdl")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, fmt.Sprintf("pixel size of the sdl window, 1 to %d", maxScale))
	flags.IntVar(&opts.FPS, "fps", opts.FPS, "frames presented per second")
	flags.StringVar(&opts.Demo, "demo", opts.Demo, "picture to draw: glyphs or pixels")
	flags.StringVar(&opts.Message, "m", opts.Message, "hexadecimal characters drawn by the glyphs demo")
	flags.IntVar(&opts.Spacing, "spacing", opts.Spacing, "horizontal distance between drawn characters")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// validateOptions checks option values and normalizes the message to upper case.
func validateOptions(opts *config.Options) error {
	switch opts.Frontend {
	case config.FrontendText, config.FrontendTerminal, config.FrontendSDL:
	default:
		return fmt.Errorf("%w '%s'", errUnknownFrontend, opts.Frontend)
	}

	switch opts.Demo {
	case config.DemoGlyphs, config.DemoPixels:
	default:
		return fmt.Errorf("%w '%s'", errUnknownDemo, opts.Demo)
	}

	if opts.Scale < 1 || opts.Scale > maxScale {
		return fmt.Errorf("%w: scale %d", errInvalidValue, opts.Scale)
	}
	if opts.FPS < 1 {
		return fmt.Errorf("%w: fps %d", errInvalidValue, opts.FPS)
	}
	if opts.Spacing < 0 {
		return fmt.Errorf("%w: spacing %d", errInvalidValue, opts.Spacing)
	}

	opts.Message = strings.ToUpper(opts.Message)
	return nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text to the flag set output.
func (e *UsageError) ShowUsage() {
	fmt.Fprintf(e.flags.Output(), "usage: %s [options]\n\n", e.flags.Name())
	e.flags.PrintDefaults()
	fmt.Fprintln(e.flags.Output())
}
