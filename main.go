// Package main shows the CHIP-8 display on a text stream, a terminal or an SDL window.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"unicode/utf8"

	"github.com/adrichey/chip8-display/emulator"
	"github.com/adrichey/chip8-display/internal/cli"
	"github.com/adrichey/chip8-display/internal/config"
	"github.com/adrichey/chip8-display/platform"
	"github.com/retroenv/retrogolib/log"
)

func init() {
	// SDL calls have to be made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := cli.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		} else {
			logger := config.CreateLogger(opts.Debug, opts.Quiet)
			logger.Error("Invalid options", err)
		}
		return 1
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	display := emulator.NewDisplay()
	if err := drawDemo(display, opts, logger); err != nil {
		logger.Error("Drawing demo failed", err)
		return 1
	}

	if opts.Frontend == config.FrontendText {
		if err := presentOnce(platform.NewText(os.Stdout), display); err != nil {
			logger.Error("Presenting display failed", err)
			return 1
		}
		return 0
	}

	presenter, err := newPresenter(opts)
	if err != nil {
		logger.Error("Creating frontend failed", err, log.String("frontend", opts.Frontend))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("Presenting display", log.String("frontend", opts.Frontend), log.Int("fps", opts.FPS))
	if err := platform.Run(ctx, presenter, display, logger, opts.FPS); err != nil {
		logger.Error("Presenting display failed", err)
		return 1
	}
	return 0
}

func newPresenter(opts config.Options) (platform.Presenter, error) {
	switch opts.Frontend {
	case config.FrontendTerminal:
		return platform.NewTerminal()
	case config.FrontendSDL:
		return platform.NewWindow(int32(opts.Scale)), nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

func presentOnce(p platform.Presenter, d *emulator.Display) error {
	if err := p.Init(); err != nil {
		return err
	}
	defer p.Shutdown()

	return p.Present(d)
}

// drawDemo puts a picture on the display, either the message drawn with the built-in glyphs
// or two single pixels.
func drawDemo(d *emulator.Display, opts config.Options, logger *log.Logger) error {
	switch opts.Demo {
	case config.DemoPixels:
		for _, loc := range []emulator.PixelLocation{{X: 0, Y: 0}, {X: 12, Y: 12}} {
			if err := d.SetPixel(loc, true); err != nil {
				return fmt.Errorf("setting pixel: %w", err)
			}
		}

	case config.DemoGlyphs:
		drawn, err := emulator.DrawText(d, opts.Message, 0, 0, uint(opts.Spacing))
		if err != nil {
			return fmt.Errorf("drawing message: %w", err)
		}
		if skipped := utf8.RuneCountInString(opts.Message) - drawn; skipped > 0 {
			logger.Warn("Message contains characters without a glyph", log.Int("skipped", skipped))
		}
		logger.Debug("Message drawn", log.String("message", opts.Message), log.Int("glyphs", drawn))
	}

	return nil
}
