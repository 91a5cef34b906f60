// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// Front-ends the display can be presented with.
const (
	FrontendText     = "text"
	FrontendTerminal = "terminal"
	FrontendSDL      = "sdl"
)

// Demo pictures drawn before presenting.
const (
	DemoGlyphs = "glyphs"
	DemoPixels = "pixels"
)

// Options contains the program options.
type Options struct {
	Frontend string
	Scale    int
	FPS      int
	Demo     string
	Message  string
	Spacing  int

	Debug bool
	Quiet bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Frontend: FrontendText,
		Scale:    10,
		FPS:      60,
		Demo:     DemoGlyphs,
		Message:  "0123456789ABCDEF",
		Spacing:  5,
	}
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
