package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/adrichey/chip8-display/internal/config"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseArgsDefaults(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseArgs("chip8-display", nil, &out)
	assert.NoError(t, err)
	assert.Equal(t, config.DefaultOptions(), opts)
	assert.Equal(t, "", out.String())
}

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseArgs("chip8-display", []string{
		"-frontend", "terminal", "-scale", "4", "-fps", "30",
		"-demo", "pixels", "-m", "beef", "-spacing", "6", "-debug",
	}, &out)
	assert.NoError(t, err)

	assert.Equal(t, config.FrontendTerminal, opts.Frontend)
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, 30, opts.FPS)
	assert.Equal(t, config.DemoPixels, opts.Demo)
	assert.Equal(t, "BEEF", opts.Message)
	assert.Equal(t, 6, opts.Spacing)
	assert.True(t, opts.Debug)
	assert.False(t, opts.Quiet)
}

func TestParseArgsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "frontend", args: []string{"-frontend", "vga"}, wantErr: errUnknownFrontend},
		{name: "demo", args: []string{"-demo", "snake"}, wantErr: errUnknownDemo},
		{name: "scale", args: []string{"-scale", "0"}, wantErr: errInvalidValue},
		{name: "scale too large", args: []string{"-scale", "65"}, wantErr: errInvalidValue},
		{name: "scale overflowing window size", args: []string{"-scale", "2147483647"}, wantErr: errInvalidValue},
		{name: "fps", args: []string{"-fps", "-1"}, wantErr: errInvalidValue},
		{name: "spacing", args: []string{"-spacing", "-2"}, wantErr: errInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ParseArgs("chip8-display", tt.args, &out)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestParseArgsLargestScale(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseArgs("chip8-display", []string{"-scale", "64"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, 64, opts.Scale)
}

func TestParseArgsUsageError(t *testing.T) {
	for _, args := range [][]string{{"-nope"}, {"rom.ch8"}, {"-h"}} {
		var out bytes.Buffer
		_, err := ParseArgs("chip8-display", args, &out)

		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))

		usageErr.ShowUsage()
		assert.True(t, strings.Contains(out.String(), "usage: chip8-display [options]"))
		assert.True(t, strings.Contains(out.String(), "-frontend"))
	}
}
