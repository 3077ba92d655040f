package main

import (
	"errors"

	"github.com/jkbrsn/colorterm/internal/app"
	"github.com/spf13/pflag"
)

// Config holds all configuration parsed from command-line flags.
type Config struct {
	Inputs    []string
	Random    int
	Mode      string
	Format    string
	ColorMode string
	Copy      bool
	Verbosity int
}

// options holds the raw flag values before validation.
type options struct {
	shades        bool
	complementary bool
	random        int
	copy          bool
	verbosity     int
	format        *enumFlag
	color         *enumFlag
}

func newOptions() *options {
	return &options{
		format: newEnumFlag(app.FormatText, app.Formats),
		color:  newEnumFlag(app.ColorAuto, app.ColorModes),
	}
}

// register defines the flags on fs.
func (o *options) register(fs *pflag.FlagSet) {
	// Display mode
	fs.BoolVarP(&o.shades, "shades", "s", false, "print 16 shades of each color")
	fs.BoolVarP(&o.complementary, "complementary", "c", false,
		"print the harmony sets of each color")
	// Input
	fs.IntVarP(&o.random, "random", "r", 0, "add `N` random colors")
	// Output
	fs.VarP(o.format, "format", "f", "output format")
	fs.Var(o.color, "color", "when to color the output")
	fs.BoolVar(&o.copy, "copy", false, "copy the hex of the last color to the clipboard")
	// Verbosity
	fs.CountVarP(&o.verbosity, "verbose", "v", "log verbosity; repeat for more (-vv)")
}

// buildConfig validates the flag values and positional arguments and returns a Config.
func buildConfig(o *options, args []string) (*Config, error) {
	if o.shades && o.complementary {
		return nil, errors.New("--shades cannot be combined with --complementary")
	}

	if o.random < 0 {
		return nil, errors.New("--random must not be negative")
	}

	mode := app.ModeInfo
	switch {
	case o.shades:
		mode = app.ModeShades
	case o.complementary:
		mode = app.ModeComplementary
	}

	cfg := &Config{
		Inputs:    append([]string(nil), args...),
		Random:    o.random,
		Mode:      mode,
		Format:    o.format.Value(),
		ColorMode: o.color.Value(),
		Copy:      o.copy,
		Verbosity: o.verbosity,
	}

	return cfg, nil
}

// wantsColors reports whether the config asks for at least one color.
func (c *Config) wantsColors() bool {
	return len(c.Inputs) > 0 || c.Random > 0
}
