// Package app resolves color arguments with the colorterm package and prints them as colored
// terminal output, JSON lines or YAML documents.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/jkbrsn/colorterm"
	"github.com/rs/zerolog"
)

// Printer resolves color arguments and prints them, applying different layouts based on the
// settings passed to the struct.
type Printer struct {
	// Output
	Mode      string // Display mode: "info", "shades" or "complementary"
	Format    string // Output formatting mode: "text", "json" or "yaml"
	ColorMode string // Color behavior: "auto", "always", or "never"
	Copy      bool   // Copy the hex of the last color to the clipboard

	Out io.Writer // Defaults to os.Stdout
	Err io.Writer // Defaults to os.Stderr

	// Log receives diagnostics. The zero value discards them.
	Log zerolog.Logger

	// WriteClipboard replaces the system clipboard. Defaults to clipboard.WriteAll.
	WriteClipboard func(text string) error

	// The colors produced by a Resolve call. Overwritten if the function is called again.
	Entries []Entry
}

// Validate checks that the mode, format and color mode hold accepted values. Empty values
// select the defaults.
func (p *Printer) Validate() error {
	if p.Mode != "" && !slices.Contains(Modes, p.Mode) {
		return fmt.Errorf("invalid mode '%s'", p.Mode)
	}
	if p.Format != "" && !slices.Contains(Formats, p.Format) {
		return fmt.Errorf("invalid format '%s'", p.Format)
	}
	if p.ColorMode != "" && !slices.Contains(ColorModes, p.ColorMode) {
		return fmt.Errorf("invalid color mode '%s'", p.ColorMode)
	}
	return nil
}

// Resolve parses each input into a color and appends random additional colors. Inputs that
// cannot be parsed are reported on the error writer and skipped; the returned error joins
// every rejection and is nil when all inputs were accepted.
func (p *Printer) Resolve(inputs []string, random int) error {
	log := p.logger()
	p.Entries = nil

	var errs []error
	for _, input := range inputs {
		c, err := parseInput(input)
		if err != nil {
			log.Debug().Str("input", input).Err(err).Msg("rejected input")
			fmt.Fprintln(p.errWriter(), describeError(input, err))
			errs = append(errs, err)
			continue
		}
		log.Debug().Str("input", input).Str("hex", c.Hex()).Msg("resolved input")
		p.Entries = append(p.Entries, Entry{Input: input, Color: c})
	}

	for range random {
		c := colorterm.RandomRGB()
		log.Debug().Str("hex", c.Hex()).Msg("generated random color")
		p.Entries = append(p.Entries, Entry{Input: keywordRandom, Color: c})
	}

	log.Info().Int("colors", len(p.Entries)).Int("rejected", len(errs)).Msg("resolved inputs")
	return errors.Join(errs...)
}

// Print renders the resolved colors in the configured format and mode.
func (p *Printer) Print() error {
	log := p.logger()
	log.Debug().
		Str("mode", p.Mode).
		Str("format", p.Format).
		Int("colors", len(p.Entries)).
		Msg("printing")

	switch p.Format {
	case FormatJSON:
		return p.printJSON()
	case FormatYAML:
		return p.printYAML()
	default:
		p.printText()
		return nil
	}
}

// CopyLast writes the hex form of the last resolved color to the clipboard if copying is
// enabled. It does nothing when no color was resolved.
func (p *Printer) CopyLast() error {
	if !p.Copy || len(p.Entries) == 0 {
		return nil
	}

	hex := p.Entries[len(p.Entries)-1].Color.Hex()
	write := p.WriteClipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(hex); err != nil {
		return fmt.Errorf("error copying %s to clipboard: %w", hex, err)
	}

	log := p.logger()
	log.Info().Str("hex", hex).Msg("copied to clipboard")
	return nil
}

func (p *Printer) logger() zerolog.Logger {
	return p.Log.With().Str("pkg", "app").Logger()
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Printer) errWriter() io.Writer {
	if p.Err == nil {
		return os.Stderr
	}
	return p.Err
}

// parseInput parses a single argument; the keyword "random" in any case yields a random color.
func parseInput(input string) (colorterm.RGB, error) {
	if strings.EqualFold(input, keywordRandom) {
		return colorterm.RandomRGB(), nil
	}
	return colorterm.Parse(input)
}

// describeError returns the user-facing message for a rejected input.
func describeError(input string, err error) string {
	var parseErr *colorterm.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Unable to parse %s component for '%s'", parseErr.Component, input)
	}
	return fmt.Sprintf("Unknown format '%s'", input)
}
