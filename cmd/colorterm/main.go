// Package main parses and validates the flags and colors passed to the program, and then
// prints each color with its conversions, shades or harmony sets using the internal printer.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jkbrsn/colorterm/internal/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "unknown"

// errInputRejected is returned when at least one color argument could not be parsed. The
// rejections have already been reported, so main exits without printing it again.
var errInputRejected = errors.New("one or more inputs were rejected")

func main() {
	err := newRootCmd().Execute()
	if errors.Is(err, errInputRejected) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command with its flags bound to a fresh set of options.
func newRootCmd() *cobra.Command {
	opts := newOptions()

	cmd := &cobra.Command{
		Use:   "colorterm [flags] <color>...",
		Short: "Inspect colors and their harmonies in the terminal",
		Long: `colorterm converts colors between RGB, HSL and HSV and previews them with
24-bit ANSI colors.

Colors are given as hex ("#0080FF", "0080ff", "#fff") or comma-separated decimal
("0,128,255") text. The keyword "random" stands for a random color.

By default each color is printed with its hex, RGB, HSV and HSL forms. --shades
prints a 16-step lightness ramp and --complementary prints the triad, tetradic,
analogous, split-complementary and shade sets.`,
		Version: version,
		// Input errors are reported by the printer; configuration errors by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(opts, args)
			if err != nil {
				return err
			}
			if !cfg.wantsColors() {
				return cmd.Help()
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate(`{{printf "colorterm version %s\n" .Version}}`)
	opts.register(cmd.Flags())

	return cmd
}

// run resolves and prints the configured colors, then copies the last one if requested.
func run(cfg *Config, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.Verbosity)

	printer := &app.Printer{
		Mode:      cfg.Mode,
		Format:    cfg.Format,
		ColorMode: cfg.ColorMode,
		Copy:      cfg.Copy,
		Out:       stdout,
		Err:       stderr,
		Log:       logger,
	}

	if err := printer.Validate(); err != nil {
		return fmt.Errorf("error in output settings: %w", err)
	}

	resolveErr := printer.Resolve(cfg.Inputs, cfg.Random)
	if resolveErr != nil {
		logger.Debug().Err(resolveErr).Msg("inputs rejected")
	}

	if err := printer.Print(); err != nil {
		return fmt.Errorf("error printing colors: %w", err)
	}

	if err := printer.CopyLast(); err != nil {
		return err
	}

	if resolveErr != nil {
		return errInputRejected
	}
	return nil
}

// newLogger returns a console logger on w. The level is warn by default, info with -v and
// debug with -vv or more.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
