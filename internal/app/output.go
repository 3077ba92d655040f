package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jkbrsn/colorterm"
	"github.com/jkbrsn/colorterm/internal/app/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

var (
	printValueTemp = "%s: %s\n"
	printShadeTemp = "%s  %s  %s\n"

	boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	harmonyTitles = map[colorterm.Harmony]string{
		colorterm.Triad:              "Triad",
		colorterm.Tetradic:           "Tetradic",
		colorterm.Analogous:          "Analogous",
		colorterm.SplitComplementary: "Split",
		colorterm.Shades:             "Shades",
	}
)

// colorEnabled returns true if color output is enabled, based on both color mode and terminal
// detection.
func (p *Printer) colorEnabled() bool {
	switch p.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto, "":
	default:
		return false
	}

	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}

	f, ok := p.out().(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// paint returns the text with the style applied if color output is enabled.
func (p *Printer) paint(style colorterm.ANSI, text string) string {
	if !p.colorEnabled() {
		return text
	}
	return style.Paint(text)
}

// paintHex returns the hex form of c, painted on c if color output is enabled.
func (p *Printer) paintHex(c colorterm.RGB) string {
	if !p.colorEnabled() {
		return c.Hex()
	}
	return c.PaintHex()
}

// printText prints every entry in the configured display mode, separated by blank lines.
func (p *Printer) printText() {
	for i, entry := range p.Entries {
		if i > 0 {
			fmt.Fprintln(p.out())
		}
		switch p.Mode {
		case ModeShades:
			p.printShades(entry)
		case ModeComplementary:
			p.printComplementary(entry)
		default:
			p.printInfo(entry)
		}
	}
}

// printInfo prints a swatch of the color followed by its hex, RGB, HSV and HSL forms.
func (p *Printer) printInfo(entry Entry) {
	c := entry.Color
	values := infoValues(c)

	swatch := padSwatch(entry.Input, values)
	fmt.Fprintln(p.out(), p.paint(color.Swatch(c), swatch))
	for _, v := range values {
		fmt.Fprintf(p.out(), printValueTemp, p.paint(color.Label, v.label), v.value)
	}
}

// printShades prints the 16-step lightness ramp of the color, one shade per line.
func (p *Printer) printShades(entry Entry) {
	c := entry.Color
	fmt.Fprintln(p.out(), p.paint(color.Heading, "Shades of "+c.Hex()))

	hsl := c.HSL().Shades()
	for i, shade := range c.Shades() {
		fmt.Fprintf(p.out(), printShadeTemp,
			p.paint(color.Index, fmt.Sprintf("%2d", i+1)), p.paintHex(shade), hsl[i])
	}
}

// printComplementary prints the harmony sets of the color as bordered boxes in two columns.
func (p *Printer) printComplementary(entry Entry) {
	c := entry.Color
	box := func(h colorterm.Harmony) string {
		return p.renderBox(harmonyTitles[h], c.Harmony(h))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		box(colorterm.Triad), box(colorterm.Analogous), box(colorterm.SplitComplementary))
	right := lipgloss.JoinVertical(lipgloss.Left,
		box(colorterm.Tetradic), box(colorterm.Shades))

	fmt.Fprintln(p.out(), " "+p.paint(color.Heading, "Complementary colors for "+c.Hex()))
	fmt.Fprintln(p.out(), lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
}

// renderBox renders a titled, bordered list of hex swatches.
func (p *Printer) renderBox(title string, colors []colorterm.RGB) string {
	lines := make([]string, 0, len(colors)+1)
	lines = append(lines, p.paint(color.Title, title))
	for _, c := range colors {
		lines = append(lines, p.paintHex(c))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// printJSON prints one JSON line per entry.
func (p *Printer) printJSON() error {
	for _, entry := range p.Entries {
		data, err := json.Marshal(p.buildReport(entry))
		if err != nil {
			return fmt.Errorf("failed to marshal JSON output: %w", err)
		}
		if _, err := p.out().Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// printYAML prints one YAML document per entry.
func (p *Printer) printYAML() error {
	for _, entry := range p.Entries {
		data, err := yaml.Marshal(p.buildReport(entry))
		if err != nil {
			return fmt.Errorf("failed to marshal YAML output: %w", err)
		}
		if _, err := fmt.Fprintf(p.out(), "---\n%s", data); err != nil {
			return err
		}
	}
	return nil
}

// padSwatch pads the swatch text to the width of the widest value line.
func padSwatch(input string, values []infoValue) string {
	text := " " + input + " "
	width := runewidth.StringWidth(text)
	for _, v := range values {
		width = max(width, runewidth.StringWidth(v.label+": "+v.value))
	}
	return runewidth.FillRight(text, width)
}
