package colorterm

import "strings"

// Reset is the escape sequence that clears all attributes.
const Reset = "\x1b[0m"

// ANSI is a terminal text style: optional 24-bit foreground and background colors plus bold and
// underline attributes. The setters return a modified copy, and the last call for a field wins.
type ANSI struct {
	fg, bg    *RGB
	bold      bool
	underline bool
}

// NewANSI returns a style with the given colors. Either may be nil.
func NewANSI(foreground, background *RGB) ANSI {
	return ANSI{fg: foreground, bg: background}
}

// Foreground returns the style with its foreground color set to c.
func (a ANSI) Foreground(c RGB) ANSI {
	a.fg = &c
	return a
}

// Background returns the style with its background color set to c.
func (a ANSI) Background(c RGB) ANSI {
	a.bg = &c
	return a
}

// Bold returns the style with bold set to on.
func (a ANSI) Bold(on bool) ANSI {
	a.bold = on
	return a
}

// Underline returns the style with underline set to on.
func (a ANSI) Underline(on bool) ANSI {
	a.underline = on
	return a
}

// Escape returns the SGR sequence for the style. Parts are emitted in the order bold,
// underline, background, foreground.
func (a ANSI) Escape() string {
	parts := make([]string, 0, 4)
	if a.bold {
		parts = append(parts, "1")
	}
	if a.underline {
		parts = append(parts, "4")
	}
	if a.bg != nil {
		parts = append(parts, "48;2;"+a.bg.Decimal(";"))
	}
	if a.fg != nil {
		parts = append(parts, "38;2;"+a.fg.Decimal(";"))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// Paint wraps text in the style's escape sequence and a trailing Reset.
func (a ANSI) Paint(text string) string {
	return a.Escape() + text + Reset
}
