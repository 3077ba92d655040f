// Package color holds the fixed palette and styles used for the program's own labels.
package color

import "github.com/jkbrsn/colorterm"

// Predefined colors
var (
	Orange   = colorterm.RGB{R: 255, G: 102, B: 0}   // Label orange (#ff6600)
	TeaGreen = colorterm.RGB{R: 211, G: 249, B: 181} // Tea green (#d3f9b5)
)

// Predefined styles
var (
	Label   = Orange.Foreground()
	Title   = colorterm.ANSI{}.Underline(true)
	Heading = colorterm.ANSI{}.Bold(true).Underline(true)
	Index   = TeaGreen.Foreground()
)

// Contrast returns black for light colors and white for dark ones.
func Contrast(c colorterm.RGB) colorterm.RGB {
	if c.IsLight() {
		return colorterm.Black
	}
	return colorterm.White
}

// Swatch returns a style that previews c: c as background with contrasting text.
func Swatch(c colorterm.RGB) colorterm.ANSI {
	return c.Background().Foreground(Contrast(c))
}
