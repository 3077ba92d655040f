// Package colorterm converts colors between the RGB, HSL and HSV models, derives color-harmony
// sets from a base color and renders colored text with 24-bit ANSI escape sequences.
// All types are small immutable values; every transform returns a new value.
package colorterm

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// lightThreshold is half of the maximum channel sum (765), rounded up.
const lightThreshold = 383

// RGB is a color made of three 8-bit channels.
type RGB struct {
	R, G, B Channel
}

// Predefined colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// NewRGB returns an RGB color with each channel clamped into [0, 255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: NewChannel(r), G: NewChannel(g), B: NewChannel(b)}
}

// RandomRGB returns a color with three independently, uniformly sampled channels.
func RandomRGB() RGB {
	return NewRGB(rand.IntN(maxChannel+1), rand.IntN(maxChannel+1), rand.IntN(maxChannel+1))
}

// ParseDecimal parses comma-separated decimal text such as "0,128,255". The first three fields
// are used and any further fields are ignored. A field that is missing or not an unsigned 8-bit
// integer produces a *ParseError naming it, checked in red, green, blue order. Fields are strict
// digits: signs and whitespace are rejected.
func ParseDecimal(s string) (RGB, error) {
	fields := strings.Split(s, ",")

	var channels [3]Channel
	for i, name := range componentNames {
		if i >= len(fields) {
			return RGB{}, &ParseError{Component: name, Input: s}
		}
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return RGB{}, &ParseError{Component: name, Input: s, Err: err}
		}
		channels[i] = Channel(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParseHex parses hex text such as "#0080FF", "0080ff" or "#fff". A 3-digit form is expanded
// by duplicating each digit. Red and green take two digits each and blue takes the remainder;
// a field that is missing, signed or does not fit in 8 bits produces a *ParseError naming it.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var channels [3]Channel
	for i, name := range componentNames {
		start, end := 2*i, 2*i+2
		if i == len(componentNames)-1 {
			end = len(hex)
		}
		if start >= end || end > len(hex) {
			return RGB{}, &ParseError{Component: name, Input: s}
		}
		v, err := strconv.ParseUint(hex[start:end], 16, 8)
		if err != nil {
			return RGB{}, &ParseError{Component: name, Input: s, Err: err}
		}
		channels[i] = Channel(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// IsLight reports whether the channel sum reaches half of its maximum. It is used to pick a
// contrasting text color.
func (c RGB) IsLight() bool {
	return int(c.R)+int(c.G)+int(c.B) >= lightThreshold
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return "#" + c.R.Hex() + c.G.Hex() + c.B.Hex()
}

// String implements fmt.Stringer using the hex form.
func (c RGB) String() string { return c.Hex() }

// Decimal returns the three channels as 3-digit decimals joined by sep, e.g. "000, 128, 255".
func (c RGB) Decimal(sep string) string {
	return c.R.String() + sep + c.G.String() + sep + c.B.String()
}

// Invert returns the color with each channel replaced by 255 minus its value.
func (c RGB) Invert() RGB {
	return RGB{R: maxChannel - c.R, G: maxChannel - c.G, B: maxChannel - c.B}
}

// Foreground returns a style that paints text in this color.
func (c RGB) Foreground() ANSI {
	return NewANSI(&c, nil)
}

// Background returns a style that paints the text background in this color.
func (c RGB) Background() ANSI {
	return NewANSI(nil, &c)
}

// PaintHex returns the hex form of the color painted on the color itself.
func (c RGB) PaintHex() string {
	return c.Background().Paint(c.Hex())
}
