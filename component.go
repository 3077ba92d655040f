package colorterm

import (
	"fmt"
	"math"
)

const (
	maxChannel = 255
	maxDegrees = 360
)

// integer is the set of backing types used by integer color components.
type integer interface {
	~uint8 | ~uint16
}

// formatDecimal renders an integer component as a zero-padded 3-digit decimal.
func formatDecimal[T integer](v T) string {
	return fmt.Sprintf("%03d", uint64(v))
}

// formatHex renders an integer component as uppercase hex, at least 2 digits wide.
func formatHex[T integer](v T) string {
	return fmt.Sprintf("%02X", uint64(v))
}

// Channel is a single 8-bit red, green or blue value.
type Channel uint8

// NewChannel clamps v into [0, 255].
func NewChannel(v int) Channel {
	return Channel(min(max(v, 0), maxChannel))
}

// String returns the channel as a zero-padded 3-digit decimal, e.g. "007".
func (c Channel) String() string { return formatDecimal(c) }

// Hex returns the channel as 2-digit uppercase hex, e.g. "0A".
func (c Channel) Hex() string { return formatHex(c) }

// Degrees is a hue angle in whole degrees. Values are clamped, not wrapped, into [0, 360].
type Degrees uint16

// NewDegrees clamps v into [0, 360].
func NewDegrees(v int) Degrees {
	return Degrees(min(max(v, 0), maxDegrees))
}

// String returns the hue as a zero-padded 3-digit decimal.
func (d Degrees) String() string { return formatDecimal(d) }

// Hex returns the hue as uppercase hex.
func (d Degrees) Hex() string { return formatHex(d) }

// Fraction is a saturation, lightness or value component in [0.0, 1.0].
type Fraction float64

// NewFraction clamps v into [0.0, 1.0]. NaN is stored as 0.
func NewFraction(v float64) Fraction {
	if math.IsNaN(v) {
		return 0
	}
	return Fraction(min(max(v, 0), 1))
}

// Float64 returns the underlying value.
func (f Fraction) Float64() float64 { return float64(f) }
