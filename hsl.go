package colorterm

import (
	"fmt"
	"math"
)

// rotationOffset is the hue step used by the analogous, tetradic and split-complementary sets.
const rotationOffset = 30

// shadeCount is the number of colors produced by Shades.
const shadeCount = 16

// HSL is a color in the hue, saturation, lightness model.
type HSL struct {
	H Degrees
	S Fraction
	L Fraction
}

// NewHSL returns an HSL color with hue clamped into [0, 360] and saturation and lightness
// clamped into [0, 1].
func NewHSL(hue int, saturation, lightness float64) HSL {
	return HSL{H: NewDegrees(hue), S: NewFraction(saturation), L: NewFraction(lightness)}
}

// HSL converts the color to the HSL model.
func (c RGB) HSL() HSL {
	u := newUnitRGB(c)
	l := (u.lo + u.hi) / 2

	var s float64
	if l != 0 && l != 1 {
		s = u.delta / (1 - math.Abs(2*l-1))
	}

	return HSL{H: u.hue(), S: NewFraction(s), L: NewFraction(l)}
}

// RGB converts the color back to the RGB model.
func (h HSL) RGB() RGB {
	l, s := float64(h.L), float64(h.S)
	chroma := (1 - math.Abs(2*l-1)) * s
	sector := float64(h.H) / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case sector == 0:
	case sector <= 1:
		r, g = chroma, x
	case sector <= 2:
		r, g = x, chroma
	case sector <= 3:
		g, b = chroma, x
	case sector <= 4:
		g, b = x, chroma
	case sector <= 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	return NewRGB(scaleChannel(r+m), scaleChannel(g+m), scaleChannel(b+m))
}

func scaleChannel(v float64) int {
	return int(math.Round(v * maxChannel))
}

// RotateHue returns the color with its hue moved by amount degrees. The new hue is
// |hue+amount| mod 360, so a rotation that goes below zero is reflected rather than wrapped:
// rotating 10 by -30 gives 20, not 340.
func (h HSL) RotateHue(amount int) HSL {
	sum := int(h.H) + amount
	if sum < 0 {
		sum = -sum
	}
	h.H = Degrees(sum % 360)
	return h
}

// Brighten currently returns the color unchanged.
func (h HSL) Brighten(float64) HSL { return h }

// Darken currently returns the color unchanged.
func (h HSL) Darken(float64) HSL { return h }

// Analogous returns the colors 30° either side of h, with h in the middle.
func (h HSL) Analogous() [3]HSL {
	return [3]HSL{h.RotateHue(-rotationOffset), h, h.RotateHue(rotationOffset)}
}

// Triad returns h followed by two successive 120° rotations.
func (h HSL) Triad() [3]HSL {
	second := h.RotateHue(120)
	return [3]HSL{h, second, second.RotateHue(120)}
}

// Tetradic returns h, h rotated by 30°, its complement, and the complement rotated by 30°.
func (h HSL) Tetradic() [4]HSL {
	complement := h.RotateHue(180)
	return [4]HSL{h, h.RotateHue(rotationOffset), complement, complement.RotateHue(rotationOffset)}
}

// SplitComplementary returns the two colors 30° either side of the complement, with h in the
// middle.
func (h HSL) SplitComplementary() [3]HSL {
	return [3]HSL{h.RotateHue(180 - rotationOffset), h, h.RotateHue(180 + rotationOffset)}
}

// Shades returns h with lightness i/17 for i in 1..16. Hue and saturation are kept, and the
// ramp never reaches black or white.
func (h HSL) Shades() [shadeCount]HSL {
	var shades [shadeCount]HSL
	for i := range shades {
		shade := h
		shade.L = NewFraction(1.0 / (shadeCount + 1) * float64(i+1))
		shades[i] = shade
	}
	return shades
}

// String returns the color as "HHH, S.SS, L.LL".
func (h HSL) String() string {
	return fmt.Sprintf("%s, %.2f, %.2f", h.H, float64(h.S), float64(h.L))
}
