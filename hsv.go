package colorterm

import "fmt"

// HSV is a color in the hue, saturation, value model.
type HSV struct {
	H Degrees
	S Fraction
	V Fraction
}

// NewHSV returns an HSV color with hue clamped into [0, 360] and saturation and value clamped
// into [0, 1].
func NewHSV(hue int, saturation, value float64) HSV {
	return HSV{H: NewDegrees(hue), S: NewFraction(saturation), V: NewFraction(value)}
}

// HSV converts the color to the HSV model. Grays have hue and saturation 0.
func (c RGB) HSV() HSV {
	u := newUnitRGB(c)
	if u.delta == 0 {
		return NewHSV(0, 0, u.lo)
	}
	return HSV{H: u.hue(), S: NewFraction(u.delta / u.hi), V: NewFraction(u.hi)}
}

// String returns the color as "HHH, S.SS, V.VV".
func (h HSV) String() string {
	return fmt.Sprintf("%s, %.2f, %.2f", h.H, float64(h.S), float64(h.V))
}
