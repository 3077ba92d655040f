package colorterm

import "math"

// unitRGB holds the channels of an RGB color scaled to [0, 1] together with their extrema.
type unitRGB struct {
	r, g, b float64
	lo, hi  float64
	delta   float64
}

func newUnitRGB(c RGB) unitRGB {
	u := unitRGB{
		r: float64(c.R) / maxChannel,
		g: float64(c.G) / maxChannel,
		b: float64(c.B) / maxChannel,
	}
	u.lo = min(u.r, u.g, u.b)
	u.hi = max(u.r, u.g, u.b)
	u.delta = u.hi - u.lo
	return u
}

// hue returns the hue angle in whole degrees. The sector is chosen by the minimum channel:
// red selects base 3 (180°), blue base 1 (60°), green base 5 (300°). An achromatic color has
// no defined hue and yields 0.
func (u unitRGB) hue() Degrees {
	if u.delta == 0 {
		return 0
	}

	var base, d float64
	switch u.lo {
	case u.r:
		base, d = 3, u.g-u.b
	case u.b:
		base, d = 1, u.r-u.g
	default:
		base, d = 5, u.b-u.r
	}

	return NewDegrees(int(math.Round(60 * (base - d/u.delta))))
}
