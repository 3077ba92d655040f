package app

import (
	"math"

	"github.com/jkbrsn/colorterm"
)

// infoValue is a labelled line of the info display.
type infoValue struct {
	label string
	value string
}

func infoValues(c colorterm.RGB) []infoValue {
	return []infoValue{
		{label: "HEX", value: c.Hex()},
		{label: "RGB", value: c.Decimal(", ")},
		{label: "HSV", value: c.HSV().String()},
		{label: "HSL", value: c.HSL().String()},
	}
}

// buildReport builds the structured report for an entry. Harmony sets are included in
// complementary mode and the shade ramp in shades mode.
func (p *Printer) buildReport(entry Entry) colorReport {
	c := entry.Color
	hsl, hsv := c.HSL(), c.HSV()

	report := colorReport{
		Schema: SchemaVersion,
		Type:   "color",
		Input:  entry.Input,
		Hex:    c.Hex(),
		RGB:    rgbReport{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)},
		HSL:    hslReport{H: int(hsl.H), S: round4(hsl.S.Float64()), L: round4(hsl.L.Float64())},
		HSV:    hsvReport{H: int(hsv.H), S: round4(hsv.S.Float64()), V: round4(hsv.V.Float64())},
		Light:  c.IsLight(),
	}

	switch p.Mode {
	case ModeComplementary:
		report.Harmonies = make(map[string][]string, len(colorterm.Harmonies))
		for _, h := range colorterm.Harmonies {
			report.Harmonies[h.String()] = hexList(c.Harmony(h))
		}
	case ModeShades:
		report.Shades = hexList(c.Harmony(colorterm.Shades))
	}

	return report
}

func hexList(colors []colorterm.RGB) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

// round4 rounds v to four decimal places.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
