package colorterm

// Harmony identifies a color-harmony set.
type Harmony int

// Harmony sets, in display order.
const (
	Triad Harmony = iota
	Tetradic
	Analogous
	SplitComplementary
	Shades
)

// Harmonies lists every harmony set in display order.
var Harmonies = []Harmony{Triad, Tetradic, Analogous, SplitComplementary, Shades}

var harmonyNames = map[Harmony]string{
	Triad:              "triad",
	Tetradic:           "tetradic",
	Analogous:          "analogous",
	SplitComplementary: "split_complementary",
	Shades:             "shades",
}

func (h Harmony) String() string {
	if name, ok := harmonyNames[h]; ok {
		return name
	}
	return "unknown"
}

// Harmony returns the colors of the given harmony set, or nil for an unknown set.
func (c RGB) Harmony(h Harmony) []RGB {
	switch h {
	case Triad:
		set := c.Triad()
		return set[:]
	case Tetradic:
		set := c.Tetradic()
		return set[:]
	case Analogous:
		set := c.Analogous()
		return set[:]
	case SplitComplementary:
		set := c.SplitComplementary()
		return set[:]
	case Shades:
		set := c.Shades()
		return set[:]
	}
	return nil
}

// fromHSL converts each color of src into dst.
func fromHSL(dst []RGB, src []HSL) {
	for i, h := range src {
		dst[i] = h.RGB()
	}
}

// Analogous returns the analogous set of c, converted through HSL.
func (c RGB) Analogous() [3]RGB {
	src := c.HSL().Analogous()
	var out [3]RGB
	fromHSL(out[:], src[:])
	return out
}

// Triad returns the triad of c, converted through HSL.
func (c RGB) Triad() [3]RGB {
	src := c.HSL().Triad()
	var out [3]RGB
	fromHSL(out[:], src[:])
	return out
}

// Tetradic returns the tetradic set of c, converted through HSL.
func (c RGB) Tetradic() [4]RGB {
	src := c.HSL().Tetradic()
	var out [4]RGB
	fromHSL(out[:], src[:])
	return out
}

// Shades returns the 16-step lightness ramp of c, converted through HSL.
func (c RGB) Shades() [shadeCount]RGB {
	src := c.HSL().Shades()
	var out [shadeCount]RGB
	fromHSL(out[:], src[:])
	return out
}

// SplitComplementary returns the split-complementary set of c, converted through HSL.
func (c RGB) SplitComplementary() [3]RGB {
	src := c.HSL().SplitComplementary()
	var out [3]RGB
	fromHSL(out[:], src[:])
	return out
}
