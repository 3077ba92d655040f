package app

import "github.com/jkbrsn/colorterm"

// Display modes
const (
	ModeInfo          = "info"
	ModeShades        = "shades"
	ModeComplementary = "complementary"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	// SchemaVersion is the schema version for JSON and YAML output
	SchemaVersion = "1.0"

	// keywordRandom is the argument that requests a random color.
	keywordRandom = "random"
)

var (
	// Modes lists the accepted display modes.
	Modes = []string{ModeInfo, ModeShades, ModeComplementary}
	// Formats lists the accepted output formats.
	Formats = []string{FormatText, FormatJSON, FormatYAML}
	// ColorModes lists the accepted color modes.
	ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// Entry is a resolved color together with the argument it was produced from.
type Entry struct {
	Input string
	Color colorterm.RGB
}

type colorReport struct {
	Schema    string              `json:"schema_version" yaml:"schema_version"`
	Type      string              `json:"type" yaml:"type"`
	Input     string              `json:"input" yaml:"input"`
	Hex       string              `json:"hex" yaml:"hex"`
	RGB       rgbReport           `json:"rgb" yaml:"rgb"`
	HSL       hslReport           `json:"hsl" yaml:"hsl"`
	HSV       hsvReport           `json:"hsv" yaml:"hsv"`
	Light     bool                `json:"light" yaml:"light"`
	Harmonies map[string][]string `json:"harmonies,omitempty" yaml:"harmonies,omitempty"`
	Shades    []string            `json:"shades,omitempty" yaml:"shades,omitempty"`
}

type rgbReport struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

type hslReport struct {
	H int     `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

type hsvReport struct {
	H int     `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}
