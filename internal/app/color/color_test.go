package color

import (
	"testing"

	"github.com/jkbrsn/colorterm"
	"github.com/stretchr/testify/assert"
)

// TestStyles performs basic sanity checks on the predefined styles.
func TestStyles(t *testing.T) {
	t.Parallel()

	base := "txt"
	assert.Equal(t, "\x1b[38;2;255;102;000mtxt\x1b[0m", Label.Paint(base))
	assert.Equal(t, "\x1b[38;2;211;249;181mtxt\x1b[0m", Index.Paint(base))
	assert.Equal(t, "\x1b[4mtxt\x1b[0m", Title.Paint(base))
	assert.Equal(t, "\x1b[1;4mtxt\x1b[0m", Heading.Paint(base))
}

func TestContrast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   colorterm.RGB
		want colorterm.RGB
	}{
		{"black on white", colorterm.White, colorterm.Black},
		{"white on black", colorterm.Black, colorterm.White},
		{"black at the threshold", colorterm.NewRGB(0, 128, 255), colorterm.Black},
		{"white below the threshold", colorterm.NewRGB(0, 127, 255), colorterm.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Contrast(tt.in))
		})
	}
}

func TestSwatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"\x1b[48;2;211;249;181;38;2;000;000;000m",
		Swatch(TeaGreen).Escape())
	assert.Equal(t,
		"\x1b[48;2;000;000;128;38;2;255;255;255m",
		Swatch(colorterm.NewRGB(0, 0, 128)).Escape())
}
