package colorterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBHarmonies(t *testing.T) {
	t.Parallel()

	base := RGB{0, 128, 255}

	assert.Equal(t, [3]RGB{base, {255, 0, 128}, {128, 255, 0}}, base.Triad())
	assert.Equal(t, [3]RGB{{0, 255, 255}, base, {0, 0, 255}}, base.Analogous())
	assert.Equal(t, [4]RGB{base, {0, 0, 255}, {255, 128, 0}, {255, 255, 0}}, base.Tetradic())
	// The first split-complementary hue lands on 0°, whose sector maps to black.
	assert.Equal(t, [3]RGB{Black, base, {255, 255, 0}}, base.SplitComplementary())
}

func TestRGBShades(t *testing.T) {
	t.Parallel()

	base := RGB{0, 128, 255}
	shades := base.Shades()
	require.Len(t, shades, 16)

	hsl := base.HSL()
	for i, shade := range shades {
		assert.Equal(t, hsl.Shades()[i].RGB(), shade)
		if i > 0 {
			assert.Greater(t, shade.HSL().L, shades[i-1].HSL().L)
		}
	}
	assert.NotEqual(t, Black, shades[0])
	assert.NotEqual(t, White, shades[15])
}

func TestHarmonyDispatch(t *testing.T) {
	t.Parallel()

	base := RGB{12, 200, 99}
	triad := base.Triad()
	tetradic := base.Tetradic()
	analogous := base.Analogous()
	split := base.SplitComplementary()
	shades := base.Shades()

	assert.Equal(t, triad[:], base.Harmony(Triad))
	assert.Equal(t, tetradic[:], base.Harmony(Tetradic))
	assert.Equal(t, analogous[:], base.Harmony(Analogous))
	assert.Equal(t, split[:], base.Harmony(SplitComplementary))
	assert.Equal(t, shades[:], base.Harmony(Shades))
	assert.Nil(t, base.Harmony(Harmony(99)))

	names := make([]string, 0, len(Harmonies))
	for _, h := range Harmonies {
		names = append(names, h.String())
	}
	assert.Equal(t, []string{"triad", "tetradic", "analogous", "split_complementary", "shades"}, names)
	assert.Equal(t, "unknown", Harmony(-1).String())
}
