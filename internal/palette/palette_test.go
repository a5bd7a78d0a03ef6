package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLookup map[string]string

func (m mapLookup) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hex   string
		alpha float64
	}{
		{"six digit", "#0969da", "#0969da", 1},
		{"three digit", "#fff", "#ffffff", 1},
		{"uppercase", "#0969DA", "#0969da", 1},
		{"eight digit", "#afb8c133", "#afb8c133", 0.2},
		{"four digit", "#f008", "#ff000088", 0x88 / 255.0},
		{"rgba commas", "rgba(175, 184, 193, 0.2)", "#afb8c133", 0.2},
		{"rgb spaces", "rgb(9 105 218)", "#0969da", 1},
		{"rgba slash percent", "rgb(9 105 218 / 50%)", "#0969da80", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, c.Hex())
			assert.InDelta(t, tt.alpha, c.A, 0.003)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "#gray4", "#12345", "transparent", "var(--x)", "rgba(1,2)"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
			assert.False(t, Valid(input))
		})
	}
}

func TestAlphaHex(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		alpha    float64
		expected string
	}{
		{"opaque keeps original", "#0969da", 1, "#0969da"},
		{"fully transparent", "#0969da", 0, "#0969da00"},
		{"half", "#0969da", 0.5, "#0969da80"},
		{"replaces existing alpha", "#0969da33", 0.12, "#0969da1f"},
		{"clamps above one", "#0969da", 1.7, "#0969da"},
		{"non-color passes through", "#gray4", 0.5, "#gray4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AlphaHex(tt.color, tt.alpha))
		})
	}
}

func TestAlphaRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		alpha    float64
		expected string
	}{
		{"opaque", "#0969da", 1, "rgba(9,105,218,1)"},
		{"transparent", "#0969da", 0, "rgba(9,105,218,0)"},
		{"fraction", "#d1d9e0", 0.15, "rgba(209,217,224,0.15)"},
		{"from rgba input", "rgba(1,2,3,0.9)", 0.3, "rgba(1,2,3,0.3)"},
		{"non-color passes through", "transparent", 0.3, "transparent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AlphaRGBA(tt.color, tt.alpha))
		})
	}
}

func TestAlphaRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1f2328", "#d1242f", "#59636e"} {
		assert.Equal(t, hex, AlphaHex(hex, 1.0))

		transparent, err := Parse(AlphaHex(hex, 0))
		require.NoError(t, err)
		assert.Zero(t, transparent.A)
		assert.Equal(t, hex, transparent.WithAlpha(1).Hex(), "hue must survive zero opacity")
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "#ffffff", Normalize("#FFF"))
	assert.Equal(t, "#01020380", Normalize("rgba(1,2,3,0.5)"))
	assert.Equal(t, "var(--x)", Normalize("var(--x)"))
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name     string
		fg, bg   string
		expected float64
	}{
		{"black on white", "#000000", "#ffffff", 21},
		{"same color", "#777777", "#777777", 1},
		{"symmetric", "#ffffff", "#000000", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.fg, tt.bg)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("ContrastRatio(%s, %s) = %v, expected %v", tt.fg, tt.bg, got, tt.expected)
			}
		})
	}
}

func TestBuildScaleCompleteness(t *testing.T) {
	vars := mapLookup{
		"display-gray-scale-0": "#F6F8FA",
		"display-gray-scale-9": "rgb(31, 35, 40)",
		"display-blue-scale-5": "#0969da",
	}

	scale := BuildScale(vars)
	require.Len(t, scale.Ramps, len(Hues))

	for _, hue := range Hues {
		ramp := scale.Hue(hue)
		for i := 0; i < Steps; i++ {
			assert.NotEmpty(t, ramp[i], "%s[%d]", hue, i)
		}
	}

	assert.Equal(t, "#f6f8fa", scale.Hue(Gray)[0])
	assert.Equal(t, "#1f2328", scale.Hue(Gray)[9])
	assert.Equal(t, "#0969da", scale.Hue(Blue)[5])
	assert.Equal(t, "#gray4", scale.Hue(Gray)[4])
	assert.Equal(t, "#teal0", scale.Hue(Teal)[0])
	assert.Equal(t, White, scale.White)
	assert.Equal(t, Black, scale.Black)
}

func TestScaleUnknownHue(t *testing.T) {
	scale := BuildScale(mapLookup{})
	ramp := scale.Hue("magenta")
	assert.Equal(t, "#magenta3", ramp[3])
}
