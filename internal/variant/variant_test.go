package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantNames(t *testing.T) {
	tests := []struct {
		variant    Variant
		tag        string
		source     string
		output     string
		appearance Appearance
		hc         bool
	}{
		{Light, "light", "light", "light-default", AppearanceLight, false},
		{LightHighContrast, "light_high_contrast", "light-high-contrast", "light-high-contrast", AppearanceLight, true},
		{Dark, "dark", "dark", "dark-default", AppearanceDark, false},
		{DarkHighContrast, "dark_high_contrast", "dark-high-contrast", "dark-high-contrast", AppearanceDark, true},
		{DarkDimmed, "dark_dimmed", "dark-dimmed", "dark-dimmed", AppearanceDark, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.variant.String())
			assert.Equal(t, tt.source, tt.variant.SourceName())
			assert.Equal(t, tt.output, tt.variant.OutputName())
			assert.Equal(t, tt.appearance, tt.variant.Appearance())
			assert.Equal(t, tt.hc, tt.variant.IsHighContrast())
			assert.NotEmpty(t, tt.variant.DisplayName())
		})
	}
}

func TestAllIsComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 5)

	seen := map[string]bool{}
	for _, v := range all {
		seen[v.OutputName()] = true
	}
	assert.Len(t, seen, 5, "output names must be distinct")
}

func TestParse(t *testing.T) {
	v, err := Parse("dark_dimmed")
	require.NoError(t, err)
	assert.Equal(t, DarkDimmed, v)

	v, err = Parse("light-high-contrast")
	require.NoError(t, err)
	assert.Equal(t, LightHighContrast, v)

	_, err = Parse("light_colorblind")
	assert.Error(t, err)
}

func TestUnknownVariant(t *testing.T) {
	v := Variant(42)
	assert.Equal(t, "unknown", v.String())
	assert.Empty(t, v.SourceName())
	assert.False(t, v.IsHighContrast())
}
