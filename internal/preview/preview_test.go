package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Azir-11/azir-theme/internal/schema"
	"github.com/Azir-11/azir-theme/internal/tokens"
	"github.com/Azir-11/azir-theme/internal/variant"
	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsColor(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"#fff", true},
		{"#FFFFFF", true},
		{"#0969da33", true},
		{"rgba(1, 2, 3, 0.5)", true},
		{"rgb(1 2 3 / 50%)", false},
		{"RGB(1,2,3)", true},
		{"#ffff", false},
		{"#gray4", false},
		{"var(--x)", false},
		{"0 1px 0 #fff", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsColor(tt.value))
		})
	}
}

func TestCategorize(t *testing.T) {
	vars := map[string]string{
		"fgColor-default":                   "#1f2328",
		"fgColor-accent":                    "#0969da",
		"bgColor-default":                   "#ffffff",
		"codeMirror-activeline-bgColor":     "#eaeef2",
		"codeMirror-syntax-fgColor-keyword": "#cf222e",
		"display-blue-scale-5":              "#0969da",
		"button-primary-bgColor-rest":       "#1f883d",
		"button-primary-iconColor-rest":     "#ffffff",
		"color-ansi-red":                    "#cf222e",
		"shadow-resting-small":              "0 1px 0 #1f23280a",
		"overlay-bgColor":                   "#ffffff",
		"focus-outlineColor":                "#0969da",
		"borderColor-default":               "#d1d9e0",
		"fontStack-system":                  "-apple-system",
	}

	groups := Categorize(vars)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"foreground", "background", "border", "button", "ansi", "scale", "other"}, keys)

	byKey := map[string]Group{}
	for _, g := range groups {
		byKey[g.Key] = g
	}

	names := func(g Group) []string {
		out := make([]string, 0, len(g.Entries))
		for _, e := range g.Entries {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Equal(t, []string{"codeMirror-syntax-fgColor-keyword", "fgColor-accent", "fgColor-default"}, names(byKey["foreground"]))
	assert.Equal(t, []string{"bgColor-default", "button-primary-bgColor-rest", "codeMirror-activeline-bgColor"}, names(byKey["background"]))
	assert.Equal(t, []string{"button-primary-iconColor-rest"}, names(byKey["button"]))
	assert.Equal(t, []string{"focus-outlineColor", "overlay-bgColor"}, names(byKey["other"]))

	assert.Equal(t, 12, Total(groups))
	assert.Equal(t, "--fgColor-accent", byKey["foreground"].Entries[1].CSSVar)
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	groups := Categorize(map[string]string{"button-danger-fgColor-rest": "#d1242f"})
	require.Len(t, groups, 1)
	assert.Equal(t, "foreground", groups[0].Key)
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	groups := Categorize(map[string]string{"FGCOLOR-Loud": "#000"})
	require.Len(t, groups, 1)
	assert.Equal(t, "foreground", groups[0].Key)
}

func TestCategorizeSubgroups(t *testing.T) {
	groups := Categorize(map[string]string{
		"display-blue-scale-1": "#0000ff",
		"display-blue-scale-0": "#0000fe",
		"display-red-scale-0":  "#ff0000",
		"other-thing":          "#123456",
		"misc":                 "#654321",
	})
	require.Len(t, groups, 2)

	scale := groups[0]
	require.Len(t, scale.Subgroups, 1)
	assert.Equal(t, "display", scale.Subgroups[0].Key)
	assert.Equal(t, "Display", scale.Subgroups[0].Label)
	assert.Len(t, scale.Subgroups[0].Entries, 3)
	assert.Equal(t, "display-blue-scale-0", scale.Subgroups[0].Entries[0].Name)

	other := groups[1]
	require.Len(t, other.Subgroups, 2)
	assert.Equal(t, "misc", other.Subgroups[0].Key)
	assert.Equal(t, "other", other.Subgroups[1].Key)
}

func TestCategorizeEmpty(t *testing.T) {
	assert.Empty(t, Categorize(map[string]string{"size-small": "4px"}))
	assert.Zero(t, Total(nil))
}

func sampleTheme(v variant.Variant) *schema.Theme {
	return schema.FromVariables(tokens.Variables{
		"bgColor-default":      "#ffffff",
		"fgColor-default":      "#1f2328",
		"display-gray-scale-5": "#818b98",
		"display-red-scale-5":  "#d1242f",
		"display-red-scale-7":  "#a0111f",
	}, v)
}

func TestSyntaxStyle(t *testing.T) {
	style, err := SyntaxStyle(sampleTheme(variant.Light))
	require.NoError(t, err)

	entry := style.Get(chroma.Keyword)
	assert.Equal(t, "#d1242f", entry.Colour.String())
}

func TestSyntaxSample(t *testing.T) {
	html, err := SyntaxSample(sampleTheme(variant.Light))
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "Greeter")
	assert.Contains(t, out, "#d1242f")
}

func TestRender(t *testing.T) {
	lightVars := map[string]string{
		"fgColor-default": "#1f2328",
		"bgColor-muted":   "rgba(246,248,250,1)",
	}
	darkVars := map[string]string{"fgColor-default": "#f0f6fc"}

	light, err := NewTab("light", "Light Theme", lightVars, sampleTheme(variant.Light))
	require.NoError(t, err)
	dark, err := NewTab("dark", "Dark Theme", darkVars, sampleTheme(variant.Dark))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Page{Tabs: []Tab{light, dark}}))

	out := buf.String()
	assert.Contains(t, out, AlpineURL)
	assert.Contains(t, out, "--fgColor-default")
	assert.Contains(t, out, "background-color: rgba(246,248,250,1)")
	assert.Contains(t, out, "Light Theme: 2 colors | Dark Theme: 1 colors")
	assert.Contains(t, out, "tab: 'light'")
	assert.NotContains(t, out, "ZgotmplZ")
	assert.Contains(t, out, `x-show="tab === 'dark'" x-cloak`)
	assert.NotContains(t, out, `x-show="tab === 'light'" x-cloak`)
	assert.Equal(t, 2, strings.Count(out, `<div class="sample">`))
}

func TestRenderNoTabs(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, Page{}))
}
