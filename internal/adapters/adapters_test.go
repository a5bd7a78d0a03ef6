package adapters

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/schema"
	"github.com/Azir-11/azir-theme/internal/tokens"
	"github.com/Azir-11/azir-theme/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

var (
	hexRe  = regexp.MustCompile(`^#[0-9a-f]{6}([0-9a-f]{2})?$`)
	rgbaRe = regexp.MustCompile(`^rgba\(\d{1,3},\d{1,3},\d{1,3},[0-9.]+\)$`)
)

func testVariables() tokens.Variables {
	vars := tokens.Variables{
		"bgColor-default":             "#ffffff",
		"fgColor-default":             "#1f2328",
		"fgColor-muted":               "#59636e",
		"fgColor-accent":              "#0969da",
		"fgColor-onEmphasis":          "#ffffff",
		"borderColor-default":         "#d1d9e0",
		"borderColor-muted":           "#d1d9e0b3",
		"bgColor-accent-emphasis":     "#0969da",
		"borderColor-accent-emphasis": "#0969da",
		"bgColor-muted":               "#f6f8fa",
		"bgColor-neutral-muted":       "#818b981f",
		"bgColor-accent-muted":        "#ddf4ff",
		"fgColor-danger":              "#d1242f",
		"fgColor-attention":           "#9a6700",
		"bgColor-attention-muted":     "#fff8c5",
		"color-ansi-black":            "#1f2328",
		"color-ansi-red":              "#cf222e",
		"color-ansi-red-bright":       "#a40e26",
	}
	for _, hue := range palette.Hues {
		for i := 0; i < palette.Steps; i++ {
			vars[palette.ScaleToken(hue, i)] = "#0" + string(rune('0'+i)) + "1a2b"
		}
	}
	return vars
}

func themeFor(v variant.Variant) *schema.Theme {
	return schema.FromVariables(testVariables(), v)
}

func TestVSCodeColorsAreHex(t *testing.T) {
	for _, v := range variant.All() {
		t.Run(v.String(), func(t *testing.T) {
			theme := VSCode(themeFor(v))
			require.NotEmpty(t, theme.Colors)
			for key, value := range theme.Colors {
				assert.Regexp(t, hexRe, value, key)
			}
		})
	}
}

func TestZedColorsUseRGBAForAlpha(t *testing.T) {
	family := Zed(themeFor(variant.Dark), "")
	require.Len(t, family.Themes, 1)
	colors := family.Themes[0].Style.Colors

	alphaKeys := []string{
		"border.transparent", "border.disabled", "element.active",
		"text.disabled", "editor.wrap_guide", "error.background",
	}
	for _, key := range alphaKeys {
		assert.Regexp(t, rgbaRe, colors[key], key)
	}
	assert.Equal(t, "rgba(209,217,224,0)", colors["border.transparent"])
	assert.Equal(t, "transparent", colors["ghost_element.background"])
}

func TestVSCodeAlphaEncoding(t *testing.T) {
	st := themeFor(variant.Light)
	theme := VSCode(st)

	assert.Equal(t, "#0969da80", theme.Colors["statusBar.focusBorder"])
	assert.Equal(t, "#1f232814", theme.Colors["statusBarItem.hoverBackground"])
	assert.Equal(t, palette.AlphaHex(st.Colors.Scrollbar.Background, 0.2), theme.Colors["scrollbarSlider.background"])
}

func TestSharedColorsAgree(t *testing.T) {
	for _, v := range variant.All() {
		t.Run(v.String(), func(t *testing.T) {
			st := themeFor(v)
			vs := VSCode(st).Colors
			zed := Zed(st, "").Themes[0].Style.Colors

			pairs := map[string]string{
				"foreground":                       "foreground",
				"editor.background":                "editor.background",
				"editor.foreground":                "editor.foreground",
				"editorLineNumber.foreground":      "editor.line_number",
				"terminal.ansiRed":                 "terminal.ansi.red",
				"terminal.ansiBrightRed":           "terminal.ansi.bright_red",
				"statusBar.background":             "status_bar.background",
				"editorGroupHeader.tabsBackground": "tab_bar.background",
			}
			for vsKey, zedKey := range pairs {
				assert.Equal(t, vs[vsKey], zed[zedKey], "%s vs %s", vsKey, zedKey)
			}
		})
	}
}

func TestVSCodeOverrides(t *testing.T) {
	tests := []struct {
		variant        variant.Variant
		selection      string
		hasPeek        bool
		hasLineBorder  bool
		hasSelectionFg bool
	}{
		{variant.Light, "#0969da33", false, false, false},
		{variant.LightHighContrast, "#0969da", false, false, true},
		{variant.Dark, "#0969da33", true, false, false},
		{variant.DarkHighContrast, "#0969da", true, true, true},
		{variant.DarkDimmed, "#0969da33", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			colors := VSCode(themeFor(tt.variant)).Colors

			assert.Equal(t, tt.selection, colors["editor.selectionBackground"])

			_, ok := colors["peekViewEditor.background"]
			assert.Equal(t, tt.hasPeek, ok)
			_, ok = colors["editor.lineHighlightBorder"]
			assert.Equal(t, tt.hasLineBorder, ok)
			_, ok = colors["editor.selectionForeground"]
			assert.Equal(t, tt.hasSelectionFg, ok)
		})
	}
}

func TestCollect(t *testing.T) {
	got := collect([]colorEntry{
		{"a", "#111111"},
		{"b", "#222222"},
		{"a", ""},
		{"b", "#333333"},
		{"c", ""},
	})

	assert.Equal(t, map[string]string{"a": "#111111", "b": "#333333"}, got)
}

func TestVSCodeJSON(t *testing.T) {
	data, err := json.Marshal(VSCode(themeFor(variant.Dark)))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "vscode://schemas/color-theme", raw["$schema"])
	assert.Equal(t, "Azir Dark Default", raw["name"])
	assert.Equal(t, "dark", raw["type"])
	assert.Equal(t, true, raw["semanticHighlighting"])

	rules := raw["tokenColors"].([]interface{})
	var objectKey, carriage map[string]interface{}
	for _, r := range rules {
		rule := r.(map[string]interface{})
		switch scope := rule["scope"].(type) {
		case string:
			if scope == "carriage-return" {
				carriage = rule["settings"].(map[string]interface{})
			}
		case []interface{}:
			if len(scope) == 1 && scope[0] == "meta.object-literal.key" {
				objectKey = rule["settings"].(map[string]interface{})
			}
		}
	}

	require.NotNil(t, objectKey)
	style, ok := objectKey["fontStyle"]
	assert.True(t, ok, "empty fontStyle must be written")
	assert.Equal(t, "", style)

	require.NotNil(t, carriage)
	assert.Equal(t, "^M", carriage["content"])
	assert.Equal(t, "italic underline", carriage["fontStyle"])
}

func TestZedJSONIsFlat(t *testing.T) {
	data, err := json.Marshal(Zed(themeFor(variant.Light), "someone"))
	require.NoError(t, err)

	var raw struct {
		Schema string `json:"$schema"`
		Author string `json:"author"`
		Themes []struct {
			Appearance string                 `json:"appearance"`
			Style      map[string]interface{} `json:"style"`
		} `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "https://zed.dev/schema/themes/v0.1.0.json", raw.Schema)
	assert.Equal(t, "someone", raw.Author)
	require.Len(t, raw.Themes, 1)
	assert.Equal(t, "light", raw.Themes[0].Appearance)

	style := raw.Themes[0].Style
	assert.Contains(t, maps.Keys(style), "players")
	assert.Contains(t, maps.Keys(style), "syntax")
	assert.Equal(t, "#ffffff", style["background"])

	players := style["players"].([]interface{})
	require.Len(t, players, 6)
	first := players[0].(map[string]interface{})
	assert.Equal(t, first["cursor"], first["background"])
	assert.Regexp(t, rgbaRe, first["selection"])

	syntax := style["syntax"].(map[string]interface{})
	title := syntax["title"].(map[string]interface{})
	assert.EqualValues(t, 700, title["font_weight"])
	_, hasStyle := syntax["keyword"].(map[string]interface{})["font_style"]
	assert.False(t, hasStyle)
}

func TestZedDefaultAuthor(t *testing.T) {
	assert.Equal(t, DefaultAuthor, Zed(themeFor(variant.Dark), "").Author)
}
