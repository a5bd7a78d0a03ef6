package adapters

import (
	"encoding/json"

	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/schema"
)

const (
	zedSchemaURL  = "https://zed.dev/schema/themes/v0.1.0.json"
	DefaultAuthor = "Azir-11"
)

type ZedThemeFamily struct {
	Schema string     `json:"$schema"`
	Name   string     `json:"name"`
	Author string     `json:"author"`
	Themes []ZedTheme `json:"themes"`
}

type ZedTheme struct {
	Name       string   `json:"name"`
	Appearance string   `json:"appearance"`
	Style      ZedStyle `json:"style"`
}

// ZedStyle is written as one flat object: color keys sit next to
// "players" and "syntax".
type ZedStyle struct {
	Colors  map[string]string
	Players []ZedPlayer
	Syntax  map[string]ZedHighlight
}

type ZedPlayer struct {
	Cursor     string `json:"cursor"`
	Background string `json:"background"`
	Selection  string `json:"selection"`
}

type ZedHighlight struct {
	Color      string `json:"color"`
	FontStyle  string `json:"font_style,omitempty"`
	FontWeight int    `json:"font_weight,omitempty"`
}

func (s ZedStyle) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Colors)+2)
	for k, v := range s.Colors {
		out[k] = v
	}
	out["players"] = s.Players
	out["syntax"] = s.Syntax
	return json.Marshal(out)
}

// Zed builds a single-theme family. An empty author falls back to DefaultAuthor.
func Zed(t *schema.Theme, author string) ZedThemeFamily {
	if author == "" {
		author = DefaultAuthor
	}
	return ZedThemeFamily{
		Schema: zedSchemaURL,
		Name:   t.Name,
		Author: author,
		Themes: []ZedTheme{{
			Name:       t.Name,
			Appearance: string(t.Appearance),
			Style: ZedStyle{
				Colors:  collect(zedColors(t)),
				Players: zedPlayers(t),
				Syntax:  zedSyntax(t),
			},
		}},
	}
}

func zedColors(t *schema.Theme) []colorEntry {
	c := t.Colors
	a := palette.AlphaRGBA

	return []colorEntry{
		{"background", c.Background},
		{"foreground", c.Foreground},

		{"border", c.Border},
		{"border.variant", c.BorderMuted},
		{"border.focused", c.BorderFocused},
		{"border.selected", c.BorderAccent},
		{"border.transparent", a(c.Border, 0)},
		{"border.disabled", a(c.Border, 0.3)},

		{"elevated_surface.background", c.OverlayBackground},
		{"surface.background", c.SurfaceBackground},

		{"element.background", c.Background},
		{"element.hover", c.ElementHover},
		{"element.active", a(c.Foreground, 0.12)},
		{"element.selected", c.ElementSelected},
		{"element.disabled", a(c.Foreground, 0.05)},

		{"ghost_element.background", "transparent"},
		{"ghost_element.hover", c.ElementHover},
		{"ghost_element.active", a(c.Foreground, 0.12)},
		{"ghost_element.selected", c.ElementFocus},
		{"ghost_element.disabled", a(c.Foreground, 0.05)},

		{"drop_target.background", a(c.BorderFocused, 0.2)},

		{"text", c.Foreground},
		{"text.muted", c.TextMuted},
		{"text.placeholder", c.TextMuted},
		{"text.disabled", a(c.Foreground, 0.5)},
		{"text.accent", c.TextAccent},

		{"icon", c.IconColor},
		{"icon.muted", a(c.IconColor, 0.7)},
		{"icon.disabled", a(c.Foreground, 0.5)},
		{"icon.placeholder", c.IconColor},
		{"icon.accent", c.TextAccent},

		{"status_bar.background", c.StatusBarBackground},
		{"title_bar.background", c.TitleBarBackground},
		{"toolbar.background", c.Background},

		{"tab_bar.background", c.TabBarBackground},
		{"tab.inactive_background", c.TabInactiveBackground},
		{"tab.active_background", c.TabActiveBackground},

		{"editor.foreground", c.EditorForeground},
		{"editor.background", c.EditorBackground},
		{"editor.gutter.background", c.EditorBackground},
		{"editor.subheader.background", c.SurfaceBackground},
		{"editor.active_line.background", c.EditorActiveLine},
		{"editor.highlighted_line.background", c.ElementHover},
		{"editor.line_number", c.EditorLineNumber},
		{"editor.active_line_number", c.EditorActiveLineNumber},
		{"editor.invisible", c.EditorInvisible},
		{"editor.wrap_guide", a(c.Border, 0.3)},
		{"editor.active_wrap_guide", a(c.Border, 0.6)},
		{"editor.document_highlight.read_background", a(c.ElementHover, 0.1)},
		{"editor.document_highlight.write_background", a(c.ElementFocus, 0.25)},

		{"terminal.background", c.Background},
		{"terminal.foreground", c.TerminalForeground},
		{"terminal.bright_foreground", c.Foreground},
		{"terminal.dim_foreground", c.TextMuted},
		{"terminal.ansi.black", c.Terminal.Black},
		{"terminal.ansi.red", c.Terminal.Red},
		{"terminal.ansi.green", c.Terminal.Green},
		{"terminal.ansi.yellow", c.Terminal.Yellow},
		{"terminal.ansi.blue", c.Terminal.Blue},
		{"terminal.ansi.magenta", c.Terminal.Magenta},
		{"terminal.ansi.cyan", c.Terminal.Cyan},
		{"terminal.ansi.white", c.Terminal.White},
		{"terminal.ansi.bright_black", c.Terminal.BrightBlack},
		{"terminal.ansi.bright_red", c.Terminal.BrightRed},
		{"terminal.ansi.bright_green", c.Terminal.BrightGreen},
		{"terminal.ansi.bright_yellow", c.Terminal.BrightYellow},
		{"terminal.ansi.bright_blue", c.Terminal.BrightBlue},
		{"terminal.ansi.bright_magenta", c.Terminal.BrightMagenta},
		{"terminal.ansi.bright_cyan", c.Terminal.BrightCyan},
		{"terminal.ansi.bright_white", c.Terminal.BrightWhite},

		{"link_text.hover", c.TextAccent},

		{"conflict", c.Git.Conflict},
		{"conflict.background", a(c.Git.Conflict, 0.15)},
		{"conflict.border", c.Git.Conflict},
		{"created", c.Git.Added},
		{"created.background", a(c.Git.Added, 0.15)},
		{"created.border", c.Git.Added},
		{"modified", c.Git.Modified},
		{"modified.background", a(c.Git.Modified, 0.15)},
		{"modified.border", c.Git.Modified},
		{"deleted", c.Git.Deleted},
		{"deleted.background", a(c.Git.Deleted, 0.15)},
		{"deleted.border", c.Git.Deleted},

		{"error", c.Status.Error},
		{"error.background", a(c.Status.ErrorBackground, 0.15)},
		{"error.border", c.Status.Error},
		{"warning", c.Status.Warning},
		{"warning.background", a(c.Status.WarningBackground, 0.15)},
		{"warning.border", c.Status.Warning},
		{"info", c.Status.Info},
		{"info.background", a(c.Status.InfoBackground, 0.15)},
		{"info.border", c.Status.Info},
		{"success", c.Status.Success},
		{"success.background", a(c.Status.SuccessBackground, 0.15)},
		{"success.border", c.Status.Success},
	}
}

func zedPlayers(t *schema.Theme) []ZedPlayer {
	players := make([]ZedPlayer, 0, len(t.Colors.Players))
	for _, color := range t.Colors.Players {
		players = append(players, ZedPlayer{
			Cursor:     color,
			Background: color,
			Selection:  palette.AlphaRGBA(color, 0.3),
		})
	}
	return players
}

func zedSyntax(t *schema.Theme) map[string]ZedHighlight {
	c := t.Colors
	s := c.Syntax
	plain := func(color string) ZedHighlight { return ZedHighlight{Color: color} }
	const bold = 700

	return map[string]ZedHighlight{
		"attribute":               plain(s.Attribute),
		"boolean":                 plain(s.Boolean),
		"comment":                 plain(s.Comment),
		"comment.doc":             plain(s.Comment),
		"constant":                plain(s.Constant),
		"constructor":             plain(s.Function),
		"embedded":                plain(c.Foreground),
		"emphasis":                {Color: c.Foreground, FontStyle: "italic"},
		"emphasis.strong":         {Color: c.Foreground, FontWeight: bold},
		"enum":                    plain(s.Type),
		"function":                plain(s.Function),
		"hint":                    {Color: c.TextMuted, FontWeight: bold},
		"keyword":                 plain(s.Keyword),
		"label":                   plain(s.Constant),
		"link_text":               {Color: s.Constant, FontStyle: "underline"},
		"link_uri":                plain(s.Constant),
		"number":                  plain(s.Number),
		"operator":                plain(s.Operator),
		"predictive":              {Color: palette.AlphaRGBA(c.TextMuted, 0.6), FontStyle: "italic"},
		"preproc":                 plain(c.Foreground),
		"primary":                 plain(c.Foreground),
		"property":                plain(s.Property),
		"punctuation":             plain(s.Punctuation),
		"punctuation.bracket":     plain(s.Punctuation),
		"punctuation.delimiter":   plain(s.Punctuation),
		"punctuation.list_marker": plain(s.Variable),
		"punctuation.special":     plain(s.StringEscape),
		"string":                  plain(s.String),
		"string.escape":           plain(s.StringEscape),
		"string.regex":            plain(s.Regex),
		"string.special":          plain(s.StringEscape),
		"string.special.symbol":   plain(s.StringEscape),
		"tag":                     plain(s.Tag),
		"text.literal":            plain(s.String),
		"title":                   {Color: s.Constant, FontWeight: bold},
		"type":                    plain(s.Type),
		"variable":                plain(s.Variable),
		"variable.special":        plain(s.VariableSpecial),
		"variant":                 plain(s.Variable),
	}
}
