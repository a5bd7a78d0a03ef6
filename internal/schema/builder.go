package schema

import (
	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/tokens"
	"github.com/Azir-11/azir-theme/internal/variant"
)

// MissingColor is used for any slot whose tokens are all absent.
const MissingColor = "#000000"

// MinTextContrast is the WCAG AA ratio for body text.
const MinTextContrast = 4.5

type builder struct {
	vars    tokens.Variables
	variant variant.Variant
	missing []string
}

// v returns the first declared token among names, normalized to hex. When
// none is declared the slot degrades to MissingColor.
func (b *builder) v(names ...string) string {
	for _, name := range names {
		if value, ok := b.vars[name]; ok && value != "" {
			return palette.Normalize(value)
		}
	}
	b.missing = append(b.missing, names[0])
	return MissingColor
}

func (b *builder) lightDark(light, dark string) string {
	if b.variant.IsLight() {
		return light
	}
	return dark
}

// hasUsable reports whether name is declared with something other than pure
// black or white, which the token sources use as "unset".
func (b *builder) hasUsable(name string) bool {
	value, ok := b.vars[name]
	if !ok || value == "" {
		return false
	}
	n := palette.Normalize(value)
	return n != palette.Black && n != palette.White
}

func (b *builder) onlyHighContrast(color string) string {
	if b.variant.IsHighContrast() {
		return color
	}
	return ""
}

func (b *builder) onlyDark(color string) string {
	if b.variant.IsDark() {
		return color
	}
	return ""
}

func (b *builder) onlyDarkHighContrast(color string) string {
	if b.variant == variant.DarkHighContrast {
		return color
	}
	return ""
}

// Build maps resolved token variables and the color scale for one variant
// into the unified schema. Missing tokens never fail the build.
func Build(vars tokens.Variables, scale palette.Scale, v variant.Variant, name string) *Theme {
	b := &builder{vars: vars, variant: v}

	gray := scale.Hue(palette.Gray)
	blue := scale.Hue(palette.Blue)
	green := scale.Hue(palette.Green)
	yellow := scale.Hue(palette.Yellow)
	red := scale.Hue(palette.Red)
	orange := scale.Hue(palette.Orange)
	purple := scale.Hue(palette.Purple)
	pink := scale.Hue(palette.Pink)
	teal := scale.Hue(palette.Teal)

	background := b.v("bgColor-default")
	foreground := b.v("fgColor-default")

	activeLine := b.lightDark("#afb8c11a", "#656c7633")
	if b.hasUsable("codeMirror-activeline-bgColor") {
		activeLine = b.v("codeMirror-activeline-bgColor")
	}

	accents := [6]string{
		b.lightDark(blue[5], blue[8]),
		b.lightDark(green[5], green[8]),
		b.lightDark(yellow[5], yellow[8]),
		b.lightDark(red[5], red[8]),
		b.lightDark(pink[5], pink[8]),
		b.lightDark(purple[5], purple[8]),
	}

	colors := Colors{
		Background: background,
		Foreground: foreground,

		Border:        b.v("borderColor-default"),
		BorderMuted:   b.v("borderColor-muted"),
		BorderFocused: b.v("bgColor-accent-emphasis"),
		BorderAccent:  b.v("borderColor-accent-emphasis"),

		SurfaceBackground: b.v("bgColor-muted"),
		OverlayBackground: b.v("overlay-bgColor", "bgColor-default"),

		ElementHover:    b.v("bgColor-neutral-muted"),
		ElementActive:   b.v("bgColor-neutral-muted"),
		ElementSelected: b.v("bgColor-neutral-muted"),
		ElementFocus:    b.v("bgColor-accent-muted"),

		TextMuted:      b.v("fgColor-muted"),
		TextAccent:     b.v("fgColor-accent"),
		TextOnEmphasis: b.v("fgColor-onEmphasis"),

		IconColor: b.v("fgColor-muted"),

		StatusBarBackground:        background,
		StatusBarForeground:        b.v("fgColor-muted"),
		TitleBarBackground:         background,
		TitleBarForeground:         b.v("fgColor-muted"),
		TitleBarInactiveBackground: b.v("bgColor-muted"),

		TabBarBackground:      b.v("bgColor-muted"),
		TabInactiveBackground: b.v("bgColor-muted"),
		TabInactiveForeground: b.v("fgColor-muted"),
		TabActiveBackground:   background,
		TabActiveForeground:   foreground,
		TabActiveBorder:       b.v("borderColor-accent-emphasis"),

		EditorBackground:       background,
		EditorForeground:       foreground,
		EditorLineNumber:       gray[4],
		EditorActiveLineNumber: foreground,
		EditorActiveLine:       activeLine,
		EditorInvisible:        gray[5],
		EditorSelection:        b.v("fgColor-accent"),
		EditorCursor:           b.v("fgColor-accent"),
		EditorIndentGuide:      b.lightDark(gray[3], gray[6]),

		SidebarBackground: b.v("bgColor-muted"),
		SidebarForeground: foreground,

		ListHoverBackground:  b.v("bgColor-neutral-muted"),
		ListActiveBackground: b.v("bgColor-neutral-muted"),
		ListFocusBackground:  b.v("bgColor-accent-muted"),
		ListHighlight:        b.v("fgColor-accent"),

		ButtonPrimaryBackground:   b.v("button-primary-bgColor-rest", "bgColor-success-emphasis"),
		ButtonPrimaryForeground:   b.v("button-primary-fgColor-rest"),
		ButtonPrimaryHover:        b.v("button-primary-bgColor-hover"),
		ButtonSecondaryBackground: b.v("button-default-bgColor-active"),
		ButtonSecondaryForeground: b.v("button-default-fgColor-rest", "fgColor-default"),
		ButtonSecondaryHover:      b.v("button-default-bgColor-hover"),

		InputBackground:  background,
		InputBorder:      b.v("borderColor-default"),
		InputForeground:  foreground,
		InputPlaceholder: b.v("fgColor-muted"),

		BadgeBackground: b.v("bgColor-accent-emphasis"),
		BadgeForeground: b.v("fgColor-onEmphasis"),

		TerminalForeground: foreground,
		Terminal: Terminal{
			Black:         b.v("color-ansi-black"),
			Red:           b.v("color-ansi-red"),
			Green:         b.v("color-ansi-green"),
			Yellow:        b.v("color-ansi-yellow"),
			Blue:          b.v("color-ansi-blue"),
			Magenta:       b.v("color-ansi-magenta"),
			Cyan:          b.v("color-ansi-cyan"),
			White:         b.v("color-ansi-white"),
			BrightBlack:   b.v("color-ansi-black-bright"),
			BrightRed:     b.v("color-ansi-red-bright"),
			BrightGreen:   b.v("color-ansi-green-bright"),
			BrightYellow:  b.v("color-ansi-yellow-bright"),
			BrightBlue:    b.v("color-ansi-blue-bright"),
			BrightMagenta: b.v("color-ansi-magenta-bright"),
			BrightCyan:    b.v("color-ansi-cyan-bright"),
			BrightWhite:   b.v("color-ansi-white-bright"),
		},

		Syntax: Syntax{
			Comment:         b.lightDark(gray[5], gray[7]),
			String:          b.lightDark(blue[7], blue[6]),
			StringEscape:    b.lightDark(red[5], red[7]),
			Number:          b.lightDark(blue[5], blue[8]),
			Boolean:         b.lightDark(blue[5], blue[8]),
			Constant:        b.lightDark(blue[5], blue[8]),
			Variable:        b.lightDark(orange[5], orange[8]),
			VariableSpecial: b.lightDark(blue[5], blue[8]),
			Property:        b.lightDark(blue[5], blue[9]),
			Keyword:         b.lightDark(red[5], red[7]),
			Storage:         b.lightDark(purple[5], teal[7]),
			Function:        b.lightDark(purple[5], purple[8]),
			Class:           b.lightDark(orange[5], orange[8]),
			Type:            b.lightDark(green[5], green[9]),
			Tag:             b.lightDark(green[5], green[8]),
			Attribute:       b.lightDark(blue[5], blue[9]),
			Operator:        foreground,
			Punctuation:     foreground,
			Regex:           b.lightDark(blue[5], blue[9]),
			Invalid:         b.lightDark(red[5], red[9]),
		},

		Git: Git{
			Added:     b.v("fgColor-success"),
			Modified:  b.v("fgColor-upsell"),
			Deleted:   b.v("fgColor-danger"),
			Untracked: b.v("fgColor-success"),
			Ignored:   b.v("fgColor-muted"),
			Conflict:  b.v("fgColor-sponsors"),
		},

		Status: Status{
			Error:             b.v("fgColor-danger"),
			ErrorBackground:   b.v("bgColor-danger-emphasis"),
			Warning:           b.v("fgColor-attention"),
			WarningBackground: b.v("bgColor-attention-muted"),
			Info:              b.v("fgColor-accent"),
			InfoBackground:    b.v("bgColor-accent-muted"),
			Success:           b.v("fgColor-success"),
			SuccessBackground: b.v("bgColor-success-emphasis"),
		},

		Diff: Diff{
			InsertedBackground: b.lightDark("#34d05840", "#34d05826"),
			InsertedText:       b.lightDark("#116329", "#aff5b4"),
			RemovedBackground:  b.lightDark("#ff818226", "#da363340"),
			RemovedText:        b.lightDark("#82071e", "#ffb3b3"),
		},

		Scrollbar: Scrollbar{
			Shadow:     gray[5],
			Background: gray[7],
		},

		ActivityBarBackground:         background,
		ActivityBarForeground:         foreground,
		ActivityBarInactiveForeground: b.v("fgColor-muted"),
		ActivityBarBadgeBackground:    b.v("bgColor-accent-emphasis"),
		ActivityBarBadgeForeground:    b.v("fgColor-onEmphasis"),
		ActivityBarBorder:             b.v("borderColor-default"),

		Brackets: accents,
		Players:  accents,
	}

	overrides := Overrides{
		SelectionForeground:         b.onlyHighContrast(colors.TextOnEmphasis),
		SelectionBackground:         b.onlyHighContrast(colors.BorderFocused),
		InactiveSelectionBackground: b.onlyHighContrast(colors.ElementHover),
		LineHighlightBorder:         b.onlyDarkHighContrast(colors.TextAccent),
		PeekMatchHighlight:          b.onlyDark(colors.Status.WarningBackground),
		PeekEditorBackground:        b.onlyDark(colors.ElementHover),
		PeekResultBackground:        b.onlyDark(colors.Background),
	}

	if len(b.missing) > 0 {
		log.Debugf("%s: %d slots fell back to %s (first missing token: %s)", v, len(b.missing), MissingColor, b.missing[0])
	}
	if ratio := palette.ContrastRatio(colors.Foreground, colors.Background); ratio < MinTextContrast {
		log.Warnf("%s: foreground/background contrast %.2f is below %.1f", v, ratio, MinTextContrast)
	}

	return &Theme{
		Name:       name,
		Type:       v,
		Appearance: v.Appearance(),
		Colors:     colors,
		Overrides:  overrides,
		Meta: Meta{
			Scale:     scale,
			Variables: vars,
			IsLight:   v.IsLight(),
		},
	}
}

// FromVariables builds the scale and the schema in one step.
func FromVariables(vars tokens.Variables, v variant.Variant) *Theme {
	return Build(vars, palette.BuildScale(vars), v, v.DisplayName())
}
