// Package adapters turns the unified schema into editor theme files.
package adapters

import (
	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/schema"
)

const vscodeSchemaURL = "vscode://schemas/color-theme"

type VSCodeTheme struct {
	Schema               string                        `json:"$schema"`
	Name                 string                        `json:"name"`
	Type                 string                        `json:"type"`
	Colors               map[string]string             `json:"colors"`
	SemanticHighlighting bool                          `json:"semanticHighlighting"`
	TokenColors          []VSCodeTokenColor            `json:"tokenColors"`
	SemanticTokenColors  map[string]VSCodeTokenSetting `json:"semanticTokenColors"`
}

// VSCodeTokenColor scope is either a single selector string or a list of them.
type VSCodeTokenColor struct {
	Scope    interface{}        `json:"scope"`
	Settings VSCodeTokenSetting `json:"settings"`
}

// VSCodeTokenSetting uses a pointer for FontStyle because an explicit empty
// style clears inherited italics and must survive marshalling.
type VSCodeTokenSetting struct {
	Foreground string  `json:"foreground,omitempty"`
	Background string  `json:"background,omitempty"`
	FontStyle  *string `json:"fontStyle,omitempty"`
	Content    string  `json:"content,omitempty"`
}

type colorEntry struct {
	key   string
	value string
}

func style(s string) *string { return &s }

// collect folds an ordered table into a map. Empty values are skipped so a
// variant-only entry never erases the regular value of the same key.
func collect(entries []colorEntry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		out[e.key] = e.value
	}
	return out
}

type scaleView struct {
	isLight bool
	scale   palette.Scale
}

func (s scaleView) lightDark(light, dark string) string {
	if s.isLight {
		return light
	}
	return dark
}

func (s scaleView) hue(name string) palette.Ramp { return s.scale.Hue(name) }

func VSCode(t *schema.Theme) VSCodeTheme {
	return VSCodeTheme{
		Schema:               vscodeSchemaURL,
		Name:                 t.Name,
		Type:                 string(t.Appearance),
		Colors:               collect(vscodeColors(t)),
		SemanticHighlighting: true,
		TokenColors:          vscodeTokenColors(t),
		SemanticTokenColors:  vscodeSemanticTokenColors(t),
	}
}

func vscodeColors(t *schema.Theme) []colorEntry {
	c := t.Colors
	o := t.Overrides
	sv := scaleView{isLight: t.Meta.IsLight, scale: t.Meta.Scale}
	ld := sv.lightDark

	gray := sv.hue(palette.Gray)
	blue := sv.hue(palette.Blue)
	green := sv.hue(palette.Green)
	yellow := sv.hue(palette.Yellow)
	red := sv.hue(palette.Red)
	orange := sv.hue(palette.Orange)
	purple := sv.hue(palette.Purple)

	a := palette.AlphaHex

	return []colorEntry{
		{"focusBorder", c.BorderFocused},
		{"foreground", c.Foreground},
		{"descriptionForeground", c.TextMuted},
		{"errorForeground", c.Status.Error},

		{"textLink.foreground", c.TextAccent},
		{"textLink.activeForeground", c.TextAccent},
		{"textBlockQuote.background", c.SurfaceBackground},
		{"textBlockQuote.border", c.Border},
		{"textCodeBlock.background", c.ElementHover},
		{"textPreformat.foreground", c.TextMuted},
		{"textPreformat.background", c.ElementHover},
		{"textSeparator.foreground", c.BorderMuted},

		{"icon.foreground", c.IconColor},
		{"keybindingLabel.foreground", c.Foreground},

		{"button.background", c.ButtonPrimaryBackground},
		{"button.foreground", c.ButtonPrimaryForeground},
		{"button.hoverBackground", c.ButtonPrimaryHover},
		{"button.secondaryBackground", c.ButtonSecondaryBackground},
		{"button.secondaryForeground", c.ButtonSecondaryForeground},
		{"button.secondaryHoverBackground", c.ButtonSecondaryHover},

		{"checkbox.background", c.SurfaceBackground},
		{"checkbox.border", c.Border},

		{"dropdown.background", c.OverlayBackground},
		{"dropdown.border", c.Border},
		{"dropdown.foreground", c.Foreground},
		{"dropdown.listBackground", c.OverlayBackground},

		{"input.background", c.InputBackground},
		{"input.border", c.InputBorder},
		{"input.foreground", c.InputForeground},
		{"input.placeholderForeground", c.InputPlaceholder},

		{"badge.foreground", c.BadgeForeground},
		{"badge.background", c.BadgeBackground},

		{"progressBar.background", c.BorderFocused},

		{"titleBar.activeForeground", c.TitleBarForeground},
		{"titleBar.activeBackground", c.TitleBarBackground},
		{"titleBar.inactiveForeground", c.TitleBarForeground},
		{"titleBar.inactiveBackground", c.TitleBarInactiveBackground},
		{"titleBar.border", c.Border},

		{"activityBar.foreground", c.ActivityBarForeground},
		{"activityBar.inactiveForeground", c.ActivityBarInactiveForeground},
		{"activityBar.background", c.ActivityBarBackground},
		{"activityBarBadge.foreground", c.ActivityBarBadgeForeground},
		{"activityBarBadge.background", c.ActivityBarBadgeBackground},
		{"activityBar.activeBorder", c.BorderFocused},
		{"activityBar.border", c.ActivityBarBorder},

		{"sideBar.foreground", c.SidebarForeground},
		{"sideBar.background", c.SidebarBackground},
		{"sideBar.border", c.Border},
		{"sideBarTitle.foreground", c.Foreground},
		{"sideBarSectionHeader.foreground", c.Foreground},
		{"sideBarSectionHeader.background", c.SidebarBackground},
		{"sideBarSectionHeader.border", c.Border},

		{"list.hoverForeground", c.Foreground},
		{"list.inactiveSelectionForeground", c.Foreground},
		{"list.activeSelectionForeground", c.Foreground},
		{"list.hoverBackground", c.ListHoverBackground},
		{"list.inactiveSelectionBackground", c.ListActiveBackground},
		{"list.activeSelectionBackground", c.ListActiveBackground},
		{"list.focusForeground", c.Foreground},
		{"list.focusBackground", c.ListFocusBackground},
		{"list.inactiveFocusBackground", c.ListFocusBackground},
		{"list.highlightForeground", c.ListHighlight},

		{"tree.indentGuidesStroke", c.BorderMuted},

		{"notificationCenterHeader.foreground", c.TextMuted},
		{"notificationCenterHeader.background", c.SurfaceBackground},
		{"notifications.foreground", c.Foreground},
		{"notifications.background", c.OverlayBackground},
		{"notifications.border", c.Border},
		{"notificationsErrorIcon.foreground", c.Status.Error},
		{"notificationsWarningIcon.foreground", c.Status.Warning},
		{"notificationsInfoIcon.foreground", c.Status.Info},

		{"pickerGroup.border", c.Border},
		{"pickerGroup.foreground", c.TextMuted},
		{"quickInput.background", c.OverlayBackground},
		{"quickInput.foreground", c.Foreground},

		{"statusBar.foreground", c.StatusBarForeground},
		{"statusBar.background", c.StatusBarBackground},
		{"statusBar.border", c.Border},
		{"statusBar.focusBorder", a(c.BorderFocused, 0.5)},
		{"statusBar.noFolderBackground", c.StatusBarBackground},
		{"statusBar.debuggingForeground", c.TextOnEmphasis},
		{"statusBar.debuggingBackground", c.Status.ErrorBackground},
		{"statusBarItem.prominentBackground", c.ElementHover},
		{"statusBarItem.remoteForeground", c.Foreground},
		{"statusBarItem.remoteBackground", gray[6]},
		{"statusBarItem.hoverBackground", a(c.Foreground, 0.08)},
		{"statusBarItem.activeBackground", a(c.Foreground, 0.12)},
		{"statusBarItem.focusBorder", c.BorderFocused},

		{"editorGroupHeader.tabsBackground", c.TabBarBackground},
		{"editorGroupHeader.tabsBorder", c.Border},
		{"editorGroup.border", c.Border},

		{"tab.activeForeground", c.TabActiveForeground},
		{"tab.inactiveForeground", c.TabInactiveForeground},
		{"tab.inactiveBackground", c.TabInactiveBackground},
		{"tab.activeBackground", c.TabActiveBackground},
		{"tab.hoverBackground", c.TabActiveBackground},
		{"tab.unfocusedHoverBackground", c.ElementHover},
		{"tab.border", c.Border},
		{"tab.unfocusedActiveBorderTop", c.Border},
		{"tab.activeBorder", c.TabActiveBackground},
		{"tab.unfocusedActiveBorder", c.TabActiveBackground},
		{"tab.activeBorderTop", c.TabActiveBorder},

		{"breadcrumb.foreground", c.TextMuted},
		{"breadcrumb.focusForeground", c.Foreground},
		{"breadcrumb.activeSelectionForeground", c.TextMuted},
		{"breadcrumbPicker.background", c.OverlayBackground},

		{"editor.foreground", c.EditorForeground},
		{"editor.background", c.EditorBackground},
		{"editorWidget.background", c.OverlayBackground},
		{"editor.foldBackground", a(c.ElementHover, 0.1)},
		{"editor.lineHighlightBackground", c.EditorActiveLine},
		{"editor.lineHighlightBorder", o.LineHighlightBorder},
		{"editorLineNumber.foreground", c.EditorLineNumber},
		{"editorLineNumber.activeForeground", c.EditorActiveLineNumber},
		{"editorIndentGuide.background", a(c.Foreground, 0.12)},
		{"editorIndentGuide.activeBackground", a(c.Foreground, 0.24)},
		{"editorWhitespace.foreground", c.EditorInvisible},
		{"editorCursor.foreground", c.EditorCursor},

		{"editor.findMatchBackground", a(c.Status.Warning, 0.6)},
		{"editor.findMatchHighlightBackground", a(c.TextAccent, 0.5)},
		{"editor.linkedEditingBackground", a(c.TextAccent, 0.07)},
		{"editor.inactiveSelectionBackground", a(c.EditorSelection, 0.7)},
		{"editor.selectionBackground", a(c.EditorSelection, 0.2)},
		{"editor.selectionHighlightBackground", a(green[3], 0.25)},
		{"editor.wordHighlightBackground", a(c.ElementHover, 0.5)},
		{"editor.wordHighlightBorder", a(c.ElementHover, 0.6)},
		{"editor.wordHighlightStrongBackground", a(c.ElementHover, 0.3)},
		{"editor.wordHighlightStrongBorder", a(c.ElementHover, 0.6)},
		{"editorBracketMatch.background", a(green[3], 0.25)},
		{"editorBracketMatch.border", a(green[3], 0.6)},
		{"editor.selectionForeground", o.SelectionForeground},
		{"editor.selectionBackground", o.SelectionBackground},
		{"editor.inactiveSelectionBackground", o.InactiveSelectionBackground},

		{"editorInlayHint.background", a(gray[7], 0.2)},
		{"editorInlayHint.foreground", c.TextMuted},
		{"editorInlayHint.typeBackground", a(gray[7], 0.2)},
		{"editorInlayHint.typeForeground", c.TextMuted},
		{"editorInlayHint.paramBackground", a(gray[7], 0.2)},
		{"editorInlayHint.paramForeground", c.TextMuted},

		{"editorGutter.modifiedBackground", c.Git.Modified},
		{"editorGutter.addedBackground", c.Git.Added},
		{"editorGutter.deletedBackground", c.Git.Deleted},

		{"diffEditor.insertedLineBackground", c.Diff.InsertedBackground},
		{"diffEditor.insertedTextBackground", a(c.Diff.InsertedText, 0.3)},
		{"diffEditor.removedLineBackground", c.Diff.RemovedBackground},
		{"diffEditor.removedTextBackground", a(c.Diff.RemovedText, 0.3)},

		{"scrollbar.shadow", a(c.Scrollbar.Shadow, 0.2)},
		{"scrollbarSlider.background", a(c.Scrollbar.Background, 0.2)},
		{"scrollbarSlider.hoverBackground", a(c.Scrollbar.Background, 0.24)},
		{"scrollbarSlider.activeBackground", a(c.Scrollbar.Background, 0.28)},
		{"editorOverviewRuler.border", ld(t.Meta.Scale.White, t.Meta.Scale.Black)},

		{"minimapSlider.background", a(c.Scrollbar.Background, 0.2)},
		{"minimapSlider.hoverBackground", a(c.Scrollbar.Background, 0.24)},
		{"minimapSlider.activeBackground", a(c.Scrollbar.Background, 0.28)},

		{"panel.background", c.SurfaceBackground},
		{"panel.border", c.Border},
		{"panelTitle.activeBorder", c.TabActiveBorder},
		{"panelTitle.activeForeground", c.Foreground},
		{"panelTitle.inactiveForeground", c.TextMuted},
		{"panelInput.border", c.Border},

		{"debugIcon.breakpointForeground", c.Status.Error},

		{"debugConsole.infoForeground", ld(gray[5], gray[7])},
		{"debugConsole.warningForeground", ld(yellow[5], yellow[3])},
		{"debugConsole.errorForeground", ld(red[5], red[8])},
		{"debugConsole.sourceForeground", ld(yellow[5], yellow[2])},
		{"debugConsoleInputIcon.foreground", ld(purple[5], purple[3])},

		{"debugTokenExpression.name", blue[8]},
		{"debugTokenExpression.value", blue[1]},
		{"debugTokenExpression.string", blue[1]},
		{"debugTokenExpression.boolean", green[2]},
		{"debugTokenExpression.number", green[2]},
		{"debugTokenExpression.error", red[8]},

		{"symbolIcon.arrayForeground", ld(orange[5], orange[3])},
		{"symbolIcon.booleanForeground", ld(blue[5], blue[3])},
		{"symbolIcon.classForeground", ld(orange[5], orange[3])},
		{"symbolIcon.colorForeground", ld(blue[5], blue[8])},
		{"symbolIcon.constructorForeground", ld(purple[5], purple[8])},
		{"symbolIcon.enumeratorForeground", ld(orange[5], orange[3])},
		{"symbolIcon.enumeratorMemberForeground", ld(blue[5], blue[3])},
		{"symbolIcon.eventForeground", ld(gray[5], gray[4])},
		{"symbolIcon.fieldForeground", ld(orange[5], orange[3])},
		{"symbolIcon.fileForeground", ld(yellow[5], yellow[3])},
		{"symbolIcon.folderForeground", ld(yellow[5], yellow[3])},
		{"symbolIcon.functionForeground", ld(purple[5], purple[3])},
		{"symbolIcon.interfaceForeground", ld(orange[5], orange[3])},
		{"symbolIcon.keyForeground", ld(blue[5], blue[3])},
		{"symbolIcon.keywordForeground", ld(red[5], red[7])},
		{"symbolIcon.methodForeground", ld(purple[5], purple[3])},
		{"symbolIcon.moduleForeground", ld(red[5], red[7])},
		{"symbolIcon.namespaceForeground", ld(red[5], red[7])},
		{"symbolIcon.nullForeground", ld(blue[5], blue[3])},
		{"symbolIcon.numberForeground", ld(green[5], green[3])},
		{"symbolIcon.objectForeground", ld(orange[5], orange[3])},
		{"symbolIcon.operatorForeground", ld(blue[5], blue[8])},
		{"symbolIcon.packageForeground", ld(orange[5], orange[3])},
		{"symbolIcon.propertyForeground", ld(orange[5], orange[3])},
		{"symbolIcon.referenceForeground", ld(blue[5], blue[3])},
		{"symbolIcon.snippetForeground", ld(blue[5], blue[3])},
		{"symbolIcon.stringForeground", ld(blue[5], blue[8])},
		{"symbolIcon.structForeground", ld(orange[5], orange[3])},
		{"symbolIcon.textForeground", ld(blue[5], blue[8])},
		{"symbolIcon.typeParameterForeground", ld(blue[5], blue[8])},
		{"symbolIcon.unitForeground", ld(blue[5], blue[3])},
		{"symbolIcon.variableForeground", ld(orange[5], orange[3])},
		{"symbolIcon.constantForeground", ld(green[5], green[6])},

		{"terminal.foreground", c.TerminalForeground},
		{"terminal.ansiBlack", c.Terminal.Black},
		{"terminal.ansiRed", c.Terminal.Red},
		{"terminal.ansiGreen", c.Terminal.Green},
		{"terminal.ansiYellow", c.Terminal.Yellow},
		{"terminal.ansiBlue", c.Terminal.Blue},
		{"terminal.ansiMagenta", c.Terminal.Magenta},
		{"terminal.ansiCyan", c.Terminal.Cyan},
		{"terminal.ansiWhite", c.Terminal.White},
		{"terminal.ansiBrightBlack", c.Terminal.BrightBlack},
		{"terminal.ansiBrightRed", c.Terminal.BrightRed},
		{"terminal.ansiBrightGreen", c.Terminal.BrightGreen},
		{"terminal.ansiBrightYellow", c.Terminal.BrightYellow},
		{"terminal.ansiBrightBlue", c.Terminal.BrightBlue},
		{"terminal.ansiBrightMagenta", c.Terminal.BrightMagenta},
		{"terminal.ansiBrightCyan", c.Terminal.BrightCyan},
		{"terminal.ansiBrightWhite", c.Terminal.BrightWhite},

		{"editorBracketHighlight.foreground1", c.Brackets[0]},
		{"editorBracketHighlight.foreground2", c.Brackets[1]},
		{"editorBracketHighlight.foreground3", c.Brackets[2]},
		{"editorBracketHighlight.foreground4", c.Brackets[3]},
		{"editorBracketHighlight.foreground5", c.Brackets[4]},
		{"editorBracketHighlight.foreground6", c.Brackets[5]},
		{"editorBracketHighlight.unexpectedBracket.foreground", c.TextMuted},

		{"gitDecoration.addedResourceForeground", c.Git.Added},
		{"gitDecoration.modifiedResourceForeground", c.Git.Modified},
		{"gitDecoration.deletedResourceForeground", c.Git.Deleted},
		{"gitDecoration.untrackedResourceForeground", c.Git.Untracked},
		{"gitDecoration.ignoredResourceForeground", c.Git.Ignored},
		{"gitDecoration.conflictingResourceForeground", c.Git.Conflict},
		{"gitDecoration.submoduleResourceForeground", c.TextMuted},

		{"debugToolBar.background", c.OverlayBackground},
		{"editor.stackFrameHighlightBackground", c.Status.WarningBackground},
		{"editor.focusedStackFrameHighlightBackground", c.Status.SuccessBackground},

		{"peekViewEditor.matchHighlightBackground", o.PeekMatchHighlight},
		{"peekViewResult.matchHighlightBackground", o.PeekMatchHighlight},
		{"peekViewEditor.background", o.PeekEditorBackground},
		{"peekViewResult.background", o.PeekResultBackground},

		{"settings.headerForeground", c.Foreground},
		{"settings.modifiedItemIndicator", c.Status.WarningBackground},
		{"welcomePage.buttonBackground", c.ButtonSecondaryBackground},
		{"welcomePage.buttonHoverBackground", c.ButtonSecondaryHover},
	}
}

func vscodeTokenColors(t *schema.Theme) []VSCodeTokenColor {
	c := t.Colors
	s := c.Syntax
	gray := t.Meta.Scale.Hue(palette.Gray)
	blue := t.Meta.Scale.Hue(palette.Blue)

	fg := func(color string) VSCodeTokenSetting { return VSCodeTokenSetting{Foreground: color} }
	styled := func(color, fontStyle string) VSCodeTokenSetting {
		return VSCodeTokenSetting{Foreground: color, FontStyle: style(fontStyle)}
	}

	return []VSCodeTokenColor{
		{Scope: []string{"comment", "punctuation.definition.comment", "string.comment"}, Settings: fg(s.Comment)},
		{Scope: []string{"string", "string punctuation.section.embedded source"}, Settings: fg(s.String)},
		{Scope: []string{"constant.other.placeholder", "constant.character"}, Settings: fg(s.StringEscape)},
		{Scope: []string{"constant", "entity.name.constant", "variable.other.enummember", "variable.language", "entity"}, Settings: fg(s.Constant)},
		{Scope: []string{"entity.name", "meta.export.default", "meta.definition.variable"}, Settings: fg(s.Variable)},
		{Scope: []string{
			"variable.parameter.function",
			"meta.jsx.children",
			"meta.block",
			"meta.tag.attributes",
			"entity.name.constant",
			"meta.object.member",
			"meta.embedded.expression",
		}, Settings: fg(c.Foreground)},
		{Scope: "entity.name.function", Settings: fg(s.Function)},
		{Scope: []string{"entity.name.tag", "support.class.component"}, Settings: fg(s.Tag)},
		{Scope: "keyword", Settings: fg(s.Keyword)},
		{Scope: []string{"storage", "storage.type"}, Settings: fg(s.Storage)},
		{Scope: []string{"meta.object-literal.key"}, Settings: styled(s.Property, "")},
		{Scope: []string{"entity.name.type"}, Settings: fg(s.Type)},
		{Scope: []string{"entity.other.attribute-name", "keyword.control.conditional.vue"}, Settings: fg(s.Attribute)},
		{Scope: []string{"storage.modifier.package", "storage.modifier.import", "storage.type.java"}, Settings: fg(c.Foreground)},
		{Scope: []string{"string punctuation.section.embedded source"}, Settings: fg(s.Punctuation)},
		{Scope: "support", Settings: fg(s.Property)},
		{Scope: "meta.property-name", Settings: fg(s.Property)},
		{Scope: []string{
			"variable.other.constant",
			"variable.other",
			"support.type.property-name",
			"support.type.vendored.property-name",
		}, Settings: fg(c.Foreground)},
		{Scope: []string{"variable.other.property", "variable"}, Settings: fg(s.Variable)},
		{Scope: []string{"meta.attribute.class.html"}, Settings: fg(s.Class)},
		{Scope: "invalid.broken", Settings: styled(s.Invalid, "italic")},
		{Scope: "invalid.deprecated", Settings: styled(s.Invalid, "italic")},
		{Scope: "invalid.illegal", Settings: styled(s.Invalid, "italic")},
		{Scope: "invalid.unimplemented", Settings: styled(s.Invalid, "italic")},
		{Scope: "carriage-return", Settings: VSCodeTokenSetting{
			Foreground: c.Foreground,
			Background: c.Status.ErrorBackground,
			FontStyle:  style("italic underline"),
			Content:    "^M",
		}},
		{Scope: "message.error", Settings: fg(c.Status.Error)},
		{Scope: []string{"source.regexp", "string.regexp"}, Settings: fg(s.Regex)},
		{Scope: []string{
			"string.regexp.character-class",
			"string.regexp constant.character.escape",
			"string.regexp source.ruby.embedded",
			"string.regexp string.regexp.arbitrary-repitition",
		}, Settings: fg(s.Regex)},
		{Scope: "string.regexp constant.character.escape", Settings: styled(s.StringEscape, "bold")},
		{Scope: "support.constant", Settings: fg(s.Constant)},
		{Scope: "support.variable", Settings: fg(s.VariableSpecial)},
		{Scope: "support.type.property-name.json", Settings: fg(s.Property)},
		{Scope: "meta.module-reference", Settings: fg(s.Constant)},
		{Scope: "punctuation.definition.list.begin.markdown", Settings: fg(s.Variable)},
		{Scope: []string{"markup.heading", "markup.heading entity.name"}, Settings: styled(s.Constant, "bold")},
		{Scope: "markup.quote", Settings: fg(s.Type)},
		{Scope: "markup.italic", Settings: styled(c.Foreground, "italic")},
		{Scope: "markup.bold", Settings: styled(c.Foreground, "bold")},
		{Scope: []string{"markup.underline"}, Settings: VSCodeTokenSetting{FontStyle: style("underline")}},
		{Scope: []string{"markup.strikethrough"}, Settings: VSCodeTokenSetting{FontStyle: style("strikethrough")}},
		{Scope: "markup.inline.raw", Settings: fg(s.Constant)},
		{Scope: []string{"markup.deleted", "meta.diff.header.from-file", "punctuation.definition.deleted"}, Settings: VSCodeTokenSetting{
			Foreground: c.Diff.RemovedText,
			Background: c.Diff.RemovedBackground,
		}},
		{Scope: []string{"punctuation.section.embedded"}, Settings: fg(s.StringEscape)},
		{Scope: []string{"markup.inserted", "meta.diff.header.to-file", "punctuation.definition.inserted"}, Settings: VSCodeTokenSetting{
			Foreground: c.Diff.InsertedText,
			Background: c.Diff.InsertedBackground,
		}},
		{Scope: []string{"markup.changed", "punctuation.definition.changed"}, Settings: VSCodeTokenSetting{
			Foreground: c.Status.Warning,
			Background: c.Status.WarningBackground,
		}},
		{Scope: []string{"markup.ignored", "markup.untracked"}, Settings: VSCodeTokenSetting{
			Foreground: gray[8],
			Background: blue[8],
		}},
		{Scope: "meta.diff.range", Settings: styled(s.Function, "bold")},
		{Scope: "meta.diff.header", Settings: fg(s.Constant)},
		{Scope: "meta.separator", Settings: styled(s.Constant, "bold")},
		{Scope: "meta.output", Settings: fg(s.Constant)},
		{Scope: []string{
			"brackethighlighter.tag",
			"brackethighlighter.curly",
			"brackethighlighter.round",
			"brackethighlighter.square",
			"brackethighlighter.angle",
			"brackethighlighter.quote",
		}, Settings: fg(s.Comment)},
		{Scope: "brackethighlighter.unmatched", Settings: fg(c.Status.Error)},
		{Scope: []string{"constant.other.reference.link", "string.other.link"}, Settings: fg(s.Constant)},
	}
}

func vscodeSemanticTokenColors(t *schema.Theme) map[string]VSCodeTokenSetting {
	s := t.Colors.Syntax
	return map[string]VSCodeTokenSetting{
		"variable.readonly": {Foreground: s.Constant},
		"property":          {Foreground: s.Property},
		"function":          {Foreground: s.Function},
		"method":            {Foreground: s.Function},
		"type":              {Foreground: s.Type},
		"class":             {Foreground: s.Class},
		"enumMember":        {Foreground: s.Constant},
		"string":            {Foreground: s.String},
		"number":            {Foreground: s.Number},
		"comment":           {Foreground: s.Comment},
		"keyword":           {Foreground: s.Keyword},
		"operator":          {Foreground: s.Operator},
		"parameter":         {Foreground: t.Colors.Foreground},
		"namespace":         {Foreground: s.Storage},
	}
}
