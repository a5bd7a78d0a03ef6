// Package schema builds the unified, editor-agnostic color model that every
// output format is derived from.
package schema

import (
	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/tokens"
	"github.com/Azir-11/azir-theme/internal/variant"
)

// Theme is the unified schema for one variant.
type Theme struct {
	Name       string             `json:"name"`
	Type       variant.Variant    `json:"-"`
	Appearance variant.Appearance `json:"appearance"`
	Colors     Colors             `json:"colors"`
	Overrides  Overrides          `json:"overrides"`
	Meta       Meta               `json:"-"`
}

type Meta struct {
	Scale     palette.Scale
	Variables tokens.Variables
	IsLight   bool
}

// Overrides are slots that only some variants define. An empty string means
// the variant has no override and the target keeps its regular value.
type Overrides struct {
	// Both high contrast variants.
	SelectionForeground         string `json:"selectionForeground,omitempty"`
	SelectionBackground         string `json:"selectionBackground,omitempty"`
	InactiveSelectionBackground string `json:"inactiveSelectionBackground,omitempty"`

	// Dark high contrast only.
	LineHighlightBorder string `json:"lineHighlightBorder,omitempty"`

	// Dark variants only.
	PeekMatchHighlight   string `json:"peekMatchHighlight,omitempty"`
	PeekEditorBackground string `json:"peekEditorBackground,omitempty"`
	PeekResultBackground string `json:"peekResultBackground,omitempty"`
}

type Colors struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`

	Border        string `json:"border"`
	BorderMuted   string `json:"borderMuted"`
	BorderFocused string `json:"borderFocused"`
	BorderAccent  string `json:"borderAccent"`

	SurfaceBackground string `json:"surfaceBackground"`
	OverlayBackground string `json:"overlayBackground"`

	ElementHover    string `json:"elementHover"`
	ElementActive   string `json:"elementActive"`
	ElementSelected string `json:"elementSelected"`
	ElementFocus    string `json:"elementFocus"`

	TextMuted      string `json:"textMuted"`
	TextAccent     string `json:"textAccent"`
	TextOnEmphasis string `json:"textOnEmphasis"`

	IconColor string `json:"iconColor"`

	StatusBarBackground        string `json:"statusBarBackground"`
	StatusBarForeground        string `json:"statusBarForeground"`
	TitleBarBackground         string `json:"titleBarBackground"`
	TitleBarForeground         string `json:"titleBarForeground"`
	TitleBarInactiveBackground string `json:"titleBarInactiveBackground"`

	TabBarBackground      string `json:"tabBarBackground"`
	TabInactiveBackground string `json:"tabInactiveBackground"`
	TabInactiveForeground string `json:"tabInactiveForeground"`
	TabActiveBackground   string `json:"tabActiveBackground"`
	TabActiveForeground   string `json:"tabActiveForeground"`
	TabActiveBorder       string `json:"tabActiveBorder"`

	EditorBackground       string `json:"editorBackground"`
	EditorForeground       string `json:"editorForeground"`
	EditorLineNumber       string `json:"editorLineNumber"`
	EditorActiveLineNumber string `json:"editorActiveLineNumber"`
	EditorActiveLine       string `json:"editorActiveLine"`
	EditorInvisible        string `json:"editorInvisible"`
	EditorSelection        string `json:"editorSelection"`
	EditorCursor           string `json:"editorCursor"`
	EditorIndentGuide      string `json:"editorIndentGuide"`

	SidebarBackground string `json:"sidebarBackground"`
	SidebarForeground string `json:"sidebarForeground"`

	ListHoverBackground  string `json:"listHoverBackground"`
	ListActiveBackground string `json:"listActiveBackground"`
	ListFocusBackground  string `json:"listFocusBackground"`
	ListHighlight        string `json:"listHighlight"`

	ButtonPrimaryBackground   string `json:"buttonPrimaryBackground"`
	ButtonPrimaryForeground   string `json:"buttonPrimaryForeground"`
	ButtonPrimaryHover        string `json:"buttonPrimaryHover"`
	ButtonSecondaryBackground string `json:"buttonSecondaryBackground"`
	ButtonSecondaryForeground string `json:"buttonSecondaryForeground"`
	ButtonSecondaryHover      string `json:"buttonSecondaryHover"`

	InputBackground  string `json:"inputBackground"`
	InputBorder      string `json:"inputBorder"`
	InputForeground  string `json:"inputForeground"`
	InputPlaceholder string `json:"inputPlaceholder"`

	BadgeBackground string `json:"badgeBackground"`
	BadgeForeground string `json:"badgeForeground"`

	TerminalForeground string   `json:"terminalForeground"`
	Terminal           Terminal `json:"terminal"`

	Syntax Syntax `json:"syntax"`
	Git    Git    `json:"git"`
	Status Status `json:"status"`
	Diff   Diff   `json:"diff"`

	Scrollbar Scrollbar `json:"scrollbar"`

	ActivityBarBackground         string `json:"activityBarBackground"`
	ActivityBarForeground         string `json:"activityBarForeground"`
	ActivityBarInactiveForeground string `json:"activityBarInactiveForeground"`
	ActivityBarBadgeBackground    string `json:"activityBarBadgeBackground"`
	ActivityBarBadgeForeground    string `json:"activityBarBadgeForeground"`
	ActivityBarBorder             string `json:"activityBarBorder"`

	Brackets [6]string `json:"brackets"`
	Players  [6]string `json:"players"`
}

// Terminal holds the 16 ANSI slots.
type Terminal struct {
	Black         string `json:"black"`
	Red           string `json:"red"`
	Green         string `json:"green"`
	Yellow        string `json:"yellow"`
	Blue          string `json:"blue"`
	Magenta       string `json:"magenta"`
	Cyan          string `json:"cyan"`
	White         string `json:"white"`
	BrightBlack   string `json:"brightBlack"`
	BrightRed     string `json:"brightRed"`
	BrightGreen   string `json:"brightGreen"`
	BrightYellow  string `json:"brightYellow"`
	BrightBlue    string `json:"brightBlue"`
	BrightMagenta string `json:"brightMagenta"`
	BrightCyan    string `json:"brightCyan"`
	BrightWhite   string `json:"brightWhite"`
}

type Syntax struct {
	Comment         string `json:"comment"`
	String          string `json:"string"`
	StringEscape    string `json:"stringEscape"`
	Number          string `json:"number"`
	Boolean         string `json:"boolean"`
	Constant        string `json:"constant"`
	Variable        string `json:"variable"`
	VariableSpecial string `json:"variableSpecial"`
	Property        string `json:"property"`
	Keyword         string `json:"keyword"`
	Storage         string `json:"storage"`
	Function        string `json:"function"`
	Class           string `json:"class"`
	Type            string `json:"type"`
	Tag             string `json:"tag"`
	Attribute       string `json:"attribute"`
	Operator        string `json:"operator"`
	Punctuation     string `json:"punctuation"`
	Regex           string `json:"regex"`
	Invalid         string `json:"invalid"`
}

type Git struct {
	Added     string `json:"added"`
	Modified  string `json:"modified"`
	Deleted   string `json:"deleted"`
	Untracked string `json:"untracked"`
	Ignored   string `json:"ignored"`
	Conflict  string `json:"conflict"`
}

type Status struct {
	Error             string `json:"error"`
	ErrorBackground   string `json:"errorBackground"`
	Warning           string `json:"warning"`
	WarningBackground string `json:"warningBackground"`
	Info              string `json:"info"`
	InfoBackground    string `json:"infoBackground"`
	Success           string `json:"success"`
	SuccessBackground string `json:"successBackground"`
}

type Diff struct {
	InsertedBackground string `json:"insertedBackground"`
	InsertedText       string `json:"insertedText"`
	RemovedBackground  string `json:"removedBackground"`
	RemovedText        string `json:"removedText"`
}

type Scrollbar struct {
	Shadow     string `json:"shadow"`
	Background string `json:"background"`
}
