// Package variant enumerates the theme variants generated on every run.
package variant

import "fmt"

type Variant int

const (
	Light Variant = iota
	LightHighContrast
	Dark
	DarkHighContrast
	DarkDimmed
)

type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// All returns every variant in generation order.
func All() []Variant {
	return []Variant{Light, LightHighContrast, Dark, DarkHighContrast, DarkDimmed}
}

// String returns the canonical tag, e.g. "light_high_contrast".
func (v Variant) String() string {
	switch v {
	case Light:
		return "light"
	case LightHighContrast:
		return "light_high_contrast"
	case Dark:
		return "dark"
	case DarkHighContrast:
		return "dark_high_contrast"
	case DarkDimmed:
		return "dark_dimmed"
	default:
		return "unknown"
	}
}

// SourceName is the token file stem the variant is loaded from.
func (v Variant) SourceName() string {
	switch v {
	case Light:
		return "light"
	case LightHighContrast:
		return "light-high-contrast"
	case Dark:
		return "dark"
	case DarkHighContrast:
		return "dark-high-contrast"
	case DarkDimmed:
		return "dark-dimmed"
	default:
		return ""
	}
}

// OutputName is the theme file stem written for the variant.
func (v Variant) OutputName() string {
	switch v {
	case Light:
		return "light-default"
	case LightHighContrast:
		return "light-high-contrast"
	case Dark:
		return "dark-default"
	case DarkHighContrast:
		return "dark-high-contrast"
	case DarkDimmed:
		return "dark-dimmed"
	default:
		return ""
	}
}

func (v Variant) DisplayName() string {
	switch v {
	case Light:
		return "Azir Light Default"
	case LightHighContrast:
		return "Azir Light High Contrast"
	case Dark:
		return "Azir Dark Default"
	case DarkHighContrast:
		return "Azir Dark High Contrast"
	case DarkDimmed:
		return "Azir Dark Dimmed"
	default:
		return ""
	}
}

func (v Variant) Appearance() Appearance {
	switch v {
	case Light, LightHighContrast:
		return AppearanceLight
	case Dark, DarkHighContrast, DarkDimmed:
		return AppearanceDark
	default:
		return AppearanceDark
	}
}

func (v Variant) IsLight() bool { return v.Appearance() == AppearanceLight }

func (v Variant) IsDark() bool { return v.Appearance() == AppearanceDark }

func (v Variant) IsHighContrast() bool {
	switch v {
	case LightHighContrast, DarkHighContrast:
		return true
	case Light, Dark, DarkDimmed:
		return false
	default:
		return false
	}
}

// Parse accepts either the canonical tag or the source file stem.
func Parse(s string) (Variant, error) {
	for _, v := range All() {
		if s == v.String() || s == v.SourceName() {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown theme variant: %s", s)
}
