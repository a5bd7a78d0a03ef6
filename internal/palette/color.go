// Package palette holds the color model shared by the schema builder and the
// adapters, and builds per-hue color scales from token variables.
package palette

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with an opacity in [0,1].
type Color struct {
	colorful.Color
	A float64
}

var funcRe = regexp.MustCompile(`(?i)^rgba?\(\s*([^)]*)\)$`)

// Parse accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(...) and rgba(...).
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if m := funcRe.FindStringSubmatch(s); m != nil {
		return parseFunc(m[1])
	}
	return Color{}, fmt.Errorf("unsupported color: %q", s)
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("invalid hex color: %q", s)
		}
	}

	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 4:
		a, _ := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		alpha = float64(a) / 255.0
		digits = digits[:3]
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 255.0
		digits = digits[:6]
	default:
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, err
	}
	return Color{Color: c, A: alpha}, nil
}

func parseFunc(args string) (Color, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("invalid rgb arguments: %q", args)
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := parseChannel(fields[i])
		if err != nil {
			return Color{}, err
		}
		ch[i] = v
	}

	alpha := 1.0
	if len(fields) == 4 {
		a, err := parseAlpha(fields[3])
		if err != nil {
			return Color{}, err
		}
		alpha = a
	}

	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: alpha}, nil
}

func parseChannel(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid channel %q: %w", s, err)
		}
		return clamp01(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel %q: %w", s, err)
	}
	return clamp01(v / 255), nil
}

func parseAlpha(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha %q: %w", s, err)
		}
		return clamp01(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q: %w", s, err)
	}
	return clamp01(v), nil
}

// Hex formats as #rrggbb when opaque, #rrggbbaa otherwise.
func (c Color) Hex() string {
	hex := c.Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp01(c.A)*255)))
}

// RGBA formats as rgba(r,g,b,a) with integer channels.
func (c Color) RGBA() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(clamp01(c.A), 'f', -1, 64))
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize rewrites any parseable color as hex and leaves anything else untouched.
func Normalize(s string) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	return c.Hex()
}

// AlphaHex sets the opacity of s and formats it as #rrggbb or #rrggbbaa.
// Strings that are not colors come back unchanged.
func AlphaHex(s string, a float64) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	return c.WithAlpha(a).Hex()
}

// AlphaRGBA sets the opacity of s and formats it as rgba(r,g,b,a).
// Strings that are not colors come back unchanged.
func AlphaRGBA(s string, a float64) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	return c.WithAlpha(a).RGBA()
}

// Luminance is the WCAG relative luminance of s, ignoring opacity.
func Luminance(s string) float64 {
	c, err := Parse(s)
	if err != nil {
		return 0
	}
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(fg, bg string) float64 {
	lumFg := Luminance(fg)
	lumBg := Luminance(bg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
