package main

import (
	"fmt"
	"strings"

	"github.com/Azir-11/azir-theme/internal/build"
	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	nameStyle  = lipgloss.NewStyle().Width(28)
	pathStyle  = lipgloss.NewStyle().Faint(true)
)

// swatch renders a two-cell block in color. Terminals have no opacity, so
// alpha is dropped.
func swatch(color string) string {
	c, err := palette.Parse(color)
	if err != nil {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.WithAlpha(1).Hex())).Render("  ")
}

func themeSummary(results []build.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Generated %d themes", len(results))))
	b.WriteString("\n")
	for _, res := range results {
		fmt.Fprintf(&b, "%s%s %s %s\n",
			swatch(res.Background),
			swatch(res.Foreground),
			nameStyle.Render(res.Name),
			pathStyle.Render(res.VSCodePath+", "+res.ZedPath),
		)
	}
	return b.String()
}

func previewSummary(res *build.PreviewResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wrote " + res.Path))
	b.WriteString("\n")
	for _, tab := range res.Tabs {
		fmt.Fprintf(&b, "%s%s %s %d colors in %d groups\n",
			swatch(tab.Background),
			swatch(tab.Foreground),
			nameStyle.Render(tab.Label),
			tab.Total,
			len(tab.Groups),
		)
	}
	return b.String()
}
