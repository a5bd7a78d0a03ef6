package preview

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/Azir-11/azir-theme/internal/schema"
)

//go:embed templates
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("preview.html.tmpl").ParseFS(templatesFS, "templates/preview.html.tmpl"))

const AlpineURL = "https://cdn.jsdelivr.net/npm/alpinejs@3.14.1/dist/cdn.min.js"

type Tab struct {
	Key        string
	Label      string
	Groups     []Group
	Total      int
	Sample     template.HTML
	Background string
	Foreground string
}

type Page struct {
	Title     string
	AlpineURL string
	Tabs      []Tab
}

// NewTab categorizes vars and renders the syntax sample for theme.
func NewTab(key, label string, vars map[string]string, theme *schema.Theme) (Tab, error) {
	groups := Categorize(vars)
	sample, err := SyntaxSample(theme)
	if err != nil {
		return Tab{}, fmt.Errorf("%s: %w", key, err)
	}
	return Tab{
		Key:        key,
		Label:      label,
		Groups:     groups,
		Total:      Total(groups),
		Sample:     sample,
		Background: theme.Colors.Background,
		Foreground: theme.Colors.Foreground,
	}, nil
}

// Render writes the page; the first tab is shown initially.
func Render(w io.Writer, page Page) error {
	if len(page.Tabs) == 0 {
		return errors.New("preview needs at least one tab")
	}
	if page.AlpineURL == "" {
		page.AlpineURL = AlpineURL
	}
	if page.Title == "" {
		page.Title = "Color Token Preview"
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}
