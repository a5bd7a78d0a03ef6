// Package build runs the generator end to end: load tokens, build the
// unified schema, adapt it per editor and write the results.
package build

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Azir-11/azir-theme/internal/adapters"
	"github.com/Azir-11/azir-theme/internal/config"
	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/Azir-11/azir-theme/internal/preview"
	"github.com/Azir-11/azir-theme/internal/schema"
	"github.com/Azir-11/azir-theme/internal/tokens"
	"github.com/Azir-11/azir-theme/internal/variant"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const fileMode = 0o644

type Generator struct {
	FS     afero.Fs
	Config config.Config
	loader *tokens.Loader
}

func New(fs afero.Fs, cfg config.Config) *Generator {
	return &Generator{
		FS:     fs,
		Config: cfg,
		loader: tokens.NewLoader(fs, cfg.TokensDir),
	}
}

// Result summarizes one generated variant.
type Result struct {
	Variant    variant.Variant
	Name       string
	VSCodePath string
	ZedPath    string
	Background string
	Foreground string
	Theme      *schema.Theme
}

type output struct {
	path string
	doc  interface{}
}

// Themes generates every variant. All sources are loaded before anything is
// written, so a missing source leaves the output directory untouched.
func (g *Generator) Themes(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(variant.All()))
	var outputs []output

	for _, v := range variant.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		theme, err := g.theme(v)
		if err != nil {
			return nil, err
		}

		res := Result{
			Variant:    v,
			Name:       theme.Name,
			VSCodePath: filepath.Join(g.Config.OutputDir, v.OutputName()+".json"),
			ZedPath:    filepath.Join(g.Config.ZedDir(), v.OutputName()+".json"),
			Background: theme.Colors.Background,
			Foreground: theme.Colors.Foreground,
			Theme:      theme,
		}
		results = append(results, res)
		outputs = append(outputs,
			output{path: res.VSCodePath, doc: adapters.VSCode(theme)},
			output{path: res.ZedPath, doc: adapters.Zed(theme, g.Config.Author)},
		)
	}

	for _, dir := range []string{g.Config.OutputDir, g.Config.ZedDir()} {
		if err := g.FS.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, out := range outputs {
		out := out
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writeJSON(out.path, out.doc)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Infof("wrote %d themes to %s", len(outputs), g.Config.OutputDir)
	return results, nil
}

func (g *Generator) theme(v variant.Variant) (*schema.Theme, error) {
	vars, err := g.loader.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s tokens: %w", v, err)
	}
	return schema.FromVariables(vars, v), nil
}

// Encode marshals doc the way theme files are written: two-space indent,
// no HTML escaping, trailing newline.
func Encode(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeJSON(path string, doc interface{}) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := afero.WriteFile(g.FS, path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("wrote %s (%d bytes)", path, len(data))
	return nil
}

// PreviewResult summarizes a rendered preview page.
type PreviewResult struct {
	Path string
	Tabs []preview.Tab
}

var previewVariants = []struct {
	key     string
	label   string
	variant variant.Variant
}{
	{"light", "Light Theme", variant.Light},
	{"dark", "Dark Theme", variant.Dark},
}

// Preview renders the token browser for the light and dark sources.
func (g *Generator) Preview(ctx context.Context) (*PreviewResult, error) {
	tabs := make([]preview.Tab, len(previewVariants))

	eg, ctx := errgroup.WithContext(ctx)
	for i, pv := range previewVariants {
		i, pv := i, pv
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vars, err := g.loader.Load(pv.variant)
			if err != nil {
				return fmt.Errorf("failed to load %s tokens: %w", pv.variant, err)
			}
			tab, err := preview.NewTab(pv.key, pv.label, vars, schema.FromVariables(vars, pv.variant))
			if err != nil {
				return err
			}
			log.Debugf("%s: %d color variables in %d groups", pv.key, tab.Total, len(tab.Groups))
			tabs[i] = tab
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	page := preview.Page{Title: g.Config.PreviewTitle, Tabs: tabs}
	if err := preview.Render(&buf, page); err != nil {
		return nil, err
	}

	path := g.Config.PreviewPath
	if err := g.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(g.FS, path, buf.Bytes(), fileMode); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Infof("wrote preview to %s", path)
	return &PreviewResult{Path: path, Tabs: tabs}, nil
}
