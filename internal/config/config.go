// Package config holds the generator's paths and presentation settings.
// Everything has a default; azir.yaml in the working directory may
// override any subset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is read from the working directory when present.
const FileName = "azir.yaml"

// DefaultConfig is the built-in configuration, in the same format as azir.yaml.
const DefaultConfig = `# Directory holding <variant>.css token sources
tokens_dir: node_modules/@primer/primitives/dist/css/functional/themes

# VS Code themes go here, Zed themes in <output_dir>/zed
output_dir: themes

preview_path: script/color-preview.html
preview_title: Color Token Preview

author: Azir-11

# debug, info, warn or error
log_level: info
`

type Config struct {
	TokensDir    string `yaml:"tokens_dir"`
	OutputDir    string `yaml:"output_dir"`
	PreviewPath  string `yaml:"preview_path"`
	PreviewTitle string `yaml:"preview_title"`
	Author       string `yaml:"author"`
	LogLevel     string `yaml:"log_level"`
}

func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(DefaultConfig), &cfg); err != nil {
		panic(fmt.Sprintf("invalid built-in config: %v", err))
	}
	return cfg
}

// ZedDir is where Zed theme families are written.
func (c Config) ZedDir() string {
	return filepath.Join(c.OutputDir, "zed")
}

// Load overlays the file at path onto Default. A missing file is not an
// error; a malformed one is.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.TokensDir == "":
		return errors.New("tokens_dir must not be empty")
	case c.OutputDir == "":
		return errors.New("output_dir must not be empty")
	case c.PreviewPath == "":
		return errors.New("preview_path must not be empty")
	}
	return nil
}
