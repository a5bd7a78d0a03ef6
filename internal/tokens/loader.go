package tokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Azir-11/azir-theme/internal/log"
	"github.com/Azir-11/azir-theme/internal/variant"
	"github.com/spf13/afero"
)

var ErrSourceNotFound = errors.New("token source not found")

// Loader reads one CSS token source per variant from Dir.
type Loader struct {
	FS  afero.Fs
	Dir string
}

func NewLoader(fs afero.Fs, dir string) *Loader {
	return &Loader{FS: fs, Dir: dir}
}

// Path returns the token source location for v.
func (l *Loader) Path(v variant.Variant) string {
	return filepath.Join(l.Dir, v.SourceName()+".css")
}

// Load parses and resolves the token source for v.
func (l *Loader) Load(v variant.Variant) (Variables, error) {
	path := l.Path(v)

	data, err := afero.ReadFile(l.FS, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read token source %s: %w", path, err)
	}

	raw := Parse(string(data))
	resolved := Resolve(raw)
	log.Debugf("loaded %d variables for %s from %s", len(resolved), v, path)

	if unresolved := Unresolved(resolved); len(unresolved) > 0 {
		log.Warnf("%s: %d variables still reference missing tokens (first: %s)", v, len(unresolved), unresolved[0])
	}

	return resolved, nil
}
