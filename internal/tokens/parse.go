// Package tokens reads design-token CSS sources into flat variable maps and
// resolves var() references between them.
package tokens

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Variables maps a custom property name (without the leading "--") to its value.
type Variables map[string]string

var commentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// Parse extracts every "--name: value;" declaration from css. Later
// declarations override earlier ones.
func Parse(css string) Variables {
	vars := make(Variables)
	css = commentRe.ReplaceAllString(css, "")

	statements := strings.FieldsFunc(css, func(r rune) bool {
		return r == ';' || r == '{' || r == '}'
	})
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if !strings.HasPrefix(stmt, "--") {
			continue
		}
		name, value, ok := strings.Cut(stmt[2:], ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		vars[name] = value
	}

	return vars
}

// Get returns the value for name and whether it was declared.
func (v Variables) Get(name string) (string, bool) {
	val, ok := v[name]
	return val, ok
}

// Names returns the declared names in sorted order.
func (v Variables) Names() []string {
	names := maps.Keys(v)
	sort.Strings(names)
	return names
}

func (v Variables) Clone() Variables {
	return maps.Clone(v)
}
