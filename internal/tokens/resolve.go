package tokens

import (
	"regexp"
	"strings"
)

// MaxResolvePasses bounds reference substitution. Cycles are never detected
// explicitly; they simply stop changing or run out of passes.
const MaxResolvePasses = 10

var referenceRe = regexp.MustCompile(`var\(\s*--([^,)\s]+)\s*(?:,\s*([^)]*))?\)`)

// Resolve substitutes var(--name) references until nothing changes or
// MaxResolvePasses is reached. Only the first reference of a value is
// replaced per pass, and only with a referent that is itself fully resolved.
// Anything left over stays in its textual form.
func Resolve(vars Variables) Variables {
	resolved := vars.Clone()
	names := resolved.Names()

	for pass := 0; pass < MaxResolvePasses; pass++ {
		changed := false

		for _, name := range names {
			value := resolved[name]
			if !hasReference(value) {
				continue
			}

			loc := referenceRe.FindStringSubmatchIndex(value)
			if loc == nil {
				continue
			}
			ref := value[loc[2]:loc[3]]

			replacement, ok := resolved[ref]
			if !ok || replacement == "" {
				if loc[4] < 0 {
					continue
				}
				replacement = strings.TrimSpace(value[loc[4]:loc[5]])
				if replacement == "" {
					continue
				}
			}
			if hasReference(replacement) {
				continue
			}

			resolved[name] = value[:loc[0]] + replacement + value[loc[1]:]
			changed = true
		}

		if !changed {
			break
		}
	}

	return resolved
}

// Unresolved lists, in sorted order, the names whose values still reference
// another variable.
func Unresolved(vars Variables) []string {
	var out []string
	for _, name := range vars.Names() {
		if hasReference(vars[name]) {
			out = append(out, name)
		}
	}
	return out
}

func hasReference(value string) bool {
	return strings.Contains(value, "var(")
}
