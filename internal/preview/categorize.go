// Package preview renders the token browser page: every color variable of
// a token source, grouped and rendered as swatches.
package preview

import (
	"html/template"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupSpec describes one bucket of the categorizer. Patterns are
// case-insensitive and unanchored.
type GroupSpec struct {
	Key      string
	Title    string
	Patterns []*regexp.Regexp
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile("(?i)"+e))
	}
	return out
}

// Groups is evaluated in order; the first group with a matching pattern
// claims the variable. "other" must stay last.
var Groups = []GroupSpec{
	{Key: "foreground", Title: "Foreground", Patterns: patterns(`fgColor-`, `color-prettylights-syntax-`)},
	{Key: "background", Title: "Background", Patterns: patterns(`bgColor-`, `codeMirror-.*-bgColor`)},
	{Key: "border", Title: "Border", Patterns: patterns(`borderColor-`)},
	{Key: "button", Title: "Button", Patterns: patterns(`button-`)},
	{Key: "control", Title: "Control", Patterns: patterns(`control-`)},
	{Key: "ansi", Title: "ANSI", Patterns: patterns(`color-ansi-`)},
	{Key: "scale", Title: "Color Scale", Patterns: patterns(`display-.*-scale-`)},
	{Key: "syntax", Title: "Syntax", Patterns: patterns(`codeMirror-syntax-`)},
	{Key: "other", Title: "Other", Patterns: patterns(`.*`)},
}

var (
	hexColorRe  = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	funcColorRe = regexp.MustCompile(`(?i)^rgba?\([\d\s,./]+\)$`)
)

// IsColor accepts 3, 6 or 8 digit hex and rgb()/rgba() with numeric arguments.
func IsColor(value string) bool {
	return hexColorRe.MatchString(value) || funcColorRe.MatchString(value)
}

type Entry struct {
	Name   string
	Value  string
	CSSVar string
	// Swatch is an inline style; Value has already passed IsColor.
	Swatch template.CSS
}

type Subgroup struct {
	Key     string
	Label   string
	Entries []Entry
}

type Group struct {
	Key       string
	Title     string
	Entries   []Entry
	Subgroups []Subgroup
}

func (g GroupSpec) matches(name string) bool {
	for _, re := range g.Patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Categorize assigns every color-valued variable to the first matching
// group. Non-colors are dropped, as are groups left empty.
func Categorize(vars map[string]string) []Group {
	buckets := make([][]Entry, len(Groups))

	for name, value := range vars {
		if !IsColor(value) {
			continue
		}
		for i, spec := range Groups {
			if spec.matches(name) {
				buckets[i] = append(buckets[i], Entry{
					Name:   name,
					Value:  value,
					CSSVar: "--" + name,
					Swatch: template.CSS("background-color: " + value),
				})
				break
			}
		}
	}

	col := collate.New(language.English)
	title := cases.Title(language.English, cases.NoLower)

	groups := make([]Group, 0, len(Groups))
	for i, spec := range Groups {
		entries := buckets[i]
		if len(entries) == 0 {
			continue
		}
		sortEntries(col, entries)
		groups = append(groups, Group{
			Key:       spec.Key,
			Title:     spec.Title,
			Entries:   entries,
			Subgroups: subgroups(col, title, entries),
		})
	}
	return groups
}

func sortEntries(col *collate.Collator, entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := col.CompareString(entries[i].Name, entries[j].Name); c != 0 {
			return c < 0
		}
		return entries[i].Name < entries[j].Name
	})
}

// subgroups splits sorted entries by the first hyphen-separated segment of
// the name, keeping entry order within each subgroup.
func subgroups(col *collate.Collator, title cases.Caser, entries []Entry) []Subgroup {
	byKey := make(map[string][]Entry)
	for _, e := range entries {
		key, _, _ := strings.Cut(e.Name, "-")
		byKey[key] = append(byKey[key], e)
	}

	keys := maps.Keys(byKey)
	col.SortStrings(keys)

	out := make([]Subgroup, 0, len(keys))
	for _, key := range keys {
		out = append(out, Subgroup{
			Key:     key,
			Label:   title.String(key),
			Entries: byKey[key],
		})
	}
	return out
}

// Total counts entries across groups.
func Total(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Entries)
	}
	return n
}
