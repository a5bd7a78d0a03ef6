package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/Azir-11/azir-theme/internal/palette"
	"github.com/Azir-11/azir-theme/internal/schema"
)

const sampleSource = `// Package greet says hello.
package greet

import (
	"fmt"
	"regexp"
)

var nameRe = regexp.MustCompile(` + "`^[a-z]+$`" + `)

type Greeter struct {
	Prefix string
	count  int
}

func (g *Greeter) Greet(name string) (string, error) {
	if !nameRe.MatchString(name) {
		return "", fmt.Errorf("invalid name %q\n", name)
	}
	g.count++
	return g.Prefix + ", " + name + "!", nil
}

const maxGreetings = 42
var enabled = true
`

// opaque drops alpha since chroma only accepts #rrggbb. Placeholders and
// other non-colors report false.
func opaque(color string) (string, bool) {
	c, err := palette.Parse(color)
	if err != nil {
		return "", false
	}
	return c.WithAlpha(1).Hex(), true
}

// SyntaxStyle builds a chroma style from the schema's syntax roles.
func SyntaxStyle(t *schema.Theme) (*chroma.Style, error) {
	s := t.Colors.Syntax
	entries := chroma.StyleEntries{}

	set := func(tt chroma.TokenType, color string, extra string) {
		hex, ok := opaque(color)
		if !ok {
			return
		}
		if extra != "" {
			entries[tt] = extra + " " + hex
			return
		}
		entries[tt] = hex
	}

	bg, bgOK := opaque(t.Colors.EditorBackground)
	fg, fgOK := opaque(t.Colors.EditorForeground)
	if bgOK && fgOK {
		entries[chroma.Background] = fmt.Sprintf("bg:%s %s", bg, fg)
	}

	set(chroma.Text, t.Colors.EditorForeground, "")
	set(chroma.Comment, s.Comment, "italic")
	set(chroma.Keyword, s.Keyword, "")
	set(chroma.KeywordType, s.Type, "")
	set(chroma.KeywordDeclaration, s.Storage, "")
	set(chroma.KeywordNamespace, s.Storage, "")
	set(chroma.KeywordConstant, s.Boolean, "")
	set(chroma.Name, t.Colors.EditorForeground, "")
	set(chroma.NameFunction, s.Function, "")
	set(chroma.NameClass, s.Class, "")
	set(chroma.NameTag, s.Tag, "")
	set(chroma.NameAttribute, s.Attribute, "")
	set(chroma.NameVariable, s.Variable, "")
	set(chroma.NameBuiltin, s.VariableSpecial, "")
	set(chroma.NameConstant, s.Constant, "")
	set(chroma.NameOther, s.Property, "")
	set(chroma.LiteralString, s.String, "")
	set(chroma.LiteralStringEscape, s.StringEscape, "")
	set(chroma.LiteralStringRegex, s.Regex, "")
	set(chroma.LiteralNumber, s.Number, "")
	set(chroma.Operator, s.Operator, "")
	set(chroma.Punctuation, s.Punctuation, "")
	set(chroma.Error, s.Invalid, "")

	return chroma.NewStyle(t.Name, entries)
}

// SyntaxSample highlights a fixed Go snippet with the theme's syntax colors
// using inline styles, so the page needs no extra stylesheet.
func SyntaxSample(t *schema.Theme) (template.HTML, error) {
	style, err := SyntaxStyle(t)
	if err != nil {
		return "", fmt.Errorf("failed to build syntax style: %w", err)
	}

	lexer := lexers.Get("go")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, sampleSource)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise sample: %w", err)
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4))
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("failed to format sample: %w", err)
	}

	// chroma escapes token text itself.
	return template.HTML(buf.String()), nil
}
