// Package crosscheck holds a declarative participle grammar for the pattern
// language. It shares no code with regexlib, so agreement between the two
// parsers is a useful check on the hand-written one.
package crosscheck

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Alternation is the lowest-precedence level: Left ('|' Right)?.
type Alternation struct {
	Left  *Concatenation `parser:"@@"`
	Right *Alternation   `parser:"( '|' @@ )?"`
}

// Concatenation is one or more adjacent factors.
type Concatenation struct {
	Factors []*Factor `parser:"@@+"`
}

// Factor is a letter or a group followed by any number of stars.
type Factor struct {
	Char  *string      `parser:"( @Char"`
	Group *Alternation `parser:"| '(' @@ ')' )"`
	Stars []string     `parser:"@'*'*"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Char", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[()|*]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Alternation](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace"),
)

// Parse parses data with the participle grammar.
func Parse(data string) (*Alternation, error) {
	return parser.ParseString("pattern", data)
}

// Syntax renders the same abstract form as regexlib.Tree.Syntax.
func (a *Alternation) Syntax() string {
	var alts []string
	for cur := a; cur != nil; cur = cur.Right {
		alts = append(alts, cur.Left.Syntax())
	}
	return join("alt", alts)
}

func (c *Concatenation) Syntax() string {
	factors := make([]string, len(c.Factors))
	for i, f := range c.Factors {
		factors[i] = f.Syntax()
	}
	return join("cat", factors)
}

func (f *Factor) Syntax() string {
	var s string
	switch {
	case f.Char != nil:
		s = *f.Char
	case f.Group != nil:
		s = "group(" + f.Group.Syntax() + ")"
	}
	for range f.Stars {
		s = "star(" + s + ")"
	}
	return s
}

func join(op string, parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return op + "(" + strings.Join(parts, ",") + ")"
}
