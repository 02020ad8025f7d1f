package crosscheck

import (
	"strings"
	"unicode"

	"regextree/internal/regexlib"
)

// Report is the outcome of parsing one pattern with both parsers.
type Report struct {
	Pattern    string
	Tree       string // abstract syntax from regexlib, empty on error
	Grammar    string // abstract syntax from the participle grammar, empty on error
	Spelled    string // terminal leaves of the tree without eps, empty on error
	TreeErr    error
	GrammarErr error
}

// Agree is true when both parsers rejected the pattern, or both produced the
// same abstract syntax and the tree's leaves spell the pattern back.
func (r Report) Agree() bool {
	if r.TreeErr != nil || r.GrammarErr != nil {
		return r.TreeErr != nil && r.GrammarErr != nil
	}
	return r.Tree == r.Grammar && r.Spelled == stripSpace(r.Pattern)
}

// spell joins the terminal leaves of tree, dropping eps.
func spell(tree *regexlib.Tree) string {
	var b strings.Builder
	for _, l := range tree.Leaves() {
		if l != regexlib.LabelEps {
			b.WriteString(l)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Compare parses pattern with regexlib and with the participle grammar.
func Compare(pattern string) Report {
	r := Report{Pattern: pattern}
	if tree, err := regexlib.Parse(pattern); err != nil {
		r.TreeErr = err
	} else {
		r.Tree = tree.Syntax()
		r.Spelled = spell(tree)
	}
	if ast, err := Parse(pattern); err != nil {
		r.GrammarErr = err
	} else {
		r.Grammar = ast.Syntax()
	}
	return r
}
