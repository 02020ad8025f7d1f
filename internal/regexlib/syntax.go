package regexlib

import "strings"

// Syntax returns the abstract shape of a parsed pattern, dropping the
// epsilon and primed nodes:
//
//	alt(x,y)  alternation
//	cat(x,y)  concatenation
//	star(x)   Kleene star
//	group(x)  parenthesized sub-expression
//	a         letter
//
// Single-element alternations and concatenations collapse to their element.
func (t *Tree) Syntax() string {
	if len(t.nodes) == 0 {
		return ""
	}
	return t.syntaxE(t.root)
}

func (t *Tree) syntaxE(id NodeID) string {
	var alts []string
	for {
		kids := t.nodes[id].Children
		alts = append(alts, t.syntaxM(kids[0]))
		tail := t.nodes[kids[1]].Children
		if t.nodes[tail[0]].Label != "|" {
			break
		}
		id = tail[1]
	}
	return joinSyntax("alt", alts)
}

func (t *Tree) syntaxM(id NodeID) string {
	var factors []string
	for {
		kids := t.nodes[id].Children
		factors = append(factors, t.syntaxN(kids[0]))
		tail := t.nodes[kids[1]].Children
		if t.nodes[tail[0]].Label != LabelM {
			break
		}
		id = tail[0]
	}
	return joinSyntax("cat", factors)
}

func (t *Tree) syntaxN(id NodeID) string {
	kids := t.nodes[id].Children
	var base string
	var suffix NodeID
	if t.nodes[kids[0]].Label == "(" {
		base = "group(" + t.syntaxE(kids[1]) + ")"
		suffix = kids[3]
	} else {
		base = t.nodes[kids[0]].Label
		suffix = kids[1]
	}
	for {
		tail := t.nodes[suffix].Children
		if t.nodes[tail[0]].Label != "*" {
			return base
		}
		base = "star(" + base + ")"
		suffix = tail[1]
	}
}

func joinSyntax(op string, parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return op + "(" + strings.Join(parts, ",") + ")"
}
