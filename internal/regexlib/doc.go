// Package regexlib parses a small regular-expression language into a
// concrete parse tree.
//
// The language has lowercase letters as atoms, concatenation, alternation
// with '|', postfix Kleene star '*' and parentheses. Whitespace is ignored.
// Parsing is LL(1) recursive descent over the grammar
//
//	E  -> M E'
//	E' -> '|' E | eps
//	M  -> N M'
//	M' -> M | eps
//	N  -> CHAR N' | '(' E ')' N'
//	N' -> '*' N' | eps
//
// and the resulting Tree keeps one node per production, including explicit
// "eps" leaves. Node ids follow construction order, which makes the DOT
// output of a pattern reproducible:
//
//	tree, err := regexlib.Parse("a|b*")
//	if err != nil {
//		var serr *regexlib.SyntaxError
//		if errors.As(err, &serr) { ... }
//	}
//	fmt.Print(tree.DOT())
//
// Failures are *LexError or *SyntaxError; both wrap ErrInvalidPattern.
package regexlib
