// Package render turns parse trees into Graphviz documents, images and text.
package render

import (
	"fmt"
	"io"

	"regextree/internal/regexlib"
)

// Document writes a complete Graphviz digraph for tree to w.
func Document(w io.Writer, tree *regexlib.Tree) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	if tree.Len() > 0 {
		if err := tree.WriteDOT(w, tree.Root()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
