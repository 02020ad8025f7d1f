package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/list"
	"gopkg.in/yaml.v3"

	"regextree/internal/regexlib"
)

// Text prints tree as an indented outline, one node per line with its id.
func Text(w io.Writer, tree *regexlib.Tree) error {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	depth := 0
	tree.Walk(func(id regexlib.NodeID, d int) bool {
		for ; depth < d; depth++ {
			l.Indent()
		}
		for ; depth > d; depth-- {
			l.UnIndent()
		}
		l.AppendItem(fmt.Sprintf("%s #%d", tree.Label(id), id))
		return true
	})
	_, err := fmt.Fprintln(w, l.Render())
	return err
}

// Node is the nested form of a tree used by the JSON and YAML formats.
type Node struct {
	ID       int     `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Nested converts the arena into nested nodes.
func Nested(tree *regexlib.Tree) *Node {
	if tree.Len() == 0 {
		return nil
	}
	var build func(regexlib.NodeID) *Node
	build = func(id regexlib.NodeID) *Node {
		n := &Node{ID: int(id), Label: tree.Label(id)}
		for _, c := range tree.Children(id) {
			n.Children = append(n.Children, build(c))
		}
		return n
	}
	return build(tree.Root())
}

// JSON writes the nested tree as indented JSON.
func JSON(w io.Writer, tree *regexlib.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Nested(tree))
}

// YAML writes the nested tree as YAML.
func YAML(w io.Writer, tree *regexlib.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Nested(tree)); err != nil {
		return err
	}
	return enc.Close()
}
