package regexlib

import (
	"bytes"
	"fmt"
	"io"
)

// NodeID indexes a node inside its Tree. IDs are handed out in construction
// order, so they always lie in [0, Len()).
type NodeID int

// Node is one slot of the arena.
type Node struct {
	ID       NodeID
	Label    string
	Children []NodeID
}

// Tree owns every node of one parse. Parents refer to children by index.
type Tree struct {
	nodes []Node
	root  NodeID
}

// NewTree returns an empty arena.
func NewTree() *Tree { return &Tree{} }

// NewNode claims the next id for a childless node.
func (t *Tree) NewNode(label string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{ID: id, Label: label})
	return id
}

// Compose builds a node over children that already exist in the arena.
func (t *Tree) Compose(label string, children ...NodeID) NodeID {
	id := t.NewNode(label)
	t.nodes[id].Children = append(t.nodes[id].Children, children...)
	return id
}

// AddChild appends child to parent's ordered child list.
func (t *Tree) AddChild(parent, child NodeID) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
}

// SetRoot marks the node returned by Root.
func (t *Tree) SetRoot(id NodeID) { t.root = id }

// Root returns the root node id.
func (t *Tree) Root() NodeID { return t.root }

// Len is the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node stored under id.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Label returns the display label of id.
func (t *Tree) Label(id NodeID) string { return t.nodes[id].Label }

// Children returns the ordered child ids of id.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].Children }

// Walk visits the tree rooted at Root in pre-order. depth is 0 for the root.
// Returning false from fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, c := range t.nodes[id].Children {
		t.walk(c, depth+1, fn)
	}
}

// WriteDOT writes the body of a Graphviz graph for the subtree at id: the
// node declaration first, then an edge line and the subtree for each child.
func (t *Tree) WriteDOT(w io.Writer, id NodeID) error {
	n := t.nodes[id]
	if _, err := fmt.Fprintf(w, "%d [label=\"%s\"]\n", n.ID, n.Label); err != nil {
		return err
	}
	for _, c := range n.Children {
		if _, err := fmt.Fprintf(w, "%d -> %d\n", n.ID, c); err != nil {
			return err
		}
		if err := t.WriteDOT(w, c); err != nil {
			return err
		}
	}
	return nil
}

// DOT returns the Graphviz body of the whole tree.
func (t *Tree) DOT() string {
	if len(t.nodes) == 0 {
		return ""
	}
	var buf bytes.Buffer
	_ = t.WriteDOT(&buf, t.root)
	return buf.String()
}

// PostOrder concatenates labels with every node after its descendants.
func (t *Tree) PostOrder() string {
	if len(t.nodes) == 0 {
		return ""
	}
	var buf bytes.Buffer
	var visit func(NodeID)
	visit = func(id NodeID) {
		for _, c := range t.nodes[id].Children {
			visit(c)
		}
		buf.WriteString(t.nodes[id].Label)
	}
	visit(t.root)
	return buf.String()
}

// Leaves returns the labels of the terminal nodes, left to right.
func (t *Tree) Leaves() []string {
	var out []string
	t.Walk(func(id NodeID, _ int) bool {
		if len(t.nodes[id].Children) == 0 {
			out = append(out, t.nodes[id].Label)
		}
		return true
	})
	return out
}
