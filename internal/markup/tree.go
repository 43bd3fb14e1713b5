package markup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/styles"
)

// Tree is the immutable node arena built from a markup source.
type Tree struct {
	path       string
	nodes      []Node
	byID       map[string]Handle
	focusables []Handle
	sheet      styles.Sheet
	err        *ParseError
}

// Path returns the source path the tree was built from.
func (t *Tree) Path() string {
	return t.path
}

// Failed reports whether building the tree failed.
func (t *Tree) Failed() bool {
	return t.err != nil
}

// Err returns the parse failure, if any.
func (t *Tree) Err() error {
	if t.err == nil {
		return nil
	}
	return t.err
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node, or nil for a failed or empty tree.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return &t.nodes[0]
}

// Node returns the node addressed by h, or nil when h is out of range.
func (t *Tree) Node(h Handle) *Node {
	if h < 0 || int(h) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[h]
}

// Children returns the node's children in document order.
func (t *Tree) Children(n *Node) []*Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, h := range n.Children {
		if child := t.Node(h); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Parent returns the node's parent, or nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	if n == nil {
		return nil
	}
	return t.Node(n.Parent)
}

// Ancestors returns the chain from the root down to the node's parent.
func (t *Tree) Ancestors(n *Node) []*Node {
	var chain []*Node
	for p := t.Parent(n); p != nil; p = t.Parent(p) {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// NearestAncestor returns the closest ancestor with the given tag.
func (t *Tree) NearestAncestor(n *Node, tag string) *Node {
	for p := t.Parent(n); p != nil; p = t.Parent(p) {
		if p.Tag == tag {
			return p
		}
	}
	return nil
}

// FindByID returns the first node declared with id.
func (t *Tree) FindByID(id string) *Node {
	h, ok := t.byID[id]
	if !ok {
		return nil
	}
	return t.Node(h)
}

// Focusables returns every node with a non-negative order, lowest first.
func (t *Tree) Focusables() []*Node {
	out := make([]*Node, 0, len(t.focusables))
	for _, h := range t.focusables {
		out = append(out, t.Node(h))
	}
	return out
}

// Sheet returns the stylesheet gathered from styles nodes.
func (t *Tree) Sheet() styles.Sheet {
	return t.sheet
}

// Walk visits nodes depth first in document order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	root := t.Root()
	if root == nil {
		return
	}
	t.walk(root, fn)
}

func (t *Tree) walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range t.Children(n) {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}

// ByTag returns every node with the given tag in document order.
func (t *Tree) ByTag(tag string) []*Node {
	var out []*Node
	t.Walk(func(n *Node) bool {
		if n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Style resolves the effective rule for n, which may be ephemeral.
func (t *Tree) Style(n *Node, focused, active bool) styles.Rule {
	ancestors := t.Ancestors(n)
	subjects := make([]styles.Subject, 0, len(ancestors))
	for _, anc := range ancestors {
		subjects = append(subjects, anc.Subject())
	}
	return t.sheet.Resolve(subjects, n.Subject(), focused, active)
}

// String renders an indented dump of the tree.
func (t *Tree) String() string {
	root := t.Root()
	if root == nil {
		return ""
	}
	var b strings.Builder
	t.dump(&b, root)
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, n *Node) {
	tab := strings.Repeat("\t", n.Depth)
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(b, "%s<%s", tab, n.Tag)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, n.Attributes[k])
	}
	b.WriteString(">\n")
	if n.Text != "" {
		fmt.Fprintf(b, "%s\t%s\n", tab, n.Text)
	}
	for _, child := range t.Children(n) {
		t.dump(b, child)
	}
	fmt.Fprintf(b, "%s</%s>\n", tab, n.Tag)
}
