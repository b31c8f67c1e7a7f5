// Package tree implements the labeled, ordered, rooted tree that the
// pattern engine searches: constituency parses read from S-expression text.
package tree

import (
	"fmt"
	"strings"
)

const (
	lrb       = "("
	rrb       = ")"
	lrbEscape = "-LRB-"
	rrbEscape = "-RRB-"
)

// Node is one node of a parsed tree. Nodes are built once during parsing
// and never mutated afterward; the matcher only reads them.
type Node struct {
	label    string
	hasLabel bool
	children []*Node
	parent   *Node

	basicCat    string
	basicCatSet bool

	leftEdge, rightEdge int
	edgesValid          bool
}

// newNode creates a childless node with the given label; children are added
// afterwards with AddChild. A nil label (hasLabel=false) is represented by
// an empty, unset Node label; callers outside this package use
// NewLabeled/NewAnonymous.
func newNode(label string, hasLabel bool) *Node {
	return &Node{label: label, hasLabel: hasLabel}
}

// NewLabeled creates a node carrying the given label.
func NewLabeled(label string) *Node {
	return newNode(normalize(label), true)
}

// NewAnonymous creates a node with no label (only ever seen as the
// discarded root wrapper during parsing).
func NewAnonymous() *Node {
	return newNode("", false)
}

// AddChild appends a child, wiring its parent pointer.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Label returns the node's label and whether it has one.
func (n *Node) Label() (string, bool) {
	return n.label, n.hasLabel
}

// Parent returns the node's parent, or nil if it is a root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Children returns the node's children in order. Callers must not mutate
// the returned slice.
func (n *Node) Children() []*Node { return n.children }

// NumChildren reports how many children n has.
func (n *Node) NumChildren() int { return len(n.children) }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsPreterminal reports whether n has exactly one child that is itself a
// leaf.
func (n *Node) IsPreterminal() bool {
	return len(n.children) == 1 && n.children[0].IsLeaf()
}

// FirstChild returns the first child, or nil if n is a leaf.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child, or nil if n is a leaf.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// ChildAt resolves Tregex's 1-indexed, possibly-negative child index: 1 is
// the first child, -1 the last. Zero is never passed in (the parser rejects
// it). It returns nil if i is out of range.
func (n *Node) ChildAt(i int) *Node {
	idx, ok := resolveIndex(i, len(n.children))
	if !ok {
		return nil
	}
	return n.children[idx]
}

// SisterIndex returns n's 0-based position among its parent's children, or
// -1 if n is a root.
func (n *Node) SisterIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Sisters returns n's siblings (not including n itself), or nil if n is a
// root.
func (n *Node) Sisters() []*Node {
	if n.parent == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.parent.children)-1)
	for _, c := range n.parent.children {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}

// BasicCategory returns the label's prefix up to (not including) the first
// '-', or ok=false if the node carries no label. The result is memoized on
// first computation.
func (n *Node) BasicCategory() (string, bool) {
	if !n.hasLabel {
		return "", false
	}
	if n.basicCatSet {
		return n.basicCat, true
	}
	bc := n.label
	if i := strings.IndexByte(bc, '-'); i >= 0 {
		bc = bc[:i]
	}
	n.basicCat = bc
	n.basicCatSet = true
	return bc, true
}

// Root walks parent pointers up to the tree's root.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Preorder returns n and its descendants in preorder (self, then each
// child's own preorder, left to right).
func (n *Node) Preorder() []*Node {
	out := make([]*Node, 0, 1)
	var walk func(*Node)
	walk = func(m *Node) {
		out = append(out, m)
		for _, c := range m.children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Leaves returns n's leaves left to right.
func (n *Node) Leaves() []*Node {
	var out []*Node
	for _, m := range n.Preorder() {
		if m.IsLeaf() {
			out = append(out, m)
		}
	}
	return out
}

// LeftEdge returns the count of leaves in n's root strictly to the left of
// n; RightEdge is LeftEdge plus the number of leaves in n's own span. Both
// are computed for the whole containing tree on first access and cached.
func (n *Node) LeftEdge() int {
	n.ensureEdges()
	return n.leftEdge
}

// RightEdge is documented with LeftEdge.
func (n *Node) RightEdge() int {
	n.ensureEdges()
	return n.rightEdge
}

func (n *Node) ensureEdges() {
	if n.edgesValid {
		return
	}
	computeEdges(n.Root(), 0)
}

func computeEdges(n *Node, start int) int {
	if n.IsLeaf() {
		n.leftEdge, n.rightEdge = start, start+1
		n.edgesValid = true
		return start + 1
	}
	n.leftEdge = start
	cur := start
	for _, c := range n.children {
		cur = computeEdges(c, cur)
	}
	n.rightEdge = cur
	n.edgesValid = true
	return cur
}

// String serializes n back to S-expression text, escaping literal
// parentheses in labels.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsLeaf() {
		if n.hasLabel {
			b.WriteString(escape(n.label))
		}
		return
	}
	b.WriteString(lrb)
	if n.hasLabel {
		b.WriteString(escape(n.label))
	}
	for _, c := range n.children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteString(rrb)
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, rrbEscape, rrb)
	s = strings.ReplaceAll(s, lrbEscape, lrb)
	return s
}

func escape(s string) string {
	s = strings.ReplaceAll(s, rrb, rrbEscape)
	s = strings.ReplaceAll(s, lrb, lrbEscape)
	return s
}

// resolveIndex turns a Tregex 1-indexed, possibly-negative position into a
// 0-indexed slice offset. i must be non-zero.
func resolveIndex(i, n int) (int, bool) {
	if i == 0 {
		panic("tree: child index 0 is never valid")
	}
	var idx int
	if i > 0 {
		idx = i - 1
	} else {
		idx = n + i
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// ErrMalformed is returned for tree text with unbalanced parentheses.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed tree input: %s", e.Reason)
}
