// Package headfinder declares the pluggable capability the head-projection
// relations ("<#", ">#", "<<#", ">>#") delegate to. Concrete
// treebank-style rulebooks are external artifacts; this package only
// carries the interface plus a deterministic default used by the CLI and
// by this repo's own tests.
package headfinder

import "github.com/tanloong/con-tregex/internal/treeql/tree"

// HeadFinder selects at most one child of a non-leaf node as its syntactic
// head. Implementations must be deterministic; the matcher relies on
// repeated calls with the same node returning the same result.
type HeadFinder interface {
	HeadOf(n *tree.Node) *tree.Node
}

// Rightmost is a minimal default: it picks the last child as the head,
// skipping none of the preterminal/punctuation special-casing a real
// treebank rulebook would apply. It exists so the engine and its tests have
// something to inject when no rulebook is configured; it is not meant to
// model any specific treebank's linguistics.
type Rightmost struct{}

// HeadOf returns n's last child, or nil if n is a leaf.
func (Rightmost) HeadOf(n *tree.Node) *tree.Node {
	return n.LastChild()
}

// Leftmost mirrors Rightmost but picks the first child; useful for tests
// that want a distinguishable head rule from the default.
type Leftmost struct{}

// HeadOf returns n's first child, or nil if n is a leaf.
func (Leftmost) HeadOf(n *tree.Node) *tree.Node {
	return n.FirstChild()
}
