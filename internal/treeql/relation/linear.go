package relation

import "github.com/tanloong/con-tregex/internal/treeql/tree"

// isDominanceRelated reports whether a and b stand in an ancestor/descendant
// relationship (in either direction), including a == b. Precedence and
// following are only meaningful between nodes neither of which contains the
// other.
func isDominanceRelated(a, b *tree.Node) bool {
	if a == b {
		return true
	}
	for p := b.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	for p := a.Parent(); p != nil; p = p.Parent() {
		if p == b {
			return true
		}
	}
	return false
}

func precedes(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	end := a.RightEdge()
	for _, n := range a.Root().Preorder() {
		if isDominanceRelated(a, n) {
			continue
		}
		if n.LeftEdge() >= end {
			out = append(out, n)
		}
	}
	return out
}

func follows(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	start := a.LeftEdge()
	for _, n := range a.Root().Preorder() {
		if isDominanceRelated(a, n) {
			continue
		}
		if n.RightEdge() <= start {
			out = append(out, n)
		}
	}
	return out
}

func immediatelyPrecedes(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	end := a.RightEdge()
	for _, n := range a.Root().Preorder() {
		if isDominanceRelated(a, n) {
			continue
		}
		if n.LeftEdge() == end {
			out = append(out, n)
		}
	}
	return out
}

func immediatelyFollows(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	start := a.LeftEdge()
	for _, n := range a.Root().Preorder() {
		if isDominanceRelated(a, n) {
			continue
		}
		if n.RightEdge() == start {
			out = append(out, n)
		}
	}
	return out
}
