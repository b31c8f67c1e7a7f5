package relation

import (
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// chainLike walks outward from a along step (children, parent, or immediate
// precedence/following), gated by desc. Every node reached is a candidate
// endpoint, win or lose; the grammar pairs relation_data's own argument
// (desc here) with a *separate* node_descriptions that tests the endpoint,
// so the endpoint itself is exempt from desc. Only continuing the walk past
// a node requires that node to satisfy desc.RawMatches: that's what makes
// the chain "unbroken". a itself is never tested or yielded.
func chainLike(a *tree.Node, desc *nodedesc.Descriptions, step func(*tree.Node) []*tree.Node) []*tree.Node {
	var out []*tree.Node
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		for _, c := range step(n) {
			out = append(out, c)
			if desc.RawMatches(c) {
				walk(c)
			}
		}
	}
	walk(a)
	return out
}

func parentStep(a *tree.Node) []*tree.Node {
	return single(a.Parent())
}

// UnbrokenDominates builds "<+(C)": a dominates the candidate via a chain of
// child links, every node strictly between a and the candidate matching C.
func UnbrokenDominates(desc *nodedesc.Descriptions) Relation {
	return simple{"<+", func(a *tree.Node) []*tree.Node {
		return chainLike(a, desc, parentOf)
	}}
}

// UnbrokenDominatedBy builds ">+(C)": a is dominated by the candidate via a
// chain of parent links, every node strictly between them matching C.
func UnbrokenDominatedBy(desc *nodedesc.Descriptions) Relation {
	return simple{">+", func(a *tree.Node) []*tree.Node {
		return chainLike(a, desc, parentStep)
	}}
}

// UnbrokenPrecedes builds ".+(C)": a immediately precedes the candidate via
// a chain of immediate-precedence links, every in-between node matching C.
func UnbrokenPrecedes(desc *nodedesc.Descriptions) Relation {
	return simple{".+", func(a *tree.Node) []*tree.Node {
		return chainLike(a, desc, immediatelyPrecedes)
	}}
}

// UnbrokenFollows builds ",+(C)": a immediately follows the candidate via a
// chain of immediate-following links, every in-between node matching C.
func UnbrokenFollows(desc *nodedesc.Descriptions) Relation {
	return simple{",+", func(a *tree.Node) []*tree.Node {
		return chainLike(a, desc, immediatelyFollows)
	}}
}
