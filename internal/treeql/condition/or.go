package condition

import "github.com/tanloong/con-tregex/internal/treeql/tree"

// Or disjoins two or more conditions. Every child is tried regardless of
// whether an earlier one succeeded; a name bound in one branch and reused
// in another accumulates across both ("A [< B=foo || < C=foo]" binds foo
// to every B and every C found, not just the first branch to succeed). No
// snapshot/restore is needed here: a branch that fails outright never
// binds anything (see nodedesc.Descriptions.WitnessCount), so there is
// nothing to roll back.
type Or struct {
	Children []Node
}

// NewOr builds an Or over two or more children.
func NewOr(children ...Node) *Or {
	return &Or{Children: append([]Node(nil), children...)}
}

func (o *Or) Search(anchor *tree.Node) []*tree.Node {
	var out []*tree.Node
	for _, child := range o.Children {
		out = append(out, child.Search(anchor)...)
	}
	return out
}
