package condition

import (
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// And conjoins two or more conditions. It folds left to right: anchor must
// produce at least one witness from every child, and the total witness
// count is the product across children. If any child produces zero
// witnesses, every back-reference write any earlier child made for this
// anchor is rolled back; partial matches from a failed conjunction must
// not leak into the table.
type And struct {
	Table    *nodedesc.Table
	Children []Node
}

// NewAnd builds an And over two or more children, sharing table for
// snapshot/restore.
func NewAnd(table *nodedesc.Table, children ...Node) *And {
	return &And{Table: table, Children: append([]Node(nil), children...)}
}

func (a *And) Search(anchor *tree.Node) []*tree.Node {
	var snap map[string]int
	if a.Table != nil {
		snap = a.Table.Snapshot()
	}

	total := 1
	for _, child := range a.Children {
		witnesses := child.Search(anchor)
		if len(witnesses) == 0 {
			if a.Table != nil {
				a.Table.Restore(snap)
			}
			return nil
		}
		total *= len(witnesses)
	}

	out := make([]*tree.Node, total)
	for i := range out {
		out[i] = anchor
	}
	return out
}
