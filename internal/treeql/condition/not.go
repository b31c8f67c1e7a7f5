package condition

import (
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// Not negates a condition. It always restores the back-reference table to
// what it was before evaluating its child, win or lose: a negated
// condition is only ever checked for emptiness, so any name it would have
// bound is meaningless and must never escape into the table (unlike And,
// which keeps a successful child's writes).
type Not struct {
	Table *nodedesc.Table
	Child Node
}

// NewNot builds a Not wrapping child, sharing table for restore.
func NewNot(table *nodedesc.Table, child Node) *Not {
	return &Not{Table: table, Child: child}
}

func (n *Not) Search(anchor *tree.Node) []*tree.Node {
	var snap map[string]int
	if n.Table != nil {
		snap = n.Table.Snapshot()
	}
	witnesses := n.Child.Search(anchor)
	if n.Table != nil {
		n.Table.Restore(snap)
	}
	if len(witnesses) > 0 {
		return nil
	}
	return []*tree.Node{anchor}
}
