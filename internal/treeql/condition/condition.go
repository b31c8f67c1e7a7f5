// Package condition implements the condition algebra a node description may
// carry: a Leaf tests one relation against one or more candidate node
// descriptions, and And/Or/Not/Opt compose Leaves (and each other) the way
// a boolean expression does, except that Search's return slice length also
// carries witness multiplicity, not just success.
package condition

import (
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/relation"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// Node is the common interface every condition tree node implements, and
// the same interface nodedesc.Descriptions expects of its attached
// Condition field (nodedesc.ConditionNode); this package's types satisfy
// that interface structurally, without nodedesc importing this package.
type Node interface {
	Search(anchor *tree.Node) []*tree.Node
}

// Leaf tests whether anchor stands in Relation to at least one candidate
// matching any of Descs: it walks Relation.Candidates(anchor) and, for
// each candidate, asks every Descriptions in Descs how many witnesses it
// produces there, summing and binding back-references along the way.
type Leaf struct {
	Rel   relation.Relation
	Descs []*nodedesc.Descriptions
}

// NewLeaf builds a Leaf condition from a relation and one or more
// alternative node-description targets. The parser always passes exactly
// one: "R desc1|desc2|..." becomes a single Descriptions with several leaves.
func NewLeaf(rel relation.Relation, descs ...*nodedesc.Descriptions) *Leaf {
	return &Leaf{Rel: rel, Descs: append([]*nodedesc.Descriptions(nil), descs...)}
}

// Search yields one copy of anchor per (candidate, description) witness
// found among Rel's candidates. "A <= A" at an A whose children include
// another A therefore produces one witness per matching candidate, not a
// single boolean success.
func (l *Leaf) Search(anchor *tree.Node) []*tree.Node {
	var out []*tree.Node
	for _, cand := range l.Rel.Candidates(anchor) {
		for _, desc := range l.Descs {
			count := desc.WitnessCount(cand)
			for i := 0; i < count; i++ {
				out = append(out, anchor)
			}
		}
	}
	return out
}
