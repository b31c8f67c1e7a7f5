package nodedesc

import (
	"strings"

	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// ConditionNode is satisfied by the condition package's Leaf/And/Or/Not/Opt
// types. It is defined here, rather than imported, so that nodedesc (which
// a Descriptions' attached condition may itself contain chain-relation
// arguments built from) never needs to depend on the condition package.
type ConditionNode interface {
	// Search evaluates the condition at anchor, returning one copy of
	// anchor per successful witness. An empty result means the condition
	// failed to match at anchor at all.
	Search(anchor *tree.Node) []*tree.Node
}

// Descriptions is a disjunction of Leaf predicates plus the
// negation/basic-category projection bits, an optional back-reference
// name, and an optional attached condition.
type Descriptions struct {
	Leaves      []Leaf
	Negated     bool
	UseBasicCat bool
	Name        string
	Ref         *BackRef
	Condition   ConditionNode
}

// New builds an unnamed, non-negated Descriptions from one or more Leaf
// disjuncts.
func New(leaves ...Leaf) *Descriptions {
	return &Descriptions{Leaves: append([]Leaf(nil), leaves...)}
}

// AddLeaf appends another disjunct (parsing "id|id2|...").
func (d *Descriptions) AddLeaf(l Leaf) {
	d.Leaves = append(d.Leaves, l)
}

// ToggleNegated flips the negation bit, warning (via the bool return) if it
// was already set (redundant "!!").
func (d *Descriptions) ToggleNegated() (changed bool) {
	changed = !d.Negated
	d.Negated = !d.Negated
	return changed
}

// EnableBasicCat sets the basic-category projection bit, warning (via the
// bool return) if it was already set (redundant "@@").
func (d *Descriptions) EnableBasicCat() (changed bool) {
	changed = !d.UseBasicCat
	d.UseBasicCat = true
	return changed
}

// Clone returns a fresh Descriptions carrying the same atomic predicates
// and negation/basic-cat bits as d, but no name, ref, or attached
// condition; the construction a `~name` link reference performs.
func (d *Descriptions) Clone() *Descriptions {
	return &Descriptions{
		Leaves:      append([]Leaf(nil), d.Leaves...),
		Negated:     d.Negated,
		UseBasicCat: d.UseBasicCat,
	}
}

// RawMatches tests n against d's disjunction and negation bit only, ignoring
// any attached condition and never binding a back-reference. The unbroken
// chain relations ("<+(C)" and friends) use this, not WitnessCount, to gate
// each step after the first; only the chain argument's atomic predicates
// constrain which nodes the chain may pass through, not any condition
// nested inside it.
func (d *Descriptions) RawMatches(n *tree.Node) bool {
	return d.rawMatches(n) != d.Negated
}

func (d *Descriptions) rawMatches(n *tree.Node) bool {
	for _, l := range d.Leaves {
		if l.rawMatches(n, d.UseBasicCat) {
			return true
		}
	}
	return false
}

// WitnessCount tests whether n satisfies d (disjunction, then negation,
// then any attached condition) and returns how many witnesses that
// produced: 0 if n fails outright, 1 if it succeeds with no attached
// condition, or the attached condition's own witness count otherwise.
// Each witness appends n to d's back-reference, if named.
func (d *Descriptions) WitnessCount(n *tree.Node) int {
	if d.rawMatches(n) == d.Negated {
		return 0
	}
	if d.Condition == nil {
		d.bind(n)
		return 1
	}
	witnesses := d.Condition.Search(n)
	for range witnesses {
		d.bind(n)
	}
	return len(witnesses)
}

func (d *Descriptions) bind(n *tree.Node) {
	if d.Name != "" && d.Ref != nil {
		d.Ref.Nodes = append(d.Ref.Nodes, n)
	}
}

// SearchTree enumerates root's subtree in preorder, yielding each node
// once per witness its WitnessCount reports; the top-level description
// search the matcher driver runs per root.
func (d *Descriptions) SearchTree(root *tree.Node) []*tree.Node {
	var out []*tree.Node
	for _, n := range root.Preorder() {
		count := d.WitnessCount(n)
		for i := 0; i < count; i++ {
			out = append(out, n)
		}
	}
	return out
}

func (d *Descriptions) String() string {
	var b strings.Builder
	if d.Negated {
		b.WriteByte('!')
	}
	if d.UseBasicCat {
		b.WriteByte('@')
	}
	for i, l := range d.Leaves {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
