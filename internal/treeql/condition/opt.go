package condition

import "github.com/tanloong/con-tregex/internal/treeql/tree"

// Opt implements the optional condition modifier ("?condition" / the
// "?[...]" bracketed form): the condition is tried, and if it matches at
// all, its own witnesses (and bindings) stand; otherwise Opt falls back to
// yielding anchor bare, with no bindings. An anchor whose optional
// condition holds is therefore counted once per witness, never an extra
// time for the anchor itself.
type Opt struct {
	Child Node
}

// NewOpt builds an Opt wrapping child.
func NewOpt(child Node) *Opt {
	return &Opt{Child: child}
}

func (o *Opt) Search(anchor *tree.Node) []*tree.Node {
	witnesses := o.Child.Search(anchor)
	if len(witnesses) > 0 {
		return witnesses
	}
	return []*tree.Node{anchor}
}
