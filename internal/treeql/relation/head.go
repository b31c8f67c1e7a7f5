package relation

import (
	"github.com/tanloong/con-tregex/internal/treeql/headfinder"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// headRelation wraps a HeadFinder-backed candidate function; it is built
// fresh per compiled pattern (by HeadTable) rather than held in the package
// level Table, since the head rulebook is pluggable.
type headRelation struct {
	symbol string
	fn     func(hf headfinder.HeadFinder, a *tree.Node) []*tree.Node
}

func (h headRelation) bind(hf headfinder.HeadFinder) Relation {
	return simple{h.symbol, func(a *tree.Node) []*tree.Node { return h.fn(hf, a) }}
}

var headChildOf = headRelation{"<#", func(hf headfinder.HeadFinder, a *tree.Node) []*tree.Node {
	return single(hf.HeadOf(a))
}}

var isHeadChildOf = headRelation{">#", func(hf headfinder.HeadFinder, a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p == nil || hf.HeadOf(p) != a {
		return nil
	}
	return single(p)
}}

var headedByChain = headRelation{"<<#", func(hf headfinder.HeadFinder, a *tree.Node) []*tree.Node {
	var out []*tree.Node
	for cur := hf.HeadOf(a); cur != nil; cur = hf.HeadOf(cur) {
		out = append(out, cur)
	}
	return out
}}

var headsChain = headRelation{">>#", func(hf headfinder.HeadFinder, a *tree.Node) []*tree.Node {
	var out []*tree.Node
	cur := a
	for cur.Parent() != nil && hf.HeadOf(cur.Parent()) == cur {
		cur = cur.Parent()
		out = append(out, cur)
	}
	return out
}}

// HeadTable builds the four head-projection relations bound to hf. The
// parser calls this once per compiled pattern (with whatever HeadFinder the
// caller configured, defaulting to headfinder.Rightmost) and looks symbols
// up in the result alongside the argument-free Table.
func HeadTable(hf headfinder.HeadFinder) map[string]Relation {
	return map[string]Relation{
		"<#":  headChildOf.bind(hf),
		">#":  isHeadChildOf.bind(hf),
		"<<#": headedByChain.bind(hf),
		">>#": headsChain.bind(hf),
	}
}
