// Package relation implements the closed catalog of binary predicates on
// tree nodes. Each relation is modeled as a candidate generator: given the
// left-hand node a, it yields every node standing in that relation to a,
// which is always enough to evaluate a Leaf condition without a separate
// satisfies predicate; b is a candidate of a iff "a R b" holds.
package relation

import "github.com/tanloong/con-tregex/internal/treeql/tree"

// Relation is implemented by every entry in the catalog below. There is no
// virtual dispatch beyond this one interface: each symbol in the Table maps
// to a concrete value built by a constructor in this package.
type Relation interface {
	// Symbol is the operator text the relation was parsed from, used for
	// error messages and the glossary.
	Symbol() string
	// Candidates yields every node b such that "a Symbol b" holds.
	Candidates(a *tree.Node) []*tree.Node
}

type candidateFunc func(a *tree.Node) []*tree.Node

type simple struct {
	symbol string
	fn     candidateFunc
}

func (s simple) Symbol() string                       { return s.symbol }
func (s simple) Candidates(a *tree.Node) []*tree.Node { return s.fn(a) }

func single(n *tree.Node) []*tree.Node {
	if n == nil {
		return nil
	}
	return []*tree.Node{n}
}

// Table is the fixed mapping from surface symbol to relation, used by the
// parser for symbols that take no argument (plain RELATION tokens). The
// head-projection relations ("<#", ">#", "<<#", ">>#") and the unbroken
// chain relations ("<+(C)", ">+(C)", ".+(C)", ",+(C)") are built
// separately, in head.go and chain.go, since they close over a HeadFinder
// or a node-description argument the parser supplies per occurrence.
var Table = map[string]Relation{
	"<":  simple{"<", parentOf},
	">":  simple{">", childOf},
	"<<": simple{"<<", dominates},
	">>": simple{">>", dominatedBy},

	"<:": simple{"<:", hasOnlyChild},
	">:": simple{">:", onlyChildOf},

	"<,": HasIthChild(1),
	">,": IthChildOf(1),
	"<-": HasIthChild(-1),
	"<`": HasIthChild(-1),
	">-": IthChildOf(-1),
	">`": IthChildOf(-1),

	"<<,": simple{"<<,", leftmostDescendantChainDown},
	">>,": simple{">>,", leftmostDescendantChainUp},
	"<<-": simple{"<<-", rightmostDescendantChainDown},
	"<<`": simple{"<<`", rightmostDescendantChainDown},
	">>-": simple{">>-", rightmostDescendantChainUp},
	">>`": simple{">>`", rightmostDescendantChainUp},

	"$":   simple{"$", sisterOf},
	"$..": simple{"$..", leftSisterOf},
	"$++": simple{"$++", leftSisterOf},
	"$,,": simple{"$,,", rightSisterOf},
	"$--": simple{"$--", rightSisterOf},
	"$.":  simple{"$.", immediateLeftSisterOf},
	"$+":  simple{"$+", immediateLeftSisterOf},
	"$,":  simple{"$,", immediateRightSisterOf},
	"$-":  simple{"$-", immediateRightSisterOf},

	"==": simple{"==", equals},
	"<=": simple{"<=", parentEquals},

	"<<:": simple{"<<:", unaryPathDown},
	">>:": simple{">>:", unaryPathUp},

	"..": simple{"..", precedes},
	",,": simple{",,", follows},
	".":  simple{".", immediatelyPrecedes},
	",":  simple{",", immediatelyFollows},

	":": simple{":", everyNode},
}

// NumArgTable lists which plain-RELATION tokens may be followed by a
// NUMBER token and the constructor each pairing resolves to. The parser
// negates the number first for the "-" spellings, which count from the
// last child or leaf.
var NumArgTable = map[string]func(i int) Relation{
	"<":    HasIthChild,
	"<-":   HasIthChild,
	">":    IthChildOf,
	">-":   IthChildOf,
	"<<<":  AncestorOfIthLeaf,
	"<<<-": AncestorOfIthLeaf,
}

func parentOf(a *tree.Node) []*tree.Node {
	out := make([]*tree.Node, len(a.Children()))
	copy(out, a.Children())
	return out
}

func childOf(a *tree.Node) []*tree.Node {
	return single(a.Parent())
}

func dominates(a *tree.Node) []*tree.Node {
	pre := a.Preorder()
	if len(pre) == 0 {
		return nil
	}
	return pre[1:]
}

func dominatedBy(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	for p := a.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

func hasOnlyChild(a *tree.Node) []*tree.Node {
	if a.NumChildren() == 1 {
		return single(a.FirstChild())
	}
	return nil
}

func onlyChildOf(a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p != nil && p.NumChildren() == 1 {
		return single(p)
	}
	return nil
}

func leftmostDescendantChainDown(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	for cur := a.FirstChild(); cur != nil; cur = cur.FirstChild() {
		out = append(out, cur)
	}
	return out
}

func leftmostDescendantChainUp(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	cur := a
	for cur.Parent() != nil && cur.Parent().FirstChild() == cur {
		cur = cur.Parent()
		out = append(out, cur)
	}
	return out
}

func rightmostDescendantChainDown(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	for cur := a.LastChild(); cur != nil; cur = cur.LastChild() {
		out = append(out, cur)
	}
	return out
}

func rightmostDescendantChainUp(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	cur := a
	for cur.Parent() != nil && cur.Parent().LastChild() == cur {
		cur = cur.Parent()
		out = append(out, cur)
	}
	return out
}

func sisterOf(a *tree.Node) []*tree.Node {
	return a.Sisters()
}

func leftSisterOf(a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p == nil {
		return nil
	}
	idx := a.SisterIndex()
	sibs := p.Children()
	out := make([]*tree.Node, 0, len(sibs)-idx-1)
	for _, s := range sibs[idx+1:] {
		out = append(out, s)
	}
	return out
}

func rightSisterOf(a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p == nil {
		return nil
	}
	idx := a.SisterIndex()
	out := make([]*tree.Node, 0, idx)
	out = append(out, p.Children()[:idx]...)
	return out
}

func immediateLeftSisterOf(a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p == nil {
		return nil
	}
	idx := a.SisterIndex()
	sibs := p.Children()
	if idx+1 < len(sibs) {
		return single(sibs[idx+1])
	}
	return nil
}

func immediateRightSisterOf(a *tree.Node) []*tree.Node {
	p := a.Parent()
	if p == nil {
		return nil
	}
	idx := a.SisterIndex()
	if idx > 0 {
		return single(p.Children()[idx-1])
	}
	return nil
}

func equals(a *tree.Node) []*tree.Node {
	return []*tree.Node{a}
}

func parentEquals(a *tree.Node) []*tree.Node {
	out := []*tree.Node{a}
	out = append(out, a.Children()...)
	return out
}

func unaryPathDown(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	cur := a
	for cur.NumChildren() == 1 {
		cur = cur.FirstChild()
		out = append(out, cur)
	}
	return out
}

func unaryPathUp(a *tree.Node) []*tree.Node {
	var out []*tree.Node
	cur := a
	for cur.Parent() != nil && cur.Parent().NumChildren() == 1 {
		cur = cur.Parent()
		out = append(out, cur)
	}
	return out
}

func everyNode(a *tree.Node) []*tree.Node {
	return a.Root().Preorder()
}

// HasIthChild implements `< i` / `<- i` / the bare `<,`/`<-` aliases: a's
// 1-indexed (or, negative, counted-from-the-end) child.
func HasIthChild(i int) Relation {
	return simple{ithSymbol("<", i), func(a *tree.Node) []*tree.Node {
		return single(a.ChildAt(i))
	}}
}

// IthChildOf implements `> i` and its aliases: a is the i-th (or
// from-the-end) child of its parent.
func IthChildOf(i int) Relation {
	return simple{ithSymbol(">", i), func(a *tree.Node) []*tree.Node {
		p := a.Parent()
		if p == nil || p.ChildAt(i) != a {
			return nil
		}
		return single(p)
	}}
}

// AncestorOfIthLeaf implements `<<< i` / `<<<- i`: a is a proper ancestor
// of the i-th (or from-the-end) leaf within a's own subtree, so a leaf
// anchor never matches itself.
func AncestorOfIthLeaf(i int) Relation {
	return simple{ithSymbol("<<<", i), func(a *tree.Node) []*tree.Node {
		if a.IsLeaf() {
			return nil
		}
		leaves := a.Leaves()
		idx, ok := indexFromOneBased(i, len(leaves))
		if !ok {
			return nil
		}
		return single(leaves[idx])
	}}
}

func ithSymbol(base string, i int) string {
	if i < 0 {
		return base + "-"
	}
	return base
}

func indexFromOneBased(i, n int) (int, bool) {
	var idx int
	if i > 0 {
		idx = i - 1
	} else {
		idx = n + i
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}
