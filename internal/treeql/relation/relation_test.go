package relation

import (
	"testing"

	"github.com/tanloong/con-tregex/internal/treeql/headfinder"
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

func mustParse(t *testing.T, s string) *tree.Node {
	t.Helper()
	roots, err := tree.ParseForest(s)
	if err != nil {
		t.Fatalf("ParseForest(%q): %v", s, err)
	}
	if len(roots) != 1 {
		t.Fatalf("ParseForest(%q): got %d roots, want 1", s, len(roots))
	}
	return roots[0]
}

func labelsOf(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		l, _ := n.Label()
		out[i] = l
	}
	return out
}

func assertLabels(t *testing.T, got []*tree.Node, want []string) {
	t.Helper()
	gotLabels := labelsOf(got)
	if len(gotLabels) != len(want) {
		t.Fatalf("got %v, want %v", gotLabels, want)
	}
	for i := range want {
		if gotLabels[i] != want[i] {
			t.Fatalf("got %v, want %v", gotLabels, want)
		}
	}
}

func TestParentOfAndChildOf(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2))")
	b := root.Children()[0]

	assertLabels(t, Table["<"].Candidates(root), []string{"B", "C"})
	assertLabels(t, Table[">"].Candidates(b), []string{"A"})
	if got := Table[">"].Candidates(root); len(got) != 0 {
		t.Fatalf("root has no parent, got %v", got)
	}
}

func TestDominatesAndDominatedBy(t *testing.T) {
	root := mustParse(t, "(A (B (D 1)) (C 2))")
	d := root.Children()[0].Children()[0]

	assertLabels(t, Table["<<"].Candidates(root), []string{"B", "D", "1", "C", "2"})
	assertLabels(t, Table[">>"].Candidates(d), []string{"B", "A"})
}

func TestOnlyChild(t *testing.T) {
	solo := mustParse(t, "(A (B 1))")
	pair := mustParse(t, "(A (B 1) (C 2))")

	assertLabels(t, Table["<:"].Candidates(solo), []string{"B"})
	if got := Table["<:"].Candidates(pair); len(got) != 0 {
		t.Fatalf("A has two children, want no <: candidate, got %v", got)
	}
	assertLabels(t, Table[">:"].Candidates(solo.Children()[0]), []string{"A"})
}

func TestFirstLastChild(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2) (D 3))")
	b, c, d := root.Children()[0], root.Children()[1], root.Children()[2]

	assertLabels(t, Table["<,"].Candidates(root), []string{"B"})
	assertLabels(t, Table["<-"].Candidates(root), []string{"D"})
	assertLabels(t, Table[">,"].Candidates(b), []string{"A"})
	assertLabels(t, Table[">-"].Candidates(d), []string{"A"})
	if got := Table[">,"].Candidates(c); len(got) != 0 {
		t.Fatalf("C is not leftmost, want no >, candidate, got %v", got)
	}
}

func TestDescendantChains(t *testing.T) {
	root := mustParse(t, "(A (B (D 1) (E 2)) (C 3))")

	assertLabels(t, Table["<<,"].Candidates(root), []string{"B", "D", "1"})
	assertLabels(t, Table["<<-"].Candidates(root), []string{"C", "3"})

	one := root.Children()[0].Children()[0].Children()[0]
	assertLabels(t, Table[">>,"].Candidates(one), []string{"D", "B", "A"})
}

func TestSisters(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2) (D 3))")
	b, c, d := root.Children()[0], root.Children()[1], root.Children()[2]

	assertLabels(t, Table["$"].Candidates(c), []string{"B", "D"})
	assertLabels(t, Table["$.."].Candidates(b), []string{"C", "D"})
	assertLabels(t, Table["$,,"].Candidates(d), []string{"B", "C"})
	assertLabels(t, Table["$."].Candidates(b), []string{"C"})
	assertLabels(t, Table["$,"].Candidates(d), []string{"C"})
	if got := Table["$."].Candidates(d); len(got) != 0 {
		t.Fatalf("D has no immediate right sister, got %v", got)
	}
}

func TestEqualsAndParentEquals(t *testing.T) {
	root := mustParse(t, "(A (B 1))")
	assertLabels(t, Table["=="].Candidates(root), []string{"A"})
	assertLabels(t, Table["<="].Candidates(root), []string{"A", "B"})
}

func TestUnaryPaths(t *testing.T) {
	root := mustParse(t, "(A (B (C 1)))")
	c := root.Children()[0].Children()[0]

	assertLabels(t, Table["<<:"].Candidates(root), []string{"B", "C", "1"})
	assertLabels(t, Table[">>:"].Candidates(c), []string{"B", "A"})
}

func TestPrecedesAndFollows(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2))")
	b := root.Children()[0]
	c := root.Children()[1]
	two := c.Children()[0]

	assertLabels(t, Table[".."].Candidates(b), []string{"C", "2"})
	assertLabels(t, Table["."].Candidates(b), []string{"C", "2"})
	assertLabels(t, Table[",,"].Candidates(two), []string{"B", "1"})
	assertLabels(t, Table[","].Candidates(two), []string{"B", "1"})
}

func TestHasIthChildAndIthChildOf(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2) (D 3))")
	d := root.Children()[2]

	assertLabels(t, HasIthChild(3).Candidates(root), []string{"D"})
	assertLabels(t, HasIthChild(-1).Candidates(root), []string{"D"})
	assertLabels(t, IthChildOf(-1).Candidates(d), []string{"A"})
	assertLabels(t, IthChildOf(3).Candidates(d), []string{"A"})
}

func TestAncestorOfIthLeaf(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2) (D 3))")
	assertLabels(t, AncestorOfIthLeaf(1).Candidates(root), []string{"1"})
	assertLabels(t, AncestorOfIthLeaf(-1).Candidates(root), []string{"3"})

	leaf := root.Children()[0].Children()[0]
	if got := AncestorOfIthLeaf(1).Candidates(leaf); len(got) != 0 {
		t.Fatalf("a leaf is not a proper ancestor of any leaf, got %v", labelsOf(got))
	}
}

func TestHeadTable(t *testing.T) {
	root := mustParse(t, "(A (B 1) (C 2))")
	b, c := root.Children()[0], root.Children()[1]

	rightmost := HeadTable(headfinder.Rightmost{})
	assertLabels(t, rightmost["<#"].Candidates(root), []string{"C"})
	assertLabels(t, rightmost[">#"].Candidates(c), []string{"A"})
	if got := rightmost[">#"].Candidates(b); len(got) != 0 {
		t.Fatalf("B is not the rightmost head, got %v", got)
	}
}

func TestUnbrokenDominates(t *testing.T) {
	root := mustParse(t, "(A (NP (NP (NN x))) (VP 1))")
	desc := nodedesc.New(nodedesc.NewID("NP"))

	// Candidates includes every node reached, not just ones matching desc:
	// the chain argument only gates which nodes the walk continues through
	// (NN and VP both stop the walk immediately), while the caller's
	// separate target node_descriptions is what actually filters endpoints.
	got := UnbrokenDominates(desc).Candidates(root)
	assertLabels(t, got, []string{"NP", "NP", "NN", "VP"})
}

func TestUnbrokenDominatedBy(t *testing.T) {
	root := mustParse(t, "(A (NP (NP (NN x))))")
	innerNP := root.Children()[0].Children()[0]
	desc := nodedesc.New(nodedesc.NewID("NP"))

	got := UnbrokenDominatedBy(desc).Candidates(innerNP)
	assertLabels(t, got, []string{"NP", "A"})
}
