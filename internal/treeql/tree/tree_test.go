package tree

import "testing"

func mustParseOne(t *testing.T, s string) *Node {
	t.Helper()
	roots, err := ParseForest(s)
	if err != nil {
		t.Fatalf("ParseForest(%q): %v", s, err)
	}
	if len(roots) != 1 {
		t.Fatalf("ParseForest(%q): got %d roots, want 1", s, len(roots))
	}
	return roots[0]
}

func TestParseForestBasic(t *testing.T) {
	root := mustParseOne(t, "( NP (DT The) (NN battery) (NN plant) )")
	if lbl, _ := root.Label(); lbl != "NP" {
		t.Fatalf("label = %q, want NP", lbl)
	}
	if root.NumChildren() != 3 {
		t.Fatalf("num children = %d, want 3", root.NumChildren())
	}
	if got := root.Children()[0].FirstChild().String(); got != "The" {
		t.Fatalf("leaf = %q, want The", got)
	}
}

func TestParseForestUnwrapsAnonymousRoot(t *testing.T) {
	root := mustParseOne(t, "((S (NP 1) (VP 2)))")
	if lbl, _ := root.Label(); lbl != "S" {
		t.Fatalf("label = %q, want S", lbl)
	}
	if !root.IsRoot() {
		t.Fatalf("unwrapped root should have no parent")
	}
}

func TestParseForestMultipleTrees(t *testing.T) {
	roots, err := ParseForest("(ROOT (MWE (N 1)(N 2)(N 3))) (ROOT (MWV (A B)))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
}

func TestParseForestEscapesBrackets(t *testing.T) {
	root := mustParseOne(t, "(-LRB- -LRB-)")
	if lbl, _ := root.Label(); lbl != "(" {
		t.Fatalf("label = %q, want (", lbl)
	}
	if s := root.String(); s != "(-LRB- -LRB-)" {
		t.Fatalf("round-trip = %q, want re-escaped brackets", s)
	}
}

func TestParseForestSkipsEmptyGroups(t *testing.T) {
	root := mustParseOne(t, "(A ( ) (B c))")
	if root.NumChildren() != 1 {
		t.Fatalf("num children = %d, want the empty group dropped", root.NumChildren())
	}
	if lbl, _ := root.FirstChild().Label(); lbl != "B" {
		t.Fatalf("surviving child = %q, want B", lbl)
	}
}

func TestParseForestUnmatchedRightParen(t *testing.T) {
	_, err := ParseForest("(A 1))")
	if err == nil {
		t.Fatalf("expected malformed-input error")
	}
}

func TestParseForestUnclosedLeftParen(t *testing.T) {
	_, err := ParseForest("(A (B 1)")
	if err == nil {
		t.Fatalf("expected malformed-input error")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	src := "(NP (DT The) (NN battery))"
	root := mustParseOne(t, src)
	again := mustParseOne(t, root.String())
	if root.String() != again.String() {
		t.Fatalf("round trip mismatch: %q vs %q", root.String(), again.String())
	}
}

func TestBasicCategory(t *testing.T) {
	root := mustParseOne(t, "(NP-SBJ-1 (DT The))")
	bc, ok := root.BasicCategory()
	if !ok || bc != "NP" {
		t.Fatalf("basic category = %q, %v, want NP, true", bc, ok)
	}
	// second call exercises the memoized path
	bc2, _ := root.BasicCategory()
	if bc2 != bc {
		t.Fatalf("memoized basic category changed: %q vs %q", bc, bc2)
	}
}

func TestPreorderAndLeaves(t *testing.T) {
	root := mustParseOne(t, "(A (B 1) (C (D 2)))")
	pre := root.Preorder()
	if len(pre) != 6 {
		t.Fatalf("preorder length = %d, want 6", len(pre))
	}
	labels := make([]string, len(pre))
	for i, n := range pre {
		labels[i], _ = n.Label()
	}
	want := []string{"A", "B", "1", "C", "D", "2"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("preorder[%d] = %q, want %q (%v)", i, labels[i], want[i], labels)
		}
	}
	if len(root.Leaves()) != 2 {
		t.Fatalf("leaves = %d, want 2", len(root.Leaves()))
	}
}

func TestEdges(t *testing.T) {
	root := mustParseOne(t, "(A (B 1) (C 2) (D 3))")
	b, c, d := root.Children()[0], root.Children()[1], root.Children()[2]
	if b.LeftEdge() != 0 || b.RightEdge() != 1 {
		t.Fatalf("B edges = [%d,%d), want [0,1)", b.LeftEdge(), b.RightEdge())
	}
	if c.LeftEdge() != 1 || c.RightEdge() != 2 {
		t.Fatalf("C edges = [%d,%d), want [1,2)", c.LeftEdge(), c.RightEdge())
	}
	if d.LeftEdge() != 2 || root.RightEdge() != 3 {
		t.Fatalf("D/root edges wrong: D.left=%d root.right=%d", d.LeftEdge(), root.RightEdge())
	}
}

func TestChildAtNegativeIndex(t *testing.T) {
	root := mustParseOne(t, "(A (B 1) (C 2) (D 3))")
	if lbl, _ := root.ChildAt(-1).Label(); lbl != "D" {
		t.Fatalf("ChildAt(-1) = %q, want D", lbl)
	}
	if lbl, _ := root.ChildAt(1).Label(); lbl != "B" {
		t.Fatalf("ChildAt(1) = %q, want B", lbl)
	}
	if root.ChildAt(5) != nil {
		t.Fatalf("ChildAt(5) should be nil")
	}
}

func TestSisterIndex(t *testing.T) {
	root := mustParseOne(t, "(A (B 1) (C 2))")
	if root.SisterIndex() != -1 {
		t.Fatalf("root sister index should be -1")
	}
	if root.Children()[1].SisterIndex() != 1 {
		t.Fatalf("C sister index should be 1")
	}
}
