package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func execCmd(t *testing.T, cmd *cobra.Command, stdin string, args []string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return out.String()
}

func TestPatternCommandMatchesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/tree.txt"
	if err := os.WriteFile(path, []byte("(NP (NN dog))"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := execCmd(t, newPatternCmd(), "", []string{"NP < NN", path})
	if !strings.Contains(got, "(NP (NN dog))") {
		t.Fatalf("got %q, want it to contain the matched NP", got)
	}
}

func TestPatternCommandCountOnly(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/tree.txt"
	if err := os.WriteFile(path, []byte("(ROOT (NP (NN a)) (NP (NN b)))"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := execCmd(t, newPatternCmd(), "", []string{"-C", "NP < NN", path})
	if strings.TrimSpace(got) != "2" {
		t.Fatalf("got %q, want count 2", got)
	}
}

func TestPatternCommandShowsNamedBackRef(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/tree.txt"
	if err := os.WriteFile(path, []byte("(NP (NN dog))"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := execCmd(t, newPatternCmd(), "", []string{"--show", "n", "NP < NN=n", path})
	if !strings.Contains(got, "n:") || !strings.Contains(got, "NN dog") {
		t.Fatalf("got %q, want the named NN back-reference dumped", got)
	}
}

func TestPatternCommandFilterModePerLine(t *testing.T) {
	stdin := "(NP (NN dog))\n(VP (VB run))\n(NP (NN cat))\n"
	got := execCmd(t, newPatternCmd(), stdin, []string{"--filter", "-C", "NP < NN"})
	if strings.TrimSpace(got) != "1\n0\n1" {
		t.Fatalf("got %q, want one count per input line", got)
	}
}

func TestExplainKnownAndUnknown(t *testing.T) {
	got := execCmd(t, newExplainCmd(), "", []string{"<<"})
	if !strings.Contains(got, "dominates") {
		t.Fatalf("got %q, want an explanation mentioning dominates", got)
	}

	cmd := newExplainCmd()
	cmd.SetArgs([]string{"<<<#bogus"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown operator")
	}
}

func TestPprintFromArgument(t *testing.T) {
	got := execCmd(t, newPprintCmd(), "", []string{"(NP (NN dog))"})
	if !strings.Contains(got, "(NP") || !strings.Contains(got, "NN dog") {
		t.Fatalf("got %q, want a pretty-printed tree", got)
	}
}
