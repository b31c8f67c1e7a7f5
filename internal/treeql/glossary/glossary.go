// Package glossary holds the human-readable relation catalog: a static
// table mapping each relation symbol to a one-line explanation, plus a
// fuzzy "did you mean" suggestion for an unrecognized operator rather than
// a bare lookup failure.
package glossary

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// entries is the closed relation catalog. Symbols that share a
// candidate-generator family (e.g. "<-"/"<`") are listed once under their
// primary spelling with the alias noted in the text.
var entries = []struct {
	symbol string
	text   string
}{
	{"<", "A is the parent of (immediately dominates) B."},
	{">", "A is a child of (immediately dominated by) B."},
	{"<<", "A dominates B (B is a proper descendant of A)."},
	{">>", "A is dominated by B (A is a proper descendant of B)."},
	{"<:", "A has only one child, B."},
	{">:", "A is the only child of B."},
	{"<,", "B is the first child of A."},
	{">,", "A is the first child of B."},
	{"<-", "B is the last child of A (alias: <`)."},
	{">-", "A is the last child of B (alias: >`)."},
	{"<<,", "B is the leftmost descendant of A (first-child chain)."},
	{">>,", "A is the leftmost descendant of B."},
	{"<<-", "B is the rightmost descendant of A (alias: <<`)."},
	{">>-", "A is the rightmost descendant of B (alias: >>`)."},
	{"$", "A is a sister of (shares a parent with, and is not identical to) B."},
	{"$..", "A is a left sister of B, not necessarily immediately (alias: $++)."},
	{"$,,", "A is a right sister of B, not necessarily immediately (alias: $--)."},
	{"$.", "A is the immediate left sister of B (alias: $+)."},
	{"$,", "A is the immediate right sister of B (alias: $-)."},
	{"==", "A and B are the same node."},
	{"<=", "A and B are the same node, or B is a child of A."},
	{"<<:", "A dominates B via an unbroken chain of single-child nodes."},
	{">>:", "A is dominated by B via an unbroken chain of single-child nodes."},
	{"..", "A precedes B (A's span ends at or before B's span starts)."},
	{",,", "A follows B (A's span starts at or after B's span ends)."},
	{".", "A immediately precedes B (no leaves fall between them)."},
	{",", "A immediately follows B."},
	{":", "No structural constraint; B ranges over every node in A's tree."},
	{"<<<", "B is the i-th leaf of A's subtree, and A is an ancestor of it (\"<<< i\")."},
	{"<<<-", "B is the i-th-from-last leaf of A's subtree (\"<<<- i\")."},
	{"<#", "B is A's head child, per the configured HeadFinder."},
	{">#", "A is B's head child."},
	{"<<#", "B is in A's head chain (transitively, the head of the head of ...)."},
	{">>#", "A is in B's head chain."},
	{"<+", "A dominates B via an unbroken chain of nodes matching C (\"<+(C)\")."},
	{">+", "A is dominated by B via an unbroken chain of nodes matching C (\">+(C)\")."},
	{".+", "A immediately precedes B via an unbroken chain of nodes matching C (\".+(C)\")."},
	{",+", "A immediately follows B via an unbroken chain of nodes matching C (\",+(C)\")."},
	{"<...", "A's children match the given ordered list exactly, one-for-one."},
}

// ErrUnknownOperator is returned by Explain for a symbol not in the closed
// catalog. If a close match exists in the catalog, Suggestion names it.
type ErrUnknownOperator struct {
	Operator   string
	Suggestion string
}

func (e *ErrUnknownOperator) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown relation operator %q; did you mean %q?", e.Operator, e.Suggestion)
	}
	return fmt.Sprintf("unknown relation operator %q", e.Operator)
}

// Explain returns the glossary entry for op, or an ErrUnknownOperator
// (carrying a best-effort suggestion) if op is not one of the closed
// catalog's symbols.
func Explain(op string) (string, error) {
	for _, e := range entries {
		if e.symbol == op {
			return e.text, nil
		}
	}
	return "", &ErrUnknownOperator{Operator: op, Suggestion: closestSymbol(op)}
}

// Symbols returns every documented symbol, in catalog order, for CLI
// tab-completion or a full listing.
func Symbols() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.symbol
	}
	return out
}

// closestSymbol finds the catalog symbol with the highest go-difflib
// similarity ratio to op, mirroring Python's difflib.get_close_matches; it
// returns "" if nothing clears a modest similarity floor.
func closestSymbol(op string) string {
	const cutoff = 0.4
	best := ""
	bestRatio := cutoff
	for _, e := range entries {
		ratio := difflib.NewMatcher(splitChars(op), splitChars(e.symbol)).Ratio()
		if ratio > bestRatio {
			bestRatio = ratio
			best = e.symbol
		}
	}
	return best
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// All returns every symbol paired with its explanation text, in catalog
// declaration order (not alphabetical), for a full glossary dump.
func All() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("%-8s %s", e.symbol, e.text)
	}
	return out
}
