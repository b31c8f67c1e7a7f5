package main

import (
	"fmt"
	"io"

	"github.com/tanloong/con-tregex/internal/treeql/engine"
)

// reportMatches runs pat against text and writes its output to out: -C
// prints only the match count; --show NAME... prints, for each listed name
// in the order given, the serialized nodes currently bound to it;
// otherwise every matched node is printed, one per line.
func reportMatches(pat *engine.Pattern, text string, out io.Writer, countOnly bool, names []string) error {
	matches, err := pat.FindAll(text)
	if err != nil {
		return err
	}

	if countOnly {
		fmt.Fprintln(out, len(matches))
		return nil
	}

	if len(names) > 0 {
		for _, name := range names {
			nodes, err := pat.GetNodes(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s:\n", name)
			for _, n := range nodes {
				fmt.Fprintf(out, "  %s\n", n.String())
			}
		}
		return nil
	}

	for _, n := range matches {
		fmt.Fprintln(out, n.String())
	}
	return nil
}
