package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

func newPprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pprint <TREE>",
		Short: "Pretty-print an S-expression tree",
		Long:  "With no TREE argument (or TREE of \"-\"), reads tree text from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 0 || args[0] == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(data)
			} else {
				text = args[0]
			}

			roots, err := tree.ParseForest(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, root := range roots {
				writePretty(out, root, 0)
			}
			return nil
		},
	}
}

// writePretty renders n as one line per node, indented two spaces per
// depth level; a preterminal's leaf child is kept on the same line as its
// tag, the way most treebank pretty-printers render part-of-speech leaves.
func writePretty(out io.Writer, n *tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	label, _ := n.Label()

	if n.IsPreterminal() {
		leafLabel, _ := n.FirstChild().Label()
		fmt.Fprintf(out, "%s(%s %s)\n", indent, label, leafLabel)
		return
	}
	if n.IsLeaf() {
		fmt.Fprintf(out, "%s%s\n", indent, label)
		return
	}

	fmt.Fprintf(out, "%s(%s\n", indent, label)
	for _, c := range n.Children() {
		writePretty(out, c, depth+1)
	}
	fmt.Fprintf(out, "%s)\n", indent)
}
