package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanloong/con-tregex/internal/treeql/glossary"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <OP>",
		Short: "Print the glossary entry for a relation operator",
		Long:  "With no OP, lists every documented relation operator.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, line := range glossary.All() {
					fmt.Fprintln(out, line)
				}
				return nil
			}
			text, err := glossary.Explain(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  %s\n", args[0], text)
			return nil
		},
	}
}
