// Command tregex is the CLI front end over the pattern engine: three
// subcommands (pattern, explain, pprint) under one Cobra root. It only
// ever talks to the engine through Compile/FindAll/GetNodes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tregex",
		Short: "Search constituency parse trees with a Tregex-style pattern language",
	}

	root.AddCommand(newPatternCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newPprintCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
