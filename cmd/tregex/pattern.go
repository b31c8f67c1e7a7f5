package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/tanloong/con-tregex/internal/treeql/engine"
)

func newPatternCmd() *cobra.Command {
	var filter bool
	var countOnly bool
	var names []string

	cmd := &cobra.Command{
		Use:   "pattern <P> [FILES...]",
		Short: "Run a pattern over tree input and print matches",
		Long: "Compiles P and runs it against tree text read from FILES (glob-expanded)\n" +
			"or, if no FILES are given, from standard input.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPattern(cmd, args[0], args[1:], filter, countOnly, names)
		},
	}

	cmd.Flags().BoolVar(&filter, "filter", false, "read input one whitespace-delimited forest per line")
	cmd.Flags().BoolVarP(&countOnly, "count", "C", false, "print only the match count per input, not the matches")
	// No "-h" shorthand here: Cobra reserves -h/--help on every command, and
	// handing that shorthand to a different flag only buys a noisy stderr
	// warning when Cobra's own help flag loses the registration race.
	cmd.Flags().StringSliceVar(&names, "show", nil, "print nodes bound to these back-reference names (repeatable) instead of the matches")

	return cmd
}

func runPattern(cmd *cobra.Command, patternSrc string, fileArgs []string, filter, countOnly bool, names []string) error {
	pat, warnings, err := engine.Compile(patternSrc)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", patternSrc, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning at position %d: %s\n", w.Pos, w.Message)
	}

	out := cmd.OutOrStdout()

	if filter {
		return runFilterMode(pat, cmd.InOrStdin(), out, countOnly, names)
	}

	inputs, paths, err := readInputs(cmd.InOrStdin(), fileArgs)
	if err != nil {
		return err
	}
	for i, text := range inputs {
		// Per-file headers only make sense once there is more than one
		// file to tell apart.
		if len(paths) > 1 {
			fmt.Fprintf(out, "# %s\n", paths[i])
		}
		if err := reportMatches(pat, text, out, countOnly, names); err != nil {
			return err
		}
	}
	return nil
}

// runFilterMode reads in one whitespace-delimited forest per line,
// applying the pattern fresh to each line.
func runFilterMode(pat *engine.Pattern, in io.Reader, out io.Writer, countOnly bool, names []string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if err := reportMatches(pat, line, out, countOnly, names); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// readInputs glob-expands fileArgs with doublestar and reads each matched
// file; with no fileArgs it reads the whole of in as one input. The returned
// paths slice is empty (not errored) in the reader case, since there is
// nothing to label a "# path" header with.
func readInputs(in io.Reader, fileArgs []string) (texts []string, paths []string, err error) {
	if len(fileArgs) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, nil, err
		}
		return []string{string(data)}, nil, nil
	}

	for _, arg := range fileArgs {
		matches, globErr := doublestar.FilepathGlob(arg)
		if globErr != nil {
			return nil, nil, fmt.Errorf("expanding %q: %w", arg, globErr)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(arg); statErr == nil {
				matches = []string{arg}
			} else {
				return nil, nil, fmt.Errorf("no such file as %q", arg)
			}
		}
		paths = append(paths, matches...)
	}

	texts = make([]string, 0, len(paths))
	for _, p := range paths {
		data, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil, nil, fmt.Errorf("reading %q: %w", p, readErr)
		}
		texts = append(texts, string(data))
	}
	return texts, paths, nil
}
