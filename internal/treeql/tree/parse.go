package tree

import (
	"strings"
)

// ParseForest reads zero or more whitespace-separated S-expression trees
// from s: '(' opens a node, the following atom (unless another '(') is its
// label, ')' closes it. Atoms encountered
// outside any open paren are ignored, as are empty "( )" groups. "-LRB-"
// and "-RRB-" atoms decode to literal parentheses. A tree whose root has no
// label and exactly one child has that wrapper stripped.
func ParseForest(s string) ([]*Node, error) {
	toks := tokenize(s)
	var roots []*Node
	var stack []*Node
	var current *Node

	i := 0
	for i < len(toks) {
		tok := toks[i]
		switch tok {
		case lrb:
			// "( )" groups with nothing inside are skipped outright.
			if i+1 < len(toks) && toks[i+1] == rrb {
				i += 2
				continue
			}
			var label string
			hasLabel := false
			if i+1 < len(toks) && toks[i+1] != lrb {
				label = toks[i+1]
				hasLabel = true
				i++
			}
			n := newNode(normalize(label), hasLabel)
			if current == nil {
				stack = append(stack, n)
			} else {
				current.AddChild(n)
				stack = append(stack, current)
			}
			current = n
		case rrb:
			if len(stack) == 0 {
				return roots, &ErrMalformed{Reason: "unmatched ')'"}
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root := removeExtraLevel(current)
				computeEdges(root, 0)
				roots = append(roots, root)
				current = nil
			}
		default:
			if current != nil {
				current.AddChild(newNode(normalize(tok), true))
			}
		}
		i++
	}

	if current != nil {
		return roots, &ErrMalformed{Reason: "unclosed '(' (incomplete tree)"}
	}
	return roots, nil
}

// removeExtraLevel strips anonymous single-child wrappers such as the
// "((S ...))" shape some treebanks emit.
func removeExtraLevel(root *Node) *Node {
	for !root.hasLabel && len(root.children) == 1 {
		root = root.children[0]
		root.parent = nil
	}
	return root
}

// tokenize splits tree text into '(' / ')' and runs of any other
// non-whitespace characters.
func tokenize(s string) []string {
	var toks []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			toks = append(toks, buf.String())
			buf.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return toks
}
