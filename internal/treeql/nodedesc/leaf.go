// Package nodedesc implements the node-description algebra: atomic
// predicates on a single node, composed by disjunction, negation, and
// basic-category projection, optionally named for back-reference and
// optionally carrying a nested condition.
package nodedesc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// Op is the atomic predicate kind a Leaf carries.
type Op int

const (
	// OpID matches a node's label (or basic category) against a literal
	// identifier.
	OpID Op = iota
	// OpRegex matches against a compiled regular expression.
	OpRegex
	// OpBlank ("__") matches every node.
	OpBlank
	// OpRoot ("_ROOT_") matches nodes with no parent.
	OpRoot
)

// Leaf is one disjunct of a NodeDescriptions: an (operator, value) pair.
type Leaf struct {
	Op    Op
	Value string
	re    *regexp.Regexp
}

// NewID builds an exact-label/basic-category disjunct.
func NewID(value string) Leaf {
	return Leaf{Op: OpID, Value: value}
}

// NewBlank builds the wildcard disjunct.
func NewBlank() Leaf {
	return Leaf{Op: OpBlank, Value: "__"}
}

// NewRoot builds the root-marker disjunct.
func NewRoot() Leaf {
	return Leaf{Op: OpRoot, Value: "_ROOT_"}
}

// NewRegex parses a "/pattern/flags" token (flags are any subset of "ix")
// into a regex disjunct. BadRegexFlag is returned for any other flag
// character. The flags are passed to Go's regexp as inline flags; Go's
// regexp has no verbose mode, so a token carrying 'x' fails with an
// "invalid regex" error rather than compiling with whitespace ignored.
func NewRegex(token string) (Leaf, error) {
	if len(token) < 2 || token[0] != '/' {
		return Leaf{}, fmt.Errorf("malformed regex literal %q", token)
	}
	end := strings.LastIndexByte(token, '/')
	if end <= 0 {
		return Leaf{}, fmt.Errorf("malformed regex literal %q", token)
	}
	pattern := token[1:end]
	flags := token[end+1:]

	var goFlags string
	seen := map[byte]bool{}
	for i := 0; i < len(flags); i++ {
		f := flags[i]
		if f != 'i' && f != 'x' {
			return Leaf{}, &BadRegexFlagError{Flag: f}
		}
		if !seen[f] {
			seen[f] = true
			goFlags += string(f)
		}
	}
	if goFlags != "" {
		pattern = "(?" + goFlags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Leaf{}, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return Leaf{Op: OpRegex, Value: token, re: re}, nil
}

// BadRegexFlagError reports a regex operator flag other than 'i'/'x'.
type BadRegexFlagError struct {
	Flag byte
}

func (e *BadRegexFlagError) Error() string {
	return fmt.Sprintf("unsupported regexp flag %q", string(e.Flag))
}

// rawMatches tests the leaf's predicate against n, ignoring any enclosing
// negation. useBasicCat selects whether the label or the basic category is
// compared.
func (l Leaf) rawMatches(n *tree.Node, useBasicCat bool) bool {
	switch l.Op {
	case OpBlank:
		return true
	case OpRoot:
		return n.IsRoot()
	case OpID, OpRegex:
		var value string
		var ok bool
		if useBasicCat {
			value, ok = n.BasicCategory()
		} else {
			value, ok = n.Label()
		}
		if !ok {
			return false
		}
		if l.Op == OpID {
			return value == l.Value
		}
		return l.re.MatchString(value)
	default:
		return false
	}
}

func (l Leaf) String() string {
	return l.Value
}
