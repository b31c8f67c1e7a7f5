// Package engine ties the lexer, parser, and node-description search
// together into the compiled Pattern API callers actually use: compile a
// pattern once, run it against any number of tree strings.
package engine

import (
	"github.com/tanloong/con-tregex/internal/treeql/headfinder"
	"github.com/tanloong/con-tregex/internal/treeql/lexer"
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/parser"
	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// Pattern is a compiled pattern: the ordered list of top-level node
// descriptions (one per ';'-joined segment) plus the back-reference table
// they share.
type Pattern struct {
	source string
	descs  []*nodedesc.Descriptions
	table  *nodedesc.Table
}

// Option configures Compile.
type Option func(*compileOptions)

type compileOptions struct {
	headFinder headfinder.HeadFinder
}

// WithHeadFinder overrides the default Rightmost head rule used to
// evaluate "<#"/">#"/"<<#"/">>#". Callers embedding a treebank's own
// rulebook should use this.
func WithHeadFinder(hf headfinder.HeadFinder) Option {
	return func(o *compileOptions) { o.headFinder = hf }
}

// Compile parses src into a reusable Pattern. It returns any non-fatal
// parser warnings (redundant "!!"/"@@") alongside the pattern, and a
// non-nil error only for a pattern that fails to parse at all.
func Compile(src string, opts ...Option) (*Pattern, []parser.Warning, error) {
	options := compileOptions{headFinder: headfinder.Rightmost{}}
	for _, opt := range opts {
		opt(&options)
	}

	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, nil, err
	}

	table := nodedesc.NewTable()
	p := parser.New(toks, table, options.headFinder)
	descs, err := p.ParseTop()
	if err != nil {
		return nil, nil, err
	}

	return &Pattern{source: src, descs: descs, table: table}, p.Warnings(), nil
}

// Source returns the pattern text Compile was given.
func (pat *Pattern) Source() string { return pat.source }

// FindAll runs the pattern against every tree parsed out of treeString,
// resetting the back-reference table first so each call starts clean,
// then searching every top-level node-description against every root in
// document order, in pattern-text order within each root. ';'-joined
// segments share the one back-reference table across the whole call.
func (pat *Pattern) FindAll(treeString string) ([]*tree.Node, error) {
	roots, err := tree.ParseForest(treeString)
	if err != nil {
		return nil, err
	}
	pat.table.Reset()

	var out []*tree.Node
	for _, root := range roots {
		for _, d := range pat.descs {
			out = append(out, d.SearchTree(root)...)
		}
	}
	return out, nil
}

// GetNodes returns every node bound to name by the most recent FindAll
// call, in the order they were matched.
func (pat *Pattern) GetNodes(name string) ([]*tree.Node, error) {
	ref, ok := pat.table.Lookup(name)
	if !ok {
		return nil, &nodedesc.ErrUnknownBackRef{Name: name}
	}
	return ref.Nodes, nil
}

// Names returns every name declared with "=ID" in the pattern, in
// declaration order.
func (pat *Pattern) Names() []string {
	return pat.table.Names()
}
