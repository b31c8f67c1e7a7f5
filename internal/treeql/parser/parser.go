// Package parser implements the pattern grammar as a hand-rolled
// recursive-descent parser. It consumes lexer.Token and builds a
// node-description/condition tree sharing one nodedesc.Table.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanloong/con-tregex/internal/treeql/condition"
	"github.com/tanloong/con-tregex/internal/treeql/headfinder"
	"github.com/tanloong/con-tregex/internal/treeql/lexer"
	"github.com/tanloong/con-tregex/internal/treeql/nodedesc"
	"github.com/tanloong/con-tregex/internal/treeql/relation"
)

// ErrSyntax reports a malformed pattern, with the offending token's
// position for the CLI to point at.
type ErrSyntax struct {
	Pos     int
	Message string
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Message)
}

// ErrNamedUnderNegation reports "B=foo" appearing in the scope of a
// leading '!': a negated node description never actually matches the node
// it's tested against, so naming one is meaningless and is rejected.
type ErrNamedUnderNegation struct {
	Name string
}

func (e *ErrNamedUnderNegation) Error() string {
	return fmt.Sprintf("no named tregex nodes allowed in the scope of negation: %q", e.Name)
}

// ErrUndeclaredLink reports "~name" referencing a name with no prior "=name"
// declaration in the pattern.
type ErrUndeclaredLink struct {
	Name string
}

func (e *ErrUndeclaredLink) Error() string {
	return fmt.Sprintf("variable %q was referenced before it was declared", e.Name)
}

// ErrDuplicateName reports "=name" reused within the same conjunctive
// scope (e.g. "A=x < B=x"), as opposed to across "||" branches, where
// reuse is how a name accumulates witnesses from both branches.
type ErrDuplicateName struct {
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("variable %q was used twice as a label in the same scope", e.Name)
}

// Warning is a non-fatal parse-time note (redundant "!!" or "@@") the
// caller may surface without failing compilation; the engine collects
// warnings rather than printing them, leaving presentation to the CLI.
type Warning struct {
	Pos     int
	Message string
}

// Parser holds the token stream and the shared state every production
// needs: the pattern-wide back-reference table and the head-relation
// table bound to whatever HeadFinder the caller configured.
type Parser struct {
	toks      []lexer.Token
	pos       int
	table     *nodedesc.Table
	headTable map[string]relation.Relation
	scope     map[string]bool
	negDepth  int
	warnings  []Warning
}

// New builds a Parser over toks, sharing table (so callers can inspect
// back-references after parsing) and binding the head-projection relations
// to hf.
func New(toks []lexer.Token, table *nodedesc.Table, hf headfinder.HeadFinder) *Parser {
	return &Parser{
		toks:      toks,
		table:     table,
		headTable: relation.HeadTable(hf),
		scope:     make(map[string]bool),
	}
}

// Warnings returns every non-fatal note collected during ParseTop.
func (p *Parser) Warnings() []Warning { return p.warnings }

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Kind: lexer.EOF, Pos: p.endPos()}
	}
	return p.toks[p.pos]
}

func (p *Parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	last := p.toks[len(p.toks)-1]
	return last.Pos + len(last.Text)
}

func (p *Parser) next() lexer.Token {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("expected %s, got %s %q", kind, tok.Kind, tok.Text)}
	}
	return p.next(), nil
}

// ParseTop parses the whole pattern: one or more ';'-separated (or simply
// juxtaposed) top-level node-descriptions. Every entry shares p's
// back-reference table across the whole call.
func (p *Parser) ParseTop() ([]*nodedesc.Descriptions, error) {
	var out []*nodedesc.Descriptions
	for p.peek().Kind != lexer.EOF {
		// Each ';'-joined segment is an independent pattern application, not
		// a conjunction of the same match attempt, so a name may be
		// redeclared in a later segment the same way it may across "||"
		// branches. Only same-segment reuse is a duplicate.
		p.scope = make(map[string]bool)
		d, err := p.parseFullNodeDescriptions()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		if p.peek().Kind == lexer.Semi {
			p.next()
		}
	}
	if len(out) == 0 {
		return nil, &ErrSyntax{Pos: 0, Message: "empty pattern"}
	}
	return out, nil
}

// parseFullNodeDescriptions parses one node_descriptions production in
// full: the base predicate, an optional attached condition, and an
// optional "=ID" naming suffix.
func (p *Parser) parseFullNodeDescriptions() (*nodedesc.Descriptions, error) {
	d, err := p.parseNodeDescriptionsBase()
	if err != nil {
		return nil, err
	}

	// A condition and a "=name" suffix may appear in either order (e.g.
	// "B=foo < C" and "B (< C)=foo" both name B). Keep applying whichever is
	// next until neither progresses.
	for {
		if p.isConditionStart(p.peek()) && d.Condition == nil {
			cond, err := p.parseOrConditions()
			if err != nil {
				return nil, err
			}
			d.Condition = cond
			continue
		}
		if p.peek().Kind == lexer.Equals && d.Name == "" {
			p.next()
			idTok, err := p.expect(lexer.ID)
			if err != nil {
				return nil, err
			}
			name := idTok.Text
			if d.Negated || p.negDepth > 0 {
				return nil, &ErrNamedUnderNegation{Name: name}
			}
			if p.scope[name] {
				return nil, &ErrDuplicateName{Name: name}
			}
			p.scope[name] = true
			ref := p.table.Declare(name, d)
			d.Name = name
			d.Ref = ref
			continue
		}
		break
	}

	return d, nil
}

// parseNodeDescriptionsBase handles '!'/'@' prefixes, a "~name" link, a
// parenthesized node_descriptions, or a disjunction of node_description
// leaves joined by '|'.
func (p *Parser) parseNodeDescriptionsBase() (*nodedesc.Descriptions, error) {
	switch p.peek().Kind {
	case lexer.Bang:
		p.next()
		d, err := p.parseNodeDescriptionsBase()
		if err != nil {
			return nil, err
		}
		if !d.ToggleNegated() {
			p.warn(p.peek().Pos, "repeated '!'")
		}
		return d, nil
	case lexer.At:
		p.next()
		d, err := p.parseNodeDescriptionsBase()
		if err != nil {
			return nil, err
		}
		if !d.EnableBasicCat() {
			p.warn(p.peek().Pos, "repeated '@'")
		}
		return d, nil
	case lexer.Tilde:
		p.next()
		idTok, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		ref, ok := p.table.Lookup(idTok.Text)
		if !ok {
			return nil, &ErrUndeclaredLink{Name: idTok.Text}
		}
		return ref.Desc.Clone(), nil
	case lexer.LParen:
		p.next()
		d, err := p.parseFullNodeDescriptionsInner()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return d, nil
	}

	leaf, err := p.parseNodeDescriptionLeaf()
	if err != nil {
		return nil, err
	}
	d := nodedesc.New(leaf)
	for p.peek().Kind == lexer.OrNode {
		p.next()
		next, err := p.parseNodeDescriptionLeaf()
		if err != nil {
			return nil, err
		}
		d.AddLeaf(next)
	}
	return d, nil
}

// parseFullNodeDescriptionsInner parses a node_descriptions appearing
// inside parens, allowing conditions to attach at that level too (so
// "(A < B)=foo" and "(A < B | C)" both parse), but does not itself consume
// a trailing '=ID'; that is left to the enclosing parseFullNodeDescriptions
// so naming always binds to the outermost description.
func (p *Parser) parseFullNodeDescriptionsInner() (*nodedesc.Descriptions, error) {
	d, err := p.parseNodeDescriptionsBase()
	if err != nil {
		return nil, err
	}
	if p.isConditionStart(p.peek()) {
		cond, err := p.parseOrConditions()
		if err != nil {
			return nil, err
		}
		d.Condition = cond
	}
	return d, nil
}

// parseNodeDescriptionLeaf parses one atomic node_description: ID, REGEX,
// BLANK, ROOT, or a parenthesized one of those.
func (p *Parser) parseNodeDescriptionLeaf() (nodedesc.Leaf, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.ID:
		p.next()
		return nodedesc.NewID(tok.Text), nil
	case lexer.Regex:
		p.next()
		return nodedesc.NewRegex(tok.Text)
	case lexer.Blank:
		p.next()
		return nodedesc.NewBlank(), nil
	case lexer.Root:
		p.next()
		return nodedesc.NewRoot(), nil
	case lexer.LParen:
		p.next()
		leaf, err := p.parseNodeDescriptionLeaf()
		if err != nil {
			return nodedesc.Leaf{}, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nodedesc.Leaf{}, err
		}
		return leaf, nil
	}
	return nodedesc.Leaf{}, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("expected a node description, got %s %q", tok.Kind, tok.Text)}
}

func (p *Parser) isConditionStart(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.Bang, lexer.Question, lexer.Amp, lexer.LParen, lexer.LBracket,
		lexer.RELATION, lexer.RELWithStrArg, lexer.MultiRelation:
		return true
	}
	return false
}

func (p *Parser) warn(pos int, msg string) {
	p.warnings = append(p.warnings, Warning{Pos: pos, Message: msg})
}

// parseAndConditions parses one or more juxtaposed conditions, ANDing them
// together.
func (p *Parser) parseAndConditions() (condition.Node, error) {
	first, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	conds := []condition.Node{first}
	for p.isConditionStart(p.peek()) {
		next, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		conds = append(conds, next)
	}
	if len(conds) == 1 {
		return conds[0], nil
	}
	return condition.NewAnd(p.table, conds...), nil
}

// parseOrConditions parses one or more and-condition groups separated by
// OR_REL ("||").
func (p *Parser) parseOrConditions() (condition.Node, error) {
	outer := p.snapshotScope()
	first, err := p.parseAndConditions()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != lexer.OrRel {
		return first, nil
	}
	branches := []condition.Node{first}
	for p.peek().Kind == lexer.OrRel {
		p.next()
		p.restoreScope(outer)
		next, err := p.parseAndConditions()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	return condition.NewOr(branches...), nil
}

func (p *Parser) snapshotScope() map[string]bool {
	snap := make(map[string]bool, len(p.scope))
	for k, v := range p.scope {
		snap[k] = v
	}
	return snap
}

func (p *Parser) restoreScope(snap map[string]bool) {
	p.scope = snap
}

// parseCondition parses a single condition production: negation,
// optionality, the '&' no-op conjunction marker, a parenthesized/bracketed
// and/or-conditions group, a relation leaf, or a MULTI_RELATION expansion.
func (p *Parser) parseCondition() (condition.Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.Bang:
		p.next()
		// A name declared anywhere under a negated condition would never
		// actually bind (Not discards its child's writes), so "=ID" is
		// rejected for the whole subtree, however deeply nested.
		p.negDepth++
		child, err := p.parseConditionOrMultiRelation()
		p.negDepth--
		if err != nil {
			return nil, err
		}
		return condition.NewNot(p.table, child), nil
	case lexer.Question:
		p.next()
		child, err := p.parseConditionOrMultiRelation()
		if err != nil {
			return nil, err
		}
		return condition.NewOpt(child), nil
	case lexer.Amp:
		p.next()
		return p.parseCondition()
	case lexer.LParen:
		p.next()
		inner, err := p.parseOrConditions()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBracket:
		p.next()
		inner, err := p.parseOrConditions()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBracket); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.MultiRelation:
		return p.parseMultiRelation()
	case lexer.RELATION, lexer.RELWithStrArg:
		rel, err := p.parseRelationData()
		if err != nil {
			return nil, err
		}
		desc, err := p.parseFullNodeDescriptions()
		if err != nil {
			return nil, err
		}
		return condition.NewLeaf(rel, desc), nil
	}
	return nil, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("expected a condition, got %s %q", tok.Kind, tok.Text)}
}

// parseConditionOrMultiRelation lets '!'/'?' wrap either a plain condition
// or a MULTI_RELATION expansion.
func (p *Parser) parseConditionOrMultiRelation() (condition.Node, error) {
	if p.peek().Kind == lexer.MultiRelation {
		return p.parseMultiRelation()
	}
	return p.parseCondition()
}

// parseRelationData parses a RELATION (optionally with a trailing NUMBER)
// or a REL_W_STR_ARG "(" node_descriptions ")".
func (p *Parser) parseRelationData() (relation.Relation, error) {
	tok := p.next()

	if tok.Kind == lexer.RELWithStrArg {
		if _, err := p.expect(lexer.LParen); err != nil {
			return nil, err
		}
		arg, err := p.parseFullNodeDescriptions()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		switch tok.Text {
		case "<+":
			return relation.UnbrokenDominates(arg), nil
		case ">+":
			return relation.UnbrokenDominatedBy(arg), nil
		case ".+":
			return relation.UnbrokenPrecedes(arg), nil
		case ",+":
			return relation.UnbrokenFollows(arg), nil
		}
		return nil, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("unknown chain relation %q", tok.Text)}
	}

	symbol := tok.Text
	if p.peek().Kind == lexer.Number {
		numTok := p.next()
		n, err := strconv.Atoi(numTok.Text)
		if err != nil {
			return nil, &ErrSyntax{Pos: numTok.Pos, Message: "malformed number"}
		}
		if n == 0 {
			return nil, &ErrSyntax{Pos: numTok.Pos, Message: "child index 0 is not valid (indices are 1-based; use a negative index to count from the end)"}
		}
		build, ok := relation.NumArgTable[symbol]
		if !ok {
			return nil, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("relation %q does not take a numeric argument", symbol)}
		}
		if strings.HasSuffix(symbol, "-") {
			n = -n
		}
		return build(n), nil
	}

	if rel, ok := relation.Table[symbol]; ok {
		return rel, nil
	}
	if rel, ok := p.headTable[symbol]; ok {
		return rel, nil
	}
	return nil, &ErrSyntax{Pos: tok.Pos, Message: fmt.Sprintf("unknown relation %q", symbol)}
}

// parseMultiRelation parses "<...{ d1 ; d2 ; ... }": it desugars into an
// And of "has ith child matching d_i" for each listed description, plus a
// final "not has an (n+1)th child" so the parent's children match the list
// exactly, in order, with no extras.
func (p *Parser) parseMultiRelation() (condition.Node, error) {
	p.next() // consume MULTI_RELATION
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	var descs []*nodedesc.Descriptions
	for {
		d, err := p.parseFullNodeDescriptions()
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
		if p.peek().Kind == lexer.Semi {
			p.next()
			continue
		}
		break
	}

	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	conds := make([]condition.Node, 0, len(descs)+1)
	for i, d := range descs {
		conds = append(conds, condition.NewLeaf(relation.HasIthChild(i+1), d))
	}
	blank := nodedesc.New(nodedesc.NewBlank())
	tail := condition.NewLeaf(relation.HasIthChild(len(descs)+1), blank)
	conds = append(conds, condition.NewNot(p.table, tail))

	return condition.NewAnd(p.table, conds...), nil
}
