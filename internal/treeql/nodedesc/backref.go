package nodedesc

import (
	"fmt"

	"github.com/tanloong/con-tregex/internal/treeql/tree"
)

// BackRef is the back-reference table's value type: the declaring
// description's predicates (for `~name` clones to read) plus the
// cumulative list of nodes bound under this name.
type BackRef struct {
	Name  string
	Desc  *Descriptions // predicate snapshot; clones copy only its leaves/flags
	Nodes []*tree.Node
}

// Table is the pattern-wide back-reference table: one BackRef per declared
// name, shared by every NodeDescriptions (and every `~name` clone) that
// writes or reads that name. It is reset between FindAll calls but
// persists across the `;`-joined top-level node-description list within
// one call.
type Table struct {
	order []string
	refs  map[string]*BackRef
}

// NewTable returns an empty back-reference table.
func NewTable() *Table {
	return &Table{refs: make(map[string]*BackRef)}
}

// Declare registers name against desc, reusing the existing BackRef if the
// name was already declared (by a sibling Or branch, or an earlier `;`
// segment) so that both writers accumulate into the same Nodes list.
// Callers are responsible for rejecting same-scope redeclaration before
// calling Declare (see parser.scope).
func (t *Table) Declare(name string, desc *Descriptions) *BackRef {
	if ref, ok := t.refs[name]; ok {
		return ref
	}
	ref := &BackRef{Name: name, Desc: desc}
	t.refs[name] = ref
	t.order = append(t.order, name)
	return ref
}

// Lookup returns the BackRef for name, used by `~name` clones and by
// Pattern.GetNodes.
func (t *Table) Lookup(name string) (*BackRef, bool) {
	ref, ok := t.refs[name]
	return ref, ok
}

// Names returns declared names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Reset empties every BackRef's node list, called at the start of each
// FindAll so no bindings leak across calls.
func (t *Table) Reset() {
	for _, ref := range t.refs {
		ref.Nodes = nil
	}
}

// snapshot records, for every declared name, how many nodes it currently
// holds, so a failed And or a Not can roll back exactly the writes it made.
func (t *Table) snapshot() map[string]int {
	snap := make(map[string]int, len(t.refs))
	for name, ref := range t.refs {
		snap[name] = len(ref.Nodes)
	}
	return snap
}

// restore truncates every BackRef back to its snapshotted length.
func (t *Table) restore(snap map[string]int) {
	for name, n := range snap {
		ref := t.refs[name]
		if n <= len(ref.Nodes) {
			ref.Nodes = ref.Nodes[:n]
		}
	}
}

// ErrUnknownBackRef is returned by Pattern.GetNodes for a name that was
// never declared in the pattern.
type ErrUnknownBackRef struct {
	Name string
}

func (e *ErrUnknownBackRef) Error() string {
	return fmt.Sprintf("no matched node named %q: was it declared with '=' in the pattern?", e.Name)
}

// Snapshot exposes Table.snapshot for the condition package's And/Not nodes.
func (t *Table) Snapshot() map[string]int { return t.snapshot() }

// Restore exposes Table.restore for the condition package's And/Not nodes.
func (t *Table) Restore(snap map[string]int) { t.restore(snap) }
