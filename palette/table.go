// @focus: #model { table }
package palette

import (
	"maps"
	"slices"
	"strings"

	"github.com/lixenwraith/palette/colour"
)

// Table maps canonical hex strings to colour entries.
// A Table is read-only once returned by Load or Build; a reload produces a new Table.
type Table struct {
	entries map[string]colour.Entry
}

func newTable() *Table {
	return &Table{entries: make(map[string]colour.Entry)}
}

// Build folds entries into a table, merging the name sets of entries sharing a triple
func Build(entries ...colour.Entry) *Table {
	t := newTable()
	for _, e := range entries {
		t.merge(e)
	}
	return t
}

// merge is only used while the table is being built
func (t *Table) merge(e colour.Entry) {
	key := e.Hex()
	existing, ok := t.entries[key]
	if !ok {
		t.entries[key] = e
		return
	}
	for _, n := range e.Names() {
		existing = existing.WithName(n)
	}
	t.entries[key] = existing
}

// Get looks up an entry by its "#rrggbb" key; uppercase keys are accepted
func (t *Table) Get(hex string) (colour.Entry, bool) {
	if t == nil {
		return colour.Entry{}, false
	}
	e, ok := t.entries[strings.ToLower(hex)]
	return e, ok
}

// Len returns the number of distinct triples
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// NameCount returns the total number of names across all entries
func (t *Table) NameCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, e := range t.entries {
		n += len(e.Names())
	}
	return n
}

// Entries returns a fresh slice of all entries in ascending hex order
func (t *Table) Entries() []colour.Entry {
	if t == nil {
		return nil
	}
	keys := slices.Sorted(maps.Keys(t.entries))
	out := make([]colour.Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}
