package catalog

import (
	"slices"
)

// Index answers read-only queries over a flattened entry set.
// It keeps its own copy of the entries, so it never changes after NewIndex.
type Index struct {
	entries []Entry
	// byID maps an id to the position of its first entry.
	byID map[string]int
}

// NewIndex builds an Index over entries.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries: slices.Clone(entries),
		byID:    make(map[string]int, len(entries)),
	}

	for i, e := range idx.entries {
		if _, seen := idx.byID[e.ID]; !seen {
			idx.byID[e.ID] = i
		}
	}

	return idx
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// All returns every entry in flattened order.
func (x *Index) All() []Entry {
	return slices.Clone(x.entries)
}

// Lookup returns the first entry with the given id.
func (x *Index) Lookup(id string) (Entry, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}

	return x.entries[i], true
}

// NameOf returns the name of the entry with the given id.
func (x *Index) NameOf(id string) (string, bool) {
	e, ok := x.Lookup(id)
	if !ok {
		return "", false
	}

	return e.Name, true
}

// Exists reports whether any entry has the given id.
func (x *Index) Exists(id string) bool {
	_, ok := x.byID[id]

	return ok
}

// ChildrenOf returns the entries whose parent is parentID, in flattened
// order. Unknown parents and childless genres both yield an empty result.
func (x *Index) ChildrenOf(parentID string) []Entry {
	var out []Entry

	if parentID == "" {
		return out
	}

	for _, e := range x.entries {
		if e.ParentID == parentID {
			out = append(out, e)
		}
	}

	return out
}

// TopLevel returns every genre entry in flattened order.
func (x *Index) TopLevel() []Entry {
	var out []Entry

	for _, e := range x.entries {
		if e.IsGenre() {
			out = append(out, e)
		}
	}

	return out
}

// Hierarchy regroups the entries into genres with their subgenres.
func (x *Index) Hierarchy() []Node {
	genres := x.TopLevel()
	nodes := make([]Node, 0, len(genres))

	for _, g := range genres {
		nodes = append(nodes, Node{
			Genre:     g,
			Subgenres: x.ChildrenOf(g.ID),
		})
	}

	return nodes
}

// IDs returns every id in flattened order.
func (x *Index) IDs() []string {
	ids := make([]string, 0, len(x.entries))
	for _, e := range x.entries {
		ids = append(ids, e.ID)
	}

	return ids
}
