// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LinkTable maps original reference paths to their first-seen entry,
// remembering insertion order so that copies and listings are deterministic.
type LinkTable struct {
	order   []string
	entries map[string]LinkEntry
}

// NewLinkTable returns an empty table.
func NewLinkTable() *LinkTable {
	return &LinkTable{entries: make(map[string]LinkEntry)}
}

// Add records entry under path unless path is already present. It reports
// whether the entry was stored.
func (t *LinkTable) Add(path string, entry LinkEntry) bool {
	if _, ok := t.entries[path]; ok {
		return false
	}
	t.order = append(t.order, path)
	t.entries[path] = entry
	return true
}

// Get returns the entry for path.
func (t *LinkTable) Get(path string) (LinkEntry, bool) {
	e, ok := t.entries[path]
	return e, ok
}

// Paths returns reference paths in first-seen order.
func (t *LinkTable) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of unique paths.
func (t *LinkTable) Len() int {
	return len(t.order)
}
