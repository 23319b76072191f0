package models

import "sort"

// GroupedTable maps a state key to the records filed under it. Keys are
// kept in ascending order; records within a group keep insertion order
// until something sorts them.
type GroupedTable[T Record[T]] struct {
	keys   []string
	groups map[string][]T
}

// NewGroupedTable returns an empty table.
func NewGroupedTable[T Record[T]]() *GroupedTable[T] {
	return &GroupedTable[T]{groups: make(map[string][]T)}
}

// Add appends r to the group named by r.StateKey(), creating the group on
// first use.
func (t *GroupedTable[T]) Add(r T) {
	key := r.StateKey()
	if _, ok := t.groups[key]; !ok {
		i := sort.SearchStrings(t.keys, key)
		t.keys = append(t.keys, "")
		copy(t.keys[i+1:], t.keys[i:])
		t.keys[i] = key
	}
	t.groups[key] = append(t.groups[key], r)
}

// Keys returns the state keys in ascending order. The slice must not be
// modified.
func (t *GroupedTable[T]) Keys() []string { return t.keys }

// Group returns the records under key. The returned slice aliases the
// table's storage, so reordering it reorders the table.
func (t *GroupedTable[T]) Group(key string) ([]T, bool) {
	g, ok := t.groups[key]
	return g, ok
}

// Len reports the number of groups.
func (t *GroupedTable[T]) Len() int { return len(t.keys) }

// Size reports the total number of records across all groups.
func (t *GroupedTable[T]) Size() int {
	n := 0
	for _, g := range t.groups {
		n += len(g)
	}
	return n
}

// Clone returns a table whose groups are independent copies, so mutating
// one table is never visible through the other.
func (t *GroupedTable[T]) Clone() *GroupedTable[T] {
	c := &GroupedTable[T]{
		keys:   append([]string(nil), t.keys...),
		groups: make(map[string][]T, len(t.groups)),
	}
	for k, g := range t.groups {
		c.groups[k] = append(make([]T, 0, len(g)), g...)
	}
	return c
}
