package domain

import "sort"

// ChangeTracker records which aggregate fields were modified since load,
// so repositories only write the columns that actually changed.
type ChangeTracker struct {
	dirty map[string]struct{}
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty flags a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = struct{}{}
}

// Dirty reports whether a field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// Clear resets the tracker.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}

// HasChanges returns true if any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified field names in lexical order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for field := range ct.dirty {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
