package domain

import (
	"sort"
	"strings"
)

// GlobalField is the key used for failures that are not tied to a single field.
const GlobalField = "_global"

// ValidationError collects every violated field of an input together with
// the reasons, keyed by field path (e.g. "manufacturer.contact.email").
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for a field.
func (e *ValidationError) Add(field, message string) {
	if field == "" {
		field = GlobalField
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge copies the failures of other into e, prefixing each field path.
func (e *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		for _, msg := range messages {
			e.Add(key, msg)
		}
	}
}

// HasErrors reports whether any failure was recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns nil when no failure was recorded, so callers can return it as an error.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
