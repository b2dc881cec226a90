package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for any aggregate.
func NewID() string {
	return uuid.New().String()
}

// ValidateID checks that id is a well-formed identifier. It does not check existence.
func ValidateID(id string) error {
	// only the canonical 36-char form is accepted; it is the stored form
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
