package core

import "github.com/google/uuid"

// NewID returns a fresh note identifier in the canonical 36-character
// UUID v4 textual layout.
func NewID() string {
	return uuid.NewString()
}
