package core

import "errors"

// Storage is the persistent key-value substrate the store treats as its
// durability layer: string keys, string values, synchronous semantics.
// Adhering to this interface keeps the core independent of the medium
// (filesystem, memory, browser-style local storage).
type Storage interface {
	// Read returns the value for key. ok is false when the key is absent.
	Read(key string) (value string, ok bool, err error)

	// Write persists value under key, replacing any previous value.
	Write(key, value string) error

	// Clear removes key. Clearing an absent key is not an error.
	Clear(key string) error
}

// StorageKey is the substrate key holding the serialized envelope.
const StorageKey = "ocean-notes:v1"

// Import failures are the only errors the store surfaces; their messages
// are part of the external contract.
var (
	ErrInvalidJSON  = errors.New("Invalid JSON file.")
	ErrNoNotesArray = errors.New("JSON does not contain a valid notes array.")
)
