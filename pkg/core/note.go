// Package core owns the canonical note collection: the Note entity, the
// normalization gate for untrusted records, the versioned storage envelope
// codec, and the Store that computes derived views and performs
// import/export against an injected key-value substrate.
package core

// Note is the atomic unit of the collection.
//
// CreatedAt and UpdatedAt are epoch milliseconds. UpdatedAt never drops
// below CreatedAt; normalization clamps ingested records that violate this.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
	Pinned    bool   `json:"pinned"`
}

// Patch describes a partial update. Nil fields are left untouched, so an
// empty string can still be set explicitly.
type Patch struct {
	Title  *string
	Body   *string
	Pinned *bool
}

// DefaultTitle is the placeholder title for new and untitled notes.
const DefaultTitle = "Untitled note"
