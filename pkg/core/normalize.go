package core

import (
	"strings"
	"time"

	"github.com/oceannotes/ocean/pkg/textutil"
)

// Normalize turns an arbitrary decoded JSON value into a well-formed Note.
// It is total: any input, including nil or a non-object, yields a valid
// record. This is the sole gate through which data enters the collection.
//
// now supplies the fallback for missing or malformed timestamps.
func Normalize(raw any, now time.Time) Note {
	fields, _ := raw.(map[string]any)
	nowMs := now.UnixMilli()

	n := Note{
		ID:    strings.TrimSpace(textutil.CoerceString(fields["id"])),
		Title: textutil.CoerceString(fields["title"]),
		Body:  textutil.CoerceString(fields["body"]),
	}
	if n.ID == "" {
		n.ID = NewID()
	}

	if ts, ok := textutil.CoerceTimestamp(fields["createdAt"]); ok {
		n.CreatedAt = ts
	} else {
		n.CreatedAt = nowMs
	}
	if ts, ok := textutil.CoerceTimestamp(fields["updatedAt"]); ok {
		n.UpdatedAt = ts
	} else {
		n.UpdatedAt = nowMs
	}
	if n.UpdatedAt < n.CreatedAt {
		n.UpdatedAt = n.CreatedAt
	}

	n.Pinned = textutil.CoerceBool(fields["pinned"])
	return n
}

// renormalize re-applies the invariants to an already-typed Note. Used on
// every mutation and on encode so in-memory drift never persists.
func renormalize(n Note) Note {
	n.ID = strings.TrimSpace(n.ID)
	if n.ID == "" {
		n.ID = NewID()
	}
	if n.UpdatedAt < n.CreatedAt {
		n.UpdatedAt = n.CreatedAt
	}
	return n
}
