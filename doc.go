// Package ocean is the composition root for Ocean Notes, a local-first
// note-taking core.
//
// It connects the domain layer (the note store, normalizer, and envelope
// codec in pkg/core) with the persistence adapters (pkg/adapters/fs,
// pkg/adapters/memory) following the same interface-first layout the
// storage contract demands.
//
// Philosophy:
//
// Ocean Notes treats the note collection as a single versioned envelope
// persisted to a string key-value substrate. Any data crossing the boundary
// (persisted state, imports) passes through a total normalization gate, so
// corrupted or foreign state self-heals instead of crashing.
//
// Features:
//
//   - **Versioned envelope**: one persisted key, forward-compatible decode
//     with a legacy bare-array upgrade path.
//   - **Self-healing**: unusable persisted state degrades to a seeded
//     welcome collection; decode never fails.
//   - **Derived views**: pinned-first recency ordering and substring search,
//     always recomputed, never stored.
//   - **Safe bulk import/export**: canonical pretty-printed export, merge-by-id
//     import with last-write-wins dedupe.
//   - **Restricted markdown preview** (pkg/markdown): a line-oriented state
//     machine that escapes everything before injecting any tag.
//   - **Pluggable substrate**: anything implementing core.Storage.
//
// Usage:
//
//	// Open (or create) the collection in a data directory
//	store, err := ocean.Open(dir, ocean.WithLogger(logger))
//
//	// Work with notes
//	n := store.Create()
//	store.Update(n.ID, core.Patch{Title: ocean.String("Groceries")})
package ocean
