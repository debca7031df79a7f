package core

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/oceannotes/ocean/pkg/textutil"
)

// ExportBaseName is the fixed base name export filenames derive from.
const ExportBaseName = "Ocean Notes"

// Store owns the canonical note collection. It loads the envelope from the
// substrate once at construction and writes it back synchronously after
// every mutation, at most once per operation.
//
// The store is the sole writer; it assumes sequential, one-at-a-time calls
// (there is no concurrent mutator in this system).
type Store struct {
	storage Storage
	key     string
	logger  *slog.Logger
	now     func() time.Time
	env     Envelope
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey overrides the substrate key the envelope is persisted under.
func WithKey(key string) StoreOption {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger for substrate failures.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithClock injects the time source. Tests use this to pin timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore loads the collection from storage, seeding a fresh envelope when
// the key is absent or holds unusable state. It never fails: corrupted
// persisted data self-heals to a valid envelope.
func NewStore(storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		key:     StorageKey,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := storage.Read(s.key)
	if err != nil {
		s.logger.Warn("storage read failed, starting fresh", "key", s.key, "error", err)
		ok = false
	}
	if ok {
		s.env = DecodeText(raw, s.now())
	} else {
		s.env = SeedEnvelope(s.now())
		s.persist()
	}
	return s
}

// persist writes the envelope through the codec. Substrate failures are
// logged, not surfaced: the in-memory collection stays authoritative.
func (s *Store) persist() {
	if err := s.storage.Write(s.key, Encode(s.env)); err != nil {
		s.logger.Error("failed to persist notes", "key", s.key, "error", err)
	}
}

// Len returns the number of notes in the collection.
func (s *Store) Len() int {
	return len(s.env.Notes)
}

// Create builds a new note with the placeholder title, prepends it to the
// collection, persists, and returns it.
func (s *Store) Create() Note {
	nowMs := s.now().UnixMilli()
	n := Note{
		ID:        NewID(),
		Title:     DefaultTitle,
		Body:      "",
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}
	s.env.Notes = append([]Note{n}, s.env.Notes...)
	s.persist()
	return n
}

// Update merges patch into the note with the given id and stamps it with
// the current time. ID and CreatedAt are immutable regardless of the patch.
// Absent ids are a silent no-op.
func (s *Store) Update(id string, patch Patch) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	n := s.env.Notes[idx]
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Body != nil {
		n.Body = *patch.Body
	}
	if patch.Pinned != nil {
		n.Pinned = *patch.Pinned
	}
	n.UpdatedAt = s.now().UnixMilli()
	s.env.Notes[idx] = renormalize(n)
	s.persist()
}

// TogglePinned flips the pin state without bumping UpdatedAt: pinning must
// not perturb recency ordering or last-edited semantics.
func (s *Store) TogglePinned(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.env.Notes[idx].Pinned = !s.env.Notes[idx].Pinned
	s.env.Notes[idx] = renormalize(s.env.Notes[idx])
	s.persist()
}

// Duplicate creates a copy of the note with a fresh id and timestamps and
// an unpinned "Copy of ..." title. ok is false when id is absent.
func (s *Store) Duplicate(id string) (Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	src := s.env.Notes[idx]
	title := strings.TrimSpace(src.Title)
	if title == "" {
		title = DefaultTitle
	}
	nowMs := s.now().UnixMilli()
	copyNote := Note{
		ID:        NewID(),
		Title:     "Copy of " + title,
		Body:      src.Body,
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}
	s.env.Notes = append([]Note{copyNote}, s.env.Notes...)
	s.persist()
	return copyNote, true
}

// Delete removes the note with the given id; absent ids are a no-op.
func (s *Store) Delete(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.env.Notes = append(s.env.Notes[:idx], s.env.Notes[idx+1:]...)
	s.persist()
}

// GetByID returns the note with the given id.
func (s *Store) GetByID(id string) (Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.env.Notes[idx], true
}

// Sorted returns the canonical display order: pinned notes first, then by
// UpdatedAt descending within each partition. The sort is stable so equal
// timestamps preserve collection order.
func (s *Store) Sorted() []Note {
	out := make([]Note, len(s.env.Notes))
	copy(out, s.env.Notes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}

// Search filters the sorted view by case-insensitive substring match on
// title or body. A blank query returns the full sorted view.
func (s *Store) Search(query string) []Note {
	sorted := s.Sorted()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return sorted
	}
	out := make([]Note, 0, len(sorted))
	for _, n := range sorted {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Body), q) {
			out = append(out, n)
		}
	}
	return out
}

// ExportJSON returns the pretty-printed canonical serialization of the
// current envelope.
func (s *Store) ExportJSON() string {
	return EncodeIndent(s.env)
}

// ExportFilename derives the export file name for the current date:
// <slug>-<YYYY-MM-DD>.json.
func (s *Store) ExportFilename() string {
	return fmt.Sprintf("%s-%s.json",
		textutil.Slugify(ExportBaseName),
		s.now().UTC().Format("2006-01-02"))
}

// Import parses text as JSON and replaces the entire collection with its
// notes, deduplicated by id with later records winning. It returns the
// number of unique notes imported.
//
// The two possible errors, ErrInvalidJSON and ErrNoNotesArray, are the only
// failures any store operation surfaces.
func (s *Store) Import(text string) (int, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return 0, ErrInvalidJSON
	}
	records, ok := notesFromValue(raw)
	if !ok {
		return 0, ErrNoNotesArray
	}

	now := s.now()
	// Last-write-wins by input order, keyed by id: a later duplicate
	// replaces the content at the first occurrence's position.
	byID := make(map[string]int, len(records))
	notes := make([]Note, 0, len(records))
	for _, r := range records {
		n := Normalize(r, now)
		if at, seen := byID[n.ID]; seen {
			notes[at] = n
			continue
		}
		byID[n.ID] = len(notes)
		notes = append(notes, n)
	}

	s.env = Envelope{Version: EnvelopeVersion, Notes: notes}
	s.persist()
	return len(notes), nil
}

func (s *Store) indexOf(id string) int {
	for i, n := range s.env.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
