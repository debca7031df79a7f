package core

import (
	"bytes"
	"encoding/json"
	"time"
)

// EnvelopeVersion is the current persisted schema version.
const EnvelopeVersion = 1

// Envelope is the versioned container that is the unit of persistence.
// Element order in Notes is raw storage order; the canonical display order
// is always recomputed by the store, never stored.
type Envelope struct {
	Version int    `json:"version"`
	Notes   []Note `json:"notes"`
}

const welcomeBody = "This is a lightweight notes app.\n\n" +
	"- Create notes in the sidebar\n" +
	"- Edit with autosave\n" +
	"- Toggle **Markdown** preview\n\n" +
	"```js\nconsole.log('Hello Ocean');\n```"

// SeedEnvelope returns a fresh envelope holding the single welcome note.
// Corrupted or foreign persisted state self-heals to this.
func SeedEnvelope(now time.Time) Envelope {
	nowMs := now.UnixMilli()
	return Envelope{
		Version: EnvelopeVersion,
		Notes: []Note{{
			ID:        NewID(),
			Title:     "Welcome to Ocean Notes",
			Body:      welcomeBody,
			CreatedAt: nowMs - 4*time.Hour.Milliseconds(),
			UpdatedAt: nowMs - 18*time.Minute.Milliseconds(),
		}},
	}
}

// notesFromValue extracts the raw note records from a decoded JSON value.
// It accepts the current envelope shape and the legacy bare-array shape.
// ok is false when the value holds no usable notes array.
func notesFromValue(raw any) (records []any, ok bool) {
	switch t := raw.(type) {
	case map[string]any:
		if arr, isArr := t["notes"].([]any); isArr {
			return arr, true
		}
		return nil, false
	case []any:
		return t, true
	default:
		return nil, false
	}
}

// DecodeValue maps a decoded JSON value to an Envelope, normalizing every
// contained record and forcing the current version. Anything without a
// usable notes array is discarded and replaced by the seed envelope; decode
// never fails.
func DecodeValue(raw any, now time.Time) Envelope {
	records, ok := notesFromValue(raw)
	if !ok {
		return SeedEnvelope(now)
	}
	notes := make([]Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, Normalize(r, now))
	}
	return Envelope{Version: EnvelopeVersion, Notes: notes}
}

// DecodeText parses a serialized envelope. Unparsable text degrades to the
// seed envelope, same as any other unusable shape.
func DecodeText(text string, now time.Time) Envelope {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return SeedEnvelope(now)
	}
	return DecodeValue(raw, now)
}

// Encode serializes the envelope compactly for the persistence substrate,
// re-normalizing every note so drift is corrected before it lands on disk.
func Encode(env Envelope) string {
	data, err := json.Marshal(cleanEnvelope(env))
	if err != nil {
		// A Note contains only marshalable field types.
		panic(err)
	}
	return string(data)
}

// EncodeIndent is the canonical pretty-printed (2-space) form used for
// export files.
func EncodeIndent(env Envelope) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cleanEnvelope(env)); err != nil {
		panic(err)
	}
	return buf.String()
}

func cleanEnvelope(env Envelope) Envelope {
	notes := make([]Note, len(env.Notes))
	for i, n := range env.Notes {
		notes[i] = renormalize(n)
	}
	return Envelope{Version: EnvelopeVersion, Notes: notes}
}
