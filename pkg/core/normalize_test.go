package core

import (
	"encoding/json"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var testNow = time.UnixMilli(1735732800000) // 2025-01-01T12:00:00Z

func TestNormalize(t *testing.T) {
	nowMs := testNow.UnixMilli()

	tests := []struct {
		name string
		raw  any
		want Note
	}{
		{
			name: "Well Formed Record",
			raw: map[string]any{
				"id":        "note-1",
				"title":     "Hello",
				"body":      "World",
				"createdAt": float64(1000),
				"updatedAt": float64(2000),
				"pinned":    true,
			},
			want: Note{ID: "note-1", Title: "Hello", Body: "World", CreatedAt: 1000, UpdatedAt: 2000, Pinned: true},
		},
		{
			name: "Nil Fields",
			raw:  map[string]any{"id": "x", "title": nil, "body": nil},
			want: Note{ID: "x", Title: "", Body: "", CreatedAt: nowMs, UpdatedAt: nowMs},
		},
		{
			name: "Wrong Typed Fields",
			raw: map[string]any{
				"id":        "  x  ",
				"title":     float64(42),
				"body":      true,
				"createdAt": "yesterday",
				"updatedAt": map[string]any{},
				"pinned":    "TRUE",
			},
			want: Note{ID: "x", Title: "42", Body: "true", CreatedAt: nowMs, UpdatedAt: nowMs, Pinned: true},
		},
		{
			name: "Pinned Number One",
			raw:  map[string]any{"id": "x", "pinned": float64(1)},
			want: Note{ID: "x", CreatedAt: nowMs, UpdatedAt: nowMs, Pinned: true},
		},
		{
			name: "Pinned Other Number",
			raw:  map[string]any{"id": "x", "pinned": float64(2)},
			want: Note{ID: "x", CreatedAt: nowMs, UpdatedAt: nowMs, Pinned: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, testNow)
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeClampsUpdatedAt(t *testing.T) {
	got := Normalize(map[string]any{"createdAt": float64(1000), "updatedAt": float64(500)}, testNow)
	if got.UpdatedAt != 1000 {
		t.Errorf("UpdatedAt = %d, want clamped to 1000", got.UpdatedAt)
	}
}

func TestNormalizeGeneratesID(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"Nil Input", nil},
		{"Non Object", "hello"},
		{"Array", []any{1, 2}},
		{"Empty Object", map[string]any{}},
		{"Blank ID", map[string]any{"id": "   "}},
		{"Composite ID Falls Back", map[string]any{"id": map[string]any{"nested": true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, testNow)
			if len(got.ID) != 36 {
				t.Errorf("ID = %q, want generated 36-char identifier", got.ID)
			}
		})
	}
}

// Totality: any JSON value whatsoever yields a well-formed note.
func TestNormalizeTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var raw any
		data := rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "json")
		// Both branches are interesting: valid JSON of arbitrary shape and
		// values built directly.
		if err := json.Unmarshal(data, &raw); err != nil {
			raw = map[string]any{
				"id":     rapid.String().Draw(t, "id"),
				"title":  rapid.String().Draw(t, "title"),
				"pinned": rapid.String().Draw(t, "pinned"),
			}
		}

		n := Normalize(raw, testNow)
		if len(n.ID) == 0 {
			t.Fatalf("empty id for %#v", raw)
		}
		if n.UpdatedAt < n.CreatedAt {
			t.Fatalf("updatedAt %d < createdAt %d for %#v", n.UpdatedAt, n.CreatedAt, raw)
		}
	})
}

func TestNewIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 36 {
			t.Fatalf("len(%q) = %d, want 36", id, len(id))
		}
		if id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
			t.Fatalf("bad group layout: %q", id)
		}
		if id[14] != '4' {
			t.Fatalf("version nibble = %c, want 4 (%q)", id[14], id)
		}
		switch id[19] {
		case '8', '9', 'a', 'b':
		default:
			t.Fatalf("variant nibble = %c, want one of 89ab (%q)", id[19], id)
		}
		if seen[id] {
			t.Fatalf("collision: %q", id)
		}
		seen[id] = true
	}
}
