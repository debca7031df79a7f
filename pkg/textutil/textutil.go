// Package textutil holds the small text-safety helpers shared by the note
// normalizer and the markdown preview renderer: HTML escaping, permissive
// coercion of untrusted JSON fields, and slug derivation for export filenames.
package textutil

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// htmlEscaper matches the entity spellings of the persisted format contract.
// html.EscapeString would emit &#34;/&#39; instead of &quot;/&#039;.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes &, <, >, " and ' to entities. It is the only path by
// which user text reaches preview markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// CoerceString converts an untrusted decoded JSON value to text.
// nil yields ""; strings pass through; scalar values (numbers, booleans)
// convert to their canonical text; anything without a single obvious text
// form (objects, arrays) yields "".
func CoerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// CoerceBool applies the permissive boolean rule: booleans pass through,
// nil is false, the string "true" (trimmed, case-insensitive) is true and
// any other string false, the number 1 is true and any other number false.
func CoerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	case float64:
		return t == 1
	case int:
		return t == 1
	case int64:
		return t == 1
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 1
	default:
		return false
	}
}

// CoerceTimestamp extracts a finite epoch-milliseconds value. The ok result
// is false for anything that is not a finite number.
func CoerceTimestamp(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9-_]+`)

// Slugify lower-cases s, collapses every run of characters outside
// [a-z0-9-_] to a single hyphen, and trims leading/trailing hyphens.
func Slugify(s string) string {
	out := slugUnsafe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(out, "-")
}
