package markdown

import (
	"regexp"

	"github.com/oceannotes/ocean/pkg/textutil"
)

// Inline formatting is an ordered sequence of independent substitution
// passes over already-escaped text. The order (code, bold, italic, links)
// matters: the patterns are non-overlapping and non-greedy so later passes
// do not re-match text wrapped by earlier ones.
var (
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	inlineBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineItalic = regexp.MustCompile(`\*([^*]+)\*`)
	inlineLink   = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)
)

// renderInline escapes raw text and applies the inline passes. Escaping
// happens first so source text can never introduce structural markup.
func renderInline(s string) string {
	out := textutil.EscapeHTML(s)
	out = inlineCode.ReplaceAllString(out, "<code>$1</code>")
	out = inlineBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = inlineItalic.ReplaceAllString(out, "<em>$1</em>")
	out = inlineLink.ReplaceAllString(out,
		`<a href="$2" target="_blank" rel="noopener noreferrer">$1</a>`)
	return out
}
