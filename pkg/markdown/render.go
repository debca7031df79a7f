// Package markdown renders a note body to sanitized structural HTML.
//
// It parses a deliberately restricted subset (1-3 level headings, unordered
// lists, fenced code blocks, inline code/bold/italic/http links) with a
// line-oriented single-pass state machine. Raw HTML never passes through:
// all text is entity-escaped before any tag is injected.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oceannotes/ocean/pkg/textutil"
)

type state int

const (
	stateNormal state = iota
	stateInCodeBlock
	stateInList
)

var (
	headingLine = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	listLine    = regexp.MustCompile(`^\s*-\s+(.*)$`)
)

type renderer struct {
	out   strings.Builder
	state state
	code  []string
}

// Render converts body text to safe markup. It is pure and deterministic;
// an unterminated code fence is closed implicitly at end of input.
func Render(body string) string {
	r := &renderer{}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	for _, line := range strings.Split(normalized, "\n") {
		r.line(line)
	}
	r.closeList()
	r.flushCode()
	return r.out.String()
}

func (r *renderer) line(line string) {
	if strings.HasPrefix(strings.TrimSpace(line), "```") {
		if r.state == stateInCodeBlock {
			r.flushCode()
		} else {
			r.closeList()
			r.state = stateInCodeBlock
			r.code = r.code[:0]
		}
		return
	}

	if r.state == stateInCodeBlock {
		// Inside a fence every line is buffered verbatim.
		r.code = append(r.code, line)
		return
	}

	if m := headingLine.FindStringSubmatch(line); m != nil {
		r.closeList()
		level := len(m[1])
		fmt.Fprintf(&r.out, "<h%d>%s</h%d>", level, renderInline(m[2]), level)
		return
	}

	if m := listLine.FindStringSubmatch(line); m != nil {
		if r.state != stateInList {
			r.out.WriteString("<ul>")
			r.state = stateInList
		}
		fmt.Fprintf(&r.out, "<li>%s</li>", renderInline(m[1]))
		return
	}
	r.closeList()

	// Blank lines act as paragraph separators only.
	if strings.TrimSpace(line) == "" {
		return
	}

	fmt.Fprintf(&r.out, "<p>%s</p>", renderInline(line))
}

func (r *renderer) closeList() {
	if r.state == stateInList {
		r.out.WriteString("</ul>")
		r.state = stateNormal
	}
}

// flushCode emits the buffered fence contents escaped, with no inline
// formatting applied.
func (r *renderer) flushCode() {
	if r.state != stateInCodeBlock {
		return
	}
	code := textutil.EscapeHTML(strings.Join(r.code, "\n"))
	fmt.Fprintf(&r.out, "<pre><code>%s</code></pre>", code)
	r.code = r.code[:0]
	r.state = stateNormal
}
