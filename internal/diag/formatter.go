package diag

import (
	"fmt"
	"strings"
)

// Formatter renders diagnostics with a source snippet and caret marker.
type Formatter struct {
	sourceCache map[string]string
}

// NewFormatter creates a new diagnostic formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a filename so Format can print snippets.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// Format renders a diagnostic as a multi-line string.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)

	if d.Span.IsValid() {
		fmt.Fprintf(&b, "  --> %s\n", d.Span)
		if snippet, ok := f.snippet(d.Span); ok {
			fmt.Fprintf(&b, "   |\n")
			fmt.Fprintf(&b, "%3d| %s\n", d.Span.Line, snippet)
			fmt.Fprintf(&b, "   | %s^\n", strings.Repeat(" ", d.Span.Column-1))
		}
	}

	if d.Help != "" {
		fmt.Fprintf(&b, "  help: %s\n", d.Help)
	}

	return b.String()
}

// snippet extracts the source line the span points at, if the source is known.
func (f *Formatter) snippet(span Span) (string, bool) {
	src, ok := f.sourceCache[span.Filename]
	if !ok {
		return "", false
	}

	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		return "", false
	}
	return lines[span.Line-1], true
}
