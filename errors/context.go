package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qbit-lang/qbit/token"
)

// Context is a span resolved against the source text: the line it starts on
// and the part of that line it covers.
type Context struct {
	Line        int        // 1-based line number
	ColumnStart int        // 1-based byte column of the first covered byte
	ColumnEnd   int        // 1-based byte column just past the covered range
	LineText    string     // full text of the line, without the line ending
	SpanInLine  token.Span // covered byte range within LineText
}

// NewContext resolves a span into its line and column information. Every
// error and warning constructor goes through here.
func NewContext(source string, span token.Span) Context {
	lineStart := 0
	lineNum := 0
	var lastText string
	for {
		lineNum++
		next := -1
		raw := source[lineStart:]
		if i := strings.IndexByte(raw, '\n'); i >= 0 {
			raw = raw[:i]
			next = lineStart + i + 1
		}
		text := strings.TrimSuffix(raw, "\r")
		lastText = text
		lineEnd := lineStart + len(text)
		if span.Start >= lineStart && (span.Start <= lineEnd || (next >= 0 && span.Start < next)) {
			colStart := min(span.Start-lineStart, len(text))
			colEnd := min(max(span.End-lineStart, colStart), len(text))
			return Context{
				Line:        lineNum,
				ColumnStart: colStart + 1,
				ColumnEnd:   colEnd + 1,
				LineText:    text,
				SpanInLine:  token.Span{Start: colStart, End: colEnd},
			}
		}
		if next < 0 {
			break
		}
		lineStart = next
	}
	return Context{
		Line:        lineNum,
		ColumnStart: 1,
		ColumnEnd:   1,
		LineText:    lastText,
	}
}

// Location returns the "line:col" or "line:start-end" prefix used when
// rendering the context.
func (c Context) Location() string {
	if c.SpanInLine.Len() > 1 {
		return fmt.Sprintf("%d:%d-%d", c.Line, c.ColumnStart, c.ColumnEnd)
	}
	return fmt.Sprintf("%d:%d", c.Line, c.ColumnStart)
}

// Underline returns the caret line for the covered range: the prefix keeps
// tabs so the carets stay aligned under the line text in a terminal.
func (c Context) Underline() string {
	var b strings.Builder
	for _, r := range c.LineText[:c.SpanInLine.Start] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	width := utf8.RuneCountInString(c.LineText[c.SpanInLine.Start:c.SpanInLine.End])
	b.WriteString(strings.Repeat("^", max(width, 1)))
	return b.String()
}

// String renders the context as two lines: the location-prefixed source line
// and a caret line underneath the covered range.
func (c Context) String() string {
	prefix := c.Location() + ": "
	return prefix + c.LineText + "\n" + strings.Repeat(" ", len(prefix)) + c.Underline()
}
