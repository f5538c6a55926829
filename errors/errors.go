// Package errors defines the parse errors, lint warnings and diagnostics
// produced by the qbit front end, together with their source locations.
package errors

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/qbit-lang/qbit/token"
)

// Kind identifies the category of a fatal parse error.
type Kind int

const (
	BuildError Kind = iota
	UnexpectedToken
	UnexpectedEOF
	InvalidSyntax
	MissingToken
	TooMuchRecursion
)

var kindNames = map[Kind]string{
	BuildError:       "build error",
	UnexpectedToken:  "unexpected token",
	UnexpectedEOF:    "unexpected end of file",
	InvalidSyntax:    "invalid syntax",
	MissingToken:     "missing token",
	TooMuchRecursion: "too much recursion",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Code returns the error code reported for errors of this kind.
func (k Kind) Code() ErrorCode {
	switch k {
	case BuildError:
		return E1005
	case UnexpectedToken:
		return E1001
	case UnexpectedEOF:
		return E1002
	case InvalidSyntax:
		return E1003
	case MissingToken:
		return E1004
	case TooMuchRecursion:
		return E1009
	}
	return ""
}

// Error is a fatal error raised while lexing or parsing. Which fields are
// meaningful depends on Kind.
type Error struct {
	Kind        Kind
	Code        ErrorCode
	Message     string // BuildError, InvalidSyntax
	InvalidText string // BuildError
	Expected    string // UnexpectedToken, UnexpectedEOF, MissingToken
	Found       string // UnexpectedToken
	MaxDepth    int    // TooMuchRecursion
	Position    int    // UnexpectedEOF, TooMuchRecursion
	Span        token.Span
	Context     Context
}

func newError(kind Kind, source string, span token.Span) *Error {
	return &Error{
		Kind:    kind,
		Code:    kind.Code(),
		Span:    span,
		Context: NewContext(source, span),
	}
}

// NewBuildError reports a byte sequence the lexer could not turn into a token.
func NewBuildError(source, message, invalidText string, span token.Span) *Error {
	err := newError(BuildError, source, span)
	err.Message = message
	err.InvalidText = invalidText
	return err
}

// NewUnexpectedToken reports a token that does not fit the grammar.
func NewUnexpectedToken(source, expected, found string, span token.Span) *Error {
	err := newError(UnexpectedToken, source, span)
	err.Expected = expected
	err.Found = found
	return err
}

// NewUnexpectedEOF reports that the input ended while more was expected.
// The position is the end of the last token.
func NewUnexpectedEOF(source, expected string, position int) *Error {
	err := newError(UnexpectedEOF, source, token.Span{Start: position, End: position})
	err.Expected = expected
	err.Position = position
	return err
}

// NewInvalidSyntax reports a construct that is malformed as a whole.
func NewInvalidSyntax(source, message string, span token.Span) *Error {
	err := newError(InvalidSyntax, source, span)
	err.Message = message
	return err
}

// NewMissingToken reports a required token that is absent.
func NewMissingToken(source, expected string, span token.Span) *Error {
	err := newError(MissingToken, source, span)
	err.Expected = expected
	return err
}

// NewTooMuchRecursion reports that the configured nesting limit was exceeded.
func NewTooMuchRecursion(source string, maxDepth, position int) *Error {
	err := newError(TooMuchRecursion, source, token.Span{Start: position, End: position})
	err.MaxDepth = maxDepth
	err.Position = position
	return err
}

// Description returns the first line of the rendered error.
func (e *Error) Description() string {
	switch e.Kind {
	case BuildError:
		return fmt.Sprintf("lexer error: %s ('%s')", e.Message, displayText(e.InvalidText))
	case UnexpectedToken:
		return fmt.Sprintf("expected %s, found %s", quoteSymbol(e.Expected), e.Found)
	case UnexpectedEOF:
		return fmt.Sprintf("unexpected end of file, expected %s", quoteSymbol(e.Expected))
	case InvalidSyntax:
		return fmt.Sprintf("syntax error: %s", e.Message)
	case MissingToken:
		return fmt.Sprintf("missing %s", quoteSymbol(e.Expected))
	case TooMuchRecursion:
		return fmt.Sprintf("maximum recursion depth (%d) exceeded at position %d", e.MaxDepth, e.Position)
	}
	return e.Kind.String()
}

// quoteSymbol wraps a bare punctuation token such as ")" in single quotes.
// Descriptive expectations like "expression" are returned unchanged.
// displayText escapes invalid UTF-8 and non-printable characters so that the
// offending bytes can be read from the message.
func displayText(s string) string {
	if utf8.ValidString(s) && !strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) {
		return s
	}
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}

func quoteSymbol(s string) string {
	if s == "" {
		return s
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) || r == '\'' {
			return s
		}
	}
	return "'" + s + "'"
}

// Error renders the description followed by the source line and a caret
// line. TooMuchRecursion renders the description alone.
func (e *Error) Error() string {
	if e.Kind == TooMuchRecursion {
		return e.Description()
	}
	return e.Description() + "\n" + e.Context.String()
}

// Length returns the number of bytes a diagnostic for this error should
// underline. End-of-input and recursion errors underline a single position.
func (e *Error) Length() int {
	if e.Kind == UnexpectedEOF || e.Kind == TooMuchRecursion {
		return 1
	}
	return max(e.Span.Len(), 1)
}

// ToFormatted converts the error for display with a Formatter.
func (e *Error) ToFormatted(filename string) *FormattedError {
	f := &FormattedError{
		Code:     e.Code,
		Kind:     "parse error",
		Message:  e.Description(),
		Filename: filename,
		Line:     e.Context.Line,
		Column:   e.Context.ColumnStart,
	}
	if e.Kind == BuildError {
		f.Kind = "syntax error"
	}
	if e.Kind == TooMuchRecursion {
		f.Note = "the input is nested too deeply; raise the limit with the max depth setting"
		return f
	}
	f.EndColumn = e.Context.ColumnStart + max(e.Context.SpanInLine.Len(), 1) - 1
	f.SourceLines = []SourceLineEntry{{
		Number: e.Context.Line,
		Text:   e.Context.LineText,
		IsMain: true,
	}}
	if e.Kind == UnexpectedToken && strings.HasPrefix(e.Found, "identifier ") {
		word := strings.Trim(strings.TrimPrefix(e.Found, "identifier "), `"`)
		f.Hint = SuggestKeyword(word)
	}
	return f
}
