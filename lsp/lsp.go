// Package lsp adapts parse results for editors. It flattens errors and
// warnings into line/column records and converts them to Language Server
// Protocol diagnostics.
package lsp

import (
	stderrors "errors"
	"strings"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/parser"
)

// Source is reported as the origin of every protocol diagnostic.
const Source = "qbit"

// Record is the flat form of one diagnostic. Line and Column are 1-based.
type Record struct {
	Message string       `json:"message" yaml:"message"`
	Line    int          `json:"line" yaml:"line"`
	Column  int          `json:"column" yaml:"column"`
	Length  int          `json:"length" yaml:"length"`
	Level   errors.Level `json:"level" yaml:"level"`
}

// Result is the document handed to an editor after parsing a buffer.
type Result struct {
	Success  bool     `json:"success" yaml:"success"`
	Errors   []Record `json:"errors" yaml:"errors"`
	Warnings []Record `json:"warnings" yaml:"warnings"`
}

// Adapter runs the parser on editor buffers.
type Adapter struct {
	log     zerolog.Logger
	options []parser.Option
}

// Option is a configuration function for an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger used to report conversion fallbacks.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Adapter) {
		a.log = logger
	}
}

// WithParserOptions sets the options passed to every parse.
func WithParserOptions(options ...parser.Option) Option {
	return func(a *Adapter) {
		a.options = options
	}
}

// New returns an Adapter. By default it logs nothing.
func New(options ...Option) *Adapter {
	a := &Adapter{log: zerolog.Nop()}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// ParseCode parses source and reports the outcome. A failed parse carries
// exactly one error and no warnings.
func (a *Adapter) ParseCode(source string) Result {
	result, err := parser.Parse(source, a.options...)
	if err != nil {
		return Result{
			Success:  false,
			Errors:   []Record{a.FromError(err)},
			Warnings: []Record{},
		}
	}
	warnings := make([]Record, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		warnings = append(warnings, FromDiagnostic(d))
	}
	return Result{Success: true, Errors: []Record{}, Warnings: warnings}
}

// ParseSyntax parses source and returns only the fatal error, if any.
func (a *Adapter) ParseSyntax(source string) []Record {
	if _, err := parser.Parse(source, a.options...); err != nil {
		return []Record{a.FromError(err)}
	}
	return []Record{}
}

// FromError flattens err. Errors that did not come from the parser are
// placed at the start of the document.
func (a *Adapter) FromError(err error) Record {
	var perr *errors.Error
	if stderrors.As(err, &perr) {
		return FromDiagnostic(errors.DiagnosticFromError(perr))
	}
	a.log.Debug().Err(err).Msg("non-parser error reported at document start")
	return Record{
		Message: err.Error(),
		Line:    1,
		Column:  1,
		Length:  1,
		Level:   errors.LevelError,
	}
}

// FromDiagnostic flattens a diagnostic.
func FromDiagnostic(d errors.Diagnostic) Record {
	return Record{
		Message: d.Message,
		Line:    d.Line,
		Column:  d.Column,
		Length:  d.Length,
		Level:   d.Level,
	}
}

// Diagnostics parses source and returns every error and warning as protocol
// diagnostics.
func (a *Adapter) Diagnostics(source string) []protocol.Diagnostic {
	res := a.ParseCode(source)
	out := make([]protocol.Diagnostic, 0, len(res.Errors)+len(res.Warnings))
	for _, r := range res.Errors {
		out = append(out, ToProtocol(source, r))
	}
	for _, r := range res.Warnings {
		out = append(out, ToProtocol(source, r))
	}
	return out
}

// Publish builds the notification parameters for a document.
func (a *Adapter) Publish(uri protocol.DocumentURI, source string) *protocol.PublishDiagnosticsParams {
	diagnostics := a.Diagnostics(source)
	a.log.Debug().Str("uri", string(uri)).Int("count", len(diagnostics)).Msg("publishing diagnostics")
	return &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	}
}

// ToProtocol converts a record for source to a protocol diagnostic. Record
// columns count bytes; protocol positions are 0-based and count UTF-16 code
// units, so the record's line is looked up in source for the conversion.
// When the line is not in source the byte columns are used unchanged.
func ToProtocol(source string, r Record) protocol.Diagnostic {
	line := max(r.Line-1, 0)
	startByte := max(r.Column-1, 0)
	endByte := startByte + max(r.Length, 1)
	start, end := uint32(startByte), uint32(endByte)
	if text, ok := lineAt(source, line); ok {
		start = utf16Offset(text, startByte)
		end = max(utf16Offset(text, endByte), start+1)
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: start},
			End:   protocol.Position{Line: uint32(line), Character: end},
		},
		Severity: severity(r.Level),
		Source:   Source,
		Message:  r.Message,
	}
}

// lineAt returns the n-th (0-based) line of source without its line ending.
func lineAt(source string, n int) (string, bool) {
	for i := 0; ; i++ {
		text, rest, found := strings.Cut(source, "\n")
		if i == n {
			return strings.TrimSuffix(text, "\r"), true
		}
		if !found {
			return "", false
		}
		source = rest
	}
}

// utf16Offset counts the UTF-16 code units in the first n bytes of text.
// Bytes past the end of the line count one unit each.
func utf16Offset(text string, n int) uint32 {
	prefix := text[:min(n, len(text))]
	units := n - len(prefix)
	for _, r := range prefix {
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return uint32(units)
}

func severity(level errors.Level) protocol.DiagnosticSeverity {
	switch level {
	case errors.LevelError:
		return protocol.SeverityError
	case errors.LevelWarn:
		return protocol.SeverityWarning
	case errors.LevelInfo:
		return protocol.SeverityInformation
	}
	return protocol.SeverityHint
}
