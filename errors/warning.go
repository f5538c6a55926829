package errors

import (
	"fmt"

	"github.com/qbit-lang/qbit/token"
)

// WarningKind identifies the category of a lint warning.
type WarningKind int

const (
	NamingConvention WarningKind = iota
	UnusedVariable
	UnusedFunction
	UnreachableCode
)

func (k WarningKind) String() string {
	switch k {
	case NamingConvention:
		return "naming convention"
	case UnusedVariable:
		return "unused variable"
	case UnusedFunction:
		return "unused function"
	case UnreachableCode:
		return "unreachable code"
	}
	return "unknown"
}

// Code returns the warning code reported for warnings of this kind.
func (k WarningKind) Code() ErrorCode {
	switch k {
	case NamingConvention:
		return W1001
	case UnusedVariable:
		return W1002
	case UnusedFunction:
		return W1003
	case UnreachableCode:
		return W1004
	}
	return ""
}

// Warning is an advisory lint finding. Warnings never stop a parse.
type Warning struct {
	Kind    WarningKind
	Code    ErrorCode
	Name    string // UnusedVariable, UnusedFunction
	Message string // NamingConvention
	Span    token.Span
	Context Context
}

func newWarning(kind WarningKind, source string, span token.Span) *Warning {
	return &Warning{
		Kind:    kind,
		Code:    kind.Code(),
		Span:    span,
		Context: NewContext(source, span),
	}
}

// NewNamingConvention reports a binding whose name breaks the naming rules.
func NewNamingConvention(source, message string, span token.Span) *Warning {
	w := newWarning(NamingConvention, source, span)
	w.Message = message
	return w
}

func NewUnusedVariable(source, name string, span token.Span) *Warning {
	w := newWarning(UnusedVariable, source, span)
	w.Name = name
	return w
}

func NewUnusedFunction(source, name string, span token.Span) *Warning {
	w := newWarning(UnusedFunction, source, span)
	w.Name = name
	return w
}

func NewUnreachableCode(source string, span token.Span) *Warning {
	return newWarning(UnreachableCode, source, span)
}

// Description returns the first line of the rendered warning.
func (w *Warning) Description() string {
	switch w.Kind {
	case NamingConvention:
		return w.Message
	case UnusedVariable:
		return fmt.Sprintf("variable '%s' is declared but never used", w.Name)
	case UnusedFunction:
		return fmt.Sprintf("function '%s' is declared but never used", w.Name)
	case UnreachableCode:
		return "unreachable code"
	}
	return w.Kind.String()
}

func (w *Warning) String() string {
	return w.Description() + "\n" + w.Context.String()
}

// Length returns the number of bytes a diagnostic for this warning should
// underline.
func (w *Warning) Length() int {
	return max(w.Span.Len(), 1)
}

// ToFormatted converts the warning for display with a Formatter.
func (w *Warning) ToFormatted(filename string) *FormattedError {
	return &FormattedError{
		Code:      w.Code,
		Kind:      "warning",
		Message:   w.Description(),
		Filename:  filename,
		Line:      w.Context.Line,
		Column:    w.Context.ColumnStart,
		EndColumn: w.Context.ColumnStart + max(w.Context.SpanInLine.Len(), 1) - 1,
		SourceLines: []SourceLineEntry{{
			Number: w.Context.Line,
			Text:   w.Context.LineText,
			IsMain: true,
		}},
	}
}
