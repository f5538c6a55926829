// Package syntax checks parsed qbit programs for constructs the grammar
// accepts but a later stage must reject, and for features disallowed by a
// restricted dialect.
package syntax

import (
	"fmt"
	"strings"

	"github.com/qbit-lang/qbit/ast"
)

// ValidationError represents a syntax restriction violation.
type ValidationError struct {
	Message string   // description of the violation
	Node    ast.Node // the offending node
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Node == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Node.String())
}

// ValidationErrors wraps multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// NewValidationErrors creates a ValidationErrors from a slice of errors.
func NewValidationErrors(errs []ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
		for _, err := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", err.Error())
		}
		return b.String()
	}
}

// Unwrap returns the first error for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() error {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}
	return nil
}

// Validator inspects an AST and returns validation errors. Validators do
// not modify the AST.
type Validator interface {
	Validate(program *ast.Program) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(*ast.Program) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(p *ast.Program) []ValidationError {
	return f(p)
}

// Validate runs each validator in turn and returns a *ValidationErrors
// holding every violation found, or nil when there are none.
func Validate(program *ast.Program, validators ...Validator) error {
	var errs []ValidationError
	for _, v := range validators {
		errs = append(errs, v.Validate(program)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return NewValidationErrors(errs)
}
