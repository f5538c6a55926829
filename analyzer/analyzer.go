// Package analyzer implements the lint checks run over parsed statements.
//
// The only emitted check is naming: let bindings, functions and parameters
// should be snake_case and constants CONSTANT_CASE.
package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/token"
)

// Analyzer collects warnings for the statements handed to it.
type Analyzer struct {
	source    string
	positions *ast.Positions
	warnings  []*errors.Warning
}

// New returns an analyzer for statements parsed from source. Positions may
// be nil, in which case warnings point at the span given to Analyze.
func New(source string, positions *ast.Positions) *Analyzer {
	return &Analyzer{source: source, positions: positions}
}

// Analyze checks stmt and everything nested in it. The span locates the
// start of stmt and is used when no name position was recorded.
func (a *Analyzer) Analyze(stmt ast.Stmt, span token.Span) {
	ast.Inspect(stmt, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Let:
			if !IsSnakeCase(n.Name) {
				a.warn(snakeName(n.Name), a.nameSpan(n, span))
			}
		case *ast.Const:
			if !IsConstantCase(n.Name) {
				a.warn(constantName(n.Name), a.nameSpan(n, span))
			}
		case *ast.Function:
			if !IsSnakeCase(n.Name) {
				a.warn(snakeName(n.Name), a.nameSpan(n, span))
			}
			for i, param := range n.Params {
				if IsSnakeCase(param) {
					continue
				}
				pspan, ok := a.positions.ParamSpan(n, i)
				if !ok {
					pspan = span
				}
				a.warn(snakeName(param), pspan)
			}
		}
		// Expressions hold no declarations.
		_, isExpr := node.(ast.Expr)
		return !isExpr
	})
}

// Diagnostics returns the warnings collected so far, in source order.
func (a *Analyzer) Diagnostics() []*errors.Warning {
	return a.warnings
}

func (a *Analyzer) nameSpan(stmt ast.Stmt, fallback token.Span) token.Span {
	if span, ok := a.positions.NameSpan(stmt); ok {
		return span
	}
	return fallback
}

func (a *Analyzer) warn(suggestion string, span token.Span) {
	message := fmt.Sprintf("expected '%s'", suggestion)
	a.warnings = append(a.warnings, errors.NewNamingConvention(a.source, message, span))
}

// IsSnakeCase reports whether name is lower case words joined by single
// underscores.
func IsSnakeCase(name string) bool {
	return !strings.ContainsFunc(name, unicode.IsUpper) && singleJoined(name)
}

// IsConstantCase reports whether name is upper case words joined by single
// underscores.
func IsConstantCase(name string) bool {
	return !strings.ContainsFunc(name, unicode.IsLower) && singleJoined(name)
}

// singleJoined reports whether name has no leading, trailing or repeated
// underscores. A name made only of underscores is accepted.
func singleJoined(name string) bool {
	squeezed := squeeze(name)
	return squeezed == "" || squeezed == name
}

func squeeze(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	return strings.Join(words, "_")
}

func snakeName(name string) string {
	return squeeze(strcase.ToSnake(name))
}

func constantName(name string) string {
	return squeeze(strcase.ToScreamingSnake(name))
}
