package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/errors"
)

func num(n int64) ast.Expr {
	return &ast.Literal{Value: ast.Int(n)}
}

func ident(name string) ast.Expr {
	return &ast.Variable{Name: name}
}

func bin(op ast.BinaryOp, left, right ast.Expr) ast.Expr {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

func mustParseExpr(t *testing.T, source string, options ...Option) ast.Expr {
	t.Helper()
	expr, err := ParseExpr(source, options...)
	require.NoError(t, err, source)
	return expr
}

func mustParse(t *testing.T, source string, options ...Option) *Result {
	t.Helper()
	result, err := Parse(source, options...)
	require.NoError(t, err, source)
	return result
}

// parseError parses source and returns the error it fails with.
func parseError(t *testing.T, source string, options ...Option) *errors.Error {
	t.Helper()
	result, err := Parse(source, options...)
	require.Error(t, err, source)
	require.Nil(t, result)
	var perr *errors.Error
	require.ErrorAs(t, err, &perr)
	return perr
}
