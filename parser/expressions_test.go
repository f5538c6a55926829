package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/errors"
)

// One operator per precedence level, loosest first.
var precedenceLadder = []struct {
	text string
	op   ast.BinaryOp
}{
	{"||", ast.Or},
	{"&&", ast.And},
	{"|", ast.BitOr},
	{"&", ast.BitAnd},
	{"==", ast.Eq},
	{"<", ast.Lt},
	{"<<", ast.Shl},
	{"+", ast.Add},
	{"*", ast.Mul},
	{"**", ast.Pow},
}

func TestPrecedenceLadder(t *testing.T) {
	for i := 0; i+1 < len(precedenceLadder); i++ {
		lo, hi := precedenceLadder[i], precedenceLadder[i+1]
		require.Less(t, lo.op.Precedence(), hi.op.Precedence())

		source := fmt.Sprintf("a %s b %s c", lo.text, hi.text)
		want := bin(lo.op, ident("a"), bin(hi.op, ident("b"), ident("c")))
		assert.Equal(t, want, mustParseExpr(t, source), source)

		source = fmt.Sprintf("a %s b %s c", hi.text, lo.text)
		want = bin(lo.op, bin(hi.op, ident("a"), ident("b")), ident("c"))
		assert.Equal(t, want, mustParseExpr(t, source), source)
	}
}

func TestSamePrecedenceOperators(t *testing.T) {
	tests := []struct {
		source string
		want   ast.Expr
	}{
		{"a == b != c", bin(ast.Neq, bin(ast.Eq, ident("a"), ident("b")), ident("c"))},
		{"a < b >= c", bin(ast.Ge, bin(ast.Lt, ident("a"), ident("b")), ident("c"))},
		{"a << b >> c", bin(ast.Shr, bin(ast.Shl, ident("a"), ident("b")), ident("c"))},
		{"a + b - c", bin(ast.Sub, bin(ast.Add, ident("a"), ident("b")), ident("c"))},
		{"a * b / c % d", bin(ast.Mod, bin(ast.Div, bin(ast.Mul, ident("a"), ident("b")), ident("c")), ident("d"))},
		{"a || b || c", bin(ast.Or, bin(ast.Or, ident("a"), ident("b")), ident("c"))},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParseExpr(t, tt.source), tt.source)
	}
}

func TestAssociativity(t *testing.T) {
	assert.Equal(t,
		bin(ast.Sub, bin(ast.Sub, num(10), num(5)), num(2)),
		mustParseExpr(t, "10 - 5 - 2"))
	assert.Equal(t,
		bin(ast.Pow, num(2), bin(ast.Pow, num(3), num(2))),
		mustParseExpr(t, "2 ** 3 ** 2"))
	assert.Equal(t,
		bin(ast.Pow, num(2), bin(ast.Pow, num(3), num(2))),
		mustParseExpr(t, "2 ^ 3 ^ 2"))
	assert.Equal(t,
		bin(ast.Pow, num(2), bin(ast.Pow, num(3), num(2))),
		mustParseExpr(t, "2 ^ 3 ** 2"))
}

func TestGrouping(t *testing.T) {
	assert.Equal(t,
		bin(ast.Mul, &ast.Group{Inner: bin(ast.Add, num(1), num(2))}, num(3)),
		mustParseExpr(t, "(1 + 2) * 3"))
	assert.Equal(t, &ast.Group{Inner: &ast.Group{Inner: ident("x")}}, mustParseExpr(t, "((x))"))
}

func TestUnary(t *testing.T) {
	tests := []struct {
		source string
		want   ast.Expr
	}{
		{"!x", &ast.Unary{Op: ast.Not, Operand: ident("x")}},
		{"!!x", &ast.Unary{Op: ast.Not, Operand: &ast.Unary{Op: ast.Not, Operand: ident("x")}}},
		{"- -x", &ast.Unary{Op: ast.Neg, Operand: &ast.Unary{Op: ast.Neg, Operand: ident("x")}}},
		{"--x", &ast.PreDecrement{Operand: ident("x")}},
		{"++x", &ast.PreIncrement{Operand: ident("x")}},
		{"++a.b", &ast.PreIncrement{Operand: &ast.Member{Object: ident("a"), Property: "b"}}},
		{"-x * y", bin(ast.Mul, &ast.Unary{Op: ast.Neg, Operand: ident("x")}, ident("y"))},
		{"-2 ** 2", bin(ast.Pow, &ast.Unary{Op: ast.Neg, Operand: num(2)}, num(2))},
		{"!a && b", bin(ast.And, &ast.Unary{Op: ast.Not, Operand: ident("a")}, ident("b"))},
		{"-x++", &ast.Unary{Op: ast.Neg, Operand: &ast.PostIncrement{Operand: ident("x")}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParseExpr(t, tt.source), tt.source)
	}

	// Prefix increments take a postfix operand, not a unary one.
	_, err := ParseExpr("++!x")
	require.Error(t, err)
	assert.Equal(t, "expression", err.(*errors.Error).Expected)
}

func TestPostfixChain(t *testing.T) {
	tests := []struct {
		source string
		want   ast.Expr
	}{
		{"f()", &ast.Call{Callee: ident("f")}},
		{"f(1, x)", &ast.Call{Callee: ident("f"), Args: []ast.Expr{num(1), ident("x")}}},
		{"a.b[0]()", &ast.Call{Callee: &ast.Index{Object: &ast.Member{Object: ident("a"), Property: "b"}, Index: num(0)}}},
		{"f()()", &ast.Call{Callee: &ast.Call{Callee: ident("f")}}},
		{"x++", &ast.PostIncrement{Operand: ident("x")}},
		{"x--", &ast.PostDecrement{Operand: ident("x")}},
		{"a[i]++", &ast.PostIncrement{Operand: &ast.Index{Object: ident("a"), Index: ident("i")}}},
		{"m[1][2]", &ast.Index{Object: &ast.Index{Object: ident("m"), Index: num(1)}, Index: num(2)}},
		{"(a).b", &ast.Member{Object: &ast.Group{Inner: ident("a")}, Property: "b"}},
		{"[1][0]", &ast.Index{Object: &ast.Array{Elements: []ast.Expr{num(1)}}, Index: num(0)}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParseExpr(t, tt.source), tt.source)
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   ast.Value
	}{
		{"42", ast.Int(42)},
		{"0", ast.Int(0)},
		{"9223372036854775807", ast.Int(9223372036854775807)},
		{"3.25", ast.Float(3.25)},
		{"true", ast.Bool(true)},
		{"false", ast.Bool(false)},
		{"null", ast.Null{}},
		{`"hello"`, ast.Str("hello")},
		{`""`, ast.Str("")},
		{`"say \"hi\""`, ast.Str(`say "hi"`)},
	}
	for _, tt := range tests {
		assert.Equal(t, &ast.Literal{Value: tt.want}, mustParseExpr(t, tt.source), tt.source)
	}
}

func TestArrays(t *testing.T) {
	assert.Equal(t, &ast.Array{}, mustParseExpr(t, "[]"))
	assert.Equal(t,
		&ast.Array{Elements: []ast.Expr{num(1), &ast.Array{Elements: []ast.Expr{num(2)}}}},
		mustParseExpr(t, "[1, [2]]"))
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		source string
		want   ast.Expr
	}{
		{"x = 1", &ast.Assignment{Target: ident("x"), Value: num(1)}},
		{"x = y = 1", &ast.Assignment{Target: ident("x"), Value: &ast.Assignment{Target: ident("y"), Value: num(1)}}},
		{"a.b = c + 1", &ast.Assignment{
			Target: &ast.Member{Object: ident("a"), Property: "b"},
			Value:  bin(ast.Add, ident("c"), num(1)),
		}},
		{"x += 2", &ast.CompoundAssignment{Target: ident("x"), Op: ast.Add, Value: num(2)}},
		{"x ^= 2", &ast.CompoundAssignment{Target: ident("x"), Op: ast.Pow, Value: num(2)}},
		{"x **= 2", &ast.CompoundAssignment{Target: ident("x"), Op: ast.Pow, Value: num(2)}},
		{"x <<= y -= 1", &ast.CompoundAssignment{
			Target: ident("x"),
			Op:     ast.Shl,
			Value:  &ast.CompoundAssignment{Target: ident("y"), Op: ast.Sub, Value: num(1)},
		}},
		// Targets are not restricted at parse time.
		{"1 + 2 = 3", &ast.Assignment{Target: bin(ast.Add, num(1), num(2)), Value: num(3)}},
		{"f() = 3", &ast.Assignment{Target: &ast.Call{Callee: ident("f")}, Value: num(3)}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParseExpr(t, tt.source), tt.source)
	}
}

func TestCompoundOperators(t *testing.T) {
	ops := map[string]ast.BinaryOp{
		"+=": ast.Add, "-=": ast.Sub, "*=": ast.Mul, "/=": ast.Div, "%=": ast.Mod,
		"&=": ast.BitAnd, "|=": ast.BitOr, "<<=": ast.Shl, ">>=": ast.Shr,
	}
	for text, op := range ops {
		want := &ast.CompoundAssignment{Target: ident("x"), Op: op, Value: num(1)}
		assert.Equal(t, want, mustParseExpr(t, "x "+text+" 1"), text)
	}
}

func nestedParens(n int) string {
	return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
}

func TestRecursionCeiling(t *testing.T) {
	for _, n := range []int{1, 5, 50} {
		_, err := ParseExpr(nestedParens(n), WithMaxDepth(n))
		assert.NoError(t, err, "depth %d", n)

		_, err = ParseExpr(nestedParens(n+1), WithMaxDepth(n))
		require.Error(t, err, "depth %d", n+1)
		perr := err.(*errors.Error)
		assert.Equal(t, errors.TooMuchRecursion, perr.Kind)
		assert.Equal(t, n, perr.MaxDepth)
	}
}

func TestRecursionError(t *testing.T) {
	_, err := ParseExpr("((((1))))", WithMaxDepth(3))
	require.Error(t, err)
	perr := err.(*errors.Error)
	assert.Equal(t, 4, perr.Position)
	assert.Equal(t, errors.E1009, perr.Code)
	assert.Equal(t, "maximum recursion depth (3) exceeded at position 4", perr.Error())
	assert.Equal(t, 1, perr.Context.Line)
	assert.Equal(t, 5, perr.Context.ColumnStart)
}

func TestRecursionDefaultLimit(t *testing.T) {
	_, err := ParseExpr(nestedParens(DefaultMaxDepth))
	assert.NoError(t, err)

	_, err = ParseExpr(nestedParens(DefaultMaxDepth + 1))
	require.Error(t, err)
	assert.Equal(t, errors.TooMuchRecursion, err.(*errors.Error).Kind)
}

func TestRecursionOtherConstructs(t *testing.T) {
	sources := []string{
		strings.Repeat("!", 10) + "x;",
		strings.Repeat("[", 10) + strings.Repeat("]", 10) + ";",
		strings.Repeat("f(", 10) + strings.Repeat(")", 10) + ";",
		strings.Repeat("a[", 10) + "0" + strings.Repeat("]", 10) + ";",
		strings.Repeat("{", 10) + strings.Repeat("}", 10),
		strings.Repeat("x = ", 10) + "1;",
		strings.Repeat("1 ** ", 10) + "1;",
		strings.Repeat("export ", 10) + "let x = 1;",
		"if a {} " + strings.Repeat("else if a {} ", 10),
	}
	for _, source := range sources {
		err := parseError(t, source, WithMaxDepth(3))
		assert.Equal(t, errors.TooMuchRecursion, err.Kind, source)
		mustParse(t, source)
	}
}

func TestDepthResetBetweenSiblings(t *testing.T) {
	// Each sibling reaches depth 3; the counter must unwind between them.
	source := strings.Repeat(nestedParens(3)+";\n", 20)
	mustParse(t, source, WithMaxDepth(3))

	_, err := ParseExpr("f("+strings.Repeat(nestedParens(2)+", ", 20)+")", WithMaxDepth(3))
	assert.NoError(t, err)
}
