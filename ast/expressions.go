package ast

import (
	"bytes"
	"strings"
)

// Literal is a constant value such as 42, 1.5, true, "hi" or null.
type Literal struct {
	Value Value
}

func (x *Literal) exprNode() {}

func (x *Literal) String() string { return x.Value.literal() }

// Variable refers to a binding by name.
type Variable struct {
	Name string
}

func (x *Variable) exprNode() {}

func (x *Variable) String() string { return x.Name }

// Binary is an infix operator expression such as "x + y".
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (x *Binary) exprNode() {}

// String prints the operands without parentheses. Explicit grouping in the
// source is kept as Group nodes, so the printed text parses back to the
// same tree.
func (x *Binary) String() string {
	var out bytes.Buffer
	out.WriteString(x.Left.String())
	out.WriteString(" " + x.Op.String() + " ")
	out.WriteString(x.Right.String())
	return out.String()
}

// Unary is a prefix operator expression such as "!ok" or "-x".
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (x *Unary) exprNode() {}

func (x *Unary) String() string {
	operand := x.Operand.String()
	// "- -x" must not print as the decrement "--x".
	if x.Op == Neg && strings.HasPrefix(operand, "-") {
		return "- " + operand
	}
	return x.Op.String() + operand
}

// Group is a parenthesized expression.
type Group struct {
	Inner Expr
}

func (x *Group) exprNode() {}

func (x *Group) String() string { return "(" + x.Inner.String() + ")" }

// Call is a function invocation.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (x *Call) exprNode() {}

func (x *Call) String() string {
	var out bytes.Buffer
	out.WriteString(x.Callee.String())
	out.WriteString("(")
	out.WriteString(joinExprs(x.Args))
	out.WriteString(")")
	return out.String()
}

// Member is a property access such as "obj.name".
type Member struct {
	Object   Expr
	Property string
}

func (x *Member) exprNode() {}

func (x *Member) String() string { return x.Object.String() + "." + x.Property }

// Index is a subscript such as "arr[0]".
type Index struct {
	Object Expr
	Index  Expr
}

func (x *Index) exprNode() {}

func (x *Index) String() string {
	var out bytes.Buffer
	out.WriteString(x.Object.String())
	out.WriteString("[")
	out.WriteString(x.Index.String())
	out.WriteString("]")
	return out.String()
}

// Array is an array literal such as "[1, 2, 3]".
type Array struct {
	Elements []Expr
}

func (x *Array) exprNode() {}

func (x *Array) String() string { return "[" + joinExprs(x.Elements) + "]" }

// Assignment is "target = value". Any expression may be the target; the
// parser does not restrict it to names.
type Assignment struct {
	Target Expr
	Value  Expr
}

func (x *Assignment) exprNode() {}

func (x *Assignment) String() string {
	return x.Target.String() + " = " + x.Value.String()
}

// CompoundAssignment is an operator assignment such as "x += 1".
type CompoundAssignment struct {
	Target Expr
	Op     BinaryOp
	Value  Expr
}

func (x *CompoundAssignment) exprNode() {}

func (x *CompoundAssignment) String() string {
	return x.Target.String() + " " + x.Op.String() + "= " + x.Value.String()
}

// PreIncrement is "++x".
type PreIncrement struct {
	Operand Expr
}

func (x *PreIncrement) exprNode() {}

func (x *PreIncrement) String() string { return "++" + x.Operand.String() }

// PostIncrement is "x++".
type PostIncrement struct {
	Operand Expr
}

func (x *PostIncrement) exprNode() {}

func (x *PostIncrement) String() string { return x.Operand.String() + "++" }

// PreDecrement is "--x".
type PreDecrement struct {
	Operand Expr
}

func (x *PreDecrement) exprNode() {}

func (x *PreDecrement) String() string { return "--" + x.Operand.String() }

// PostDecrement is "x--".
type PostDecrement struct {
	Operand Expr
}

func (x *PostDecrement) exprNode() {}

func (x *PostDecrement) String() string { return x.Operand.String() + "--" }

func joinExprs(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}
