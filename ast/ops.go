package ast

import "github.com/qbit-lang/qbit/token"

// BinaryOp is an infix operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Eq
	Neq
	Lt
	Le
	Gt
	Ge
	And
	Or
	BitAnd
	BitOr
	Shl
	Shr
)

var binaryOpSymbols = [...]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Mod:    "%",
	Pow:    "**",
	Eq:     "==",
	Neq:    "!=",
	Lt:     "<",
	Le:     "<=",
	Gt:     ">",
	Ge:     ">=",
	And:    "&&",
	Or:     "||",
	BitAnd: "&",
	BitOr:  "|",
	Shl:    "<<",
	Shr:    ">>",
}

// String returns the canonical symbol of the operator.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return "?"
	}
	return binaryOpSymbols[op]
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter.
func (op BinaryOp) Precedence() int {
	switch op {
	case Or:
		return 1
	case And:
		return 2
	case BitOr:
		return 3
	case BitAnd:
		return 4
	case Eq, Neq:
		return 5
	case Lt, Le, Gt, Ge:
		return 6
	case Shl, Shr:
		return 7
	case Add, Sub:
		return 8
	case Mul, Div, Mod:
		return 9
	case Pow:
		return 10
	}
	return 0
}

// RightAssociative reports whether a chain of this operator groups to the
// right. Only exponentiation does.
func (op BinaryOp) RightAssociative() bool {
	return op == Pow
}

var binaryOpTokens = map[token.Type]BinaryOp{
	token.PLUS:      Add,
	token.MINUS:     Sub,
	token.ASTERISK:  Mul,
	token.SLASH:     Div,
	token.MOD:       Mod,
	token.POW:       Pow,
	token.CARET:     Pow,
	token.EQ:        Eq,
	token.NOT_EQ:    Neq,
	token.LT:        Lt,
	token.LT_EQUALS: Le,
	token.GT:        Gt,
	token.GT_EQUALS: Ge,
	token.AND:       And,
	token.OR:        Or,
	token.AMPERSAND: BitAnd,
	token.BITOR:     BitOr,
	token.LT_LT:     Shl,
	token.GT_GT:     Shr,
}

// BinaryOpFromToken returns the infix operator for a token type.
func BinaryOpFromToken(t token.Type) (BinaryOp, bool) {
	op, ok := binaryOpTokens[t]
	return op, ok
}

var compoundOpTokens = map[token.Type]BinaryOp{
	token.PLUS_EQUALS:      Add,
	token.MINUS_EQUALS:     Sub,
	token.ASTERISK_EQUALS:  Mul,
	token.SLASH_EQUALS:     Div,
	token.MOD_EQUALS:       Mod,
	token.CARET_EQUALS:     Pow,
	token.POW_EQUALS:       Pow,
	token.AMPERSAND_EQUALS: BitAnd,
	token.BITOR_EQUALS:     BitOr,
	token.LT_LT_EQUALS:     Shl,
	token.GT_GT_EQUALS:     Shr,
}

// CompoundOpFromToken returns the operator applied by a compound assignment
// token such as "+=".
func CompoundOpFromToken(t token.Type) (BinaryOp, bool) {
	op, ok := compoundOpTokens[t]
	return op, ok
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	Not UnaryOp = iota
	Neg
)

func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	case Neg:
		return "-"
	}
	return "?"
}

// Precedence is higher than that of any binary operator.
func (op UnaryOp) Precedence() int {
	return 15
}

// UnaryOpFromToken returns the prefix operator for a token type.
func UnaryOpFromToken(t token.Type) (UnaryOp, bool) {
	switch t {
	case token.BANG:
		return Not, true
	case token.MINUS:
		return Neg, true
	}
	return 0, false
}
