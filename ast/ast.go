// Package ast defines the abstract syntax tree representation of qbit code.
//
// Nodes carry no source positions, so trees parsed from differently
// formatted source compare equal. Name positions needed for diagnostics are
// kept beside the tree in Positions.
package ast

import (
	"strings"

	"github.com/qbit-lang/qbit/token"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns canonical source text for the node. Parsing the result
	// yields a tree equal to the node.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node holding the statements of one source file.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// Positions records where the names bound by Let, Const and Function
// statements, and the parameters of functions, appear in the source. It is
// filled in by the parser and kept beside the tree so that node equality is
// unaffected.
type Positions struct {
	names  map[Stmt]token.Span
	params map[*Function][]token.Span
}

// NewPositions returns an empty position table.
func NewPositions() *Positions {
	return &Positions{
		names:  map[Stmt]token.Span{},
		params: map[*Function][]token.Span{},
	}
}

// SetName records the span of the name bound by stmt.
func (p *Positions) SetName(stmt Stmt, span token.Span) {
	p.names[stmt] = span
}

// NameSpan returns the recorded name span of stmt.
func (p *Positions) NameSpan(stmt Stmt) (token.Span, bool) {
	if p == nil {
		return token.Span{}, false
	}
	span, ok := p.names[stmt]
	return span, ok
}

// SetParams records the spans of the parameter names of fn, in order.
func (p *Positions) SetParams(fn *Function, spans []token.Span) {
	p.params[fn] = spans
}

// ParamSpan returns the span of the i-th parameter name of fn.
func (p *Positions) ParamSpan(fn *Function, i int) (token.Span, bool) {
	if p == nil {
		return token.Span{}, false
	}
	spans := p.params[fn]
	if i < 0 || i >= len(spans) {
		return token.Span{}, false
	}
	return spans[i], true
}
