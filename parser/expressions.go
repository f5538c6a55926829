package parser

import (
	"strconv"

	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/token"
)

// parseExpression parses a full expression, assignments included.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	tok := p.cur()
	if tok.Type == token.ASSIGN {
		p.advance()
		value, err := guard(p, p.parseExpression)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: left, Value: value}, nil
	}
	if op, ok := ast.CompoundOpFromToken(tok.Type); ok {
		p.advance()
		value, err := guard(p, p.parseExpression)
		if err != nil {
			return nil, err
		}
		return &ast.CompoundAssignment{Target: left, Op: op, Value: value}, nil
	}
	return left, nil
}

// parseBinary implements precedence climbing. Operators binding tighter than
// minPrec are folded into the left operand.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ast.BinaryOpFromToken(p.cur().Type)
		if !ok || op.Precedence() < minPrec {
			return left, nil
		}
		p.advance()
		next := op.Precedence() + 1
		if op.RightAssociative() {
			next = op.Precedence()
		}
		right, err := guard(p, func() (ast.Expr, error) {
			return p.parseBinary(next)
		})
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.cur()
	if op, ok := ast.UnaryOpFromToken(tok.Type); ok {
		p.advance()
		operand, err := guard(p, p.parseUnary)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	switch tok.Type {
	case token.PLUS_PLUS:
		p.advance()
		operand, err := guard(p, p.parsePostfix)
		if err != nil {
			return nil, err
		}
		return &ast.PreIncrement{Operand: operand}, nil
	case token.MINUS_MINUS:
		p.advance()
		operand, err := guard(p, p.parsePostfix)
		if err != nil {
			return nil, err
		}
		return &ast.PreDecrement{Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any chain of increments,
// decrements, index, member and call suffixes.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case token.PLUS_PLUS:
			p.advance()
			expr = &ast.PostIncrement{Operand: expr}
		case token.MINUS_MINUS:
			p.advance()
			expr = &ast.PostDecrement{Operand: expr}
		case token.LBRACKET:
			p.advance()
			index, err := guard(p, p.parseExpression)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET, "]"); err != nil {
				return nil, err
			}
			expr = &ast.Index{Object: expr, Index: index}
		case token.PERIOD:
			p.advance()
			if !p.check(token.IDENT) {
				return nil, p.missingProperty()
			}
			expr = &ast.Member{Object: expr, Property: p.advance().Literal}
		case token.LPAREN:
			p.advance()
			args, err := parseList(p, token.RPAREN, ")", func() (ast.Expr, error) {
				return guard(p, p.parseExpression)
			})
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) missingProperty() *errors.Error {
	return errors.NewMissingToken(p.source, "property name", p.cur().Span)
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.INT:
		p.advance()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errors.NewBuildError(p.source, "integer literal out of range", tok.Literal, tok.Span)
		}
		return &ast.Literal{Value: ast.Int(value)}, nil
	case token.FLOAT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errors.NewBuildError(p.source, "float literal out of range", tok.Literal, tok.Span)
		}
		return &ast.Literal{Value: ast.Float(value)}, nil
	case token.TRUE:
		p.advance()
		return &ast.Literal{Value: ast.Bool(true)}, nil
	case token.FALSE:
		p.advance()
		return &ast.Literal{Value: ast.Bool(false)}, nil
	case token.NULL:
		p.advance()
		return &ast.Literal{Value: ast.Null{}}, nil
	case token.STRING:
		p.advance()
		return &ast.Literal{Value: ast.Str(tok.Literal)}, nil
	case token.IDENT:
		p.advance()
		return &ast.Variable{Name: tok.Literal}, nil
	case token.LPAREN:
		p.advance()
		inner, err := guard(p, p.parseExpression)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	case token.LBRACKET:
		p.advance()
		elements, err := parseList(p, token.RBRACKET, "]", func() (ast.Expr, error) {
			return guard(p, p.parseExpression)
		})
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elements: elements}, nil
	}
	return nil, p.unexpected("expression")
}

// parseList parses comma separated items up to and including the closing
// token. The opening token has already been consumed.
func parseList[T any](p *Parser, closer token.Type, closerText string, item func() (T, error)) ([]T, error) {
	var items []T
	if p.match(closer) {
		return items, nil
	}
	separator := "',' or '" + closerText + "'"
	for {
		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		if p.match(closer) {
			return items, nil
		}
		if p.atEnd() {
			return nil, errors.NewUnexpectedEOF(p.source, separator, p.eof)
		}
		if !p.check(token.COMMA) {
			return nil, errors.NewMissingToken(p.source, separator, p.cur().Span)
		}
		comma := p.advance()
		if p.check(closer) {
			if !p.config.AllowTrailingCommas {
				return nil, errors.NewInvalidSyntax(p.source, "trailing comma not allowed before '"+closerText+"'", comma.Span)
			}
			p.advance()
			return items, nil
		}
	}
}
