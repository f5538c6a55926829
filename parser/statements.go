package parser

import (
	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur().Type {
	case token.LET:
		return p.parseLet()
	case token.CONST:
		return p.parseConst()
	case token.FN:
		return p.parseFunc()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		p.advance()
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return &ast.Break{}, nil
	case token.CONTINUE:
		p.advance()
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return &ast.Continue{}, nil
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	case token.IMPORT:
		return p.parseImport()
	case token.EXPORT:
		return p.parseExport()
	}
	return p.parseExpressionStatement()
}

// nestedStatement parses a statement that appears inside another one.
func (p *Parser) nestedStatement() (ast.Stmt, error) {
	return guard(p, p.parseStatement)
}

// parseBinding parses the "name = value;" tail shared by let and const.
func (p *Parser) parseBinding() (token.Token, ast.Expr, error) {
	name, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return token.Token{}, nil, err
	}
	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return token.Token{}, nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return token.Token{}, nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return token.Token{}, nil, err
	}
	return name, value, nil
}

func (p *Parser) parseLet() (ast.Stmt, error) {
	p.advance()
	name, value, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Let{Name: name.Literal, Value: value}
	p.positions.SetName(stmt, name.Span)
	return stmt, nil
}

func (p *Parser) parseConst() (ast.Stmt, error) {
	p.advance()
	name, value, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Const{Name: name.Literal, Value: value}
	p.positions.SetName(stmt, name.Span)
	return stmt, nil
}

func (p *Parser) parseFunc() (ast.Stmt, error) {
	p.advance()
	name, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	idents, err := parseList(p, token.RPAREN, ")", func() (token.Token, error) {
		return p.expect(token.IDENT, "parameter name")
	})
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var params []string
	var spans []token.Span
	for _, ident := range idents {
		params = append(params, ident.Literal)
		spans = append(spans, ident.Span)
	}
	stmt := &ast.Function{Name: name.Literal, Params: params, Body: body}
	p.positions.SetName(stmt, name.Span)
	p.positions.SetParams(stmt, spans)
	return stmt, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Condition: cond, Then: then}
	if !p.match(token.ELSE) {
		return stmt, nil
	}
	if p.check(token.IF) {
		stmt.Else, err = guard(p, p.parseIf)
	} else {
		stmt.Else, err = p.parseBlock()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	stmt := &ast.For{}
	var err error
	if !p.match(token.SEMICOLON) {
		// The init statement brings its own terminator.
		if stmt.Init, err = p.nestedStatement(); err != nil {
			return nil, err
		}
	}
	if !p.check(token.SEMICOLON) {
		if stmt.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	if !p.check(token.RPAREN) {
		if stmt.Update, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.advance()
	stmt := &ast.Return{}
	if !p.check(token.SEMICOLON) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	block := &ast.Block{}
	for !p.check(token.RBRACE) {
		if p.atEnd() {
			return nil, p.unexpected("}")
		}
		stmt, err := p.nestedStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.advance()
	return block, nil
}

func (p *Parser) parseImport() (ast.Stmt, error) {
	p.advance()
	var module token.Token
	switch {
	case p.check(token.STRING), p.check(token.IDENT):
		module = p.advance()
	default:
		return nil, p.unexpected("module name")
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &ast.Import{Module: module.Literal}, nil
}

func (p *Parser) parseExport() (ast.Stmt, error) {
	p.advance()
	stmt, err := p.nestedStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Export{Statement: stmt}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}
