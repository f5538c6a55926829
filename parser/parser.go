// Package parser builds the abstract syntax tree (AST) for qbit source code.
//
// Parse, ParseExpr and ParseStmt are the usual entry points. Each call lexes
// the whole source up front and then parses it by recursive descent, using
// precedence climbing for binary operators. Parsing stops at the first
// error, which is always an *errors.Error.
package parser

import (
	"github.com/qbit-lang/qbit/analyzer"
	"github.com/qbit-lang/qbit/ast"
	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/internal/lexer"
	"github.com/qbit-lang/qbit/token"
)

// Result is the outcome of a successful Parse.
type Result struct {
	// Statements holds the top-level statements in source order.
	Statements []ast.Stmt

	// Diagnostics holds the warnings below in their flat form.
	Diagnostics []errors.Diagnostic

	// Warnings holds lint warnings for the parsed statements.
	Warnings []*errors.Warning

	// Positions records name spans for declarations in Statements.
	Positions *ast.Positions
}

// Program wraps the statements in an ast.Program.
func (r *Result) Program() *ast.Program {
	return &ast.Program{Statements: r.Statements}
}

// Parser holds the state of a single parse. A parser is created by New and
// then used once.
type Parser struct {
	source string
	config Config

	// tokens holds the non-trivia tokens of the source.
	tokens []token.Token
	pos    int

	// eof is the offset reported for errors at end of input: the end of the
	// last token, comments included.
	eof int

	// Current recursion depth
	depth int

	positions *ast.Positions
}

// New lexes source and returns a Parser for it. Lexing errors are returned
// here, before any parsing happens.
func New(source string, options ...Option) (*Parser, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		source:    source,
		config:    buildConfig(options),
		positions: ast.NewPositions(),
	}
	if len(tokens) > 0 {
		p.eof = tokens[len(tokens)-1].Span.End
	}
	p.tokens = make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsTrivia() {
			p.tokens = append(p.tokens, tok)
		}
	}
	return p, nil
}

// Config returns the configuration the parser was built with.
func (p *Parser) Config() Config {
	return p.config
}

// Parse the provided input as qbit source code. On success the result
// carries the statements along with any lint warnings.
func Parse(source string, options ...Option) (*Result, error) {
	p, err := New(source, options...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseExpr parses source as a single expression. Tokens left over after
// the expression are an error.
func ParseExpr(source string, options ...Option) (ast.Expr, error) {
	p, err := New(source, options...)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.unexpected("end of input")
	}
	return expr, nil
}

// ParseStmt parses the first statement in source. Anything after it is
// ignored.
func ParseStmt(source string, options ...Option) (ast.Stmt, error) {
	p, err := New(source, options...)
	if err != nil {
		return nil, err
	}
	return p.parseStatement()
}

// Parse parses all statements until the end of input.
func (p *Parser) Parse() (*Result, error) {
	lint := analyzer.New(p.source, p.positions)
	var statements []ast.Stmt
	for !p.atEnd() {
		span := p.cur().Span
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		lint.Analyze(stmt, span)
		statements = append(statements, stmt)
	}
	warnings := lint.Diagnostics()
	diagnostics := make([]errors.Diagnostic, 0, len(warnings))
	for _, w := range warnings {
		diagnostics = append(diagnostics, errors.DiagnosticFromWarning(w))
	}
	return &Result{
		Statements:  statements,
		Diagnostics: diagnostics,
		Warnings:    warnings,
		Positions:   p.positions,
	}, nil
}

// cur returns the current token, or an EOF token once the input is used up.
func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Type: token.EOF, Span: token.Span{Start: p.eof, End: p.eof}}
}

// peek returns the token after the current one.
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return token.Token{Type: token.EOF, Span: token.Span{Start: p.eof, End: p.eof}}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(typ token.Type) bool {
	return !p.atEnd() && p.tokens[p.pos].Type == typ
}

// match consumes the current token if it has the given type.
func (p *Parser) match(typ token.Type) bool {
	if p.check(typ) {
		p.pos++
		return true
	}
	return false
}

// expect consumes a token of the given type or fails, naming what was
// expected.
func (p *Parser) expect(typ token.Type, expected string) (token.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(expected)
}

// unexpected reports the current token as not matching expected.
func (p *Parser) unexpected(expected string) *errors.Error {
	if p.atEnd() {
		return errors.NewUnexpectedEOF(p.source, expected, p.eof)
	}
	tok := p.cur()
	return errors.NewUnexpectedToken(p.source, expected, tok.Describe(), tok.Span)
}

// guard runs fn one nesting level deeper, failing once the configured
// maximum depth is exceeded.
func guard[T any](p *Parser, fn func() (T, error)) (T, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.config.MaxRecursionDepth {
		var zero T
		return zero, errors.NewTooMuchRecursion(p.source, p.config.MaxRecursionDepth, p.cur().Span.Start)
	}
	return fn()
}
