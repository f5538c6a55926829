// Package lexer converts qbit source text into tokens.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/qbit-lang/qbit/errors"
	"github.com/qbit-lang/qbit/token"
)

// Lexer produces tokens from a source string one at a time. Whitespace is
// skipped; comments are returned as trivia tokens.
type Lexer struct {
	input string
	pos   int // offset of the next unread byte
}

// New returns a lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize lexes the whole input. On the first byte sequence that is not a
// valid token it stops and returns a BuildError, with no partial result.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token. At the end of input it returns an EOF token
// with an empty span at the end of the source.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return l.token(token.EOF, l.pos, ""), nil
	}
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == '/' && l.peek() == '/':
		return l.readLineComment(), nil
	case ch == '/' && l.peek() == '*':
		return l.readBlockComment()
	case ch == '"':
		return l.readString()
	case isDigit(ch):
		return l.readNumber()
	case isLetter(ch):
		ident := l.readIdentifier()
		return l.token(token.LookupIdentifier(ident), start, ident), nil
	}
	rest := l.input[l.pos:]
	for _, op := range token.Operators {
		if strings.HasPrefix(rest, string(op)) {
			l.pos += len(op)
			return l.token(op, start, string(op)), nil
		}
	}
	_, width := utf8.DecodeRuneInString(rest)
	l.pos += width
	return token.Token{}, l.buildError("invalid token", start)
}

func (l *Lexer) token(typ token.Type, start int, literal string) token.Token {
	return token.Token{
		Type:    typ,
		Literal: literal,
		Span:    token.Span{Start: start, End: l.pos},
	}
}

// buildError reports the bytes from start up to the current position.
func (l *Lexer) buildError(message string, start int) *errors.Error {
	span := token.Span{Start: start, End: l.pos}
	return errors.NewBuildError(l.input, message, l.input[start:l.pos], span)
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) readLineComment() token.Token {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '\n' && l.input[l.pos] != '\r' {
		l.pos++
	}
	return l.token(token.LINE_COMMENT, start, l.input[start:l.pos])
}

func (l *Lexer) readBlockComment() (token.Token, error) {
	start := l.pos
	end := strings.Index(l.input[start+2:], "*/")
	if end < 0 {
		l.pos = len(l.input)
		return token.Token{}, l.buildError("unterminated block comment", start)
	}
	l.pos = start + 2 + end + 2
	return l.token(token.BLOCK_COMMENT, start, l.input[start:l.pos]), nil
}

// readString reads a double quoted string. A backslash escapes the byte
// after it; only \" is unescaped, other escapes are kept verbatim.
func (l *Lexer) readString() (token.Token, error) {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.input) {
			return token.Token{}, l.buildError("unterminated string", start)
		}
		ch := l.input[l.pos]
		switch ch {
		case '"':
			l.pos++
			return l.token(token.STRING, start, b.String()), nil
		case '\\':
			if l.pos+1 >= len(l.input) {
				l.pos = len(l.input)
				return token.Token{}, l.buildError("unterminated string", start)
			}
			next := l.input[l.pos+1]
			if next != '"' {
				b.WriteByte(ch)
			}
			b.WriteByte(next)
			l.pos += 2
		default:
			b.WriteByte(ch)
			l.pos++
		}
	}
}

// readNumber reads an integer, or a float when the digits are followed by a
// period and at least one more digit.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos
	l.skipDigits()
	if l.pos < len(l.input) && l.input[l.pos] == '.' && isDigit(l.peek()) {
		l.pos++
		l.skipDigits()
		literal := l.input[start:l.pos]
		if _, err := strconv.ParseFloat(literal, 64); err != nil {
			return token.Token{}, l.buildError("float literal out of range", start)
		}
		return l.token(token.FLOAT, start, literal), nil
	}
	literal := l.input[start:l.pos]
	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		return token.Token{}, l.buildError("integer literal out of range", start)
	}
	return l.token(token.INT, start, literal), nil
}

func (l *Lexer) skipDigits() {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
