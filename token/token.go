// Package token defines language keywords and tokens used when lexing source code.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Span is a half-open byte range [Start, End) into the original source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token represents one token lexed from the input source code.
// Literal is the token text. For strings this is the unescaped content and
// for comments the full comment text.
type Token struct {
	Type    Type
	Literal string
	Span    Span
}

// IsTrivia returns true for tokens that carry position information but are
// skipped by the grammar.
func (t Token) IsTrivia() bool {
	return t.Type == LINE_COMMENT || t.Type == BLOCK_COMMENT
}

// Describe returns a short human friendly description of the token, used in
// error messages.
func (t Token) Describe() string {
	switch t.Type {
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	case INT:
		return fmt.Sprintf("integer %s", t.Literal)
	case FLOAT:
		return fmt.Sprintf("float %s", t.Literal)
	case STRING:
		return fmt.Sprintf("string %q", t.Literal)
	case LINE_COMMENT, BLOCK_COMMENT:
		return "comment"
	case EOF:
		return "end of input"
	default:
		return fmt.Sprintf("'%s'", t.Type)
	}
}

// Token types
const (
	AND              Type = "&&"
	AMPERSAND        Type = "&"
	AMPERSAND_EQUALS Type = "&="
	ASSIGN           Type = "="
	ASTERISK         Type = "*"
	ASTERISK_EQUALS  Type = "*="
	BANG             Type = "!"
	BITOR            Type = "|"
	BITOR_EQUALS     Type = "|="
	BLOCK_COMMENT    Type = "BLOCK_COMMENT"
	BREAK            Type = "break"
	CARET            Type = "^"
	CARET_EQUALS     Type = "^="
	COLON            Type = ":"
	COMMA            Type = ","
	CONST            Type = "const"
	CONTINUE         Type = "continue"
	ELSE             Type = "else"
	EOF              Type = "EOF"
	EQ               Type = "=="
	EXPORT           Type = "export"
	FALSE            Type = "false"
	FLOAT            Type = "FLOAT"
	FN               Type = "fn"
	FOR              Type = "for"
	GT               Type = ">"
	GT_EQUALS        Type = ">="
	GT_GT            Type = ">>"
	GT_GT_EQUALS     Type = ">>="
	IDENT            Type = "IDENT"
	IF               Type = "if"
	IMPORT           Type = "import"
	INT              Type = "INT"
	LBRACE           Type = "{"
	LBRACKET         Type = "["
	LET              Type = "let"
	LINE_COMMENT     Type = "LINE_COMMENT"
	LPAREN           Type = "("
	LT               Type = "<"
	LT_EQUALS        Type = "<="
	LT_LT            Type = "<<"
	LT_LT_EQUALS     Type = "<<="
	MINUS            Type = "-"
	MINUS_EQUALS     Type = "-="
	MINUS_MINUS      Type = "--"
	MOD              Type = "%"
	MOD_EQUALS       Type = "%="
	NOT_EQ           Type = "!="
	NULL             Type = "null"
	OR               Type = "||"
	PERIOD           Type = "."
	PLUS             Type = "+"
	PLUS_EQUALS      Type = "+="
	PLUS_PLUS        Type = "++"
	POW              Type = "**"
	POW_EQUALS       Type = "**="
	RBRACE           Type = "}"
	RBRACKET         Type = "]"
	RETURN           Type = "return"
	RPAREN           Type = ")"
	SEMICOLON        Type = ";"
	SLASH            Type = "/"
	SLASH_EQUALS     Type = "/="
	STRING           Type = "STRING"
	TRUE             Type = "true"
	WHILE            Type = "while"
)

// Reserved keywords
var keywords = map[string]Type{
	"break":    BREAK,
	"const":    CONST,
	"continue": CONTINUE,
	"else":     ELSE,
	"export":   EXPORT,
	"false":    FALSE,
	"fn":       FN,
	"for":      FOR,
	"if":       IF,
	"import":   IMPORT,
	"let":      LET,
	"null":     NULL,
	"return":   RETURN,
	"true":     TRUE,
	"while":    WHILE,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words of the language in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}

// Operators lists the operator and punctuation tokens, longest first, so that
// a lexer matching them in order implements maximal munch.
var Operators = []Type{
	GT_GT_EQUALS, LT_LT_EQUALS, POW_EQUALS,
	AND, AMPERSAND_EQUALS, ASTERISK_EQUALS, BITOR_EQUALS, CARET_EQUALS,
	EQ, GT_EQUALS, GT_GT, LT_EQUALS, LT_LT, MINUS_EQUALS, MINUS_MINUS,
	MOD_EQUALS, NOT_EQ, OR, PLUS_EQUALS, PLUS_PLUS, POW, SLASH_EQUALS,
	AMPERSAND, ASSIGN, ASTERISK, BANG, BITOR, CARET, COLON, COMMA, GT,
	LBRACE, LBRACKET, LPAREN, LT, MINUS, MOD, PERIOD, PLUS, RBRACE,
	RBRACKET, RPAREN, SEMICOLON, SLASH,
}
