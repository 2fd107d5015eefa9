package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	END

	// Literals
	ID     // x, double, if, else
	NUMBER // 123
	STRING // "hello"

	// Type declarations
	TYPE  // :
	ARROW // ->

	// Delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	COMMA  // ,
)

// Span is a half-open byte range [Start, End) into the source, plus the
// line and column of Start for diagnostics.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// To returns a span starting at s and ending where other ends.
func (s Span) To(other Span) Span {
	s.End = other.End
	return s
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // raw source text
	Text    string // decoded text for ID and STRING
	Number  int64  // decoded value for NUMBER
	Span    Span
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case END:
		return "END"
	case ID:
		return "ID"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case TYPE:
		return "TYPE"
	case ARROW:
		return "ARROW"
	case LPAREN:
		return "L_PAREN"
	case RPAREN:
		return "R_PAREN"
	case LBRACE:
		return "L_BRACE"
	case RBRACE:
		return "R_BRACE"
	case COMMA:
		return "COMMA"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

// Keywords are plain ID tokens; the parser recognises them by text.
const (
	KeywordIf   = "if"
	KeywordElse = "else"
)
