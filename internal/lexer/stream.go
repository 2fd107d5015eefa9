package lexer

import (
	"fmt"

	"github.com/ceos-lang/ceos/internal/diagnostic"
)

// Stream is a pull-based cursor over a token slice. It never advances
// past the final END token.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream wraps tokens. A trailing END is appended when missing.
func NewStream(tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != END {
		end := Token{Type: END}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1].Span
			end.Span = Span{Start: last.End, End: last.End, Line: last.Line, Column: last.Column}
		}
		tokens = append(tokens, end)
	}
	return &Stream{tokens: tokens}
}

// Scan lexes source into a Stream.
func Scan(source string) *Stream {
	return NewStream(New(source).Tokenize())
}

// Peek returns the current token without consuming it
func (s *Stream) Peek() Token {
	return s.tokens[s.pos]
}

func (s *Stream) advance() Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

// Expect consumes the current token if it has type tt, otherwise it fails
// with an unexpected-token error and leaves the stream where it is.
func (s *Stream) Expect(tt TokenType) (Token, error) {
	tok := s.Peek()
	if tok.Type != tt {
		return tok, unexpected(tok, fmt.Sprintf("expected %s, got %s", tt, describe(tok)))
	}
	return s.advance(), nil
}

// Skip consumes the current token only if it has type tt
func (s *Stream) Skip(tt TokenType) bool {
	if s.Peek().Type != tt {
		return false
	}
	s.advance()
	return true
}

// Unexpected reports tok as invalid in the current position.
func (s *Stream) Unexpected(tok Token) error {
	return unexpected(tok, "unexpected token "+describe(tok))
}

func unexpected(tok Token, msg string) error {
	return diagnostic.Newf(diagnostic.UnexpectedToken, "%s", msg).
		At(tok.Span.Start, tok.Span.End, tok.Span.Line, tok.Span.Column)
}

func describe(tok Token) string {
	switch tok.Type {
	case END:
		return "END"
	case ILLEGAL:
		if tok.Text != "" {
			return fmt.Sprintf("ILLEGAL (%s)", tok.Text)
		}
		return fmt.Sprintf("ILLEGAL %q", tok.Literal)
	default:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	}
}
