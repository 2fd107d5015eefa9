package lexer

import (
	"strconv"
	"strings"
)

// Lexer scans ceos source code and produces tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipTrivia skips whitespace and // comments
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == '\n':
			l.readChar()
			l.line++
			l.column = 1
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString reads a string literal starting at the opening quote and
// returns the decoded text. The current char is left on the closing quote.
func (l *Lexer) readString() (string, bool) {
	var sb strings.Builder
	for {
		l.readChar()
		switch l.ch {
		case 0, '\n':
			return "", false
		case '"':
			return sb.String(), true
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 0, '\n':
				return "", false
			default:
				sb.WriteByte('\\')
				sb.WriteByte(l.ch)
			}
		default:
			sb.WriteByte(l.ch)
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipTrivia()

	start := Span{Start: l.position, Line: l.line, Column: l.column}
	tok := Token{Span: start}

	switch l.ch {
	case 0:
		tok.Type = END
		tok.Span.Start = len(l.input)
		tok.Span.End = len(l.input)
		return tok
	case '(':
		tok.Type = LPAREN
	case ')':
		tok.Type = RPAREN
	case '{':
		tok.Type = LBRACE
	case '}':
		tok.Type = RBRACE
	case ',':
		tok.Type = COMMA
	case ':':
		tok.Type = TYPE
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok.Type = ARROW
		} else {
			tok.Type = ILLEGAL
		}
	case '"':
		text, ok := l.readString()
		if !ok {
			tok.Type = ILLEGAL
			tok.Literal = l.input[start.Start:l.position]
			tok.Text = "unterminated string"
			tok.Span.End = l.position
			return tok
		}
		tok.Type = STRING
		tok.Text = text
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			tok.Type = ID
			tok.Literal = ident
			tok.Text = ident
			tok.Span.End = l.position
			return tok
		}
		if isDigit(l.ch) {
			literal := l.readNumber()
			tok.Type = NUMBER
			tok.Literal = literal
			tok.Span.End = l.position
			value, err := strconv.ParseInt(literal, 10, 64)
			if err != nil {
				tok.Type = ILLEGAL
				tok.Text = "number out of range"
				return tok
			}
			tok.Number = value
			return tok
		}
		tok.Type = ILLEGAL
	}

	l.readChar()
	tok.Span.End = l.position
	tok.Literal = l.input[start.Start:l.position]
	return tok
}

// Tokenize returns all tokens from the input, ending with END
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == END {
			break
		}
	}
	return tokens
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
