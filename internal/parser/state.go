package parser

import (
	"errors"

	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/diagnostic"
	"github.com/ceos-lang/ceos/internal/lexer"
	"github.com/ceos-lang/ceos/internal/scope"
	"github.com/ceos-lang/ceos/internal/types"
)

// TokenSource is the pull-based token stream the parser consumes.
// *lexer.Stream implements it.
type TokenSource interface {
	// Peek returns the current token without consuming it
	Peek() lexer.Token
	// Expect consumes the current token if it has type tt, else fails
	Expect(tt lexer.TokenType) (lexer.Token, error)
	// Skip consumes the current token only if it has type tt
	Skip(tt lexer.TokenType) bool
	// Unexpected builds the error for a token that cannot start a factor
	Unexpected(tok lexer.Token) error
}

// Parser holds the state of one compilation. Scope and type bookkeeping
// happen while parsing; there is no separate analysis pass.
type Parser struct {
	src        TokenSource
	types      *types.Registry
	scopes     *scope.Chain
	signatures map[string]types.Chain
	prog       *ast.Program
}

// New creates a parser over source
func New(source string) *Parser {
	return NewFromTokens(lexer.Scan(source))
}

// NewFromTokens creates a parser over an existing token source
func NewFromTokens(src TokenSource) *Parser {
	return &Parser{
		src:        src,
		types:      types.NewRegistry(),
		scopes:     scope.NewChain(),
		signatures: make(map[string]types.Chain),
	}
}

// Registry returns the types of this compilation
func (p *Parser) Registry() *types.Registry {
	return p.types
}

// Signature returns the type chain declared for name
func (p *Parser) Signature(name string) (types.Chain, bool) {
	sig, ok := p.signatures[name]
	return sig, ok
}

// Scopes returns the scope chain; after Parse it is back at the root.
func (p *Parser) Scopes() *scope.Chain {
	return p.scopes
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.src.Peek().Type == tt
}

// fail builds a positioned fatal error
func fail(kind diagnostic.Kind, span lexer.Span, format string, args ...interface{}) error {
	return diagnostic.Newf(kind, format, args...).At(span.Start, span.End, span.Line, span.Column)
}

// at positions err at span unless it already carries a position
func at(err error, span lexer.Span) error {
	var de *diagnostic.Error
	if errors.As(err, &de) && de.Line == 0 {
		de.At(span.Start, span.End, span.Line, span.Column)
	}
	return err
}
