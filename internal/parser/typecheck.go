package parser

import (
	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/diagnostic"
	"github.com/ceos-lang/ceos/internal/lexer"
	"github.com/ceos-lang/ceos/internal/types"
)

// typeCheck checks a call to a named function against its declared
// signature. Types must match by handle; there is no conversion and no
// generic unification. On success the call takes the return type.
// sites holds the position of each argument in the call.
func (p *Parser) typeCheck(call *ast.Call, sites []lexer.Span) error {
	callee, ok := call.Callee.(*ast.ID)
	if !ok {
		return nil
	}

	sig, ok := p.signatures[callee.Name]
	if !ok {
		return fail(diagnostic.MissingTypeInformation, callee.Loc,
			"missing type information for `%s`", callee.Name)
	}

	params := sig.Params()
	if len(call.Arguments) != len(params) {
		return fail(diagnostic.ArityMismatch, call.Loc,
			"`%s` expects %d argument(s) but got %d", callee.Name, len(params), len(call.Arguments))
	}

	for i, expected := range params {
		actual := call.Args[i]
		if actual != expected {
			return fail(diagnostic.TypeMismatch, sites[i],
				"expected `%s` but got `%s`", p.typeName(expected), p.typeName(actual))
		}
	}

	call.Result = sig.Return()
	return nil
}

func (p *Parser) typeName(t types.Type) string {
	if t == types.NoType {
		return "unknown"
	}
	return p.types.Name(t)
}
