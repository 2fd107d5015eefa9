package parser

import (
	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/diagnostic"
	"github.com/ceos-lang/ceos/internal/lexer"
	"github.com/ceos-lang/ceos/internal/scope"
	"github.com/ceos-lang/ceos/internal/types"
)

// Parse parses the whole token stream into a Program. The first error
// aborts the parse and no partial program is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	p.types = types.NewRegistry()
	p.scopes = scope.NewChain()
	p.signatures = make(map[string]types.Chain)
	p.prog = &ast.Program{
		Strings: ast.NewStrings(),
		Loc:     p.src.Peek().Span,
	}

	body, err := p.parseBlock(lexer.END)
	if err != nil {
		return nil, err
	}
	end, err := p.src.Expect(lexer.END)
	if err != nil {
		return nil, err
	}

	// the top level never gets a frame of its own
	body.NeedsScope = false
	p.prog.Body = body
	p.prog.Loc = p.prog.Loc.To(end.Span)
	return p.prog, nil
}

// parseBlock parses factors until delim, which is left unconsumed.
func (p *Parser) parseBlock(delim lexer.TokenType) (*ast.Block, error) {
	block := &ast.Block{Loc: p.src.Peek().Span}
	for !p.check(delim) {
		node, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if node != nil {
			block.Nodes = append(block.Nodes, node)
		}
	}
	block.Loc.End = p.src.Peek().Span.Start

	current := p.scopes.Current()
	block.NeedsScope = current.Required
	block.CapturesScope = current.Captures
	return block, nil
}

// parseFactor returns a nil node for a signature declaration.
func (p *Parser) parseFactor() (ast.Node, error) {
	switch tok := p.src.Peek(); tok.Type {
	case lexer.NUMBER:
		return p.parseNumber()
	case lexer.ID:
		return p.parseID()
	case lexer.STRING:
		return p.parseString()
	default:
		return nil, p.src.Unexpected(tok)
	}
}

// parseValue parses a factor where a value is required: a declaration
// there is rejected.
func (p *Parser) parseValue() (ast.Node, error) {
	start := p.src.Peek()
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fail(diagnostic.UnexpectedToken, start.Span,
			"type declaration for `%s` cannot be used as a value", start.Text)
	}
	return node, nil
}

func (p *Parser) parseNumber() (ast.Node, error) {
	tok, err := p.src.Expect(lexer.NUMBER)
	if err != nil {
		return nil, err
	}
	return &ast.Number{Value: tok.Number, Loc: tok.Span}, nil
}

func (p *Parser) parseString() (ast.Node, error) {
	tok, err := p.src.Expect(lexer.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.String{
		ID:    p.prog.Strings.Intern(tok.Text),
		Value: tok.Text,
		Loc:   tok.Span,
	}, nil
}

func (p *Parser) parseID() (ast.Node, error) {
	tok, err := p.src.Expect(lexer.ID)
	if err != nil {
		return nil, err
	}
	if tok.Text == lexer.KeywordIf {
		return p.parseIf(tok)
	}

	var node ast.Node
	var sites []lexer.Span
	if arg, ok := p.localArgument(tok.Text); ok {
		node = arg
	} else {
		id := &ast.ID{
			Name: tok.Text,
			UID:  p.prog.Strings.Intern(tok.Text),
			Loc:  tok.Span,
		}
		if arg, ok := p.scopes.Capture(tok.Text); ok {
			id.Binding = arg.Param
		}
		node = id
	}

postfix:
	for {
		switch p.src.Peek().Type {
		case lexer.TYPE:
			return nil, p.parseTypeInfo(node)
		case lexer.LPAREN:
			if node, sites, err = p.parseCall(node); err != nil {
				return nil, err
			}
		case lexer.LBRACE:
			call, ok := node.(*ast.Call)
			if !ok {
				break postfix
			}
			if _, ok := call.Callee.(*ast.ID); !ok {
				break postfix
			}
			if node, err = p.parseFunction(call); err != nil {
				return nil, err
			}
		default:
			break postfix
		}
	}

	if call, ok := node.(*ast.Call); ok {
		if err := p.typeCheck(call, sites); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// localArgument finds a parameter bound in the current scope, so that
// every reference to it shares one node
func (p *Parser) localArgument(name string) (*ast.FunctionArgument, bool) {
	ref, ok := p.scopes.Lookup(name, false)
	if !ok {
		return nil, false
	}
	arg, ok := ref.(*ast.FunctionArgument)
	return arg, ok
}

// parseFunction turns a call-shaped head into a definition.
func (p *Parser) parseFunction(call *ast.Call) (*ast.Function, error) {
	name := call.Callee.(*ast.ID)
	sig, ok := p.signatures[name.Name]
	if !ok {
		return nil, fail(diagnostic.MissingTypeInformation, name.Loc,
			"defining function `%s` that does not have type information", name.Name)
	}
	if len(call.Arguments) != len(sig)-1 {
		return nil, fail(diagnostic.ArityMismatch, call.Loc,
			"function `%s` is declared with %d parameter(s) but defined with %d",
			name.Name, len(sig)-1, len(call.Arguments))
	}

	fn := &ast.Function{Name: name, Signature: sig}
	p.scopes.Bind(name.Name, fn)
	p.scopes.Current().Required = true

	err := p.scopes.Within(func(body *scope.Scope) error {
		for i, arg := range call.Arguments {
			var argName string
			switch a := arg.(type) {
			case *ast.ID:
				argName = a.Name
			case *ast.FunctionArgument:
				argName = a.Name
			default:
				return fail(diagnostic.UnsupportedArgumentForm, arg.Span(),
					"cannot use %s as a parameter of `%s`", arg.Kind(), name.Name)
			}

			fnArg := &ast.FunctionArgument{
				Name:  argName,
				Index: i,
				Param: sig[i],
				Loc:   arg.Span(),
			}
			fn.Arguments = append(fn.Arguments, fnArg)
			body.Bind(argName, fnArg)
		}

		if _, err := p.src.Expect(lexer.LBRACE); err != nil {
			return err
		}
		block, err := p.parseBlock(lexer.RBRACE)
		if err != nil {
			return err
		}
		end, err := p.src.Expect(lexer.RBRACE)
		if err != nil {
			return err
		}
		fn.Body = block
		fn.Loc = name.Loc.To(end.Span)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// parseCall parses (arg, arg, ...) applied to callee. It also returns
// where each argument appears in this call, since a shared parameter node
// carries the span of its declaration.
func (p *Parser) parseCall(callee ast.Node) (*ast.Call, []lexer.Span, error) {
	if _, err := p.src.Expect(lexer.LPAREN); err != nil {
		return nil, nil, err
	}

	call := &ast.Call{Callee: callee, Args: types.Chain{}}
	var sites []lexer.Span
	if !p.check(lexer.RPAREN) {
		for {
			start := p.src.Peek()
			arg, err := p.parseValue()
			if err != nil {
				return nil, nil, err
			}
			site := arg.Span()
			if _, ok := arg.(*ast.FunctionArgument); ok {
				site = start.Span
			}
			sites = append(sites, site)
			call.Args = append(call.Args, arg.Type())
			call.Arguments = append(call.Arguments, arg)
			if !p.src.Skip(lexer.COMMA) {
				break
			}
		}
	}

	end, err := p.src.Expect(lexer.RPAREN)
	if err != nil {
		return nil, nil, err
	}
	call.Loc = callee.Span().To(end.Span)
	return call, sites, nil
}

// parseTypeInfo parses `: T -> T ...` and records it as the signature of
// target. It produces no node.
func (p *Parser) parseTypeInfo(target ast.Node) error {
	colon, err := p.src.Expect(lexer.TYPE)
	if err != nil {
		return err
	}

	var name string
	switch t := target.(type) {
	case *ast.ID:
		name = t.Name
	case *ast.FunctionArgument:
		name = t.Name
	default:
		return fail(diagnostic.UnexpectedToken, colon.Span,
			"type declaration must follow a name, not a %s", target.Kind())
	}

	var chain types.Chain
	for {
		tok, err := p.src.Expect(lexer.ID)
		if err != nil {
			return err
		}
		p.prog.Strings.Intern(tok.Text)
		t, err := p.types.Resolve(tok.Text)
		if err != nil {
			return at(err, tok.Span)
		}
		chain = append(chain, t)
		if !p.src.Skip(lexer.ARROW) {
			break
		}
	}

	p.signatures[name] = chain
	return nil
}

// parseIf parses if (cond) body [else body]; tok is the `if` keyword
func (p *Parser) parseIf(tok lexer.Token) (ast.Node, error) {
	node := &ast.If{Loc: tok.Span}

	if _, err := p.src.Expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	node.Condition = cond
	if _, err := p.src.Expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	if node.Then, err = p.parseBranch(); err != nil {
		return nil, err
	}
	node.Loc = node.Loc.To(node.Then.Loc)

	if next := p.src.Peek(); next.Type == lexer.ID && next.Text == lexer.KeywordElse {
		if _, err := p.src.Expect(lexer.ID); err != nil {
			return nil, err
		}
		if node.Else, err = p.parseBranch(); err != nil {
			return nil, err
		}
		node.Loc = node.Loc.To(node.Else.Loc)
	}

	return node, nil
}

// parseBranch parses either a braced block or a single factor. Braced
// blocks stay in the current scope.
func (p *Parser) parseBranch() (*ast.Block, error) {
	if !p.check(lexer.LBRACE) {
		node, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Nodes: []ast.Node{node}, Loc: node.Span()}, nil
	}

	open, err := p.src.Expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	end, err := p.src.Expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	block.Loc = open.Span.To(end.Span)
	return block, nil
}
