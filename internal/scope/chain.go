package scope

import "github.com/ceos-lang/ceos/internal/ast"

// Chain tracks the current scope of a parse. Function bodies are parsed
// between Enter and Leave, or inside Within.
type Chain struct {
	root    *Scope
	current *Scope
}

// NewChain returns a chain positioned at a fresh root scope
func NewChain() *Chain {
	root := New(nil)
	return &Chain{root: root, current: root}
}

func (c *Chain) Root() *Scope    { return c.root }
func (c *Chain) Current() *Scope { return c.current }

// Enter creates a child of the current scope and makes it current
func (c *Chain) Enter() *Scope {
	c.current = New(c.current)
	return c.current
}

// Leave makes the parent of the current scope current. Leaving the root
// is a no-op.
func (c *Chain) Leave() {
	if c.current.parent != nil {
		c.current = c.current.parent
	}
}

// Within runs fn in a new child scope and restores the current scope on
// every return path.
func (c *Chain) Within(fn func(*Scope) error) error {
	saved := c.current
	child := c.Enter()
	defer func() { c.current = saved }()
	return fn(child)
}

// Bind installs a binding in the current scope
func (c *Chain) Bind(name string, node ast.Node) {
	c.current.Bind(name, node)
}

// Lookup finds name in the current scope, and in its ancestors when
// crossScopes is set. A missing binding is not an error.
func (c *Chain) Lookup(name string, crossScopes bool) (ast.Node, bool) {
	if crossScopes {
		return c.current.Resolve(name)
	}
	return c.current.ResolveLocal(name)
}

// IsBoundHere reports whether the current scope itself binds name
func (c *Chain) IsBoundHere(name string) bool {
	_, ok := c.current.ResolveLocal(name)
	return ok
}

// Owner returns the nearest scope binding name, or nil
func (c *Chain) Owner(name string) *Scope {
	return c.current.Owner(name)
}

// Capture records a reference to name from the current scope. When the
// nearest binding is a function argument owned by an ancestor, the
// argument is marked captured, its owner required, and the current scope
// as capturing. It returns the argument in that case.
func (c *Chain) Capture(name string) (*ast.FunctionArgument, bool) {
	if c.IsBoundHere(name) {
		return nil, false
	}
	owner := c.Owner(name)
	if owner == nil {
		return nil, false
	}
	arg, ok := owner.bindings[name].(*ast.FunctionArgument)
	if !ok {
		return nil, false
	}
	arg.Captured = true
	owner.Required = true
	c.current.Captures = true
	return arg, true
}
