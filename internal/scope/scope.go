// Package scope implements the lexical environments of a parse: a tree of
// scopes linked to their parents, and a Chain that tracks the current one.
package scope

import "github.com/ceos-lang/ceos/internal/ast"

// Scope represents a lexical scope with a binding table
type Scope struct {
	parent   *Scope
	bindings map[string]ast.Node

	// Required is set when something in the scope must live in a real
	// frame at runtime: a function bound here, or an argument that a
	// nested function captures.
	Required bool
	// Captures is set when a function body in this scope refers to an
	// argument owned by an enclosing scope.
	Captures bool
}

// New creates a new scope with an optional parent
func New(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: make(map[string]ast.Node),
	}
}

// Parent returns the enclosing scope, or nil for the root
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Bind installs a binding, replacing any earlier binding of name in this
// scope and shadowing any binding in an ancestor
func (s *Scope) Bind(name string, node ast.Node) {
	s.bindings[name] = node
}

// Resolve looks up a name in this scope and its ancestors
func (s *Scope) Resolve(name string) (ast.Node, bool) {
	if owner := s.Owner(name); owner != nil {
		return owner.bindings[name], true
	}
	return nil, false
}

// ResolveLocal looks up a name only in this scope
func (s *Scope) ResolveLocal(name string) (ast.Node, bool) {
	node, ok := s.bindings[name]
	return node, ok
}

// Owner returns the nearest scope, starting at s, that binds name
func (s *Scope) Owner(name string) *Scope {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.bindings[name]; ok {
			return sc
		}
	}
	return nil
}
