package ast

import (
	"github.com/ceos-lang/ceos/internal/lexer"
	"github.com/ceos-lang/ceos/internal/types"
)

// Kind tags the concrete variant of a Node
type Kind int

const (
	KindNumber Kind = iota + 1
	KindString
	KindID
	KindCall
	KindIf
	KindFunction
	KindFunctionArgument
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindID:
		return "ID"
	case KindCall:
		return "Call"
	case KindIf:
		return "If"
	case KindFunction:
		return "Function"
	case KindFunctionArgument:
		return "FunctionArgument"
	case KindBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Node is implemented only by the variants in this file. Consumers
// type-switch on the concrete pointer types.
type Node interface {
	Kind() Kind
	Span() lexer.Span
	// Type is the node's single resolved type, or types.NoType for nodes
	// whose type is unknown or is a signature (see Function.Signature).
	Type() types.Type
	node()
}

// Program is the result of one compilation
type Program struct {
	Strings *Strings
	Body    *Block
	Loc     lexer.Span
}

// Number is an integer literal
type Number struct {
	Value int64
	Loc   lexer.Span
}

func (n *Number) Kind() Kind       { return KindNumber }
func (n *Number) Span() lexer.Span { return n.Loc }
func (n *Number) Type() types.Type { return types.Int }
func (n *Number) node()            {}

// String is a string literal; ID indexes Program.Strings
type String struct {
	ID    int
	Value string
	Loc   lexer.Span
}

func (s *String) Kind() Kind       { return KindString }
func (s *String) Span() lexer.Span { return s.Loc }
func (s *String) Type() types.Type { return types.String }
func (s *String) node()            {}

// ID is a reference to a name. UID indexes Program.Strings.
type ID struct {
	Name    string
	UID     int
	Binding types.Type // declared type of the argument it refers to, if any
	Loc     lexer.Span
}

func (i *ID) Kind() Kind       { return KindID }
func (i *ID) Span() lexer.Span { return i.Loc }
func (i *ID) Type() types.Type { return i.Binding }
func (i *ID) node()            {}

// FunctionArgument is a declared parameter. References to a parameter
// from the function's own body share this node.
type FunctionArgument struct {
	Name     string
	Index    int
	Param    types.Type
	Captured bool // referenced from a nested function body
	Loc      lexer.Span
}

func (a *FunctionArgument) Kind() Kind       { return KindFunctionArgument }
func (a *FunctionArgument) Span() lexer.Span { return a.Loc }
func (a *FunctionArgument) Type() types.Type { return a.Param }
func (a *FunctionArgument) node()            {}

// Call applies Callee to Arguments. Args holds the argument types in
// order; Result is the callee's return type once the call type-checks.
type Call struct {
	Callee    Node
	Arguments []Node
	Args      types.Chain
	Result    types.Type
	Loc       lexer.Span
}

func (c *Call) Kind() Kind       { return KindCall }
func (c *Call) Span() lexer.Span { return c.Loc }
func (c *Call) Type() types.Type { return c.Result }
func (c *Call) node()            {}

// Function is a definition whose signature was declared beforehand
type Function struct {
	Name      *ID
	Arguments []*FunctionArgument
	Body      *Block
	Signature types.Chain
	Loc       lexer.Span
}

func (f *Function) Kind() Kind       { return KindFunction }
func (f *Function) Span() lexer.Span { return f.Loc }
func (f *Function) Type() types.Type { return types.NoType }
func (f *Function) node()            {}

// If is a conditional; Else is nil when there is no else branch
type If struct {
	Condition Node
	Then      *Block
	Else      *Block
	Loc       lexer.Span
}

func (i *If) Kind() Kind       { return KindIf }
func (i *If) Span() lexer.Span { return i.Loc }
func (i *If) Type() types.Type { return types.NoType }
func (i *If) node()            {}

// Block is a sequence of nodes. NeedsScope and CapturesScope are copied
// from the scope that was active when the block finished parsing.
type Block struct {
	Nodes         []Node
	NeedsScope    bool
	CapturesScope bool
	Loc           lexer.Span
}

func (b *Block) Kind() Kind       { return KindBlock }
func (b *Block) Span() lexer.Span { return b.Loc }
func (b *Block) Type() types.Type { return types.NoType }
func (b *Block) node()            {}
