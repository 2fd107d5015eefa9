package ast

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ceos-lang/ceos/internal/types"
)

type programDisk struct {
	Strings []string  `yaml:"strings"`
	Span    [2]int    `yaml:"span,flow"`
	Body    *nodeDisk `yaml:"body"`
}

type nodeDisk struct {
	Kind          string      `yaml:"kind"`
	Span          [2]int      `yaml:"span,flow"`
	Type          string      `yaml:"type,omitempty"`
	Value         *int64      `yaml:"value,omitempty"`
	Text          string      `yaml:"text,omitempty"`
	StringID      *int        `yaml:"string_id,omitempty"`
	Name          string      `yaml:"name,omitempty"`
	Index         *int        `yaml:"index,omitempty"`
	Captured      bool        `yaml:"captured,omitempty"`
	Signature     []string    `yaml:"signature,omitempty,flow"`
	Callee        *nodeDisk   `yaml:"callee,omitempty"`
	Arguments     []*nodeDisk `yaml:"arguments,omitempty"`
	Condition     *nodeDisk   `yaml:"condition,omitempty"`
	Then          *nodeDisk   `yaml:"then,omitempty"`
	Else          *nodeDisk   `yaml:"else,omitempty"`
	Body          *nodeDisk   `yaml:"body,omitempty"`
	Nodes         []*nodeDisk `yaml:"nodes,omitempty"`
	NeedsScope    bool        `yaml:"needs_scope,omitempty"`
	CapturesScope bool        `yaml:"captures_scope,omitempty"`
}

// EncodeYAML writes prog as a YAML document for consumption by later
// stages. Type handles are written by name, resolved through reg.
func EncodeYAML(w io.Writer, prog *Program, reg *types.Registry) error {
	if prog == nil {
		return fmt.Errorf("ast: nil program")
	}
	enc := encoder{reg: reg}
	data := programDisk{
		Strings: []string{},
		Span:    [2]int{prog.Loc.Start, prog.Loc.End},
		Body:    enc.node(prog.Body),
	}
	if prog.Strings != nil {
		data.Strings = prog.Strings.Values()
	}

	var buf bytes.Buffer
	ye := yaml.NewEncoder(&buf)
	ye.SetIndent(2)
	if err := ye.Encode(data); err != nil {
		return fmt.Errorf("ast: marshal program: %w", err)
	}
	if err := ye.Close(); err != nil {
		return fmt.Errorf("ast: encoder close: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

type encoder struct {
	reg *types.Registry
}

func (e encoder) typeName(t types.Type) string {
	if t == types.NoType || e.reg == nil {
		return ""
	}
	return e.reg.Name(t)
}

func (e encoder) node(node Node) *nodeDisk {
	if node == nil {
		return nil
	}
	// a typed nil *Block is still a nil node
	if b, ok := node.(*Block); ok && b == nil {
		return nil
	}

	span := node.Span()
	out := &nodeDisk{
		Kind: node.Kind().String(),
		Span: [2]int{span.Start, span.End},
		Type: e.typeName(node.Type()),
	}

	switch n := node.(type) {
	case *Number:
		v := n.Value
		out.Value = &v
	case *String:
		id := n.ID
		out.Text = n.Value
		out.StringID = &id
	case *ID:
		id := n.UID
		out.Name = n.Name
		out.StringID = &id
	case *FunctionArgument:
		idx := n.Index
		out.Name = n.Name
		out.Index = &idx
		out.Captured = n.Captured
	case *Call:
		out.Callee = e.node(n.Callee)
		for _, arg := range n.Arguments {
			out.Arguments = append(out.Arguments, e.node(arg))
		}
	case *Function:
		out.Name = n.Name.Name
		for _, t := range n.Signature {
			out.Signature = append(out.Signature, e.typeName(t))
		}
		for _, arg := range n.Arguments {
			out.Arguments = append(out.Arguments, e.node(arg))
		}
		out.Body = e.node(n.Body)
	case *If:
		out.Condition = e.node(n.Condition)
		out.Then = e.node(n.Then)
		if n.Else != nil {
			out.Else = e.node(n.Else)
		}
	case *Block:
		out.NeedsScope = n.NeedsScope
		out.CapturesScope = n.CapturesScope
		for _, child := range n.Nodes {
			out.Nodes = append(out.Nodes, e.node(child))
		}
	}
	return out
}
