package ast

import (
	"fmt"
	"strings"

	"github.com/ceos-lang/ceos/internal/types"
)

// Print returns a tree-like string representation of a node for debugging.
// Type handles are rendered through reg.
func Print(node Node, reg *types.Registry) string {
	var sb strings.Builder
	pr := printer{sb: &sb, reg: reg}
	pr.node(node, 0)
	return sb.String()
}

// PrintProgram prints the string table followed by the program body
func PrintProgram(prog *Program, reg *types.Registry) string {
	var sb strings.Builder
	pr := printer{sb: &sb, reg: reg}
	sb.WriteString("Program\n")
	if prog.Strings != nil && prog.Strings.Len() > 0 {
		sb.WriteString("  Strings:\n")
		for i, s := range prog.Strings.Values() {
			sb.WriteString(fmt.Sprintf("    %d: %q\n", i, s))
		}
	}
	if prog.Body != nil {
		pr.node(prog.Body, 1)
	}
	return sb.String()
}

type printer struct {
	sb  *strings.Builder
	reg *types.Registry
}

func (p printer) typeName(t types.Type) string {
	if t == types.NoType {
		return "?"
	}
	if p.reg == nil {
		return fmt.Sprintf("#%d", t)
	}
	return p.reg.Name(t)
}

func (p printer) chain(c types.Chain) string {
	if p.reg != nil {
		return p.reg.Chain(c)
	}
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = p.typeName(t)
	}
	return strings.Join(names, " -> ")
}

func (p printer) node(node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Number:
		p.sb.WriteString(fmt.Sprintf("%sNumber: %d\n", prefix, n.Value))

	case *String:
		p.sb.WriteString(fmt.Sprintf("%sString: %q #%d\n", prefix, n.Value, n.ID))

	case *ID:
		p.sb.WriteString(fmt.Sprintf("%sID: %s #%d", prefix, n.Name, n.UID))
		if n.Binding != types.NoType {
			p.sb.WriteString(" : " + p.typeName(n.Binding))
		}
		p.sb.WriteString("\n")

	case *FunctionArgument:
		captured := ""
		if n.Captured {
			captured = " (captured)"
		}
		p.sb.WriteString(fmt.Sprintf("%sArgument %d: %s : %s%s\n",
			prefix, n.Index, n.Name, p.typeName(n.Param), captured))

	case *Call:
		p.sb.WriteString(fmt.Sprintf("%sCall : %s\n", prefix, p.typeName(n.Result)))
		p.sb.WriteString(prefix + "  Callee:\n")
		p.node(n.Callee, indent+2)
		if len(n.Arguments) > 0 {
			p.sb.WriteString(fmt.Sprintf("%s  Arguments (%s):\n", prefix, p.chain(n.Args)))
			for _, arg := range n.Arguments {
				p.node(arg, indent+2)
			}
		}

	case *Function:
		p.sb.WriteString(fmt.Sprintf("%sFunction: %s : %s\n", prefix, n.Name.Name, p.chain(n.Signature)))
		for _, arg := range n.Arguments {
			p.node(arg, indent+1)
		}
		p.node(n.Body, indent+1)

	case *If:
		p.sb.WriteString(prefix + "If\n")
		p.sb.WriteString(prefix + "  Condition:\n")
		p.node(n.Condition, indent+2)
		p.sb.WriteString(prefix + "  Then:\n")
		p.node(n.Then, indent+2)
		if n.Else != nil {
			p.sb.WriteString(prefix + "  Else:\n")
			p.node(n.Else, indent+2)
		}

	case *Block:
		var flags []string
		if n.NeedsScope {
			flags = append(flags, "needs scope")
		}
		if n.CapturesScope {
			flags = append(flags, "captures scope")
		}
		if len(flags) > 0 {
			p.sb.WriteString(fmt.Sprintf("%sBlock (%s)\n", prefix, strings.Join(flags, ", ")))
		} else {
			p.sb.WriteString(prefix + "Block\n")
		}
		for _, child := range n.Nodes {
			p.node(child, indent+1)
		}

	default:
		p.sb.WriteString(fmt.Sprintf("%s<unknown node %T>\n", prefix, node))
	}
}
