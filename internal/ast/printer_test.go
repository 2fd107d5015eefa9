package ast

import (
	"strings"
	"testing"

	"github.com/ceos-lang/ceos/internal/types"
)

// doubleProgram builds the tree for
//
//	double : Int -> Int
//	double(x) { x }
//	double(5)
func doubleProgram() *Program {
	strs := NewStrings()
	strs.Intern("double")
	strs.Intern("x")

	x := &FunctionArgument{Name: "x", Index: 0, Param: types.Int}
	fn := &Function{
		Name:      &ID{Name: "double", UID: 0},
		Arguments: []*FunctionArgument{x},
		Body:      &Block{Nodes: []Node{x}},
		Signature: types.Chain{types.Int, types.Int},
	}
	call := &Call{
		Callee:    &ID{Name: "double", UID: 0},
		Arguments: []Node{&Number{Value: 5}},
		Args:      types.Chain{types.Int},
		Result:    types.Int,
	}
	return &Program{
		Strings: strs,
		Body:    &Block{Nodes: []Node{fn, call}, NeedsScope: false},
	}
}

func TestPrintProgram(t *testing.T) {
	reg := types.NewRegistry()
	out := PrintProgram(doubleProgram(), reg)

	expected := []string{
		"Program",
		"  Strings:",
		`    0: "double"`,
		`    1: "x"`,
		"  Block",
		"    Function: double : Int -> Int",
		"      Argument 0: x : Int",
		"      Block",
		"        Argument 0: x : Int",
		"    Call : Int",
		"      Callee:",
		"        ID: double #0",
		"      Arguments (Int):",
		"        Number: 5",
	}
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(got) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(got), out)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestPrintFlagsAndTypes(t *testing.T) {
	reg := types.NewRegistry()

	block := &Block{
		Nodes:         []Node{&ID{Name: "b", UID: 3, Binding: types.Int}},
		NeedsScope:    true,
		CapturesScope: true,
	}
	out := Print(block, reg)
	if !strings.Contains(out, "Block (needs scope, captures scope)") {
		t.Errorf("missing block flags:\n%s", out)
	}
	if !strings.Contains(out, "ID: b #3 : Int") {
		t.Errorf("missing binding type:\n%s", out)
	}

	arg := &FunctionArgument{Name: "a", Index: 1, Param: types.String, Captured: true}
	if got := Print(arg, reg); got != "Argument 1: a : String (captured)\n" {
		t.Errorf("argument = %q", got)
	}

	// without a registry handles are shown raw
	if got := Print(&Call{Callee: &ID{Name: "f"}, Result: types.Int}, nil); !strings.HasPrefix(got, "Call : #1\n") {
		t.Errorf("call = %q", got)
	}
	if got := Print(&Call{Callee: &ID{Name: "f"}}, reg); !strings.HasPrefix(got, "Call : ?\n") {
		t.Errorf("unchecked call = %q", got)
	}
}

func TestPrintIf(t *testing.T) {
	node := &If{
		Condition: &Number{Value: 1},
		Then:      &Block{Nodes: []Node{&String{Value: "yes", ID: 0}}},
	}
	out := Print(node, nil)

	if !strings.Contains(out, "  Then:\n    Block\n      String: \"yes\" #0\n") {
		t.Errorf("unexpected then branch:\n%s", out)
	}
	if strings.Contains(out, "Else:") {
		t.Errorf("if without else printed an else branch:\n%s", out)
	}
}

func TestPrintChainWithUnknownArgument(t *testing.T) {
	reg := types.NewRegistry()
	call := &Call{
		Callee:    &ID{Name: "g"},
		Arguments: []Node{&Number{Value: 1}, &ID{Name: "y"}},
		Args:      types.Chain{types.Int, types.NoType},
	}

	if out := Print(call, reg); !strings.Contains(out, "  Arguments (Int -> ?):\n") {
		t.Errorf("unexpected arguments header:\n%s", out)
	}
	if out := Print(call, nil); !strings.Contains(out, "  Arguments (#1 -> ?):\n") {
		t.Errorf("unexpected raw arguments header:\n%s", out)
	}
}
