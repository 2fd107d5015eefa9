package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ceos-lang/ceos/internal/diagnostic"
)

const validSource = `
double : Int -> Int
double(x) { x }
double(21)
`

func TestCompileValidProgram(t *testing.T) {
	res := Compile(validSource)
	if res.Failed() {
		t.Fatalf("Expected no errors, got:\n%s", res.Diagnostics.Format("test"))
	}
	if res.Err != nil {
		t.Errorf("Expected no fatal error, got %v", res.Err)
	}
	if res.Program == nil || res.Registry == nil {
		t.Fatal("Expected a program and its registry")
	}
	if len(res.Program.Body.Nodes) != 2 {
		t.Errorf("Expected 2 top-level nodes, got %d", len(res.Program.Body.Nodes))
	}
}

func TestCompileParseError(t *testing.T) {
	res := Compile(`double : Int -> Int
double("two")`)
	if !res.Failed() {
		t.Fatal("Expected a type error")
	}
	if res.Program != nil {
		t.Error("Expected no program on error")
	}

	errs := res.Diagnostics.Errors()
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error, got %d", len(errs))
	}
	if errs[0].Kind != diagnostic.TypeMismatch {
		t.Errorf("Expected type-mismatch, got %s", errs[0].Kind)
	}
	if errs[0].Line != 2 || errs[0].Column != 8 {
		t.Errorf("Expected error at 2:8, got %d:%d", errs[0].Line, errs[0].Column)
	}
	if !diagnostic.IsKind(res.Err, diagnostic.TypeMismatch) {
		t.Errorf("Expected the fatal error to be kept, got %v", res.Err)
	}
}

func TestCheck(t *testing.T) {
	if diags := Check(validSource); diags.HasErrors() {
		t.Errorf("Expected no errors, got:\n%s", diags.Format("test"))
	}

	diags := Check("f : Int -> Nope")
	if !diags.HasErrors() {
		t.Fatal("Expected undefined type error")
	}
	if !strings.Contains(diags.Format("main.ceos"), "error[main.ceos:1:12]: undefined type `Nope`") {
		t.Errorf("Unexpected output:\n%s", diags.Format("main.ceos"))
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(validSource, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"strings:", "kind: Function", "signature: [Int, Int]", "kind: Call"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := WriteYAML("f(1)", &buf); err == nil {
		t.Error("Expected compilation error")
	}
	if buf.Len() != 0 {
		t.Error("Expected nothing written on error")
	}
}

func TestEmitYAML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ast.yaml")
	if err := EmitYAML(validSource, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kind: Block") {
		t.Errorf("Unexpected file contents:\n%s", data)
	}
}
