package compiler

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ceos-lang/ceos/internal/ast"
	"github.com/ceos-lang/ceos/internal/diagnostic"
	"github.com/ceos-lang/ceos/internal/parser"
	"github.com/ceos-lang/ceos/internal/types"
)

// Result holds the output of a compilation
type Result struct {
	Program     *ast.Program // nil when Diagnostics has errors
	Registry    *types.Registry
	Diagnostics *diagnostic.Diagnostics
	Err         error // the fatal error behind Diagnostics, if any
}

// Failed reports whether the compilation produced errors
func (r *Result) Failed() bool {
	return r.Diagnostics != nil && r.Diagnostics.HasErrors()
}

// Compile parses source into a typed Program. Parsing is fail-fast, so
// a failed compilation carries exactly one error diagnostic.
func Compile(source string) *Result {
	res := &Result{Diagnostics: diagnostic.New()}

	p := parser.New(source)
	prog, err := p.Parse()
	if err != nil {
		res.Err = err
		res.Diagnostics.FromError(err)
		return res
	}

	res.Program = prog
	res.Registry = p.Registry()
	return res
}

// Check runs the front-end and returns only its diagnostics
func Check(source string) *diagnostic.Diagnostics {
	return Compile(source).Diagnostics
}

// WriteYAML compiles source and writes the YAML encoding of the program to w.
func WriteYAML(source string, w io.Writer) error {
	res := Compile(source)
	if res.Failed() {
		return fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format("input"))
	}
	return ast.EncodeYAML(w, res.Program, res.Registry)
}

// EmitYAML compiles source and writes the YAML encoding to outPath.
func EmitYAML(source, outPath string) error {
	var buf bytes.Buffer
	if err := WriteYAML(source, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
