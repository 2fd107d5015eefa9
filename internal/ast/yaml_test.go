package ast

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ceos-lang/ceos/internal/types"
)

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, doubleProgram(), types.NewRegistry()); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Strings []string `yaml:"strings"`
		Body    struct {
			Kind  string `yaml:"kind"`
			Nodes []struct {
				Kind      string   `yaml:"kind"`
				Name      string   `yaml:"name"`
				Type      string   `yaml:"type"`
				Signature []string `yaml:"signature"`
				Arguments []struct {
					Kind  string `yaml:"kind"`
					Name  string `yaml:"name"`
					Type  string `yaml:"type"`
					Index *int   `yaml:"index"`
					Value *int64 `yaml:"value"`
				} `yaml:"arguments"`
			} `yaml:"nodes"`
			NeedsScope bool `yaml:"needs_scope"`
		} `yaml:"body"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	if len(doc.Strings) != 2 || doc.Strings[0] != "double" {
		t.Errorf("strings = %v", doc.Strings)
	}
	if doc.Body.Kind != "Block" || doc.Body.NeedsScope {
		t.Errorf("body = %+v", doc.Body)
	}
	if len(doc.Body.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc.Body.Nodes))
	}

	fn := doc.Body.Nodes[0]
	if fn.Kind != "Function" || fn.Name != "double" {
		t.Errorf("function = %+v", fn)
	}
	if len(fn.Signature) != 2 || fn.Signature[0] != "Int" || fn.Signature[1] != "Int" {
		t.Errorf("signature = %v", fn.Signature)
	}
	if len(fn.Arguments) != 1 || fn.Arguments[0].Index == nil || *fn.Arguments[0].Index != 0 {
		t.Errorf("arguments = %+v", fn.Arguments)
	}

	call := doc.Body.Nodes[1]
	if call.Kind != "Call" || call.Type != "Int" {
		t.Errorf("call = %+v", call)
	}
	if len(call.Arguments) != 1 || call.Arguments[0].Value == nil || *call.Arguments[0].Value != 5 {
		t.Errorf("call arguments = %+v", call.Arguments)
	}
}

func TestEncodeYAMLNilProgram(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, nil, nil); err == nil {
		t.Error("expected an error for a nil program")
	}
}
