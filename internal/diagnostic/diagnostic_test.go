package diagnostic

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	d := New()
	d.Errorf(3, 10, "expected `%s` but got `%s`", "Int", "String")
	d.ErrorWithHint(UndefinedType, 4, 1, "undefined type `Bool`", "fix it")

	got := d.Format("main.ceos")
	want := "error[main.ceos:3:10]: expected `Int` but got `String`\n" +
		"error[main.ceos:4:1]: undefined type `Bool`\n" +
		"  hint: fix it"
	if got != want {
		t.Errorf("Format:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	d := New()
	if d.HasErrors() {
		t.Error("new collection has errors")
	}
	if got := d.Format("x"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestError(t *testing.T) {
	err := Newf(TypeMismatch, "expected `%s` but got `%s`", "Int", "Char")
	if err.Error() != "expected `Int` but got `Char`" {
		t.Errorf("unpositioned error = %q", err.Error())
	}

	err.At(10, 13, 2, 5)
	if err.Error() != "2:5: expected `Int` but got `Char`" {
		t.Errorf("positioned error = %q", err.Error())
	}
	if err.Start != 10 || err.End != 13 {
		t.Errorf("offsets = %d..%d", err.Start, err.End)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("compiling: %w", Newf(UndefinedType, "undefined type `Bool`"))

	if !IsKind(err, UndefinedType) {
		t.Error("wrapped error should match its kind")
	}
	if IsKind(err, TypeMismatch) {
		t.Error("wrong kind matched")
	}
	if IsKind(errors.New("plain"), UndefinedType) {
		t.Error("plain error matched")
	}
}

func TestFromError(t *testing.T) {
	d := New()
	d.FromError(Newf(MissingTypeInformation, "missing type information for `f`").At(0, 1, 1, 1))
	d.FromError(errors.New("disk full"))

	all := d.Errors()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(all))
	}
	if all[0].Kind != MissingTypeInformation || all[0].Hint == "" || all[0].Line != 1 {
		t.Errorf("first = %+v", all[0])
	}
	if all[1].Kind != 0 || all[1].Message != "disk full" || all[1].Line != 0 {
		t.Errorf("second = %+v", all[1])
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UnexpectedToken, "unexpected-token"},
		{MissingTypeInformation, "missing-type-information"},
		{UndefinedType, "undefined-type"},
		{ArityMismatch, "arity-mismatch"},
		{TypeMismatch, "type-mismatch"},
		{UnsupportedArgumentForm, "unsupported-argument-form"},
		{Kind(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
