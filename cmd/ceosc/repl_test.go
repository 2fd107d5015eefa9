package main

import (
	"strings"
	"testing"
)

func TestSessionSubmit(t *testing.T) {
	var s session

	out, incomplete, err := s.submit("double : Int -> Int\n")
	if err != nil || incomplete {
		t.Fatalf("declaration: incomplete=%v err=%v", incomplete, err)
	}
	if out != "ok\n" {
		t.Errorf("declaration output = %q", out)
	}

	// an open body asks for more input and leaves the session alone
	_, incomplete, err = s.submit("double(x) {\n")
	if err != nil || !incomplete {
		t.Fatalf("open body: incomplete=%v err=%v", incomplete, err)
	}

	out, incomplete, err = s.submit("double(x) {\n  x\n}\n")
	if err != nil || incomplete {
		t.Fatalf("definition: incomplete=%v err=%v", incomplete, err)
	}
	if !strings.HasPrefix(out, "Function: double : Int -> Int\n") {
		t.Errorf("definition output = %q", out)
	}

	out, _, err = s.submit("double(4)\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Call : Int\n") {
		t.Errorf("call output = %q", out)
	}
	if strings.Contains(out, "Function") {
		t.Error("previously shown nodes were printed again")
	}
}

func TestSessionSubmitError(t *testing.T) {
	var s session
	if _, _, err := s.submit("f : Int -> Int\n"); err != nil {
		t.Fatal(err)
	}

	_, incomplete, err := s.submit(`f("x")` + "\n")
	if incomplete {
		t.Fatal("a type error is not incomplete input")
	}
	if err == nil || !strings.Contains(err.Error(), "expected `Int` but got `String`") {
		t.Fatalf("unexpected error: %v", err)
	}

	// the failed line is not kept
	out, _, err := s.submit("f(1)\n")
	if err != nil {
		t.Fatalf("session was poisoned by a rejected line: %v", err)
	}
	if !strings.HasPrefix(out, "Call : Int\n") {
		t.Errorf("call output = %q", out)
	}
}

func TestSessionIncompleteInput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		incomplete bool
	}{
		{"open call", "f(1\n", true},
		{"open body", "f : Int -> Int\nf(x) {\n", true},
		{"dangling arrow", "f : Int ->\n", true},
		{"stray brace", "}\n", false},
		{"unterminated string", "\"abc\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s session
			_, incomplete, err := s.submit(tt.input)
			if incomplete != tt.incomplete {
				t.Fatalf("incomplete = %v, want %v (err %v)", incomplete, tt.incomplete, err)
			}
			if !tt.incomplete && err == nil {
				t.Error("expected an error for input that cannot be completed")
			}
		})
	}
}
