package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic represents a single error reported to the user
type Diagnostic struct {
	Kind    Kind // zero when the message did not come from an *Error
	Message string
	Line    int
	Column  int
	File    string // optional file path
	Hint    string // optional suggestion
}

// Diagnostics manages a collection of diagnostic messages
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Errorf adds an error diagnostic with formatted message
func (d *Diagnostics) Errorf(line, col int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
	})
}

// ErrorWithHint adds an error diagnostic of the given kind with an
// optional hint
func (d *Diagnostics) ErrorWithHint(kind Kind, line, col int, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Kind:    kind,
		Message: msg,
		Line:    line,
		Column:  col,
		Hint:    hint,
	})
}

// HasErrors returns true if any diagnostic was recorded
func (d *Diagnostics) HasErrors() bool {
	return len(d.items) > 0
}

// Errors returns the recorded diagnostics in order
func (d *Diagnostics) Errors() []Diagnostic {
	return d.items
}

// Format returns human-readable messages, one per line:
//
//	error[main.ceos:3:10]: expected `Int` but got `String`
//	  hint: ...
func (d *Diagnostics) Format(filename string) string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		file := filename
		if item.File != "" {
			file = item.File
		}

		builder.WriteString(fmt.Sprintf("error[%s:%d:%d]: %s",
			file, item.Line, item.Column, item.Message))

		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}
		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
