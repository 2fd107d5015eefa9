package diagnostic

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal front-end error
type Kind int

const (
	UnexpectedToken Kind = iota + 1
	MissingTypeInformation
	UndefinedType
	ArityMismatch
	TypeMismatch
	UnsupportedArgumentForm
)

// String returns the stable name of the error kind
func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected-token"
	case MissingTypeInformation:
		return "missing-type-information"
	case UndefinedType:
		return "undefined-type"
	case ArityMismatch:
		return "arity-mismatch"
	case TypeMismatch:
		return "type-mismatch"
	case UnsupportedArgumentForm:
		return "unsupported-argument-form"
	default:
		return "unknown"
	}
}

// Hint returns a short suggestion shown under the diagnostic, if any
func (k Kind) Hint() string {
	switch k {
	case MissingTypeInformation:
		return "declare a signature first, e.g. `name : Int -> Int`"
	case UndefinedType:
		return "built-in types are Int, Char, Float, Void, List and String"
	case UnsupportedArgumentForm:
		return "function parameters must be plain identifiers"
	default:
		return ""
	}
}

// Error is a fatal error that aborts the current parse.
type Error struct {
	Kind    Kind
	Message string
	Start   int
	End     int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// Newf builds an Error of the given kind with no position.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At sets the error's position and returns it.
func (e *Error) At(start, end, line, col int) *Error {
	e.Start, e.End, e.Line, e.Column = start, end, line, col
	return e
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// FromError records err as an error diagnostic. Errors that are not
// *Error are recorded without a position.
func (d *Diagnostics) FromError(err error) {
	var de *Error
	if !errors.As(err, &de) {
		d.Errorf(0, 0, "%s", err)
		return
	}
	d.ErrorWithHint(de.Kind, de.Line, de.Column, de.Message, de.Kind.Hint())
}
