package types

import "strings"

// Chain is an ordered list of types. For a signature every entry but the
// last is a parameter type and the last is the return type.
type Chain []Type

// Params returns the parameter types of a signature.
func (c Chain) Params() []Type {
	if len(c) == 0 {
		return nil
	}
	return c[:len(c)-1]
}

// Return returns the return type of a signature, or NoType if c is empty.
func (c Chain) Return() Type {
	if len(c) == 0 {
		return NoType
	}
	return c[len(c)-1]
}

// Equal reports positional handle equality.
func (c Chain) Equal(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Chain renders c as "Int -> Int".
func (r *Registry) Chain(c Chain) string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = r.Name(t)
	}
	return strings.Join(names, " -> ")
}
