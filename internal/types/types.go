// Package types owns the named types of one compilation. Types live in a
// Registry arena and are referred to by Type handles, so two resolutions
// of the same name compare equal with ==.
package types

import (
	"fmt"
	"strings"

	"github.com/ceos-lang/ceos/internal/diagnostic"
)

// Type is a handle into a Registry. The zero value is NoType.
type Type uint32

// NoType marks a node whose type is unknown or not a single type.
const NoType Type = 0

// Handles of the built-ins, valid for every Registry from NewRegistry.
const (
	Int Type = iota + 1
	Char
	Float
	Void
	List
	String
)

// Kind distinguishes the three forms a Type can take.
type Kind int

const (
	Invalid  Kind = iota
	Basic         // named primitive: Int, Char
	Data          // generic constructor with fixed arity: List/1
	Instance      // Data applied to arguments: List<Char>
)

func (k Kind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Data:
		return "data"
	case Instance:
		return "instance"
	default:
		return "invalid"
	}
}

type entry struct {
	kind  Kind
	name  string // declared name; for an Instance, its alias if any
	arity int    // Data only
	base  Type   // Instance only
	args  []Type // Instance only
}

// Registry owns every type of one compilation. It is not safe for
// concurrent use and is never shared between compilations.
type Registry struct {
	entries   []entry // index 0 is NoType
	names     map[string]Type
	instances map[string]Type // instanceKey -> handle
}

// NewRegistry returns a registry seeded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{
		entries:   []entry{{}},
		names:     make(map[string]Type),
		instances: make(map[string]Type),
	}
	r.RegisterBasic("Int")
	r.RegisterBasic("Char")
	r.RegisterBasic("Float")
	r.RegisterBasic("Void")
	r.RegisterGeneric("List", 1)
	str, err := r.Instantiate(List, Char)
	if err != nil {
		panic(err)
	}
	r.Define("String", str)
	return r
}

func (r *Registry) add(e entry) Type {
	r.entries = append(r.entries, e)
	return Type(len(r.entries) - 1)
}

// RegisterBasic adds a named primitive type. Re-registering an existing
// name rebinds it to a new handle.
func (r *Registry) RegisterBasic(name string) Type {
	t := r.add(entry{kind: Basic, name: name})
	r.names[name] = t
	return t
}

// RegisterGeneric adds a generic constructor taking arity arguments.
func (r *Registry) RegisterGeneric(name string, arity int) Type {
	t := r.add(entry{kind: Data, name: name, arity: arity})
	r.names[name] = t
	return t
}

// Define binds name to an existing type. The first name given to an
// instance becomes its display name.
func (r *Registry) Define(name string, t Type) {
	r.names[name] = t
	if e := r.entry(t); e != nil && e.kind == Instance && e.name == "" {
		e.name = name
	}
}

// Instantiate applies a generic constructor to args. Applying the same
// constructor to the same arguments always yields the same handle.
func (r *Registry) Instantiate(base Type, args ...Type) (Type, error) {
	e := r.entry(base)
	if e == nil || e.kind != Data {
		return NoType, fmt.Errorf("%s is not a generic type", r.Name(base))
	}
	if len(args) != e.arity {
		return NoType, fmt.Errorf("%s expects %d type argument(s), got %d", e.name, e.arity, len(args))
	}
	for _, arg := range args {
		if r.entry(arg) == nil {
			return NoType, fmt.Errorf("invalid type argument %d for %s", arg, e.name)
		}
	}

	key := instanceKey(base, args)
	if t, ok := r.instances[key]; ok {
		return t, nil
	}
	t := r.add(entry{kind: Instance, base: base, args: append([]Type(nil), args...)})
	r.instances[key] = t
	return t, nil
}

// Resolve returns the type registered under name.
func (r *Registry) Resolve(name string) (Type, error) {
	if t, ok := r.names[name]; ok {
		return t, nil
	}
	return NoType, diagnostic.Newf(diagnostic.UndefinedType, "undefined type `%s`", name)
}

// Kind returns the form of t, or Invalid for NoType and unknown handles.
func (r *Registry) Kind(t Type) Kind {
	if e := r.entry(t); e != nil {
		return e.kind
	}
	return Invalid
}

// Arity returns the number of type arguments a Data type takes.
func (r *Registry) Arity(t Type) int {
	if e := r.entry(t); e != nil && e.kind == Data {
		return e.arity
	}
	return 0
}

// Base and Args describe an Instance; both are empty for other kinds.
func (r *Registry) Base(t Type) Type {
	if e := r.entry(t); e != nil && e.kind == Instance {
		return e.base
	}
	return NoType
}

func (r *Registry) Args(t Type) []Type {
	if e := r.entry(t); e != nil && e.kind == Instance {
		return append([]Type(nil), e.args...)
	}
	return nil
}

// Name returns the display name of t.
func (r *Registry) Name(t Type) string {
	e := r.entry(t)
	if e == nil {
		return "?"
	}
	if e.name != "" {
		return e.name
	}
	return r.Structure(t)
}

// Structure renders t without aliases, e.g. List<Char> for String.
func (r *Registry) Structure(t Type) string {
	e := r.entry(t)
	if e == nil {
		return "?"
	}
	if e.kind != Instance {
		return e.name
	}
	args := make([]string, len(e.args))
	for i, arg := range e.args {
		args[i] = r.Name(arg)
	}
	return r.Name(e.base) + "<" + strings.Join(args, ", ") + ">"
}

// Len returns the number of types in the registry.
func (r *Registry) Len() int {
	return len(r.entries) - 1
}

func (r *Registry) entry(t Type) *entry {
	if t == NoType || int(t) >= len(r.entries) {
		return nil
	}
	return &r.entries[t]
}

func instanceKey(base Type, args []Type) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", base)
	for _, arg := range args {
		fmt.Fprintf(&sb, ",%d", arg)
	}
	return sb.String()
}
