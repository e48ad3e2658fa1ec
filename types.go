// types.go — the analyzed subset's type representation.
//
// Goals (deliberately narrow — this is an analyzer, not a type checker):
//  1. Represent exactly what the space algebra can decompose: booleans,
//     declared enums (with associated-value element lists), tuples, and the
//     optional sugar T? (synthesized as a two-case some/none enum). Every
//     other builtin (Int, String, Double, Character) is opaque: the algebra
//     never decomposes it and never proves it covered without a catch-all.
//  2. Cheap equality. Enums are interned by the table that declared them, so
//     identity comparison works; tuples compare structurally; optionals are
//     interned per wrapped type so Int? == Int? holds across mentions.
//  3. Keep the algebra decoupled. space.go consumes types only through the
//     TypeInfo oracle at the bottom of this file, never through the concrete
//     structs — the same algebra would run against any front end that can
//     answer those six queries.
package swift

import (
	"fmt"
	"strings"
)

// Type is a resolved type handle. Concrete implementations live in this
// file; the algebra treats values as opaque and queries them via TypeInfo.
type Type interface {
	String() string
}

// BuiltinType is a primitive, non-decomposable type (except Bool, which the
// algebra decomposes into its two constants).
type BuiltinType struct {
	name string
}

func (t *BuiltinType) String() string { return t.name }

// Predeclared builtins. Pointer identity is the equality for these.
var (
	IntType       = &BuiltinType{name: "Int"}
	StringType    = &BuiltinType{name: "String"}
	DoubleType    = &BuiltinType{name: "Double"}
	BoolType      = &BuiltinType{name: "Bool"}
	CharacterType = &BuiltinType{name: "Character"}
)

var builtinTypes = map[string]*BuiltinType{
	"Int":       IntType,
	"String":    StringType,
	"Double":    DoubleType,
	"Bool":      BoolType,
	"Character": CharacterType,
}

// EnumCase is one resolved enum case: tag plus payload element types.
// The payload list is already flattened the way decomposition wants it:
// `case c(Int, Bool)` has two elements, `case c((Int, Bool))` has one
// tuple-typed element, `case c` has none.
type EnumCase struct {
	Name    string
	Payload []Type
}

// EnumType is a declared sum type, or a synthesized optional (Wrapped set).
type EnumType struct {
	Name    string
	Cases   []EnumCase
	Wrapped Type // non-nil for T? sugar; Cases are then some(Wrapped)/none
}

func (t *EnumType) String() string {
	if t.Wrapped != nil {
		if _, tuple := t.Wrapped.(*TupleType); tuple {
			return t.Wrapped.String() + "?"
		}
		if inner, ok := t.Wrapped.(*EnumType); ok && inner.Wrapped != nil {
			// (Int?)? renders with parens for readability
			return "(" + inner.String() + ")?"
		}
		return t.Wrapped.String() + "?"
	}
	return t.Name
}

// Case returns the case named tag, if declared.
func (t *EnumType) Case(tag string) (EnumCase, bool) {
	for _, c := range t.Cases {
		if c.Name == tag {
			return c, true
		}
	}
	return EnumCase{}, false
}

// TupleType is a positional product type with two or more elements.
type TupleType struct {
	Elems []Type
}

func (t *TupleType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range t.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// typesEqual is the equality the algebra relies on: identity for builtins
// and enums (both interned), structural for tuples.
func typesEqual(a, b Type) bool {
	if a == b {
		return true
	}
	at, ok := a.(*TupleType)
	if !ok {
		return false
	}
	bt, ok := b.(*TupleType)
	if !ok || len(at.Elems) != len(bt.Elems) {
		return false
	}
	for i := range at.Elems {
		if !typesEqual(at.Elems[i], bt.Elems[i]) {
			return false
		}
	}
	return true
}

// ──────────────────────────────── type table ────────────────────────────────

// TypeTable resolves annotations and scrutinee expressions against the
// declarations of one source unit.
type TypeTable struct {
	enums     map[string]*EnumType
	optionals map[string]*EnumType // interned T? per wrapped-type key
	vars      map[string]Type      // let/var bindings
}

// NewTypeTable returns an empty table.
func NewTypeTable() *TypeTable {
	return &TypeTable{
		enums:     map[string]*EnumType{},
		optionals: map[string]*EnumType{},
		vars:      map[string]Type{},
	}
}

// Build registers every declaration of f. Enum names are registered before
// payload types resolve, so cases may refer to any enum in the file
// (including the declaring one; recursive payloads stay opaque Type nodes
// until decomposed on demand, so the algebra never unrolls them eagerly).
func (tt *TypeTable) Build(f *File) []error {
	var errs []error
	for _, d := range f.Enums {
		if _, dup := tt.enums[d.Name]; dup {
			errs = append(errs, &ParseError{Line: d.Line, Col: d.Col, Msg: fmt.Sprintf("duplicate enum %q", d.Name)})
			continue
		}
		if _, shadow := builtinTypes[d.Name]; shadow {
			errs = append(errs, &ParseError{Line: d.Line, Col: d.Col, Msg: fmt.Sprintf("enum %q shadows a builtin type", d.Name)})
			continue
		}
		// Cases is non-nil even for uninhabited enums: the algebra takes a
		// nil case list to mean "not an enum", and an uninhabited enum must
		// still decompose (to the empty disjunction).
		tt.enums[d.Name] = &EnumType{Name: d.Name, Cases: []EnumCase{}}
	}
	for _, d := range f.Enums {
		et := tt.enums[d.Name]
		if et == nil {
			continue
		}
		seen := map[string]bool{}
		for _, c := range d.Cases {
			if seen[c.Name] {
				errs = append(errs, &ParseError{Line: c.Line, Col: c.Col, Msg: fmt.Sprintf("duplicate case %q in enum %q", c.Name, d.Name)})
				continue
			}
			seen[c.Name] = true
			ec := EnumCase{Name: c.Name}
			for _, te := range c.Payload {
				ty, err := tt.Resolve(te)
				if err != nil {
					errs = append(errs, err)
					ty = IntType // placeholder keeps arity stable for later checks
				}
				ec.Payload = append(ec.Payload, ty)
			}
			et.Cases = append(et.Cases, ec)
		}
	}
	for _, d := range f.Lets {
		ty, err := tt.Resolve(d.Ann)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tt.vars[d.Name] = ty
	}
	return errs
}

// Resolve turns a syntactic type annotation into a Type.
func (tt *TypeTable) Resolve(te TypeExpr) (Type, error) {
	switch te.Kind {
	case TENamed:
		if bt, ok := builtinTypes[te.Name]; ok {
			return bt, nil
		}
		if et, ok := tt.enums[te.Name]; ok {
			return et, nil
		}
		return nil, &ParseError{Line: te.Line, Col: te.Col, Msg: fmt.Sprintf("unknown type %q", te.Name)}
	case TETuple:
		elems := make([]Type, 0, len(te.Elems))
		for _, e := range te.Elems {
			ty, err := tt.Resolve(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ty)
		}
		return &TupleType{Elems: elems}, nil
	case TEOptional:
		inner, err := tt.Resolve(*te.Inner)
		if err != nil {
			return nil, err
		}
		return tt.Optional(inner), nil
	default:
		panic("unknown type expression kind")
	}
}

// Optional returns the interned T? enum for the wrapped type.
func (tt *TypeTable) Optional(wrapped Type) *EnumType {
	key := wrapped.String()
	if et, ok := tt.optionals[key]; ok {
		return et
	}
	et := &EnumType{
		Wrapped: wrapped,
		Cases: []EnumCase{
			{Name: "some", Payload: []Type{wrapped}},
			{Name: "none"},
		},
	}
	tt.optionals[key] = et
	return et
}

// Var returns the declared type of a let/var binding.
func (tt *TypeTable) Var(name string) (Type, bool) {
	t, ok := tt.vars[name]
	return t, ok
}

// ScrutineeType computes the type of a switch subject. Multiple simultaneous
// scrutinees form a tuple type.
func (tt *TypeTable) ScrutineeType(e ScrutExpr) (Type, error) {
	switch e.Kind {
	case ScrutIdent:
		t, ok := tt.vars[e.Name]
		if !ok {
			return nil, &ParseError{Line: e.Line, Col: e.Col, Msg: fmt.Sprintf("switch subject %q has no declared type", e.Name)}
		}
		return t, nil
	case ScrutBool:
		return BoolType, nil
	case ScrutTuple:
		elems := make([]Type, 0, len(e.Elems))
		for _, sub := range e.Elems {
			t, err := tt.ScrutineeType(sub)
			if err != nil {
				return nil, err
			}
			elems = append(elems, t)
		}
		return &TupleType{Elems: elems}, nil
	default:
		panic("unknown scrutinee kind")
	}
}

// ──────────────────────────────── type oracle ───────────────────────────────

// TypeInfo is the narrow query surface the space algebra consumes. It is the
// only coupling between the algebra and a host front end's type system.
type TypeInfo interface {
	// IsBool reports whether t is the boolean type.
	IsBool(t Type) bool
	// IsTuple reports whether t is a tuple type.
	IsTuple(t Type) bool
	// Equal reports type equality.
	Equal(a, b Type) bool
	// Cases returns an enum's cases, or nil if t is not an enum.
	Cases(t Type) []EnumCase
	// Elements returns a tuple's element types, or nil if t is not a tuple.
	Elements(t Type) []Type
	// Format renders t for diagnostics.
	Format(t Type) string
}

type stdTypeInfo struct{}

// StdTypes is the TypeInfo implementation for this package's own types.
var StdTypes TypeInfo = stdTypeInfo{}

func (stdTypeInfo) IsBool(t Type) bool { return t == BoolType }

func (stdTypeInfo) IsTuple(t Type) bool {
	_, ok := t.(*TupleType)
	return ok
}

func (stdTypeInfo) Equal(a, b Type) bool { return typesEqual(a, b) }

func (stdTypeInfo) Cases(t Type) []EnumCase {
	if et, ok := t.(*EnumType); ok {
		return et.Cases
	}
	return nil
}

func (stdTypeInfo) Elements(t Type) []Type {
	if tt, ok := t.(*TupleType); ok {
		return tt.Elems
	}
	return nil
}

func (stdTypeInfo) Format(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
