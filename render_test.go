package swift

import "testing"

func TestFlattenNilForConcreteSpaces(t *testing.T) {
	e := NewEngine(nil, nil)
	opt := NewTypeTable().Optional(IntType)
	for _, s := range []Space{
		EmptySpace(),
		BoolSpace(true),
		TypeSpace(IntType),
		ConstructorSpace(opt, "none", nil),
		ConstructorSpace(opt, "some", []Space{TypeSpace(IntType)}),
	} {
		if got := e.Flatten(s); got != nil {
			t.Errorf("flatten(%s) = %v, want nil (already concrete)", s, got)
		}
	}
}

func TestFlattenCartesianExpansion(t *testing.T) {
	e := NewEngine(nil, nil)
	enum := &EnumType{Name: "E", Cases: []EnumCase{{Name: "a"}, {Name: "b"}}}
	pair := &TupleType{Elems: []Type{enum, enum}}
	ca := ConstructorSpace(enum, "a", nil)
	cb := ConstructorSpace(enum, "b", nil)

	s := ConstructorSpace(pair, "", []Space{
		DisjunctSpace([]Space{ca, cb}),
		DisjunctSpace([]Space{ca, cb}),
	})
	flats := e.Flatten(s)
	if len(flats) != 4 {
		t.Fatalf("got %d alternatives, want 4", len(flats))
	}
	want := []Space{
		ConstructorSpace(pair, "", []Space{ca, ca}),
		ConstructorSpace(pair, "", []Space{ca, cb}),
		ConstructorSpace(pair, "", []Space{cb, ca}),
		ConstructorSpace(pair, "", []Space{cb, cb}),
	}
	for i := range want {
		if !flats[i].Equal(want[i]) {
			t.Errorf("alternative %d: got %s, want %s", i, flats[i], want[i])
		}
	}
}

func TestFlattenNestedConstructorDisjunct(t *testing.T) {
	e := NewEngine(nil, nil)
	tbl := NewTypeTable()
	opt := tbl.Optional(IntType)
	opt2 := tbl.Optional(opt)
	inner := DisjunctSpace([]Space{
		ConstructorSpace(opt, "some", []Space{TypeSpace(IntType)}),
		ConstructorSpace(opt, "none", nil),
	})
	s := ConstructorSpace(opt2, "some", []Space{inner})
	flats := e.Flatten(s)
	if len(flats) != 2 {
		t.Fatalf("got %d alternatives, want 2", len(flats))
	}
	for _, f := range flats {
		if f.Kind() != SpaceConstructor || f.Head() != "some" {
			t.Errorf("alternative %s must stay wrapped in .some", f)
		}
	}
}

func TestShowForms(t *testing.T) {
	e := NewEngine(nil, nil)
	enum := &EnumType{Name: "E", Cases: []EnumCase{{Name: "a"}, {Name: "b", Payload: []Type{IntType}}}}
	pair := &TupleType{Elems: []Type{enum, BoolType}}
	ca := ConstructorSpace(enum, "a", nil)
	cb := ConstructorSpace(enum, "b", []Space{TypeSpace(IntType)})

	tests := []struct {
		space Space
		want  string
	}{
		{EmptySpace(), "[EMPTY]"},
		{BoolSpace(true), "true"},
		{BoolSpace(false), "false"},
		{TypeSpace(IntType), "_"},
		{ca, ".a"},
		{cb, ".b(_)"},
		{ConstructorSpace(pair, "", []Space{ca, BoolSpace(false)}), "(.a, false)"},
		{DisjunctSpace([]Space{ca, cb}), ".a | .b(_)"},
		// Simplification applies before rendering: empties vanish and
		// singleton disjunctions unwrap.
		{DisjunctSpace([]Space{EmptySpace(), ca}), ".a"},
		{ConstructorSpace(pair, "", []Space{DisjunctSpace([]Space{ca}), BoolSpace(true)}), "(.a, true)"},
	}
	for _, tt := range tests {
		if got := e.Show(tt.space); got != tt.want {
			t.Errorf("show(%s) = %q, want %q", tt.space, got, tt.want)
		}
	}
}
