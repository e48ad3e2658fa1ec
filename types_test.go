package swift

import (
	"strings"
	"testing"
)

func buildTable(t *testing.T, src string) *TypeTable {
	t.Helper()
	f, err := ParseFile(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tt := NewTypeTable()
	if errs := tt.Build(f); len(errs) != 0 {
		t.Fatalf("build: %v", errs)
	}
	return tt
}

func TestBuildRegistersDeclarations(t *testing.T) {
	tt := buildTable(t, `
enum Color { case red, green, blue(Int) }
let c: Color
let n: Int?
`)
	ty, ok := tt.Var("c")
	if !ok {
		t.Fatal("binding c not registered")
	}
	et, ok := ty.(*EnumType)
	if !ok || et.Name != "Color" {
		t.Fatalf("c resolved to %v", ty)
	}
	blue, ok := et.Case("blue")
	if !ok || len(blue.Payload) != 1 || blue.Payload[0] != IntType {
		t.Errorf("blue case: %+v", blue)
	}
	if _, ok := et.Case("purple"); ok {
		t.Error("undeclared case found")
	}

	nt, _ := tt.Var("n")
	opt, ok := nt.(*EnumType)
	if !ok || opt.Wrapped != IntType {
		t.Fatalf("n resolved to %v", nt)
	}
}

func TestRecursiveEnumPayload(t *testing.T) {
	tt := buildTable(t, `
enum Tree { case leaf, node(Tree, Tree) }
let t: Tree
`)
	ty, _ := tt.Var("t")
	et := ty.(*EnumType)
	node, _ := et.Case("node")
	if len(node.Payload) != 2 || node.Payload[0] != et {
		t.Errorf("recursive payload not resolved to the declaring enum: %+v", node)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"duplicate enum", "enum E { case a }\nenum E { case b }", "duplicate enum"},
		{"builtin shadow", "enum Int { case a }", "shadows a builtin"},
		{"duplicate case", "enum E { case a, a }", "duplicate case"},
		{"unknown payload type", "enum E { case a(Missing) }", "unknown type"},
		{"unknown annotation", "let x: Missing", "unknown type"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseFile(tc.src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			errs := NewTypeTable().Build(f)
			if len(errs) == 0 {
				t.Fatal("expected a build error")
			}
			if !strings.Contains(errs[0].Error(), tc.want) {
				t.Errorf("error %q does not mention %q", errs[0], tc.want)
			}
		})
	}
}

func TestPayloadErrorKeepsArity(t *testing.T) {
	// An unresolvable payload type is replaced by a placeholder so the case
	// keeps its declared arity for later pattern binding.
	f, err := ParseFile("enum E { case p(Missing, Int) }\nlet x: E")
	if err != nil {
		t.Fatal(err)
	}
	tt := NewTypeTable()
	if errs := tt.Build(f); len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	ty, _ := tt.Var("x")
	p, _ := ty.(*EnumType).Case("p")
	if len(p.Payload) != 2 {
		t.Errorf("payload arity %d, want 2", len(p.Payload))
	}
}

func TestOptionalInterning(t *testing.T) {
	tt := NewTypeTable()
	a := tt.Optional(IntType)
	b := tt.Optional(IntType)
	if a != b {
		t.Error("Int? not interned")
	}
	if tt.Optional(StringType) == a {
		t.Error("String? interned onto Int?")
	}
	nested := tt.Optional(a)
	if nested == a {
		t.Error("Int?? interned onto Int?")
	}
}

func TestTypeStrings(t *testing.T) {
	tt := NewTypeTable()
	opt := tt.Optional(IntType)
	tests := []struct {
		ty   Type
		want string
	}{
		{IntType, "Int"},
		{opt, "Int?"},
		{tt.Optional(opt), "(Int?)?"},
		{&TupleType{Elems: []Type{IntType, BoolType}}, "(Int, Bool)"},
		{tt.Optional(&TupleType{Elems: []Type{IntType, BoolType}}), "(Int, Bool)?"},
	}
	for _, tc := range tests {
		if got := tc.ty.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTypesEqual(t *testing.T) {
	e1 := &EnumType{Name: "E"}
	e2 := &EnumType{Name: "E"}
	if typesEqual(e1, e2) {
		t.Error("distinct enum values must not compare equal (identity semantics)")
	}
	if !typesEqual(e1, e1) {
		t.Error("identity must hold")
	}
	t1 := &TupleType{Elems: []Type{IntType, BoolType}}
	t2 := &TupleType{Elems: []Type{IntType, BoolType}}
	t3 := &TupleType{Elems: []Type{BoolType, IntType}}
	if !typesEqual(t1, t2) {
		t.Error("structurally equal tuples must compare equal")
	}
	if typesEqual(t1, t3) {
		t.Error("element order matters")
	}
	if typesEqual(t1, IntType) {
		t.Error("tuple vs builtin")
	}
}

func TestScrutineeTypes(t *testing.T) {
	tt := buildTable(t, "let a: Bool\nlet b: Int")
	ty, err := tt.ScrutineeType(ScrutExpr{Kind: ScrutTuple, Elems: []ScrutExpr{
		{Kind: ScrutIdent, Name: "a"},
		{Kind: ScrutIdent, Name: "b"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	tup, ok := ty.(*TupleType)
	if !ok || tup.Elems[0] != BoolType || tup.Elems[1] != IntType {
		t.Fatalf("scrutinee type %v", ty)
	}

	if ty, err = tt.ScrutineeType(ScrutExpr{Kind: ScrutBool, Bool: true}); err != nil || ty != BoolType {
		t.Errorf("bool scrutinee: %v, %v", ty, err)
	}

	if _, err = tt.ScrutineeType(ScrutExpr{Kind: ScrutIdent, Name: "zzz"}); err == nil {
		t.Error("undeclared subject must fail")
	}
}

func TestUninhabitedEnumStillRegistered(t *testing.T) {
	tt := buildTable(t, "enum Never {}\nlet n: Never")
	ty, _ := tt.Var("n")
	et := ty.(*EnumType)
	if et.Cases == nil {
		t.Fatal("uninhabited enum must carry a non-nil (empty) case list")
	}
	if len(et.Cases) != 0 {
		t.Fatalf("got %d cases", len(et.Cases))
	}
}
