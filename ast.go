// ast.go — syntax tree for the analyzed subset.
//
// The tree is deliberately small: the analyzer only needs enum declarations,
// typed let/var bindings, and switch statements with their case patterns.
// Case bodies and where-guard expressions are scanned for balance but not
// represented — the exhaustiveness algebra never looks at them beyond the
// fact that a guard exists.
//
// Pattern is a closed tagged union (Kind + payload fields), mirroring the
// discriminated pattern shapes the space algebra dispatches on. A pattern's
// static type is filled in by the resolver (resolve.go) before projection;
// it is not part of the parsed surface.
package swift

// File is one parsed source unit.
type File struct {
	Enums    []*EnumDecl
	Lets     []*LetDecl
	Switches []*SwitchStmt
}

// EnumDecl declares a sum type: enum Name { case a; case b(Int, Bool) }.
type EnumDecl struct {
	Name  string
	Cases []CaseDecl
	Line  int
	Col   int
}

// CaseDecl is one declared enum case with its payload element types.
// A payload written as (Int, Bool) is stored as the flattened element list;
// a payload written as ((Int, Bool)) is a single tuple-typed element.
type CaseDecl struct {
	Name    string
	Payload []TypeExpr
	Line    int
	Col     int
}

// TypeExprKind discriminates syntactic type forms.
type TypeExprKind int

const (
	TENamed TypeExprKind = iota
	TETuple
	TEOptional
)

// TypeExpr is an unresolved syntactic type annotation.
type TypeExpr struct {
	Kind  TypeExprKind
	Name  string     // TENamed
	Elems []TypeExpr // TETuple
	Inner *TypeExpr  // TEOptional
	Line  int
	Col   int
}

// LetDecl is a top-level typed binding: let x: Color = ...
// Initializers are skipped by the parser; only the annotation matters here.
type LetDecl struct {
	Name string
	Ann  TypeExpr
	Line int
	Col  int
}

// ScrutKind discriminates scrutinee expression forms.
type ScrutKind int

const (
	ScrutIdent ScrutKind = iota
	ScrutTuple
	ScrutBool
)

// ScrutExpr is a switch subject: an identifier with a declared type, a bool
// literal, or a tuple of those (multiple simultaneous scrutinees).
type ScrutExpr struct {
	Kind  ScrutKind
	Name  string // ScrutIdent
	Elems []ScrutExpr
	Bool  bool
	Line  int
	Col   int
}

// SwitchStmt is one switch statement with its case clauses.
type SwitchStmt struct {
	Subject ScrutExpr
	Clauses []*CaseClause
	Line    int
	Col     int
	// Closing-brace position; diagnostics use it as the fix-it insertion
	// point for generated case blocks.
	EndLine int
	EndCol  int
}

// CaseClause is a 'case p1, p2, ...:' or 'default:' clause.
type CaseClause struct {
	Items   []CaseItem
	Default bool
	Line    int
	Col     int
}

// CaseItem is a single pattern in a case label, with its optional guard.
type CaseItem struct {
	Pat     *Pattern
	Guarded bool // a where-clause was present
}

// PatternKind discriminates pattern shapes.
type PatternKind int

const (
	PatWildcard    PatternKind = iota // _
	PatBinding                        // x
	PatBool                           // true / false
	PatLiteral                        // 42, "s", 1.5 — expression pattern
	PatIs                             // is T
	PatVar                            // let x / var x wrapper
	PatParen                          // (p)
	PatOptionalSome                   // p?
	PatEnumElement                    // .tag or .tag(sub)
	PatTuple                          // (p1, p2, ...)
)

// Pattern is a closed tagged union over pattern shapes. Exactly the payload
// fields relevant to Kind are set.
type Pattern struct {
	Kind  PatternKind
	Name  string     // PatBinding, PatVar (bound name), PatEnumElement (tag), PatIs (type name)
	Bool  bool       // PatBool
	Sub   *Pattern   // PatVar, PatParen, PatOptionalSome, PatEnumElement
	Elems []*Pattern // PatTuple
	Line  int
	Col   int

	// Static type, assigned by the resolver from the scrutinee type.
	typ Type
}

// TypeOf returns the pattern's resolved static type (nil before resolution).
func (p *Pattern) TypeOf() Type { return p.typ }

// strip returns the semantics-providing pattern: the pattern with any
// transparent var/paren wrappers removed.
func (p *Pattern) strip() *Pattern {
	for p.Kind == PatVar || p.Kind == PatParen {
		p = p.Sub
	}
	return p
}
