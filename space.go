// space.go — the pattern-space algebra behind switch exhaustiveness.
//
// WHAT THIS MODULE DOES
// =====================
// A Space is a symbolic set of runtime values. A switch is exhaustive when
// the space of the subject's type minus the union of the spaces projected
// from its case patterns is empty; whatever remains of that difference is
// the precise set of unmatched values, which render.go turns into readable
// missing-case suggestions. The approach follows the space algebra of
// Fengyun Liu and the pattern-matching warnings of Luc Maranget.
//
// Spaces are immutable value trees. Child slices are shared structurally and
// never mutated after construction: every algebraic operation builds new
// spaces around existing children, so subtree reuse during minus/intersect
// rewrites is free. Nothing here caches across checks; a Space lives for one
// exhaustiveness computation.
//
// Large or unbounded domains (Int, String, ...) are never decomposed. The
// algebra treats them as opaque: a Type space over them can only be covered
// by a wildcard, never by enumeration.
//
// Accessors panic when used against the wrong kind, and the pairwise
// operations panic on kind combinations the algebra can never produce. Both
// indicate an upstream contract violation (malformed pattern tree or
// inconsistent arity), not a user-level error — the algebra itself is total
// over well-formed inputs.
package swift

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SpaceKind discriminates the Space variants.
type SpaceKind uint8

const (
	// SpaceEmpty is the empty set of values.
	SpaceEmpty SpaceKind = iota
	// SpaceType is every value of one type, not yet decomposed.
	SpaceType
	// SpaceConstructor is the set of values built by one constructor tag,
	// with one sub-space per payload position. An empty tag means a tuple.
	SpaceConstructor
	// SpaceDisjunct is a union of sub-spaces.
	SpaceDisjunct
	// SpaceBool is the singleton {true} or {false}.
	SpaceBool
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceEmpty:
		return "Empty"
	case SpaceType:
		return "Type"
	case SpaceConstructor:
		return "Constructor"
	case SpaceDisjunct:
		return "Disjunct"
	case SpaceBool:
		return "BooleanConstant"
	default:
		return fmt.Sprintf("SpaceKind(%d)", int(k))
	}
}

// Space is a symbolic set of runtime values of some type(s).
type Space struct {
	kind SpaceKind
	typ  Type    // SpaceType, SpaceConstructor
	head string  // SpaceConstructor; "" is the tuple constructor
	subs []Space // SpaceConstructor payloads, SpaceDisjunct members
	val  bool    // SpaceBool
}

// EmptySpace returns the empty space.
func EmptySpace() Space { return Space{kind: SpaceEmpty} }

// TypeSpace returns the space of all values of t.
func TypeSpace(t Type) Space { return Space{kind: SpaceType, typ: t} }

// ConstructorSpace returns the space of values matching one constructor tag
// with the given payload sub-spaces. An empty head denotes a tuple.
func ConstructorSpace(t Type, head string, subs []Space) Space {
	return Space{kind: SpaceConstructor, typ: t, head: head, subs: subs}
}

// DisjunctSpace returns the union of the given sub-spaces. The list is kept
// as written; flattening and empty-removal happen lazily in Simplify.
func DisjunctSpace(subs []Space) Space {
	return Space{kind: SpaceDisjunct, subs: subs}
}

// BoolSpace returns the singleton boolean-constant space.
func BoolSpace(v bool) Space { return Space{kind: SpaceBool, val: v} }

// Kind returns the variant of the space.
func (s Space) Kind() SpaceKind { return s.kind }

// IsEmpty reports whether the space is the Empty variant. (It does not prove
// semantic emptiness of non-Empty shapes; use Simplify first for that.)
func (s Space) IsEmpty() bool { return s.kind == SpaceEmpty }

// Type returns the type handle of a Type or Constructor space.
func (s Space) Type() Type {
	if s.kind != SpaceType && s.kind != SpaceConstructor {
		panic("space: Type() on " + s.kind.String() + " space")
	}
	return s.typ
}

// Head returns the constructor tag; empty for tuples.
func (s Space) Head() string {
	if s.kind != SpaceConstructor {
		panic("space: Head() on " + s.kind.String() + " space")
	}
	return s.head
}

// Subs returns the children of a Constructor or Disjunct space.
func (s Space) Subs() []Space {
	if s.kind != SpaceConstructor && s.kind != SpaceDisjunct {
		panic("space: Subs() on " + s.kind.String() + " space")
	}
	return s.subs
}

// BoolValue returns the constant of a BooleanConstant space.
func (s Space) BoolValue() bool {
	if s.kind != SpaceBool {
		panic("space: BoolValue() on " + s.kind.String() + " space")
	}
	return s.val
}

// Equal reports structural equality of two spaces (same shape, same types,
// same tags and constants). Used by tests and by go-cmp.
func (s Space) Equal(o Space) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case SpaceEmpty:
		return true
	case SpaceBool:
		return s.val == o.val
	case SpaceType:
		return typesEqual(s.typ, o.typ)
	case SpaceConstructor:
		if s.head != o.head || !typesEqual(s.typ, o.typ) || len(s.subs) != len(o.subs) {
			return false
		}
	case SpaceDisjunct:
		if len(s.subs) != len(o.subs) {
			return false
		}
	}
	for i := range s.subs {
		if !s.subs[i].Equal(o.subs[i]) {
			return false
		}
	}
	return true
}

// String renders the raw, un-normalized shape for debugging. User-facing
// rendering lives in render.go.
func (s Space) String() string {
	switch s.kind {
	case SpaceEmpty:
		return "[EMPTY]"
	case SpaceBool:
		if s.val {
			return "true"
		}
		return "false"
	case SpaceType:
		if s.typ != nil {
			return s.typ.String() + "_"
		}
		return "_"
	case SpaceDisjunct:
		parts := make([]string, len(s.subs))
		for i, sub := range s.subs {
			parts[i] = sub.String()
		}
		return "DISJOIN(" + strings.Join(parts, " | ") + ")"
	case SpaceConstructor:
		var b strings.Builder
		if s.head != "" {
			b.WriteByte('.')
			b.WriteString(s.head)
		}
		if len(s.subs) == 0 {
			return b.String()
		}
		b.WriteByte('(')
		for i, sub := range s.subs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(sub.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		panic("space: unknown kind")
	}
}

// ─────────────────────────────────── engine ─────────────────────────────────

// Engine evaluates the space algebra against one type oracle. It is
// stateless apart from the oracle and logger and safe for reuse across
// checks.
type Engine struct {
	info TypeInfo
	log  *zap.Logger
}

// NewEngine returns an engine over the given type oracle. A nil info
// defaults to StdTypes, a nil logger to a no-op logger.
func NewEngine(info TypeInfo, log *zap.Logger) *Engine {
	if info == nil {
		info = StdTypes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{info: info, log: log}
}

// examineDecomp collapses an operation's result list: no survivors is the
// empty space, one survivor stands alone, several form a disjunction.
func examineDecomp(spaces []Space) Space {
	switch len(spaces) {
	case 0:
		return EmptySpace()
	case 1:
		return spaces[0]
	default:
		return DisjunctSpace(spaces)
	}
}

// CanDecompose reports whether t can be expanded into constructor spaces:
// booleans, enums (with or without payloads), and tuples can; everything
// else is opaque.
func (e *Engine) CanDecompose(t Type) bool {
	return e.info.IsBool(t) || e.info.IsTuple(t) || e.info.Cases(t) != nil
}

// Decompose expands t into its component constructor spaces: a boolean into
// its two constants, an enum into one constructor per case with payload
// element types wrapped as Type spaces, a tuple into a single empty-tag
// constructor over its element types. Recursive payloads stay as opaque Type
// children and only decompose when an operation demands it, so the algebra
// never unrolls a recursive enum.
func (e *Engine) Decompose(t Type) []Space {
	switch {
	case e.info.IsBool(t):
		return []Space{BoolSpace(true), BoolSpace(false)}
	case e.info.Cases(t) != nil:
		cases := e.info.Cases(t)
		out := make([]Space, 0, len(cases))
		for _, c := range cases {
			elems := make([]Space, 0, len(c.Payload))
			for _, p := range c.Payload {
				elems = append(elems, TypeSpace(p))
			}
			out = append(out, ConstructorSpace(t, c.Name, elems))
		}
		return out
	case e.info.IsTuple(t):
		elems := e.info.Elements(t)
		subs := make([]Space, 0, len(elems))
		for _, el := range elems {
			subs = append(subs, TypeSpace(el))
		}
		return []Space{ConstructorSpace(t, "", subs)}
	default:
		panic("space: decompose of non-decomposable type " + e.info.Format(t))
	}
}

// decomposed wraps a type's decomposition in a raw disjunction.
func (e *Engine) decomposed(t Type) Space {
	return DisjunctSpace(e.Decompose(t))
}

// IsSubspace reports whether every value in a is also in b (a ⊆ b).
func (e *Engine) IsSubspace(a, b Space) bool {
	if a.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}

	switch a.kind {
	case SpaceDisjunct:
		// (S1 | ... | Sn) <= S iff every Si <= S
		for _, sub := range a.subs {
			if !e.IsSubspace(sub, b) {
				return false
			}
		}
		return true

	case SpaceType:
		switch b.kind {
		case SpaceType:
			if e.info.Equal(a.typ, b.typ) {
				return true
			}
			if e.CanDecompose(a.typ) && e.IsSubspace(e.decomposed(a.typ), b) {
				return true
			}
			if e.CanDecompose(b.typ) {
				return e.IsSubspace(a, e.decomposed(b.typ))
			}
			// Opaque, unequal types: conservatively covered. An opaque type
			// only ever meets a wildcard of its own type in well-typed
			// input, so this cannot hide a genuine gap.
			return true
		case SpaceDisjunct:
			for _, sub := range b.subs {
				if e.IsSubspace(a, sub) {
					return true
				}
			}
			if !e.CanDecompose(a.typ) {
				return false
			}
			return e.IsSubspace(e.decomposed(a.typ), b)
		case SpaceConstructor:
			if e.CanDecompose(a.typ) {
				return e.IsSubspace(e.decomposed(a.typ), b)
			}
			// An opaque type is always larger than one constructor.
			return false
		case SpaceBool:
			return false
		}

	case SpaceConstructor:
		switch b.kind {
		case SpaceType:
			// Type correctness is assumed, not re-verified.
			return true
		case SpaceConstructor:
			if a.head != b.head {
				return false
			}
			// A bare tag (no payload children) covers any payload.
			if len(b.subs) == 0 {
				return true
			}
			for i := range a.subs {
				if i >= len(b.subs) {
					break
				}
				if !e.IsSubspace(a.subs[i], b.subs[i]) {
					return false
				}
			}
			return true
		case SpaceDisjunct:
			for _, sub := range b.subs {
				if e.IsSubspace(a, sub) {
					return true
				}
			}
			return false
		case SpaceBool:
			return false
		}

	case SpaceBool:
		switch b.kind {
		case SpaceType:
			return e.info.IsBool(b.typ)
		case SpaceBool:
			return a.val == b.val
		case SpaceDisjunct:
			for _, sub := range b.subs {
				if e.IsSubspace(a, sub) {
					return true
				}
			}
			return false
		case SpaceConstructor:
			return false
		}
	}
	panic(fmt.Sprintf("space: uncovered pair in subspace: %s vs %s", a.kind, b.kind))
}

// Intersect returns the largest space contained in both a and b.
func (e *Engine) Intersect(a, b Space) Space {
	if a.IsEmpty() || b.IsEmpty() {
		return EmptySpace()
	}

	// A disjunction on either side distributes; empty results drop out.
	if b.kind == SpaceDisjunct {
		var kept []Space
		for _, sub := range b.subs {
			if r := e.Intersect(a, sub); !r.IsEmpty() {
				kept = append(kept, r)
			}
		}
		return examineDecomp(kept)
	}
	if a.kind == SpaceDisjunct {
		var kept []Space
		for _, sub := range a.subs {
			if r := e.Intersect(sub, b); !r.IsEmpty() {
				kept = append(kept, r)
			}
		}
		return examineDecomp(kept)
	}

	switch a.kind {
	case SpaceType:
		switch b.kind {
		case SpaceType:
			if e.info.Equal(a.typ, b.typ) {
				return b
			}
			if e.CanDecompose(a.typ) {
				return e.Intersect(examineDecomp(e.Decompose(a.typ)), b)
			}
			if e.CanDecompose(b.typ) {
				return e.Intersect(a, examineDecomp(e.Decompose(b.typ)))
			}
			return b
		case SpaceConstructor:
			if e.CanDecompose(a.typ) {
				return e.Intersect(examineDecomp(e.Decompose(a.typ)), b)
			}
			return b
		case SpaceBool:
			if e.CanDecompose(a.typ) {
				return e.Intersect(examineDecomp(e.Decompose(a.typ)), b)
			}
			return EmptySpace()
		}

	case SpaceConstructor:
		switch b.kind {
		case SpaceType:
			return a
		case SpaceConstructor:
			if a.head != b.head {
				return EmptySpace()
			}
			// A bare tag on either side places no payload constraint; the
			// intersection is the other, more constrained, operand.
			if len(b.subs) == 0 {
				return a
			}
			if len(a.subs) == 0 {
				return b
			}
			params := make([]Space, 0, len(a.subs))
			for i := range a.subs {
				if i >= len(b.subs) {
					break
				}
				sect := e.Intersect(a.subs[i], b.subs[i])
				if e.Simplify(sect).IsEmpty() {
					// One impossible payload position empties the whole
					// constructor.
					return EmptySpace()
				}
				params = append(params, sect)
			}
			return ConstructorSpace(a.typ, a.head, params)
		case SpaceBool:
			return EmptySpace()
		}

	case SpaceBool:
		switch b.kind {
		case SpaceType:
			if e.info.IsBool(b.typ) {
				return a
			}
			if e.CanDecompose(b.typ) {
				return e.Intersect(a, examineDecomp(e.Decompose(b.typ)))
			}
			return EmptySpace()
		case SpaceBool:
			if a.val == b.val {
				return a
			}
			return EmptySpace()
		case SpaceConstructor:
			return EmptySpace()
		}
	}
	panic(fmt.Sprintf("space: uncovered pair in intersect: %s vs %s", a.kind, b.kind))
}

// Minus returns the remainder of a after subtracting b (a \ b): empty when b
// completely covers a, otherwise the smallest uncovered set the algebra can
// name.
func (e *Engine) Minus(a, b Space) Space {
	if a.IsEmpty() {
		return EmptySpace()
	}
	if b.IsEmpty() {
		return a
	}

	// Subtracting a disjunction folds one member at a time.
	if b.kind == SpaceDisjunct {
		acc := a
		for _, sub := range b.subs {
			acc = e.Minus(acc, sub)
		}
		return acc
	}
	// A disjunction loses b from each member independently.
	if a.kind == SpaceDisjunct {
		rest := make([]Space, 0, len(a.subs))
		for _, sub := range a.subs {
			rest = append(rest, e.Minus(sub, b))
		}
		return examineDecomp(rest)
	}

	switch a.kind {
	case SpaceType:
		switch b.kind {
		case SpaceType:
			if e.info.Equal(a.typ, b.typ) {
				return EmptySpace()
			}
			if e.CanDecompose(a.typ) {
				return e.Intersect(examineDecomp(e.Decompose(a.typ)), b)
			}
			if e.CanDecompose(b.typ) {
				return e.Intersect(a, examineDecomp(e.Decompose(b.typ)))
			}
			return EmptySpace()
		case SpaceConstructor:
			if e.CanDecompose(a.typ) {
				return e.Minus(examineDecomp(e.Decompose(a.typ)), b)
			}
			return a
		case SpaceBool:
			if e.CanDecompose(a.typ) {
				return e.Minus(examineDecomp(e.Decompose(a.typ)), b)
			}
			return a
		}

	case SpaceConstructor:
		switch b.kind {
		case SpaceType:
			return EmptySpace()
		case SpaceConstructor:
			// Different tags never overlap; nothing is removed.
			if a.head != b.head {
				return a
			}
			// A matching bare tag covers the entire constructor space.
			if len(b.subs) == 0 {
				return EmptySpace()
			}
			var rest []Space
			foundBad := false
			for i := range a.subs {
				if i >= len(b.subs) {
					break
				}
				s1, s2 := a.subs[i], b.subs[i]
				// A payload position with an empty intersection makes the
				// two constructor spaces wholly disjoint: nothing of a is
				// covered, so a survives unchanged.
				if e.Simplify(e.Intersect(s1, s2)).IsEmpty() {
					return a
				}
				if !e.IsSubspace(s1, s2) {
					foundBad = true
					// Substitute this position's remainder into a copy of
					// a's payload list, holding the other positions fixed.
					// This index-wise expansion is what names partial gaps
					// like (.some(_), .none) precisely.
					params := make([]Space, len(a.subs))
					copy(params, a.subs)
					params[i] = e.Minus(s1, s2)
					rest = append(rest, ConstructorSpace(a.typ, a.head, params))
				}
			}
			if foundBad {
				return examineDecomp(rest)
			}
			return EmptySpace()
		case SpaceBool:
			return EmptySpace()
		}

	case SpaceBool:
		switch b.kind {
		case SpaceType:
			if e.info.IsBool(b.typ) {
				return EmptySpace()
			}
			if e.CanDecompose(b.typ) {
				return e.Minus(a, examineDecomp(e.Decompose(b.typ)))
			}
			return a
		case SpaceBool:
			if a.val == b.val {
				return EmptySpace()
			}
			return a
		case SpaceConstructor:
			return a
		}
	}
	panic(fmt.Sprintf("space: uncovered pair in minus: %s vs %s", a.kind, b.kind))
}

// Simplify normalizes a space's shape without changing the set it denotes:
// payload positions simplify recursively and an empty one empties the whole
// constructor; disjunctions drop empty members and unwrap singletons; a Type
// space over a type whose decomposition is empty (an uninhabited enum)
// becomes empty.
func (e *Engine) Simplify(s Space) Space {
	switch s.kind {
	case SpaceConstructor:
		if len(s.subs) == 0 {
			return s
		}
		simplified := make([]Space, 0, len(s.subs))
		for _, sub := range s.subs {
			sims := e.Simplify(sub)
			if sims.IsEmpty() {
				return EmptySpace()
			}
			simplified = append(simplified, sims)
		}
		return ConstructorSpace(s.typ, s.head, simplified)

	case SpaceType:
		if e.CanDecompose(s.typ) && len(e.Decompose(s.typ)) == 0 {
			return EmptySpace()
		}
		return s

	case SpaceDisjunct:
		simplified := make([]Space, 0, len(s.subs))
		for _, sub := range s.subs {
			simplified = append(simplified, e.Simplify(sub))
		}
		if len(simplified) == 1 {
			return simplified[0]
		}
		kept := simplified[:0]
		for _, sub := range simplified {
			if !sub.IsEmpty() {
				kept = append(kept, sub)
			}
		}
		switch len(kept) {
		case 0:
			return EmptySpace()
		case 1:
			return kept[0]
		default:
			return DisjunctSpace(kept)
		}

	default:
		return s
	}
}
