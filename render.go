// render.go — turning uncovered spaces into concrete missing-case text.
//
// Flatten expands a space holding nested disjunctions into a flat list of
// fully concrete example spaces (no internal Disjunct anywhere), by
// cartesian-expanding every constructor payload position and substituting
// one alternative at a time while the sibling positions stay fixed. Show
// then renders each concrete space the way a user would write the pattern.
package swift

import "strings"

// Flatten expands nested disjunctions inside space into a list of concrete
// example spaces. If the space contains no disjunction it is already flat
// and the returned list is nil; the caller should use the original space
// verbatim as the single example case.
func (e *Engine) Flatten(space Space) []Space {
	if !hasDisjunct(space) {
		return nil
	}
	return e.expand(space)
}

// hasDisjunct reports whether a disjunction occurs anywhere in the space.
func hasDisjunct(s Space) bool {
	switch s.kind {
	case SpaceDisjunct:
		return true
	case SpaceConstructor:
		for _, sub := range s.subs {
			if hasDisjunct(sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// expand returns the concrete alternatives of a space; the result always has
// at least one entry. Constructor, Disjunct, and BooleanConstant payloads
// all participate in the recursion; Type and Empty payloads are atoms.
func (e *Engine) expand(s Space) []Space {
	switch s.kind {
	case SpaceDisjunct:
		var out []Space
		for _, sub := range s.subs {
			out = append(out, e.expand(sub)...)
		}
		return out

	case SpaceConstructor:
		if len(s.subs) == 0 {
			return []Space{s}
		}
		// Cartesian product over the alternatives of each payload position.
		alts := make([][]Space, len(s.subs))
		for i, sub := range s.subs {
			alts[i] = e.expand(sub)
		}
		rows := [][]Space{nil}
		for _, column := range alts {
			next := make([][]Space, 0, len(rows)*len(column))
			for _, row := range rows {
				for _, alt := range column {
					combined := make([]Space, len(row), len(row)+1)
					copy(combined, row)
					next = append(next, append(combined, alt))
				}
			}
			rows = next
		}
		out := make([]Space, 0, len(rows))
		for _, row := range rows {
			out = append(out, ConstructorSpace(s.typ, s.head, row))
		}
		return out

	default:
		return []Space{s}
	}
}

// Show renders a space the way the missing pattern would be written in
// source: constructors as .tag(sub, ...) (tag omitted for tuples), boolean
// constants as true/false, an unconstrained Type as the wildcard, and a
// residual disjunction as its simplified members joined by '|'.
func (e *Engine) Show(s Space) string {
	var b strings.Builder
	e.show(&b, s, true)
	return b.String()
}

func (e *Engine) show(b *strings.Builder, s Space, normalize bool) {
	switch s.kind {
	case SpaceEmpty:
		b.WriteString("[EMPTY]")

	case SpaceBool:
		if s.val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

	case SpaceType:
		b.WriteString("_")

	case SpaceDisjunct:
		if normalize {
			sim := e.Simplify(s)
			if sim.kind != SpaceDisjunct {
				e.show(b, sim, false)
				return
			}
			s = sim
		}
		for i, sub := range s.subs {
			if i > 0 {
				b.WriteString(" | ")
			}
			e.show(b, sub, normalize)
		}

	case SpaceConstructor:
		if s.head != "" {
			b.WriteByte('.')
			b.WriteString(s.head)
		}
		if len(s.subs) == 0 {
			return
		}
		b.WriteByte('(')
		for i, sub := range s.subs {
			if i > 0 {
				b.WriteString(", ")
			}
			if normalize {
				e.show(b, e.Simplify(sub), normalize)
			} else {
				e.show(b, sub, normalize)
			}
		}
		b.WriteByte(')')

	default:
		panic("space: show of unknown kind")
	}
}
