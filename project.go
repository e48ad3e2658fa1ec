// project.go — projecting surface patterns into spaces.
package swift

import "go.uber.org/zap"

// Project converts one resolved pattern into the space of values it matches.
// The pattern must have been bound to a scrutinee type first (resolve.go);
// projection reads the static types the resolver assigned.
//
// Typed, cast, and expression patterns project to the empty space: the
// algebra cannot reason about what they match at runtime, and counting them
// as covering nothing errs in the safe direction — the checker keeps
// reporting cases such a pattern might have handled dynamically.
func (e *Engine) Project(p *Pattern) Space {
	switch p.Kind {
	case PatWildcard, PatBinding:
		return TypeSpace(p.typ)

	case PatBool:
		return BoolSpace(p.Bool)

	case PatLiteral, PatIs:
		return EmptySpace()

	case PatVar, PatParen:
		// Transparent wrappers.
		return e.Project(p.Sub)

	case PatOptionalSome:
		return ConstructorSpace(p.typ, "some", []Space{e.Project(p.Sub)})

	case PatEnumElement:
		return e.projectEnumElement(p)

	case PatTuple:
		elems := make([]Space, 0, len(p.Elems))
		for _, el := range p.Elems {
			elems = append(elems, e.Project(el))
		}
		return ConstructorSpace(p.typ, "", elems)

	default:
		panic("space: project of unknown pattern kind")
	}
}

func (e *Engine) projectEnumElement(p *Pattern) Space {
	sub := p.Sub
	if sub == nil {
		// A bare tag constrains no payload: it matches every value built by
		// the constructor.
		return ConstructorSpace(p.typ, p.Name, nil)
	}

	switch sub.Kind {
	case PatTuple:
		elems := make([]Space, 0, len(sub.Elems))
		for _, el := range sub.Elems {
			elems = append(elems, e.Project(el))
		}
		return ConstructorSpace(p.typ, p.Name, elems)

	case PatParen:
		inner := sub.strip()
		arity := e.payloadArity(p)
		var elems []Space
		switch {
		case inner.Kind == PatTuple && arity > 1:
			// .pair((a, b)) is the same match as .pair(a, b).
			for _, el := range inner.Elems {
				elems = append(elems, e.Project(el))
			}
		case (inner.Kind == PatWildcard || inner.Kind == PatBinding) &&
			arity > 1 && e.info.IsTuple(inner.typ):
			// A multi-element payload matched by a single catch-all:
			// .pair(x) against case pair(Int, Bool). Project it like the
			// tuple it really is, one unconstrained Type space per element.
			for _, el := range e.info.Elements(inner.typ) {
				elems = append(elems, TypeSpace(el))
			}
		default:
			elems = []Space{e.Project(inner)}
		}
		return ConstructorSpace(p.typ, p.Name, elems)

	default:
		e.log.Debug("enum element with irregular sub-pattern",
			zap.String("tag", p.Name),
			zap.Int("kind", int(sub.Kind)))
		return ConstructorSpace(p.typ, p.Name, []Space{e.Project(sub)})
	}
}

// payloadArity returns the declared payload element count of the case p names.
func (e *Engine) payloadArity(p *Pattern) int {
	for _, c := range e.info.Cases(p.typ) {
		if c.Name == p.Name {
			return len(c.Payload)
		}
	}
	return 0
}
