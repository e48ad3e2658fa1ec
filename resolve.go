// resolve.go — binding patterns to the scrutinee type.
//
// The space algebra assumes well-formed inputs: every pattern carries its
// static type and constructor arities agree with the declarations. There is
// no upstream type checker in this repo to guarantee that, so the resolver
// establishes it here — it walks each case pattern top-down from the
// scrutinee type, assigns the type each sub-pattern matches against, and
// rejects shapes that cannot be typed (unknown case tags, tuple arity
// mismatches, boolean literals against non-boolean subjects). A switch with
// any unresolvable pattern is reported and skipped; the algebra never sees
// it.
package swift

import "fmt"

// bindPattern assigns static types throughout p against scrutinee type t.
func (tt *TypeTable) bindPattern(p *Pattern, t Type) error {
	p.typ = t
	switch p.Kind {
	case PatWildcard, PatBinding, PatLiteral, PatIs:
		return nil

	case PatVar, PatParen:
		return tt.bindPattern(p.Sub, t)

	case PatBool:
		if t != BoolType {
			return tt.patErr(p, fmt.Sprintf("boolean literal pattern cannot match a subject of type %s", t))
		}
		return nil

	case PatOptionalSome:
		et, ok := t.(*EnumType)
		if !ok || et.Wrapped == nil {
			return tt.patErr(p, fmt.Sprintf("'?' pattern requires an optional subject, found %s", t))
		}
		return tt.bindPattern(p.Sub, et.Wrapped)

	case PatEnumElement:
		et, ok := t.(*EnumType)
		if !ok {
			return tt.patErr(p, fmt.Sprintf("pattern .%s cannot match a subject of type %s", p.Name, t))
		}
		c, ok := et.Case(p.Name)
		if !ok {
			return tt.patErr(p, fmt.Sprintf("type %s has no case .%s", et, p.Name))
		}
		if p.Sub == nil {
			return nil
		}
		if len(c.Payload) == 0 {
			return tt.patErr(p, fmt.Sprintf("case .%s of %s has no associated values", p.Name, et))
		}
		return tt.bindPayload(p.Sub, c)

	case PatTuple:
		tup, ok := t.(*TupleType)
		if !ok {
			return tt.patErr(p, fmt.Sprintf("tuple pattern cannot match a subject of type %s", t))
		}
		if len(p.Elems) != len(tup.Elems) {
			return tt.patErr(p, fmt.Sprintf("tuple pattern has %d elements, subject type %s has %d", len(p.Elems), t, len(tup.Elems)))
		}
		for i, el := range p.Elems {
			if err := tt.bindPattern(el, tup.Elems[i]); err != nil {
				return err
			}
		}
		return nil

	default:
		panic("resolve: unknown pattern kind")
	}
}

// bindPayload types the sub-pattern of .tag(sub) against the declared
// payload of the case. A single paren-wrapped catch-all binds the whole
// payload as one tuple (the projector then unpacks the element types).
func (tt *TypeTable) bindPayload(sub *Pattern, c EnumCase) error {
	payload := payloadType(c)
	switch sub.Kind {
	case PatTuple:
		if len(sub.Elems) != len(c.Payload) {
			return tt.patErr(sub, fmt.Sprintf("case .%s takes %d associated values, pattern supplies %d", c.Name, len(c.Payload), len(sub.Elems)))
		}
		sub.typ = payload
		for i, el := range sub.Elems {
			if err := tt.bindPattern(el, c.Payload[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return tt.bindPattern(sub, payload)
	}
}

// payloadType is the type a case's payload forms as a whole: the sole
// element for single payloads, a tuple otherwise.
func payloadType(c EnumCase) Type {
	if len(c.Payload) == 1 {
		return c.Payload[0]
	}
	return &TupleType{Elems: c.Payload}
}

func (tt *TypeTable) patErr(p *Pattern, msg string) error {
	return &ParseError{Line: p.Line, Col: p.Col, Msg: msg}
}
