// check.go — the switch exhaustiveness driver.
//
// WHAT THIS MODULE DOES
// =====================
// The Checker orchestrates one exhaustiveness analysis per switch statement:
// it projects every unguarded case pattern into a Space (project.go), unions
// them, subtracts the union from the full space of the subject's type
// (space.go), and reports what is left through the DiagSink (diag.go),
// rendered by render.go.
//
// Two modes exist. Limited checking only rejects a switch with an empty body
// (contexts where exhaustiveness is not required, just non-emptiness). Full
// checking runs the algebra. In both modes the analysis is a pure function
// of (patterns, subject type); the sink is handed in per call and nothing is
// shared across checks.
//
// Guarded arms (where-clauses) never count toward coverage: a conditionally
// matched arm cannot be assumed exhaustive. A default clause, or an
// unguarded top-level wildcard/binding arm, covers everything and ends the
// check immediately.
package swift

import (
	"fmt"

	"go.uber.org/zap"
)

// CheckMode selects the depth of analysis.
type CheckMode int

const (
	// CheckFull runs the complete coverage analysis.
	CheckFull CheckMode = iota
	// CheckLimited only requires the switch to have at least one clause.
	CheckLimited
)

// Placeholder inserted into generated case bodies by fix-its.
const codePlaceholder = "<#code#>"

// Checker runs exhaustiveness analysis over parsed files.
type Checker struct {
	// EditorMode folds the missing cases into one insertable fix-it block
	// instead of per-case notes.
	EditorMode bool
	// MaxMissing caps the number of rendered example cases per switch;
	// 0 means unlimited.
	MaxMissing int

	eng *Engine
	log *zap.Logger
}

// NewChecker returns a Checker over the given engine. A nil engine gets the
// standard type oracle and a no-op logger.
func NewChecker(eng *Engine) *Checker {
	if eng == nil {
		eng = NewEngine(nil, nil)
	}
	return &Checker{eng: eng, log: eng.log}
}

// Engine returns the space engine the checker evaluates with.
func (c *Checker) Engine() *Engine { return c.eng }

// CheckSource parses src and analyzes every top-level switch in it.
// Lex/parse failures are returned as an error (wrap with
// WrapErrorWithSource for presentation); semantic findings go to sink.
func (c *Checker) CheckSource(src string, mode CheckMode, sink DiagSink) error {
	f, err := ParseFile(src)
	if err != nil {
		return err
	}
	c.CheckFile(f, mode, sink)
	return nil
}

// CheckFile analyzes every switch in a parsed file.
func (c *Checker) CheckFile(f *File, mode CheckMode, sink DiagSink) {
	tt := NewTypeTable()
	for _, err := range tt.Build(f) {
		reportFrontend(sink, err)
	}
	for _, sw := range f.Switches {
		subject, err := tt.ScrutineeType(sw.Subject)
		if err != nil {
			reportFrontend(sink, err)
			continue
		}
		ok := true
		for _, clause := range sw.Clauses {
			for _, item := range clause.Items {
				if err := tt.bindPattern(item.Pat, subject); err != nil {
					reportFrontend(sink, err)
					ok = false
				}
			}
		}
		if !ok {
			// The algebra requires resolved, arity-consistent patterns.
			continue
		}
		c.CheckSwitch(sw, subject, mode, sink)
	}
}

// CheckSwitch analyzes a single switch whose patterns are already bound to
// the subject type.
func (c *Checker) CheckSwitch(stmt *SwitchStmt, subject Type, mode CheckMode, sink DiagSink) {
	if mode == CheckLimited {
		// Only reject switch statements with empty bodies.
		if len(stmt.Clauses) == 0 {
			c.diagnoseMissing(stmt, true, EmptySpace(), sink)
		}
		return
	}

	var spaces []Space
	for _, clause := range stmt.Clauses {
		// A default clause trivially covers the space.
		if clause.Default {
			c.log.Debug("switch has default clause; trivially exhaustive",
				zap.Int("line", stmt.Line))
			return
		}
		for _, item := range clause.Items {
			// A where-clause means the arm matches conditionally; it cannot
			// contribute to coverage.
			if item.Guarded {
				continue
			}
			if sp := item.Pat.strip(); sp.Kind == PatWildcard || sp.Kind == PatBinding {
				c.log.Debug("switch has catch-all arm; trivially exhaustive",
					zap.Int("line", stmt.Line))
				return
			}
			proj := c.eng.Project(item.Pat)
			c.log.Debug("projected arm",
				zap.Int("line", item.Pat.Line),
				zap.String("space", proj.String()))
			spaces = append(spaces, proj)
		}
	}

	total := TypeSpace(subject)
	covered := DisjunctSpace(spaces)
	uncovered := c.eng.Simplify(c.eng.Minus(total, covered))
	c.log.Debug("computed residual",
		zap.Int("line", stmt.Line),
		zap.String("uncovered", uncovered.String()))
	if uncovered.IsEmpty() {
		return
	}

	// The whole subject space survived. Either enumerate the type's
	// constructors as the missing set, or — for an opaque type the algebra
	// cannot enumerate — just suggest a default clause.
	if uncovered.Kind() == SpaceType {
		if c.eng.CanDecompose(uncovered.Type()) {
			c.diagnoseMissing(stmt, false, DisjunctSpace(c.eng.Decompose(uncovered.Type())), sink)
		} else {
			c.diagnoseMissing(stmt, true, EmptySpace(), sink)
		}
		return
	}

	if uncovered.Kind() != SpaceDisjunct {
		uncovered = DisjunctSpace([]Space{uncovered})
	}
	c.diagnoseMissing(stmt, false, uncovered, sink)
}

// diagnoseMissing reports the findings for one switch. With justNeedsDefault
// the analyzer cannot (or need not) enumerate cases and suggests a default
// clause; otherwise every member of uncovered is flattened into concrete
// example cases.
func (c *Checker) diagnoseMissing(stmt *SwitchStmt, justNeedsDefault bool, uncovered Space, sink DiagSink) {
	empty := len(stmt.Clauses) == 0
	insertAt := FixIt{Line: stmt.EndLine, Col: stmt.EndCol}

	if justNeedsDefault {
		fix := insertAt
		fix.Insert = "default: " + codePlaceholder + "\n"
		if empty {
			sink.Report(Diagnostic{
				Sev:     SevError,
				Code:    CodeEmptySwitch,
				Line:    stmt.Line,
				Col:     stmt.Col,
				Message: "switch statement must have at least one case",
				FixIt:   &fix,
			})
			return
		}
		sink.Report(Diagnostic{
			Sev:     SevError,
			Code:    CodeNonExhaustive,
			Line:    stmt.Line,
			Col:     stmt.Col,
			Message: "switch must be exhaustive, consider adding a default clause",
			FixIt:   &fix,
		})
		return
	}

	if uncovered.IsEmpty() {
		return
	}

	var rendered []string
	for _, member := range uncovered.Subs() {
		flats := c.eng.Flatten(member)
		if flats == nil {
			// Already concrete; the member itself is the example case.
			flats = []Space{member}
		}
		for _, flat := range flats {
			rendered = append(rendered, c.eng.Show(flat))
		}
	}
	omitted := 0
	if c.MaxMissing > 0 && len(rendered) > c.MaxMissing {
		omitted = len(rendered) - c.MaxMissing
		rendered = rendered[:c.MaxMissing]
	}

	if c.EditorMode {
		fix := insertAt
		for _, r := range rendered {
			fix.Insert += "case " + r + ": " + codePlaceholder + "\n"
		}
		sink.Report(Diagnostic{
			Sev:     SevError,
			Code:    CodeNonExhaustive,
			Line:    stmt.Line,
			Col:     stmt.Col,
			Message: "switch must be exhaustive, do you want to add missing cases?",
			Missing: rendered,
			FixIt:   &fix,
		})
		return
	}

	sink.Report(Diagnostic{
		Sev:     SevError,
		Code:    CodeNonExhaustive,
		Line:    stmt.Line,
		Col:     stmt.Col,
		Message: "switch must be exhaustive, consider adding missing cases",
		Missing: rendered,
	})
	for _, r := range rendered {
		sink.Report(Diagnostic{
			Sev:     SevNote,
			Code:    CodeMissingCase,
			Line:    stmt.Line,
			Col:     stmt.Col,
			Message: fmt.Sprintf("missing case '%s'", r),
		})
	}
	if omitted > 0 {
		sink.Report(Diagnostic{
			Sev:     SevNote,
			Code:    CodeMissingCase,
			Line:    stmt.Line,
			Col:     stmt.Col,
			Message: fmt.Sprintf("%d more missing cases not shown", omitted),
		})
	}
}

func reportFrontend(sink DiagSink, err error) {
	if pe, ok := err.(*ParseError); ok {
		sink.Report(Diagnostic{
			Sev:     SevError,
			Code:    CodeFrontend,
			Line:    pe.Line,
			Col:     pe.Col,
			Message: pe.Msg,
		})
		return
	}
	sink.Report(Diagnostic{Sev: SevError, Code: CodeFrontend, Message: err.Error()})
}
