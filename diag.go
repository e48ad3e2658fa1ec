// diag.go — structured analyzer diagnostics.
//
// The driver never prints: it reports structured Diagnostics into a DiagSink
// passed in explicitly, and callers decide presentation (the CLI colors and
// formats them, tests inspect them). The standard sink is DiagList, a plain
// accumulating slice returned by value — no shared buffers, no global state.
package swift

import "fmt"

// Severity ranks a diagnostic.
type Severity int

const (
	SevError Severity = iota
	SevWarning
	SevNote
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic codes produced by the analyzer.
const (
	CodeEmptySwitch   = "empty-switch"
	CodeNonExhaustive = "non-exhaustive-switch"
	CodeMissingCase   = "missing-case"
	CodeFrontend      = "frontend"
)

// FixIt is a textual insertion a caller can apply at a source position.
type FixIt struct {
	Line   int // 1-based
	Col    int // 0-based
	Insert string
}

// Diagnostic is one analyzer finding.
type Diagnostic struct {
	Sev     Severity
	Code    string
	Line    int // 1-based
	Col     int // 0-based
	Message string
	// Missing holds the rendered uncovered example cases for
	// CodeNonExhaustive diagnostics.
	Missing []string
	FixIt   *FixIt
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Col+1, d.Sev, d.Message)
}

// DiagSink receives diagnostics as the driver produces them.
type DiagSink interface {
	Report(d Diagnostic)
}

// DiagList is the standard accumulating sink.
type DiagList struct {
	Diags []Diagnostic
}

// Report appends d.
func (l *DiagList) Report(d Diagnostic) { l.Diags = append(l.Diags, d) }

// HasErrors reports whether any accumulated diagnostic is an error.
func (l *DiagList) HasErrors() bool {
	for _, d := range l.Diags {
		if d.Sev == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (l *DiagList) Len() int { return len(l.Diags) }
