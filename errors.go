// errors.go — front-end error types and caret-snippet rendering.
//
// This file turns low-level lexer/parser diagnostics into readable error
// snippets with a caret pointing at the offending column:
//
//	PARSE ERROR at 3:12: expected ':' after case patterns
//
//	   2 | switch x {
//	   3 | case .red
//	     |          ^
//	   4 | }
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places a caret under the 1-based column. The primary
// entry point is WrapErrorWithSource; anything that is not a *LexError or
// *ParseError passes through unchanged.
//
// Both error kinds carry an Incomplete flag: in interactive mode the lexer
// and parser set it when the input merely ran out at EOF, so a REPL can ask
// for another line instead of rejecting the input. Test with IsIncomplete.
package swift

import (
	"errors"
	"fmt"
	"strings"
)

// LexError is a scanning failure at a source position.
type LexError struct {
	Line       int // 1-based
	Col        int // 0-based
	Msg        string
	Incomplete bool
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// ParseError is a syntax failure at a source position.
type ParseError struct {
	Line       int // 1-based
	Col        int // 0-based
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// IsIncomplete reports whether err represents input that ran out at EOF
// (REPL continuation) rather than a hard syntax error.
func IsIncomplete(err error) bool {
	var le *LexError
	if errors.As(err, &le) {
		return le.Incomplete
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Incomplete
	}
	return false
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes lexer/parser errors and
// leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (usually a
// file name) included in the header line.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Lex/parse Col are 0-based; render as 1-based.
		return fmt.Errorf("%s", prettySnippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettySnippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

// prettySnippet builds a snippet with a header and a caret. It shows at most
// one previous and one next line when available. Coordinates are treated as
// 1-based and clamped to the source bounds.
func prettySnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
