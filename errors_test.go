package swift

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapErrorWithSourceSnippet(t *testing.T) {
	src := "switch x {\ncase .red\n}"
	_, err := ParseFile(src)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	wrapped := WrapErrorWithSource(err, src)
	out := wrapped.Error()

	if !strings.HasPrefix(out, "PARSE ERROR at ") {
		t.Errorf("missing header: %q", out)
	}
	for _, want := range []string{"   2 | case .red", "   3 | }", "^"} {
		if !strings.Contains(out, want) {
			t.Errorf("snippet missing %q:\n%s", want, out)
		}
	}
}

func TestWrapErrorCaretColumn(t *testing.T) {
	src := "let x: Wrong"
	e := &ParseError{Line: 1, Col: 7, Msg: "unknown type"}
	out := WrapErrorWithSource(e, src).Error()
	// Col is 0-based; the caret sits under column 8 of the gutter-prefixed line.
	caretLine := "     | " + strings.Repeat(" ", 7) + "^"
	if !strings.Contains(out, caretLine+"\n") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestWrapErrorWithName(t *testing.T) {
	e := &LexError{Line: 1, Col: 0, Msg: "boom"}
	out := WrapErrorWithName(e, "main.swift", "x").Error()
	if !strings.HasPrefix(out, "LEXICAL ERROR in main.swift at 1:1: boom") {
		t.Errorf("header: %q", out)
	}
}

func TestWrapErrorPassthrough(t *testing.T) {
	plain := fmt.Errorf("not a front-end error")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Errorf("foreign errors must pass through unchanged, got %v", got)
	}
}

func TestWrapErrorClampsOutOfRangePositions(t *testing.T) {
	e := &ParseError{Line: 99, Col: 500, Msg: "beyond"}
	out := WrapErrorWithSource(e, "only line").Error()
	if !strings.Contains(out, "   1 | only line") {
		t.Errorf("line not clamped:\n%s", out)
	}
}

func TestIsIncomplete(t *testing.T) {
	if !IsIncomplete(&ParseError{Incomplete: true}) {
		t.Error("incomplete parse error")
	}
	if !IsIncomplete(&LexError{Incomplete: true}) {
		t.Error("incomplete lex error")
	}
	if IsIncomplete(&ParseError{}) || IsIncomplete(&LexError{}) {
		t.Error("complete errors flagged incomplete")
	}
	if IsIncomplete(errors.New("other")) {
		t.Error("foreign error flagged incomplete")
	}
	// errors.As must see through wrapping.
	wrapped := fmt.Errorf("ctx: %w", &ParseError{Incomplete: true})
	if !IsIncomplete(wrapped) {
		t.Error("wrapped incomplete error not detected")
	}
}
