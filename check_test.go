package swift

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) *DiagList {
	t.Helper()
	var diags DiagList
	err := NewChecker(nil).CheckSource(src, CheckFull, &diags)
	require.NoError(t, err, "source must parse")
	return &diags
}

// missingCases extracts the rendered example cases of the first
// non-exhaustive diagnostic.
func missingCases(t *testing.T, diags *DiagList) []string {
	t.Helper()
	for _, d := range diags.Diags {
		if d.Code == CodeNonExhaustive {
			return d.Missing
		}
	}
	t.Fatalf("no non-exhaustive diagnostic among %v", diags.Diags)
	return nil
}

func TestExhaustiveOptionalPair(t *testing.T) {
	diags := analyze(t, `
let x: Int?
let y: Int?
switch (x, y) {
case (.none, _): return
case (_, .none): return
case (.some, .some): return
}
`)
	assert.Empty(t, diags.Diags)
}

func TestMissingThirdCasePair(t *testing.T) {
	diags := analyze(t, `
enum E { case a, b, c }
enum F { case d, e }
let x: E
let y: F
switch (x, y) {
case (.a, .d): return
case (.a, .e): return
case (.b, _): return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{"(.c, _)", "(.c, .e)"}, missingCases(t, diags))
}

func TestPreciseGapInSquareSwitch(t *testing.T) {
	diags := analyze(t, `
enum E { case a, b, c }
let x: E
let y: E
switch (x, y) {
case (.a, .a): return
case (.b, _): return
case (.c, _): return
case (_, .b): return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{"(.a, .c)"}, missingCases(t, diags))
}

func TestDefaultClauseShortCircuits(t *testing.T) {
	diags := analyze(t, `
enum E { case a, b, c, d, e }
let x: E
switch x {
case .a: return
default: return
}
`)
	assert.Empty(t, diags.Diags)
}

func TestCatchAllArmShortCircuits(t *testing.T) {
	for _, arm := range []string{"_", "let v", "v"} {
		src := fmt.Sprintf(`
enum E { case a, b }
let x: E
switch x {
case %s: return
}
`, arm)
		diags := analyze(t, src)
		assert.Empty(t, diags.Diags, "arm %q must cover everything", arm)
	}
}

func TestGuardedArmDoesNotCount(t *testing.T) {
	diags := analyze(t, `
let b: Bool
switch b {
case true where b: return
case false: return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{"true"}, missingCases(t, diags))
}

func TestBooleanPairExhaustive(t *testing.T) {
	diags := analyze(t, `
let x: Bool
let y: Bool
switch (x, y) {
case (false, false): return
case (true, _): return
case (false, true): return
}
`)
	assert.Empty(t, diags.Diags)
}

func TestBoolMissingConstant(t *testing.T) {
	diags := analyze(t, `
let b: Bool
switch b {
case true: return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{"false"}, missingCases(t, diags))
}

func TestOptionalMissingNone(t *testing.T) {
	diags := analyze(t, `
let x: Int?
switch x {
case .some: return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{".none"}, missingCases(t, diags))
}

func TestOptionalSugarPattern(t *testing.T) {
	diags := analyze(t, `
let x: Int?
switch x {
case let v?: return
case .none: return
}
`)
	assert.Empty(t, diags.Diags)
}

func TestNestedOptionalResidual(t *testing.T) {
	diags := analyze(t, `
let x: Int??
switch x {
case .some(.some): return
case .none: return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{".some(.none)"}, missingCases(t, diags))
}

func TestPayloadCatchAllCoversCase(t *testing.T) {
	diags := analyze(t, `
enum M {
	case pair(Int, Bool)
	case unit
}
let m: M
switch m {
case .pair(let x): return
case .unit: return
}
`)
	assert.Empty(t, diags.Diags)
}

func TestParenTupleSubPatternKeepsConstraints(t *testing.T) {
	diags := analyze(t, `
enum M {
	case pair(Bool, Bool)
	case unit
}
let m: M
switch m {
case .pair((true, _)): return
case .unit: return
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{".pair(false, _)"}, missingCases(t, diags))
}

func TestOpaqueSubjectSuggestsDefault(t *testing.T) {
	diags := analyze(t, `
let n: Int
switch n {
case 0: return
case 1: return
}
`)
	require.Equal(t, 1, diags.Len())
	d := diags.Diags[0]
	assert.Equal(t, CodeNonExhaustive, d.Code)
	assert.Contains(t, d.Message, "default clause")
	require.NotNil(t, d.FixIt)
	assert.Equal(t, "default: <#code#>\n", d.FixIt.Insert)
}

func TestEmptySwitchFullModeEnumeratesCases(t *testing.T) {
	diags := analyze(t, `
enum E { case a, b, c }
let x: E
switch x {
}
`)
	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{".a", ".b", ".c"}, missingCases(t, diags))
}

func TestLimitedModeRejectsOnlyEmptySwitches(t *testing.T) {
	c := NewChecker(nil)

	var empty DiagList
	require.NoError(t, c.CheckSource(`
let b: Bool
switch b {
}
`, CheckLimited, &empty))
	require.Equal(t, 1, empty.Len())
	d := empty.Diags[0]
	assert.Equal(t, CodeEmptySwitch, d.Code)
	require.NotNil(t, d.FixIt)
	assert.Equal(t, "default: <#code#>\n", d.FixIt.Insert)

	var partial DiagList
	require.NoError(t, c.CheckSource(`
let b: Bool
switch b {
case true: return
}
`, CheckLimited, &partial))
	assert.Empty(t, partial.Diags, "limited mode must not require exhaustiveness")
}

func TestEditorModeFixItBlock(t *testing.T) {
	c := NewChecker(nil)
	c.EditorMode = true
	var diags DiagList
	require.NoError(t, c.CheckSource(`
enum E { case a, b, c }
let x: E
switch x {
case .a: return
}
`, CheckFull, &diags))
	require.Equal(t, 1, diags.Len(), "editor mode folds everything into one diagnostic")
	d := diags.Diags[0]
	assert.Equal(t, []string{".b", ".c"}, d.Missing)
	require.NotNil(t, d.FixIt)
	assert.Equal(t, "case .b: <#code#>\ncase .c: <#code#>\n", d.FixIt.Insert)
	assert.Equal(t, 6, d.FixIt.Line, "fix-it inserts at the closing brace")
}

func TestMaxMissingTruncates(t *testing.T) {
	c := NewChecker(nil)
	c.MaxMissing = 2
	var diags DiagList
	require.NoError(t, c.CheckSource(`
enum E { case a, b, c, d, e }
let x: E
switch x {
case .a: return
}
`, CheckFull, &diags))
	main := diags.Diags[0]
	assert.Equal(t, []string{".b", ".c"}, main.Missing)
	last := diags.Diags[diags.Len()-1]
	assert.Equal(t, SevNote, last.Sev)
	assert.Equal(t, "2 more missing cases not shown", last.Message)
}

func TestMissingCaseNotes(t *testing.T) {
	diags := analyze(t, `
enum E { case a, b }
let x: E
switch x {
case .a: return
}
`)
	require.Equal(t, 2, diags.Len())
	assert.Equal(t, SevError, diags.Diags[0].Sev)
	assert.Equal(t, SevNote, diags.Diags[1].Sev)
	assert.Equal(t, CodeMissingCase, diags.Diags[1].Code)
	assert.Equal(t, "missing case '.b'", diags.Diags[1].Message)
}

func TestUnknownCaseTagSkipsSwitch(t *testing.T) {
	diags := analyze(t, `
enum E { case a }
let x: E
switch x {
case .zzz: return
}
`)
	require.Equal(t, 1, diags.Len())
	d := diags.Diags[0]
	assert.Equal(t, CodeFrontend, d.Code)
	assert.Contains(t, d.Message, "no case .zzz")
}

func TestParseErrorIsReturnedNotReported(t *testing.T) {
	var diags DiagList
	err := NewChecker(nil).CheckSource("switch {", CheckFull, &diags)
	require.Error(t, err)
	assert.Empty(t, diags.Diags)
}

// TestPairCoverageEnumeration checks soundness and completeness over every
// subset of the four concrete arms of a 2x2 enum pair: the switch must be
// accepted exactly when all four are present.
func TestPairCoverageEnumeration(t *testing.T) {
	combos := []string{"(.a, .c)", "(.a, .d)", "(.b, .c)", "(.b, .d)"}
	for mask := 0; mask < 1<<len(combos); mask++ {
		var b strings.Builder
		b.WriteString("enum E { case a, b }\nenum F { case c, d }\nlet x: E\nlet y: F\nswitch (x, y) {\n")
		for i, c := range combos {
			if mask&(1<<i) != 0 {
				fmt.Fprintf(&b, "case %s: return\n", c)
			}
		}
		b.WriteString("}\n")

		diags := analyze(t, b.String())
		exhaustive := mask == 1<<len(combos)-1
		if exhaustive {
			assert.Empty(t, diags.Diags, "mask %04b must be exhaustive", mask)
		} else {
			assert.True(t, diags.HasErrors(), "mask %04b must be rejected", mask)
		}
	}
}

func TestMultipleSwitchesCheckedIndependently(t *testing.T) {
	diags := analyze(t, `
let a: Bool
let b: Bool
switch a {
case true: return
case false: return
}
switch b {
case true: return
}
`)
	require.True(t, diags.HasErrors())
	var lines []int
	for _, d := range diags.Diags {
		if d.Code == CodeNonExhaustive {
			lines = append(lines, d.Line)
		}
	}
	assert.Equal(t, []int{8}, lines, "only the second switch is non-exhaustive")
}
