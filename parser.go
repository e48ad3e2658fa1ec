// parser.go — recursive-descent parser for the analyzed subset.
//
// OVERVIEW
// --------
// The parser consumes the token stream from lexer.go and produces a *File
// holding enum declarations, typed let/var bindings, and switch statements.
// It is an analyzer front end, not a compiler: case bodies and where-guard
// expressions are consumed token-by-token (tracking nesting depth) without
// building a tree, and let-initializers are skipped to the end of the line.
// Only the shapes the exhaustiveness algebra needs survive parsing.
//
// Grammar (informally):
//
//	file        := { enumDecl | letDecl | switchStmt | ";" } EOF
//	enumDecl    := ["indirect"] "enum" ID "{" { "case" caseItem {"," caseItem} | ";" } "}"
//	caseItem    := ID [ "(" typeExpr {"," typeExpr} ")" ]
//	typeExpr    := primaryType { "?" }
//	primaryType := ID | "(" typeExpr {"," typeExpr} ")"
//	letDecl     := ("let"|"var") ID ":" typeExpr [ "=" ...to end of line ]
//	switchStmt  := "switch" scrutinee "{" { caseClause } "}"
//	scrutinee   := ID | BOOLEAN | "(" scrutinee {"," scrutinee} ")"
//	caseClause  := "case" patItem {"," patItem} ":" body | "default" ":" body
//	patItem     := pattern [ "where" ...to unnested ":" or "," ]
//	pattern     := primaryPat { "?" }
//	primaryPat  := "_" | ("let"|"var") ID | "is" typeExpr | BOOLEAN
//	             | INTEGER | FLOAT | STRING | ["-"] number
//	             | "." ID [ "(" pattern {"," pattern} ")" ]
//	             | "(" pattern {"," pattern} ")" | ID
//
// A parenthesized single pattern is kept as an explicit paren node and a
// parenthesized list of two or more as a tuple node; the distinction matters
// to the projector's payload-unpacking rule.
//
// Interactive mode surfaces incomplete input (EOF mid-construct) as a
// *ParseError with Incomplete set, suitable for REPL continuation prompts.
//
// Dependencies: lexer.go (tokens), errors.go (*ParseError, IsIncomplete),
// ast.go (node types).
package swift

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// ParseFile parses a complete source string.
func ParseFile(src string) (*File, error) {
	lex := NewLexer(src)
	toks, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.file()
}

// ParseFileInteractive parses in REPL-friendly mode: constructs truncated at
// EOF produce an error for which IsIncomplete returns true.
func ParseFileInteractive(src string) (*File, error) {
	lex := NewLexerInteractive(src)
	toks, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, interactive: true}
	return p.file()
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	toks        []Token
	i           int
	interactive bool
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errHere(msg)
}

func (p *parser) errHere(msg string) *ParseError {
	g := p.peek()
	return &ParseError{
		Line:       g.Line,
		Col:        g.Col,
		Msg:        msg,
		Incomplete: p.interactive && g.Type == EOF,
	}
}

// ─────────────────────────────────── file ───────────────────────────────────

func (p *parser) file() (*File, error) {
	f := &File{}
	for !p.atEnd() {
		switch {
		case p.match(SEMICOLON):
			// empty statement
		case p.peek().Type == INDIRECT || p.peek().Type == ENUM:
			d, err := p.enumDecl()
			if err != nil {
				return nil, err
			}
			f.Enums = append(f.Enums, d)
		case p.peek().Type == LET || p.peek().Type == VAR:
			d, err := p.letDecl()
			if err != nil {
				return nil, err
			}
			f.Lets = append(f.Lets, d)
		case p.peek().Type == SWITCH:
			s, err := p.switchStmt()
			if err != nil {
				return nil, err
			}
			f.Switches = append(f.Switches, s)
		default:
			return nil, p.errHere(fmt.Sprintf("unexpected token %q at top level (expected enum, let, var, or switch)", p.peek().Lexeme))
		}
	}
	return f, nil
}

// ────────────────────────────────── decls ───────────────────────────────────

func (p *parser) enumDecl() (*EnumDecl, error) {
	p.match(INDIRECT) // accepted and ignored; payload types stay opaque anyway
	kw, err := p.need(ENUM, "expected 'enum'")
	if err != nil {
		return nil, err
	}
	name, err := p.need(ID, "expected enum name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(LBRACE, "expected '{' after enum name"); err != nil {
		return nil, err
	}
	d := &EnumDecl{Name: name.Literal.(string), Line: kw.Line, Col: kw.Col}
	for !p.match(RBRACE) {
		if p.match(SEMICOLON) {
			continue
		}
		if _, err := p.need(CASE, "expected 'case' or '}' in enum body"); err != nil {
			return nil, err
		}
		for {
			item, err := p.enumCaseItem()
			if err != nil {
				return nil, err
			}
			d.Cases = append(d.Cases, item)
			if !p.match(COMMA) {
				break
			}
		}
	}
	return d, nil
}

func (p *parser) enumCaseItem() (CaseDecl, error) {
	name, err := p.need(ID, "expected case name")
	if err != nil {
		return CaseDecl{}, err
	}
	item := CaseDecl{Name: name.Literal.(string), Line: name.Line, Col: name.Col}
	if p.match(LPAREN) {
		for {
			te, err := p.typeExpr()
			if err != nil {
				return CaseDecl{}, err
			}
			item.Payload = append(item.Payload, te)
			if !p.match(COMMA) {
				break
			}
		}
		if _, err := p.need(RPAREN, "expected ')' after associated value types"); err != nil {
			return CaseDecl{}, err
		}
	}
	return item, nil
}

func (p *parser) typeExpr() (TypeExpr, error) {
	var te TypeExpr
	switch {
	case p.match(ID):
		t := p.prev()
		te = TypeExpr{Kind: TENamed, Name: t.Literal.(string), Line: t.Line, Col: t.Col}
	case p.match(LPAREN):
		open := p.prev()
		var elems []TypeExpr
		for {
			e, err := p.typeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			elems = append(elems, e)
			if !p.match(COMMA) {
				break
			}
		}
		if _, err := p.need(RPAREN, "expected ')' in type"); err != nil {
			return TypeExpr{}, err
		}
		if len(elems) == 1 {
			// Parenthesized type is just grouping.
			te = elems[0]
		} else {
			te = TypeExpr{Kind: TETuple, Elems: elems, Line: open.Line, Col: open.Col}
		}
	default:
		return TypeExpr{}, p.errHere("expected a type")
	}
	for p.match(QUESTION) {
		inner := te
		te = TypeExpr{Kind: TEOptional, Inner: &inner, Line: inner.Line, Col: inner.Col}
	}
	return te, nil
}

func (p *parser) letDecl() (*LetDecl, error) {
	kw := p.peek()
	p.match(LET, VAR)
	name, err := p.need(ID, "expected binding name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(COLON, "expected ':' and a type annotation (the analyzer does not infer types)"); err != nil {
		return nil, err
	}
	ann, err := p.typeExpr()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		// Skip the initializer: everything on the same line as the '='.
		line := p.prev().Line
		for !p.atEnd() && p.peek().Line == line && p.peek().Type != SEMICOLON {
			p.i++
		}
		p.match(SEMICOLON)
	}
	return &LetDecl{Name: name.Literal.(string), Ann: ann, Line: kw.Line, Col: kw.Col}, nil
}

// ───────────────────────────────── switches ─────────────────────────────────

func (p *parser) switchStmt() (*SwitchStmt, error) {
	kw, _ := p.need(SWITCH, "expected 'switch'")
	subj, err := p.scrutinee()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(LBRACE, "expected '{' after switch subject"); err != nil {
		return nil, err
	}
	s := &SwitchStmt{Subject: subj, Line: kw.Line, Col: kw.Col}
	for {
		if p.match(RBRACE) {
			end := p.prev()
			s.EndLine, s.EndCol = end.Line, end.Col
			return s, nil
		}
		if p.atEnd() {
			return nil, p.errHere("expected 'case', 'default', or '}' in switch body")
		}
		c, err := p.caseClause()
		if err != nil {
			return nil, err
		}
		s.Clauses = append(s.Clauses, c)
	}
}

func (p *parser) scrutinee() (ScrutExpr, error) {
	switch {
	case p.match(ID):
		t := p.prev()
		return ScrutExpr{Kind: ScrutIdent, Name: t.Literal.(string), Line: t.Line, Col: t.Col}, nil
	case p.match(BOOLEAN):
		t := p.prev()
		return ScrutExpr{Kind: ScrutBool, Bool: t.Literal.(bool), Line: t.Line, Col: t.Col}, nil
	case p.match(LPAREN):
		open := p.prev()
		var elems []ScrutExpr
		for {
			e, err := p.scrutinee()
			if err != nil {
				return ScrutExpr{}, err
			}
			elems = append(elems, e)
			if !p.match(COMMA) {
				break
			}
		}
		if _, err := p.need(RPAREN, "expected ')' after switch subject"); err != nil {
			return ScrutExpr{}, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return ScrutExpr{Kind: ScrutTuple, Elems: elems, Line: open.Line, Col: open.Col}, nil
	default:
		return ScrutExpr{}, p.errHere("expected a switch subject (identifier, bool literal, or tuple of those)")
	}
}

func (p *parser) caseClause() (*CaseClause, error) {
	switch {
	case p.match(DEFAULT):
		kw := p.prev()
		if _, err := p.need(COLON, "expected ':' after 'default'"); err != nil {
			return nil, err
		}
		if err := p.skipBody(); err != nil {
			return nil, err
		}
		return &CaseClause{Default: true, Line: kw.Line, Col: kw.Col}, nil
	case p.match(CASE):
		kw := p.prev()
		c := &CaseClause{Line: kw.Line, Col: kw.Col}
		for {
			pat, err := p.pattern()
			if err != nil {
				return nil, err
			}
			item := CaseItem{Pat: pat}
			if p.match(WHERE) {
				if err := p.skipGuard(); err != nil {
					return nil, err
				}
				item.Guarded = true
			}
			c.Items = append(c.Items, item)
			if !p.match(COMMA) {
				break
			}
		}
		if _, err := p.need(COLON, "expected ':' after case patterns"); err != nil {
			return nil, err
		}
		if err := p.skipBody(); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, p.errHere("expected 'case' or 'default' in switch body")
	}
}

// skipGuard consumes a where-clause expression without interpreting it,
// stopping before an unnested ':' (end of the case label) or ',' (next
// pattern item).
func (p *parser) skipGuard() error {
	depth := 0
	for {
		t := p.peek()
		switch t.Type {
		case EOF:
			return p.errHere("unterminated where clause")
		case LPAREN, LSQUARE:
			depth++
		case RPAREN, RSQUARE:
			depth--
		case COLON, COMMA:
			if depth == 0 {
				return nil
			}
		case LBRACE, RBRACE:
			return p.errHere("unexpected brace in where clause")
		}
		p.i++
	}
}

// skipBody consumes case-body statements without interpreting them, stopping
// before the next unnested 'case'/'default' label or the switch's closing
// brace. Nested braces (closures, ifs, nested switches) are balanced, so
// their case labels do not end the body; nested switch statements are not
// analyzed.
func (p *parser) skipBody() error {
	depth := 0
	for {
		t := p.peek()
		switch t.Type {
		case EOF:
			return p.errHere("unterminated switch body")
		case LBRACE:
			depth++
		case RBRACE:
			if depth == 0 {
				return nil
			}
			depth--
		case CASE, DEFAULT:
			if depth == 0 {
				return nil
			}
		}
		p.i++
	}
}

// ───────────────────────────────── patterns ─────────────────────────────────

func (p *parser) pattern() (*Pattern, error) {
	pat, err := p.primaryPattern()
	if err != nil {
		return nil, err
	}
	// Postfix '?' sugars the optional-present pattern.
	for p.match(QUESTION) {
		pat = &Pattern{Kind: PatOptionalSome, Sub: pat, Line: pat.Line, Col: pat.Col}
	}
	return pat, nil
}

func (p *parser) primaryPattern() (*Pattern, error) {
	t := p.peek()
	switch {
	case p.match(UNDERSCORE):
		return &Pattern{Kind: PatWildcard, Line: t.Line, Col: t.Col}, nil

	case p.match(LET, VAR):
		name, err := p.need(ID, "expected binding name after 'let'")
		if err != nil {
			return nil, err
		}
		inner := &Pattern{Kind: PatBinding, Name: name.Literal.(string), Line: name.Line, Col: name.Col}
		return &Pattern{Kind: PatVar, Name: inner.Name, Sub: inner, Line: t.Line, Col: t.Col}, nil

	case p.match(IS):
		te, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		return &Pattern{Kind: PatIs, Name: formatTypeExpr(te), Line: t.Line, Col: t.Col}, nil

	case p.match(BOOLEAN):
		return &Pattern{Kind: PatBool, Bool: t.Literal.(bool), Line: t.Line, Col: t.Col}, nil

	case p.match(INTEGER, FLOAT, STRING):
		return &Pattern{Kind: PatLiteral, Line: t.Line, Col: t.Col}, nil

	case p.match(MINUS):
		if !p.match(INTEGER, FLOAT) {
			return nil, p.errHere("expected a numeric literal after '-'")
		}
		return &Pattern{Kind: PatLiteral, Line: t.Line, Col: t.Col}, nil

	case p.match(PERIOD):
		tag, err := p.need(ID, "expected case name after '.'")
		if err != nil {
			return nil, err
		}
		pat := &Pattern{Kind: PatEnumElement, Name: tag.Literal.(string), Line: t.Line, Col: t.Col}
		if p.match(LPAREN) {
			sub, err := p.parenOrTuplePattern(p.prev())
			if err != nil {
				return nil, err
			}
			pat.Sub = sub
		}
		return pat, nil

	case p.match(LPAREN):
		return p.parenOrTuplePattern(p.prev())

	case p.match(ID):
		return &Pattern{Kind: PatBinding, Name: t.Literal.(string), Line: t.Line, Col: t.Col}, nil

	default:
		return nil, p.errHere("expected a pattern")
	}
}

// parenOrTuplePattern parses the remainder of '(' p1, p2, ... ')'. One
// element yields an explicit paren node, two or more a tuple node.
func (p *parser) parenOrTuplePattern(open Token) (*Pattern, error) {
	var elems []*Pattern
	for {
		e, err := p.pattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if !p.match(COMMA) {
			break
		}
	}
	if _, err := p.need(RPAREN, "expected ')' in pattern"); err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return &Pattern{Kind: PatParen, Sub: elems[0], Line: open.Line, Col: open.Col}, nil
	}
	return &Pattern{Kind: PatTuple, Elems: elems, Line: open.Line, Col: open.Col}, nil
}

// formatTypeExpr renders a syntactic type back to source form (used for
// is-pattern payloads and resolver error messages).
func formatTypeExpr(te TypeExpr) string {
	switch te.Kind {
	case TENamed:
		return te.Name
	case TEOptional:
		return formatTypeExpr(*te.Inner) + "?"
	case TETuple:
		out := "("
		for i, e := range te.Elems {
			if i > 0 {
				out += ", "
			}
			out += formatTypeExpr(e)
		}
		return out + ")"
	default:
		return "?"
	}
}
