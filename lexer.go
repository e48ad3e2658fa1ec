// lexer.go — scanner for the Swift-subset surface syntax.
//
// The lexer turns a source string into a flat []Token. It understands line
// comments ("// ..."), nested block comments ("/* ... */"), string literals
// with the usual escapes, integer and floating literals, identifiers and the
// keyword set in token.go. Tokens carry 1-based line and 0-based column of
// their first byte so the parser and the diagnostic renderer can point at
// them precisely.
//
// In interactive mode (REPLs) an unterminated string or block comment at EOF
// is reported as incomplete input rather than a hard error, so the caller can
// prompt for a continuation line. See NewLexerInteractive.
package swift

import (
	"strconv"
	"strings"
)

// Lexer scans a source string into tokens.
type Lexer struct {
	src         string
	start       int // start index of current token
	cur         int // current index
	line        int // 1-based
	col         int // 0-based column within line
	tokens      []Token
	interactive bool

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// NewLexerInteractive creates a lexer whose EOF-truncation errors carry
// Incomplete, suitable for REPL continuation prompts.
func NewLexerInteractive(src string) *Lexer {
	l := NewLexer(src)
	l.interactive = true
	return l
}

// Scan tokenizes the entire source. On failure it returns a *LexError.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipBlanks()
		if err := l.skipComments(); err != nil {
			return nil, err
		}
		l.skipBlanks()
		if l.isAtEnd() {
			break
		}
		l.start = l.cur
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur
	l.addToken(EOF, nil)
	return l.tokens, nil
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) match(expected byte) bool {
	if ch, ok := l.peek(); ok && ch == expected {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) addToken(tt TokenType, lit any) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	})
	l.start = l.cur
}

func (l *Lexer) errf(line, col int, msg string) *LexError {
	return &LexError{Line: line, Col: col, Msg: msg}
}

func (l *Lexer) skipBlanks() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
		default:
			return
		}
	}
}

// skipComments consumes one run of comments (and interleaved blanks).
func (l *Lexer) skipComments() error {
	for {
		ch, ok := l.peek()
		if !ok || ch != '/' {
			return nil
		}
		next, ok := l.peekN(1)
		if !ok {
			return nil
		}
		switch next {
		case '/':
			for !l.isAtEnd() {
				ch, _ := l.peek()
				if ch == '\n' {
					break
				}
				l.advance()
			}
		case '*':
			startLine, startCol := l.line, l.col
			l.advance() // '/'
			l.advance() // '*'
			depth := 1
			for depth > 0 {
				if l.isAtEnd() {
					if l.interactive {
						return &LexError{Line: startLine, Col: startCol, Msg: "unterminated block comment", Incomplete: true}
					}
					return l.errf(startLine, startCol, "unterminated block comment")
				}
				ch, _ := l.peek()
				n2, _ := l.peekN(1)
				if ch == '/' && n2 == '*' {
					depth++
					l.advance()
					l.advance()
				} else if ch == '*' && n2 == '/' {
					depth--
					l.advance()
					l.advance()
				} else {
					l.advance()
				}
			}
		default:
			return nil
		}
		l.skipBlanks()
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) scanToken() error {
	ch, _ := l.advance()
	switch ch {
	case '(':
		l.addToken(LPAREN, nil)
	case ')':
		l.addToken(RPAREN, nil)
	case '{':
		l.addToken(LBRACE, nil)
	case '}':
		l.addToken(RBRACE, nil)
	case '[':
		l.addToken(LSQUARE, nil)
	case ']':
		l.addToken(RSQUARE, nil)
	case ':':
		l.addToken(COLON, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(PERIOD, nil)
	case '?':
		l.addToken(QUESTION, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '+':
		l.addToken(PLUS, nil)
	case '*':
		l.addToken(STAR, nil)
	case '/':
		l.addToken(SLASH, nil)
	case '%':
		l.addToken(PERCENT, nil)
	case '-':
		if l.match('>') {
			l.addToken(ARROW, nil)
		} else {
			l.addToken(MINUS, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQ, nil)
		} else {
			l.addToken(ASSIGN, nil)
		}
	case '!':
		if l.match('=') {
			l.addToken(NEQ, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQ, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQ, nil)
		} else {
			l.addToken(GREATER, nil)
		}
	case '&':
		if l.match('&') {
			l.addToken(AMPAMP, nil)
		} else {
			l.addToken(AMP, nil)
		}
	case '|':
		if l.match('|') {
			l.addToken(PIPEPIPE, nil)
		} else {
			l.addToken(PIPE, nil)
		}
	case '"':
		return l.scanString()
	default:
		if isDigit(ch) {
			return l.scanNumber()
		}
		if isAlpha(ch) {
			l.scanIdentifier()
			return nil
		}
		return l.errf(l.tokStartLine, l.tokStartCol, "unexpected character "+strconv.QuoteRune(rune(ch)))
	}
	return nil
}

func (l *Lexer) scanString() error {
	var b strings.Builder
	for {
		ch, ok := l.advance()
		if !ok {
			if l.interactive {
				return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: "unterminated string literal", Incomplete: true}
			}
			return l.errf(l.tokStartLine, l.tokStartCol, "unterminated string literal")
		}
		switch ch {
		case '"':
			l.addToken(STRING, b.String())
			return nil
		case '\n':
			return l.errf(l.tokStartLine, l.tokStartCol, "unterminated string literal")
		case '\\':
			esc, ok := l.advance()
			if !ok {
				return l.errf(l.tokStartLine, l.tokStartCol, "unterminated string literal")
			}
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '0':
				b.WriteByte(0)
			case '\\', '"', '\'':
				b.WriteByte(esc)
			default:
				return l.errf(l.line, l.col-1, "invalid escape sequence \\"+string(esc))
			}
		default:
			b.WriteByte(ch)
		}
	}
}

func (l *Lexer) scanNumber() error {
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	isFloat := false
	// A '.' is part of the number only when followed by a digit; otherwise it
	// stays a PERIOD token (tuple member access, which we skim over).
	if ch, ok := l.peek(); ok && ch == '.' {
		if n, ok := l.peekN(1); ok && isDigit(n) {
			isFloat = true
			l.advance()
			for {
				ch, ok := l.peek()
				if !ok || !isDigit(ch) {
					break
				}
				l.advance()
			}
		}
	}
	text := l.src[l.start:l.cur]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.errf(l.tokStartLine, l.tokStartCol, "invalid numeric literal "+text)
		}
		l.addToken(FLOAT, f)
		return nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errf(l.tokStartLine, l.tokStartCol, "invalid integer literal "+text)
	}
	l.addToken(INTEGER, n)
	return nil
}

func (l *Lexer) scanIdentifier() {
	for {
		ch, ok := l.peek()
		if !ok || !isAlphaNum(ch) {
			break
		}
		l.advance()
	}
	text := l.src[l.start:l.cur]
	if text == "_" {
		l.addToken(UNDERSCORE, nil)
		return
	}
	if tt, ok := keywords[text]; ok {
		if tt == BOOLEAN {
			l.addToken(BOOLEAN, text == "true")
			return
		}
		l.addToken(tt, nil)
		return
	}
	l.addToken(ID, text)
}
