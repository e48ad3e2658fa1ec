// token.go
package swift

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"
	LSQUARE   // "["
	RSQUARE   // "]"
	COLON     // ":"
	COMMA     // ","
	PERIOD    // "."
	QUESTION  // "?"
	SEMICOLON // ";"

	// Operators (the analyzer skims expressions; it never evaluates them,
	// but the lexer must still tokenize everything a case body may contain)
	ASSIGN     // "="
	EQ         // "=="
	NEQ        // "!="
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	BANG   // "!"
	AMP    // "&"
	AMPAMP // "&&"
	PIPE   // "|"
	PIPEPIPE
	ARROW // "->"

	// Literals & identifiers
	ID
	UNDERSCORE // "_" on its own
	STRING
	INTEGER
	FLOAT
	BOOLEAN

	// Keywords
	SWITCH
	CASE
	DEFAULT
	ENUM
	INDIRECT
	LET
	VAR
	IS
	WHERE
	FUNC
	RETURN
	IF
	ELSE
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string // raw text slice
	Literal any    // parsed value for literals
	Line    int    // 1-based
	Col     int    // 0-based
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %q", t.Line, t.Col, t.Lexeme)
}

// keywords map
var keywords = map[string]TokenType{
	"true":     BOOLEAN,
	"false":    BOOLEAN,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"enum":     ENUM,
	"indirect": INDIRECT,
	"let":      LET,
	"var":      VAR,
	"is":       IS,
	"where":    WHERE,
	"func":     FUNC,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
}
