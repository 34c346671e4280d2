package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original string
	End      int    // exclusive end index
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact lexeme from source
	Value   string // decoded value (for strings, same as Literal for others)
	Span    Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT         TokenType = "IDENT"         // add, result, x, ...
	NUMBER        TokenType = "NUMBER"        // 42, 3.14
	STRING        TokenType = "STRING"        // "hello"
	INTERP_STRING TokenType = "INTERP_STRING" // $"hello {name}"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	BANG     TokenType = "!"
	QUESTION TokenType = "?"
	AND      TokenType = "&&"
	OR       TokenType = "||"

	LT     TokenType = "<"
	GT     TokenType = ">"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LE     TokenType = "<="
	GE     TokenType = ">="

	ARROW TokenType = "->"

	// Delimiters
	COMMA     TokenType = ","
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	MODULE   TokenType = "MODULE"
	IMPORT   TokenType = "IMPORT"
	EXPORT   TokenType = "EXPORT"
	FUNCTION TokenType = "FUNCTION"
	PURE     TokenType = "PURE"
	USES     TokenType = "USES"
	RETURN   TokenType = "RETURN"
	LET      TokenType = "LET"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	GUARD    TokenType = "GUARD"
	OK       TokenType = "OK"
	ERROR    TokenType = "ERROR"

	// Effect names (part of the keyword table)
	DATABASE   TokenType = "DATABASE"
	NETWORK    TokenType = "NETWORK"
	LOGGING    TokenType = "LOGGING"
	FILESYSTEM TokenType = "FILESYSTEM"
	MEMORY     TokenType = "MEMORY"
	IO         TokenType = "IO"

	// Primitive type names
	INT_TYPE    TokenType = "INT_TYPE"
	STRING_TYPE TokenType = "STRING_TYPE"
	BOOL_TYPE   TokenType = "BOOL_TYPE"
)

var keywords = map[string]TokenType{
	"module":   MODULE,
	"import":   IMPORT,
	"export":   EXPORT,
	"function": FUNCTION,
	"pure":     PURE,
	"uses":     USES,
	"return":   RETURN,
	"let":      LET,
	"if":       IF,
	"else":     ELSE,
	"guard":    GUARD,
	"Ok":       OK,
	"Error":    ERROR,

	"Database":   DATABASE,
	"Network":    NETWORK,
	"Logging":    LOGGING,
	"FileSystem": FILESYSTEM,
	"Memory":     MEMORY,
	"IO":         IO,

	"int":    INT_TYPE,
	"string": STRING_TYPE,
	"bool":   BOOL_TYPE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsEffectName reports whether the token type is one of the six effect keywords.
func IsEffectName(tt TokenType) bool {
	switch tt {
	case DATABASE, NETWORK, LOGGING, FILESYSTEM, MEMORY, IO:
		return true
	default:
		return false
	}
}

// IsPrimitiveType reports whether the token type names a primitive type.
func IsPrimitiveType(tt TokenType) bool {
	switch tt {
	case INT_TYPE, STRING_TYPE, BOOL_TYPE:
		return true
	default:
		return false
	}
}
