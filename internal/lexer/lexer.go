package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lumen-lang/lumen/internal/diag"
)

type LexErrorKind int

const (
	ErrUnterminatedString LexErrorKind = iota
	ErrUnterminatedInterp
	ErrLoneAmpersand
	ErrLonePipe
	ErrIllegalRune
)

type LexError struct {
	Kind    LexErrorKind
	Message string
	Span    Span
}

func (e LexError) Error() string {
	return e.Span.String() + ": " + e.Message
}

func (k LexErrorKind) DiagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedInterp:
		return diag.CodeLexerUnterminatedInterp
	case ErrLoneAmpersand:
		return diag.CodeLexerLoneAmpersand
	case ErrLonePipe:
		return diag.CodeLexerLonePipe
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into the shared diagnostic structure.
func (e LexError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.DiagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer turns Lumen source text into a token stream. Lexing is fail-fast:
// the first lexical error is recorded in err and the offending position is
// surfaced as an ILLEGAL token.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	err *LexError
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all emitted spans to the provided filename.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// Err returns the first lexical error encountered, or nil.
func (l *Lexer) Err() *LexError {
	return l.err
}

func (l *Lexer) fail(kind LexErrorKind, msg string, span Span) {
	if l.err != nil {
		return
	}
	l.err = &LexError{Kind: kind, Message: msg, Span: span}
}

// read advances the lexer to the next character, maintaining line/column so
// they always reflect the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1

	if prevPos >= 0 && prevPos < len(l.input) && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0 // EOF
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) spanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal, value string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Value:   value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// single emits a one-character token and advances past it.
func (l *Lexer) single(tokType TokenType) Token {
	startLine, startColumn, startPos := l.spanStart()
	lit := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, lit, lit)
}

// pair emits a two-character token; the caller guarantees peek() matches.
func (l *Lexer) pair(tokType TokenType) Token {
	startLine, startColumn, startPos := l.spanStart()
	lit := string(l.ch) + string(l.peek())
	l.read()
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, lit, lit)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// skipLineComment discards a // comment up to (not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
}

// readIdentifier reads an identifier or keyword (maximal munch).
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads an integer or decimal literal.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}
	return string(l.input[start:l.pos])
}

// NextToken returns the next token from the input. After the first lexical
// error every subsequent call returns the same ILLEGAL token position.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		switch l.ch {
		case 0:
			startLine, startColumn, startPos := l.spanStart()
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '=':
			if l.peek() == '=' {
				return l.pair(EQ)
			}
			return l.single(ASSIGN)

		case '+':
			return l.single(PLUS)

		case '-':
			if l.peek() == '>' {
				return l.pair(ARROW)
			}
			return l.single(MINUS)

		case '*':
			return l.single(ASTERISK)

		case '%':
			return l.single(PERCENT)

		case '!':
			if l.peek() == '=' {
				return l.pair(NOT_EQ)
			}
			return l.single(BANG)

		case '?':
			return l.single(QUESTION)

		case '/':
			if l.peek() == '/' {
				l.skipLineComment()
				continue
			}
			return l.single(SLASH)

		case '<':
			if l.peek() == '=' {
				return l.pair(LE)
			}
			return l.single(LT)

		case '>':
			if l.peek() == '=' {
				return l.pair(GE)
			}
			return l.single(GT)

		case '&':
			if l.peek() == '&' {
				return l.pair(AND)
			}
			tok := l.single(ILLEGAL)
			l.fail(ErrLoneAmpersand, "unexpected '&' (did you mean '&&'?)", tok.Span)
			return tok

		case '|':
			if l.peek() == '|' {
				return l.pair(OR)
			}
			tok := l.single(ILLEGAL)
			l.fail(ErrLonePipe, "unexpected '|' (did you mean '||'?)", tok.Span)
			return tok

		case ',':
			return l.single(COMMA)
		case ':':
			return l.single(COLON)
		case ';':
			return l.single(SEMICOLON)
		case '.':
			return l.single(DOT)
		case '(':
			return l.single(LPAREN)
		case ')':
			return l.single(RPAREN)
		case '{':
			return l.single(LBRACE)
		case '}':
			return l.single(RBRACE)
		case '[':
			return l.single(LBRACKET)
		case ']':
			return l.single(RBRACKET)

		case '"':
			return l.readString()

		case '$':
			if l.peek() == '"' {
				return l.readInterpTemplate()
			}
			tok := l.single(ILLEGAL)
			l.fail(ErrIllegalRune, "unexpected '$' (interpolated strings are written $\"...\")", tok.Span)
			return tok

		default:
			if isLetter(l.ch) {
				startLine, startColumn, startPos := l.spanStart()
				literal := l.readIdentifier()
				tokType := LookupIdent(literal)
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
			}
			if isDigit(l.ch) {
				startLine, startColumn, startPos := l.spanStart()
				literal := l.readNumber()
				return l.makeToken(NUMBER, startLine, startColumn, startPos, l.pos, literal, literal)
			}
			tok := l.single(ILLEGAL)
			l.fail(ErrIllegalRune, "illegal character "+strconv.Quote(tok.Literal), tok.Span)
			return tok
		}
	}
}

// readString reads a double-quoted string literal, decoding escape sequences.
// The unterminated-string error reports the line of the opening quote.
func (l *Lexer) readString() Token {
	startLine, startColumn, startPos := l.spanStart()
	var value []rune

	l.read() // skip opening quote

	for {
		if l.ch == 0 || l.ch == '\n' {
			span := Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
			l.fail(ErrUnterminatedString, "unterminated string literal (opened on line "+strconv.Itoa(startLine)+")", span)
			return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, string(l.input[startPos:l.pos]), "")
		}
		if l.ch == '"' {
			l.read() // consume closing quote
			lit := string(l.input[startPos:l.pos])
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, lit, string(value))
		}
		if l.ch == '\\' {
			l.read() // skip '\'
			value = append(value, decodeEscape(l.ch))
			l.read()
			continue
		}
		value = append(value, l.ch)
		l.read()
	}
}

// readInterpTemplate scans a $"..." template as one raw token. The template
// body is kept verbatim (escapes undecoded) so the parser can split it into
// literal and expression fragments and re-lex each fragment independently.
// Brace depth is tracked so quotes inside {...} fragments do not terminate
// the template.
func (l *Lexer) readInterpTemplate() Token {
	startLine, startColumn, startPos := l.spanStart()

	l.read() // skip '$'
	l.read() // skip opening quote

	bodyStart := l.pos
	depth := 0
	inFragmentString := false

	for {
		if l.ch == 0 {
			span := Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
			if depth > 0 {
				l.fail(ErrUnterminatedInterp, "unbalanced '{' in interpolated string (opened on line "+strconv.Itoa(startLine)+")", span)
			} else {
				l.fail(ErrUnterminatedInterp, "unterminated interpolated string (opened on line "+strconv.Itoa(startLine)+")", span)
			}
			return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, string(l.input[startPos:l.pos]), "")
		}

		if depth == 0 {
			switch l.ch {
			case '"':
				body := string(l.input[bodyStart:l.pos])
				l.read() // consume closing quote
				lit := string(l.input[startPos:l.pos])
				return l.makeToken(INTERP_STRING, startLine, startColumn, startPos, l.pos, lit, body)
			case '\\':
				l.read() // keep escape raw, skip escaped char
				if l.ch != 0 {
					l.read()
				}
				continue
			case '{':
				depth++
			}
			l.read()
			continue
		}

		// Inside a {...} fragment: copy raw, but a quoted string within the
		// fragment must not affect brace tracking or end the template.
		if inFragmentString {
			switch l.ch {
			case '\\':
				l.read()
				if l.ch != 0 {
					l.read()
				}
				continue
			case '"':
				inFragmentString = false
			}
			l.read()
			continue
		}

		switch l.ch {
		case '"':
			inFragmentString = true
		case '{':
			depth++
		case '}':
			depth--
		}
		l.read()
	}
}

// decodeEscape maps an escape character to its decoded rune. Unknown escapes
// decode to the character itself.
func decodeEscape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\\':
		return '\\'
	case '"':
		return '"'
	default:
		return ch
	}
}

// DecodeEscapes decodes backslash escapes in a raw template fragment using
// the same rules as string literals.
func DecodeEscapes(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			b.WriteRune(decodeEscape(runes[i]))
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
