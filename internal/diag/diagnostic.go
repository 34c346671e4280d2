package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageEffects Stage = "effects"
	StageCodegen Stage = "codegen"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerUnterminatedString Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerUnterminatedInterp Code = "LEXER_UNTERMINATED_INTERPOLATION"
	CodeLexerLoneAmpersand      Code = "LEXER_LONE_AMPERSAND"
	CodeLexerLonePipe           Code = "LEXER_LONE_PIPE"
	CodeLexerIllegalRune        Code = "LEXER_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken  Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParsePureUsesConflict Code = "PARSE_PURE_USES_CONFLICT"
	CodeParseEmptyGuardBody   Code = "PARSE_EMPTY_GUARD_BODY"
	CodeParseUnbalancedBraces Code = "PARSE_UNBALANCED_INTERP_BRACES"

	// Effect validation errors
	CodeEffectUnknownName Code = "EFFECT_UNKNOWN_NAME"

	// Codegen errors
	CodeGenUnsupportedNode Code = "CODEGEN_UNSUPPORTED_NODE"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Help     string // optional hint for fixing the error
}

// WithHelp returns a copy of the diagnostic with help text attached.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Error makes Diagnostic usable as a Go error at package boundaries.
func (d Diagnostic) Error() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}
