package parser

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// SyntaxError is the single fatal error a parse can produce. The parser is
// fail-fast: the first expected-token mismatch aborts the whole parse, so a
// parse either yields a Program or exactly one SyntaxError.
type SyntaxError struct {
	Message string
	Found   lexer.Token
	Span    lexer.Span
	Code    diag.Code
}

func (e *SyntaxError) Error() string {
	if e.Found.Type == lexer.EOF {
		return fmt.Sprintf("line %d: %s, found end of input", e.Span.Line, e.Message)
	}
	if e.Found.Literal != "" {
		return fmt.Sprintf("line %d: %s, found '%s'", e.Span.Line, e.Message, e.Found.Literal)
	}
	return fmt.Sprintf("line %d: %s", e.Span.Line, e.Message)
}

// stageFor recovers the originating stage from a diagnostic code. The parser
// is the funnel for lexer failures and effect validation, so the code prefix
// is what remembers where the error was born.
func stageFor(code diag.Code) diag.Stage {
	switch {
	case strings.HasPrefix(string(code), "LEXER_"):
		return diag.StageLexer
	case strings.HasPrefix(string(code), "EFFECT_"):
		return diag.StageEffects
	default:
		return diag.StageParser
	}
}

// ToDiagnostic converts the syntax error into the shared diagnostic structure.
func (e *SyntaxError) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeParseUnexpectedToken
	}
	return diag.Diagnostic{
		Stage:    stageFor(code),
		Severity: diag.SeverityError,
		Code:     code,
		Message:  e.Error(),
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}
