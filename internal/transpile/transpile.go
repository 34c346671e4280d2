// Package transpile is the public entry point of the compiler: it wires the
// lexer, parser, and code generator into a single pure compile call. It
// performs no I/O; each call builds fresh component instances, so callers
// may run many compiles concurrently, one per source file.
package transpile

import (
	"errors"
	"fmt"

	"github.com/lumen-lang/lumen/internal/codegen"
	"github.com/lumen-lang/lumen/internal/csharp"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/parser"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes diagnostics to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Compile turns Lumen source text into C# source text, or fails with the
// first error any stage produced. Compiling identical source twice yields
// byte-identical output.
func Compile(source string, opts ...Option) (string, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := parser.New(source, parser.WithFilename(cfg.filename))

	prog, err := p.Parse()
	if err != nil {
		return "", fmt.Errorf("parsing failed: %w", err)
	}

	unit, err := codegen.NewGenerator().Generate(prog)
	if err != nil {
		return "", fmt.Errorf("code generation failed: %w", err)
	}

	return csharp.Print(unit), nil
}

// AsDiagnostic extracts the structured diagnostic from a Compile error, if
// the failure originated in a compiler stage.
func AsDiagnostic(err error) (diag.Diagnostic, bool) {
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.ToDiagnostic(), true
	}

	var genErr *codegen.GenError
	if errors.As(err, &genErr) {
		return genErr.ToDiagnostic(), true
	}

	return diag.Diagnostic{}, false
}
