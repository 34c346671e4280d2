package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// NamedType represents a primitive or nominal type name.
type NamedType struct {
	Name string
	span lexer.Span
}

// Span returns the type span.
func (t *NamedType) Span() lexer.Span { return t.span }

// NewNamedType constructs a named type node.
func NewNamedType(name string, span lexer.Span) *NamedType {
	return &NamedType{Name: name, span: span}
}

func (*NamedType) typeNode() {}

// GenericType represents an instantiated generic type such as Result<T, E>.
// Arguments are parsed recursively, so nesting is represented structurally
// rather than as text.
type GenericType struct {
	Name string
	Args []TypeExpr
	span lexer.Span
}

// Span returns the type span.
func (t *GenericType) Span() lexer.Span { return t.span }

// NewGenericType constructs a generic type node.
func NewGenericType(name string, args []TypeExpr, span lexer.Span) *GenericType {
	return &GenericType{Name: name, Args: args, span: span}
}

func (*GenericType) typeNode() {}

// IsResultType reports whether a type expression is a two-argument Result.
func IsResultType(t TypeExpr) bool {
	g, ok := t.(*GenericType)
	return ok && g.Name == "Result" && len(g.Args) == 2
}
