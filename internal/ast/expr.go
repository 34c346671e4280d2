package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

func (*Ident) exprNode() {}

// NumberLit represents a numeric literal; the exact source text is kept so
// the generator can emit it verbatim.
type NumberLit struct {
	Text string
	span lexer.Span
}

// Span returns the literal span.
func (l *NumberLit) Span() lexer.Span { return l.span }

// NewNumberLit constructs a number literal node.
func NewNumberLit(text string, span lexer.Span) *NumberLit {
	return &NumberLit{Text: text, span: span}
}

func (*NumberLit) exprNode() {}

// StringLit represents a string literal with escapes already decoded.
type StringLit struct {
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (*StringLit) exprNode() {}

// InterpFragment is one piece of an interpolated string: either literal text
// (Expr nil) or an embedded expression (Expr non-nil, Literal empty).
type InterpFragment struct {
	Literal string
	Expr    Expr
}

// StringInterp represents a $"..." interpolated string as an alternating
// sequence of literal and expression fragments.
type StringInterp struct {
	Fragments []InterpFragment
	span      lexer.Span
}

// Span returns the interpolation span.
func (l *StringInterp) Span() lexer.Span { return l.span }

// NewStringInterp constructs a string interpolation node.
func NewStringInterp(fragments []InterpFragment, span lexer.Span) *StringInterp {
	return &StringInterp{Fragments: fragments, span: span}
}

func (*StringInterp) exprNode() {}

// BinaryExpr represents an infix operation; Op is drawn from the fixed
// operator set recognised by the lexer.
type BinaryExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *BinaryExpr) Span() lexer.Span { return e.span }

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a prefix operation (! or -).
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *UnaryExpr) Span() lexer.Span { return e.span }

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op lexer.TokenType, operand Expr, span lexer.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: span}
}

func (*UnaryExpr) exprNode() {}

// OkExpr represents an Ok(value) constructor expression.
type OkExpr struct {
	Value Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *OkExpr) Span() lexer.Span { return e.span }

// NewOkExpr constructs an Ok expression node.
func NewOkExpr(value Expr, span lexer.Span) *OkExpr {
	return &OkExpr{Value: value, span: span}
}

func (*OkExpr) exprNode() {}

// ErrorExpr represents an Error(value) constructor expression.
type ErrorExpr struct {
	Value Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *ErrorExpr) Span() lexer.Span { return e.span }

// NewErrorExpr constructs an Error expression node.
func NewErrorExpr(value Expr, span lexer.Span) *ErrorExpr {
	return &ErrorExpr{Value: value, span: span}
}

func (*ErrorExpr) exprNode() {}

// PropagateExpr represents a postfix ? applied to a Result-typed expression.
type PropagateExpr struct {
	Value Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *PropagateExpr) Span() lexer.Span { return e.span }

// NewPropagateExpr constructs an error propagation node.
func NewPropagateExpr(value Expr, span lexer.Span) *PropagateExpr {
	return &PropagateExpr{Value: value, span: span}
}

func (*PropagateExpr) exprNode() {}

// CallExpr represents a function or method call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

func (*CallExpr) exprNode() {}

// QualifiedName represents a dotted Module.member reference. Owner may itself
// be a QualifiedName for longer chains.
type QualifiedName struct {
	Owner  Expr
	Member *Ident
	span   lexer.Span
}

// Span returns the expression span.
func (e *QualifiedName) Span() lexer.Span { return e.span }

// NewQualifiedName constructs a qualified name node.
func NewQualifiedName(owner Expr, member *Ident, span lexer.Span) *QualifiedName {
	return &QualifiedName{Owner: owner, Member: member, span: span}
}

func (*QualifiedName) exprNode() {}
