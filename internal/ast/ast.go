package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// TypeExpr represents a type annotation expression.
type TypeExpr interface {
	Node
	typeNode()
}

// Program represents a parsed compilation unit.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// ModuleDecl represents a named module block of nested statements.
type ModuleDecl struct {
	Name *Ident
	Body []Stmt
	span lexer.Span
}

// Span returns the declaration span.
func (d *ModuleDecl) Span() lexer.Span { return d.span }

// NewModuleDecl constructs a module declaration node.
func NewModuleDecl(name *Ident, body []Stmt, span lexer.Span) *ModuleDecl {
	return &ModuleDecl{Name: name, Body: body, span: span}
}

func (*ModuleDecl) stmtNode() {}

// ImportStmt represents an import declaration. Exactly one of the three
// forms is populated: a (possibly dotted) path, a wildcard path, or a
// selective name list.
type ImportStmt struct {
	Path     []*Ident // dotted module path
	Wildcard bool     // Module.*
	Names    []*Ident // Module.{a, b}
	span     lexer.Span
}

// Span returns the statement span.
func (s *ImportStmt) Span() lexer.Span { return s.span }

// NewImportStmt constructs an import statement node.
func NewImportStmt(path []*Ident, wildcard bool, names []*Ident, span lexer.Span) *ImportStmt {
	return &ImportStmt{Path: path, Wildcard: wildcard, Names: names, span: span}
}

func (*ImportStmt) stmtNode() {}

// ExportStmt represents an export declaration: either an explicit name list
// or an inline exported function declaration.
type ExportStmt struct {
	Names []*Ident
	Decl  *FunctionDecl
	span  lexer.Span
}

// Span returns the statement span.
func (s *ExportStmt) Span() lexer.Span { return s.span }

// NewExportStmt constructs an export statement node.
func NewExportStmt(names []*Ident, decl *FunctionDecl, span lexer.Span) *ExportStmt {
	return &ExportStmt{Names: names, Decl: decl, span: span}
}

func (*ExportStmt) stmtNode() {}

// FunctionDecl represents a function declaration. Pure and Effects are
// mutually exclusive; the parser rejects declarations carrying both.
type FunctionDecl struct {
	Pure       bool
	Name       *Ident
	Params     []*Param
	Effects    *EffectAnnotation
	ReturnType TypeExpr
	Body       []Stmt
	span       lexer.Span
}

// Span returns the declaration span.
func (d *FunctionDecl) Span() lexer.Span { return d.span }

// NewFunctionDecl constructs a function declaration node.
func NewFunctionDecl(pure bool, name *Ident, params []*Param, effects *EffectAnnotation, returnType TypeExpr, body []Stmt, span lexer.Span) *FunctionDecl {
	return &FunctionDecl{
		Pure:       pure,
		Name:       name,
		Params:     params,
		Effects:    effects,
		ReturnType: returnType,
		Body:       body,
		span:       span,
	}
}

func (*FunctionDecl) stmtNode() {}

// Param represents a function parameter.
type Param struct {
	Name *Ident
	Type TypeExpr
	span lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ TypeExpr, span lexer.Span) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

// EffectAnnotation represents a uses [A, B] effect list.
type EffectAnnotation struct {
	Names []*Ident
	span  lexer.Span
}

// Span returns the annotation span.
func (a *EffectAnnotation) Span() lexer.Span { return a.span }

// NewEffectAnnotation constructs an effect annotation node.
func NewEffectAnnotation(names []*Ident, span lexer.Span) *EffectAnnotation {
	return &EffectAnnotation{Names: names, span: span}
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

func (*ReturnStmt) stmtNode() {}

// LetStmt represents a let binding statement.
type LetStmt struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(name *Ident, value Expr, span lexer.Span) *LetStmt {
	return &LetStmt{Name: name, Value: value, span: span}
}

func (*LetStmt) stmtNode() {}

// IfStmt represents an if statement with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	span lexer.Span
}

// Span returns the statement span.
func (s *IfStmt) Span() lexer.Span { return s.span }

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then, els []Stmt, span lexer.Span) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, span: span}
}

func (*IfStmt) stmtNode() {}

// GuardStmt represents a guard statement; the else body runs exactly when
// the condition is false and is required to be non-empty by the parser.
type GuardStmt struct {
	Cond Expr
	Else []Stmt
	span lexer.Span
}

// Span returns the statement span.
func (s *GuardStmt) Span() lexer.Span { return s.span }

// NewGuardStmt constructs a guard statement node.
func NewGuardStmt(cond Expr, els []Stmt, span lexer.Span) *GuardStmt {
	return &GuardStmt{Cond: cond, Else: els, span: span}
}

func (*GuardStmt) stmtNode() {}

// ExprStmt represents an expression statement.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

func (*ExprStmt) stmtNode() {}
