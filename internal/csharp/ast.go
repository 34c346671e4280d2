// Package csharp models the small subset of the C# syntax tree the code
// generator emits, together with a deterministic source printer. The
// generator builds this tree instead of concatenating strings so that the
// emitted program is structurally well-formed by construction.
package csharp

// Decl is a C# declaration: a class or one of its members.
type Decl interface {
	declNode()
}

// Stmt is a C# statement.
type Stmt interface {
	stmtNode()
}

// Expr is a C# expression.
type Expr interface {
	exprNode()
}

// CompilationUnit is one emitted .cs file.
type CompilationUnit struct {
	Usings []string
	Decls  []Decl
}

// ClassDecl represents a (possibly static) class declaration.
type ClassDecl struct {
	DocComments []string // rendered as /// lines
	Modifiers   []string // e.g. "public", "static"
	Name        string
	TypeParams  []string
	Members     []Decl
}

func (*ClassDecl) declNode() {}

// PropertyDecl represents an auto-property: Type Name { get; set; }.
type PropertyDecl struct {
	Modifiers []string
	Type      string
	Name      string
}

func (*PropertyDecl) declNode() {}

// Param is a formal method parameter.
type Param struct {
	Type string
	Name string
}

// MethodDecl represents a method. Exactly one of Body and ExprBody is used;
// ExprBody renders as an expression-bodied member.
type MethodDecl struct {
	DocComments []string
	Modifiers   []string
	ReturnType  string
	Name        string
	TypeParams  []string
	Params      []Param
	Body        []Stmt
	ExprBody    Expr
}

func (*MethodDecl) declNode() {}

// VarDeclStmt represents var name = value;
type VarDeclStmt struct {
	Name  string
	Value Expr
}

func (*VarDeclStmt) stmtNode() {}

// ReturnStmt represents return [value];
type ReturnStmt struct {
	Value Expr // nil for a bare return
}

func (*ReturnStmt) stmtNode() {}

// IfStmt represents if (cond) { ... } [else { ... }].
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (*IfStmt) stmtNode() {}

// ExprStmt represents expr;
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// Ident is a bare identifier or any prerendered type/name text.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// NumberLit is a numeric literal, emitted verbatim.
type NumberLit struct {
	Text string
}

func (*NumberLit) exprNode() {}

// StringLit is a string literal; the printer re-escapes it.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// InterpPart is one piece of an interpolated string: literal text when Expr
// is nil, otherwise an embedded expression.
type InterpPart struct {
	Literal string
	Expr    Expr
}

// InterpString is a $"..." interpolated string.
type InterpString struct {
	Parts []InterpPart
}

func (*InterpString) exprNode() {}

// BinaryExpr is an infix operation. The printer parenthesizes nested binary
// operands so the emitted text preserves the tree's evaluation order.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix operation.
type UnaryExpr struct {
	Op      string
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// CallExpr is a method invocation.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// MemberExpr is a dotted member access.
type MemberExpr struct {
	Target Expr
	Name   string
}

func (*MemberExpr) exprNode() {}

// ObjectInit is new Type { Field = value, ... }.
type ObjectInit struct {
	Type   string
	Fields []FieldInit
}

// FieldInit is one field assignment inside an object initializer.
type FieldInit struct {
	Name  string
	Value Expr
}

func (*ObjectInit) exprNode() {}
