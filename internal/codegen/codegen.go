// Package codegen lowers a Lumen program into a C# compilation unit. The
// generator is a single exhaustive dispatch over the closed AST node set;
// an unregistered node kind is a fatal error, which is unreachable for
// parser-produced trees.
package codegen

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/csharp"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// GenError is a fatal code generation failure.
type GenError struct {
	Message string
	Span    lexer.Span
}

func (e *GenError) Error() string {
	return "codegen: " + e.Message
}

// ToDiagnostic converts the error into the shared diagnostic structure.
func (e *GenError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageCodegen,
		Severity: diag.SeverityError,
		Code:     diag.CodeGenUnsupportedNode,
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

func errUnsupported(node ast.Node) error {
	return &GenError{
		Message: fmt.Sprintf("no transformation registered for node %T", node),
		Span:    node.Span(),
	}
}

// Generator converts a Lumen AST into a C# syntax tree. A Generator is
// scoped to one Generate call and must not be reused.
type Generator struct {
	modules map[string]bool // declared module names, for qualified-name resolution

	// Per-function state for error-propagation desugaring.
	resultType string        // mapped return type of the enclosing function, "" if not Result
	prelude    []csharp.Stmt // statements hoisted ahead of the current one
	tempCount  int
}

// NewGenerator creates a new generator.
func NewGenerator() *Generator {
	return &Generator{
		modules: make(map[string]bool),
	}
}

// Generate lowers a program to a C# compilation unit. Top-level functions
// land in a static Program class; modules become sibling static container
// classes; the Result support type is emitted once iff any declared type
// references Result.
func (g *Generator) Generate(prog *ast.Program) (*csharp.CompilationUnit, error) {
	g.collectModules(prog)

	unit := &csharp.CompilationUnit{
		Usings: []string{"System"},
	}

	if programMentionsResult(prog) {
		unit.Decls = append(unit.Decls, resultSupportClass())
	}

	topLevel, err := g.genContainer("Program", prog.Stmts, &unit.Decls)
	if err != nil {
		return nil, err
	}
	if topLevel != nil {
		unit.Decls = append(unit.Decls, topLevel)
	}

	return unit, nil
}

// collectModules records every declared module name so qualified calls can
// be resolved to their emitted container classes.
func (g *Generator) collectModules(prog *ast.Program) {
	ast.Walk(prog, func(node ast.Node) bool {
		if mod, ok := node.(*ast.ModuleDecl); ok {
			g.modules[mod.Name.Name] = true
		}
		return true
	})
}

// programMentionsResult reports whether any declared parameter or return
// type references Result<_, _>.
func programMentionsResult(prog *ast.Program) bool {
	found := false
	ast.Walk(prog, func(node ast.Node) bool {
		if t, ok := node.(*ast.GenericType); ok && t.Name == "Result" {
			found = true
			return false
		}
		return true
	})
	return found
}

// genContainer lowers a statement list into one static container class named
// containerName. Nested modules are appended to siblings. Loose executable
// statements are gathered into a Main method; a container with neither
// members nor loose statements yields nil.
func (g *Generator) genContainer(containerName string, stmts []ast.Stmt, siblings *[]csharp.Decl) (*csharp.ClassDecl, error) {
	exports, explicitExports := collectExports(stmts)

	class := &csharp.ClassDecl{
		Modifiers: []string{"public", "static"},
		Name:      containerName,
	}

	var loose []ast.Stmt

	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			method, err := g.genFunction(s, visibility(s.Name.Name, exports, explicitExports))
			if err != nil {
				return nil, err
			}
			class.Members = append(class.Members, method)

		case *ast.ExportStmt:
			if s.Decl != nil {
				method, err := g.genFunction(s.Decl, "public")
				if err != nil {
					return nil, err
				}
				class.Members = append(class.Members, method)
			}
			// Explicit name lists were consumed by collectExports.

		case *ast.ModuleDecl:
			module, err := g.genContainer(s.Name.Name+"Module", s.Body, siblings)
			if err != nil {
				return nil, err
			}
			if module != nil {
				*siblings = append(*siblings, module)
			}

		case *ast.ImportStmt:
			// Qualified names resolve lexically within one compiled unit;
			// imports emit nothing.

		default:
			loose = append(loose, stmt)
		}
	}

	if len(loose) > 0 {
		main := &csharp.MethodDecl{
			Modifiers:  []string{"public", "static"},
			ReturnType: "void",
			Name:       "Main",
		}
		body, err := g.genFunctionBody(loose, "")
		if err != nil {
			return nil, err
		}
		main.Body = body
		class.Members = append(class.Members, main)
	}

	if len(class.Members) == 0 {
		return nil, nil
	}

	return class, nil
}

// collectExports gathers explicit export name lists from a statement list.
func collectExports(stmts []ast.Stmt) (map[string]bool, bool) {
	exports := make(map[string]bool)
	explicit := false

	for _, stmt := range stmts {
		if exp, ok := stmt.(*ast.ExportStmt); ok {
			for _, name := range exp.Names {
				exports[name.Name] = true
				explicit = true
			}
		}
	}

	return exports, explicit
}

// visibility maps export information to a C# access modifier. Absent an
// explicit export list every declared function is treated as exported.
func visibility(name string, exports map[string]bool, explicit bool) string {
	if !explicit || exports[name] {
		return "public"
	}
	return "private"
}

// genFunction lowers one function declaration to a static method carrying
// its effect documentation comment.
func (g *Generator) genFunction(fn *ast.FunctionDecl, access string) (*csharp.MethodDecl, error) {
	method := &csharp.MethodDecl{
		DocComments: effectComment(fn),
		Modifiers:   []string{access, "static"},
		ReturnType:  "void",
		Name:        fn.Name.Name,
	}

	if fn.ReturnType != nil {
		method.ReturnType = mapType(fn.ReturnType)
	}

	for _, param := range fn.Params {
		method.Params = append(method.Params, csharp.Param{
			Type: mapType(param.Type),
			Name: param.Name.Name,
		})
	}

	resultType := ""
	if fn.ReturnType != nil && ast.IsResultType(fn.ReturnType) {
		resultType = method.ReturnType
	}

	body, err := g.genFunctionBody(fn.Body, resultType)
	if err != nil {
		return nil, err
	}
	method.Body = body

	return method, nil
}

// genFunctionBody lowers a statement list with fresh per-function
// desugaring state.
func (g *Generator) genFunctionBody(stmts []ast.Stmt, resultType string) ([]csharp.Stmt, error) {
	prevResult, prevCount := g.resultType, g.tempCount
	g.resultType = resultType
	g.tempCount = 0

	body, err := g.genStmts(stmts)

	g.resultType, g.tempCount = prevResult, prevCount

	return body, err
}

// effectComment renders the purity or effect-list documentation for a
// function. Effects are documentary only and never enforced at runtime.
func effectComment(fn *ast.FunctionDecl) []string {
	if fn.Pure {
		return []string{"Pure function (no side effects)."}
	}
	if fn.Effects != nil && len(fn.Effects.Names) > 0 {
		names := make([]string, len(fn.Effects.Names))
		for i, name := range fn.Effects.Names {
			names[i] = name.Name
		}
		return []string{"Effects: " + joinNames(names) + "."}
	}
	return nil
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

// mapType renders a Lumen type expression as C# type text. Lumen's
// primitives map one-to-one; the generic form renders recursively, so
// Result<int, string> arrives as Result<int, string>.
func mapType(t ast.TypeExpr) string {
	switch typ := t.(type) {
	case *ast.NamedType:
		return typ.Name
	case *ast.GenericType:
		args := make([]string, len(typ.Args))
		for i, arg := range typ.Args {
			args[i] = mapType(arg)
		}
		out := typ.Name + "<"
		for i, arg := range args {
			if i > 0 {
				out += ", "
			}
			out += arg
		}
		return out + ">"
	default:
		return "object"
	}
}
