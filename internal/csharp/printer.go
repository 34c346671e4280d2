package csharp

import (
	"fmt"
	"strings"
)

// Print renders a compilation unit as C# source text. Output is purely a
// function of the tree: identical trees print byte-identically.
func Print(unit *CompilationUnit) string {
	p := &printer{}

	for _, using := range unit.Usings {
		p.linef("using %s;", using)
	}
	if len(unit.Usings) > 0 {
		p.blank()
	}

	for i, decl := range unit.Decls {
		if i > 0 {
			p.blank()
		}
		p.printDecl(decl)
	}

	return p.String()
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) String() string { return p.b.String() }

func (p *printer) line(s string) {
	p.b.WriteString(strings.Repeat("    ", p.indent))
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) blank() {
	p.b.WriteByte('\n')
}

func (p *printer) printDecl(decl Decl) {
	switch d := decl.(type) {
	case *ClassDecl:
		p.printClass(d)
	case *MethodDecl:
		p.printMethod(d)
	case *PropertyDecl:
		p.linef("%s %s { get; set; }", joinModifiers(d.Modifiers, d.Type), d.Name)
	default:
		panic(fmt.Sprintf("csharp: unknown declaration %T", decl))
	}
}

func (p *printer) printClass(d *ClassDecl) {
	for _, doc := range d.DocComments {
		p.linef("/// %s", doc)
	}

	header := joinModifiers(d.Modifiers, "class") + " " + d.Name
	if len(d.TypeParams) > 0 {
		header += "<" + strings.Join(d.TypeParams, ", ") + ">"
	}

	p.line(header)
	p.line("{")
	p.indent++

	for i, member := range d.Members {
		if i > 0 {
			p.blank()
		}
		p.printDecl(member)
	}

	p.indent--
	p.line("}")
}

func (p *printer) printMethod(d *MethodDecl) {
	for _, doc := range d.DocComments {
		p.linef("/// %s", doc)
	}

	header := joinModifiers(d.Modifiers, d.ReturnType) + " " + d.Name
	if len(d.TypeParams) > 0 {
		header += "<" + strings.Join(d.TypeParams, ", ") + ">"
	}

	params := make([]string, len(d.Params))
	for i, param := range d.Params {
		params[i] = param.Type + " " + param.Name
	}
	header += "(" + strings.Join(params, ", ") + ")"

	if d.ExprBody != nil {
		p.line(header + " => " + printExpr(d.ExprBody) + ";")
		return
	}

	p.line(header)
	p.line("{")
	p.indent++
	p.printStmts(d.Body)
	p.indent--
	p.line("}")
}

func (p *printer) printStmts(stmts []Stmt) {
	for _, stmt := range stmts {
		p.printStmt(stmt)
	}
}

func (p *printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VarDeclStmt:
		p.linef("var %s = %s;", s.Name, printExpr(s.Value))

	case *ReturnStmt:
		if s.Value == nil {
			p.line("return;")
			return
		}
		p.linef("return %s;", printExpr(s.Value))

	case *IfStmt:
		p.linef("if (%s)", printExpr(s.Cond))
		p.line("{")
		p.indent++
		p.printStmts(s.Then)
		p.indent--
		p.line("}")
		if len(s.Else) > 0 {
			p.line("else")
			p.line("{")
			p.indent++
			p.printStmts(s.Else)
			p.indent--
			p.line("}")
		}

	case *ExprStmt:
		p.linef("%s;", printExpr(s.Expr))

	default:
		panic(fmt.Sprintf("csharp: unknown statement %T", stmt))
	}
}

func printExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Ident:
		return e.Name

	case *NumberLit:
		return e.Text

	case *StringLit:
		return quote(e.Value)

	case *InterpString:
		var b strings.Builder
		b.WriteString("$\"")
		for _, part := range e.Parts {
			if part.Expr != nil {
				b.WriteString("{")
				b.WriteString(printExpr(part.Expr))
				b.WriteString("}")
				continue
			}
			b.WriteString(escapeInterpLiteral(part.Literal))
		}
		b.WriteString("\"")
		return b.String()

	case *BinaryExpr:
		return printOperand(e.Left) + " " + e.Op + " " + printOperand(e.Right)

	case *UnaryExpr:
		return e.Op + printOperand(e.Operand)

	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = printExpr(arg)
		}
		return printExpr(e.Callee) + "(" + strings.Join(args, ", ") + ")"

	case *MemberExpr:
		return printExpr(e.Target) + "." + e.Name

	case *ObjectInit:
		fields := make([]string, len(e.Fields))
		for i, field := range e.Fields {
			fields[i] = field.Name + " = " + printExpr(field.Value)
		}
		return "new " + e.Type + " { " + strings.Join(fields, ", ") + " }"

	default:
		panic(fmt.Sprintf("csharp: unknown expression %T", expr))
	}
}

// printOperand parenthesizes compound operands so the printed text keeps the
// tree's evaluation order without tracking operator precedence.
func printOperand(expr Expr) string {
	switch expr.(type) {
	case *BinaryExpr:
		return "(" + printExpr(expr) + ")"
	default:
		return printExpr(expr)
	}
}

// quote renders a C# string literal with escapes.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	writeEscaped(&b, s)
	b.WriteByte('"')
	return b.String()
}

// escapeInterpLiteral escapes a literal segment of an interpolated string;
// braces double per C# rules.
func escapeInterpLiteral(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch ch {
		case '{':
			b.WriteString("{{")
		case '}':
			b.WriteString("}}")
		default:
			writeEscaped(&b, string(ch))
		}
	}
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	for _, ch := range s {
		switch ch {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		default:
			b.WriteRune(ch)
		}
	}
}

func joinModifiers(modifiers []string, tail string) string {
	if len(modifiers) == 0 {
		return tail
	}
	return strings.Join(modifiers, " ") + " " + tail
}
