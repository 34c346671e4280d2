package csharp

import (
	"strings"
	"testing"
)

func TestPrintClassWithMethod(t *testing.T) {
	unit := &CompilationUnit{
		Usings: []string{"System"},
		Decls: []Decl{
			&ClassDecl{
				Modifiers: []string{"public", "static"},
				Name:      "Program",
				Members: []Decl{
					&MethodDecl{
						Modifiers:  []string{"public", "static"},
						ReturnType: "int",
						Name:       "add",
						Params: []Param{
							{Type: "int", Name: "a"},
							{Type: "int", Name: "b"},
						},
						Body: []Stmt{
							&ReturnStmt{Value: &BinaryExpr{
								Op:    "+",
								Left:  &Ident{Name: "a"},
								Right: &Ident{Name: "b"},
							}},
						},
					},
				},
			},
		},
	}

	want := `using System;

public static class Program
{
    public static int add(int a, int b)
    {
        return a + b;
    }
}
`

	if got := Print(unit); got != want {
		t.Fatalf("printed output wrong.\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestPrintExprBodiedMethod(t *testing.T) {
	unit := &CompilationUnit{
		Decls: []Decl{
			&ClassDecl{
				Modifiers: []string{"public"},
				Name:      "Box",
				Members: []Decl{
					&MethodDecl{
						Modifiers:  []string{"public", "static"},
						ReturnType: "Box",
						Name:       "Empty",
						ExprBody: &ObjectInit{
							Type: "Box",
							Fields: []FieldInit{
								{Name: "Size", Value: &NumberLit{Text: "0"}},
							},
						},
					},
				},
			},
		},
	}

	output := Print(unit)
	if !strings.Contains(output, "public static Box Empty() => new Box { Size = 0 };") {
		t.Fatalf("expression body printed wrong:\n%s", output)
	}
}

func TestPrintGenericClassAndProperties(t *testing.T) {
	unit := &CompilationUnit{
		Decls: []Decl{
			&ClassDecl{
				Modifiers:  []string{"public"},
				Name:       "Pair",
				TypeParams: []string{"TA", "TB"},
				Members: []Decl{
					&PropertyDecl{Modifiers: []string{"public"}, Type: "TA", Name: "First"},
					&PropertyDecl{Modifiers: []string{"public"}, Type: "TB", Name: "Second"},
				},
			},
		},
	}

	output := Print(unit)
	if !strings.Contains(output, "public class Pair<TA, TB>") {
		t.Fatalf("generic header printed wrong:\n%s", output)
	}
	if !strings.Contains(output, "public TA First { get; set; }") {
		t.Fatalf("property printed wrong:\n%s", output)
	}
}

func TestPrintIfElse(t *testing.T) {
	stmt := &IfStmt{
		Cond: &BinaryExpr{Op: "<", Left: &Ident{Name: "x"}, Right: &NumberLit{Text: "0"}},
		Then: []Stmt{&ReturnStmt{Value: &NumberLit{Text: "0"}}},
		Else: []Stmt{&ReturnStmt{Value: &NumberLit{Text: "1"}}},
	}

	p := &printer{}
	p.printStmt(stmt)
	output := p.String()

	want := `if (x < 0)
{
    return 0;
}
else
{
    return 1;
}
`
	if output != want {
		t.Fatalf("if/else printed wrong.\n--- got ---\n%s\n--- want ---\n%s", output, want)
	}
}

func TestNestedBinaryOperandsParenthesized(t *testing.T) {
	expr := &BinaryExpr{
		Op: "*",
		Left: &BinaryExpr{
			Op:    "+",
			Left:  &Ident{Name: "a"},
			Right: &Ident{Name: "b"},
		},
		Right: &Ident{Name: "c"},
	}

	if got := printExpr(expr); got != "(a + b) * c" {
		t.Fatalf("expected %q, got %q", "(a + b) * c", got)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	if got := printExpr(&StringLit{Value: "a\nb\t\"c\""}); got != `"a\nb\t\"c\""` {
		t.Fatalf("escaped literal wrong: %s", got)
	}
}

func TestInterpStringBracesDoubled(t *testing.T) {
	expr := &InterpString{
		Parts: []InterpPart{
			{Literal: "set {"},
			{Expr: &Ident{Name: "x"}},
			{Literal: "}"},
		},
	}

	if got := printExpr(expr); got != `$"set {{{x}}}"` {
		t.Fatalf("interpolated literal wrong: %s", got)
	}
}

func TestPrintDeterministic(t *testing.T) {
	unit := &CompilationUnit{
		Usings: []string{"System"},
		Decls: []Decl{
			&ClassDecl{Modifiers: []string{"public", "static"}, Name: "Program"},
		},
	}

	// Empty class still prints a body.
	first := Print(unit)
	second := Print(unit)
	if first != second {
		t.Fatalf("output differs between runs")
	}
	if !strings.Contains(first, "public static class Program\n{\n}") {
		t.Fatalf("empty class printed wrong:\n%s", first)
	}
}
