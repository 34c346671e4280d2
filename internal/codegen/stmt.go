package codegen

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/csharp"
)

func (g *Generator) genStmts(stmts []ast.Stmt) ([]csharp.Stmt, error) {
	var out []csharp.Stmt

	for _, stmt := range stmts {
		generated, err := g.genStmt(stmt)
		if err != nil {
			return nil, err
		}
		out = append(out, generated...)
	}

	return out, nil
}

// genStmt lowers one statement, possibly into several target statements.
// Error propagation is desugared here: both the let-bound and the bare form
// produce a temporary binding followed by an IsError early return, so the
// short-circuit is never silently dropped.
func (g *Generator) genStmt(stmt ast.Stmt) ([]csharp.Stmt, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		if prop, ok := s.Value.(*ast.PropagateExpr); ok {
			return g.genLetPropagate(s.Name.Name, prop)
		}

		value, err := g.genExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return append(g.takePrelude(), &csharp.VarDeclStmt{Name: s.Name.Name, Value: value}), nil

	case *ast.ReturnStmt:
		return g.genReturn(s)

	case *ast.IfStmt:
		cond, err := g.genExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		prelude := g.takePrelude()

		then, err := g.genStmts(s.Then)
		if err != nil {
			return nil, err
		}
		els, err := g.genStmts(s.Else)
		if err != nil {
			return nil, err
		}
		return append(prelude, &csharp.IfStmt{Cond: cond, Then: then, Else: els}), nil

	case *ast.GuardStmt:
		// guard cond else { body } runs body exactly when cond is false.
		cond, err := g.genExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		prelude := g.takePrelude()

		body, err := g.genStmts(s.Else)
		if err != nil {
			return nil, err
		}
		negated := &csharp.UnaryExpr{Op: "!", Operand: cond}
		return append(prelude, &csharp.IfStmt{Cond: negated, Then: body}), nil

	case *ast.ExprStmt:
		if prop, ok := s.Expr.(*ast.PropagateExpr); ok {
			return g.genBarePropagate(prop)
		}

		expr, err := g.genExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return append(g.takePrelude(), &csharp.ExprStmt{Expr: expr}), nil

	default:
		return nil, errUnsupported(stmt)
	}
}

// genLetPropagate desugars let name = expr? into the three-statement
// sequence: bind <name>_result, early-return on IsError, bind name to the
// ok slot. Evaluation order of expr is preserved by hoisted preludes.
func (g *Generator) genLetPropagate(name string, prop *ast.PropagateExpr) ([]csharp.Stmt, error) {
	inner, err := g.genExpr(prop.Value)
	if err != nil {
		return nil, err
	}

	temp := name + "_result"
	out := g.takePrelude()
	out = append(out,
		&csharp.VarDeclStmt{Name: temp, Value: inner},
		isErrorEarlyReturn(temp),
		&csharp.VarDeclStmt{Name: name, Value: okSlot(temp)},
	)
	return out, nil
}

// genBarePropagate desugars a bare expr? statement: the value is unused but
// the error check still short-circuits the enclosing function.
func (g *Generator) genBarePropagate(prop *ast.PropagateExpr) ([]csharp.Stmt, error) {
	inner, err := g.genExpr(prop.Value)
	if err != nil {
		return nil, err
	}

	temp := g.freshTemp()
	out := g.takePrelude()
	out = append(out,
		&csharp.VarDeclStmt{Name: temp, Value: inner},
		isErrorEarlyReturn(temp),
	)
	return out, nil
}

func (g *Generator) genReturn(s *ast.ReturnStmt) ([]csharp.Stmt, error) {
	if s.Value == nil {
		return []csharp.Stmt{&csharp.ReturnStmt{}}, nil
	}

	if prop, ok := s.Value.(*ast.PropagateExpr); ok {
		inner, err := g.genExpr(prop.Value)
		if err != nil {
			return nil, err
		}

		temp := g.freshTemp()
		out := g.takePrelude()
		out = append(out,
			&csharp.VarDeclStmt{Name: temp, Value: inner},
			isErrorEarlyReturn(temp),
			&csharp.ReturnStmt{Value: okSlot(temp)},
		)
		return out, nil
	}

	value, err := g.genExpr(s.Value)
	if err != nil {
		return nil, err
	}
	return append(g.takePrelude(), &csharp.ReturnStmt{Value: value}), nil
}

func isErrorEarlyReturn(temp string) csharp.Stmt {
	return &csharp.IfStmt{
		Cond: &csharp.MemberExpr{Target: &csharp.Ident{Name: temp}, Name: "IsError"},
		Then: []csharp.Stmt{
			&csharp.ReturnStmt{Value: &csharp.Ident{Name: temp}},
		},
	}
}

func okSlot(temp string) csharp.Expr {
	return &csharp.MemberExpr{Target: &csharp.Ident{Name: temp}, Name: "Value"}
}
