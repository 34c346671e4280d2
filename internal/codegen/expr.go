package codegen

import (
	"strconv"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/csharp"
)

// genExpr lowers one expression. A PropagateExpr in any nested position is
// hoisted into the prelude (temporary binding plus IsError early return)
// and replaced by the temporary's ok slot, preserving evaluation order and
// the first-error short circuit.
func (g *Generator) genExpr(expr ast.Expr) (csharp.Expr, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return &csharp.Ident{Name: e.Name}, nil

	case *ast.NumberLit:
		return &csharp.NumberLit{Text: e.Text}, nil

	case *ast.StringLit:
		return &csharp.StringLit{Value: e.Value}, nil

	case *ast.StringInterp:
		return g.genInterp(e)

	case *ast.BinaryExpr:
		left, err := g.genExpr(e.Left)
		if err != nil {
			return nil, err
		}
		if containsPropagate(e.Right) {
			left = g.hoistOperand(left)
		}
		right, err := g.genExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &csharp.BinaryExpr{Op: string(e.Op), Left: left, Right: right}, nil

	case *ast.UnaryExpr:
		operand, err := g.genExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return &csharp.UnaryExpr{Op: string(e.Op), Operand: operand}, nil

	case *ast.OkExpr:
		return g.genResultCtor("Ok", e, e.Value)

	case *ast.ErrorExpr:
		return g.genResultCtor("Error", e, e.Value)

	case *ast.PropagateExpr:
		inner, err := g.genExpr(e.Value)
		if err != nil {
			return nil, err
		}
		temp := g.freshTemp()
		g.prelude = append(g.prelude,
			&csharp.VarDeclStmt{Name: temp, Value: inner},
			isErrorEarlyReturn(temp),
		)
		return okSlot(temp), nil

	case *ast.CallExpr:
		callee, err := g.genExpr(e.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]csharp.Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i], err = g.genExpr(arg)
			if err != nil {
				return nil, err
			}
			if propagatesAfter(e.Args, i) {
				args[i] = g.hoistOperand(args[i])
			}
		}
		return &csharp.CallExpr{Callee: callee, Args: args}, nil

	case *ast.QualifiedName:
		return g.genQualifiedName(e)

	default:
		return nil, errUnsupported(expr)
	}
}

// genQualifiedName resolves Module.member references against the declared
// module set: a module owner is rewritten to its emitted container class.
func (g *Generator) genQualifiedName(e *ast.QualifiedName) (csharp.Expr, error) {
	if owner, ok := e.Owner.(*ast.Ident); ok && g.modules[owner.Name] {
		return &csharp.MemberExpr{
			Target: &csharp.Ident{Name: owner.Name + "Module"},
			Name:   e.Member.Name,
		}, nil
	}

	target, err := g.genExpr(e.Owner)
	if err != nil {
		return nil, err
	}
	return &csharp.MemberExpr{Target: target, Name: e.Member.Name}, nil
}

// genInterp emits a multi-fragment template as one interpolated string; a
// single literal fragment collapses to a plain literal.
func (g *Generator) genInterp(e *ast.StringInterp) (csharp.Expr, error) {
	if len(e.Fragments) == 1 && e.Fragments[0].Expr == nil {
		return &csharp.StringLit{Value: e.Fragments[0].Literal}, nil
	}

	parts := make([]csharp.InterpPart, 0, len(e.Fragments))
	for i, frag := range e.Fragments {
		if frag.Expr == nil {
			parts = append(parts, csharp.InterpPart{Literal: frag.Literal})
			continue
		}
		expr, err := g.genExpr(frag.Expr)
		if err != nil {
			return nil, err
		}
		if fragmentPropagatesAfter(e.Fragments, i) {
			expr = g.hoistOperand(expr)
		}
		parts = append(parts, csharp.InterpPart{Expr: expr})
	}

	return &csharp.InterpString{Parts: parts}, nil
}

// genResultCtor emits an Ok or Error constructor call against the enclosing
// function's Result type, so the static call carries its type arguments. The
// constructors are only meaningful where that type exists; anywhere else the
// emitted call could not name a closed generic type, so generation fails.
func (g *Generator) genResultCtor(ctor string, node ast.Expr, value ast.Expr) (csharp.Expr, error) {
	arg, err := g.genExpr(value)
	if err != nil {
		return nil, err
	}

	if g.resultType == "" {
		return nil, &GenError{
			Message: ctor + "(...) used outside a function returning Result",
			Span:    node.Span(),
		}
	}

	return &csharp.CallExpr{
		Callee: &csharp.MemberExpr{Target: &csharp.Ident{Name: g.resultType}, Name: ctor},
		Args:   []csharp.Expr{arg},
	}, nil
}

// hoistOperand binds an already-lowered operand to a prelude temporary so a
// later sibling's ? desugaring cannot run ahead of it. Identifiers and
// literals have no effects and stay in place.
func (g *Generator) hoistOperand(expr csharp.Expr) csharp.Expr {
	switch expr.(type) {
	case *csharp.Ident, *csharp.NumberLit, *csharp.StringLit:
		return expr
	}

	g.tempCount++
	name := "_expr" + strconv.Itoa(g.tempCount)
	g.prelude = append(g.prelude, &csharp.VarDeclStmt{Name: name, Value: expr})
	return &csharp.Ident{Name: name}
}

// containsPropagate reports whether the expression has a ? anywhere in it.
func containsPropagate(expr ast.Expr) bool {
	found := false
	ast.Walk(expr, func(node ast.Node) bool {
		if _, ok := node.(*ast.PropagateExpr); ok {
			found = true
		}
		return !found
	})
	return found
}

// propagatesAfter reports whether any argument past position i contains a ?.
func propagatesAfter(args []ast.Expr, i int) bool {
	for _, arg := range args[i+1:] {
		if containsPropagate(arg) {
			return true
		}
	}
	return false
}

// fragmentPropagatesAfter reports whether any expression fragment past
// position i contains a ?.
func fragmentPropagatesAfter(fragments []ast.InterpFragment, i int) bool {
	for _, frag := range fragments[i+1:] {
		if frag.Expr != nil && containsPropagate(frag.Expr) {
			return true
		}
	}
	return false
}

// takePrelude returns the hoisted statements accumulated while lowering the
// current statement's expressions, clearing the buffer.
func (g *Generator) takePrelude() []csharp.Stmt {
	prelude := g.prelude
	g.prelude = nil
	return prelude
}

func (g *Generator) freshTemp() string {
	g.tempCount++
	return "_result" + strconv.Itoa(g.tempCount)
}
