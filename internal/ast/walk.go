package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStmts(n.Stmts, fn)

	case *ModuleDecl:
		Walk(n.Name, fn)
		walkStmts(n.Body, fn)

	case *ImportStmt:
		for _, ident := range n.Path {
			Walk(ident, fn)
		}
		for _, ident := range n.Names {
			Walk(ident, fn)
		}

	case *ExportStmt:
		for _, ident := range n.Names {
			Walk(ident, fn)
		}
		if n.Decl != nil {
			Walk(n.Decl, fn)
		}

	case *FunctionDecl:
		Walk(n.Name, fn)
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Effects != nil {
			Walk(n.Effects, fn)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, fn)
		}
		walkStmts(n.Body, fn)

	case *Param:
		Walk(n.Name, fn)
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *EffectAnnotation:
		for _, ident := range n.Names {
			Walk(ident, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *LetStmt:
		Walk(n.Name, fn)
		Walk(n.Value, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		walkStmts(n.Then, fn)
		walkStmts(n.Else, fn)

	case *GuardStmt:
		Walk(n.Cond, fn)
		walkStmts(n.Else, fn)

	case *ExprStmt:
		Walk(n.Expr, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		Walk(n.Operand, fn)

	case *StringInterp:
		for _, frag := range n.Fragments {
			if frag.Expr != nil {
				Walk(frag.Expr, fn)
			}
		}

	case *OkExpr:
		Walk(n.Value, fn)

	case *ErrorExpr:
		Walk(n.Value, fn)

	case *PropagateExpr:
		Walk(n.Value, fn)

	case *CallExpr:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *QualifiedName:
		Walk(n.Owner, fn)
		Walk(n.Member, fn)

	case *GenericType:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Ident, *NumberLit, *StringLit, *NamedType:
		// leaves
	}
}

func walkStmts(stmts []Stmt, fn func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, fn)
	}
}
