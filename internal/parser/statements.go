package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseStmt dispatches on the current keyword in fixed order: module,
// import, export, function/pure, return, let, if, guard; anything else is
// attempted as an expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.MODULE:
		return p.parseModuleDecl()
	case lexer.IMPORT:
		return p.parseImportStmt()
	case lexer.EXPORT:
		return p.parseExportStmt()
	case lexer.FUNCTION, lexer.PURE:
		return p.parseFunctionDecl()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.GUARD:
		return p.parseGuardStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses a brace-delimited statement list. The opening brace is
// expected in peek position.
func (p *Parser) parseBlock() ([]ast.Stmt, lexer.Span) {
	if !p.expect(lexer.LBRACE) {
		return nil, p.curTok.Span
	}

	start := p.curTok.Span
	var stmts []ast.Stmt

	p.nextToken()

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF && !p.failed() {
		if p.curTok.Type == lexer.SEMICOLON {
			p.nextToken()
			continue
		}

		stmt := p.parseStmt()
		if p.failed() {
			return nil, start
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportExpected("'}' to close block", p.curTok)
		return nil, start
	}

	return stmts, mergeSpan(start, p.curTok.Span)
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	// A bare 'return' before a closing brace or semicolon carries no value.
	if p.peekTok.Type == lexer.RBRACE || p.peekTok.Type == lexer.SEMICOLON || p.peekTok.Type == lexer.EOF {
		return ast.NewReturnStmt(nil, start)
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewReturnStmt(value, mergeSpan(start, value.Span()))
}

func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewLetStmt(name, value, mergeSpan(start, value.Span()))
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	then, thenSpan := p.parseBlock()
	if p.failed() {
		return nil
	}

	span := mergeSpan(start, thenSpan)

	var els []ast.Stmt
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken() // move to 'else'

		var elseSpan lexer.Span
		els, elseSpan = p.parseBlock()
		if p.failed() {
			return nil
		}
		span = mergeSpan(span, elseSpan)
	}

	return ast.NewIfStmt(cond, then, els, span)
}

// parseGuardStmt parses guard <cond> else { body }. The else body is
// mandatory and must be non-empty; the grammar does not require it to
// diverge.
func (p *Parser) parseGuardStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.ELSE) {
		return nil
	}

	body, bodySpan := p.parseBlock()
	if p.failed() {
		return nil
	}

	if len(body) == 0 {
		p.reportCoded("guard requires a non-empty else body", p.curTok, diag.CodeParseEmptyGuardBody)
		return nil
	}

	return ast.NewGuardStmt(cond, body, mergeSpan(start, bodySpan))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	return ast.NewExprStmt(expr, expr.Span())
}
