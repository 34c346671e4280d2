package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/effects"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseModuleDecl parses module Name { ... }.
func (p *Parser) parseModuleDecl() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	body, bodySpan := p.parseBlock()
	if p.failed() {
		return nil
	}

	return ast.NewModuleDecl(name, body, mergeSpan(start, bodySpan))
}

// parseImportStmt parses the four import forms: a bare name, a dotted
// chain, a wildcard Module.*, and a selective list Module.{a, b}.
func (p *Parser) parseImportStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	path := []*ast.Ident{ast.NewIdent(p.curTok.Literal, p.curTok.Span)}
	wildcard := false
	var names []*ast.Ident

	for p.peekTok.Type == lexer.DOT {
		p.nextToken() // move to '.'

		switch p.peekTok.Type {
		case lexer.IDENT:
			p.nextToken()
			path = append(path, ast.NewIdent(p.curTok.Literal, p.curTok.Span))

		case lexer.ASTERISK:
			p.nextToken()
			wildcard = true
			return ast.NewImportStmt(path, wildcard, nil, mergeSpan(start, p.curTok.Span))

		case lexer.LBRACE:
			p.nextToken() // move to '{'
			names = p.parseIdentList(lexer.RBRACE)
			if p.failed() {
				return nil
			}
			return ast.NewImportStmt(path, false, names, mergeSpan(start, p.curTok.Span))

		default:
			p.reportExpected("identifier, '*' or '{' after '.' in import", p.peekTok)
			return nil
		}
	}

	return ast.NewImportStmt(path, false, nil, mergeSpan(start, p.curTok.Span))
}

// parseExportStmt parses export {a, b} or an inline exported function
// declaration, which is parsed as a normal function declaration.
func (p *Parser) parseExportStmt() ast.Stmt {
	start := p.curTok.Span

	switch p.peekTok.Type {
	case lexer.LBRACE:
		p.nextToken() // move to '{'
		names := p.parseIdentList(lexer.RBRACE)
		if p.failed() {
			return nil
		}
		return ast.NewExportStmt(names, nil, mergeSpan(start, p.curTok.Span))

	case lexer.FUNCTION, lexer.PURE:
		p.nextToken()
		decl := p.parseFunctionDecl()
		if decl == nil {
			return nil
		}
		fn := decl.(*ast.FunctionDecl)
		return ast.NewExportStmt(nil, fn, mergeSpan(start, fn.Span()))

	default:
		p.reportExpected("'{' or a function declaration after 'export'", p.peekTok)
		return nil
	}
}

// parseIdentList parses ident (',' ident)* closing, starting with curTok on
// the opening brace. It leaves curTok on the closing token.
func (p *Parser) parseIdentList(closing lexer.TokenType) []*ast.Ident {
	var names []*ast.Ident

	if !p.expect(lexer.IDENT) {
		return nil
	}
	names = append(names, ast.NewIdent(p.curTok.Literal, p.curTok.Span))

	for p.peekTok.Type == lexer.COMMA {
		p.nextToken() // move to ','
		if !p.expect(lexer.IDENT) {
			return nil
		}
		names = append(names, ast.NewIdent(p.curTok.Literal, p.curTok.Span))
	}

	if !p.expect(closing) {
		return nil
	}

	return names
}

// parseFunctionDecl parses
//
//	[pure] function name(param: type, ...) [uses [Effect, ...]] -> type { body }
//
// pure and uses are mutually exclusive. Effect names are validated against
// the closed vocabulary as soon as the annotation is parsed.
func (p *Parser) parseFunctionDecl() ast.Stmt {
	start := p.curTok.Span
	pure := false

	if p.curTok.Type == lexer.PURE {
		pure = true
		if !p.expect(lexer.FUNCTION) {
			return nil
		}
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params := p.parseParamList()
	if p.failed() {
		return nil
	}

	var annotation *ast.EffectAnnotation
	if p.peekTok.Type == lexer.USES {
		p.nextToken() // move to 'uses'

		if pure {
			p.reportCoded("pure function cannot declare effects with 'uses'", p.curTok, diag.CodeParsePureUsesConflict)
			return nil
		}

		annotation = p.parseEffectAnnotation()
		if annotation == nil {
			return nil
		}
	}

	var returnType ast.TypeExpr
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken() // move to '->'
		p.nextToken() // move to first return type token

		returnType = p.parseType()
		if returnType == nil {
			return nil
		}
	}

	body, bodySpan := p.parseBlock()
	if p.failed() {
		return nil
	}

	return ast.NewFunctionDecl(pure, name, params, annotation, returnType, body, mergeSpan(start, bodySpan))
}

// parseParamList parses a parenthesized parameter list, starting with
// curTok on '('. It leaves curTok on ')'.
func (p *Parser) parseParamList() []*ast.Param {
	params := make([]*ast.Param, 0)

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return params
	}

	for {
		if !p.expect(lexer.IDENT) {
			return nil
		}

		name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)
		paramStart := p.curTok.Span

		if !p.expect(lexer.COLON) {
			return nil
		}

		p.nextToken() // move to first type token

		typ := p.parseType()
		if typ == nil {
			return nil
		}

		params = append(params, ast.NewParam(name, typ, mergeSpan(paramStart, typ.Span())))

		if p.peekTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}

		if !p.expect(lexer.RPAREN) {
			return nil
		}
		return params
	}
}

// parseEffectAnnotation parses uses [Effect, ...], starting with curTok on
// 'uses'. Unknown names fail immediately, naming the offender and the valid
// vocabulary.
func (p *Parser) parseEffectAnnotation() *ast.EffectAnnotation {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACKET) {
		return nil
	}

	var names []*ast.Ident
	var tokens []lexer.Token

	if p.peekTok.Type == lexer.RBRACKET {
		p.nextToken()
		return ast.NewEffectAnnotation(nil, mergeSpan(start, p.curTok.Span))
	}

	for {
		if p.peekTok.Type != lexer.IDENT && !lexer.IsEffectName(p.peekTok.Type) {
			p.reportExpected("effect name", p.peekTok)
			return nil
		}
		p.nextToken()

		names = append(names, ast.NewIdent(p.curTok.Literal, p.curTok.Span))
		tokens = append(tokens, p.curTok)

		if p.peekTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	for i, name := range names {
		if err := effects.Validate([]string{name.Name}); err != nil {
			p.reportCoded(err.Error(), tokens[i], diag.CodeEffectUnknownName)
			return nil
		}
	}

	return ast.NewEffectAnnotation(names, mergeSpan(start, p.curTok.Span))
}
