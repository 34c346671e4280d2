package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportExpected("expression", p.curTok)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			break
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseNumberLiteral() ast.Expr {
	return ast.NewNumberLit(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Value, p.curTok.Span)
}

// parsePrefixExpr handles the unary operators ! and -. It consumes the
// operator before recursing so precedencePrefix controls binding.
func (p *Parser) parsePrefixExpr() ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	operand := p.parseExprPrecedence(precedencePrefix)
	if operand == nil {
		return nil
	}

	return ast.NewUnaryExpr(operatorTok.Type, operand, mergeSpan(operatorTok.Span, operand.Span()))
}

// parseGroupedExpr parses "(expr)" without introducing a synthetic paren
// node; the sub-expression tree already encodes the grouping.
func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := precedences[operatorTok.Type]

	p.nextToken()

	right := p.parseExprPrecedence(precedence)
	if right == nil {
		return nil
	}

	return ast.NewBinaryExpr(operatorTok.Type, left, right, mergeSpan(left.Span(), right.Span()))
}

// parseOkExpr parses Ok(expr).
func (p *Parser) parseOkExpr() ast.Expr {
	start := p.curTok.Span

	value := p.parseResultConstructorArg()
	if value == nil {
		return nil
	}

	return ast.NewOkExpr(value, mergeSpan(start, p.curTok.Span))
}

// parseErrorExpr parses Error(expr).
func (p *Parser) parseErrorExpr() ast.Expr {
	start := p.curTok.Span

	value := p.parseResultConstructorArg()
	if value == nil {
		return nil
	}

	return ast.NewErrorExpr(value, mergeSpan(start, p.curTok.Span))
}

// parseResultConstructorArg parses the single parenthesized argument shared
// by the Ok(...) and Error(...) forms, leaving curTok on ')'.
func (p *Parser) parseResultConstructorArg() ast.Expr {
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return value
}

// parseCallExpr parses an argument list applied to the callee expression.
func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	var args []ast.Expr

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return ast.NewCallExpr(callee, args, mergeSpan(callee.Span(), p.curTok.Span))
	}

	for {
		p.nextToken()

		arg := p.parseExpr()
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		if p.peekTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return ast.NewCallExpr(callee, args, mergeSpan(callee.Span(), p.curTok.Span))
}

// parseMemberExpr parses the .member postfix form, producing a qualified
// name that the generator resolves against declared modules.
func (p *Parser) parseMemberExpr(owner ast.Expr) ast.Expr {
	if !p.expect(lexer.IDENT) {
		return nil
	}

	member := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	return ast.NewQualifiedName(owner, member, mergeSpan(owner.Span(), member.Span()))
}

// parsePropagateExpr parses the trailing ? operator.
func (p *Parser) parsePropagateExpr(value ast.Expr) ast.Expr {
	return ast.NewPropagateExpr(value, mergeSpan(value.Span(), p.curTok.Span))
}
