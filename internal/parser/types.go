package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseType parses a type expression starting at curTok and leaves curTok on
// its last token. The generic form Name<T, ...> is parsed recursively, so
// Result<T, E> arrives at the generator already decomposed.
func (p *Parser) parseType() ast.TypeExpr {
	switch {
	case lexer.IsPrimitiveType(p.curTok.Type):
		return ast.NewNamedType(p.curTok.Literal, p.curTok.Span)

	case p.curTok.Type == lexer.IDENT:
		if p.peekTok.Type == lexer.LT {
			return p.parseGenericType()
		}
		return ast.NewNamedType(p.curTok.Literal, p.curTok.Span)

	default:
		p.reportExpected("type expression", p.curTok)
		return nil
	}
}

// parseGenericType parses Name<arg, ...> with curTok on the name.
func (p *Parser) parseGenericType() ast.TypeExpr {
	name := p.curTok.Literal
	start := p.curTok.Span

	p.nextToken() // move to '<'

	var args []ast.TypeExpr

	for {
		p.nextToken() // move to first token of the argument

		arg := p.parseType()
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

	if !p.expect(lexer.GT) {
		return nil
	}

	return ast.NewGenericType(name, args, mergeSpan(start, p.curTok.Span))
}
