package parser

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseStringInterp splits an INTERP_STRING template into alternating
// literal and expression fragments. Each {...} fragment is re-lexed and
// re-parsed by a fresh, wholly-owned Lexer+Parser pair scoped to the
// fragment's text; the nested parser shares no state with this one and is
// discarded once the fragment's expression node is produced.
func (p *Parser) parseStringInterp() ast.Expr {
	tok := p.curTok
	template := []rune(tok.Value)

	var fragments []ast.InterpFragment
	var literal []rune

	flushLiteral := func() {
		if len(literal) > 0 {
			fragments = append(fragments, ast.InterpFragment{Literal: lexer.DecodeEscapes(string(literal))})
			literal = literal[:0]
		}
	}

	for i := 0; i < len(template); i++ {
		ch := template[i]

		switch ch {
		case '\\':
			// Keep the escape raw; it is decoded when the literal fragment
			// is flushed.
			literal = append(literal, ch)
			if i+1 < len(template) {
				i++
				literal = append(literal, template[i])
			}

		case '{':
			end, ok := matchBrace(template, i)
			if !ok {
				p.reportCoded("unbalanced '{' in interpolated string", tok, diag.CodeParseUnbalancedBraces)
				return nil
			}

			fragText := string(template[i+1 : end])
			if strings.TrimSpace(fragText) == "" {
				p.reportCoded("empty expression in interpolated string", tok, diag.CodeParseUnbalancedBraces)
				return nil
			}

			expr := p.parseFragmentExpr(fragText, tok)
			if expr == nil {
				return nil
			}

			flushLiteral()
			fragments = append(fragments, ast.InterpFragment{Expr: expr})
			i = end

		case '}':
			p.reportCoded("unbalanced '}' in interpolated string", tok, diag.CodeParseUnbalancedBraces)
			return nil

		default:
			literal = append(literal, ch)
		}
	}

	flushLiteral()

	if len(fragments) == 0 {
		fragments = append(fragments, ast.InterpFragment{Literal: ""})
	}

	return ast.NewStringInterp(fragments, p.spanWithFilename(tok.Span))
}

// parseFragmentExpr runs the nested lex+parse call for one {...} fragment.
// A failure inside the fragment aborts the outer parse with the nested
// error re-anchored at the template token.
func (p *Parser) parseFragmentExpr(fragText string, tok lexer.Token) ast.Expr {
	nested := New(fragText, WithFilename(p.filename))

	expr, err := nested.ParseExpression()
	if err != nil {
		if p.err == nil {
			synErr := nested.Err()
			p.err = &SyntaxError{
				Message: "in interpolated string: " + synErr.Message,
				Found:   synErr.Found,
				Span:    p.spanWithFilename(tok.Span),
				Code:    synErr.Code,
			}
		}
		return nil
	}

	return expr
}

// matchBrace returns the index of the '}' matching the '{' at open,
// tracking nested braces and quoted strings inside the fragment.
func matchBrace(template []rune, open int) (int, bool) {
	depth := 0
	inString := false

	for i := open; i < len(template); i++ {
		ch := template[i]

		if inString {
			switch ch {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
