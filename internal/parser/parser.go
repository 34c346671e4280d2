package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// Operator precedence tiers, lowest to highest. Postfix covers member
// access, calls and the trailing ? propagation operator.
const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.PERCENT:  precedenceProduct,
	lexer.LPAREN:   precedencePostfix,
	lexer.DOT:      precedencePostfix,
	lexer.QUESTION: precedencePostfix,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements a recursive descent parser for Lumen with Pratt-style
// precedence climbing for expressions. Invariants:
//   - Lookahead: curTok always reflects the token currently under
//     examination; peekTok mirrors the next token pulled from the lexer. The
//     pair forms the parser's sole lookahead window and is only mutated via
//     nextToken. The two-token window is what disambiguates a leading 'pure'
//     modifier without rewinding the lexer.
//   - Failure: err holds the first syntax error and is never overwritten.
//     Every production checks failed() and bails; there is no recovery and
//     no multi-error collection.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	err *SyntaxError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		filename:  cfg.filename,
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.INTERP_STRING, p.parseStringInterp)
	p.registerPrefix(lexer.OK, p.parseOkExpr)
	p.registerPrefix(lexer.ERROR, p.parseErrorExpr)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)

	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpr)
	p.registerInfix(lexer.SLASH, p.parseInfixExpr)
	p.registerInfix(lexer.PERCENT, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.LE, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.GE, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)
	p.registerInfix(lexer.DOT, p.parseMemberExpr)
	p.registerInfix(lexer.QUESTION, p.parsePropagateExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Err returns the first syntax error encountered, or nil.
func (p *Parser) Err() *SyntaxError {
	return p.err
}

func (p *Parser) failed() bool {
	return p.err != nil
}

// nextToken advances the parser's token window. Contract: after calling
// nextToken, curTok == old(peekTok). The lexer is only queried from this hop
// to keep lookahead bookkeeping centralized. A lexer failure converts into
// the parse's single fatal error here.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()

	if p.peekTok.Type == lexer.ILLEGAL && p.err == nil {
		if lexErr := p.lx.Err(); lexErr != nil {
			p.err = &SyntaxError{
				Message: lexErr.Message,
				Found:   p.peekTok,
				Span:    lexErr.Span,
				Code:    lexErr.Kind.DiagnosticCode(),
			}
		}
	}
}

// expect asserts that the peek token matches the provided type and promotes
// it into curTok. On mismatch it records the parse's fatal error.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportExpected("'"+string(tt)+"'", p.peekTok)
	return false
}

// reportExpected records the first syntax error; later reports are dropped
// because the parse is already dead.
func (p *Parser) reportExpected(expected string, found lexer.Token) {
	p.report("expected "+expected, found)
}

func (p *Parser) report(msg string, found lexer.Token) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Message: msg,
		Found:   found,
		Span:    p.spanWithFilename(found.Span),
	}
}

func (p *Parser) reportCoded(msg string, found lexer.Token, code diag.Code) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Message: msg,
		Found:   found,
		Span:    p.spanWithFilename(found.Span),
		Code:    code,
	}
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}

// Parse parses a full compilation unit and returns its AST, or the single
// fatal error that aborted the parse.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := ast.NewProgram(p.spanWithFilename(p.curTok.Span))

	for p.curTok.Type != lexer.EOF && !p.failed() {
		if p.curTok.Type == lexer.SEMICOLON {
			p.nextToken()
			continue
		}

		stmt := p.parseStmt()
		if p.failed() {
			return nil, p.err
		}
		if stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
			prog.SetSpan(mergeSpan(prog.Span(), stmt.Span()))
		}
		p.nextToken()
	}

	if p.failed() {
		return nil, p.err
	}

	return prog, nil
}

// ParseExpression parses the input as a single standalone expression. It is
// the entry point for nested interpolation-fragment parses.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr := p.parseExpr()
	if p.failed() {
		return nil, p.err
	}
	if expr == nil {
		p.report("expected expression", p.curTok)
		return nil, p.err
	}
	if p.peekTok.Type != lexer.EOF {
		p.reportExpected("end of expression", p.peekTok)
		return nil, p.err
	}
	return expr, nil
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}

// peekPrecedence returns the binding power of the peek token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
