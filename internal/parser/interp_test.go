package parser_test

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/parser"
)

func parseInterp(t *testing.T, src string) *ast.StringInterp {
	t.Helper()

	p := parser.New(src)
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	interp, ok := expr.(*ast.StringInterp)
	if !ok {
		t.Fatalf("expected string interpolation, got %T", expr)
	}
	return interp
}

func TestInterp_LiteralAndExprFragments(t *testing.T) {
	interp := parseInterp(t, `$"hello {name}, you have {count} items"`)

	if len(interp.Fragments) != 5 {
		t.Fatalf("expected 5 fragments, got %d", len(interp.Fragments))
	}

	wantLiterals := map[int]string{0: "hello ", 2: ", you have ", 4: " items"}
	for i, lit := range wantLiterals {
		frag := interp.Fragments[i]
		if frag.Expr != nil || frag.Literal != lit {
			t.Errorf("fragment %d: expected literal %q, got %#v", i, lit, frag)
		}
	}

	for _, i := range []int{1, 3} {
		frag := interp.Fragments[i]
		if frag.Expr == nil {
			t.Errorf("fragment %d: expected an expression", i)
			continue
		}
		if _, ok := frag.Expr.(*ast.Ident); !ok {
			t.Errorf("fragment %d: expected identifier, got %T", i, frag.Expr)
		}
	}
}

func TestInterp_FullExpressionGrammarInFragment(t *testing.T) {
	interp := parseInterp(t, `$"total: {price * quantity + tax}"`)

	var exprFrag *ast.InterpFragment
	for i := range interp.Fragments {
		if interp.Fragments[i].Expr != nil {
			exprFrag = &interp.Fragments[i]
			break
		}
	}
	if exprFrag == nil {
		t.Fatalf("expected an expression fragment")
	}

	if _, ok := exprFrag.Expr.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected binary expression in fragment, got %T", exprFrag.Expr)
	}
}

func TestInterp_CallInFragment(t *testing.T) {
	interp := parseInterp(t, `$"result: {Math.add(1, 2)}"`)

	found := false
	for _, frag := range interp.Fragments {
		if frag.Expr == nil {
			continue
		}
		found = true
		if _, ok := frag.Expr.(*ast.CallExpr); !ok {
			t.Fatalf("expected call in fragment, got %T", frag.Expr)
		}
	}
	if !found {
		t.Fatalf("expected an expression fragment")
	}
}

func TestInterp_EscapesDecodedInLiterals(t *testing.T) {
	interp := parseInterp(t, `$"line\n{x}"`)

	if interp.Fragments[0].Literal != "line\n" {
		t.Fatalf("expected decoded newline, got %q", interp.Fragments[0].Literal)
	}
}

func TestInterp_EmptyTemplate(t *testing.T) {
	interp := parseInterp(t, `$""`)

	if len(interp.Fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(interp.Fragments))
	}
	if frag := interp.Fragments[0]; frag.Expr != nil || frag.Literal != "" {
		t.Fatalf("expected a single empty literal fragment, got %#v", frag)
	}
}

func TestInterp_EmptyFragmentIsError(t *testing.T) {
	p := parser.New(`$"oops: {}"`)

	_, err := p.ParseExpression()
	if err == nil {
		t.Fatalf("expected an error for an empty fragment")
	}

	synErr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("expected *parser.SyntaxError, got %T", err)
	}
	if synErr.Code != diag.CodeParseUnbalancedBraces {
		t.Fatalf("expected code %q, got %q", diag.CodeParseUnbalancedBraces, synErr.Code)
	}
}

func TestInterp_StrayCloseBraceIsError(t *testing.T) {
	p := parser.New(`$"oops } here"`)

	if _, err := p.ParseExpression(); err == nil {
		t.Fatalf("expected an error for a stray '}'")
	}
}

func TestInterp_FragmentErrorIsAnchored(t *testing.T) {
	p := parser.New(`$"bad: {1 +}"`)

	_, err := p.ParseExpression()
	if err == nil {
		t.Fatalf("expected an error for a malformed fragment")
	}
	if !strings.Contains(err.Error(), "interpolated string") {
		t.Fatalf("error should mention the interpolated string, got %q", err)
	}
}
