package transpile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/transpile"
)

func TestCompileEndToEnd(t *testing.T) {
	const src = `
module Users {
    export { fetchUser }

    function fetchUser(id: int) uses [Database] -> Result<string, string> {
        guard id > 0 else {
            return Error("invalid id")
        }
        return Ok("user")
    }
}

function main() -> Result<string, string> {
    let user = Users.fetchUser(1)?
    return Ok(user)
}
`

	output, err := transpile.Compile(src)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	for _, want := range []string{
		"using System;",
		"public class Result<TOk, TErr>",
		"public static class UsersModule",
		"/// Effects: Database.",
		"if (!(id > 0))",
		"var user_result = UsersModule.fetchUser(1);",
		"if (user_result.IsError)",
		"var user = user_result.Value;",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCompileDeterministic(t *testing.T) {
	const src = `
pure function add(a: int, b: int) -> int {
    return a + b
}
`

	first, err := transpile.Compile(src)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	second, err := transpile.Compile(src)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	if first != second {
		t.Fatalf("output differs between runs")
	}
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := transpile.Compile(`function broken( -> int { return 1 }`)
	if err == nil {
		t.Fatalf("expected a compile error")
	}
	if !strings.Contains(err.Error(), "parsing failed") {
		t.Fatalf("error should identify the failing stage, got %q", err)
	}
}

func TestAsDiagnostic(t *testing.T) {
	_, err := transpile.Compile("function broken( -> int { return 1 }",
		transpile.WithFilename("main.lm"))
	if err == nil {
		t.Fatalf("expected a compile error")
	}

	d, ok := transpile.AsDiagnostic(err)
	if !ok {
		t.Fatalf("expected a structured diagnostic")
	}
	if d.Stage != diag.StageParser {
		t.Errorf("expected parser stage, got %q", d.Stage)
	}
	if d.Span.Filename != "main.lm" {
		t.Errorf("expected filename %q, got %q", "main.lm", d.Span.Filename)
	}
}

func TestAsDiagnosticUnrelatedError(t *testing.T) {
	if _, ok := transpile.AsDiagnostic(errors.New("disk full")); ok {
		t.Fatalf("unrelated error should yield no diagnostic")
	}
}
