package codegen_test

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/codegen"
	"github.com/lumen-lang/lumen/internal/csharp"
	"github.com/lumen-lang/lumen/internal/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()

	p := parser.New(src)
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	unit, err := codegen.NewGenerator().Generate(prog)
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}

	return csharp.Print(unit)
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func assertOrder(t *testing.T, output string, first, second string) {
	t.Helper()
	i, j := strings.Index(output, first), strings.Index(output, second)
	if i < 0 || j < 0 {
		t.Fatalf("output missing %q or %q:\n%s", first, second, output)
	}
	if i > j {
		t.Fatalf("%q should precede %q:\n%s", first, second, output)
	}
}

func TestSimpleFunction(t *testing.T) {
	output := generate(t, `
function add(a: int, b: int) -> int {
    return a + b
}
`)

	assertContains(t, output, "using System;")
	assertContains(t, output, "public static class Program")
	assertContains(t, output, "public static int add(int a, int b)")
	assertContains(t, output, "return a + b;")
}

func TestPureFunctionMarker(t *testing.T) {
	output := generate(t, `
pure function twice(x: int) -> int {
    return x * 2
}
`)

	assertContains(t, output, "/// Pure function (no side effects).")
	assertOrder(t, output, "/// Pure function", "public static int twice")
}

func TestEffectComment(t *testing.T) {
	output := generate(t, `
function save(id: int) uses [Database, Logging] -> int {
    return id
}
`)

	assertContains(t, output, "/// Effects: Database, Logging.")
}

func TestResultClassEmittedOnce(t *testing.T) {
	output := generate(t, `
function a() -> Result<int, string> {
    return Ok(1)
}
function b() -> Result<string, string> {
    return Error("no")
}
`)

	if got := strings.Count(output, "public class Result<TOk, TErr>"); got != 1 {
		t.Fatalf("expected exactly one Result class, got %d:\n%s", got, output)
	}
	assertContains(t, output, "public TOk Value { get; set; }")
	assertContains(t, output, "public TErr ErrorValue { get; set; }")
	assertContains(t, output, "public bool IsError { get; set; }")
	assertContains(t, output, "public static Result<TOk, TErr> Ok(TOk value)")
	assertContains(t, output, "public static Result<TOk, TErr> Error(TErr error)")

	// Support class precedes its consumers.
	assertOrder(t, output, "public class Result<TOk, TErr>", "public static class Program")
}

func TestResultClassOmittedWhenUnused(t *testing.T) {
	output := generate(t, `
function add(a: int, b: int) -> int {
    return a + b
}
`)

	if strings.Contains(output, "class Result") {
		t.Fatalf("Result class should not be emitted:\n%s", output)
	}
}

func TestResultConstructorCarriesTypeArguments(t *testing.T) {
	output := generate(t, `
function f() -> Result<int, string> {
    return Ok(42)
}
`)

	assertContains(t, output, "return Result<int, string>.Ok(42);")
}

func TestLetPropagateDesugaring(t *testing.T) {
	output := generate(t, `
function run(id: int) -> Result<int, string> {
    let user = fetch(id)?
    return Ok(user)
}
`)

	assertContains(t, output, "var user_result = fetch(id);")
	assertContains(t, output, "if (user_result.IsError)")
	assertContains(t, output, "return user_result;")
	assertContains(t, output, "var user = user_result.Value;")

	// Bind, check, unwrap, in that order.
	assertOrder(t, output, "var user_result = fetch(id);", "if (user_result.IsError)")
	assertOrder(t, output, "if (user_result.IsError)", "var user = user_result.Value;")
}

func TestBarePropagateKeepsShortCircuit(t *testing.T) {
	output := generate(t, `
function run() -> Result<int, string> {
    audit()?
    return Ok(1)
}
`)

	assertContains(t, output, "var _result1 = audit();")
	assertContains(t, output, "if (_result1.IsError)")
	assertContains(t, output, "return _result1;")
}

func TestNestedPropagateHoistsBeforeUse(t *testing.T) {
	output := generate(t, `
function run(id: int) -> Result<int, string> {
    return Ok(fetch(id)? + 1)
}
`)

	assertContains(t, output, "var _result1 = fetch(id);")
	assertOrder(t, output, "var _result1 = fetch(id);", "_result1.Value + 1")
}

func TestPropagateKeepsSiblingOperandOrder(t *testing.T) {
	output := generate(t, `
function run() -> Result<int, string> {
    return Ok(first() + second()?)
}
`)

	// first() is hoisted ahead of second()'s error check, so it still runs
	// first and always runs.
	assertContains(t, output, "var _expr1 = first();")
	assertOrder(t, output, "var _expr1 = first();", "var _result2 = second();")
	assertOrder(t, output, "var _result2 = second();", "if (_result2.IsError)")
	assertContains(t, output, "Ok(_expr1 + _result2.Value)")
}

func TestPropagateKeepsArgumentOrder(t *testing.T) {
	output := generate(t, `
function run() -> Result<int, string> {
    return Ok(combine(first(), second()?))
}
`)

	assertContains(t, output, "var _expr1 = first();")
	assertOrder(t, output, "var _expr1 = first();", "var _result2 = second();")
	assertContains(t, output, "combine(_expr1, _result2.Value)")
}

func TestPropagateLeavesEffectFreeOperandsInPlace(t *testing.T) {
	output := generate(t, `
function run(base: int) -> Result<int, string> {
    return Ok(base + fetch()?)
}
`)

	assertContains(t, output, "Ok(base + _result1.Value)")
	if strings.Contains(output, "_expr") {
		t.Fatalf("identifier operand should not be hoisted:\n%s", output)
	}
}

func TestGuardDesugaring(t *testing.T) {
	output := generate(t, `
function check(x: int) -> Result<int, string> {
    guard x > 0 else {
        return Error("not positive")
    }
    return Ok(x)
}
`)

	assertContains(t, output, "if (!(x > 0))")
	assertOrder(t, output, "if (!(x > 0))", `return Result<int, string>.Error("not positive");`)
}

func TestModuleBecomesStaticClass(t *testing.T) {
	output := generate(t, `
module Math {
    export { add }

    function add(a: int, b: int) -> int {
        return a + b
    }

    function helper(x: int) -> int {
        return x
    }
}
`)

	assertContains(t, output, "public static class MathModule")
	assertContains(t, output, "public static int add(int a, int b)")
	assertContains(t, output, "private static int helper(int x)")
}

func TestQualifiedCallResolvesModule(t *testing.T) {
	output := generate(t, `
module Math {
    export { add }

    function add(a: int, b: int) -> int {
        return a + b
    }
}

function main() -> int {
    return Math.add(1, 2)
}
`)

	assertContains(t, output, "return MathModule.add(1, 2);")
}

func TestLooseStatementsLandInMain(t *testing.T) {
	output := generate(t, `
let x = 1
let y = x + 2
`)

	assertContains(t, output, "public static void Main()")
	assertOrder(t, output, "var x = 1;", "var y = x + 2;")
}

func TestStringInterpolation(t *testing.T) {
	output := generate(t, `
function greet(name: string) -> string {
    return $"hello {name}!"
}
`)

	assertContains(t, output, `return $"hello {name}!";`)
}

func TestInterpolationLiteralOnlyCollapses(t *testing.T) {
	output := generate(t, `
function f() -> string {
    return $"plain"
}
`)

	assertContains(t, output, `return "plain";`)
}

func TestResultCtorOutsideResultFunctionFails(t *testing.T) {
	p := parser.New(`
function f() -> int {
    return Ok(1)
}
`)
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	_, err = codegen.NewGenerator().Generate(prog)
	if err == nil {
		t.Fatalf("expected a generation error")
	}
	if !strings.Contains(err.Error(), "Ok(...)") {
		t.Fatalf("error should name the construct, got %q", err)
	}
}

func TestDeterministicOutput(t *testing.T) {
	const src = `
module Math {
    export { add }

    function add(a: int, b: int) -> int {
        return a + b
    }
}

function main() -> Result<int, string> {
    let v = Math.add(1, 2)
    return Ok(v)
}
`

	first := generate(t, src)
	second := generate(t, src)

	if first != second {
		t.Fatalf("output differs between runs:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}
