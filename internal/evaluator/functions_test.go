package evaluator

import (
	"io"
	"testing"

	"github.com/jotlang/jot/internal/parser"
)

func TestFunctionBasics(t *testing.T) {
	wantNumber(t, mustEval(t, "function add(a, b) { return a + b; } add(2, 3)"), 5)
	wantNumber(t, mustEval(t, "const dbl = function(x) { return x * 2; }; dbl(4)"), 8)
	wantNumber(t, mustEval(t, "const inc = x => x + 1; inc(41)"), 42)
	wantNumber(t, mustEval(t, "((a, b) => { return a * b; })(6, 7)"), 42)
}

func TestFunctionHoisting(t *testing.T) {
	wantNumber(t, mustEval(t, "const r = before(); function before() { return 7; } r"), 7)
}

func TestMissingArgumentsAreUndefined(t *testing.T) {
	wantBool(t, mustEval(t, "function f(a, b) { return b === undefined; } f(1)"), true)
	// Extra arguments are dropped.
	wantNumber(t, mustEval(t, "function f(a) { return a; } f(1, 2, 3)"), 1)
}

func TestDefaultParameters(t *testing.T) {
	wantNumber(t, mustEval(t, "function f(a, b = 10) { return a + b; } f(1)"), 11)
	wantNumber(t, mustEval(t, "function f(a, b = 10) { return a + b; } f(1, 2)"), 3)
	// Only an exact undefined triggers the default.
	result := mustEval(t, "function f(a = 5) { return a; } f(null)")
	if result != NULL {
		t.Errorf("f(null) = %s, want null", result.Inspect())
	}
	wantNumber(t, mustEval(t, "function f(a = 5) { return a; } f(undefined)"), 5)
	// Defaults may reference earlier parameters.
	wantNumber(t, mustEval(t, "function f(a, b = a * 2) { return b; } f(3)"), 6)
}

func TestRestParameters(t *testing.T) {
	wantNumber(t, mustEval(t, `
function count(first, ...rest) { return rest.length; }
count(1, 2, 3, 4);`), 3)
	wantNumber(t, mustEval(t, `
function sum(...xs) {
  let total = 0;
  for (const x of xs) total += x;
  return total;
}
sum(...[1, 2], 3);`), 6)
}

func TestClosuresShareCapturedBinding(t *testing.T) {
	wantString(t, mustEval(t, `
function makeCounter() {
  let n = 0;
  return {
    bump: () => { n++; return n; },
    read: () => n,
  };
}
const c = makeCounter();
c.bump();
c.bump();
"" + [c.read(), c.bump()];`), "2,3")
}

func TestClosuresAreIndependent(t *testing.T) {
	wantString(t, mustEval(t, `
function makeCounter() {
  let n = 0;
  return () => ++n;
}
const a = makeCounter();
const b = makeCounter();
a(); a();
"" + [a(), b()];`), "3,1")
}

func TestNamedFunctionExpressionSelfReference(t *testing.T) {
	wantNumber(t, mustEval(t, `
const fact = function go(n) { return n <= 1 ? 1 : n * go(n - 1); };
fact(5);`), 120)
	// The inner name does not leak into the enclosing scope.
	if kind := evalKind(t, `
const f = function inner() { return 1; };
inner();`); kind != "UnboundName" {
		t.Errorf("kind = %q, want UnboundName", kind)
	}
}

func TestArrowThisIsLexical(t *testing.T) {
	wantNumber(t, mustEval(t, `
const obj = {
  n: 5,
  read() {
    const get = () => this.n;
    return get();
  },
};
obj.read();`), 5)
}

func TestMethodThisBinding(t *testing.T) {
	wantNumber(t, mustEval(t, `
const obj = {n: 3, get() { return this.n; }};
obj.get();`), 3)
}

func TestRecursionDepthLimit(t *testing.T) {
	if kind := evalKind(t, "function f() { return f(); } f()"); kind != "RangeError" {
		t.Errorf("kind = %q, want RangeError", kind)
	}
}

func TestCallingNonFunction(t *testing.T) {
	if kind := evalKind(t, "let x = 42; x()"); kind != "NotCallable" {
		t.Errorf("kind = %q, want NotCallable", kind)
	}
	if kind := evalKind(t, "class A {}; A()"); kind != "NotCallable" {
		t.Errorf("class call kind = %q, want NotCallable", kind)
	}
}

func TestIdempotentReEvaluation(t *testing.T) {
	// Re-running the same parsed program on one environment must not
	// trip duplicate-declaration checks for hoisted functions.
	source := "function greet() { return \"hi\"; } greet();"
	program, pctx := parser.Parse(source, "again.jot")
	if pctx.HasErrors() {
		t.Fatalf("parse error: %v", pctx.FirstError())
	}
	e := New()
	e.Out = io.Discard
	for i := 0; i < 3; i++ {
		result, err := e.Execute(program, nil, Options{})
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		wantString(t, result, "hi")
	}
}

func TestFunctionValueNames(t *testing.T) {
	wantString(t, mustEval(t, "function named() {} named.name"), "named")
	wantString(t, mustEval(t, "const assigned = () => 1; assigned.name"), "assigned")
}
