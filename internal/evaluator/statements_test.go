package evaluator

import (
	"strings"
	"testing"
)

func TestConstReassignment(t *testing.T) {
	if kind := evalKind(t, "const x = 1; x = 2;"); kind != "ConstReassignment" {
		t.Errorf("kind = %q, want ConstReassignment", kind)
	}
	if kind := evalKind(t, "const x = 1; x += 1;"); kind != "ConstReassignment" {
		t.Errorf("compound kind = %q, want ConstReassignment", kind)
	}
	// Const binding protects the name, not the value.
	wantNumber(t, mustEval(t, "const o = {n: 1}; o.n = 2; o.n"), 2)
}

func TestDuplicateDeclaration(t *testing.T) {
	if kind := evalKind(t, "let x = 1; let x = 2;"); kind != "DuplicateDeclaration" {
		t.Errorf("kind = %q, want DuplicateDeclaration", kind)
	}
	// Shadowing in a nested scope is allowed.
	wantNumber(t, mustEval(t, "let x = 1; { let x = 2; } x"), 1)
}

func TestConstRequiresInitializer(t *testing.T) {
	if kind := evalKind(t, "const x;"); kind != "SyntaxError" {
		t.Errorf("kind = %q, want SyntaxError", kind)
	}
}

func TestUnboundName(t *testing.T) {
	if kind := evalKind(t, "missing + 1"); kind != "UnboundName" {
		t.Errorf("kind = %q, want UnboundName", kind)
	}
	// Compound assignment to an unbound name is an error, unlike plain =.
	if kind := evalKind(t, "ghost += 1"); kind != "UnboundName" {
		t.Errorf("compound kind = %q, want UnboundName", kind)
	}
}

func TestImplicitGlobalAssignment(t *testing.T) {
	// A plain = to a wholly-unbound name defines it at the root scope.
	wantNumber(t, mustEval(t, "function f() { leaked = 9; } f(); leaked"), 9)
}

func TestNameSuggestion(t *testing.T) {
	_, err := testEval(t, "let counter = 1; countr + 1;")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "counter") {
		t.Errorf("error %q should suggest 'counter'", err.Error())
	}
}

func TestWhileLoop(t *testing.T) {
	wantNumber(t, mustEval(t, `
let sum = 0;
let i = 0;
while (i < 5) { sum += i; i++; }
sum;`), 10)
}

func TestDoWhileRunsAtLeastOnce(t *testing.T) {
	wantNumber(t, mustEval(t, "let n = 0; do { n++; } while (false); n"), 1)
}

func TestForLoop(t *testing.T) {
	wantNumber(t, mustEval(t, `
let sum = 0;
for (let i = 1; i <= 4; i++) { sum += i; }
sum;`), 10)

	// All three clauses are optional.
	wantNumber(t, mustEval(t, `
let i = 0;
for (;;) { i++; if (i >= 3) break; }
i;`), 3)
}

func TestForLoopScoping(t *testing.T) {
	// Each iteration body gets a fresh scope; closures see distinct bindings.
	wantString(t, mustEval(t, `
let fns = [];
for (let i = 0; i < 3; i++) {
  const snapshot = i;
  fns.push(() => snapshot);
}
"" + [fns[0](), fns[1](), fns[2]()];`), "0,1,2")
}

func TestBreakAndContinue(t *testing.T) {
	wantNumber(t, mustEval(t, `
let sum = 0;
for (let i = 0; i < 10; i++) {
  if (i % 2 === 0) continue;
  if (i > 6) break;
  sum += i;
}
sum;`), 9) // 1 + 3 + 5

	wantNumber(t, mustEval(t, `
let n = 0;
while (true) { n++; if (n === 4) break; }
n;`), 4)
}

func TestBreakOutsideLoop(t *testing.T) {
	if kind := evalKind(t, "break;"); kind != "SyntaxError" {
		t.Errorf("kind = %q, want SyntaxError", kind)
	}
	if kind := evalKind(t, "continue;"); kind != "SyntaxError" {
		t.Errorf("kind = %q, want SyntaxError", kind)
	}
	// A break inside a called function does not escape into the caller's loop.
	if kind := evalKind(t, `
function f() { break; }
for (let i = 0; i < 3; i++) { f(); }`); kind != "SyntaxError" {
		t.Errorf("kind = %q, want SyntaxError", kind)
	}
}

func TestForIn(t *testing.T) {
	wantString(t, mustEval(t, `
let keys = "";
for (const k in {a: 1, b: 2, c: 3}) { keys += k; }
keys;`), "abc")

	wantString(t, mustEval(t, `
let idx = "";
for (const i in [9, 8]) { idx += i; }
idx;`), "01")

	// for-in over nullish iterates zero times.
	wantNumber(t, mustEval(t, "let n = 0; for (const k in null) { n++; } n"), 0)
}

func TestForOf(t *testing.T) {
	wantNumber(t, mustEval(t, `
let sum = 0;
for (const v of [1, 2, 3]) { sum += v; }
sum;`), 6)

	wantString(t, mustEval(t, `
let out = "";
for (const ch of "abc") { out += ch + "."; }
out;`), "a.b.c.")

	if kind := evalKind(t, "for (const v of 42) {}"); kind != "NotIterable" {
		t.Errorf("kind = %q, want NotIterable", kind)
	}
}

func TestSwitch(t *testing.T) {
	src := `
function pick(n) {
  switch (n) {
    case 1: return "one";
    case 2: return "two";
    default: return "many";
  }
}
pick(%s);`
	wantString(t, mustEval(t, strings.Replace(src, "%s", "1", 1)), "one")
	wantString(t, mustEval(t, strings.Replace(src, "%s", "2", 1)), "two")
	wantString(t, mustEval(t, strings.Replace(src, "%s", "9", 1)), "many")
}

func TestSwitchFallthrough(t *testing.T) {
	wantString(t, mustEval(t, `
let out = "";
switch (1) {
  case 1: out += "a";
  case 2: out += "b"; break;
  case 3: out += "c";
}
out;`), "ab")
}

func TestSwitchStrictMatching(t *testing.T) {
	// Cases match with ===, so "1" does not hit case 1.
	wantString(t, mustEval(t, `
let out = "none";
switch ("1") {
  case 1: out = "number"; break;
  default: out = "default";
}
out;`), "default")
}

func TestTryCatch(t *testing.T) {
	wantString(t, mustEval(t, `
let msg = "";
try { throw new Error("boom"); } catch (err) { msg = err.message; }
msg;`), "boom")

	// Any value can be thrown.
	wantNumber(t, mustEval(t, "let got = 0; try { throw 42; } catch (e) { got = e; } got"), 42)
}

func TestTryFinally(t *testing.T) {
	wantString(t, mustEval(t, `
let log = "";
function f() {
  try { log += "t"; return "ret"; } finally { log += "f"; }
}
f();
log;`), "tf")

	// finally runs on the throw path too.
	wantString(t, mustEval(t, `
let log = "";
try {
  try { throw "x"; } finally { log += "f"; }
} catch (e) { log += "c"; }
log;`), "fc")
}

func TestFinallyOverridesSignal(t *testing.T) {
	// A return in finally wins over the try's return.
	wantString(t, mustEval(t, `
function f() {
  try { return "try"; } finally { return "finally"; }
}
f();`), "finally")
}

func TestCatchScopeIsFresh(t *testing.T) {
	wantNumber(t, mustEval(t, `
let err = 1;
try { throw 2; } catch (err) {}
err;`), 1)
}

func TestUncaughtThrowSurfaces(t *testing.T) {
	_, err := testEval(t, `throw new TypeError("bad input");`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bad input") {
		t.Errorf("error %q should carry the message", err.Error())
	}
	if !strings.Contains(err.Error(), "TypeError") {
		t.Errorf("error %q should carry the kind", err.Error())
	}
}

func TestThrowNonError(t *testing.T) {
	_, err := testEval(t, `throw "plain string";`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "plain string") {
		t.Errorf("error %q should carry the thrown value", err.Error())
	}
}

func TestErrorProperties(t *testing.T) {
	wantString(t, mustEval(t, `
let e = new RangeError("too big");
e.name + ": " + e.message;`), "RangeError: too big")

	// User properties survive through throw/catch.
	wantNumber(t, mustEval(t, `
let got = 0;
try {
  let e = new Error("tagged");
  e.code = 42;
  throw e;
} catch (err) { got = err.code; }
got;`), 42)
}

func TestBlockValueSemantics(t *testing.T) {
	// A program evaluates to its last expression statement.
	wantNumber(t, mustEval(t, "1; 2; 3"), 3)
}
