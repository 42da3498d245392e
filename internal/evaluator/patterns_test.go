package evaluator

import "testing"

func TestObjectDestructuring(t *testing.T) {
	wantNumber(t, mustEval(t, "const {a, b} = {a: 1, b: 2}; a + b"), 3)
	wantNumber(t, mustEval(t, "const {a: renamed} = {a: 7}; renamed"), 7)
	wantNumber(t, mustEval(t, "const {x} = {}; x === undefined ? 1 : 0"), 1)
	wantNumber(t, mustEval(t, "const {a: {b}} = {a: {b: 9}}; b"), 9)
}

func TestObjectDestructuringDefaults(t *testing.T) {
	wantNumber(t, mustEval(t, "const {a = 10} = {}; a"), 10)
	wantNumber(t, mustEval(t, "const {a = 10} = {a: 1}; a"), 1)
	// null is a present value; the default only fills undefined.
	result := mustEval(t, "const {a = 10} = {a: null}; a")
	if result != NULL {
		t.Errorf("a = %s, want null", result.Inspect())
	}
	wantNumber(t, mustEval(t, "const {a = 10} = {a: undefined}; a"), 10)
}

func TestObjectRest(t *testing.T) {
	wantString(t, mustEval(t, `
const {a, ...rest} = {a: 1, b: 2, c: 3};
JSON.stringify(rest);`), `{"b":2,"c":3}`)
}

func TestArrayDestructuring(t *testing.T) {
	wantNumber(t, mustEval(t, "const [x, y] = [1, 2]; x + y"), 3)
	wantNumber(t, mustEval(t, "const [, second] = [1, 2]; second"), 2)
	wantNumber(t, mustEval(t, "const [a, b = 5] = [1]; a + b"), 6)
	wantString(t, mustEval(t, "const [head, ...tail] = [1, 2, 3]; \"\" + tail"), "2,3")
	wantNumber(t, mustEval(t, "const [a] = []; a === undefined ? 1 : 0"), 1)
}

func TestStringDestructuring(t *testing.T) {
	wantString(t, mustEval(t, `const [first, second] = "hi"; first + second`), "hi")
}

func TestSwapThroughArrayPattern(t *testing.T) {
	wantString(t, mustEval(t, `
let a = 1;
let b = 2;
[a, b] = [b, a];
"" + [a, b];`), "2,1")
}

func TestMemberAssignmentTargets(t *testing.T) {
	wantNumber(t, mustEval(t, "let o = {}; [o.x] = [5]; o.x"), 5)
}

func TestDestructuringParameters(t *testing.T) {
	wantNumber(t, mustEval(t, `
function dist({x, y}) { return x + y; }
dist({x: 3, y: 4});`), 7)
	wantNumber(t, mustEval(t, `
function first([head]) { return head; }
first([42, 1]);`), 42)
	wantNumber(t, mustEval(t, `
function f({a = 10} = {}) { return a; }
f();`), 10)
}

func TestNotDestructurable(t *testing.T) {
	if kind := evalKind(t, "const {a} = null;"); kind != "NotDestructurable" {
		t.Errorf("kind = %q, want NotDestructurable", kind)
	}
	if kind := evalKind(t, "const {a} = undefined;"); kind != "NotDestructurable" {
		t.Errorf("kind = %q, want NotDestructurable", kind)
	}
}

func TestArrayPatternOnNonIterable(t *testing.T) {
	for _, src := range []string{"const [a] = 42;", "const [a] = {x: 1};", "let [a] = true;"} {
		if kind := evalKind(t, src); kind != "NotDestructurable" {
			t.Errorf("%s: kind = %q, want NotDestructurable", src, kind)
		}
	}
}

func TestNestedMixedPatterns(t *testing.T) {
	wantString(t, mustEval(t, `
const {users: [{name}, ...others]} = {users: [{name: "ann"}, {name: "bo"}]};
name + ":" + others.length;`), "ann:1")
}
