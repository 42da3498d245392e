package evaluator

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

func TestConsoleOutput(t *testing.T) {
	out := captureOutput(t, `
console.log("plain", 1, true);
console.warn("careful");
console.error("broken");
print("shortcut");`)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"plain 1 true",
		"[warn] careful",
		"[error] broken",
		"shortcut",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d: %q", len(lines), len(want), out)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestConsoleFormatsValues(t *testing.T) {
	out := captureOutput(t, `console.log([1, 2], {a: 1});`)
	if !strings.Contains(out, "[1, 2]") {
		t.Errorf("output %q should render the array", out)
	}
	if !strings.Contains(out, "a") {
		t.Errorf("output %q should render the object", out)
	}
}

func TestMathNamespace(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"Math.abs(-5)", 5},
		{"Math.floor(2.9)", 2},
		{"Math.ceil(2.1)", 3},
		{"Math.round(2.5)", 3},
		{"Math.trunc(-2.7)", -2},
		{"Math.sqrt(81)", 9},
		{"Math.sign(-3)", -1},
		{"Math.pow(2, 8)", 256},
		{"Math.min(3, 1, 2)", 1},
		{"Math.max(3, 1, 2)", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			wantNumber(t, mustEval(t, tt.input), tt.want)
		})
	}

	pi := mustEval(t, "Math.PI").(*Number)
	if math.Abs(pi.Value-math.Pi) > 1e-12 {
		t.Errorf("Math.PI = %v", pi.Value)
	}

	r := mustEval(t, "Math.random()").(*Number)
	if r.Value < 0 || r.Value >= 1 {
		t.Errorf("Math.random() = %v, want [0,1)", r.Value)
	}
}

func TestJSONParse(t *testing.T) {
	wantNumber(t, mustEval(t, `JSON.parse("[1, 2, 3]")[2]`), 3)
	wantString(t, mustEval(t, `JSON.parse('{"name": "jot"}').name`), "jot")
	wantBool(t, mustEval(t, `JSON.parse("true")`), true)
	result := mustEval(t, `JSON.parse("null")`)
	if result != NULL {
		t.Errorf("parse null = %s", result.Inspect())
	}
	if kind := evalKind(t, `JSON.parse("{broken")`); kind != "SyntaxError" {
		t.Errorf("kind = %q, want SyntaxError", kind)
	}
}

func TestJSONPreservesKeyOrder(t *testing.T) {
	wantString(t, mustEval(t,
		`"" + Object.keys(JSON.parse('{"z": 1, "a": 2, "m": 3}'))`), "z,a,m")
}

func TestJSONStringify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`JSON.stringify({a: 1, b: [true, null]})`, `{"a":1,"b":[true,null]}`},
		{`JSON.stringify("text")`, `"text"`},
		{`JSON.stringify(42)`, "42"},
		{`JSON.stringify([1, undefined, 2])`, "[1,null,2]"},
		// Functions and undefined props are dropped.
		{`JSON.stringify({f: () => 1, x: 2})`, `{"x":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			wantString(t, mustEval(t, tt.input), tt.want)
		})
	}
}

func TestJSONStringifyIndent(t *testing.T) {
	wantString(t, mustEval(t, `JSON.stringify({a: 1}, null, 2)`), "{\n  \"a\": 1\n}")
}

func TestJSONRoundTrip(t *testing.T) {
	wantString(t, mustEval(t, `
const src = {name: "jot", tags: ["a", "b"], depth: {n: 1}};
JSON.stringify(JSON.parse(JSON.stringify(src)));`),
		`{"name":"jot","tags":["a","b"],"depth":{"n":1}}`)
}

func TestYAMLParse(t *testing.T) {
	wantString(t, mustEval(t, `
const doc = yaml.parse("name: jot\nitems:\n  - 1\n  - 2\n");
doc.name + ":" + doc.items.length;`), "jot:2")

	// Mapping order survives.
	wantString(t, mustEval(t,
		`"" + Object.keys(yaml.parse("z: 1\na: 2\nm: 3\n"))`), "z,a,m")
}

func TestYAMLStringifyRoundTrip(t *testing.T) {
	wantString(t, mustEval(t, `
const back = yaml.parse(yaml.stringify({name: "jot", n: 2, list: [1, 2]}));
back.name + ":" + back.n + ":" + back.list[1];`), "jot:2:2")
}

func TestObjectNamespace(t *testing.T) {
	wantString(t, mustEval(t, `"" + Object.keys({a: 1, b: 2})`), "a,b")
	wantString(t, mustEval(t, `"" + Object.values({a: 1, b: 2})`), "1,2")
	wantString(t, mustEval(t, `"" + Object.entries({a: 1})[0]`), "a,1")
	wantNumber(t, mustEval(t, `Object.fromEntries([["x", 9]]).x`), 9)
	wantNumber(t, mustEval(t, `Object.assign({}, {a: 1}, {b: 2}).b`), 2)
}

func TestArrayNamespace(t *testing.T) {
	wantBool(t, mustEval(t, "Array.isArray([1])"), true)
	wantBool(t, mustEval(t, "Array.isArray({})"), false)
	wantString(t, mustEval(t, `"" + Array.of(1, 2, 3)`), "1,2,3")
	wantString(t, mustEval(t, `"" + Array.from("abc")`), "a,b,c")
	wantString(t, mustEval(t, `"" + Array.from([1, 2], x => x * 2)`), "2,4")
}

func TestGlobalConversions(t *testing.T) {
	wantNumber(t, mustEval(t, `parseInt("42px")`), 42)
	wantNumber(t, mustEval(t, `parseInt("ff", 16)`), 255)
	wantNumber(t, mustEval(t, `parseInt("0x10")`), 16)
	wantNumber(t, mustEval(t, `parseFloat("3.5rem")`), 3.5)
	wantBool(t, mustEval(t, `isNaN(parseInt("no"))`), true)
	wantBool(t, mustEval(t, "isFinite(1 / 0)"), false)
	wantString(t, mustEval(t, "String(42)"), "42")
	wantNumber(t, mustEval(t, `Number("2.5")`), 2.5)
	wantBool(t, mustEval(t, `Boolean("")`), false)
	wantBool(t, mustEval(t, `Boolean("x")`), true)
}

func TestNaNAndInfinityGlobals(t *testing.T) {
	n := mustEval(t, "NaN").(*Number)
	if !math.IsNaN(n.Value) {
		t.Error("NaN global is not NaN")
	}
	inf := mustEval(t, "Infinity").(*Number)
	if !math.IsInf(inf.Value, 1) {
		t.Error("Infinity global is not +Inf")
	}
}

func TestCryptoRandomUUID(t *testing.T) {
	id := mustEval(t, "crypto.randomUUID()").(*String)
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	if !pattern.MatchString(id.Value) {
		t.Errorf("uuid %q has unexpected shape", id.Value)
	}
	other := mustEval(t, "crypto.randomUUID()").(*String)
	if id.Value == other.Value {
		t.Error("uuids should differ across calls")
	}
}

func TestTimeNow(t *testing.T) {
	now := mustEval(t, "time.now()").(*Number)
	// Past 2020-01-01 in milliseconds.
	if now.Value < 1.5778e12 {
		t.Errorf("time.now() = %v, implausibly old", now.Value)
	}
}
