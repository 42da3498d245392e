package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jotlang/jot/internal/modules"
)

// evalWithModules runs source with an in-memory module map.
func evalWithModules(t *testing.T, source string, mods map[string]string) (Object, *modules.MemoryResolver, string, error) {
	t.Helper()
	resolver := modules.NewMemoryResolver(mods)
	loader := modules.NewLoader(resolver)

	var buf bytes.Buffer
	e := New()
	e.Out = &buf

	program, _ := parseForTest(t, source)
	result, err := e.Execute(program, nil, Options{
		AutoDetect: true,
		Loader:     loader,
		File:       "main.jot",
	})
	return result, resolver, buf.String(), err
}

func TestNamedImport(t *testing.T) {
	result, _, _, err := evalWithModules(t, `
import { add, base } from "mathlib";
add(base, 2);`, map[string]string{
		"mathlib": `
export const base = 40;
export function add(a, b) { return a + b; }`,
	})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	wantNumber(t, result, 42)
}

func TestDefaultImport(t *testing.T) {
	result, _, _, err := evalWithModules(t, `
import greet from "greeter";
greet("jot");`, map[string]string{
		"greeter": `export default function(name) { return "hi " + name; }`,
	})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	wantString(t, result, "hi jot")
}

func TestNamespaceImport(t *testing.T) {
	result, _, _, err := evalWithModules(t, `
import * as lib from "lib";
lib.a + lib.b;`, map[string]string{
		"lib": "export const a = 1;\nexport const b = 2;",
	})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	wantNumber(t, result, 3)
}

func TestExportAlias(t *testing.T) {
	result, _, _, err := evalWithModules(t, `
import { renamed } from "aliases";
renamed;`, map[string]string{
		"aliases": "const original = 7;\nexport { original as renamed };",
	})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	wantNumber(t, result, 7)
}

func TestModuleEvaluatedOnce(t *testing.T) {
	// Two importers share one evaluation; the module body's side
	// effect happens a single time.
	_, resolver, out, err := evalWithModules(t, `
import { a } from "left";
import { b } from "right";
a + b;`, map[string]string{
		"shared": `console.log("shared ran"); export const v = 1;`,
		"left":   `import { v } from "shared"; export const a = v;`,
		"right":  `import { v } from "shared"; export const b = v;`,
	})
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got := strings.Count(out, "shared ran"); got != 1 {
		t.Errorf("shared module ran %d times, want 1", got)
	}
	if resolver.ResolveCount("left") != 1 || resolver.ResolveCount("right") != 1 {
		t.Error("direct imports should resolve exactly once")
	}
}

func TestMissingModule(t *testing.T) {
	_, _, _, err := evalWithModules(t, `import { x } from "ghost";`, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error %q should name the module", err.Error())
	}
}

func TestMissingExport(t *testing.T) {
	_, _, _, err := evalWithModules(t, `import { nope } from "m";`, map[string]string{
		"m": "export const yes = 1;",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q should name the missing export", err.Error())
	}
}

func TestCircularImport(t *testing.T) {
	_, _, _, err := evalWithModules(t, `import { a } from "a"; a;`, map[string]string{
		"a": `import { b } from "b"; export const a = 1;`,
		"b": `import { a } from "a"; export const b = 2;`,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("error %q should report the cycle", err.Error())
	}
}

func TestImportBindingIsConst(t *testing.T) {
	_, _, _, err := evalWithModules(t, `
import { v } from "m";
v = 2;`, map[string]string{
		"m": "export const v = 1;",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ConstReassignment") {
		t.Errorf("error %q should be a const reassignment", err.Error())
	}
}

func TestModuleThrowPropagates(t *testing.T) {
	_, _, _, err := evalWithModules(t, `import { x } from "bad";`, map[string]string{
		"bad": `throw new Error("module init failed"); export const x = 1;`,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "module init failed") {
		t.Errorf("error %q should carry the module's failure", err.Error())
	}
}

func TestModuleScopeIsolation(t *testing.T) {
	// Module-local names do not leak into the importing scope.
	_, _, _, err := evalWithModules(t, `
import { pub } from "m";
secret;`, map[string]string{
		"m": "const secret = 1;\nexport const pub = 2;",
	})
	if err == nil {
		t.Fatal("expected unbound-name error")
	}
	if !strings.Contains(err.Error(), "UnboundName") {
		t.Errorf("error %q, want UnboundName", err.Error())
	}
}

func TestExportsVisibleAfterRun(t *testing.T) {
	e := New()
	program, _ := parseForTest(t, "export const answer = 42;")
	if _, err := e.Execute(program, nil, Options{AutoDetect: true}); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	v, ok := e.Exports().Get("answer")
	if !ok {
		t.Fatal("answer not exported")
	}
	wantNumber(t, v.(Object), 42)
}
