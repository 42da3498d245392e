package parser

import (
	"testing"

	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, pctx := Parse(source, "test.jot")
	if pctx.HasErrors() {
		t.Fatalf("parse errors: %v", pctx.FirstError())
	}
	if program == nil {
		t.Fatal("no program produced")
	}
	return program
}

func firstExpr(t *testing.T, source string) ast.Expression {
	t.Helper()
	program := parseProgram(t, source)
	if len(program.Statements) == 0 {
		t.Fatal("empty program")
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	return stmt.Expression
}

func TestVariableDeclarations(t *testing.T) {
	tests := []struct {
		input string
		kind  string
		name  string
	}{
		{"var a = 1;", "var", "a"},
		{"let count = 2;", "let", "count"},
		{"const limit = 3;", "const", "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			decl, ok := program.Statements[0].(*ast.VariableDeclaration)
			if !ok {
				t.Fatalf("statement is %T, want *ast.VariableDeclaration", program.Statements[0])
			}
			if decl.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", decl.Kind, tt.kind)
			}
			id, ok := decl.Declarations[0].Name.(*ast.Identifier)
			if !ok || id.Value != tt.name {
				t.Errorf("name = %v, want %q", decl.Declarations[0].Name, tt.name)
			}
		})
	}
}

func TestMultiDeclarators(t *testing.T) {
	program := parseProgram(t, "let a = 1, b, c = 3;")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	if len(decl.Declarations) != 3 {
		t.Fatalf("declarators = %d, want 3", len(decl.Declarations))
	}
	if decl.Declarations[1].Value != nil {
		t.Errorf("b should have no initializer")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// Parenthesized renderings of how each input should group.
	tests := []struct {
		input string
		check func(t *testing.T, expr ast.Expression)
	}{
		{
			"1 + 2 * 3",
			func(t *testing.T, expr ast.Expression) {
				add := expr.(*ast.BinaryExpression)
				if add.Operator != "+" {
					t.Fatalf("root operator = %q, want +", add.Operator)
				}
				mul := add.Right.(*ast.BinaryExpression)
				if mul.Operator != "*" {
					t.Fatalf("right operator = %q, want *", mul.Operator)
				}
			},
		},
		{
			"2 ** 3 ** 2",
			func(t *testing.T, expr ast.Expression) {
				// Exponentiation is right-associative.
				outer := expr.(*ast.BinaryExpression)
				inner, ok := outer.Right.(*ast.BinaryExpression)
				if !ok || inner.Operator != "**" {
					t.Fatalf("want right-nested ** expression, got %T", outer.Right)
				}
			},
		},
		{
			"a || b && c",
			func(t *testing.T, expr ast.Expression) {
				or := expr.(*ast.LogicalExpression)
				if or.Operator != "||" {
					t.Fatalf("root operator = %q, want ||", or.Operator)
				}
				and := or.Right.(*ast.LogicalExpression)
				if and.Operator != "&&" {
					t.Fatalf("right operator = %q, want &&", and.Operator)
				}
			},
		},
		{
			"a === b ? 1 : 2",
			func(t *testing.T, expr ast.Expression) {
				cond := expr.(*ast.ConditionalExpression)
				test := cond.Test.(*ast.BinaryExpression)
				if test.Operator != "===" {
					t.Fatalf("test operator = %q, want ===", test.Operator)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tt.check(t, firstExpr(t, tt.input))
		})
	}
}

func TestArrowFunctions(t *testing.T) {
	expr := firstExpr(t, "(a, b = 2, ...rest) => a + b")
	arrow, ok := expr.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expression is %T, want arrow function", expr)
	}
	if len(arrow.Params) != 2 {
		t.Errorf("params = %d, want 2", len(arrow.Params))
	}
	if arrow.Defaults[0] != nil || arrow.Defaults[1] == nil {
		t.Errorf("defaults misplaced: %v", arrow.Defaults)
	}
	if arrow.Rest == nil {
		t.Error("rest parameter missing")
	}
	if _, ok := arrow.Body.(*ast.BinaryExpression); !ok {
		t.Errorf("body is %T, want expression body", arrow.Body)
	}
}

func TestAsyncArrow(t *testing.T) {
	expr := firstExpr(t, "async x => await x")
	arrow := expr.(*ast.ArrowFunctionExpression)
	if !arrow.Async {
		t.Fatal("arrow not marked async")
	}
	if _, ok := arrow.Body.(*ast.AwaitExpression); !ok {
		t.Errorf("body is %T, want await expression", arrow.Body)
	}
}

func TestDestructuringDeclaration(t *testing.T) {
	program := parseProgram(t, "const {a, b: {c} = {}, ...rest} = src;")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	pat, ok := decl.Declarations[0].Name.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("target is %T, want object pattern", decl.Declarations[0].Name)
	}
	if len(pat.Properties) != 2 {
		t.Fatalf("properties = %d, want 2", len(pat.Properties))
	}
	if pat.Rest == nil {
		t.Error("rest binding missing")
	}
	nested, ok := pat.Properties[1].Value.(*ast.AssignmentPattern)
	if !ok {
		t.Fatalf("b binding is %T, want assignment pattern", pat.Properties[1].Value)
	}
	if _, ok := nested.Left.(*ast.ObjectPattern); !ok {
		t.Errorf("default target is %T, want nested object pattern", nested.Left)
	}
}

func TestArrayPatternWithHoles(t *testing.T) {
	program := parseProgram(t, "let [first, , third, ...tail] = xs;")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	pat := decl.Declarations[0].Name.(*ast.ArrayPattern)
	if len(pat.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(pat.Elements))
	}
	if pat.Elements[1] != nil {
		t.Error("hole should parse as nil element")
	}
	if pat.Rest == nil {
		t.Error("rest binding missing")
	}
}

func TestOptionalChaining(t *testing.T) {
	expr := firstExpr(t, "a?.b?.[0]")
	outer, ok := expr.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expression is %T, want member expression", expr)
	}
	if !outer.Optional || !outer.Computed {
		t.Errorf("outer: optional=%v computed=%v, want both true", outer.Optional, outer.Computed)
	}
	inner := outer.Object.(*ast.MemberExpression)
	if !inner.Optional || inner.Computed {
		t.Errorf("inner: optional=%v computed=%v, want optional dot access", inner.Optional, inner.Computed)
	}
}

func TestClassDeclaration(t *testing.T) {
	program := parseProgram(t, `
class Dog extends Animal {
  constructor(name) { super(name); }
  speak() { return "woof"; }
  static kind() { return "canine"; }
}`)
	decl, ok := program.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("statement is %T, want class declaration", program.Statements[0])
	}
	if decl.Name.Value != "Dog" {
		t.Errorf("name = %q, want Dog", decl.Name.Value)
	}
	if decl.SuperClass == nil {
		t.Fatal("superclass missing")
	}
	if len(decl.Body.Methods) != 3 {
		t.Fatalf("methods = %d, want 3", len(decl.Body.Methods))
	}
	var sawCtor, sawStatic bool
	for _, m := range decl.Body.Methods {
		if m.Kind == "constructor" {
			sawCtor = true
		}
		if m.Static {
			sawStatic = true
		}
	}
	if !sawCtor || !sawStatic {
		t.Errorf("constructor=%v static=%v, want both", sawCtor, sawStatic)
	}
}

func TestTemplateLiteral(t *testing.T) {
	expr := firstExpr(t, "`sum: ${a + b}!`")
	tpl, ok := expr.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expression is %T, want template literal", expr)
	}
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Fatalf("quasis=%d exprs=%d, want 2 and 1", len(tpl.Quasis), len(tpl.Expressions))
	}
	if tpl.Quasis[0] != "sum: " || tpl.Quasis[1] != "!" {
		t.Errorf("quasis = %q", tpl.Quasis)
	}
	if _, ok := tpl.Expressions[0].(*ast.BinaryExpression); !ok {
		t.Errorf("interpolation is %T, want binary expression", tpl.Expressions[0])
	}
}

func TestImportForms(t *testing.T) {
	tests := []struct {
		input string
		kinds []string
	}{
		{`import def from "./m";`, []string{"default"}},
		{`import * as ns from "./m";`, []string{"namespace"}},
		{`import {a, b as c} from "./m";`, []string{"named", "named"}},
		{`import def, {x} from "./m";`, []string{"default", "named"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			imp, ok := program.Statements[0].(*ast.ImportDeclaration)
			if !ok {
				t.Fatalf("statement is %T, want import", program.Statements[0])
			}
			if imp.Source.Value != "./m" {
				t.Errorf("source = %q, want ./m", imp.Source.Value)
			}
			if len(imp.Specifiers) != len(tt.kinds) {
				t.Fatalf("specifiers = %d, want %d", len(imp.Specifiers), len(tt.kinds))
			}
			for i, kind := range tt.kinds {
				if imp.Specifiers[i].Kind != kind {
					t.Errorf("specifier %d kind = %q, want %q", i, imp.Specifiers[i].Kind, kind)
				}
			}
		})
	}
}

func TestExportForms(t *testing.T) {
	program := parseProgram(t, `
export const x = 1;
export default function main() {}
export {a, b as c};`)
	if len(program.Statements) != 3 {
		t.Fatalf("statements = %d, want 3", len(program.Statements))
	}

	first := program.Statements[0].(*ast.ExportDeclaration)
	if first.Declaration == nil {
		t.Error("export const should carry a declaration")
	}

	second := program.Statements[1].(*ast.ExportDeclaration)
	if !second.Default {
		t.Error("export default not flagged")
	}

	third := program.Statements[2].(*ast.ExportDeclaration)
	if len(third.Specifiers) != 2 {
		t.Fatalf("specifiers = %d, want 2", len(third.Specifiers))
	}
	if third.Specifiers[1].Exported.Value != "c" {
		t.Errorf("alias = %q, want c", third.Specifiers[1].Exported.Value)
	}
}

func TestForVariants(t *testing.T) {
	program := parseProgram(t, `
for (let i = 0; i < 3; i++) {}
for (const k in obj) {}
for (const v of xs) {}`)
	if _, ok := program.Statements[0].(*ast.ForStatement); !ok {
		t.Errorf("statement 0 is %T, want for", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.ForInStatement); !ok {
		t.Errorf("statement 1 is %T, want for-in", program.Statements[1])
	}
	if _, ok := program.Statements[2].(*ast.ForOfStatement); !ok {
		t.Errorf("statement 2 is %T, want for-of", program.Statements[2])
	}
}

func TestTryCatchFinally(t *testing.T) {
	program := parseProgram(t, "try { risky(); } catch (err) { log(err); } finally { done(); }")
	try := program.Statements[0].(*ast.TryStatement)
	if try.Handler == nil || try.Handler.Param == nil {
		t.Fatal("catch clause or parameter missing")
	}
	if try.Finalizer == nil {
		t.Fatal("finally block missing")
	}
}

func TestCatchWithoutParam(t *testing.T) {
	program := parseProgram(t, "try { risky(); } catch { recover(); }")
	try := program.Statements[0].(*ast.TryStatement)
	if try.Handler == nil {
		t.Fatal("catch clause missing")
	}
	if try.Handler.Param != nil {
		t.Error("param should be nil for bare catch")
	}
}

func TestSpreadInCallsAndLiterals(t *testing.T) {
	expr := firstExpr(t, "f(...args, 1)")
	call := expr.(*ast.CallExpression)
	if _, ok := call.Arguments[0].(*ast.SpreadElement); !ok {
		t.Errorf("argument 0 is %T, want spread", call.Arguments[0])
	}

	expr = firstExpr(t, "[...xs, 4]")
	arr := expr.(*ast.ArrayLiteral)
	if _, ok := arr.Elements[0].(*ast.SpreadElement); !ok {
		t.Errorf("element 0 is %T, want spread", arr.Elements[0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed paren", "f(1, 2"},
		{"stray operator", "let x = ;"},
		{"bad import", `import from "./m";`},
		{"unterminated block", "if (x) { y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pctx := Parse(tt.input, "bad.jot")
			if !pctx.HasErrors() {
				t.Fatal("expected parse errors")
			}
			if pctx.FirstError().Code == "" {
				t.Error("diagnostic has no code")
			}
		})
	}
}

func TestErrorsCarryPosition(t *testing.T) {
	_, pctx := Parse("let x =\nlet y = 2;", "pos.jot")
	if !pctx.HasErrors() {
		t.Fatal("expected parse errors")
	}
	diag := pctx.FirstError()
	if diag.Line == 0 {
		t.Error("diagnostic has no line")
	}
	if diag.File != "pos.jot" {
		t.Errorf("file = %q, want pos.jot", diag.File)
	}
	var _ *diagnostics.Error = diag
}
