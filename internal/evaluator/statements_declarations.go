package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalVariableDeclaration(n *ast.VariableDeclaration, env *Environment, ev evalFn) Object {
	isConst := n.Kind == "const"
	for _, decl := range n.Declarations {
		var value Object = UNDEFINED
		if decl.Value != nil {
			value = ev(decl.Value, env)
			if isSignal(value) {
				return value
			}
		} else if isConst {
			return syntaxErrorObj("const declaration requires an initializer")
		}
		nameFunctionValue(decl.Name, value)
		if sig := e.bindPattern(decl.Name, value, env, ev, bindDeclare, isConst); sig != nil {
			return sig
		}
	}
	return UNDEFINED
}

// nameFunctionValue gives anonymous functions the name of the binding
// they are assigned to, for Inspect and error messages.
func nameFunctionValue(target ast.Expression, value Object) {
	ident, ok := target.(*ast.Identifier)
	if !ok {
		return
	}
	if fn, ok := value.(*Function); ok && fn.Name == "" {
		fn.Name = ident.Value
	}
	if cls, ok := value.(*Class); ok && cls.Name == "" {
		cls.Name = ident.Value
	}
}

func (e *Evaluator) evalFunctionDeclaration(n *ast.FunctionDeclaration, env *Environment) Object {
	fn := &Function{
		Name:     n.Name.Value,
		Params:   n.Params,
		Defaults: n.Defaults,
		Rest:     n.Rest,
		Body:     n.Body,
		Env:      env,
		IsAsync:  n.Async,
	}
	if env.HasLocal(n.Name.Value) {
		// Hoisting already placed this exact declaration.
		if existing, _ := env.Get(n.Name.Value); sameDeclaration(existing, n) {
			return UNDEFINED
		}
		return newError("DuplicateDeclaration", "name '%s' is already declared in this scope", n.Name.Value)
	}
	env.Define(n.Name.Value, fn, false)
	return UNDEFINED
}

func sameDeclaration(existing Object, n *ast.FunctionDeclaration) bool {
	fn, ok := existing.(*Function)
	return ok && fn.Body == ast.Node(n.Body)
}

func (e *Evaluator) evalFunctionExpression(n *ast.FunctionExpression, env *Environment) Object {
	name := ""
	if n.Name != nil {
		name = n.Name.Value
	}
	fn := &Function{
		Name:     name,
		Params:   n.Params,
		Defaults: n.Defaults,
		Rest:     n.Rest,
		Body:     n.Body,
		Env:      env,
		IsAsync:  n.Async,
	}
	if name != "" {
		// A named function expression can call itself by name without
		// polluting the surrounding scope.
		inner := env.Extend()
		inner.Define(name, fn, true)
		fn.Env = inner
	}
	return fn
}

func (e *Evaluator) evalArrowExpression(n *ast.ArrowFunctionExpression, env *Environment) Object {
	return &Function{
		Params:   n.Params,
		Defaults: n.Defaults,
		Rest:     n.Rest,
		Body:     n.Body,
		Env:      env,
		IsArrow:  true,
		IsAsync:  n.Async,
	}
}
