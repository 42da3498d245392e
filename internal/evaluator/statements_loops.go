package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

// loopSignal classifies a loop-body result: Break is consumed and ends
// the loop, Continue is consumed and moves on, Return/Throw propagate.
func loopSignal(result Object) (stop bool, propagate Object) {
	switch result.(type) {
	case *BreakSignal:
		return true, nil
	case *ContinueSignal:
		return false, nil
	case *ReturnValue, *ThrowSignal:
		return true, result
	}
	return false, nil
}

func (e *Evaluator) evalWhileStatement(n *ast.WhileStatement, env *Environment, ev evalFn) Object {
	for {
		condition := ev(n.Condition, env)
		if isSignal(condition) {
			return condition
		}
		if !IsTruthy(condition) {
			return UNDEFINED
		}
		result := e.evalBlock(n.Body, env.Extend(), ev)
		if stop, sig := loopSignal(result); stop {
			if sig != nil {
				return sig
			}
			return UNDEFINED
		}
	}
}

func (e *Evaluator) evalDoWhileStatement(n *ast.DoWhileStatement, env *Environment, ev evalFn) Object {
	for {
		result := e.evalBlock(n.Body, env.Extend(), ev)
		if stop, sig := loopSignal(result); stop {
			if sig != nil {
				return sig
			}
			return UNDEFINED
		}
		condition := ev(n.Condition, env)
		if isSignal(condition) {
			return condition
		}
		if !IsTruthy(condition) {
			return UNDEFINED
		}
	}
}

func (e *Evaluator) evalForStatement(n *ast.ForStatement, env *Environment, ev evalFn) Object {
	scope := env.Extend()
	if n.Init != nil {
		if result := ev(n.Init, scope); isSignal(result) {
			return result
		}
	}
	for {
		if n.Test != nil {
			condition := ev(n.Test, scope)
			if isSignal(condition) {
				return condition
			}
			if !IsTruthy(condition) {
				return UNDEFINED
			}
		}
		result := e.evalBlock(n.Body, scope.Extend(), ev)
		if stop, sig := loopSignal(result); stop {
			if sig != nil {
				return sig
			}
			return UNDEFINED
		}
		if n.Update != nil {
			if result := ev(n.Update, scope); isSignal(result) {
				return result
			}
		}
	}
}

func (e *Evaluator) evalForInStatement(n *ast.ForInStatement, env *Environment, ev evalFn) Object {
	source := ev(n.Right, env)
	if isSignal(source) {
		return source
	}
	keys, sig := enumerableKeys(source)
	if sig != nil {
		return sig
	}
	for _, key := range keys {
		result := e.runIterationBody(n.Left, &String{Value: key}, n.Body, env, ev)
		if stop, sig := loopSignal(result); stop {
			if sig != nil {
				return sig
			}
			return UNDEFINED
		}
	}
	return UNDEFINED
}

func (e *Evaluator) evalForOfStatement(n *ast.ForOfStatement, env *Environment, ev evalFn) Object {
	source := ev(n.Right, env)
	if isSignal(source) {
		return source
	}
	elements, ok := iterableElements(source)
	if !ok {
		return newError("NotIterable", "%s is not iterable", describeValue(source))
	}
	for _, element := range elements {
		result := e.runIterationBody(n.Left, element, n.Body, env, ev)
		if stop, sig := loopSignal(result); stop {
			if sig != nil {
				return sig
			}
			return UNDEFINED
		}
	}
	return UNDEFINED
}

// runIterationBody binds the loop target in a fresh scope so closures
// created inside the body capture per-iteration values.
func (e *Evaluator) runIterationBody(left ast.Node, value Object, body *ast.BlockStatement, env *Environment, ev evalFn) Object {
	scope := env.Extend()
	switch target := left.(type) {
	case *ast.VariableDeclaration:
		decl := target.Declarations[0]
		if sig := e.bindPattern(decl.Name, value, scope, ev, bindDeclare, target.Kind == "const"); sig != nil {
			return sig
		}
	case ast.Expression:
		if sig := e.bindPattern(target, value, scope, ev, bindAssign, false); sig != nil {
			return sig
		}
	default:
		return syntaxErrorObj("invalid loop target %T", left)
	}
	return e.evalBlock(body, scope, ev)
}

// enumerableKeys lists what for-in walks: object keys, array indexes,
// string indexes.
func enumerableKeys(value Object) ([]string, Object) {
	switch v := value.(type) {
	case *PlainObject:
		return v.Keys(), nil
	case *ModuleNamespace:
		return v.Keys(), nil
	case *Array:
		keys := make([]string, len(v.Elements))
		for i := range v.Elements {
			keys[i] = FormatNumber(float64(i))
		}
		return keys, nil
	case *String:
		runes := []rune(v.Value)
		keys := make([]string, len(runes))
		for i := range runes {
			keys[i] = FormatNumber(float64(i))
		}
		return keys, nil
	case *Undefined, *Null:
		return nil, nil
	}
	return nil, typeError("cannot enumerate %s", describeValue(value))
}
