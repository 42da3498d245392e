package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalIfStatement(n *ast.IfStatement, env *Environment, ev evalFn) Object {
	condition := ev(n.Condition, env)
	if isSignal(condition) {
		return condition
	}
	if IsTruthy(condition) {
		return e.evalBlock(n.Consequence, env.Extend(), ev)
	}
	if n.Alternative != nil {
		return ev(n.Alternative, env)
	}
	return UNDEFINED
}

func (e *Evaluator) evalSwitchStatement(n *ast.SwitchStatement, env *Environment, ev evalFn) Object {
	discriminant := ev(n.Discriminant, env)
	if isSignal(discriminant) {
		return discriminant
	}

	scope := env.Extend()
	matched := -1
	defaultIdx := -1
	for i, clause := range n.Cases {
		if clause.Test == nil {
			defaultIdx = i
			continue
		}
		test := ev(clause.Test, scope)
		if isSignal(test) {
			return test
		}
		if strictEquals(discriminant, test) {
			matched = i
			break
		}
	}
	if matched < 0 {
		matched = defaultIdx
	}
	if matched < 0 {
		return UNDEFINED
	}

	// Fall through subsequent clauses until break or exhaustion.
	for _, clause := range n.Cases[matched:] {
		for _, stmt := range clause.Consequent {
			result := ev(stmt, scope)
			switch result.(type) {
			case *BreakSignal:
				return UNDEFINED
			case *ReturnValue, *ThrowSignal, *ContinueSignal:
				return result
			}
		}
	}
	return UNDEFINED
}

func (e *Evaluator) evalTryStatement(n *ast.TryStatement, env *Environment, ev evalFn) Object {
	result := e.evalBlock(n.Block, env.Extend(), ev)

	if thrown, ok := result.(*ThrowSignal); ok && n.Handler != nil {
		scope := env.Extend()
		if n.Handler.Param != nil {
			if sig := e.bindPattern(n.Handler.Param, thrown.Value, scope, ev, bindDeclare, false); sig != nil {
				result = sig
			} else {
				result = e.evalBlock(n.Handler.Body, scope, ev)
			}
		} else {
			result = e.evalBlock(n.Handler.Body, scope, ev)
		}
	}

	if n.Finalizer != nil {
		final := e.evalBlock(n.Finalizer, env.Extend(), ev)
		// A signal out of finally wins over the try/catch outcome.
		if isSignal(final) {
			return final
		}
	}
	return result
}
