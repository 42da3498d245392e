package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalCallExpression(n *ast.CallExpression, env *Environment, ev evalFn) Object {
	if _, ok := n.Callee.(*ast.SuperExpression); ok {
		args, sig := e.evalArgs(n.Arguments, env, ev)
		if sig != nil {
			return sig
		}
		return e.evalSuperCall(env, args, ev)
	}

	var callee Object
	var this Object = UNDEFINED

	if member, ok := n.Callee.(*ast.MemberExpression); ok {
		if _, isSuper := member.Object.(*ast.SuperExpression); isSuper {
			callee = e.evalMemberExpression(member, env, ev)
			if isSignal(callee) {
				return callee
			}
		} else {
			object := ev(member.Object, env)
			if isSignal(object) {
				return object
			}
			if member.Optional && (object == NULL || object == UNDEFINED) {
				return UNDEFINED
			}
			key, sig := e.memberKey(member, env, ev)
			if sig != nil {
				return sig
			}
			callee = e.getMember(object, key)
			if isSignal(callee) {
				return callee
			}
			if callee == UNDEFINED {
				if n.Optional {
					return UNDEFINED
				}
				return e.methodNotFound(object, key)
			}
			this = object
		}
	} else {
		callee = ev(n.Callee, env)
		if isSignal(callee) {
			return callee
		}
	}

	if n.Optional && (callee == NULL || callee == UNDEFINED) {
		return UNDEFINED
	}

	args, sig := e.evalArgs(n.Arguments, env, ev)
	if sig != nil {
		return sig
	}
	return e.applyFunction(callee, this, args, ev)
}

func (e *Evaluator) methodNotFound(object Object, key string) Object {
	msg := "no method or property '" + key + "' on " + describeValue(object)
	if e.Enhance != nil {
		if hint := e.Enhance(key, e.memberCandidates(object)); hint != "" {
			msg += " (did you mean '" + hint + "'?)"
		}
	}
	return newError("MethodNotFound", "%s", msg)
}

// memberCandidates lists the names reachable on a value, for
// suggestion enrichment.
func (e *Evaluator) memberCandidates(object Object) []string {
	var names []string
	switch container := object.(type) {
	case *PlainObject:
		names = append(names, container.Keys()...)
		for cls := container.Class; cls != nil; {
			names = append(names, cls.MethodOrder...)
			parent, ok := cls.SuperClass()
			if !ok {
				break
			}
			cls = parent
		}
		names = append(names, objectMethodNames...)
	case *Array:
		names = append(names, arrayMethodNames...)
	case *String:
		names = append(names, stringMethodNames...)
	case *Number:
		names = append(names, numberMethodNames...)
	case *Class:
		for name := range container.Statics {
			names = append(names, name)
		}
	case *ModuleNamespace:
		names = append(names, container.Keys()...)
	case *Builtin:
		for name := range container.Props {
			names = append(names, name)
		}
	}
	return names
}

// evalArgs evaluates a call's argument list, expanding spreads.
func (e *Evaluator) evalArgs(args []ast.Expression, env *Environment, ev evalFn) ([]Object, Object) {
	out := make([]Object, 0, len(args))
	for _, arg := range args {
		if spread, ok := arg.(*ast.SpreadElement); ok {
			source := ev(spread.Argument, env)
			if isSignal(source) {
				return nil, source
			}
			elements, ok := iterableElements(source)
			if !ok {
				return nil, newError("NotIterable", "spread source %s is not iterable", describeValue(source))
			}
			out = append(out, elements...)
			continue
		}
		value := ev(arg, env)
		if isSignal(value) {
			return nil, value
		}
		out = append(out, value)
	}
	return out, nil
}

// applyFunction is the single dispatch point for every call site: user
// functions, host builtins and bound methods all come through here.
func (e *Evaluator) applyFunction(callee Object, this Object, args []Object, ev evalFn) Object {
	switch fn := callee.(type) {
	case *Function:
		return e.callFunction(fn, this, args, ev)
	case *Builtin:
		return fn.Fn(e, this, args)
	case *BoundMethod:
		return e.applyFunction(fn.Method, fn.Receiver, args, ev)
	case *Class:
		return newError("NotCallable", "class %s must be called with 'new'", fn.Name)
	}
	return newError("NotCallable", "%s is not callable", describeValue(callee))
}

// Apply invokes a callable on behalf of a builtin (callbacks for map,
// filter, sort and the like).
func (e *Evaluator) Apply(callee Object, this Object, args []Object) Object {
	return e.applyFunction(callee, this, args, e.Eval)
}

// callFunction invokes a user function. An async function starts its
// body on a fresh strand and immediately returns a pending promise.
func (e *Evaluator) callFunction(fn *Function, this Object, args []Object, ev evalFn) Object {
	if fn.IsAsync {
		promise := NewPromise()
		strand := e.forStrand()
		go func() {
			result := strand.runFunctionBody(fn, this, args, strand.EvalAsync)
			if thrown, ok := result.(*ThrowSignal); ok {
				promise.Reject(thrown.Value)
				return
			}
			promise.Resolve(result)
		}()
		return promise
	}
	// A synchronous body never suspends, whichever path called it.
	return e.runFunctionBody(fn, this, args, e.Eval)
}

func (e *Evaluator) runFunctionBody(fn *Function, this Object, args []Object, bodyEval evalFn) Object {
	name := fn.Name
	if name == "" {
		name = "(anonymous)"
	}
	if sig := e.pushFrame(name, e.lastToken); sig != nil {
		return sig
	}
	defer e.popFrame()

	scope := fn.Env.Extend()
	if !fn.IsArrow {
		// Arrows see the enclosing this lexically through fn.Env.
		scope.set("this", this)
		if fn.HomeClass != nil {
			scope.set(homeKey, fn.HomeClass)
		}
	}

	if sig := e.bindParams(fn, args, scope, bodyEval); sig != nil {
		return sig
	}

	if block, ok := fn.Body.(*ast.BlockStatement); ok {
		result := e.evalBlock(block, scope, bodyEval)
		switch sig := result.(type) {
		case *ReturnValue:
			return sig.Value
		case *ThrowSignal:
			return sig
		case *BreakSignal:
			return syntaxErrorObj("'break' outside of a loop")
		case *ContinueSignal:
			return syntaxErrorObj("'continue' outside of a loop")
		}
		return UNDEFINED
	}

	// Expression-bodied arrow: the value is the implicit return.
	result := bodyEval(fn.Body, scope)
	if ret, ok := result.(*ReturnValue); ok {
		return ret.Value
	}
	return result
}

func (e *Evaluator) bindParams(fn *Function, args []Object, scope *Environment, bodyEval evalFn) Object {
	for i, param := range fn.Params {
		var value Object = UNDEFINED
		if i < len(args) {
			value = args[i]
		}
		if i < len(fn.Defaults) && fn.Defaults[i] != nil && value == UNDEFINED {
			value = bodyEval(fn.Defaults[i], scope)
			if isSignal(value) {
				return value
			}
		}
		if sig := e.bindPattern(param, value, scope, bodyEval, bindDeclare, false); sig != nil {
			return sig
		}
	}
	if fn.Rest != nil {
		var rest []Object
		if len(args) > len(fn.Params) {
			rest = append(rest, args[len(fn.Params):]...)
		}
		if sig := e.bindPattern(fn.Rest, &Array{Elements: rest}, scope, bodyEval, bindDeclare, false); sig != nil {
			return sig
		}
	}
	return nil
}

func (e *Evaluator) evalNewExpression(n *ast.NewExpression, env *Environment, ev evalFn) Object {
	callee := ev(n.Callee, env)
	if isSignal(callee) {
		return callee
	}
	args, sig := e.evalArgs(n.Arguments, env, ev)
	if sig != nil {
		return sig
	}
	return e.construct(callee, args, ev)
}

// construct implements `new`: class protocol, constructor-style user
// functions, and host builtins with or without a construct hook.
func (e *Evaluator) construct(callee Object, args []Object, ev evalFn) Object {
	switch ctor := callee.(type) {
	case *Class:
		return e.constructClassInstance(ctor, args, ev)

	case *Function:
		if ctor.IsArrow {
			return newError("NotAConstructor", "arrow functions cannot be constructed")
		}
		instance := NewPlainObject()
		instance.Ctor = ctor
		result := e.callFunction(ctor, instance, args, ev)
		if isThrow(result) {
			return result
		}
		// An explicit object return replaces the fresh instance.
		if obj, ok := result.(*PlainObject); ok {
			return obj
		}
		return instance

	case *Builtin:
		if ctor.Construct != nil {
			return ctor.Construct(e, UNDEFINED, args)
		}
		result := ctor.Fn(e, UNDEFINED, args)
		if isSignal(result) {
			return result
		}
		switch result.(type) {
		case *PlainObject, *Array, *ErrorObject, *Promise:
			return result
		}
		return newError("NotAConstructor", "%s is not a constructor", ctor.Name)
	}
	return newError("NotAConstructor", "%s is not a constructor", describeValue(callee))
}
