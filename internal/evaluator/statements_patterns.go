package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

type bindMode int

const (
	// bindDeclare introduces fresh bindings in the target scope.
	bindDeclare bindMode = iota
	// bindAssign writes through existing bindings (or member targets).
	bindAssign
)

// bindPattern recursively binds value to target. Target is an
// identifier, member expression (assign mode only), object/array
// pattern, or an AssignmentPattern carrying a default. Returns nil on
// success or a throw signal.
func (e *Evaluator) bindPattern(target ast.Expression, value Object, env *Environment, ev evalFn, mode bindMode, isConst bool) Object {
	switch t := target.(type) {

	case *ast.Identifier:
		return e.bindName(t.Value, value, env, mode, isConst)

	case *ast.AssignmentPattern:
		// Defaults apply only when the incoming value is exactly
		// undefined; null flows through.
		if value == UNDEFINED {
			value = ev(t.Right, env)
			if isSignal(value) {
				return value
			}
			nameFunctionValue(t.Left, value)
		}
		return e.bindPattern(t.Left, value, env, ev, mode, isConst)

	case *ast.ObjectPattern:
		return e.bindObjectPattern(t, value, env, ev, mode, isConst)

	case *ast.ArrayPattern:
		return e.bindArrayPattern(t, value, env, ev, mode, isConst)

	case *ast.MemberExpression:
		if mode != bindAssign {
			return syntaxErrorObj("member expression is not a valid declaration target")
		}
		return e.setMemberExpression(t, value, env, ev)
	}

	return syntaxErrorObj("invalid binding target %T", target)
}

func (e *Evaluator) bindName(name string, value Object, env *Environment, mode bindMode, isConst bool) Object {
	if mode == bindDeclare {
		if !env.Define(name, value, isConst) {
			return newError("DuplicateDeclaration", "name '%s' is already declared in this scope", name)
		}
		return nil
	}
	switch env.Assign(name, value) {
	case AssignConst:
		return newError("ConstReassignment", "assignment to constant '%s'", name)
	case AssignUnbound:
		// A plain assignment to a name bound nowhere defines it at the
		// root scope.
		env.Root().set(name, value)
	}
	return nil
}

func (e *Evaluator) bindObjectPattern(pattern *ast.ObjectPattern, value Object, env *Environment, ev evalFn, mode bindMode, isConst bool) Object {
	if value == NULL || value == UNDEFINED {
		return newError("NotDestructurable", "cannot destructure %s as an object", describeValue(value))
	}

	consumed := make(map[string]bool, len(pattern.Properties))
	for _, prop := range pattern.Properties {
		key, sig := e.patternKey(prop, env, ev)
		if sig != nil {
			return sig
		}
		consumed[key] = true
		propValue := propertyOf(value, key)
		if sig := e.bindPattern(prop.Value, propValue, env, ev, mode, isConst); sig != nil {
			return sig
		}
	}

	if pattern.Rest != nil {
		rest := NewPlainObject()
		if src, ok := value.(*PlainObject); ok {
			for _, key := range src.Keys() {
				if !consumed[key] {
					v, _ := src.Get(key)
					rest.Set(key, v)
				}
			}
		}
		if sig := e.bindPattern(pattern.Rest, rest, env, ev, mode, isConst); sig != nil {
			return sig
		}
	}
	return nil
}

func (e *Evaluator) patternKey(prop *ast.PatternProperty, env *Environment, ev evalFn) (string, Object) {
	if prop.Computed {
		keyValue := ev(prop.Key, env)
		if isSignal(keyValue) {
			return "", keyValue
		}
		return ToString(keyValue), nil
	}
	switch k := prop.Key.(type) {
	case *ast.Identifier:
		return k.Value, nil
	case *ast.StringLiteral:
		return k.Value, nil
	case *ast.NumberLiteral:
		return FormatNumber(k.Value), nil
	}
	return "", syntaxErrorObj("invalid pattern key %T", prop.Key)
}

// propertyOf is the plain data lookup used by destructuring; no method
// surfaces, no prototype walk beyond what the value itself stores.
func propertyOf(value Object, key string) Object {
	switch v := value.(type) {
	case *PlainObject:
		if prop, ok := v.Get(key); ok {
			return prop
		}
	case *ModuleNamespace:
		if prop, ok := v.Get(key); ok {
			return prop
		}
	case *ErrorObject:
		if prop, ok := v.Get(key); ok {
			return prop
		}
	case *Array:
		if key == "length" {
			return &Number{Value: float64(len(v.Elements))}
		}
		if idx, ok := arrayIndex(key, len(v.Elements)); ok {
			return v.Elements[idx]
		}
	case *String:
		if key == "length" {
			return &Number{Value: float64(len([]rune(v.Value)))}
		}
	}
	return UNDEFINED
}

func (e *Evaluator) bindArrayPattern(pattern *ast.ArrayPattern, value Object, env *Environment, ev evalFn, mode bindMode, isConst bool) Object {
	elements, ok := iterableElements(value)
	if !ok {
		return newError("NotDestructurable", "cannot destructure %s as an array", describeValue(value))
	}

	for i, elem := range pattern.Elements {
		if elem == nil {
			continue // hole
		}
		var item Object = UNDEFINED
		if i < len(elements) {
			item = elements[i]
		}
		if sig := e.bindPattern(elem, item, env, ev, mode, isConst); sig != nil {
			return sig
		}
	}

	if pattern.Rest != nil {
		var rest []Object
		if len(elements) > len(pattern.Elements) {
			rest = append(rest, elements[len(pattern.Elements):]...)
		}
		if sig := e.bindPattern(pattern.Rest, &Array{Elements: rest}, env, ev, mode, isConst); sig != nil {
			return sig
		}
	}
	return nil
}

// iterableElements materializes the iteration order of a spread or
// array-destructuring source. Arrays yield elements, strings yield
// one-rune strings.
func iterableElements(value Object) ([]Object, bool) {
	switch v := value.(type) {
	case *Array:
		return v.Elements, true
	case *String:
		runes := []rune(v.Value)
		elements := make([]Object, len(runes))
		for i, r := range runes {
			elements[i] = &String{Value: string(r)}
		}
		return elements, true
	}
	return nil, false
}
