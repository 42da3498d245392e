package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalMemberExpression(n *ast.MemberExpression, env *Environment, ev evalFn) Object {
	if _, ok := n.Object.(*ast.SuperExpression); ok {
		key, sig := e.memberKey(n, env, ev)
		if sig != nil {
			return sig
		}
		return e.evalSuperMethod(env, key)
	}

	object := ev(n.Object, env)
	if isSignal(object) {
		return object
	}
	if n.Optional && (object == NULL || object == UNDEFINED) {
		return UNDEFINED
	}
	key, sig := e.memberKey(n, env, ev)
	if sig != nil {
		return sig
	}
	return e.getMember(object, key)
}

// memberKey produces the property name: the identifier text for dot
// access, the coerced index expression for computed access.
func (e *Evaluator) memberKey(n *ast.MemberExpression, env *Environment, ev evalFn) (string, Object) {
	if !n.Computed {
		switch prop := n.Property.(type) {
		case *ast.Identifier:
			return prop.Value, nil
		case *ast.StringLiteral:
			return prop.Value, nil
		case *ast.NumberLiteral:
			return FormatNumber(prop.Value), nil
		}
		return "", syntaxErrorObj("invalid member property %T", n.Property)
	}
	value := ev(n.Property, env)
	if isSignal(value) {
		return "", value
	}
	return ToString(value), nil
}

// getMember is the unified property read: own data first, then the
// class method chain, then the host method surface of the value's
// kind. Missing properties read as undefined.
func (e *Evaluator) getMember(object Object, key string) Object {
	switch container := object.(type) {
	case *Undefined, *Null:
		return typeError("cannot read property '%s' of %s", key, describeValue(object))

	case *PlainObject:
		if value, ok := container.Get(key); ok {
			return value
		}
		if container.Class != nil {
			if method, found := container.Class.lookupMethod(key); found {
				return &BoundMethod{Receiver: container, Method: method}
			}
		}
		if method, ok := objectMethod(container, key); ok {
			return method
		}
		return UNDEFINED

	case *Array:
		if key == "length" {
			return &Number{Value: float64(len(container.Elements))}
		}
		if idx, ok := arrayIndex(key, len(container.Elements)); ok {
			return container.Elements[idx]
		}
		if method, ok := arrayMethod(container, key); ok {
			return method
		}
		return UNDEFINED

	case *String:
		if key == "length" {
			return &Number{Value: float64(len([]rune(container.Value)))}
		}
		if idx, ok := arrayIndex(key, len([]rune(container.Value))); ok {
			return &String{Value: string([]rune(container.Value)[idx])}
		}
		if method, ok := stringMethod(container, key); ok {
			return method
		}
		return UNDEFINED

	case *Number:
		if method, ok := numberMethod(container, key); ok {
			return method
		}
		return UNDEFINED

	case *Class:
		if static, ok := container.Statics[key]; ok {
			if fn, isFn := static.(*Function); isFn {
				return &BoundMethod{Receiver: container, Method: fn}
			}
			return static
		}
		if key == "name" {
			return &String{Value: container.Name}
		}
		return UNDEFINED

	case *Builtin:
		if prop, ok := container.Props[key]; ok {
			return prop
		}
		return UNDEFINED

	case *ModuleNamespace:
		if value, ok := container.Get(key); ok {
			return value
		}
		return UNDEFINED

	case *ErrorObject:
		if value, ok := container.Get(key); ok {
			return value
		}
		if key == "stack" {
			return &String{Value: container.Inspect()}
		}
		return UNDEFINED

	case *Promise:
		if method, ok := promiseMethod(container, key); ok {
			return method
		}
		return UNDEFINED

	case *Function, *BoundMethod:
		if key == "name" {
			if fn, ok := object.(*Function); ok {
				return &String{Value: fn.Name}
			}
		}
		return UNDEFINED
	}
	return UNDEFINED
}

// setMemberExpression writes through a member path.
func (e *Evaluator) setMemberExpression(n *ast.MemberExpression, value Object, env *Environment, ev evalFn) Object {
	if _, ok := n.Object.(*ast.SuperExpression); ok {
		return syntaxErrorObj("cannot assign through 'super'")
	}
	object := ev(n.Object, env)
	if isSignal(object) {
		return object
	}
	key, sig := e.memberKey(n, env, ev)
	if sig != nil {
		return sig
	}
	return e.setMember(object, key, value)
}

func (e *Evaluator) setMember(object Object, key string, value Object) Object {
	switch container := object.(type) {
	case *Undefined, *Null:
		return typeError("cannot set property '%s' of %s", key, describeValue(object))
	case *PlainObject:
		container.Set(key, value)
		return nil
	case *Array:
		if key == "length" {
			return e.setArrayLength(container, value)
		}
		idx, ok := arrayIndexForWrite(key)
		if !ok {
			return typeError("invalid array index '%s'", key)
		}
		for len(container.Elements) <= idx {
			container.Elements = append(container.Elements, UNDEFINED)
		}
		container.Elements[idx] = value
		return nil
	case *ErrorObject:
		container.Set(key, value)
		return nil
	case *ModuleNamespace:
		return typeError("cannot assign to module namespace property '%s'", key)
	case *Class:
		container.Statics[key] = value
		return nil
	}
	return typeError("cannot set property '%s' on %s", key, describeValue(object))
}

func (e *Evaluator) setArrayLength(arr *Array, value Object) Object {
	n := ToNumber(value)
	if n < 0 || n != float64(int(n)) {
		return rangeError("invalid array length %s", FormatNumber(n))
	}
	target := int(n)
	for len(arr.Elements) < target {
		arr.Elements = append(arr.Elements, UNDEFINED)
	}
	if target < len(arr.Elements) {
		arr.Elements = arr.Elements[:target]
	}
	return nil
}
