package evaluator

import (
	"strings"

	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalTemplateLiteral(n *ast.TemplateLiteral, env *Environment, ev evalFn) Object {
	var sb strings.Builder
	for i, quasi := range n.Quasis {
		sb.WriteString(quasi)
		if i < len(n.Expressions) {
			value := ev(n.Expressions[i], env)
			if isSignal(value) {
				return value
			}
			sb.WriteString(ToString(value))
		}
	}
	return &String{Value: sb.String()}
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, env *Environment, ev evalFn) Object {
	elements := make([]Object, 0, len(n.Elements))
	for _, elem := range n.Elements {
		if elem == nil {
			elements = append(elements, UNDEFINED) // elision
			continue
		}
		if spread, ok := elem.(*ast.SpreadElement); ok {
			source := ev(spread.Argument, env)
			if isSignal(source) {
				return source
			}
			items, ok := iterableElements(source)
			if !ok {
				return newError("NotIterable", "spread source %s is not iterable", describeValue(source))
			}
			elements = append(elements, items...)
			continue
		}
		value := ev(elem, env)
		if isSignal(value) {
			return value
		}
		elements = append(elements, value)
	}
	return &Array{Elements: elements}
}

func (e *Evaluator) evalObjectLiteral(n *ast.ObjectLiteral, env *Environment, ev evalFn) Object {
	object := NewPlainObject()
	for _, prop := range n.Properties {
		if prop.Spread != nil {
			source := ev(prop.Spread, env)
			if isSignal(source) {
				return source
			}
			if sig := spreadInto(object, source); sig != nil {
				return sig
			}
			continue
		}

		key, sig := e.propertyKey(prop, env, ev)
		if sig != nil {
			return sig
		}
		value := ev(prop.Value, env)
		if isSignal(value) {
			return value
		}
		if fn, ok := value.(*Function); ok && fn.Name == "" {
			fn.Name = key
		}
		object.Set(key, value)
	}
	return object
}

// spreadInto copies own enumerable properties of source onto target.
// Null and undefined sources spread to nothing.
func spreadInto(target *PlainObject, source Object) Object {
	switch src := source.(type) {
	case *Null, *Undefined:
		return nil
	case *PlainObject:
		for _, key := range src.Keys() {
			v, _ := src.Get(key)
			target.Set(key, v)
		}
		return nil
	case *Array:
		for i, el := range src.Elements {
			target.Set(FormatNumber(float64(i)), el)
		}
		return nil
	case *String:
		for i, r := range []rune(src.Value) {
			target.Set(FormatNumber(float64(i)), &String{Value: string(r)})
		}
		return nil
	case *ModuleNamespace:
		for _, key := range src.Keys() {
			v, _ := src.Get(key)
			target.Set(key, v)
		}
		return nil
	}
	// Primitives have no own enumerable properties.
	return nil
}

func (e *Evaluator) propertyKey(prop *ast.Property, env *Environment, ev evalFn) (string, Object) {
	if prop.Computed {
		value := ev(prop.Key, env)
		if isSignal(value) {
			return "", value
		}
		return ToString(value), nil
	}
	switch k := prop.Key.(type) {
	case *ast.Identifier:
		return k.Value, nil
	case *ast.StringLiteral:
		return k.Value, nil
	case *ast.NumberLiteral:
		return FormatNumber(k.Value), nil
	}
	return "", syntaxErrorObj("invalid property key %T", prop.Key)
}
