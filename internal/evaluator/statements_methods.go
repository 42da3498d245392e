package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

// homeKey is the hidden call-frame binding that carries the defining
// class of the running method, for super resolution. The '%' keeps it
// unreachable from source code.
const homeKey = "%home%"

func (e *Evaluator) evalClassDeclaration(n *ast.ClassDeclaration, env *Environment, ev evalFn) Object {
	cls := e.buildClass(n.Name.Value, n.SuperClass, n.Body, env, ev)
	if isSignal(cls) {
		return cls
	}
	if !env.Define(n.Name.Value, cls, false) {
		return newError("DuplicateDeclaration", "name '%s' is already declared in this scope", n.Name.Value)
	}
	return UNDEFINED
}

func (e *Evaluator) evalClassExpression(n *ast.ClassExpression, env *Environment, ev evalFn) Object {
	name := ""
	if n.Name != nil {
		name = n.Name.Value
	}
	return e.buildClass(name, n.SuperClass, n.Body, env, ev)
}

func (e *Evaluator) buildClass(name string, superExpr ast.Expression, body *ast.ClassBody, env *Environment, ev evalFn) Object {
	cls := &Class{
		Name:    name,
		Methods: make(map[string]*Function),
		Statics: make(map[string]Object),
	}

	if superExpr != nil {
		parent := ev(superExpr, env)
		if isSignal(parent) {
			return parent
		}
		switch parent.(type) {
		case *Class, *Function, *Builtin:
			cls.Super = parent
		default:
			return typeError("class %s extends %s, which is not a constructor", name, describeValue(parent))
		}
	}

	for _, method := range body.Methods {
		key, sig := e.methodKey(method, env, ev)
		if sig != nil {
			return sig
		}
		fn := &Function{
			Name:      key,
			Params:    method.Value.Params,
			Defaults:  method.Value.Defaults,
			Rest:      method.Value.Rest,
			Body:      method.Value.Body,
			Env:       env,
			IsAsync:   method.Value.Async,
			HomeClass: cls,
		}
		switch {
		case method.Kind == "constructor":
			cls.Constructor = fn
		case method.Static:
			cls.Statics[key] = fn
		default:
			if _, exists := cls.Methods[key]; !exists {
				cls.MethodOrder = append(cls.MethodOrder, key)
			}
			cls.Methods[key] = fn
		}
	}
	return cls
}

func (e *Evaluator) methodKey(method *ast.MethodDefinition, env *Environment, ev evalFn) (string, Object) {
	if method.Computed {
		value := ev(method.Key, env)
		if isSignal(value) {
			return "", value
		}
		return ToString(value), nil
	}
	switch k := method.Key.(type) {
	case *ast.Identifier:
		return k.Value, nil
	case *ast.StringLiteral:
		return k.Value, nil
	case *ast.NumberLiteral:
		return FormatNumber(k.Value), nil
	}
	return "", syntaxErrorObj("invalid method key %T", method.Key)
}

// constructClassInstance runs the construction protocol: copy method
// thunks following the superclass chain base first so derived methods
// override, then run the constructor chain.
func (e *Evaluator) constructClassInstance(cls *Class, args []Object, ev evalFn) Object {
	instance := NewPlainObject()
	instance.Class = cls

	e.copyMethodThunks(cls, instance)

	if sig := e.runConstructorChain(cls, instance, args, ev); sig != nil {
		return sig
	}
	return instance
}

func (e *Evaluator) copyMethodThunks(cls *Class, instance *PlainObject) {
	if parent, ok := cls.SuperClass(); ok {
		e.copyMethodThunks(parent, instance)
	}
	for _, name := range cls.MethodOrder {
		instance.Set(name, &BoundMethod{Receiver: instance, Method: cls.Methods[name]})
	}
}

// runConstructorChain invokes cls's constructor with this bound to
// instance. When cls has no constructor the parent's runs implicitly
// with the same arguments.
func (e *Evaluator) runConstructorChain(cls *Class, instance *PlainObject, args []Object, ev evalFn) Object {
	if cls.Constructor != nil {
		result := e.callFunction(cls.Constructor, instance, args, ev)
		if isThrow(result) {
			return result
		}
		return nil
	}
	switch parent := cls.Super.(type) {
	case nil:
		return nil
	case *Class:
		return e.runConstructorChain(parent, instance, args, ev)
	default:
		return e.applyHostSuper(parent, instance, args, ev)
	}
}

// applyHostSuper handles a host-provided (or plain-function) parent:
// construct a temporary parent instance and copy its own properties
// onto this.
func (e *Evaluator) applyHostSuper(parent Object, instance *PlainObject, args []Object, ev evalFn) Object {
	constructed := e.construct(parent, args, ev)
	if isSignal(constructed) {
		return constructed
	}
	switch src := constructed.(type) {
	case *PlainObject:
		for _, key := range src.Keys() {
			v, _ := src.Get(key)
			instance.Set(key, v)
		}
	case *ErrorObject:
		instance.Set("message", &String{Value: src.Message})
		if src.Kind != "" {
			instance.Set("name", &String{Value: src.Kind})
		}
	}
	return nil
}

// evalSuperCall implements super(...) inside a constructor.
func (e *Evaluator) evalSuperCall(env *Environment, args []Object, ev evalFn) Object {
	home, this, sig := e.superContext(env)
	if sig != nil {
		return sig
	}
	switch parent := home.Super.(type) {
	case nil:
		return syntaxErrorObj("'super' called in a class with no superclass")
	case *Class:
		if s := e.runConstructorChain(parent, this, args, ev); s != nil {
			return s
		}
		return UNDEFINED
	default:
		if s := e.applyHostSuper(parent, this, args, ev); s != nil {
			return s
		}
		return UNDEFINED
	}
}

// evalSuperMethod resolves super.name against the defining class's
// parent and returns it bound to the current this.
func (e *Evaluator) evalSuperMethod(env *Environment, name string) Object {
	home, this, sig := e.superContext(env)
	if sig != nil {
		return sig
	}
	parent, ok := home.SuperClass()
	if !ok {
		return syntaxErrorObj("'super' used in a class with no superclass")
	}
	if method, found := parent.lookupMethod(name); found {
		return &BoundMethod{Receiver: this, Method: method}
	}
	return newError("MethodNotFound", "superclass of %s has no method '%s'", home.Name, name)
}

func (e *Evaluator) superContext(env *Environment) (*Class, *PlainObject, Object) {
	homeValue, ok := env.Get(homeKey)
	if !ok {
		return nil, nil, syntaxErrorObj("'super' is only valid inside class methods")
	}
	home := homeValue.(*Class)
	thisValue, _ := env.Get("this")
	this, ok := thisValue.(*PlainObject)
	if !ok {
		return nil, nil, syntaxErrorObj("'super' requires an instance context")
	}
	return home, this, nil
}
