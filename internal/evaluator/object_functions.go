package evaluator

import (
	"github.com/jotlang/jot/internal/ast"
)

// Function is a user-defined callable: parameter patterns, a body, and
// the environment captured at definition time. Arrows never bind
// `this` (it resolves lexically through Env); methods carry their
// defining class for super dispatch.
type Function struct {
	Name     string
	Params   []ast.Expression
	Defaults []ast.Expression
	Rest     ast.Expression
	Body     ast.Node // *ast.BlockStatement, or an expression for arrow bodies
	Env      *Environment
	IsArrow  bool
	IsAsync  bool

	HomeClass *Class
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	if f.IsAsync {
		return "[async function " + name + "]"
	}
	return "[function " + name + "]"
}

// IsExpressionBody reports whether the body is a bare expression with
// an implicit return (arrow shorthand).
func (f *Function) IsExpressionBody() bool {
	_, isBlock := f.Body.(*ast.BlockStatement)
	return !isBlock
}

// BuiltinFn is the host-callable signature. `this` is the receiver for
// method-style builtins, UNDEFINED otherwise.
type BuiltinFn func(e *Evaluator, this Object, args []Object) Object

// Builtin is a host-provided callable. Construct, when set, is the
// `new` hook (Promise, Error); Props carries static members (e.g.
// Promise.all).
type Builtin struct {
	Name      string
	Fn        BuiltinFn
	Construct BuiltinFn
	Props     map[string]Object
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "[builtin " + b.Name + "]" }

// BoundMethod pairs a callable with its receiver so `obj.m` can be
// passed around and still see the right `this`.
type BoundMethod struct {
	Receiver Object
	Method   Object // *Function or *Builtin
}

func (bm *BoundMethod) Type() ObjectType { return BOUND_METHOD_OBJ }
func (bm *BoundMethod) Inspect() string  { return bm.Method.Inspect() }

// Class separates its members at creation time: one optional
// constructor, instance methods, and statics. Super is the parent
// class, or a host builtin when extending a host constructor.
type Class struct {
	Name        string
	Constructor *Function
	Methods     map[string]*Function
	MethodOrder []string
	Statics     map[string]Object
	Super       Object
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return "[class " + c.Name + "]" }

// lookupMethod walks the class chain for an instance method.
func (c *Class) lookupMethod(name string) (*Function, bool) {
	for cls := c; cls != nil; {
		if m, ok := cls.Methods[name]; ok {
			return m, true
		}
		parent, isClass := cls.Super.(*Class)
		if !isClass {
			return nil, false
		}
		cls = parent
	}
	return nil, false
}

// SuperClass returns the parent as a *Class when it is one.
func (c *Class) SuperClass() (*Class, bool) {
	parent, ok := c.Super.(*Class)
	return parent, ok
}
