package evaluator

import "fmt"

// Control signals travel through evaluation as ordinary values and are
// absorbed at their natural boundaries: ReturnValue at call frames,
// Break and Continue at enclosing loops, ThrowSignal at try blocks or
// the program boundary.

// ReturnValue wraps the operand of a return statement.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_SIGNAL_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// BreakSignal exits the nearest enclosing loop or switch.
type BreakSignal struct{}

func (bs *BreakSignal) Type() ObjectType { return BREAK_SIGNAL_OBJ }
func (bs *BreakSignal) Inspect() string  { return "break" }

// ContinueSignal skips to the next iteration of the nearest loop.
type ContinueSignal struct{}

func (cs *ContinueSignal) Type() ObjectType { return CONTINUE_SIGNAL_OBJ }
func (cs *ContinueSignal) Inspect() string  { return "continue" }

// ThrowSignal carries a thrown value up the evaluation tree. The value
// may be any object, not only ErrorObject.
type ThrowSignal struct {
	Value Object
}

func (ts *ThrowSignal) Type() ObjectType { return THROW_SIGNAL_OBJ }
func (ts *ThrowSignal) Inspect() string  { return "throw " + ts.Value.Inspect() }

// ErrorObject is the runtime error value: the host raises these for
// type errors, unbound names, and the rest; scripts create them with
// `new Error(msg)`.
type ErrorObject struct {
	Kind    string // "TypeError", "RangeError", "Error", ...
	Message string
	props   *PlainObject
}

func (eo *ErrorObject) Type() ObjectType { return ERROR_OBJ }
func (eo *ErrorObject) Inspect() string {
	if eo.Kind == "" {
		return "Error: " + eo.Message
	}
	return eo.Kind + ": " + eo.Message
}

// Get exposes message/name plus any user-set properties.
func (eo *ErrorObject) Get(key string) (Object, bool) {
	switch key {
	case "message":
		return &String{Value: eo.Message}, true
	case "name":
		kind := eo.Kind
		if kind == "" {
			kind = "Error"
		}
		return &String{Value: kind}, true
	}
	if eo.props != nil {
		return eo.props.Get(key)
	}
	return nil, false
}

func (eo *ErrorObject) Set(key string, value Object) {
	switch key {
	case "message":
		if s, ok := value.(*String); ok {
			eo.Message = s.Value
			return
		}
	case "name":
		if s, ok := value.(*String); ok {
			eo.Kind = s.Value
			return
		}
	}
	if eo.props == nil {
		eo.props = NewPlainObject()
	}
	eo.props.Set(key, value)
}

// newError raises a runtime error as a throw signal.
func newError(kind, format string, args ...interface{}) *ThrowSignal {
	return &ThrowSignal{Value: &ErrorObject{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

func typeError(format string, args ...interface{}) *ThrowSignal {
	return newError("TypeError", format, args...)
}

func rangeError(format string, args ...interface{}) *ThrowSignal {
	return newError("RangeError", format, args...)
}

func referenceError(format string, args ...interface{}) *ThrowSignal {
	return newError("ReferenceError", format, args...)
}

func syntaxErrorObj(format string, args ...interface{}) *ThrowSignal {
	return newError("SyntaxError", format, args...)
}

// isSignal reports whether obj is any control signal. Expression
// helpers use it to propagate without inspecting the kind.
func isSignal(obj Object) bool {
	switch obj.(type) {
	case *ReturnValue, *BreakSignal, *ContinueSignal, *ThrowSignal:
		return true
	}
	return false
}

func isThrow(obj Object) bool {
	_, ok := obj.(*ThrowSignal)
	return ok
}
