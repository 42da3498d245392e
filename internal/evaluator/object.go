package evaluator

import (
	"fmt"
	"math"
	"strconv"
)

type ObjectType string

const (
	UNDEFINED_OBJ = "UNDEFINED"
	NULL_OBJ      = "NULL"
	BOOLEAN_OBJ   = "BOOLEAN"
	NUMBER_OBJ    = "NUMBER"
	STRING_OBJ    = "STRING"
	ARRAY_OBJ     = "ARRAY"
	OBJECT_OBJ    = "OBJECT"

	FUNCTION_OBJ     = "FUNCTION"
	BUILTIN_OBJ      = "BUILTIN"
	BOUND_METHOD_OBJ = "BOUND_METHOD"
	CLASS_OBJ        = "CLASS"

	PROMISE_OBJ = "PROMISE"
	MODULE_OBJ  = "MODULE"
	ERROR_OBJ   = "ERROR"

	RETURN_SIGNAL_OBJ   = "RETURN_SIGNAL"
	BREAK_SIGNAL_OBJ    = "BREAK_SIGNAL"
	CONTINUE_SIGNAL_OBJ = "CONTINUE_SIGNAL"
	THROW_SIGNAL_OBJ    = "THROW_SIGNAL"
)

// Object is the one interface every runtime value implements,
// including the control-flow signals that statement evaluation
// returns.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Undefined struct{}

func (u *Undefined) Type() ObjectType { return UNDEFINED_OBJ }
func (u *Undefined) Inspect() string  { return "undefined" }

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return FormatNumber(n.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// Shared singletons; numbers and strings are allocated per value.
var (
	UNDEFINED = &Undefined{}
	NULL      = &Null{}
	TRUE      = &Boolean{Value: true}
	FALSE     = &Boolean{Value: false}
)

func nativeBool(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

// FormatNumber renders a float the way the dialect prints numbers:
// integral values without a fraction, NaN/Infinity by name.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// TypeName returns the typeof-style name for a value.
func TypeName(obj Object) string {
	switch obj.(type) {
	case *Undefined:
		return "undefined"
	case *Null:
		// typeof null is "object", a wart the dialect keeps.
		return "object"
	case *Boolean:
		return "boolean"
	case *Number:
		return "number"
	case *String:
		return "string"
	case *Function, *Builtin, *BoundMethod, *Class:
		return "function"
	default:
		return "object"
	}
}

func describeValue(obj Object) string {
	switch obj := obj.(type) {
	case *Undefined, *Null, *Boolean, *Number:
		return obj.Inspect()
	case *String:
		return fmt.Sprintf("%q", obj.Value)
	default:
		return string(obj.Type())
	}
}
