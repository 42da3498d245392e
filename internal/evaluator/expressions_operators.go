package evaluator

import (
	"math"
	"strings"

	"github.com/jotlang/jot/internal/ast"
)

func (e *Evaluator) evalBinaryExpression(n *ast.BinaryExpression, env *Environment, ev evalFn) Object {
	left := ev(n.Left, env)
	if isSignal(left) {
		return left
	}
	right := ev(n.Right, env)
	if isSignal(right) {
		return right
	}
	return e.applyBinary(n.Operator, left, right)
}

func (e *Evaluator) applyBinary(op string, left, right Object) Object {
	switch op {
	case "+":
		// String on either side wins over numeric addition.
		if _, ok := left.(*String); ok {
			return &String{Value: ToString(left) + ToString(right)}
		}
		if _, ok := right.(*String); ok {
			return &String{Value: ToString(left) + ToString(right)}
		}
		if isConcatenable(left) || isConcatenable(right) {
			return &String{Value: ToString(left) + ToString(right)}
		}
		return &Number{Value: ToNumber(left) + ToNumber(right)}
	case "-":
		return &Number{Value: ToNumber(left) - ToNumber(right)}
	case "*":
		return &Number{Value: ToNumber(left) * ToNumber(right)}
	case "/":
		return &Number{Value: ToNumber(left) / ToNumber(right)}
	case "%":
		return &Number{Value: math.Mod(ToNumber(left), ToNumber(right))}
	case "**":
		return &Number{Value: math.Pow(ToNumber(left), ToNumber(right))}

	case "<", ">", "<=", ">=":
		return e.applyComparison(op, left, right)

	case "==":
		return nativeBool(looseEquals(left, right))
	case "!=":
		return nativeBool(!looseEquals(left, right))
	case "===":
		return nativeBool(strictEquals(left, right))
	case "!==":
		return nativeBool(!strictEquals(left, right))

	case "&":
		return &Number{Value: float64(ToInt32(left) & ToInt32(right))}
	case "|":
		return &Number{Value: float64(ToInt32(left) | ToInt32(right))}
	case "^":
		return &Number{Value: float64(ToInt32(left) ^ ToInt32(right))}
	case "<<":
		return &Number{Value: float64(ToInt32(left) << (ToUint32(right) & 31))}
	case ">>":
		return &Number{Value: float64(ToInt32(left) >> (ToUint32(right) & 31))}
	case ">>>":
		return &Number{Value: float64(ToUint32(left) >> (ToUint32(right) & 31))}

	case "in":
		return e.applyIn(left, right)
	case "instanceof":
		return e.applyInstanceof(left, right)
	}
	return typeError("unknown operator '%s'", op)
}

// isConcatenable marks values whose + behavior is concatenation even
// against a number (arrays and objects stringify in the dialect).
func isConcatenable(obj Object) bool {
	switch obj.(type) {
	case *Array, *PlainObject:
		return true
	}
	return false
}

func (e *Evaluator) applyComparison(op string, left, right Object) Object {
	ls, lok := left.(*String)
	rs, rok := right.(*String)
	if lok && rok {
		switch op {
		case "<":
			return nativeBool(ls.Value < rs.Value)
		case ">":
			return nativeBool(ls.Value > rs.Value)
		case "<=":
			return nativeBool(ls.Value <= rs.Value)
		case ">=":
			return nativeBool(ls.Value >= rs.Value)
		}
	}
	a, b := ToNumber(left), ToNumber(right)
	if math.IsNaN(a) || math.IsNaN(b) {
		return FALSE
	}
	switch op {
	case "<":
		return nativeBool(a < b)
	case ">":
		return nativeBool(a > b)
	case "<=":
		return nativeBool(a <= b)
	case ">=":
		return nativeBool(a >= b)
	}
	return FALSE
}

// applyIn checks key membership: object keys, array indexes, instance
// methods.
func (e *Evaluator) applyIn(left, right Object) Object {
	if right == NULL || right == UNDEFINED {
		return typeError("cannot use 'in' on %s", describeValue(right))
	}
	key := ToString(left)
	switch container := right.(type) {
	case *PlainObject:
		if container.Has(key) {
			return TRUE
		}
		if container.Class != nil {
			if _, found := container.Class.lookupMethod(key); found {
				return TRUE
			}
		}
		return FALSE
	case *ModuleNamespace:
		_, ok := container.Get(key)
		return nativeBool(ok)
	case *Array:
		_, ok := arrayIndex(key, len(container.Elements))
		return nativeBool(ok)
	case *ErrorObject:
		_, ok := container.Get(key)
		return nativeBool(ok)
	}
	return typeError("cannot use 'in' on %s", describeValue(right))
}

// applyInstanceof walks the instance's class chain for classes;
// instances made with `new fn()` remember their constructor.
func (e *Evaluator) applyInstanceof(left, right Object) Object {
	if left == NULL || left == UNDEFINED {
		return FALSE
	}
	switch ctor := right.(type) {
	case *Class:
		instance, ok := left.(*PlainObject)
		if !ok {
			return FALSE
		}
		for cls := instance.Class; cls != nil; {
			if cls == ctor {
				return TRUE
			}
			parent, isClass := cls.Super.(*Class)
			if !isClass {
				break
			}
			cls = parent
		}
		return FALSE
	case *Function:
		instance, ok := left.(*PlainObject)
		if !ok {
			return FALSE
		}
		return nativeBool(instance.Ctor == Object(ctor))
	case *Builtin:
		if ctor.Name == "Error" {
			_, isErr := left.(*ErrorObject)
			return nativeBool(isErr)
		}
		if ctor.Name == "Promise" {
			_, isPromise := left.(*Promise)
			return nativeBool(isPromise)
		}
		instance, ok := left.(*PlainObject)
		if !ok {
			return FALSE
		}
		return nativeBool(instance.Ctor == Object(ctor))
	}
	return newError("NotCallable", "right side of 'instanceof' is not a constructor")
}

func (e *Evaluator) evalLogicalExpression(n *ast.LogicalExpression, env *Environment, ev evalFn) Object {
	left := ev(n.Left, env)
	if isSignal(left) {
		return left
	}
	switch n.Operator {
	case "&&":
		if !IsTruthy(left) {
			return left
		}
	case "||":
		if IsTruthy(left) {
			return left
		}
	case "??":
		if left != NULL && left != UNDEFINED {
			return left
		}
	default:
		return typeError("unknown logical operator '%s'", n.Operator)
	}
	return ev(n.Right, env)
}

func (e *Evaluator) evalUnaryExpression(n *ast.UnaryExpression, env *Environment, ev evalFn) Object {
	if n.Operator == "typeof" {
		// typeof tolerates unbound names.
		if ident, ok := n.Operand.(*ast.Identifier); ok && !env.Has(ident.Value) {
			return &String{Value: "undefined"}
		}
	}
	if n.Operator == "delete" {
		return e.evalDelete(n.Operand, env, ev)
	}

	operand := ev(n.Operand, env)
	if isSignal(operand) {
		return operand
	}
	switch n.Operator {
	case "-":
		return &Number{Value: -ToNumber(operand)}
	case "+":
		return &Number{Value: ToNumber(operand)}
	case "!":
		return nativeBool(!IsTruthy(operand))
	case "~":
		return &Number{Value: float64(^ToInt32(operand))}
	case "typeof":
		return &String{Value: TypeName(operand)}
	case "void":
		return UNDEFINED
	}
	return typeError("unknown unary operator '%s'", n.Operator)
}

func (e *Evaluator) evalDelete(target ast.Expression, env *Environment, ev evalFn) Object {
	member, ok := target.(*ast.MemberExpression)
	if !ok {
		return TRUE // delete of a non-member is a no-op that succeeds
	}
	object := ev(member.Object, env)
	if isSignal(object) {
		return object
	}
	key, sig := e.memberKey(member, env, ev)
	if sig != nil {
		return sig
	}
	switch container := object.(type) {
	case *PlainObject:
		container.Delete(key)
		return TRUE
	case *Array:
		if idx, ok := arrayIndex(key, len(container.Elements)); ok {
			container.Elements[idx] = UNDEFINED
			return TRUE
		}
	}
	return TRUE
}

func (e *Evaluator) evalUpdateExpression(n *ast.UpdateExpression, env *Environment, ev evalFn) Object {
	current := ev(n.Operand, env)
	if isSignal(current) {
		return current
	}

	// An undefined or null target counts from zero. Dialect extension.
	var base float64
	if current == UNDEFINED || current == NULL {
		base = 0
	} else {
		base = ToNumber(current)
	}

	step := 1.0
	if n.Operator == "--" {
		step = -1
	}
	updated := &Number{Value: base + step}

	if sig := e.bindPattern(n.Operand, updated, env, ev, bindAssign, false); sig != nil {
		return sig
	}
	if n.Prefix {
		return updated
	}
	return &Number{Value: base}
}

func (e *Evaluator) evalAssignmentExpression(n *ast.AssignmentExpression, env *Environment, ev evalFn) Object {
	if n.Operator == "=" {
		value := ev(n.Right, env)
		if isSignal(value) {
			return value
		}
		nameFunctionValue(n.Left, value)
		if sig := e.bindPattern(n.Left, value, env, ev, bindAssign, false); sig != nil {
			return sig
		}
		return value
	}

	// Logical assignment short-circuits before evaluating the right side.
	if n.Operator == "&&=" || n.Operator == "||=" || n.Operator == "??=" {
		return e.evalLogicalAssignment(n, env, ev)
	}

	current := ev(n.Left, env)
	if isSignal(current) {
		return current
	}
	right := ev(n.Right, env)
	if isSignal(right) {
		return right
	}
	op := strings.TrimSuffix(n.Operator, "=")
	value := e.applyBinary(op, current, right)
	if isSignal(value) {
		return value
	}
	if sig := e.assignToTarget(n.Left, value, env, ev); sig != nil {
		return sig
	}
	return value
}

func (e *Evaluator) evalLogicalAssignment(n *ast.AssignmentExpression, env *Environment, ev evalFn) Object {
	current := ev(n.Left, env)
	if isSignal(current) {
		return current
	}
	var assign bool
	switch n.Operator {
	case "&&=":
		assign = IsTruthy(current)
	case "||=":
		assign = !IsTruthy(current)
	case "??=":
		assign = current == NULL || current == UNDEFINED
	}
	if !assign {
		return current
	}
	value := ev(n.Right, env)
	if isSignal(value) {
		return value
	}
	if sig := e.assignToTarget(n.Left, value, env, ev); sig != nil {
		return sig
	}
	return value
}

// assignToTarget writes through an identifier or member path. Compound
// forms never create implicit globals; the name must already exist.
func (e *Evaluator) assignToTarget(target ast.Expression, value Object, env *Environment, ev evalFn) Object {
	switch t := target.(type) {
	case *ast.Identifier:
		switch env.Assign(t.Value, value) {
		case AssignConst:
			return newError("ConstReassignment", "assignment to constant '%s'", t.Value)
		case AssignUnbound:
			return newError("UnboundName", "name '%s' is not defined", t.Value)
		}
		return nil
	case *ast.MemberExpression:
		return e.setMemberExpression(t, value, env, ev)
	}
	return syntaxErrorObj("invalid assignment target %T", target)
}

func (e *Evaluator) evalConditionalExpression(n *ast.ConditionalExpression, env *Environment, ev evalFn) Object {
	test := ev(n.Test, env)
	if isSignal(test) {
		return test
	}
	if IsTruthy(test) {
		return ev(n.Consequent, env)
	}
	return ev(n.Alternate, env)
}

func (e *Evaluator) evalSequenceExpression(n *ast.SequenceExpression, env *Environment, ev evalFn) Object {
	var result Object = UNDEFINED
	for _, expr := range n.Expressions {
		result = ev(expr, env)
		if isSignal(result) {
			return result
		}
	}
	return result
}
