package evaluator

import "sort"

func objectMethod(obj *PlainObject, name string) (Object, bool) {
	fn, ok := objectMethods[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: obj, Method: &Builtin{Name: name, Fn: fn}}, true
}

var objectMethodNames []string

func init() {
	for name := range objectMethods {
		objectMethodNames = append(objectMethodNames, name)
	}
	sort.Strings(objectMethodNames)
}

var objectMethods = map[string]BuiltinFn{
	"hasOwnProperty": func(e *Evaluator, this Object, args []Object) Object {
		obj, ok := this.(*PlainObject)
		if !ok {
			return FALSE
		}
		return nativeBool(obj.Has(ToString(argAt(args, 0))))
	},
	"toString": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: ToString(this)}
	},
}

func promiseMethod(p *Promise, name string) (Object, bool) {
	fn, ok := promiseMethods[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: p, Method: &Builtin{Name: name, Fn: fn}}, true
}

// Promise combinator methods chain by settling a fresh promise from a
// watcher goroutine; callbacks run on that watcher's strand. Populated
// in init: the entries reach Apply, which reaches back here through
// member lookup, so a declaration-time literal would form an
// initialization cycle.
var promiseMethods map[string]BuiltinFn

func init() {
	promiseMethods = map[string]BuiltinFn{
		"then": func(e *Evaluator, this Object, args []Object) Object {
			return chainPromise(e, this, argAt(args, 0), argAt(args, 1))
		},
		"catch": func(e *Evaluator, this Object, args []Object) Object {
			return chainPromise(e, this, UNDEFINED, argAt(args, 0))
		},
		"finally": func(e *Evaluator, this Object, args []Object) Object {
			promise, ok := this.(*Promise)
			if !ok {
				return typeError("receiver is not a promise")
			}
			callback := argAt(args, 0)
			next := NewPromise()
			strand := e.forStrand()
			go func() {
				result := promise.Await(strand.Ctx)
				if callback != UNDEFINED {
					if out := strand.Apply(callback, UNDEFINED, nil); isThrow(out) {
						next.Reject(out.(*ThrowSignal).Value)
						return
					}
				}
				if thrown, isThrown := result.(*ThrowSignal); isThrown {
					next.Reject(thrown.Value)
					return
				}
				next.Resolve(result)
			}()
			return next
		},
	}
}

func chainPromise(e *Evaluator, this Object, onFulfilled, onRejected Object) Object {
	promise, ok := this.(*Promise)
	if !ok {
		return typeError("receiver is not a promise")
	}
	next := NewPromise()
	strand := e.forStrand()
	go func() {
		result := promise.Await(strand.Ctx)
		if thrown, isThrown := result.(*ThrowSignal); isThrown {
			if onRejected == UNDEFINED {
				next.Reject(thrown.Value)
				return
			}
			settleFromCallback(strand, next, onRejected, thrown.Value)
			return
		}
		if onFulfilled == UNDEFINED {
			next.Resolve(result)
			return
		}
		settleFromCallback(strand, next, onFulfilled, result)
	}()
	return next
}

func settleFromCallback(e *Evaluator, next *Promise, callback Object, arg Object) {
	out := e.Apply(callback, UNDEFINED, []Object{arg})
	if thrown, ok := out.(*ThrowSignal); ok {
		next.Reject(thrown.Value)
		return
	}
	// A returned promise is adopted, not nested.
	if inner, ok := out.(*Promise); ok {
		adopted := inner.Await(e.Ctx)
		if thrown, isThrown := adopted.(*ThrowSignal); isThrown {
			next.Reject(thrown.Value)
			return
		}
		next.Resolve(adopted)
		return
	}
	next.Resolve(out)
}
