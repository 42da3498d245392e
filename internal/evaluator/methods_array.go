package evaluator

import (
	"sort"
	"strings"
)

func arrayMethod(arr *Array, name string) (Object, bool) {
	fn, ok := arrayMethods[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: arr, Method: &Builtin{Name: name, Fn: fn}}, true
}

var (
	arrayMethods     map[string]BuiltinFn
	arrayMethodNames []string
)

func receiverArray(this Object) (*Array, Object) {
	arr, ok := this.(*Array)
	if !ok {
		return nil, typeError("receiver is not an array")
	}
	return arr, nil
}

// Populated in init: the entries call Apply, which reaches back here
// through member lookup, so a declaration-time literal would form an
// initialization cycle.
func init() {
	arrayMethods = map[string]BuiltinFn{
		"push": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			arr.Elements = append(arr.Elements, args...)
			return &Number{Value: float64(len(arr.Elements))}
		},
		"pop": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			if len(arr.Elements) == 0 {
				return UNDEFINED
			}
			last := arr.Elements[len(arr.Elements)-1]
			arr.Elements = arr.Elements[:len(arr.Elements)-1]
			return last
		},
		"shift": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			if len(arr.Elements) == 0 {
				return UNDEFINED
			}
			first := arr.Elements[0]
			arr.Elements = append([]Object(nil), arr.Elements[1:]...)
			return first
		},
		"unshift": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			arr.Elements = append(append([]Object(nil), args...), arr.Elements...)
			return &Number{Value: float64(len(arr.Elements))}
		},
		"slice": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			start := normalizeIndex(argAt(args, 0), len(arr.Elements), 0)
			end := normalizeIndex(argAt(args, 1), len(arr.Elements), len(arr.Elements))
			if start > end {
				return &Array{}
			}
			return &Array{Elements: append([]Object(nil), arr.Elements[start:end]...)}
		},
		"splice": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			start := normalizeIndex(argAt(args, 0), len(arr.Elements), 0)
			deleteCount := len(arr.Elements) - start
			if dc := argAt(args, 1); dc != UNDEFINED {
				deleteCount = toInt(dc)
			}
			if deleteCount < 0 {
				deleteCount = 0
			}
			if start+deleteCount > len(arr.Elements) {
				deleteCount = len(arr.Elements) - start
			}
			removed := append([]Object(nil), arr.Elements[start:start+deleteCount]...)
			var inserted []Object
			if len(args) > 2 {
				inserted = args[2:]
			}
			tail := append([]Object(nil), arr.Elements[start+deleteCount:]...)
			arr.Elements = append(append(arr.Elements[:start], inserted...), tail...)
			return &Array{Elements: removed}
		},
		"indexOf": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			needle := argAt(args, 0)
			for i, el := range arr.Elements {
				if strictEquals(el, needle) {
					return &Number{Value: float64(i)}
				}
			}
			return &Number{Value: -1}
		},
		"includes": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			needle := argAt(args, 0)
			for _, el := range arr.Elements {
				if strictEquals(el, needle) {
					return TRUE
				}
			}
			return FALSE
		},
		"join": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			sep := ","
			if s := argAt(args, 0); s != UNDEFINED {
				sep = ToString(s)
			}
			parts := make([]string, len(arr.Elements))
			for i, el := range arr.Elements {
				if el == NULL || el == UNDEFINED {
					continue
				}
				parts[i] = ToString(el)
			}
			return &String{Value: strings.Join(parts, sep)}
		},
		"concat": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			out := append([]Object(nil), arr.Elements...)
			for _, arg := range args {
				if other, ok := arg.(*Array); ok {
					out = append(out, other.Elements...)
					continue
				}
				out = append(out, arg)
			}
			return &Array{Elements: out}
		},
		"reverse": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			for i, j := 0, len(arr.Elements)-1; i < j; i, j = i+1, j-1 {
				arr.Elements[i], arr.Elements[j] = arr.Elements[j], arr.Elements[i]
			}
			return arr
		},
		"at": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			idx := toInt(argAt(args, 0))
			if idx < 0 {
				idx += len(arr.Elements)
			}
			if idx < 0 || idx >= len(arr.Elements) {
				return UNDEFINED
			}
			return arr.Elements[idx]
		},
		"flat": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			depth := 1
			if d := argAt(args, 0); d != UNDEFINED {
				depth = toInt(d)
			}
			return &Array{Elements: flatten(arr.Elements, depth)}
		},
		"keys": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			out := make([]Object, len(arr.Elements))
			for i := range arr.Elements {
				out[i] = &Number{Value: float64(i)}
			}
			return &Array{Elements: out}
		},
		"values": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			return &Array{Elements: append([]Object(nil), arr.Elements...)}
		},
		"entries": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			out := make([]Object, len(arr.Elements))
			for i, el := range arr.Elements {
				out[i] = &Array{Elements: []Object{&Number{Value: float64(i)}, el}}
			}
			return &Array{Elements: out}
		},

		"map": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			out := make([]Object, len(arr.Elements))
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				out[i] = result
			}
			return &Array{Elements: out}
		},
		"filter": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			var out []Object
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				if IsTruthy(result) {
					out = append(out, el)
				}
			}
			return &Array{Elements: out}
		},
		"forEach": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
			}
			return UNDEFINED
		},
		"reduce": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			start := 0
			var acc Object
			if len(args) > 1 {
				acc = args[1]
			} else {
				if len(arr.Elements) == 0 {
					return typeError("reduce of empty array with no initial value")
				}
				acc = arr.Elements[0]
				start = 1
			}
			for i := start; i < len(arr.Elements); i++ {
				result := e.Apply(callback, UNDEFINED, []Object{acc, arr.Elements[i], &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				acc = result
			}
			return acc
		},
		"find": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				if IsTruthy(result) {
					return el
				}
			}
			return UNDEFINED
		},
		"findIndex": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				if IsTruthy(result) {
					return &Number{Value: float64(i)}
				}
			}
			return &Number{Value: -1}
		},
		"some": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				if IsTruthy(result) {
					return TRUE
				}
			}
			return FALSE
		},
		"every": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			callback := argAt(args, 0)
			for i, el := range arr.Elements {
				result := e.Apply(callback, UNDEFINED, []Object{el, &Number{Value: float64(i)}, arr})
				if isSignal(result) {
					return result
				}
				if !IsTruthy(result) {
					return FALSE
				}
			}
			return TRUE
		},
		"sort": func(e *Evaluator, this Object, args []Object) Object {
			arr, sig := receiverArray(this)
			if sig != nil {
				return sig
			}
			comparator := argAt(args, 0)
			var failed Object
			sort.SliceStable(arr.Elements, func(i, j int) bool {
				if failed != nil {
					return false
				}
				a, b := arr.Elements[i], arr.Elements[j]
				if comparator == UNDEFINED {
					return ToString(a) < ToString(b)
				}
				result := e.Apply(comparator, UNDEFINED, []Object{a, b})
				if isSignal(result) {
					failed = result
					return false
				}
				return ToNumber(result) < 0
			})
			if failed != nil {
				return failed
			}
			return arr
		},
	}
	for name := range arrayMethods {
		arrayMethodNames = append(arrayMethodNames, name)
	}
	sort.Strings(arrayMethodNames)
}

func flatten(elements []Object, depth int) []Object {
	var out []Object
	for _, el := range elements {
		nested, ok := el.(*Array)
		if ok && depth > 0 {
			out = append(out, flatten(nested.Elements, depth-1)...)
			continue
		}
		out = append(out, el)
	}
	return out
}
