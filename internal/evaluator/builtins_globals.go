package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/jotlang/jot/internal/config"
)

func registerGlobals(env *Environment) {
	env.Define("undefined", UNDEFINED, true)
	env.Define("NaN", &Number{Value: math.NaN()}, true)
	env.Define("Infinity", &Number{Value: math.Inf(1)}, true)

	simple := func(name string, fn BuiltinFn) {
		env.Define(name, &Builtin{Name: name, Fn: fn}, false)
	}

	simple("parseInt", func(e *Evaluator, this Object, args []Object) Object {
		text := strings.TrimSpace(ToString(argAt(args, 0)))
		base := 10
		if b := argAt(args, 1); b != UNDEFINED {
			base = toInt(b)
		}
		if base == 16 {
			text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
		}
		// Longest valid prefix wins, like the dialect's parseInt.
		end := 0
		if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
			end = 1
		}
		for end < len(text) {
			if _, err := strconv.ParseInt(text[:end+1], base, 64); err != nil {
				break
			}
			end++
		}
		n, err := strconv.ParseInt(text[:end], base, 64)
		if err != nil {
			return &Number{Value: math.NaN()}
		}
		return &Number{Value: float64(n)}
	})

	simple("parseFloat", func(e *Evaluator, this Object, args []Object) Object {
		text := strings.TrimSpace(ToString(argAt(args, 0)))
		end := 0
		for end < len(text) {
			if _, err := strconv.ParseFloat(text[:end+1], 64); err != nil {
				break
			}
			end++
		}
		if end == 0 {
			return &Number{Value: math.NaN()}
		}
		n, err := strconv.ParseFloat(text[:end], 64)
		if err != nil {
			return &Number{Value: math.NaN()}
		}
		return &Number{Value: n}
	})

	simple("isNaN", func(e *Evaluator, this Object, args []Object) Object {
		return nativeBool(math.IsNaN(ToNumber(argAt(args, 0))))
	})
	simple("isFinite", func(e *Evaluator, this Object, args []Object) Object {
		n := ToNumber(argAt(args, 0))
		return nativeBool(!math.IsNaN(n) && !math.IsInf(n, 0))
	})

	simple("String", func(e *Evaluator, this Object, args []Object) Object {
		if len(args) == 0 {
			return &String{Value: ""}
		}
		return &String{Value: ToString(args[0])}
	})
	simple("Number", func(e *Evaluator, this Object, args []Object) Object {
		if len(args) == 0 {
			return &Number{Value: 0}
		}
		return &Number{Value: ToNumber(args[0])}
	})
	simple("Boolean", func(e *Evaluator, this Object, args []Object) Object {
		return nativeBool(IsTruthy(argAt(args, 0)))
	})

	env.Define(config.PromiseGlobalName, promiseBuiltin(), false)
	env.Define(config.ErrorGlobalName, errorBuiltin("Error"), false)
	env.Define("TypeError", errorBuiltin("TypeError"), false)
	env.Define("RangeError", errorBuiltin("RangeError"), false)

	// print is console.log under another name.
	env.Define(config.PrintFuncName, &Builtin{Name: config.PrintFuncName, Fn: func(e *Evaluator, this Object, args []Object) Object {
		printLine(e, args)
		return UNDEFINED
	}}, false)
}

func printLine(e *Evaluator, args []Object) {
	out := FormatArgs(args)
	if _, err := e.Out.Write([]byte(out + "\n")); err != nil {
		_ = err // output errors are not script failures
	}
}

// promiseBuiltin is the Promise global: executor construction plus the
// resolve/reject/all statics.
func promiseBuiltin() *Builtin {
	construct := func(e *Evaluator, this Object, args []Object) Object {
		executor := argAt(args, 0)
		promise := NewPromise()
		resolve := &Builtin{Name: "resolve", Fn: func(e *Evaluator, this Object, args []Object) Object {
			promise.Resolve(argAt(args, 0))
			return UNDEFINED
		}}
		reject := &Builtin{Name: "reject", Fn: func(e *Evaluator, this Object, args []Object) Object {
			promise.Reject(argAt(args, 0))
			return UNDEFINED
		}}
		result := e.Apply(executor, UNDEFINED, []Object{resolve, reject})
		if thrown, ok := result.(*ThrowSignal); ok {
			promise.Reject(thrown.Value)
		}
		return promise
	}

	return &Builtin{
		Name: "Promise",
		Fn: func(e *Evaluator, this Object, args []Object) Object {
			return typeError("Promise constructor requires 'new'")
		},
		Construct: construct,
		Props: map[string]Object{
			"resolve": &Builtin{Name: "resolve", Fn: func(e *Evaluator, this Object, args []Object) Object {
				value := argAt(args, 0)
				if promise, ok := value.(*Promise); ok {
					return promise
				}
				return ResolvedPromise(value)
			}},
			"reject": &Builtin{Name: "reject", Fn: func(e *Evaluator, this Object, args []Object) Object {
				return RejectedPromise(argAt(args, 0))
			}},
			"all": &Builtin{Name: "all", Fn: func(e *Evaluator, this Object, args []Object) Object {
				sources, ok := iterableElements(argAt(args, 0))
				if !ok {
					return newError("NotIterable", "Promise.all source is not iterable")
				}
				items := append([]Object(nil), sources...)
				combined := NewPromise()
				strand := e.forStrand()
				go func() {
					results := make([]Object, len(items))
					for i, item := range items {
						promise, isPromise := item.(*Promise)
						if !isPromise {
							results[i] = item
							continue
						}
						settled := promise.Await(strand.Ctx)
						if thrown, isThrown := settled.(*ThrowSignal); isThrown {
							combined.Reject(thrown.Value)
							return
						}
						results[i] = settled
					}
					combined.Resolve(&Array{Elements: results})
				}()
				return combined
			}},
		},
	}
}

func errorBuiltin(kind string) *Builtin {
	build := func(e *Evaluator, this Object, args []Object) Object {
		message := ""
		if m := argAt(args, 0); m != UNDEFINED {
			message = ToString(m)
		}
		return &ErrorObject{Kind: kind, Message: message}
	}
	return &Builtin{Name: kind, Fn: build, Construct: build}
}
