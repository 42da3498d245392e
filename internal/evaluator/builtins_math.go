package evaluator

import (
	"math"
	"math/rand"
)

func mathNamespace() *PlainObject {
	unary := func(fn func(float64) float64) BuiltinFn {
		return func(e *Evaluator, this Object, args []Object) Object {
			return &Number{Value: fn(ToNumber(argAt(args, 0)))}
		}
	}
	return namespace([]namespaceEntry{
		{name: "PI", value: &Number{Value: math.Pi}},
		{name: "E", value: &Number{Value: math.E}},

		{name: "abs", fn: unary(math.Abs)},
		{name: "floor", fn: unary(math.Floor)},
		{name: "ceil", fn: unary(math.Ceil)},
		{name: "round", fn: unary(math.Round)},
		{name: "trunc", fn: unary(math.Trunc)},
		{name: "sqrt", fn: unary(math.Sqrt)},
		{name: "sign", fn: unary(func(n float64) float64 {
			switch {
			case math.IsNaN(n):
				return math.NaN()
			case n > 0:
				return 1
			case n < 0:
				return -1
			}
			return n
		})},
		{name: "pow", fn: func(e *Evaluator, this Object, args []Object) Object {
			return &Number{Value: math.Pow(ToNumber(argAt(args, 0)), ToNumber(argAt(args, 1)))}
		}},
		{name: "min", fn: func(e *Evaluator, this Object, args []Object) Object {
			return mathFold(args, math.Inf(1), math.Min)
		}},
		{name: "max", fn: func(e *Evaluator, this Object, args []Object) Object {
			return mathFold(args, math.Inf(-1), math.Max)
		}},
		{name: "random", fn: func(e *Evaluator, this Object, args []Object) Object {
			return &Number{Value: rand.Float64()}
		}},
	})
}

func mathFold(args []Object, start float64, fold func(float64, float64) float64) Object {
	acc := start
	for _, arg := range args {
		n := ToNumber(arg)
		if math.IsNaN(n) {
			return &Number{Value: math.NaN()}
		}
		acc = fold(acc, n)
	}
	return &Number{Value: acc}
}
