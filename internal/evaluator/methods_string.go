package evaluator

import (
	"math"
	"sort"
	"strings"
)

// argAt fetches a positional argument, undefined when absent.
func argAt(args []Object, i int) Object {
	if i < len(args) {
		return args[i]
	}
	return UNDEFINED
}

func stringMethod(s *String, name string) (Object, bool) {
	fn, ok := stringMethods[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: s, Method: &Builtin{Name: name, Fn: fn}}, true
}

var stringMethodNames []string

func init() {
	for name := range stringMethods {
		stringMethodNames = append(stringMethodNames, name)
	}
	sort.Strings(stringMethodNames)
}

func receiverString(this Object) string {
	if s, ok := this.(*String); ok {
		return s.Value
	}
	return ToString(this)
}

// normalizeIndex clamps a possibly negative index against length.
func normalizeIndex(value Object, length int, dflt int) int {
	if value == UNDEFINED {
		return dflt
	}
	n := ToNumber(value)
	if math.IsNaN(n) {
		return 0
	}
	idx := int(n)
	if idx < 0 {
		idx += length
	}
	if idx < 0 {
		idx = 0
	}
	if idx > length {
		idx = length
	}
	return idx
}

var stringMethods = map[string]BuiltinFn{
	"charAt": func(e *Evaluator, this Object, args []Object) Object {
		runes := []rune(receiverString(this))
		idx := toInt(argAt(args, 0))
		if idx < 0 || idx >= len(runes) {
			return &String{Value: ""}
		}
		return &String{Value: string(runes[idx])}
	},
	"charCodeAt": func(e *Evaluator, this Object, args []Object) Object {
		runes := []rune(receiverString(this))
		idx := toInt(argAt(args, 0))
		if idx < 0 || idx >= len(runes) {
			return &Number{Value: math.NaN()}
		}
		return &Number{Value: float64(runes[idx])}
	},
	"at": func(e *Evaluator, this Object, args []Object) Object {
		runes := []rune(receiverString(this))
		idx := toInt(argAt(args, 0))
		if idx < 0 {
			idx += len(runes)
		}
		if idx < 0 || idx >= len(runes) {
			return UNDEFINED
		}
		return &String{Value: string(runes[idx])}
	},
	"toUpperCase": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: strings.ToUpper(receiverString(this))}
	},
	"toLowerCase": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: strings.ToLower(receiverString(this))}
	},
	"trim": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: strings.TrimSpace(receiverString(this))}
	},
	"split": func(e *Evaluator, this Object, args []Object) Object {
		value := receiverString(this)
		sep := argAt(args, 0)
		if sep == UNDEFINED {
			return &Array{Elements: []Object{&String{Value: value}}}
		}
		parts := strings.Split(value, ToString(sep))
		elements := make([]Object, len(parts))
		for i, part := range parts {
			elements[i] = &String{Value: part}
		}
		return &Array{Elements: elements}
	},
	"replace": func(e *Evaluator, this Object, args []Object) Object {
		value := receiverString(this)
		old := ToString(argAt(args, 0))
		return &String{Value: strings.Replace(value, old, ToString(argAt(args, 1)), 1)}
	},
	"replaceAll": func(e *Evaluator, this Object, args []Object) Object {
		value := receiverString(this)
		old := ToString(argAt(args, 0))
		return &String{Value: strings.ReplaceAll(value, old, ToString(argAt(args, 1)))}
	},
	"startsWith": func(e *Evaluator, this Object, args []Object) Object {
		return nativeBool(strings.HasPrefix(receiverString(this), ToString(argAt(args, 0))))
	},
	"endsWith": func(e *Evaluator, this Object, args []Object) Object {
		return nativeBool(strings.HasSuffix(receiverString(this), ToString(argAt(args, 0))))
	},
	"padStart": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: padString(receiverString(this), args, true)}
	},
	"padEnd": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: padString(receiverString(this), args, false)}
	},
	"repeat": func(e *Evaluator, this Object, args []Object) Object {
		count := toInt(argAt(args, 0))
		if count < 0 {
			return rangeError("repeat count must be non-negative")
		}
		return &String{Value: strings.Repeat(receiverString(this), count)}
	},
	"substring": func(e *Evaluator, this Object, args []Object) Object {
		runes := []rune(receiverString(this))
		start := normalizeNonNegative(argAt(args, 0), len(runes), 0)
		end := normalizeNonNegative(argAt(args, 1), len(runes), len(runes))
		if start > end {
			start, end = end, start
		}
		return &String{Value: string(runes[start:end])}
	},
	"slice": func(e *Evaluator, this Object, args []Object) Object {
		runes := []rune(receiverString(this))
		start := normalizeIndex(argAt(args, 0), len(runes), 0)
		end := normalizeIndex(argAt(args, 1), len(runes), len(runes))
		if start > end {
			return &String{Value: ""}
		}
		return &String{Value: string(runes[start:end])}
	},
	"indexOf": func(e *Evaluator, this Object, args []Object) Object {
		idx := strings.Index(receiverString(this), ToString(argAt(args, 0)))
		return &Number{Value: float64(idx)}
	},
	"includes": func(e *Evaluator, this Object, args []Object) Object {
		return nativeBool(strings.Contains(receiverString(this), ToString(argAt(args, 0))))
	},
	"concat": func(e *Evaluator, this Object, args []Object) Object {
		var sb strings.Builder
		sb.WriteString(receiverString(this))
		for _, arg := range args {
			sb.WriteString(ToString(arg))
		}
		return &String{Value: sb.String()}
	},
}

// normalizeNonNegative is the substring-style index clamp: negatives
// become 0 instead of counting from the end.
func normalizeNonNegative(value Object, length, dflt int) int {
	if value == UNDEFINED {
		return dflt
	}
	n := ToNumber(value)
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	idx := int(n)
	if idx > length {
		return length
	}
	return idx
}

func padString(value string, args []Object, start bool) string {
	target := toInt(argAt(args, 0))
	pad := " "
	if p := argAt(args, 1); p != UNDEFINED {
		pad = ToString(p)
	}
	if pad == "" || len([]rune(value)) >= target {
		return value
	}
	need := target - len([]rune(value))
	var sb strings.Builder
	padRunes := []rune(pad)
	for i := 0; i < need; i++ {
		sb.WriteRune(padRunes[i%len(padRunes)])
	}
	if start {
		return sb.String() + value
	}
	return value + sb.String()
}

func numberMethod(n *Number, name string) (Object, bool) {
	fn, ok := numberMethods[name]
	if !ok {
		return nil, false
	}
	return &BoundMethod{Receiver: n, Method: &Builtin{Name: name, Fn: fn}}, true
}

var numberMethodNames []string

func init() {
	for name := range numberMethods {
		numberMethodNames = append(numberMethodNames, name)
	}
	sort.Strings(numberMethodNames)
}

var numberMethods = map[string]BuiltinFn{
	"toFixed": func(e *Evaluator, this Object, args []Object) Object {
		digits := toInt(argAt(args, 0))
		if digits < 0 || digits > 100 {
			return rangeError("toFixed() digits out of range")
		}
		return &String{Value: strconvFormat(ToNumber(this), digits)}
	},
	"toString": func(e *Evaluator, this Object, args []Object) Object {
		return &String{Value: FormatNumber(ToNumber(this))}
	},
}
