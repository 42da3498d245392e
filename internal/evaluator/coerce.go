package evaluator

import (
	"math"
	"strconv"
	"strings"
)

// IsTruthy follows the dialect's boolean coercion: false, 0, NaN, "",
// null and undefined are falsy, everything else truthy.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *Boolean:
		return v.Value
	case *Null, *Undefined:
		return false
	case *Number:
		return v.Value != 0 && !math.IsNaN(v.Value)
	case *String:
		return v.Value != ""
	}
	return true
}

// ToString is the string coercion used by templates, property keys and
// concatenation. It is distinct from Inspect, which quotes strings.
func ToString(obj Object) string {
	switch v := obj.(type) {
	case *String:
		return v.Value
	case *Number:
		return FormatNumber(v.Value)
	case *Boolean:
		if v.Value {
			return "true"
		}
		return "false"
	case *Null:
		return "null"
	case *Undefined:
		return "undefined"
	case *Array:
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			if el == NULL || el == UNDEFINED {
				parts[i] = ""
				continue
			}
			parts[i] = ToString(el)
		}
		return strings.Join(parts, ",")
	}
	return obj.Inspect()
}

// ToNumber is the numeric coercion: booleans map to 0/1, null to 0,
// undefined to NaN, strings parse (empty string is 0), everything else
// is NaN.
func ToNumber(obj Object) float64 {
	switch v := obj.(type) {
	case *Number:
		return v.Value
	case *Boolean:
		if v.Value {
			return 1
		}
		return 0
	case *Null:
		return 0
	case *Undefined:
		return math.NaN()
	case *String:
		trimmed := strings.TrimSpace(v.Value)
		if trimmed == "" {
			return 0
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
		if n, err := strconv.ParseInt(trimmed, 0, 64); err == nil {
			return float64(n)
		}
		return math.NaN()
	case *Array:
		// [] is 0, [x] is ToNumber(x), longer arrays are NaN.
		switch len(v.Elements) {
		case 0:
			return 0
		case 1:
			return ToNumber(v.Elements[0])
		}
		return math.NaN()
	}
	return math.NaN()
}

// ToInt32/ToUint32 implement the bitwise-operator operand conversion.
func ToInt32(obj Object) int32 {
	n := ToNumber(obj)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int32(uint32(int64(n)))
}

func ToUint32(obj Object) uint32 {
	n := ToNumber(obj)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return uint32(int64(n))
}

// strictEquals is ===: no coercion, same variant and same value.
// Reference identity for arrays, objects and callables.
func strictEquals(left, right Object) bool {
	switch l := left.(type) {
	case *Number:
		r, ok := right.(*Number)
		return ok && l.Value == r.Value
	case *String:
		r, ok := right.(*String)
		return ok && l.Value == r.Value
	case *Boolean:
		r, ok := right.(*Boolean)
		return ok && l.Value == r.Value
	case *Null:
		_, ok := right.(*Null)
		return ok
	case *Undefined:
		_, ok := right.(*Undefined)
		return ok
	}
	return left == right
}

// looseEquals is ==: null and undefined equal each other, numbers and
// strings compare numerically, booleans coerce to numbers first.
func looseEquals(left, right Object) bool {
	if strictEquals(left, right) {
		return true
	}

	lNullish := left == NULL || left == UNDEFINED
	rNullish := right == NULL || right == UNDEFINED
	if lNullish || rNullish {
		return lNullish && rNullish
	}

	switch left.(type) {
	case *Number:
		switch right.(type) {
		case *String, *Boolean:
			return numbersEqual(ToNumber(left), ToNumber(right))
		}
	case *String:
		switch right.(type) {
		case *Number, *Boolean:
			return numbersEqual(ToNumber(left), ToNumber(right))
		}
	case *Boolean:
		switch right.(type) {
		case *Number, *String:
			return numbersEqual(ToNumber(left), ToNumber(right))
		}
	}
	return false
}

func numbersEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a == b
}

// toInt truncates toward zero with NaN and infinity mapping to 0,
// keeping Go's float→int conversion off undefined inputs.
func toInt(obj Object) int {
	n := ToNumber(obj)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

// arrayIndex parses key as a non-negative in-range element index.
func arrayIndex(key string, length int) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// arrayIndexForWrite parses key as a non-negative index without an
// upper bound; writes past the end grow the array.
func arrayIndexForWrite(key string) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
