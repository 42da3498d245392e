package evaluator

import (
	"math"
	"strconv"
	"strings"
)

// strconvFormat renders a number with a fixed number of fraction
// digits, the toFixed contract.
func strconvFormat(value float64, digits int) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	if math.IsInf(value, 1) {
		return "Infinity"
	}
	if math.IsInf(value, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(value, 'f', digits, 64)
}

// FormatValue renders an object the way console.log shows it: strings
// bare at the top level, everything else via Inspect.
func FormatValue(obj Object) string {
	if s, ok := obj.(*String); ok {
		return s.Value
	}
	return obj.Inspect()
}

// FormatArgs joins console arguments with single spaces.
func FormatArgs(args []Object) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = FormatValue(arg)
	}
	return strings.Join(parts, " ")
}
