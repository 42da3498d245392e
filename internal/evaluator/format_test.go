package evaluator

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(&String{Value: "bare"}); got != "bare" {
		t.Errorf("string = %q, want bare", got)
	}
	if got := FormatValue(&Number{Value: 2.5}); got != "2.5" {
		t.Errorf("number = %q", got)
	}
	if got := FormatValue(UNDEFINED); got != "undefined" {
		t.Errorf("undefined = %q", got)
	}
}

func TestFormatArgs(t *testing.T) {
	got := FormatArgs([]Object{
		&String{Value: "n"},
		&Number{Value: 1},
		TRUE,
	})
	if got != "n 1 true" {
		t.Errorf("FormatArgs = %q", got)
	}
}
