package diagnostics

import "testing"

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"countr", []string{"counter", "count", "other"}, "counter"},
		{"lenght", []string{"length", "width"}, "length"},
		{"x", []string{"y"}, "y"},
		{"completely", []string{"different", "words"}, ""},
		{"name", []string{}, ""},
		// An exact match is not a suggestion.
		{"push", []string{"push"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.name, tt.candidates); got != tt.want {
				t.Errorf("Suggest(%q, %v) = %q, want %q", tt.name, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "ab", 2},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := NewRuntimeError("TypeError", "bad value", "app.jot", 7)
	want := "app.jot:7: [R001] uncaught TypeError: bad value"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := NewRuntimeError("", "thrown string", "", 0)
	if got := bare.Error(); got != "[R001] uncaught: thrown string" {
		t.Errorf("Error() = %q", got)
	}
}
