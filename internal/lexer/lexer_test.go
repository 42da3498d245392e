package lexer

import (
	"testing"

	"github.com/jotlang/jot/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
const name = "jot";
if (five >= 5 && five !== 6) { five++; }
x ??= y?.z ?? [1, 2.5, 0xff];
async () => await p;
a **= 2 >>> 1;`

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.CONST, "const"},
		{token.IDENT, "name"},
		{token.ASSIGN, "="},
		{token.STRING, `"jot"`},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.GT_EQ, ">="},
		{token.NUMBER, "5"},
		{token.AND, "&&"},
		{token.IDENT, "five"},
		{token.STRICT_NOT_EQ, "!=="},
		{token.NUMBER, "6"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "five"},
		{token.INC, "++"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.IDENT, "x"},
		{token.NULLISH_ASSIGN, "??="},
		{token.IDENT, "y"},
		{token.OPT_CHAIN, "?."},
		{token.IDENT, "z"},
		{token.NULLISH, "??"},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "2.5"},
		{token.COMMA, ","},
		{token.NUMBER, "0xff"},
		{token.RBRACKET, "]"},
		{token.SEMICOLON, ";"},
		{token.ASYNC, "async"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.ARROW, "=>"},
		{token.AWAIT, "await"},
		{token.IDENT, "p"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "a"},
		{token.POWER_ASSIGN, "**="},
		{token.NUMBER, "2"},
		{token.URSHIFT, ">>>"},
		{token.NUMBER, "1"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.typ {
			t.Fatalf("token %d: type = %q, want %q (literal %q)", i, tok.Type, want.typ, tok.Lexeme)
		}
		if tok.Lexeme != want.literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Lexeme, want.literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`'single \' quote'`, "single ' quote"},
		{`"AB"`, "AB"},
		{`"\x41"`, "A"},
		{`"back\\slash"`, `back\slash`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != token.STRING {
				t.Fatalf("type = %q, want STRING", tok.Type)
			}
			if tok.Literal != tt.want {
				t.Errorf("decoded = %q, want %q", tok.Literal, tt.want)
			}
		})
	}
}

func TestNumberForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"0x1F", "0x1F"},
		{"0b101", "0b101"},
		{"0o17", "0o17"},
		{"1e3", "1e3"},
		{"2.5e-2", "2.5e-2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			if tok.Type != token.NUMBER {
				t.Fatalf("type = %q, want NUMBER", tok.Type)
			}
			if tok.Lexeme != tt.want {
				t.Errorf("literal = %q, want %q", tok.Lexeme, tt.want)
			}
		})
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "a // line comment\n/* block\ncomment */ b"
	l := New(input)

	first := l.NextToken()
	second := l.NextToken()
	if first.Lexeme != "a" || second.Lexeme != "b" {
		t.Fatalf("got %q then %q, want a then b", first.Lexeme, second.Lexeme)
	}
	if second.Line != 3 {
		t.Errorf("b on line %d, want 3", second.Line)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("let x\nreturn")
	lt := l.NextToken()
	if lt.Line != 1 || lt.Column != 1 {
		t.Errorf("let at %d:%d, want 1:1", lt.Line, lt.Column)
	}
	l.NextToken() // x
	rt := l.NextToken()
	if rt.Line != 2 {
		t.Errorf("return on line %d, want 2", rt.Line)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("let @ = 1")
	l.NextToken()
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %q, want ILLEGAL", tok.Type)
	}
}
