package lexer

import (
	"github.com/jotlang/jot/internal/token"
)

// TokenStream buffers lexer output so the parser can look arbitrarily
// far ahead (arrow-function detection needs to scan past a whole
// parameter list). Once the lexer reaches EOF, Peek pads with EOF
// tokens instead of blocking.
type TokenStream struct {
	lexer  *Lexer
	buffer []token.Token
	done   bool
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

// Next consumes and returns the next token.
func (ts *TokenStream) Next() token.Token {
	if len(ts.buffer) > 0 {
		tok := ts.buffer[0]
		ts.buffer = ts.buffer[1:]
		return tok
	}
	return ts.read()
}

// Peek returns the next n tokens without consuming them.
func (ts *TokenStream) Peek(n int) []token.Token {
	for len(ts.buffer) < n {
		ts.buffer = append(ts.buffer, ts.read())
	}
	return ts.buffer[:n]
}

// PeekAt returns the single token n positions ahead (0 = next token).
func (ts *TokenStream) PeekAt(n int) token.Token {
	return ts.Peek(n + 1)[n]
}

func (ts *TokenStream) read() token.Token {
	if ts.done {
		return token.Token{Type: token.EOF, Line: ts.lexer.line, Column: ts.lexer.column}
	}
	tok := ts.lexer.NextToken()
	if tok.Type == token.EOF {
		ts.done = true
	}
	return tok
}
