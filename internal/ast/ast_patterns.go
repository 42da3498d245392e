package ast

import (
	"github.com/jotlang/jot/internal/token"
)

// ObjectPattern is a destructuring target: { a, b: c, d = 1, ...rest }.
// Rest holds the binding after ..., nil when absent.
type ObjectPattern struct {
	Token      token.Token // the '{' token
	Properties []*PatternProperty
	Rest       Expression
}

func (op *ObjectPattern) expressionNode()      {}
func (op *ObjectPattern) TokenLiteral() string { return op.Token.Lexeme }
func (op *ObjectPattern) GetToken() token.Token {
	if op == nil {
		return token.Token{}
	}
	return op.Token
}

// PatternProperty is one entry of an object pattern. Value is the
// nested binding: an identifier, a sub-pattern, or an
// *AssignmentPattern carrying a default.
type PatternProperty struct {
	Token     token.Token
	Key       Expression
	Value     Expression
	Computed  bool
	Shorthand bool
}

func (pp *PatternProperty) GetToken() token.Token {
	if pp == nil {
		return token.Token{}
	}
	return pp.Token
}

// ArrayPattern is a destructuring target: [a, , [b], ...rest].
// Elements may be nil for holes; Rest holds the binding after ...
type ArrayPattern struct {
	Token    token.Token // the '[' token
	Elements []Expression
	Rest     Expression
}

func (ap *ArrayPattern) expressionNode()      {}
func (ap *ArrayPattern) TokenLiteral() string { return ap.Token.Lexeme }
func (ap *ArrayPattern) GetToken() token.Token {
	if ap == nil {
		return token.Token{}
	}
	return ap.Token
}

// AssignmentPattern wraps a binding with its default value: x = 1
// inside a pattern or parameter list. The default applies only when
// the incoming value is undefined.
type AssignmentPattern struct {
	Token token.Token
	Left  Expression
	Right Expression
}

func (ap *AssignmentPattern) expressionNode()      {}
func (ap *AssignmentPattern) TokenLiteral() string { return ap.Token.Lexeme }
func (ap *AssignmentPattern) GetToken() token.Token {
	if ap == nil {
		return token.Token{}
	}
	return ap.Token
}
