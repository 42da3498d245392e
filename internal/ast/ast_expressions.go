package ast

import (
	"github.com/jotlang/jot/internal/token"
)

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NullLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}

type UndefinedLiteral struct {
	Token token.Token
}

func (ul *UndefinedLiteral) expressionNode()      {}
func (ul *UndefinedLiteral) TokenLiteral() string { return ul.Token.Lexeme }
func (ul *UndefinedLiteral) GetToken() token.Token {
	if ul == nil {
		return token.Token{}
	}
	return ul.Token
}

// TemplateLiteral interleaves text and interpolations:
// Quasis[0] Expressions[0] Quasis[1] ... Quasis[n]. There is always
// one more quasi than expressions.
type TemplateLiteral struct {
	Token       token.Token // the whole template token
	Quasis      []string
	Expressions []Expression
}

func (tl *TemplateLiteral) expressionNode()      {}
func (tl *TemplateLiteral) TokenLiteral() string { return tl.Token.Lexeme }
func (tl *TemplateLiteral) GetToken() token.Token {
	if tl == nil {
		return token.Token{}
	}
	return tl.Token
}

// ArrayLiteral elements may be nil (elisions: [1, , 3]) or
// *SpreadElement entries.
type ArrayLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Lexeme }
func (al *ArrayLiteral) GetToken() token.Token {
	if al == nil {
		return token.Token{}
	}
	return al.Token
}

type ObjectLiteral struct {
	Token      token.Token // the '{' token
	Properties []*Property
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Lexeme }
func (ol *ObjectLiteral) GetToken() token.Token {
	if ol == nil {
		return token.Token{}
	}
	return ol.Token
}

// Property is one object-literal entry. A spread entry ({...src}) has
// Spread set and Key/Value nil. Method marks shorthand methods.
type Property struct {
	Token     token.Token
	Key       Expression
	Value     Expression
	Spread    Expression
	Computed  bool
	Shorthand bool
	Method    bool
}

func (p *Property) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

type SpreadElement struct {
	Token    token.Token // the '...' token
	Argument Expression
}

func (se *SpreadElement) expressionNode()      {}
func (se *SpreadElement) TokenLiteral() string { return se.Token.Lexeme }
func (se *SpreadElement) GetToken() token.Token {
	if se == nil {
		return token.Token{}
	}
	return se.Token
}

type FunctionExpression struct {
	Token    token.Token // the 'function' token
	Name     *Identifier // optional
	Params   []Expression
	Defaults []Expression
	Rest     Expression
	Body     *BlockStatement
	Async    bool
}

func (fe *FunctionExpression) expressionNode()      {}
func (fe *FunctionExpression) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *FunctionExpression) GetToken() token.Token {
	if fe == nil {
		return token.Token{}
	}
	return fe.Token
}

// ArrowFunctionExpression body is a *BlockStatement or a bare
// Expression (implicit return).
type ArrowFunctionExpression struct {
	Token    token.Token // the '=>' token
	Params   []Expression
	Defaults []Expression
	Rest     Expression
	Body     Node
	Async    bool
}

func (af *ArrowFunctionExpression) expressionNode()      {}
func (af *ArrowFunctionExpression) TokenLiteral() string { return af.Token.Lexeme }
func (af *ArrowFunctionExpression) GetToken() token.Token {
	if af == nil {
		return token.Token{}
	}
	return af.Token
}

type ClassExpression struct {
	Token      token.Token // the 'class' token
	Name       *Identifier // optional
	SuperClass Expression
	Body       *ClassBody
}

func (ce *ClassExpression) expressionNode()      {}
func (ce *ClassExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *ClassExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// CallExpression arguments may contain *SpreadElement entries.
// Optional marks ?.() calls.
type CallExpression struct {
	Token     token.Token // the '(' or '?.' token
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

type NewExpression struct {
	Token     token.Token // the 'new' token
	Callee    Expression
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Lexeme }
func (ne *NewExpression) GetToken() token.Token {
	if ne == nil {
		return token.Token{}
	}
	return ne.Token
}

// MemberExpression covers obj.prop, obj[expr] (Computed) and their
// optional-chaining forms (Optional).
type MemberExpression struct {
	Token    token.Token // the '.', '[' or '?.' token
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) TokenLiteral() string { return me.Token.Lexeme }
func (me *MemberExpression) GetToken() token.Token {
	if me == nil {
		return token.Token{}
	}
	return me.Token
}

type BinaryExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}

// LogicalExpression is kept separate from BinaryExpression because
// &&, || and ?? short-circuit.
type LogicalExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (le *LogicalExpression) expressionNode()      {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Lexeme }
func (le *LogicalExpression) GetToken() token.Token {
	if le == nil {
		return token.Token{}
	}
	return le.Token
}

type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Lexeme }
func (ue *UnaryExpression) GetToken() token.Token {
	if ue == nil {
		return token.Token{}
	}
	return ue.Token
}

type UpdateExpression struct {
	Token    token.Token // the '++' or '--' token
	Operator string
	Operand  Expression
	Prefix   bool
}

func (ue *UpdateExpression) expressionNode()      {}
func (ue *UpdateExpression) TokenLiteral() string { return ue.Token.Lexeme }
func (ue *UpdateExpression) GetToken() token.Token {
	if ue == nil {
		return token.Token{}
	}
	return ue.Token
}

// AssignmentExpression covers = and every compound form. Left is an
// identifier, member expression, or array/object literal reused as a
// destructuring target.
type AssignmentExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ae *AssignmentExpression) expressionNode()      {}
func (ae *AssignmentExpression) TokenLiteral() string { return ae.Token.Lexeme }
func (ae *AssignmentExpression) GetToken() token.Token {
	if ae == nil {
		return token.Token{}
	}
	return ae.Token
}

type ConditionalExpression struct {
	Token      token.Token // the '?' token
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (ce *ConditionalExpression) expressionNode()      {}
func (ce *ConditionalExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *ConditionalExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// SequenceExpression evaluates left to right, yielding the last value.
type SequenceExpression struct {
	Token       token.Token
	Expressions []Expression
}

func (se *SequenceExpression) expressionNode()      {}
func (se *SequenceExpression) TokenLiteral() string { return se.Token.Lexeme }
func (se *SequenceExpression) GetToken() token.Token {
	if se == nil {
		return token.Token{}
	}
	return se.Token
}

type ThisExpression struct {
	Token token.Token
}

func (te *ThisExpression) expressionNode()      {}
func (te *ThisExpression) TokenLiteral() string { return te.Token.Lexeme }
func (te *ThisExpression) GetToken() token.Token {
	if te == nil {
		return token.Token{}
	}
	return te.Token
}

// SuperExpression appears as super.m() or super(...); the evaluator
// resolves it against the enclosing method's class.
type SuperExpression struct {
	Token token.Token
}

func (se *SuperExpression) expressionNode()      {}
func (se *SuperExpression) TokenLiteral() string { return se.Token.Lexeme }
func (se *SuperExpression) GetToken() token.Token {
	if se == nil {
		return token.Token{}
	}
	return se.Token
}

type AwaitExpression struct {
	Token    token.Token // the 'await' token
	Argument Expression
}

func (ae *AwaitExpression) expressionNode()      {}
func (ae *AwaitExpression) TokenLiteral() string { return ae.Token.Lexeme }
func (ae *AwaitExpression) GetToken() token.Token {
	if ae == nil {
		return token.Token{}
	}
	return ae.Token
}
