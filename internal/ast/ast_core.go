package ast

import (
	"github.com/jotlang/jot/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      token.Token // first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// BlockStatement represents { stmt* }.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// VariableDeclaration represents var/let/const with one or more
// declarators: let a = 1, [b, c] = pair
type VariableDeclaration struct {
	Token        token.Token // the var/let/const token
	Kind         string      // "var", "let" or "const"
	Declarations []*VariableDeclarator
}

func (vd *VariableDeclaration) statementNode()       {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// VariableDeclarator is a single name-or-pattern = value pair. Name is
// an *Identifier, *ObjectPattern or *ArrayPattern.
type VariableDeclarator struct {
	Token token.Token
	Name  Expression
	Value Expression // nil when declared without initializer
}

func (vd *VariableDeclarator) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// FunctionDeclaration represents function name(params) { body }.
type FunctionDeclaration struct {
	Token    token.Token // the 'function' token
	Name     *Identifier
	Params   []Expression // identifiers or patterns
	Defaults []Expression // parallel to Params, nil entries = no default
	Rest     Expression   // binding after ..., nil when absent
	Body     *BlockStatement
	Async    bool
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// ClassDeclaration represents class Name extends Super { methods }.
type ClassDeclaration struct {
	Token      token.Token // the 'class' token
	Name       *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (cd *ClassDeclaration) statementNode()       {}
func (cd *ClassDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

type ClassBody struct {
	Token   token.Token // the '{' token
	Methods []*MethodDefinition
}

func (cb *ClassBody) GetToken() token.Token {
	if cb == nil {
		return token.Token{}
	}
	return cb.Token
}

// MethodDefinition is one method in a class body. Kind is "method" or
// "constructor".
type MethodDefinition struct {
	Token    token.Token
	Key      Expression
	Value    *FunctionExpression
	Kind     string
	Static   bool
	Computed bool
}

func (md *MethodDefinition) GetToken() token.Token {
	if md == nil {
		return token.Token{}
	}
	return md.Token
}

// ImportDeclaration represents all import forms:
//
//	import "mod"
//	import def from "mod"
//	import * as ns from "mod"
//	import { a, b as c } from "mod"
//	import def, { a } from "mod"
type ImportDeclaration struct {
	Token      token.Token // the 'import' token
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
}

func (id *ImportDeclaration) statementNode()       {}
func (id *ImportDeclaration) TokenLiteral() string { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// ImportSpecifier binds one exported name into the importing scope.
// Kind is "named", "default" or "namespace".
type ImportSpecifier struct {
	Token    token.Token
	Kind     string
	Imported *Identifier // nil for default/namespace imports
	Local    *Identifier
}

func (is *ImportSpecifier) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// ExportDeclaration represents all export forms:
//
//	export let x = 1            (Declaration set)
//	export function f() {}      (Declaration set)
//	export { a, b as c }        (Specifiers set)
//	export default expr         (Default set, Expression or Declaration)
type ExportDeclaration struct {
	Token       token.Token // the 'export' token
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Default     bool
	Expression  Expression
}

func (ed *ExportDeclaration) statementNode()       {}
func (ed *ExportDeclaration) TokenLiteral() string { return ed.Token.Lexeme }
func (ed *ExportDeclaration) GetToken() token.Token {
	if ed == nil {
		return token.Token{}
	}
	return ed.Token
}

type ExportSpecifier struct {
	Token    token.Token
	Local    *Identifier
	Exported *Identifier
}

func (es *ExportSpecifier) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}
