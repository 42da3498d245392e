package ast

import (
	"github.com/jotlang/jot/internal/token"
)

// IfStatement represents if (cond) cons [else alt]. Alternative is a
// *BlockStatement or a nested *IfStatement (else-if chains).
type IfStatement struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

type WhileStatement struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

type DoWhileStatement struct {
	Token     token.Token // the 'do' token
	Body      *BlockStatement
	Condition Expression
}

func (dws *DoWhileStatement) statementNode()       {}
func (dws *DoWhileStatement) TokenLiteral() string { return dws.Token.Lexeme }
func (dws *DoWhileStatement) GetToken() token.Token {
	if dws == nil {
		return token.Token{}
	}
	return dws.Token
}

// ForStatement represents the classic three-clause loop. Init is a
// *VariableDeclaration or an *ExpressionStatement; any clause may be
// nil.
type ForStatement struct {
	Token  token.Token // the 'for' token
	Init   Statement
	Test   Expression
	Update Expression
	Body   *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// ForInStatement iterates object keys. Left is a *VariableDeclaration
// (fresh binding per iteration) or a bare target expression.
type ForInStatement struct {
	Token token.Token // the 'for' token
	Left  Node
	Right Expression
	Body  *BlockStatement
}

func (fis *ForInStatement) statementNode()       {}
func (fis *ForInStatement) TokenLiteral() string { return fis.Token.Lexeme }
func (fis *ForInStatement) GetToken() token.Token {
	if fis == nil {
		return token.Token{}
	}
	return fis.Token
}

// ForOfStatement iterates values of an iterable.
type ForOfStatement struct {
	Token token.Token // the 'for' token
	Left  Node
	Right Expression
	Body  *BlockStatement
}

func (fos *ForOfStatement) statementNode()       {}
func (fos *ForOfStatement) TokenLiteral() string { return fos.Token.Lexeme }
func (fos *ForOfStatement) GetToken() token.Token {
	if fos == nil {
		return token.Token{}
	}
	return fos.Token
}

type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // nil for bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}

type ThrowStatement struct {
	Token    token.Token // the 'throw' token
	Argument Expression
}

func (ts *ThrowStatement) statementNode()       {}
func (ts *ThrowStatement) TokenLiteral() string { return ts.Token.Lexeme }
func (ts *ThrowStatement) GetToken() token.Token {
	if ts == nil {
		return token.Token{}
	}
	return ts.Token
}

type TryStatement struct {
	Token     token.Token // the 'try' token
	Block     *BlockStatement
	Handler   *CatchClause    // nil when no catch
	Finalizer *BlockStatement // nil when no finally
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Lexeme }
func (ts *TryStatement) GetToken() token.Token {
	if ts == nil {
		return token.Token{}
	}
	return ts.Token
}

// CatchClause binds the thrown value to Param (identifier or pattern;
// nil for a parameterless catch).
type CatchClause struct {
	Token token.Token // the 'catch' token
	Param Expression
	Body  *BlockStatement
}

func (cc *CatchClause) GetToken() token.Token {
	if cc == nil {
		return token.Token{}
	}
	return cc.Token
}

type SwitchStatement struct {
	Token        token.Token // the 'switch' token
	Discriminant Expression
	Cases        []*SwitchCase
}

func (ss *SwitchStatement) statementNode()       {}
func (ss *SwitchStatement) TokenLiteral() string { return ss.Token.Lexeme }
func (ss *SwitchStatement) GetToken() token.Token {
	if ss == nil {
		return token.Token{}
	}
	return ss.Token
}

// SwitchCase is one case clause; Test nil marks the default clause.
type SwitchCase struct {
	Token      token.Token
	Test       Expression
	Consequent []Statement
}

func (sc *SwitchCase) GetToken() token.Token {
	if sc == nil {
		return token.Token{}
	}
	return sc.Token
}
