package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case token.ASYNC:
		if p.peekTokenIs(token.FUNCTION) {
			p.nextToken()
			return p.parseFunctionDeclaration(true)
		}
		return p.parseExpressionStatement()
	case token.CLASS:
		if p.peekTokenIs(token.IDENT) {
			return p.parseClassDeclaration()
		}
		return p.parseExpressionStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.IMPORT:
		return p.parseImportDeclaration()
	case token.EXPORT:
		return p.parseExportDeclaration()
	case token.LBRACE:
		// A brace in statement position opens a block, never an
		// object literal.
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseBlockStatement parses { stmt* }; curToken starts on '{' and
// ends on the matching '}'.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return block
}

// parseBlockOrSingle accepts either a braced block or a single
// statement, wrapping the latter in a synthetic block so the evaluator
// only ever sees blocks as bodies.
func (p *Parser) parseBlockOrSingle() *ast.BlockStatement {
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		return p.parseBlockStatement()
	}
	p.nextToken()
	tok := p.curToken
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return &ast.BlockStatement{Token: tok, Statements: []ast.Statement{stmt}}
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	decl := &ast.VariableDeclaration{
		Token: p.curToken,
		Kind:  p.curToken.Lexeme,
	}

	for {
		p.nextToken()
		d := p.parseVariableDeclarator()
		if d == nil {
			return nil
		}
		decl.Declarations = append(decl.Declarations, d)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return decl
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	d := &ast.VariableDeclarator{Token: p.curToken}
	d.Name = p.parseBindingTarget()
	if d.Name == nil {
		return nil
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		d.Value = p.parseExpression(LOWEST)
		if d.Value == nil {
			return nil
		}
	}
	return d
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	fd := &ast.FunctionDeclaration{Token: p.curToken, Async: async}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fd.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, defaults, rest, ok := p.parseFunctionParams()
	if !ok {
		return nil
	}
	fd.Params, fd.Defaults, fd.Rest = params, defaults, rest

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fd.Body = p.parseBlockStatement()
	if fd.Body == nil {
		return nil
	}
	return fd
}

// parseFunctionParams parses a parameter list up to and including the
// closing ')'. Each parameter is an identifier or a destructuring
// pattern; defaults live in a parallel slice (nil = no default) and a
// trailing ...rest binds the remaining arguments.
func (p *Parser) parseFunctionParams() (params, defaults []ast.Expression, rest ast.Expression, ok bool) {
	for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()

		if p.curTokenIs(token.ELLIPSIS) {
			if rest != nil {
				p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
					diagnostics.ErrP003, p.curToken,
					"only one rest parameter is allowed",
				))
				return nil, nil, nil, false
			}
			p.nextToken()
			rest = p.parseBindingTarget()
			if rest == nil {
				return nil, nil, nil, false
			}
		} else {
			target := p.parseBindingTarget()
			if target == nil {
				return nil, nil, nil, false
			}
			var def ast.Expression
			if p.peekTokenIs(token.ASSIGN) {
				p.nextToken()
				p.nextToken()
				def = p.parseExpression(LOWEST)
				if def == nil {
					return nil, nil, nil, false
				}
			}
			params = append(params, target)
			defaults = append(defaults, def)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, nil, nil, false
	}
	return params, defaults, rest, true
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	super, body := p.parseClassTail()
	if body == nil {
		return nil
	}
	return &ast.ClassDeclaration{Token: tok, Name: name, SuperClass: super, Body: body}
}

// parseClassTail parses the optional `extends Expr` clause and the
// class body. curToken ends on the closing '}'.
func (p *Parser) parseClassTail() (ast.Expression, *ast.ClassBody) {
	var super ast.Expression
	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		p.nextToken()
		super = p.parseExpression(UNARY)
		if super == nil {
			return nil, nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil, nil
	}
	body := &ast.ClassBody{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		method := p.parseMethodDefinition()
		if method == nil {
			return nil, nil
		}
		body.Methods = append(body.Methods, method)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil, nil
	}
	return super, body
}

func (p *Parser) parseMethodDefinition() *ast.MethodDefinition {
	md := &ast.MethodDefinition{Token: p.curToken, Kind: "method"}

	// `static` and `async` are contextual modifiers: they only modify
	// when not immediately followed by '(' (which would make them the
	// method name itself).
	if p.curTokenIs(token.IDENT) && p.curToken.Lexeme == "static" && !p.peekTokenIs(token.LPAREN) {
		md.Static = true
		p.nextToken()
	}
	isAsync := false
	if p.curTokenIs(token.ASYNC) && !p.peekTokenIs(token.LPAREN) {
		isAsync = true
		p.nextToken()
	}

	fnTok := p.curToken
	switch {
	case p.curTokenIs(token.LBRACKET):
		md.Computed = true
		p.nextToken()
		md.Key = p.parseExpression(LOWEST)
		if md.Key == nil || !p.expectPeek(token.RBRACKET) {
			return nil
		}
	case p.curTokenIs(token.IDENT) || token.IsKeyword(p.curToken.Type):
		md.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case p.curTokenIs(token.STRING):
		md.Key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
	default:
		p.noPrefixParseFnError(p.curToken)
		return nil
	}

	if ident, isIdent := md.Key.(*ast.Identifier); isIdent && ident.Value == "constructor" && !md.Static {
		md.Kind = "constructor"
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, defaults, rest, ok := p.parseFunctionParams()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}

	md.Value = &ast.FunctionExpression{
		Token:    fnTok,
		Params:   params,
		Defaults: defaults,
		Rest:     rest,
		Body:     body,
		Async:    isAsync,
	}
	return md
}
