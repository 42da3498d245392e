package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Consequence = p.parseBlockOrSingle()
	if stmt.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			stmt.Alternative = p.parseIfStatement()
		} else {
			stmt.Alternative = p.parseBlockOrSingle()
		}
		if stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBlockOrSingle()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	stmt := &ast.DoWhileStatement{Token: p.curToken}

	stmt.Body = p.parseBlockOrSingle()
	if stmt.Body == nil {
		return nil
	}

	if !p.expectPeek(token.WHILE) || !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseForStatement disambiguates the three for-forms. It commits to
// for-in/for-of as soon as the head's binding is followed by `in` or
// `of`; otherwise it falls through to the classic three-clause loop.
func (p *Parser) parseForStatement() ast.Statement {
	forTok := p.curToken

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	var init ast.Statement

	switch {
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken() // empty init, cur on ';'

	case p.peekTokenIs(token.VAR) || p.peekTokenIs(token.LET) || p.peekTokenIs(token.CONST):
		p.nextToken()
		kwTok := p.curToken
		kind := p.curToken.Lexeme

		p.nextToken()
		target := p.parseBindingTarget()
		if target == nil {
			return nil
		}
		decl := &ast.VariableDeclaration{
			Token: kwTok,
			Kind:  kind,
			Declarations: []*ast.VariableDeclarator{
				{Token: kwTok, Name: target},
			},
		}

		if p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF) {
			return p.parseForInOfTail(forTok, decl)
		}

		// Classic loop: finish the declaration (initializer, extra
		// declarators) with `in` demoted so it cannot be mistaken for
		// a membership operator.
		p.noIn = true
		defer func() { p.noIn = false }()

		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			decl.Declarations[0].Value = p.parseExpression(LOWEST)
			if decl.Declarations[0].Value == nil {
				return nil
			}
		}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			d := p.parseVariableDeclarator()
			if d == nil {
				return nil
			}
			decl.Declarations = append(decl.Declarations, d)
		}
		init = decl
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}

	default:
		p.nextToken()
		p.noIn = true
		expr := p.parseExpression(LOWEST)
		p.noIn = false
		if expr == nil {
			return nil
		}
		if p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF) {
			return p.parseForInOfTail(forTok, p.toAssignTarget(expr))
		}
		init = &ast.ExpressionStatement{Token: forTok, Expression: expr}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}

	stmt := &ast.ForStatement{Token: forTok, Init: init}

	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Test = p.parseExpression(LOWEST)
		if stmt.Test == nil {
			return nil
		}
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		stmt.Update = p.parseExpression(LOWEST)
		if stmt.Update == nil {
			return nil
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBlockOrSingle()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForInOfTail finishes a for-in or for-of once the head's left
// side is known. curToken sits just before the in/of keyword.
func (p *Parser) parseForInOfTail(forTok token.Token, left ast.Node) ast.Statement {
	if left == nil {
		return nil
	}
	p.nextToken()
	isOf := p.curTokenIs(token.OF)

	p.nextToken()
	right := p.parseExpression(LOWEST)
	if right == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}

	body := p.parseBlockOrSingle()
	if body == nil {
		return nil
	}

	if isOf {
		return &ast.ForOfStatement{Token: forTok, Left: left, Right: right, Body: body}
	}
	return &ast.ForInStatement{Token: forTok, Left: left, Right: right, Body: body}
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Discriminant = p.parseExpression(LOWEST)
	if stmt.Discriminant == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		c := p.parseSwitchCase()
		if c == nil {
			return nil
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return stmt
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	c := &ast.SwitchCase{Token: p.curToken}

	switch p.curToken.Type {
	case token.CASE:
		p.nextToken()
		c.Test = p.parseExpression(LOWEST)
		if c.Test == nil {
			return nil
		}
	case token.DEFAULT:
		// Test stays nil.
	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.curToken,
			"expected 'case' or 'default'", p.curToken.Lexeme,
		))
		return nil
	}

	if !p.expectPeek(token.COLON) {
		return nil
	}

	for !p.peekTokenIs(token.CASE) && !p.peekTokenIs(token.DEFAULT) &&
		!p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.SEMICOLON) {
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			c.Consequent = append(c.Consequent, stmt)
		}
	}
	return c
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{Token: p.curToken}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Block = p.parseBlockStatement()
	if stmt.Block == nil {
		return nil
	}

	if p.peekTokenIs(token.CATCH) {
		p.nextToken()
		handler := &ast.CatchClause{Token: p.curToken}

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			p.nextToken()
			handler.Param = p.parseBindingTarget()
			if handler.Param == nil || !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		handler.Body = p.parseBlockStatement()
		if handler.Body == nil {
			return nil
		}
		stmt.Handler = handler
	}

	if p.peekTokenIs(token.FINALLY) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Finalizer = p.parseBlockStatement()
		if stmt.Finalizer == nil {
			return nil
		}
	}

	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002, p.curToken,
			"try statement needs a catch or finally clause",
		))
		return nil
	}
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	stmt := &ast.ThrowStatement{Token: p.curToken}

	p.nextToken()
	stmt.Argument = p.parseExpression(LOWEST)
	if stmt.Argument == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	// A return value must begin on the same line; otherwise the return
	// is bare and the next line is a separate statement.
	if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.RBRACE) &&
		!p.peekTokenIs(token.EOF) && p.peekToken.Line == p.curToken.Line {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}
