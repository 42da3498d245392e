package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	expr.Operand = p.parseExpression(UNARY)
	if expr.Operand == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	expr := &ast.AwaitExpression{Token: p.curToken}
	p.nextToken()
	expr.Argument = p.parseExpression(UNARY)
	if expr.Argument == nil {
		return nil
	}
	return expr
}

func (p *Parser) parsePrefixUpdateExpression() ast.Expression {
	expr := &ast.UpdateExpression{Token: p.curToken, Operator: p.curToken.Lexeme, Prefix: true}
	p.nextToken()
	expr.Operand = p.parseExpression(UNARY)
	if expr.Operand == nil {
		return nil
	}
	if !isUpdateTarget(expr.Operand) {
		p.invalidTarget(expr.Token, "invalid increment/decrement target")
		return nil
	}
	return expr
}

func (p *Parser) parsePostfixUpdateExpression(left ast.Expression) ast.Expression {
	if !isUpdateTarget(left) {
		p.invalidTarget(p.curToken, "invalid increment/decrement target")
		return nil
	}
	return &ast.UpdateExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Operand:  left,
		Prefix:   false,
	}
}

func isUpdateTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseExponentExpression parses ** right-associatively: a ** b ** c
// is a ** (b ** c).
func (p *Parser) parseExponentExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}
	p.nextToken()
	expr.Right = p.parseExpression(EXPONENT - 1)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expr := &ast.LogicalExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	expr := &ast.ConditionalExpression{Token: p.curToken, Test: test}

	p.nextToken()
	expr.Consequent = p.parseExpression(LOWEST)
	if expr.Consequent == nil || !p.expectPeek(token.COLON) {
		return nil
	}

	p.nextToken()
	expr.Alternate = p.parseExpression(LOWEST)
	if expr.Alternate == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	expr := &ast.AssignmentExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}

	if expr.Operator == "=" {
		// Plain assignment may target a destructuring pattern written
		// as an array/object literal.
		expr.Left = p.toAssignTarget(left)
	} else {
		switch left.(type) {
		case *ast.Identifier, *ast.MemberExpression:
			expr.Left = left
		}
	}
	if expr.Left == nil {
		p.invalidTarget(expr.Token, "invalid assignment target")
		return nil
	}

	p.nextToken()
	expr.Right = p.parseExpression(ASSIGNMENT - 1)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) invalidTarget(tok token.Token, msg string) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP003, tok, msg,
	))
}
