package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	expr.Arguments = args
	return expr
}

func (p *Parser) parseNewExpression() ast.Expression {
	expr := &ast.NewExpression{Token: p.curToken}

	p.nextToken()
	// Member accesses bind to the constructee; the argument list does
	// not, so `new a.b.C(x).m()` news a.b.C first.
	expr.Callee = p.parseExpression(CALL)
	if expr.Callee == nil {
		return nil
	}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args, ok := p.parseExpressionList(token.RPAREN)
		if !ok {
			return nil
		}
		expr.Arguments = args
	}
	return expr
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: object}

	p.nextToken()
	// Property names after '.' may reuse reserved words: obj.default,
	// promise.catch.
	if !p.curTokenIs(token.IDENT) && !token.IsKeyword(p.curToken.Type) {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	expr.Property = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	return expr
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: object, Computed: true}

	p.nextToken()
	expr.Property = p.parseExpression(LOWEST)
	if expr.Property == nil || !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

// parseOptionalExpression handles ?.name, ?.[expr] and ?.(args).
func (p *Parser) parseOptionalExpression(object ast.Expression) ast.Expression {
	tok := p.curToken

	switch {
	case p.peekTokenIs(token.LPAREN):
		p.nextToken()
		args, ok := p.parseExpressionList(token.RPAREN)
		if !ok {
			return nil
		}
		return &ast.CallExpression{Token: tok, Callee: object, Arguments: args, Optional: true}

	case p.peekTokenIs(token.LBRACKET):
		p.nextToken()
		p.nextToken()
		prop := p.parseExpression(LOWEST)
		if prop == nil || !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Computed: true, Optional: true}

	default:
		p.nextToken()
		if !p.curTokenIs(token.IDENT) && !token.IsKeyword(p.curToken.Type) {
			p.noPrefixParseFnError(p.curToken)
			return nil
		}
		prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Optional: true}
	}
}

func (p *Parser) parseSpreadElement() ast.Expression {
	expr := &ast.SpreadElement{Token: p.curToken}
	p.nextToken()
	expr.Argument = p.parseExpression(LOWEST)
	if expr.Argument == nil {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated expression list up to
// and including end. Trailing commas are tolerated.
func (p *Parser) parseExpressionList(end token.TokenType) ([]ast.Expression, bool) {
	var list []ast.Expression

	for !p.peekTokenIs(end) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}
