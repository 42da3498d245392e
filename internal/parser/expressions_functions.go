package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseFunctionExpression() ast.Expression {
	return p.parseFunctionExpressionTail(false)
}

func (p *Parser) parseFunctionExpressionTail(async bool) ast.Expression {
	fe := &ast.FunctionExpression{Token: p.curToken, Async: async}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fe.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, defaults, rest, ok := p.parseFunctionParams()
	if !ok {
		return nil
	}
	fe.Params, fe.Defaults, fe.Rest = params, defaults, rest

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fe.Body = p.parseBlockStatement()
	if fe.Body == nil {
		return nil
	}
	return fe
}

// parseAsyncExpression handles every expression headed by the
// contextual `async` keyword: async function expressions, async
// arrows, or `async` as a plain identifier.
func (p *Parser) parseAsyncExpression() ast.Expression {
	switch {
	case p.peekTokenIs(token.FUNCTION):
		p.nextToken()
		return p.parseFunctionExpressionTail(true)

	case p.peekTokenIs(token.LPAREN):
		p.nextToken()
		if !p.arrowAhead() {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP001, p.curToken,
				"expected an arrow function after 'async'",
			))
			return nil
		}
		params, defaults, rest, ok := p.parseFunctionParams()
		if !ok {
			return nil
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		return p.parseArrowTail(params, defaults, rest, true)

	case p.peekTokenIs(token.IDENT) && p.lookahead(2).Type == token.ARROW:
		p.nextToken()
		param := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		p.nextToken()
		return p.parseArrowTail([]ast.Expression{param}, []ast.Expression{nil}, nil, true)

	default:
		// Plain identifier named "async".
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}
}

func (p *Parser) parseClassExpression() ast.Expression {
	ce := &ast.ClassExpression{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		ce.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}

	super, body := p.parseClassTail()
	if body == nil {
		return nil
	}
	ce.SuperClass = super
	ce.Body = body
	return ce
}
