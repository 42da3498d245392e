package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACKET) && !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.COMMA) {
			// Elision: [1, , 3]
			arr.Elements = append(arr.Elements, nil)
			p.nextToken()
			continue
		}
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		arr.Elements = append(arr.Elements, el)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := &ast.ObjectLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		prop := p.parseObjectProperty()
		if prop == nil {
			return nil
		}
		obj.Properties = append(obj.Properties, prop)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return obj
}

func (p *Parser) parseObjectProperty() *ast.Property {
	prop := &ast.Property{Token: p.curToken}

	// {...source}
	if p.curTokenIs(token.ELLIPSIS) {
		p.nextToken()
		prop.Spread = p.parseExpression(LOWEST)
		if prop.Spread == nil {
			return nil
		}
		return prop
	}

	isAsync := false
	if p.curTokenIs(token.ASYNC) && !p.peekTokenIs(token.LPAREN) &&
		!p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.COMMA) && !p.peekTokenIs(token.RBRACE) {
		isAsync = true
		p.nextToken()
	}

	switch {
	case p.curTokenIs(token.LBRACKET):
		prop.Computed = true
		p.nextToken()
		prop.Key = p.parseExpression(LOWEST)
		if prop.Key == nil || !p.expectPeek(token.RBRACKET) {
			return nil
		}
	case p.curTokenIs(token.IDENT) || token.IsKeyword(p.curToken.Type):
		prop.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case p.curTokenIs(token.STRING):
		prop.Key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
	case p.curTokenIs(token.NUMBER):
		prop.Key = &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Literal.(float64)}
	default:
		p.noPrefixParseFnError(p.curToken)
		return nil
	}

	switch {
	case p.peekTokenIs(token.COLON):
		p.nextToken()
		p.nextToken()
		prop.Value = p.parseExpression(LOWEST)
		if prop.Value == nil {
			return nil
		}

	case p.peekTokenIs(token.LPAREN):
		// Shorthand method: { greet() {...} }
		fnTok := p.curToken
		p.nextToken()
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
		prop.Method = true
		prop.Value = &ast.FunctionExpression{
			Token:    fnTok,
			Params:   params,
			Defaults: defaults,
			Rest:     rest,
			Body:     body,
			Async:    isAsync,
		}

	default:
		// Shorthand property: { a } binds a's current value.
		ident, isIdent := prop.Key.(*ast.Identifier)
		if !isIdent {
			p.invalidTarget(p.curToken, "object property needs a value")
			return nil
		}
		prop.Shorthand = true
		prop.Value = ident
	}
	return prop
}
