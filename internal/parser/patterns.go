package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/token"
)

// parseBindingTarget parses a declaration-position binding: a plain
// identifier or a destructuring pattern. curToken sits on the first
// token of the target.
func (p *Parser) parseBindingTarget() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.LBRACE:
		return p.parseObjectPattern()
	case token.LBRACKET:
		return p.parseArrayPattern()
	default:
		p.invalidTarget(p.curToken, "invalid binding target")
		return nil
	}
}

// parseBindingElement is a binding target with an optional default:
// the `b = 1` in `[a, b = 1]` or `{x: b = 1}`.
func (p *Parser) parseBindingElement() ast.Expression {
	target := p.parseBindingTarget()
	if target == nil {
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		def := p.parseExpression(LOWEST)
		if def == nil {
			return nil
		}
		return &ast.AssignmentPattern{Token: tok, Left: target, Right: def}
	}
	return target
}

func (p *Parser) parseObjectPattern() ast.Expression {
	pat := &ast.ObjectPattern{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()

		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			pat.Rest = p.parseBindingTarget()
			if pat.Rest == nil {
				return nil
			}
		} else {
			prop := p.parsePatternProperty()
			if prop == nil {
				return nil
			}
			pat.Properties = append(pat.Properties, prop)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return pat
}

func (p *Parser) parsePatternProperty() *ast.PatternProperty {
	prop := &ast.PatternProperty{Token: p.curToken}

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

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		prop.Value = p.parseBindingElement()
		if prop.Value == nil {
			return nil
		}
		return prop
	}

	// Shorthand: {a} or {a = 1}. The key must be a plain identifier.
	ident, isIdent := prop.Key.(*ast.Identifier)
	if !isIdent || prop.Computed {
		p.invalidTarget(p.curToken, "shorthand pattern property must be an identifier")
		return nil
	}
	prop.Shorthand = true
	if p.peekTokenIs(token.ASSIGN) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		def := p.parseExpression(LOWEST)
		if def == nil {
			return nil
		}
		prop.Value = &ast.AssignmentPattern{Token: tok, Left: ident, Right: def}
	} else {
		prop.Value = ident
	}
	return prop
}

func (p *Parser) parseArrayPattern() ast.Expression {
	pat := &ast.ArrayPattern{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACKET) && !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.COMMA) {
			pat.Elements = append(pat.Elements, nil)
			p.nextToken()
			continue
		}
		p.nextToken()

		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			pat.Rest = p.parseBindingTarget()
			if pat.Rest == nil {
				return nil
			}
			break
		}

		el := p.parseBindingElement()
		if el == nil {
			return nil
		}
		pat.Elements = append(pat.Elements, el)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return pat
}

// toAssignTarget converts an already-parsed expression into an
// assignment target. Array and object literals are rewritten into
// their pattern equivalents so `[a, b] = pair` destructures; anything
// else must be an identifier, member path or pattern.
func (p *Parser) toAssignTarget(expr ast.Expression) ast.Expression {
	switch expr := expr.(type) {
	case *ast.Identifier, *ast.MemberExpression,
		*ast.ObjectPattern, *ast.ArrayPattern:
		return expr

	case *ast.AssignmentExpression:
		if expr.Operator != "=" {
			return nil
		}
		left := p.toAssignTarget(expr.Left)
		if left == nil {
			return nil
		}
		return &ast.AssignmentPattern{Token: expr.Token, Left: left, Right: expr.Right}

	case *ast.ArrayLiteral:
		pat := &ast.ArrayPattern{Token: expr.Token}
		for i, el := range expr.Elements {
			if el == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			if spread, isSpread := el.(*ast.SpreadElement); isSpread {
				if i != len(expr.Elements)-1 {
					return nil
				}
				pat.Rest = p.toAssignTarget(spread.Argument)
				if pat.Rest == nil {
					return nil
				}
				continue
			}
			target := p.toAssignTarget(el)
			if target == nil {
				return nil
			}
			pat.Elements = append(pat.Elements, target)
		}
		return pat

	case *ast.ObjectLiteral:
		pat := &ast.ObjectPattern{Token: expr.Token}
		for _, prop := range expr.Properties {
			if prop.Spread != nil {
				pat.Rest = p.toAssignTarget(prop.Spread)
				if pat.Rest == nil {
					return nil
				}
				continue
			}
			if prop.Method {
				return nil
			}
			value := p.toAssignTarget(prop.Value)
			if value == nil {
				return nil
			}
			pat.Properties = append(pat.Properties, &ast.PatternProperty{
				Token:     prop.Token,
				Key:       prop.Key,
				Value:     value,
				Computed:  prop.Computed,
				Shorthand: prop.Shorthand,
			})
		}
		return pat

	default:
		return nil
	}
}
