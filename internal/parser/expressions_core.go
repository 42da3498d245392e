package parser

import (
	"strings"

	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/lexer"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	// In `x => body` a bare identifier directly before an arrow is the
	// arrow's only parameter.
	if p.peekTokenIs(token.ARROW) {
		param := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		p.nextToken()
		return p.parseArrowTail([]ast.Expression{param}, []ast.Expression{nil}, nil, false)
	}
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken,
			"malformed number literal", p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(string)
	if !ok {
		value = p.curToken.Lexeme
	}
	return &ast.StringLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{Token: p.curToken}
}

func (p *Parser) parseThisExpression() ast.Expression {
	return &ast.ThisExpression{Token: p.curToken}
}

func (p *Parser) parseSuperExpression() ast.Expression {
	return &ast.SuperExpression{Token: p.curToken}
}

// parseGroupedOrArrowExpression disambiguates `(a, b) => ...` from a
// parenthesized expression by scanning ahead for the matching ')'
// followed by '=>'.
func (p *Parser) parseGroupedOrArrowExpression() ast.Expression {
	if p.arrowAhead() {
		params, defaults, rest, ok := p.parseFunctionParams()
		if !ok {
			return nil
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		return p.parseArrowTail(params, defaults, rest, false)
	}

	p.nextToken()
	if p.curTokenIs(token.RPAREN) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken,
			"empty parentheses are only valid before '=>'",
		))
		return nil
	}

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	// Comma inside parentheses is the sequence form: (a, b, c).
	if p.peekTokenIs(token.COMMA) {
		seq := &ast.SequenceExpression{Token: p.curToken, Expressions: []ast.Expression{expr}}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			next := p.parseExpression(LOWEST)
			if next == nil {
				return nil
			}
			seq.Expressions = append(seq.Expressions, next)
		}
		expr = seq
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// arrowAhead reports whether curToken's '(' opens an arrow-function
// parameter list, by finding the balanced ')' and checking for '=>'.
const arrowScanLimit = 4096

func (p *Parser) arrowAhead() bool {
	depth := 0
	for n := 0; n < arrowScanLimit; n++ {
		tok := p.lookahead(n)
		switch tok.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.lookahead(n+1).Type == token.ARROW
			}
		case token.EOF:
			return false
		}
	}
	return false
}

// parseArrowTail builds the arrow node once the parameter list is
// known. curToken sits on '=>'.
func (p *Parser) parseArrowTail(params, defaults []ast.Expression, rest ast.Expression, async bool) ast.Expression {
	arrow := &ast.ArrowFunctionExpression{
		Token:    p.curToken,
		Params:   params,
		Defaults: defaults,
		Rest:     rest,
		Async:    async,
	}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		body := p.parseBlockStatement()
		if body == nil {
			return nil
		}
		arrow.Body = body
	} else {
		p.nextToken()
		body := p.parseExpression(LOWEST)
		if body == nil {
			return nil
		}
		arrow.Body = body
	}
	return arrow
}

// parseTemplateLiteral splits the raw template body into text quasis
// and embedded expressions, re-parsing each ${...} with a fresh
// sub-parser that shares this parser's error sink.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	raw, _ := p.curToken.Literal.(string)
	tl := &ast.TemplateLiteral{Token: p.curToken}

	var text strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) {
			text.WriteString(cookTemplateEscape(raw[i+1]))
			i += 2
			continue
		}
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			end := findInterpolationEnd(raw, i+2)
			if end < 0 {
				p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
					diagnostics.ErrP004, p.curToken,
					"unterminated template interpolation",
				))
				return nil
			}
			expr := p.parseEmbeddedExpression(raw[i+2 : end])
			if expr == nil {
				return nil
			}
			tl.Quasis = append(tl.Quasis, text.String())
			tl.Expressions = append(tl.Expressions, expr)
			text.Reset()
			i = end + 1
			continue
		}
		text.WriteByte(raw[i])
		i++
	}
	tl.Quasis = append(tl.Quasis, text.String())
	return tl
}

func cookTemplateEscape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '`':
		return "`"
	case '$':
		return "$"
	case '\\':
		return "\\"
	case '\n':
		return ""
	default:
		return string(c)
	}
}

// findInterpolationEnd locates the '}' closing a ${...} block,
// tracking nested braces and quoted strings inside the expression.
func findInterpolationEnd(raw string, start int) int {
	depth := 1
	var quote byte
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *Parser) parseEmbeddedExpression(src string) ast.Expression {
	stream := lexer.NewTokenStream(lexer.New(src))
	sub := New(stream, p.ctx)
	expr := sub.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !sub.peekTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP004, p.curToken,
			"malformed template interpolation", src,
		))
		return nil
	}
	return expr
}
