package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

func (p *Parser) parseImportDeclaration() ast.Statement {
	stmt := &ast.ImportDeclaration{Token: p.curToken}

	// import "mod" is a bare import for side effects only.
	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		stmt.Source = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return stmt
	}

	// Default import, optionally followed by named/namespace clauses.
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		stmt.Specifiers = append(stmt.Specifiers, &ast.ImportSpecifier{
			Token: p.curToken,
			Kind:  "default",
			Local: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	switch {
	case p.peekTokenIs(token.ASTERISK):
		p.nextToken()
		tok := p.curToken
		if !p.expectPeek(token.AS) || !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Specifiers = append(stmt.Specifiers, &ast.ImportSpecifier{
			Token: tok,
			Kind:  "namespace",
			Local: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		})

	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		if !p.parseNamedImports(stmt) {
			return nil
		}
	}

	if len(stmt.Specifiers) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005, p.peekToken,
			"import needs a binding clause or a bare module path",
		))
		return nil
	}

	if !p.expectPeek(token.FROM) || !p.expectPeek(token.STRING) {
		return nil
	}
	stmt.Source = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseNamedImports parses { a, b as c, default as d }. curToken
// starts on '{' and ends on '}'.
func (p *Parser) parseNamedImports(stmt *ast.ImportDeclaration) bool {
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) && !token.IsKeyword(p.curToken.Type) {
			p.noPrefixParseFnError(p.curToken)
			return false
		}
		spec := &ast.ImportSpecifier{
			Token:    p.curToken,
			Kind:     "named",
			Imported: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
		spec.Local = spec.Imported

		if p.peekTokenIs(token.AS) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return false
			}
			spec.Local = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		}
		stmt.Specifiers = append(stmt.Specifiers, spec)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	return p.expectPeek(token.RBRACE)
}

func (p *Parser) parseExportDeclaration() ast.Statement {
	stmt := &ast.ExportDeclaration{Token: p.curToken}

	switch {
	case p.peekTokenIs(token.DEFAULT):
		p.nextToken()
		p.nextToken()
		stmt.Default = true
		stmt.Expression = p.parseExpression(LOWEST)
		if stmt.Expression == nil {
			return nil
		}
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}

	case p.peekTokenIs(token.VAR) || p.peekTokenIs(token.LET) || p.peekTokenIs(token.CONST):
		p.nextToken()
		stmt.Declaration = p.parseVariableDeclaration()
		if stmt.Declaration == nil {
			return nil
		}

	case p.peekTokenIs(token.FUNCTION):
		p.nextToken()
		stmt.Declaration = p.parseFunctionDeclaration(false)
		if stmt.Declaration == nil {
			return nil
		}

	case p.peekTokenIs(token.ASYNC):
		p.nextToken()
		if !p.expectPeek(token.FUNCTION) {
			return nil
		}
		stmt.Declaration = p.parseFunctionDeclaration(true)
		if stmt.Declaration == nil {
			return nil
		}

	case p.peekTokenIs(token.CLASS):
		p.nextToken()
		stmt.Declaration = p.parseClassDeclaration()
		if stmt.Declaration == nil {
			return nil
		}

	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		if !p.parseExportSpecifiers(stmt) {
			return nil
		}
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}

	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005, p.peekToken,
			"expected a declaration, '{' or 'default' after export", p.peekToken.Lexeme,
		))
		return nil
	}
	return stmt
}

// parseExportSpecifiers parses { a, b as c }. curToken starts on '{'
// and ends on '}'.
func (p *Parser) parseExportSpecifiers(stmt *ast.ExportDeclaration) bool {
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			return false
		}
		spec := &ast.ExportSpecifier{
			Token: p.curToken,
			Local: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
		spec.Exported = spec.Local

		if p.peekTokenIs(token.AS) {
			p.nextToken()
			p.nextToken()
			if !p.curTokenIs(token.IDENT) && !token.IsKeyword(p.curToken.Type) {
				p.noPrefixParseFnError(p.curToken)
				return false
			}
			spec.Exported = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		}
		stmt.Specifiers = append(stmt.Specifiers, spec)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	return p.expectPeek(token.RBRACE)
}
