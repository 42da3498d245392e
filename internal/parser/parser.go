package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/config"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/pipeline"
	"github.com/jotlang/jot/internal/token"
)

// Operator precedence levels, lowest binds loosest.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // = += ??= ...
	CONDITIONAL // ?:
	NULLISH     // ??
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	EQUALITY    // == != === !==
	RELATIONAL  // < > <= >= in instanceof
	SHIFT       // << >> >>>
	ADDITIVE    // + -
	MULTIPLICATIVE
	EXPONENT // ** (right-assoc)
	UNARY    // ! ~ typeof void delete -x +x await
	POSTFIX  // x++ x--
	CALL     // f(x)
	MEMBER   // a.b a[b] a?.b
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:          ASSIGNMENT,
	token.PLUS_ASSIGN:     ASSIGNMENT,
	token.MINUS_ASSIGN:    ASSIGNMENT,
	token.ASTERISK_ASSIGN: ASSIGNMENT,
	token.SLASH_ASSIGN:    ASSIGNMENT,
	token.PERCENT_ASSIGN:  ASSIGNMENT,
	token.POWER_ASSIGN:    ASSIGNMENT,
	token.AMP_ASSIGN:      ASSIGNMENT,
	token.PIPE_ASSIGN:     ASSIGNMENT,
	token.CARET_ASSIGN:    ASSIGNMENT,
	token.LSHIFT_ASSIGN:   ASSIGNMENT,
	token.RSHIFT_ASSIGN:   ASSIGNMENT,
	token.URSHIFT_ASSIGN:  ASSIGNMENT,
	token.AND_ASSIGN:      ASSIGNMENT,
	token.OR_ASSIGN:       ASSIGNMENT,
	token.NULLISH_ASSIGN:  ASSIGNMENT,
	token.QUESTION:        CONDITIONAL,
	token.NULLISH:         NULLISH,
	token.OR:              LOGICAL_OR,
	token.AND:             LOGICAL_AND,
	token.PIPE:            BITWISE_OR,
	token.CARET:           BITWISE_XOR,
	token.AMP:             BITWISE_AND,
	token.EQ:              EQUALITY,
	token.NOT_EQ:          EQUALITY,
	token.STRICT_EQ:       EQUALITY,
	token.STRICT_NOT_EQ:   EQUALITY,
	token.LT:              RELATIONAL,
	token.GT:              RELATIONAL,
	token.LT_EQ:           RELATIONAL,
	token.GT_EQ:           RELATIONAL,
	token.IN:              RELATIONAL,
	token.INSTANCEOF:      RELATIONAL,
	token.LSHIFT:          SHIFT,
	token.RSHIFT:          SHIFT,
	token.URSHIFT:         SHIFT,
	token.PLUS:            ADDITIVE,
	token.MINUS:           ADDITIVE,
	token.ASTERISK:        MULTIPLICATIVE,
	token.SLASH:           MULTIPLICATIVE,
	token.PERCENT:         MULTIPLICATIVE,
	token.POWER:           EXPONENT,
	token.INC:             POSTFIX,
	token.DEC:             POSTFIX,
	token.LPAREN:          CALL,
	token.DOT:             MEMBER,
	token.LBRACKET:        MEMBER,
	token.OPT_CHAIN:       MEMBER,
}

const MaxRecursionDepth = config.MaxParseDepth

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth int
	// noIn suppresses 'in' as a binary operator while parsing a
	// for-head expression, so `for (k in obj)` is not swallowed.
	noIn bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TEMPLATE, p.parseTemplateLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.UNDEFINED, p.parseUndefinedLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrArrowExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(token.FUNCTION, p.parseFunctionExpression)
	p.registerPrefix(token.CLASS, p.parseClassExpression)
	p.registerPrefix(token.ASYNC, p.parseAsyncExpression)
	p.registerPrefix(token.THIS, p.parseThisExpression)
	p.registerPrefix(token.SUPER, p.parseSuperExpression)
	p.registerPrefix(token.NEW, p.parseNewExpression)
	p.registerPrefix(token.AWAIT, p.parseAwaitExpression)
	p.registerPrefix(token.BANG, p.parseUnaryExpression)
	p.registerPrefix(token.TILDE, p.parseUnaryExpression)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.TYPEOF, p.parseUnaryExpression)
	p.registerPrefix(token.VOID, p.parseUnaryExpression)
	p.registerPrefix(token.DELETE, p.parseUnaryExpression)
	p.registerPrefix(token.INC, p.parsePrefixUpdateExpression)
	p.registerPrefix(token.DEC, p.parsePrefixUpdateExpression)
	p.registerPrefix(token.ELLIPSIS, p.parseSpreadElement)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.STRICT_EQ, token.STRICT_NOT_EQ,
		token.LT, token.GT, token.LT_EQ, token.GT_EQ,
		token.AMP, token.PIPE, token.CARET,
		token.LSHIFT, token.RSHIFT, token.URSHIFT,
		token.IN, token.INSTANCEOF,
	} {
		p.registerInfix(t, p.parseBinaryExpression)
	}
	p.registerInfix(token.POWER, p.parseExponentExpression)
	p.registerInfix(token.AND, p.parseLogicalExpression)
	p.registerInfix(token.OR, p.parseLogicalExpression)
	p.registerInfix(token.NULLISH, p.parseLogicalExpression)
	p.registerInfix(token.QUESTION, p.parseConditionalExpression)
	for _, t := range []token.TokenType{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
		token.POWER_ASSIGN, token.AMP_ASSIGN, token.PIPE_ASSIGN,
		token.CARET_ASSIGN, token.LSHIFT_ASSIGN, token.RSHIFT_ASSIGN,
		token.URSHIFT_ASSIGN, token.AND_ASSIGN, token.OR_ASSIGN,
		token.NULLISH_ASSIGN,
	} {
		p.registerInfix(t, p.parseAssignmentExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.OPT_CHAIN, p.parseOptionalExpression)
	p.registerInfix(token.INC, p.parsePostfixUpdateExpression)
	p.registerInfix(token.DEC, p.parsePostfixUpdateExpression)

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.peekToken,
		"expected '"+string(t)+"'", p.peekToken.Lexeme,
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		tok,
		"unexpected token", tok.Lexeme,
	))
}

// peekPrecedence consults the operator table, with two exceptions:
// 'in' is demoted inside a for-head, and postfix ++/-- never attach
// across a line break.
func (p *Parser) peekPrecedence() int {
	if p.noIn && p.peekTokenIs(token.IN) {
		return LOWEST
	}
	if (p.peekTokenIs(token.INC) || p.peekTokenIs(token.DEC)) && p.peekToken.Line > p.curToken.Line {
		return LOWEST
	}
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// lookahead returns the token n positions past curToken (1 =
// peekToken).
func (p *Parser) lookahead(n int) token.Token {
	if n <= 0 {
		return p.curToken
	}
	if n == 1 {
		return p.peekToken
	}
	return p.stream.PeekAt(n - 2)
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		p.skipToStatementBoundary()
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

// skipToStatementBoundary advances past the rest of the current
// statement after an unrecoverable expression error, so one mistake
// does not cascade.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
