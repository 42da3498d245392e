package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jotlang/jot/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		// =, ==, ===, =>
		if l.peekChar() == '=' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.STRICT_EQ, "===")
			} else {
				tok = l.makeToken(token.EQ, "==")
			}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = l.makeToken(token.ARROW, "=>")
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			tok = l.makeToken(token.INC, "++")
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.PLUS_ASSIGN, "+=")
		} else {
			tok = newToken(token.PLUS, l.ch, l.line, l.column)
		}
	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			tok = l.makeToken(token.DEC, "--")
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.MINUS_ASSIGN, "-=")
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.POWER_ASSIGN, "**=")
			} else {
				tok = l.makeToken(token.POWER, "**")
			}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.ASTERISK_ASSIGN, "*=")
		} else {
			tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
		}
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.SLASH_ASSIGN, "/=")
		} else {
			tok = newToken(token.SLASH, l.ch, l.line, l.column)
		}
	case '%':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.PERCENT_ASSIGN, "%=")
		} else {
			tok = newToken(token.PERCENT, l.ch, l.line, l.column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.STRICT_NOT_EQ, "!==")
			} else {
				tok = l.makeToken(token.NOT_EQ, "!=")
			}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.LSHIFT_ASSIGN, "<<=")
			} else {
				tok = l.makeToken(token.LSHIFT, "<<")
			}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.LT_EQ, "<=")
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			if l.peekChar() == '>' {
				l.readChar()
				if l.peekChar() == '=' {
					l.readChar()
					tok = l.makeToken(token.URSHIFT_ASSIGN, ">>>=")
				} else {
					tok = l.makeToken(token.URSHIFT, ">>>")
				}
			} else if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.RSHIFT_ASSIGN, ">>=")
			} else {
				tok = l.makeToken(token.RSHIFT, ">>")
			}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.GT_EQ, ">=")
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.AND_ASSIGN, "&&=")
			} else {
				tok = l.makeToken(token.AND, "&&")
			}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.AMP_ASSIGN, "&=")
		} else {
			tok = newToken(token.AMP, l.ch, l.line, l.column)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.OR_ASSIGN, "||=")
			} else {
				tok = l.makeToken(token.OR, "||")
			}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.PIPE_ASSIGN, "|=")
		} else {
			tok = newToken(token.PIPE, l.ch, l.line, l.column)
		}
	case '^':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.makeToken(token.CARET_ASSIGN, "^=")
		} else {
			tok = newToken(token.CARET, l.ch, l.line, l.column)
		}
	case '~':
		tok = newToken(token.TILDE, l.ch, l.line, l.column)
	case '?':
		// ?, ?., ??, ??=
		if l.peekChar() == '.' {
			l.readChar()
			tok = l.makeToken(token.OPT_CHAIN, "?.")
		} else if l.peekChar() == '?' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				tok = l.makeToken(token.NULLISH_ASSIGN, "??=")
			} else {
				tok = l.makeToken(token.NULLISH, "??")
			}
		} else {
			tok = newToken(token.QUESTION, l.ch, l.line, l.column)
		}
	case '.':
		// ., ...
		if l.peekChar() == '.' {
			l.readChar()
			if l.peekChar() == '.' {
				l.readChar()
				tok = l.makeToken(token.ELLIPSIS, "...")
			} else {
				// ".." has no meaning; report the first dot and resync
				tok = l.makeToken(token.ILLEGAL, "..")
			}
		} else if isDigit(l.peekChar()) {
			return l.readNumber()
		} else {
			tok = newToken(token.DOT, l.ch, l.line, l.column)
		}
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '"', '\'':
		return l.readString(l.ch)
	case '`':
		return l.readTemplate()
	case 0:
		tok.Lexeme = ""
		tok.Literal = ""
		tok.Type = token.EOF
		tok.Line = l.line
		tok.Column = l.column
	default:
		if isLetter(l.ch) {
			startLine, startCol := l.line, l.column
			ident := l.readIdentifier()
			return token.Token{
				Type:    token.LookupIdent(ident),
				Lexeme:  ident,
				Literal: ident,
				Line:    startLine,
				Column:  startCol,
			}
		} else if isDigit(l.ch) {
			return l.readNumber()
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) makeToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
}

// readString reads a single- or double-quoted string, resolving escapes.
// The cursor starts on the opening quote and ends past the closing one.
func (l *Lexer) readString(quote rune) token.Token {
	startLine, startCol := l.line, l.column
	startPos := l.position
	var sb strings.Builder

	for {
		l.readChar()
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{
				Type:    token.ILLEGAL,
				Lexeme:  l.input[startPos:l.position],
				Literal: "unterminated string literal",
				Line:    startLine,
				Column:  startCol,
			}
		}
		if l.ch == quote {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'v':
				sb.WriteByte('\v')
			case '0':
				sb.WriteByte(0)
			case 'x':
				if code, ok := l.readHexEscape(2); ok {
					sb.WriteRune(rune(code))
				}
			case 'u':
				if code, ok := l.readHexEscape(4); ok {
					sb.WriteRune(rune(code))
				}
			case '\n':
				// Line continuation: backslash-newline is dropped.
			case 0:
				return token.Token{
					Type:    token.ILLEGAL,
					Lexeme:  l.input[startPos:l.position],
					Literal: "unterminated string literal",
					Line:    startLine,
					Column:  startCol,
				}
			default:
				sb.WriteRune(l.ch)
			}
			continue
		}
		sb.WriteRune(l.ch)
	}

	l.readChar() // consume closing quote
	return token.Token{
		Type:    token.STRING,
		Lexeme:  l.input[startPos:l.position],
		Literal: sb.String(),
		Line:    startLine,
		Column:  startCol,
	}
}

func (l *Lexer) readHexEscape(n int) (int64, bool) {
	var value int64
	for i := 0; i < n; i++ {
		next := l.peekChar()
		if !isHexDigit(next) {
			return 0, false
		}
		l.readChar()
		digit, _ := strconv.ParseInt(string(l.ch), 16, 64)
		value = value*16 + digit
	}
	return value, true
}

// readTemplate reads a backtick template literal as one token. The raw
// body between the backticks becomes the Literal; the parser splits it
// into text and ${...} parts and re-parses the embedded expressions.
// Nested strings, templates and braces inside interpolations are
// tracked so that `a${ f("`") }b` lexes as a single token.
func (l *Lexer) readTemplate() token.Token {
	startLine, startCol := l.line, l.column
	startPos := l.position

	// Stack of open delimiters inside interpolations:
	// '}' for ${...} blocks, quote runes for nested strings.
	var stack []rune

	for {
		l.readChar()
		if l.ch == 0 {
			return token.Token{
				Type:    token.ILLEGAL,
				Lexeme:  l.input[startPos:l.position],
				Literal: "unterminated template literal",
				Line:    startLine,
				Column:  startCol,
			}
		}

		if len(stack) == 0 {
			if l.ch == '`' {
				break
			}
			if l.ch == '\\' {
				l.readChar() // escaped char stays raw for the parser
				continue
			}
			if l.ch == '$' && l.peekChar() == '{' {
				l.readChar()
				stack = append(stack, '}')
			}
			continue
		}

		top := stack[len(stack)-1]
		switch top {
		case '}':
			switch l.ch {
			case '{':
				stack = append(stack, '}')
			case '}':
				stack = stack[:len(stack)-1]
			case '"', '\'', '`':
				stack = append(stack, l.ch)
			}
		case '"', '\'', '`':
			if l.ch == '\\' {
				l.readChar()
			} else if l.ch == top {
				stack = stack[:len(stack)-1]
			}
		}
	}

	raw := l.input[startPos+1 : l.position] // body without the backticks
	l.readChar()                            // consume closing backtick
	return token.Token{
		Type:    token.TEMPLATE,
		Lexeme:  l.input[startPos : l.position],
		Literal: raw,
		Line:    startLine,
		Column:  startCol,
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	base := 10

	// Base prefixes: 0x, 0b, 0o
	if l.ch == '0' {
		peek := l.peekChar()
		if peek == 'x' || peek == 'X' {
			l.readChar()
			l.readChar()
			base = 16
		} else if peek == 'b' || peek == 'B' {
			l.readChar()
			l.readChar()
			base = 2
		} else if peek == 'o' || peek == 'O' {
			l.readChar()
			l.readChar()
			base = 8
		}
	}

	readDigits := func() {
		for {
			if base == 16 {
				if !isHexDigit(l.ch) && l.ch != '_' {
					return
				}
			} else {
				if !isDigit(l.ch) && l.ch != '_' {
					return
				}
			}
			l.readChar()
		}
	}
	readDigits()

	if base == 10 {
		// Fraction, including the leading-dot form .5
		if l.ch == '.' && isDigit(l.peekChar()) {
			l.readChar() // .
			readDigits()
		}
		// Exponent
		if l.ch == 'e' || l.ch == 'E' {
			peek := l.peekChar()
			if isDigit(peek) || peek == '+' || peek == '-' {
				l.readChar() // e
				if l.ch == '+' || l.ch == '-' {
					l.readChar()
				}
				readDigits()
			}
		}
	}

	lexeme := l.input[position:l.position]
	cleaned := strings.ReplaceAll(lexeme, "_", "")

	var value float64
	if base == 10 {
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "invalid number literal", Line: startLine, Column: startCol}
		}
		value = v
	} else {
		v, err := strconv.ParseInt(cleaned[2:], base, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "invalid number literal", Line: startLine, Column: startCol}
		}
		value = float64(v)
	}

	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: value, Line: startLine, Column: startCol}
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		// Comments
		if l.ch == '/' {
			if l.peekChar() == '/' {
				l.readChar() // consume first /
				l.readChar() // consume second /
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			} else if l.peekChar() == '*' {
				l.readChar() // consume /
				l.readChar() // consume *
				for l.ch != 0 {
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar() // consume *
						l.readChar() // consume /
						break
					}
					l.readChar()
				}
				continue
			}
		}
		break
	}
}
