package token

type TokenType string

// Token carries the raw lexeme alongside the cooked literal value.
// For NUMBER tokens Literal holds a float64, for STRING the decoded
// string, for TEMPLATE the raw body between the backticks.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers and literals
	IDENT    = "IDENT"
	NUMBER   = "NUMBER"
	STRING   = "STRING"
	TEMPLATE = "TEMPLATE"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	POWER    = "**"
	BANG     = "!"
	TILDE    = "~"
	AMP      = "&"
	PIPE     = "|"
	CARET    = "^"
	LSHIFT   = "<<"
	RSHIFT   = ">>"
	URSHIFT  = ">>>"
	AND      = "&&"
	OR       = "||"
	NULLISH  = "??"

	EQ            = "=="
	NOT_EQ        = "!="
	STRICT_EQ     = "==="
	STRICT_NOT_EQ = "!=="
	LT            = "<"
	GT            = ">"
	LT_EQ         = "<="
	GT_EQ         = ">="

	INC = "++"
	DEC = "--"

	PLUS_ASSIGN     = "+="
	MINUS_ASSIGN    = "-="
	ASTERISK_ASSIGN = "*="
	SLASH_ASSIGN    = "/="
	PERCENT_ASSIGN  = "%="
	POWER_ASSIGN    = "**="
	AMP_ASSIGN      = "&="
	PIPE_ASSIGN     = "|="
	CARET_ASSIGN    = "^="
	LSHIFT_ASSIGN   = "<<="
	RSHIFT_ASSIGN   = ">>="
	URSHIFT_ASSIGN  = ">>>="
	AND_ASSIGN      = "&&="
	OR_ASSIGN       = "||="
	NULLISH_ASSIGN  = "??="

	ARROW     = "=>"
	ELLIPSIS  = "..."
	OPT_CHAIN = "?."
	QUESTION  = "?"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	DOT       = "."
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	LBRACKET  = "["
	RBRACKET  = "]"

	// Keywords
	VAR        = "VAR"
	LET        = "LET"
	CONST      = "CONST"
	FUNCTION   = "FUNCTION"
	RETURN     = "RETURN"
	IF         = "IF"
	ELSE       = "ELSE"
	WHILE      = "WHILE"
	FOR        = "FOR"
	DO         = "DO"
	BREAK      = "BREAK"
	CONTINUE   = "CONTINUE"
	SWITCH     = "SWITCH"
	CASE       = "CASE"
	DEFAULT    = "DEFAULT"
	THROW      = "THROW"
	TRY        = "TRY"
	CATCH      = "CATCH"
	FINALLY    = "FINALLY"
	NEW        = "NEW"
	DELETE     = "DELETE"
	TYPEOF     = "TYPEOF"
	VOID       = "VOID"
	IN         = "IN"
	INSTANCEOF = "INSTANCEOF"
	OF         = "OF"
	THIS       = "THIS"
	CLASS      = "CLASS"
	EXTENDS    = "EXTENDS"
	SUPER      = "SUPER"
	IMPORT     = "IMPORT"
	EXPORT     = "EXPORT"
	FROM       = "FROM"
	AS         = "AS"
	ASYNC      = "ASYNC"
	AWAIT      = "AWAIT"
	TRUE       = "TRUE"
	FALSE      = "FALSE"
	NULL       = "NULL"
	UNDEFINED  = "UNDEFINED"
)

var keywords = map[string]TokenType{
	"var":        VAR,
	"let":        LET,
	"const":      CONST,
	"function":   FUNCTION,
	"return":     RETURN,
	"if":         IF,
	"else":       ELSE,
	"while":      WHILE,
	"for":        FOR,
	"do":         DO,
	"break":      BREAK,
	"continue":   CONTINUE,
	"switch":     SWITCH,
	"case":       CASE,
	"default":    DEFAULT,
	"throw":      THROW,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"new":        NEW,
	"delete":     DELETE,
	"typeof":     TYPEOF,
	"void":       VOID,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"of":         OF,
	"this":       THIS,
	"class":      CLASS,
	"extends":    EXTENDS,
	"super":      SUPER,
	"import":     IMPORT,
	"export":     EXPORT,
	"from":       FROM,
	"as":         AS,
	"async":      ASYNC,
	"await":      AWAIT,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
	"undefined":  UNDEFINED,
}

// LookupIdent classifies an identifier as a keyword or a plain IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether the token type is a reserved word. Property
// names after '.' may still use reserved words (obj.default, x.in).
func IsKeyword(t TokenType) bool {
	for _, kw := range keywords {
		if kw == t {
			return true
		}
	}
	return false
}
