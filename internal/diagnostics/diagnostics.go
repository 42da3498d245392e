package diagnostics

import (
	"fmt"

	"github.com/jotlang/jot/internal/token"
)

// Code identifies a diagnostic class. L-codes come from the lexer,
// P-codes from the parser, R-codes from the runtime.
type Code string

const (
	ErrL001 Code = "L001" // illegal character or malformed literal
	ErrP000 Code = "P000" // internal: stage precondition not met
	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected token not found
	ErrP003 Code = "P003" // invalid assignment or binding target
	ErrP004 Code = "P004" // malformed template literal
	ErrP005 Code = "P005" // malformed import/export clause
	ErrP006 Code = "P006" // general syntax error
	ErrR001 Code = "R001" // uncaught runtime error
)

// Error is a positioned diagnostic produced by any pipeline stage.
type Error struct {
	Code    Code
	Message string
	File    string
	Line    int
	Column  int
}

// NewError builds a diagnostic anchored to tok. When got is provided,
// the offending lexeme is appended to the message.
func NewError(code Code, tok token.Token, message string, got ...interface{}) *Error {
	if len(got) > 0 {
		message = fmt.Sprintf("%s, got '%v'", message, got[0])
	}
	return &Error{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *Error) Error() string {
	file := e.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: [%s] %s", file, e.Line, e.Column, e.Code, e.Message)
}
