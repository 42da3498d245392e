package diagnostics

import "fmt"

// RuntimeError is an uncaught script throw surfaced to the host. Kind
// mirrors the error value's name ("TypeError", "UnboundName", ...);
// Value holds the inspected form of non-error thrown values.
type RuntimeError struct {
	Kind    string
	Message string
	File    string
	Line    int
}

func NewRuntimeError(kind, message, file string, line int) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: message, File: file, Line: line}
}

func (e *RuntimeError) Error() string {
	where := ""
	if e.File != "" {
		where = fmt.Sprintf("%s:%d: ", e.File, e.Line)
	}
	if e.Kind == "" {
		return fmt.Sprintf("%s[%s] uncaught: %s", where, ErrR001, e.Message)
	}
	return fmt.Sprintf("%s[%s] uncaught %s: %s", where, ErrR001, e.Kind, e.Message)
}
