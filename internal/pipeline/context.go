package pipeline

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/token"
)

// TokenStream is the lexer output consumed by the parser stage. It is
// declared here so the lexer and parser packages can hand it through
// the context without importing each other.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
	PeekAt(n int) token.Token
}

// PipelineContext carries one compilation unit through the stages.
// Later stages read what earlier stages produced; errors accumulate
// across all stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	TokenStream TokenStream
	AstRoot     ast.Node

	Errors []*diagnostics.Error

	// IsEvalMode marks -e one-liners; StdinData carries piped input to
	// inject as the `stdin` global in that mode.
	IsEvalMode bool
	StdinData  *string
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// FirstError returns the first recorded diagnostic, or nil.
func (ctx *PipelineContext) FirstError() *diagnostics.Error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}
