package lexer

import (
	"github.com/jotlang/jot/internal/pipeline"
)

// LexerProcessor is the pipeline stage that turns source code into a
// buffered token stream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.TokenStream = NewTokenStream(l)
	return ctx
}
