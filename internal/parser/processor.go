package parser

import (
	"github.com/jotlang/jot/internal/ast"
	"github.com/jotlang/jot/internal/diagnostics"
	"github.com/jotlang/jot/internal/lexer"
	"github.com/jotlang/jot/internal/pipeline"
	"github.com/jotlang/jot/internal/token"
)

// ParserProcessor is the pipeline stage that turns the token stream
// into an AST.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP000,
			token.Token{},
			"parser stage ran without a token stream",
		))
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	program := p.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

// Parse is a convenience used by tests and the module loader: lex and
// parse source in one step against a fresh context.
func Parse(source, file string) (*ast.Program, *pipeline.PipelineContext) {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = file
	pipe := pipeline.New(&lexer.LexerProcessor{}, &ParserProcessor{})
	ctx = pipe.Run(ctx)
	program, _ := ctx.AstRoot.(*ast.Program)
	return program, ctx
}
