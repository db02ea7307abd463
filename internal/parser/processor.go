package parser

import (
	"github.com/funvibe/pipefix/internal/diagnostics"
	"github.com/funvibe/pipefix/internal/pipeline"
	"github.com/funvibe/pipefix/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if len(ctx.Tokens) == 0 {
		err := diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is empty")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.Tokens, ctx)
	program := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
