package lexer

import (
	"github.com/funvibe/pipefix/internal/diagnostics"
	"github.com/funvibe/pipefix/internal/pipeline"
	"github.com/funvibe/pipefix/internal/token"
)

// LexerProcessor runs the lexer as a pipeline stage, collecting the full
// token stream and reporting illegal tokens as diagnostics.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.SourceCode)
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				"illegal token %q",
				tok.Lexeme,
			))
		}
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
