package pipeline

import (
	"github.com/funvibe/pipefix/internal/diagnostics"
	"github.com/funvibe/pipefix/internal/token"
)

// Node is the minimal view of an AST root the pipeline carries; the
// concrete type lives in the ast package.
type Node interface {
	String() string
}

// Context carries the artifacts of one compilation through the stages.
type Context struct {
	SourceCode string
	FilePath   string
	Tokens     []token.Token
	AstRoot    Node
	Errors     []*diagnostics.Diagnostic
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so later stages can still report their own
		// diagnostics.
	}
	return ctx
}
