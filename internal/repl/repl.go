// Package repl implements the interactive loop: one environment across
// lines, values of expression statements echoed back, input recorded in
// the history store when one is attached.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/pipefix/internal/ast"
	"github.com/funvibe/pipefix/internal/config"
	"github.com/funvibe/pipefix/internal/evaluator"
	"github.com/funvibe/pipefix/internal/history"
	"github.com/funvibe/pipefix/internal/lexer"
	"github.com/funvibe/pipefix/internal/parser"
	"github.com/funvibe/pipefix/internal/pipeline"
)

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type REPL struct {
	rc      *config.RunControl
	store   *history.Store // nil when history is disabled
	eval    *evaluator.Evaluator
	env     *evaluator.Environment
	echo    bool // print expression values (off for piped stdin)
	lineNum int
}

func New(rc *config.RunControl, store *history.Store, out io.Writer, echo bool) *REPL {
	eval := evaluator.New()
	eval.Out = out
	env := evaluator.NewEnvironment()
	evaluator.RegisterBuiltins(env)
	return &REPL{rc: rc, store: store, eval: eval, env: env, echo: echo}
}

// Run reads lines from in until EOF. Returns the last evaluation error, if
// any, so piped scripts can exit non-zero.
func (r *REPL) Run(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	var lastErr error
	for {
		if r.echo {
			fmt.Fprint(out, r.rc.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if err := r.EvalLine(line, out, errOut); err != nil {
			lastErr = err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return lastErr
}

// EvalLine runs one input line through the pipeline and the evaluator.
func (r *REPL) EvalLine(line string, out, errOut io.Writer) error {
	r.lineNum++
	if line == "" {
		return nil
	}
	if r.store != nil {
		if err := r.store.Append(line); err != nil {
			fmt.Fprintf(errOut, "history: %v\n", err)
		}
	}

	ctx := &pipeline.Context{
		SourceCode: line,
		FilePath:   fmt.Sprintf("<repl:%d>", r.lineNum),
	}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, diag.Error())
		}
		return fmt.Errorf("%d syntax error(s)", len(ctx.Errors))
	}

	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return fmt.Errorf("parser produced no program")
	}
	result := r.eval.Eval(program, r.env)
	if err, ok := result.(*evaluator.Error); ok {
		fmt.Fprintln(errOut, err.Inspect())
		return fmt.Errorf("runtime error: %s", err.Message)
	}
	if r.echo && result != nil && result.Type() != evaluator.NIL_OBJ {
		fmt.Fprintln(out, result.Inspect())
	}
	return nil
}
