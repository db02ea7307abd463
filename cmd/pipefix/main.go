package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/funvibe/pipefix/internal/ast"
	"github.com/funvibe/pipefix/internal/config"
	"github.com/funvibe/pipefix/internal/evaluator"
	"github.com/funvibe/pipefix/internal/history"
	"github.com/funvibe/pipefix/internal/lexer"
	"github.com/funvibe/pipefix/internal/parser"
	"github.com/funvibe/pipefix/internal/pipeline"
	"github.com/funvibe/pipefix/internal/repl"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func main() {
	rcPath := flag.String("config", "", "run-control file (default: pipefix.yaml if present)")
	showHistory := flag.Int("history", 0, "print the n most recent history entries and exit")
	flag.Parse()

	rc, err := config.Load(*rcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *showHistory > 0 {
		if err := printHistory(rc, *showHistory); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		if err := runFile(flag.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runREPL(rc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(path string) error {
	if !isSourceFile(path) {
		return fmt.Errorf("not a source file (expected %s): %s", config.SourceFileExt, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx := &pipeline.Context{SourceCode: string(source), FilePath: path}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(os.Stderr, diag.Error())
		}
		return fmt.Errorf("%d error(s)", len(ctx.Errors))
	}

	program := ctx.AstRoot.(*ast.Program)
	eval := evaluator.New()
	env := evaluator.NewEnvironment()
	evaluator.RegisterBuiltins(env)

	result := eval.Eval(program, env)
	if errObj, ok := result.(*evaluator.Error); ok {
		return fmt.Errorf("%s", errObj.Inspect())
	}
	return nil
}

func runREPL(rc *config.RunControl) error {
	interactive := repl.Interactive(os.Stdin)

	var store *history.Store
	if interactive && rc.HistoryEnabled() {
		var err error
		store, err = history.Open(rc.HistoryPath())
		if err != nil {
			// A broken history store should not block the session.
			fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
		} else {
			defer store.Close()
		}
	}

	r := repl.New(rc, store, os.Stdout, interactive)
	return r.Run(os.Stdin, os.Stdout, os.Stderr)
}

func printHistory(rc *config.RunControl, n int) error {
	store, err := history.Open(rc.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %s#%d  %s\n",
			e.At.Format("2006-01-02 15:04:05"), e.Session[:8], e.Seq, e.Input)
	}
	return nil
}
