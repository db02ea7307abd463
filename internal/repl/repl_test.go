package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/pipefix/internal/config"
)

func newTestREPL(out *bytes.Buffer) *REPL {
	return New(config.DefaultRunControl(), nil, out, true)
}

func TestEvalLineEchoesExpressionValues(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newTestREPL(&out)

	if err := r.EvalLine("2 + 3", &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "5" {
		t.Errorf("output = %q, want 5", got)
	}
}

func TestEnvironmentPersistsAcrossLines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newTestREPL(&out)

	lines := []string{
		`add = wrap(\x, y -> x + y)`,
		"2 | add | 3",
	}
	for _, line := range lines {
		if err := r.EvalLine(line, &out, &errOut); err != nil {
			t.Fatalf("EvalLine(%q): %v", line, err)
		}
	}
	if got := strings.TrimSpace(out.String()); got != "5" {
		t.Errorf("output = %q, want 5", got)
	}
}

func TestAssignmentsAreSilent(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newTestREPL(&out)

	if err := r.EvalLine("x = 41", &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("assignment echoed output: %q", out.String())
	}
}

func TestSyntaxErrorsGoToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newTestREPL(&out)

	err := r.EvalLine("1 +", &out, &errOut)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if !strings.Contains(errOut.String(), "P002") {
		t.Errorf("errOut = %q, want a P002 diagnostic", errOut.String())
	}
}

func TestRuntimeErrorsGoToErrOut(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newTestREPL(&out)

	lines := []string{
		`add = wrap(\x, y -> x + y)`,
		"add | 3",
	}
	var lastErr error
	for _, line := range lines {
		lastErr = r.EvalLine(line, &out, &errOut)
	}
	if lastErr == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errOut.String(), "unbound left operand") {
		t.Errorf("errOut = %q, want unbound left operand", errOut.String())
	}
}

func TestRunEvaluatesUntilEOF(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(config.DefaultRunControl(), nil, &out, false)

	input := "add = wrap(\\x, y -> x + y)\nprint(2 | add | 3)\n"
	if err := r.Run(strings.NewReader(input), &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "5" {
		t.Errorf("output = %q, want 5", got)
	}
}
