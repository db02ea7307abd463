package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/pipefix/internal/ast"
	"github.com/funvibe/pipefix/internal/diagnostics"
	"github.com/funvibe/pipefix/internal/evaluator"
	"github.com/funvibe/pipefix/internal/lexer"
	"github.com/funvibe/pipefix/internal/parser"
	"github.com/funvibe/pipefix/internal/pipeline"
)

func evalSource(t *testing.T, input string) evaluator.Object {
	t.Helper()
	ctx := &pipeline.Context{SourceCode: input, FilePath: "test.pfx"}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed:\n%s", strings.Join(msgs, "\n"))
	}

	eval := evaluator.New()
	eval.Out = &bytes.Buffer{}
	env := evaluator.NewEnvironment()
	evaluator.RegisterBuiltins(env)
	return eval.Eval(ctx.AstRoot.(*ast.Program), env)
}

func expectInteger(t *testing.T, obj evaluator.Object, want int64) {
	t.Helper()
	result, ok := obj.(*evaluator.Integer)
	if !ok {
		t.Fatalf("object is not Integer. got=%T (%s)", obj, obj.Inspect())
	}
	if result.Value != want {
		t.Errorf("integer = %d, want %d", result.Value, want)
	}
}

func expectString(t *testing.T, obj evaluator.Object, want string) {
	t.Helper()
	result, ok := obj.(*evaluator.String)
	if !ok {
		t.Fatalf("object is not String. got=%T (%s)", obj, obj.Inspect())
	}
	if result.Value != want {
		t.Errorf("string = %q, want %q", result.Value, want)
	}
}

func expectError(t *testing.T, obj evaluator.Object, code, contains string) {
	t.Helper()
	err, ok := obj.(*evaluator.Error)
	if !ok {
		t.Fatalf("object is not Error. got=%T (%s)", obj, obj.Inspect())
	}
	if code != "" && err.Code != code {
		t.Errorf("error code = %s, want %s (message: %s)", err.Code, code, err.Message)
	}
	if !strings.Contains(err.Message, contains) {
		t.Errorf("error message %q does not contain %q", err.Message, contains)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"5 + 2 * 10", 25},
		{"(5 + 2) * 10", 70},
		{"-5 + 10", 5},
		{"17 % 5", 2},
		{"square(4)", 16},
		{"abs(0 - 7)", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectInteger(t, evalSource(t, tt.input), tt.expected)
		})
	}
}

// The builtin meaning of `|` stays intact: applicator dispatch only
// receives the operand pairs the type rules decline.
func TestPipeBuiltinMeanings(t *testing.T) {
	expectInteger(t, evalSource(t, "5 | 3"), 7)

	result := evalSource(t, "true | false")
	boolean, ok := result.(*evaluator.Boolean)
	if !ok || !boolean.Value {
		t.Errorf("true | false = %s, want true", result.Inspect())
	}
}

func TestApplicatorBasic(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
2 | add | 3`
	expectInteger(t, evalSource(t, input), 5)
}

func TestApplicatorEqualsDirectCall(t *testing.T) {
	tests := []struct {
		name  string
		infix string
		call  string
	}{
		{"add", "10 | wrap(\\x, y -> x + y) | 32", "(\\x, y -> x + y)(10, 32)"},
		{"sub", "10 | wrap(\\x, y -> x - y) | 4", "(\\x, y -> x - y)(10, 4)"},
		{"mul", "6 | wrap(\\x, y -> x * y) | 7", "(\\x, y -> x * y)(6, 7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := evalSource(t, tt.infix)
			right := evalSource(t, tt.call)
			if left.Inspect() != right.Inspect() {
				t.Errorf("infix form = %s, direct call = %s", left.Inspect(), right.Inspect())
			}
		})
	}
}

// Chaining evaluates strictly left to right: a | f | b | g | c is
// g(f(a, b), c).
func TestApplicatorChaining(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
mul = wrap(\x, y -> x * y)
2 | add | 3 | mul | 4`
	expectInteger(t, evalSource(t, input), 20)
}

// Sequential reuse of one applicator must not leak operands between
// evaluations: each use runs a fresh left-bind step.
func TestApplicatorReuse(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
first = 1 | add | 2
second = 10 | add | 20
first * 1000 + second`
	expectInteger(t, evalSource(t, input), 3030)
}

func TestApplicatorUnboundLeft(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
add | 3`
	expectError(t, evalSource(t, input), diagnostics.ErrR002, "unbound left operand")
}

// `2 | add | add | 3` reaches the apply step with the second applicator as
// right operand; the operation rejects it. It must not silently succeed.
func TestApplicatorMisuseIsTypeError(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
2 | add | add | 3`
	result := evalSource(t, input)
	err, ok := result.(*evaluator.Error)
	if !ok {
		t.Fatalf("expected an error, got %s", result.Inspect())
	}
	if err.Code != diagnostics.ErrR001 && err.Code != diagnostics.ErrR002 {
		t.Errorf("error code = %s, want R001 or R002", err.Code)
	}
}

func TestOperationErrorsPropagate(t *testing.T) {
	input := `
div = wrap(\x, y -> x / y)
4 | div | 0`
	expectError(t, evalSource(t, input), diagnostics.ErrR001, "division by zero")
}

func TestWrapValidation(t *testing.T) {
	expectError(t, evalSource(t, "wrap(5)"), diagnostics.ErrR001, "wrap expects a function")
	expectError(t, evalSource(t, "wrap()"), diagnostics.ErrR001, "wrap expects 1 argument")
}

func TestComposition(t *testing.T) {
	input := `
pipeline = strip | comp | lower
pipeline("  HI ")`
	expectString(t, evalSource(t, input), "hi")
}

func TestCompositionWithLambdas(t *testing.T) {
	input := `
inc = \x -> x + 1
double = \x -> x * 2
f = inc | comp | double
f(5)`
	// f = compose(inc, double): inc(double(5)) = 11
	expectInteger(t, evalSource(t, input), 11)
}

func TestComposedPipelineChains(t *testing.T) {
	input := `
shout = upper | comp | strip
"  hi " | wrap(\s, suffix -> shout(s) + suffix) | "!"`
	expectString(t, evalSource(t, input), "HI!")
}

func TestApplicatorCalledDirectly(t *testing.T) {
	input := `
add = wrap(\x, y -> x + y)
add(2, 3)`
	expectInteger(t, evalSource(t, input), 5)
}

func TestWrappedBuiltinOperation(t *testing.T) {
	input := `
compose2 = wrap(compose)
pipeline = strip | compose2 | upper
pipeline("  go ")`
	expectString(t, evalSource(t, input), "GO")
}

func TestIdentifierNotFound(t *testing.T) {
	expectError(t, evalSource(t, "nothing"), diagnostics.ErrR001, "identifier not found")
}

func TestStringBuiltins(t *testing.T) {
	expectString(t, evalSource(t, `lower("HI")`), "hi")
	expectString(t, evalSource(t, `upper("hi")`), "HI")
	expectString(t, evalSource(t, `strip("  x  ")`), "x")
	expectInteger(t, evalSource(t, `len("abcd")`), 4)
}

func TestPipeTypeMismatch(t *testing.T) {
	expectError(t, evalSource(t, `1 | "s"`), diagnostics.ErrR001, "type mismatch")
}
