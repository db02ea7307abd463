package evaluator

import (
	"io"
	"os"

	"github.com/funvibe/pipefix/internal/ast"
)

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

type Evaluator struct {
	Out io.Writer
	// CallStack for stack traces on errors
	CallStack []CallFrame
	// CurrentFile being evaluated
	CurrentFile string
}

func New() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return e.nativeBoolToBooleanObject(node.Value)
	case *ast.NilLiteral:
		return NIL
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right, node.Token.Line, node.Token.Column)
	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right, node.Token.Line, node.Token.Column)
	case *ast.LambdaLiteral:
		return &Function{
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
			Line:       node.Token.Line,
			Column:     node.Token.Column,
		}
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	}
	return newError("unknown node type: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object = NIL
	if program.File != "" {
		e.CurrentFile = program.File
	}
	for _, statement := range program.Statements {
		result = e.Eval(statement, env)
		if isError(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, env *Environment) Object {
	value := e.Eval(node.Value, env)
	if isError(value) {
		return value
	}
	// Name anonymous values at their binding site so errors and Inspect
	// can refer to them.
	switch v := value.(type) {
	case *Function:
		if v.Name == "" {
			v.Name = node.Name.Value
		}
	case *Applicator:
		if v.Name == "" {
			v.Name = node.Name.Value
		}
	}
	env.Set(node.Name.Value, value)
	return NIL
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if value, ok := env.Get(node.Value); ok {
		return value
	}
	return newErrorWithLocation(node.Token.Line, node.Token.Column,
		"identifier not found: %s", node.Value)
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	function := e.Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := make([]Object, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		arg := e.Eval(argNode, env)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	e.PushCall(callName(function), e.CurrentFile, node.Token.Line, node.Token.Column)
	result := e.applyFunction(function, args)
	e.PopCall()
	return result
}

// applyFunction invokes any callable object. An Applicator called directly
// forwards to its wrapped operation, so `wrap(f)(a, b)` equals `f(a, b)`.
func (e *Evaluator) applyFunction(fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Fn(e, args...)
	case *Function:
		if len(args) != len(fn.Parameters) {
			return e.newErrorWithStack("wrong number of arguments: %s expects %d, got %d",
				callName(fn), len(fn.Parameters), len(args))
		}
		extendedEnv := NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			extendedEnv.Set(param.Value, args[i])
		}
		return e.Eval(fn.Body, extendedEnv)
	case *ComposedFunction:
		if len(args) != 1 {
			return e.newErrorWithStack("composed function expects 1 argument, got %d", len(args))
		}
		inner := e.applyFunction(fn.G, args)
		if isError(inner) {
			return inner
		}
		return e.applyFunction(fn.F, []Object{inner})
	case *Applicator:
		return e.applyFunction(fn.Fn, args)
	}
	return e.newErrorWithStack("not a function: %s", fn.Type())
}

func callName(fn Object) string {
	switch fn := fn.(type) {
	case *Function:
		if fn.Name != "" {
			return fn.Name
		}
		return "<lambda>"
	case *Builtin:
		return fn.Name
	case *Applicator:
		if fn.Name != "" {
			return fn.Name
		}
		return "<applicator>"
	case *ComposedFunction:
		return "<composed>"
	}
	return "<value>"
}

func (e *Evaluator) nativeBoolToBooleanObject(value bool) *Boolean {
	if value {
		return TRUE
	}
	return FALSE
}
