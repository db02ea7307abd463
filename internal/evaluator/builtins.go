package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/funvibe/pipefix/internal/config"
)

// Builtins is the prelude. Operations wrapped with `wrap` are invoked only
// at the apply step of a pipe chain, so arity and operand types are checked
// here, never by the applicator.
var Builtins = map[string]*Builtin{
	config.WrapFuncName: {
		Name: config.WrapFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("wrap expects 1 argument, got %d", len(args))
			}
			if !isCallable(args[0]) {
				return e.newErrorWithStack("wrap expects a function, got %s", args[0].Type())
			}
			return &Applicator{Fn: args[0]}
		},
	},
	config.ComposeFuncName: {
		Name: config.ComposeFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 2 {
				return e.newErrorWithStack("compose expects 2 arguments, got %d", len(args))
			}
			if !isCallable(args[0]) {
				return e.newErrorWithStack("compose expects a function, got %s", args[0].Type())
			}
			if !isCallable(args[1]) {
				return e.newErrorWithStack("compose expects a function, got %s", args[1].Type())
			}
			return &ComposedFunction{F: args[0], G: args[1]}
		},
	},
	config.PrintFuncName: {
		Name: config.PrintFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				parts = append(parts, arg.Inspect())
			}
			fmt.Fprintln(e.Out, strings.Join(parts, " "))
			return NIL
		},
	},
	config.ShowFuncName: {
		Name: config.ShowFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("show expects 1 argument, got %d", len(args))
			}
			return &String{Value: args[0].Inspect()}
		},
	},
	config.TypeOfFuncName: {
		Name: config.TypeOfFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("typeOf expects 1 argument, got %d", len(args))
			}
			return &String{Value: string(args[0].Type())}
		},
	},
	config.LenFuncName: {
		Name: config.LenFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("len expects 1 argument, got %d", len(args))
			}
			str, ok := args[0].(*String)
			if !ok {
				return e.newErrorWithStack("len expects a string, got %s", args[0].Type())
			}
			return &Integer{Value: int64(len([]rune(str.Value)))}
		},
	},
	config.LowerFuncName: {
		Name: config.LowerFuncName,
		Fn:   stringBuiltin(config.LowerFuncName, strings.ToLower),
	},
	config.UpperFuncName: {
		Name: config.UpperFuncName,
		Fn:   stringBuiltin(config.UpperFuncName, strings.ToUpper),
	},
	config.StripFuncName: {
		Name: config.StripFuncName,
		Fn:   stringBuiltin(config.StripFuncName, strings.TrimSpace),
	},
	config.AbsFuncName: {
		Name: config.AbsFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("abs expects 1 argument, got %d", len(args))
			}
			switch arg := args[0].(type) {
			case *Integer:
				if arg.Value < 0 {
					return &Integer{Value: -arg.Value}
				}
				return arg
			case *Float:
				return &Float{Value: math.Abs(arg.Value)}
			}
			return e.newErrorWithStack("abs expects a number, got %s", args[0].Type())
		},
	},
	config.SquareFuncName: {
		Name: config.SquareFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return e.newErrorWithStack("square expects 1 argument, got %d", len(args))
			}
			switch arg := args[0].(type) {
			case *Integer:
				return &Integer{Value: arg.Value * arg.Value}
			case *Float:
				return &Float{Value: arg.Value * arg.Value}
			}
			return e.newErrorWithStack("square expects a number, got %s", args[0].Type())
		},
	},
}

func stringBuiltin(name string, fn func(string) string) BuiltinFunction {
	return func(e *Evaluator, args ...Object) Object {
		if len(args) != 1 {
			return e.newErrorWithStack("%s expects 1 argument, got %d", name, len(args))
		}
		str, ok := args[0].(*String)
		if !ok {
			return e.newErrorWithStack("%s expects a string, got %s", name, args[0].Type())
		}
		return &String{Value: fn(str.Value)}
	}
}

// RegisterBuiltins installs the prelude into env, including the ready-made
// composer applicator (`f | comp | g`).
func RegisterBuiltins(env *Environment) {
	for name, builtin := range Builtins {
		env.Set(name, builtin)
	}
	env.Set(config.ComposerName, &Applicator{
		Fn:   Builtins[config.ComposeFuncName],
		Name: config.ComposerName,
	})
}
