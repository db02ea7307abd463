package evaluator

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/funvibe/pipefix/internal/ast"
)

// Function (user-defined lambda)
type Function struct {
	Name       string // binding name if assigned, empty for anonymous lambdas
	Parameters []*ast.Identifier
	Body       ast.Expression
	Env        *Environment
	Line       int // source location for stack traces
	Column     int
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	params := []string{}
	for _, p := range f.Parameters {
		params = append(params, p.Value)
	}
	return fmt.Sprintf("\\%s -> { ... }", strings.Join(params, ", "))
}
func (f *Function) Hash() uint32 {
	// Use pointer address for function identity
	return uint32(uintptr(unsafe.Pointer(f)))
}

type BuiltinFunction func(e *Evaluator, args ...Object) Object

type Builtin struct {
	Fn   BuiltinFunction
	Name string
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function " + b.Name }
func (b *Builtin) Hash() uint32     { return hashString(b.Name) }

// ComposedFunction represents compose(f, g). When called with x, returns
// f(g(x)).
type ComposedFunction struct {
	F Object // applied second
	G Object // applied first
}

func (cf *ComposedFunction) Type() ObjectType { return COMPOSED_FUNC_OBJ }
func (cf *ComposedFunction) Inspect() string  { return "(composed function)" }
func (cf *ComposedFunction) Hash() uint32 {
	return uint32(uintptr(unsafe.Pointer(cf)))
}

// isCallable reports whether obj can be invoked with applyFunction.
func isCallable(obj Object) bool {
	switch obj.(type) {
	case *Function, *Builtin, *ComposedFunction, *Applicator:
		return true
	}
	return false
}
