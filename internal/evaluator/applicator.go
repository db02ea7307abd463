package evaluator

import (
	"unsafe"

	"github.com/funvibe/pipefix/internal/diagnostics"
)

// The `|` operator resolves through two hooks, tried in this order by
// evalPipeExpression: the forward hook on the left operand, the builtin
// type-pair rules, then the reflected hook on the right operand.

// pipeCombiner is the forward hook: the value is the left operand of `|`.
type pipeCombiner interface {
	combinePipe(e *Evaluator, right Object) Object
}

// reflectedPipeCombiner is the reflected hook: the value is the right
// operand of `|` and the left operand's own handling declined.
type reflectedPipeCombiner interface {
	combinePipeReflected(e *Evaluator, left Object) Object
}

// Applicator adapts a two-argument operation to the `|` protocol:
// `left | wrap(f) | right` evaluates to f(left, right). Constructed by the
// `wrap` builtin, immutable afterwards, so one applicator can serve any
// number of evaluations, sequential or concurrent.
type Applicator struct {
	Fn   Object // the wrapped operation; arity is checked only on invocation
	Name string // binding name for Inspect, may be empty
}

func (a *Applicator) Type() ObjectType { return APPLICATOR_OBJ }
func (a *Applicator) Inspect() string {
	if a.Name != "" {
		return "applicator " + a.Name
	}
	return "applicator " + a.Fn.Inspect()
}
func (a *Applicator) Hash() uint32 {
	return uint32(uintptr(unsafe.Pointer(a)))
}

// combinePipeReflected is the left-bind step: `left | a` yields a fresh
// bound applicator holding the operation and the left operand. The
// applicator itself is never mutated.
func (a *Applicator) combinePipeReflected(e *Evaluator, left Object) Object {
	return &BoundApplicator{Fn: a.Fn, Left: left}
}

// combinePipe fires when the applicator is the left operand of `|`, which
// means the apply step arrived without a left-bind step (the applicator was
// used prefix-only, e.g. `add | 3`). Fail fast instead of guessing.
func (a *Applicator) combinePipe(e *Evaluator, right Object) Object {
	err := e.newErrorWithStack("unbound left operand: %s is not bound to a left operand", a.Inspect())
	err.Code = diagnostics.ErrR002
	return err
}

// BoundApplicator is the intermediate value produced by the left-bind step.
// It exists for exactly one evaluation of the enclosing expression.
type BoundApplicator struct {
	Fn   Object
	Left Object
}

func (b *BoundApplicator) Type() ObjectType { return BOUND_APPLICATOR_OBJ }
func (b *BoundApplicator) Inspect() string  { return "bound applicator" }
func (b *BoundApplicator) Hash() uint32 {
	return uint32(uintptr(unsafe.Pointer(b)))
}

// combinePipe is the apply step: invoke the operation with the stored left
// operand and the incoming right operand. The result is a plain value, so a
// following `|` sees it as an ordinary left operand and chains evaluate
// strictly left to right. Errors from the operation propagate unchanged.
func (b *BoundApplicator) combinePipe(e *Evaluator, right Object) Object {
	return e.applyFunction(b.Fn, []Object{b.Left, right})
}
