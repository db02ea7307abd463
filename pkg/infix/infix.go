// Package infix adapts a two-argument operation to a two-step infix
// protocol for plain Go callers. Go has no operator overloading, so the
// left-bind and apply steps that the pipefix runtime performs through `|`
// dispatch are exposed here as method chaining:
//
//	add := infix.Wrap(func(l, r any) (any, error) {
//		return l.(int) + r.(int), nil
//	})
//	sum, err := add.Left(2).Right(3) // 5
//
// Left is the left-bind step and allocates a fresh immutable intermediate,
// so one wrapped operation can serve any number of concurrent evaluations
// without operand state leaking between them. Right is the apply step.
package infix

import "errors"

// ErrUnboundLeft reports an apply step with no preceding left-bind step,
// i.e. Right called directly on an Applicator.
var ErrUnboundLeft = errors.New("infix: unbound left operand")

// Operation is any two-argument function. The applicator never validates
// operands; errors the operation returns propagate unchanged.
type Operation func(left, right any) (any, error)

// Applicator wraps one Operation. It is immutable after Wrap and safe for
// concurrent use.
type Applicator struct {
	op Operation
}

// Wrap adapts op to the infix protocol. It never fails for a non-nil
// operation and performs no arity or type validation.
func Wrap(op Operation) *Applicator {
	return &Applicator{op: op}
}

// Left performs the left-bind step, capturing the left operand in a fresh
// Bound value. The applicator itself is not modified.
func (a *Applicator) Left(left any) *Bound {
	return &Bound{op: a.op, left: left}
}

// Right on an unwrapped applicator is the apply step arriving without a
// left-bind step; it fails fast with ErrUnboundLeft rather than operating
// on stale state.
func (a *Applicator) Right(right any) (any, error) {
	return nil, ErrUnboundLeft
}

// Bound pairs the operation with a captured left operand. It exists for
// exactly one evaluation.
type Bound struct {
	op   Operation
	left any
}

// Right performs the apply step: it invokes the operation with the captured
// left operand and right, returning the operation's result or error as is.
func (b *Bound) Right(right any) (any, error) {
	return b.op(b.left, right)
}

// Compose returns the composition of f after g: the returned function
// applied to x computes f(g(x)). Wrapping Compose-style operations is how
// the protocol extends to higher-order operands:
//
//	comp := infix.Wrap(func(l, r any) (any, error) {
//		return infix.Compose(l.(func(any) (any, error)), r.(func(any) (any, error))), nil
//	})
//	pipeline, _ := comp.Left(strip).Right(lower)
func Compose(f, g func(any) (any, error)) func(any) (any, error) {
	return func(x any) (any, error) {
		inner, err := g(x)
		if err != nil {
			return nil, err
		}
		return f(inner)
	}
}
