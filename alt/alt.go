// Package alt provides a validation type that supports alternation as well
// as accumulation. Where the validation package requires the error type to
// combine one way, this variant requires a semiring: failed conjuncts
// (requirements that must all hold) merge via Mul, and failed alternatives
// (branches where any one suffices) merge via Add. The semiring.Free carrier
// records exactly which combinations of errors ruled out which branches.
package alt

import (
	"fmt"

	"github.com/bklaric/validation/result"
	"github.com/bklaric/validation/semiring"
)

// V represents the outcome of a validation supporting alternation: Invalid
// with an error of type E, or Valid with a value of type A. Exactly one
// variant is populated; values are immutable once constructed.
type V[E any, A any] struct {
	res result.Result[E, A]
}

// Invalid creates a failed validation carrying the given error.
func Invalid[E, A any](err E) V[E, A] {
	return V[E, A]{res: result.Left[E, A](err)}
}

// Valid creates a successful validation carrying the given value.
func Valid[E, A any](value A) V[E, A] {
	return V[E, A]{res: result.Right[E](value)}
}

// FromResult converts a plain Result: Left becomes Invalid, Right Valid.
func FromResult[E, A any](r result.Result[E, A]) V[E, A] {
	return V[E, A]{res: r}
}

// ToResult converts back into a plain Result, preserving structure.
func (v V[E, A]) ToResult() result.Result[E, A] {
	return v.res
}

// IsValid returns true if the validation succeeded.
func (v V[E, A]) IsValid() bool {
	return v.res.IsRight()
}

// IsInvalid returns true if the validation failed.
func (v V[E, A]) IsInvalid() bool {
	return v.res.IsLeft()
}

// Get returns the carried value and whether the validation succeeded.
func (v V[E, A]) Get() (A, bool) { //nolint:ireturn
	return v.res.Get()
}

// GetOrElse returns the carried value, or the default on failure.
func (v V[E, A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	return v.res.GetOrElse(defaultValue)
}

// GetInvalid returns the carried error and whether the validation failed.
func (v V[E, A]) GetInvalid() (E, bool) { //nolint:ireturn
	return v.res.GetLeft()
}

// Equals compares with another validation using the provided equality funcs.
func (v V[E, A]) Equals(other V[E, A], eqInvalid func(E, E) bool, eqValid func(A, A) bool) bool {
	return v.res.Equals(other.res, eqInvalid, eqValid)
}

// String renders as "invalid(err)" or "pure(value)".
func (v V[E, A]) String() string {
	return Fold(v,
		func(err E) string { return fmt.Sprintf("invalid(%v)", err) },
		func(value A) string { return fmt.Sprintf("pure(%v)", value) })
}

// Fold performs case analysis, invoking exactly one handler exactly once.
func Fold[E, A, R any](v V[E, A], onInvalid func(E) R, onValid func(A) R) R { //nolint:ireturn
	return result.Fold(v.res, onInvalid, onValid)
}

// Map transforms the carried value; an Invalid is returned unchanged.
func Map[E, A, B any](v V[E, A], f func(A) B) V[E, B] {
	return V[E, B]{res: result.Map(v.res, f)}
}

// Apply combines two independent validations that must both hold. Both
// operands are fully evaluated; when both have failed their errors merge via
// Mul, left operand first, marking them as conjoined requirements.
func Apply[E semiring.Semiring[E], A, B any](vf V[E, func(A) B], va V[E, A]) V[E, B] {
	fErr, fFailed := vf.GetInvalid()
	aErr, aFailed := va.GetInvalid()

	switch {
	case fFailed && aFailed:
		return Invalid[E, B](fErr.Mul(aErr))
	case fFailed:
		return Invalid[E, B](fErr)
	case aFailed:
		return Invalid[E, B](aErr)
	default:
		f, _ := vf.Get()
		a, _ := va.Get()

		return Valid[E](f(a))
	}
}

// Map2 combines two conjoined validations with a binary function.
func Map2[E semiring.Semiring[E], A, B, C any](va V[E, A], vb V[E, B], f func(A, B) C) V[E, C] {
	curried := Map(va, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})

	return Apply(curried, vb)
}

// Alt picks between two alternative validations: the leftmost Valid operand
// wins. When both have failed their errors merge via Add, left operand
// first, marking them as rejected alternatives.
func Alt[E semiring.Semiring[E], A any](v1, v2 V[E, A]) V[E, A] {
	if v1.IsValid() {
		return v1
	}

	if v2.IsValid() {
		return v2
	}

	e1, _ := v1.GetInvalid()
	e2, _ := v2.GetInvalid()

	return Invalid[E, A](e1.Add(e2))
}

// Never returns the identity validation for Alt: Invalid of E's Zero, the
// alternative that always fails with no errors to report. E's Zero must be
// callable on its zero value, which holds for the semiring package carriers.
func Never[E semiring.Semiring[E], A any]() V[E, A] {
	var zero E

	return Invalid[E, A](zero.Zero())
}

// Traverse validates every item with f, first-error-wins on failure, same as
// the validation package's Traverse.
func Traverse[E semiring.Semiring[E], T, A any](items []T, f func(T) V[E, A]) V[E, []A] {
	values := make([]A, 0, len(items))

	for _, item := range items {
		v := f(item)
		if err, failed := v.GetInvalid(); failed {
			return Invalid[E, []A](err)
		}

		value, _ := v.Get()
		values = append(values, value)
	}

	return Valid[E](values)
}

// Sequence collapses a slice of validations, first-error-wins on failure.
func Sequence[E semiring.Semiring[E], A any](items []V[E, A]) V[E, []A] {
	return Traverse(items, func(v V[E, A]) V[E, A] { return v })
}
