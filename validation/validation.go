// Package validation provides an applicative validation type that
// accumulates independent failures instead of stopping at the first one.
//
// A V is either Invalid, carrying an accumulated error value, or Valid,
// carrying a successfully produced value. It is a thin wrapper over
// result.Result that replaces the usual short-circuiting combination with an
// accumulating one: when two independent validations are combined with Apply
// and both have failed, their errors are merged via the error type's own
// Combine, so the caller sees every violation in one pass.
//
// The error type is caller-defined. It must implement semigroup.Semigroup
// for the combining operations only; the constructors and accessors work for
// any E and A. The Errors carrier in this package is a ready-made error type
// for the common case.
//
// Example:
//
//	parsePort := func(s string) validation.V[validation.Errors, int] { ... }
//	parseHost := func(s string) validation.V[validation.Errors, string] { ... }
//
//	addr := validation.Map2(parseHost(host), parsePort(port),
//	    func(h string, p int) string { return fmt.Sprintf("%s:%d", h, p) })
//
// If both parses fail, addr carries both errors.
package validation

import (
	"fmt"

	"github.com/bklaric/validation/result"
	"github.com/bklaric/validation/semigroup"
)

// V represents the outcome of a validation: Invalid with an error of type E,
// or Valid with a value of type A. Exactly one variant is populated.
// The zero value is Invalid of E's zero value. Values are immutable once
// constructed.
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

// FromResult converts a plain Result into a validation, preserving structure:
// Left becomes Invalid and Right becomes Valid.
func FromResult[E, A any](r result.Result[E, A]) V[E, A] {
	return V[E, A]{res: r}
}

// ToResult converts the validation back into a plain Result, preserving
// structure: Invalid becomes Left and Valid becomes Right. Use this once
// accumulation is no longer needed and short-circuiting chaining should take
// over.
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

// Get returns the carried value and a boolean indicating whether the
// validation succeeded.
func (v V[E, A]) Get() (A, bool) { //nolint:ireturn
	return v.res.Get()
}

// GetOrElse returns the carried value if the validation succeeded, or the
// provided default value otherwise.
func (v V[E, A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	return v.res.GetOrElse(defaultValue)
}

// GetInvalid returns the carried error and a boolean indicating whether the
// validation failed.
func (v V[E, A]) GetInvalid() (E, bool) { //nolint:ireturn
	return v.res.GetLeft()
}

// Equals compares this validation with another using the provided equality
// functions. Two validations are equal if they are the same variant and
// their payloads are equal according to the corresponding function.
func (v V[E, A]) Equals(other V[E, A], eqInvalid func(E, E) bool, eqValid func(A, A) bool) bool {
	return v.res.Equals(other.res, eqInvalid, eqValid)
}

// Compare orders this validation against another using the provided
// comparator functions. Invalid orders before Valid.
func (v V[E, A]) Compare(other V[E, A], cmpInvalid func(E, E) int, cmpValid func(A, A) int) int {
	return v.res.Compare(other.res, cmpInvalid, cmpValid)
}

// String returns a string representation of the validation:
// "invalid(err)" or "pure(value)".
func (v V[E, A]) String() string {
	return Fold(v,
		func(err E) string { return fmt.Sprintf("invalid(%v)", err) },
		func(value A) string { return fmt.Sprintf("pure(%v)", value) })
}

// Fold performs case analysis on a validation: it applies onInvalid to the
// error if the validation failed, or onValid to the value if it succeeded.
// Exactly one handler is invoked, exactly once. Every other read operation
// on V is behaviorally equivalent to a Fold.
func Fold[E, A, R any](v V[E, A], onInvalid func(E) R, onValid func(A) R) R { //nolint:ireturn
	return result.Fold(v.res, onInvalid, onValid)
}

// Map transforms the carried value using the provided function.
// An Invalid validation is returned unchanged.
func Map[E, A, B any](v V[E, A], f func(A) B) V[E, B] {
	return V[E, B]{res: result.Map(v.res, f)}
}

// MapInvalid transforms the carried error using the provided function.
// A Valid validation is returned unchanged.
func MapInvalid[E, E2, A any](v V[E, A], f func(E) E2) V[E2, A] {
	return V[E2, A]{res: result.MapLeft(v.res, f)}
}

// Bimap transforms both slots at once: onInvalid on the error of an Invalid,
// onValid on the value of a Valid.
func Bimap[E, E2, A, B any](v V[E, A], onInvalid func(E) E2, onValid func(A) B) V[E2, B] {
	return V[E2, B]{res: result.Bimap(v.res, onInvalid, onValid)}
}

// Apply combines two independent validations: a validation of a function and
// a validation of its argument. Both operands are fully evaluated before
// combination; nothing short-circuits.
//
//   - both Valid: the function is applied to the argument.
//   - one Invalid: its error is propagated.
//   - both Invalid: the errors are merged via E's Combine, left operand
//     first, so combining N validations left to right reports errors in the
//     order the validations were listed.
//
// Together with Valid, Apply satisfies the applicative laws:
// Apply(Valid(identity), v) equals v, and
// Apply(Valid(f), Valid(x)) equals Valid(f(x)).
func Apply[E semigroup.Semigroup[E], A, B any](vf V[E, func(A) B], va V[E, A]) V[E, B] {
	fErr, fFailed := vf.GetInvalid()
	aErr, aFailed := va.GetInvalid()

	switch {
	case fFailed && aFailed:
		return Invalid[E, B](fErr.Combine(aErr))
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

// Map2 combines two independent validations with a binary function.
// Error accumulation follows Apply.
func Map2[E semigroup.Semigroup[E], A, B, C any](va V[E, A], vb V[E, B], f func(A, B) C) V[E, C] {
	curried := Map(va, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})

	return Apply(curried, vb)
}

// Map3 combines three independent validations with a ternary function.
// Error accumulation follows Apply.
func Map3[E semigroup.Semigroup[E], A, B, C, D any](va V[E, A], vb V[E, B], vc V[E, C], f func(A, B, C) D) V[E, D] {
	curried := Map(va, func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	})

	return Apply(Apply(curried, vb), vc)
}

// Merge combines two validations of the same value type. Errors merge via
// E's Combine as in Apply; when both sides are Valid, the values merge via
// A's Combine instead of one side being discarded. Merge is associative
// whenever both Combines are.
func Merge[E semigroup.Semigroup[E], A semigroup.Semigroup[A]](v1, v2 V[E, A]) V[E, A] {
	combined := Map(v1, func(a1 A) func(A) A {
		return func(a2 A) A { return a1.Combine(a2) }
	})

	return Apply(combined, v2)
}

// Empty returns the identity validation for Merge: Valid of A's identity
// element. A's Empty must be callable on its zero value, which holds for all
// carriers in the semigroup package.
func Empty[E any, A semigroup.Monoid[A]]() V[E, A] {
	var zero A

	return Valid[E](zero.Empty())
}

// AndThen chains a validation-producing function after this validation.
// Unlike Apply this short-circuits: the function runs only on a Valid input,
// and an Invalid is propagated unchanged with no accumulation. Use it when a
// later check only makes sense once an earlier one has passed.
func AndThen[E, A, B any](v V[E, A], f func(A) V[E, B]) V[E, B] {
	if err, failed := v.GetInvalid(); failed {
		return Invalid[E, B](err)
	}

	value, _ := v.Get()

	return f(value)
}
