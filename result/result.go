// Package result provides a generic two-variant disjoint result type.
// A Result is either Left, carrying an error value, or Right, carrying a
// successfully produced value; exactly one variant is ever populated.
// Chaining with AndThen short-circuits on the first Left, which is the
// conventional sequential error-handling behavior. For combination that
// accumulates errors instead, see the validation package, which wraps this
// type with different combination semantics.
package result

import "fmt"

// Result represents either an error of type E (Left) or a value of type A
// (Right). The zero value is Left of E's zero value. Values are immutable
// once constructed.
type Result[E any, A any] struct {
	err     E
	value   A
	isRight bool
}

// Left creates a Result carrying the given error.
func Left[E, A any](err E) Result[E, A] {
	return Result[E, A]{err: err}
}

// Right creates a Result carrying the given value.
func Right[E, A any](value A) Result[E, A] {
	return Result[E, A]{value: value, isRight: true}
}

// IsRight returns true if the Result carries a value.
func (r Result[E, A]) IsRight() bool {
	return r.isRight
}

// IsLeft returns true if the Result carries an error.
func (r Result[E, A]) IsLeft() bool {
	return !r.isRight
}

// Get returns the carried value and a boolean indicating whether the Result
// is Right. This is the safe way to extract a value from a Result.
func (r Result[E, A]) Get() (A, bool) { //nolint:ireturn
	return r.value, r.isRight
}

// GetOrElse returns the carried value if the Result is Right, or the
// provided default value otherwise.
func (r Result[E, A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if r.isRight {
		return r.value
	}

	return defaultValue
}

// GetLeft returns the carried error and a boolean indicating whether the
// Result is Left.
func (r Result[E, A]) GetLeft() (E, bool) { //nolint:ireturn
	return r.err, !r.isRight
}

// Equals compares this Result with another using the provided equality
// functions. Two Results are equal if they are the same variant and their
// payloads are equal according to the corresponding function.
func (r Result[E, A]) Equals(other Result[E, A], eqLeft func(E, E) bool, eqRight func(A, A) bool) bool {
	if r.isRight != other.isRight {
		return false
	}

	if r.isRight {
		return eqRight(r.value, other.value)
	}

	return eqLeft(r.err, other.err)
}

// Compare orders this Result against another using the provided comparator
// functions, each returning a negative, zero, or positive int. Left orders
// before Right; same-variant payloads are ordered by the corresponding
// comparator.
func (r Result[E, A]) Compare(other Result[E, A], cmpLeft func(E, E) int, cmpRight func(A, A) int) int {
	switch {
	case r.isRight && other.isRight:
		return cmpRight(r.value, other.value)
	case !r.isRight && !other.isRight:
		return cmpLeft(r.err, other.err)
	case r.isRight:
		return 1
	default:
		return -1
	}
}

// String returns a string representation of the Result:
// "left(err)" or "right(value)".
func (r Result[E, A]) String() string {
	if r.isRight {
		return fmt.Sprintf("right(%v)", r.value)
	} else {
		return fmt.Sprintf("left(%v)", r.err)
	}
}

// Fold performs case analysis on a Result: it applies onLeft to the error if
// the Result is Left, or onRight to the value if it is Right. Exactly one
// handler is invoked, exactly once.
func Fold[E, A, R any](r Result[E, A], onLeft func(E) R, onRight func(A) R) R { //nolint:ireturn
	if r.isRight {
		return onRight(r.value)
	} else {
		return onLeft(r.err)
	}
}

// Map transforms the carried value using the provided function.
// A Left Result is returned unchanged.
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.isRight {
		return Right[E](f(r.value))
	} else {
		return Left[E, B](r.err)
	}
}

// MapLeft transforms the carried error using the provided function.
// A Right Result is returned unchanged.
func MapLeft[E, E2, A any](r Result[E, A], f func(E) E2) Result[E2, A] {
	if r.isRight {
		return Right[E2](r.value)
	} else {
		return Left[E2, A](f(r.err))
	}
}

// Bimap transforms both slots at once: onLeft on the error of a Left,
// onRight on the value of a Right.
func Bimap[E, E2, A, B any](r Result[E, A], onLeft func(E) E2, onRight func(A) B) Result[E2, B] {
	if r.isRight {
		return Right[E2](onRight(r.value))
	} else {
		return Left[E2, B](onLeft(r.err))
	}
}

// AndThen chains a Result-producing function after this Result.
// The function runs only if the Result is Right; a Left short-circuits and is
// propagated unchanged.
func AndThen[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.isRight {
		return f(r.value)
	} else {
		return Left[E, B](r.err)
	}
}
