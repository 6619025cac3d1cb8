// Package semigroup defines the combination capabilities required by
// accumulating operations. A semigroup is a type with an associative binary
// combination; a monoid additionally has an identity element for it.
//
// The interfaces are meant to be used as generic bounds on the operations
// that combine values, never as a constraint on the containers themselves.
// The package also ships carrier types for common combinations so callers
// don't have to write wrappers for strings, numbers, bools, and slices.
package semigroup

// Semigroup is a generic interface for types that can combine themselves
// with another value of the same type. Combine must be associative:
// a.Combine(b).Combine(c) equals a.Combine(b.Combine(c)).
type Semigroup[T any] interface {
	Combine(other T) T
}

// Monoid is a Semigroup with an identity element for Combine.
// Empty must return the identity regardless of the receiver, so that it can
// be called on the zero value of T.
type Monoid[T any] interface {
	Semigroup[T]
	Empty() T
}

// CombineAll combines the first value with each of the rest, left to right.
func CombineAll[T Semigroup[T]](first T, rest ...T) T { //nolint:ireturn
	acc := first
	for _, item := range rest {
		acc = acc.Combine(item)
	}

	return acc
}

// Fold combines all items left to right, starting from the identity element.
// Returns the identity when items is empty.
func Fold[T Monoid[T]](items []T) T { //nolint:ireturn
	var zero T

	acc := zero.Empty()
	for _, item := range items {
		acc = acc.Combine(item)
	}

	return acc
}
