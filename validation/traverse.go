package validation

import "github.com/bklaric/validation/semigroup"

// Traverse validates every item of a slice with f and collects the results,
// order-preserving, into a single validation of a slice.
//
// Unlike Apply, failure here is first-error-wins: the items are folded left
// to right, and the first Invalid produced by f is returned alone, without
// visiting the remaining items or merging later errors. This is the
// standard sequential traversal over the two-variant representation, and it
// is deliberately kept distinct from Apply's accumulation. Use TraverseAll
// for a variant that visits every item and merges all errors.
func Traverse[E semigroup.Semigroup[E], T, A any](items []T, f func(T) V[E, A]) V[E, []A] {
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

// Sequence collapses a slice of validations into a single validation of a
// slice. It shares Traverse's first-error-wins behavior: if any item is
// Invalid, the first such error alone is returned.
func Sequence[E semigroup.Semigroup[E], A any](items []V[E, A]) V[E, []A] {
	return Traverse(items, func(v V[E, A]) V[E, A] { return v })
}

// TraverseAll is the accumulating variant of Traverse: every item is
// visited, and the errors of all Invalid results are merged via E's Combine
// in item order. Valid items still collect order-preserving into a slice.
func TraverseAll[E semigroup.Semigroup[E], T, A any](items []T, f func(T) V[E, A]) V[E, []A] {
	acc := Valid[E](make([]A, 0, len(items)))

	for _, item := range items {
		acc = Map2(acc, f(item), func(values []A, value A) []A {
			return append(values, value)
		})
	}

	return acc
}

// SequenceAll is the accumulating variant of Sequence: the errors of all
// Invalid items are merged via E's Combine in item order.
func SequenceAll[E semigroup.Semigroup[E], A any](items []V[E, A]) V[E, []A] {
	return TraverseAll(items, func(v V[E, A]) V[E, A] { return v })
}
