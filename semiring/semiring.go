// Package semiring defines the two-operation combination capability used by
// validations that support alternation: Add combines failed alternatives,
// Mul combines failed conjuncts. Like the semigroup package, the interface is
// a bound for combining operations, not a constraint on containers.
package semiring

// Semiring is a generic interface for types with two associative combinations.
// Add must be commutative with identity Zero; Mul must have identity One and
// distribute over Add; Zero annihilates Mul. Zero and One must return their
// elements regardless of the receiver, so they can be called on the zero
// value of T.
type Semiring[T any] interface {
	Add(other T) T
	Mul(other T) T
	Zero() T
	One() T
}

// Int is the ordinary integer semiring: Add is addition, Mul multiplication.
type Int int

func (i Int) Add(other Int) Int {
	return i + other
}

func (i Int) Mul(other Int) Int {
	return i * other
}

func (Int) Zero() Int {
	return 0
}

func (Int) One() Int {
	return 1
}

// Free is the free semiring over T: a list of alternatives, each alternative
// a list of conjoined items. Add concatenates the alternatives; Mul pairs
// every alternative of the left operand with every alternative of the right.
// This is the shape error accumulation naturally takes when validations are
// composed with both conjunction and alternation.
type Free[T any] [][]T

// Lift wraps a single item as a Free value with one single-item alternative.
func Lift[T any](item T) Free[T] {
	return Free[T]{{item}}
}

func (f Free[T]) Add(other Free[T]) Free[T] {
	combined := make(Free[T], 0, len(f)+len(other))
	combined = append(combined, f...)
	combined = append(combined, other...)

	return combined
}

func (f Free[T]) Mul(other Free[T]) Free[T] {
	combined := make(Free[T], 0, len(f)*len(other))

	for _, left := range f {
		for _, right := range other {
			alternative := make([]T, 0, len(left)+len(right))
			alternative = append(alternative, left...)
			alternative = append(alternative, right...)
			combined = append(combined, alternative)
		}
	}

	return combined
}

func (Free[T]) Zero() Free[T] {
	return nil
}

func (Free[T]) One() Free[T] {
	return Free[T]{{}}
}
