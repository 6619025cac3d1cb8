package semigroup

// Str is a string carrier whose combination is concatenation.
// The identity is the empty string.
type Str string

func (s Str) Combine(other Str) Str {
	return s + other
}

func (Str) Empty() Str {
	return ""
}

// Sum is an int carrier whose combination is addition. The identity is 0.
type Sum int

func (s Sum) Combine(other Sum) Sum {
	return s + other
}

func (Sum) Empty() Sum {
	return 0
}

// Product is an int carrier whose combination is multiplication.
// The identity is 1.
type Product int

func (p Product) Combine(other Product) Product {
	return p * other
}

func (Product) Empty() Product {
	return 1
}

// All is a bool carrier whose combination is logical AND.
// The identity is true.
type All bool

func (a All) Combine(other All) All {
	return a && other
}

func (All) Empty() All {
	return true
}

// Any is a bool carrier whose combination is logical OR.
// The identity is false.
type Any bool

func (a Any) Combine(other Any) Any {
	return a || other
}

func (Any) Empty() Any {
	return false
}

// List is a slice carrier whose combination is ordered concatenation.
// The identity is the empty list. Combine never aliases either operand's
// backing array, so carried values stay immutable.
type List[T any] []T

func (l List[T]) Combine(other List[T]) List[T] {
	combined := make(List[T], 0, len(l)+len(other))
	combined = append(combined, l...)
	combined = append(combined, other...)

	return combined
}

func (List[T]) Empty() List[T] {
	return nil
}
