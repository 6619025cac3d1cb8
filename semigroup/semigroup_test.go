package semigroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Str("ab"), Str("a").Combine(Str("b")))
	assert.Equal(t, Str(""), Str("").Empty())

	// associativity
	left := Str("a").Combine(Str("b")).Combine(Str("c"))
	right := Str("a").Combine(Str("b").Combine(Str("c")))
	assert.Equal(t, left, right)
}

func TestSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Sum(7), Sum(3).Combine(Sum(4)))
	assert.Equal(t, Sum(0), Sum(42).Empty())
}

func TestProduct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Product(12), Product(3).Combine(Product(4)))
	assert.Equal(t, Product(1), Product(42).Empty())
}

func TestAllAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, All(false), All(true).Combine(All(false)))
	assert.Equal(t, All(true), All(true).Combine(All(true)))
	assert.Equal(t, All(true), All(false).Empty())

	assert.Equal(t, Any(true), Any(true).Combine(Any(false)))
	assert.Equal(t, Any(false), Any(false).Combine(Any(false)))
	assert.Equal(t, Any(false), Any(true).Empty())
}

func TestList(t *testing.T) {
	t.Parallel()

	first := List[int]{1, 2}
	second := List[int]{3}

	assert.Equal(t, List[int]{1, 2, 3}, first.Combine(second))
	assert.Empty(t, first.Empty())

	// operands are not mutated or aliased
	combined := first.Combine(second)
	combined[0] = 99
	assert.Equal(t, List[int]{1, 2}, first)
}

func TestCombineAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Str("abc"), CombineAll(Str("a"), Str("b"), Str("c")))
	assert.Equal(t, Str("a"), CombineAll(Str("a")))
	assert.Equal(t, Sum(10), CombineAll(Sum(1), Sum(2), Sum(3), Sum(4)))
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Sum(6), Fold([]Sum{1, 2, 3}))
	assert.Equal(t, Sum(0), Fold([]Sum{}))
	assert.Equal(t, Str("xyz"), Fold([]Str{"x", "y", "z"}))
	assert.Equal(t, Product(1), Fold[Product](nil))
}
