package result

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqString(a, b string) bool { return a == b }
func eqInt(a, b int) bool       { return a == b }

func TestLeft(t *testing.T) {
	t.Parallel()

	res := Left[string, int]("boom")
	assert.True(t, res.IsLeft())
	assert.False(t, res.IsRight())

	err, ok := res.GetLeft()
	assert.True(t, ok)
	assert.Equal(t, "boom", err)

	val, ok := res.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestRight(t *testing.T) {
	t.Parallel()

	res := Right[string](42)
	assert.True(t, res.IsRight())
	assert.False(t, res.IsLeft())

	val, ok := res.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = res.GetLeft()
	assert.False(t, ok)
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Right[string](42).GetOrElse(99))
	assert.Equal(t, 99, Left[string, int]("boom").GetOrElse(99))
}

func TestFold(t *testing.T) {
	t.Parallel()

	onLeft := func(e string) string { return "L:" + e }
	onRight := func(a int) string { return "R" }

	assert.Equal(t, "L:boom", Fold(Left[string, int]("boom"), onLeft, onRight))
	assert.Equal(t, "R", Fold(Right[string](42), onLeft, onRight))
}

func TestFoldInvokesExactlyOneHandler(t *testing.T) {
	t.Parallel()

	leftCalls, rightCalls := 0, 0
	Fold(Right[string](1),
		func(e string) int { leftCalls++; return 0 },
		func(a int) int { rightCalls++; return a })

	assert.Equal(t, 0, leftCalls)
	assert.Equal(t, 1, rightCalls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Right[string](21), func(a int) int { return a * 2 })
	val, ok := doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 42, val)

	untouched := Map(Left[string, int]("boom"), func(a int) int { return a * 2 })
	err, ok := untouched.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "boom", err)
}

func TestMapLeft(t *testing.T) {
	t.Parallel()

	upper := MapLeft(Left[string, int]("boom"), strings.ToUpper)
	err, ok := upper.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "BOOM", err)

	untouched := MapLeft(Right[string](42), strings.ToUpper)
	val, ok := untouched.Get()
	require.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestBimap(t *testing.T) {
	t.Parallel()

	onLeft := strings.ToUpper
	onRight := func(a int) int { return a + 1 }

	left := Bimap(Left[string, int]("boom"), onLeft, onRight)
	err, ok := left.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "BOOM", err)

	right := Bimap(Right[string](41), onLeft, onRight)
	val, ok := right.Get()
	require.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	half := func(a int) Result[string, int] {
		if a%2 != 0 {
			return Left[string, int]("odd")
		}

		return Right[string](a / 2)
	}

	val, ok := AndThen(Right[string](42), half).Get()
	require.True(t, ok)
	assert.Equal(t, 21, val)

	err, ok := AndThen(Right[string](41), half).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "odd", err)

	// a Left short-circuits: the function must not run
	called := false
	res := AndThen(Left[string, int]("boom"), func(a int) Result[string, int] {
		called = true

		return Right[string](a)
	})
	assert.False(t, called)
	err, ok = res.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "boom", err)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Right[string](42).Equals(Right[string](42), eqString, eqInt))
	assert.False(t, Right[string](42).Equals(Right[string](43), eqString, eqInt))
	assert.True(t, Left[string, int]("e").Equals(Left[string, int]("e"), eqString, eqInt))
	assert.False(t, Left[string, int]("e").Equals(Right[string](42), eqString, eqInt))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	cmpString := strings.Compare
	cmpInt := func(a, b int) int { return a - b }

	// Left orders before Right
	assert.Negative(t, Left[string, int]("z").Compare(Right[string](0), cmpString, cmpInt))
	assert.Positive(t, Right[string](0).Compare(Left[string, int]("z"), cmpString, cmpInt))

	assert.Zero(t, Right[string](1).Compare(Right[string](1), cmpString, cmpInt))
	assert.Negative(t, Right[string](1).Compare(Right[string](2), cmpString, cmpInt))
	assert.Positive(t, Left[string, int]("b").Compare(Left[string, int]("a"), cmpString, cmpInt))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "left(boom)", Left[string, int]("boom").String())
	assert.Equal(t, "right(42)", Right[string](42).String())
}

func TestZeroValueIsLeft(t *testing.T) {
	t.Parallel()

	var res Result[string, int]

	assert.True(t, res.IsLeft())
	err, ok := res.GetLeft()
	assert.True(t, ok)
	assert.Empty(t, err)
}
