package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOrNone(t *testing.T) {
	t.Parallel()

	all := AllOrNone(WithValue(1), WithValue(2))
	assert.Equal(t, []int{1, 2}, all.Unwrap())

	assert.True(t, AllOrNone(WithValue(1), WithValue(2), None[int]()).IsNone())

	first := AllOrNone(WithValue(1), NotFound[int]("a"), NotFound[int]("b"))
	assert.True(t, first.IsNotFound())
	assert.Equal(t, []string{"a"}, first.What())

	assert.Equal(t, []int{}, AllOrNone[int]().Unwrap())
}

func TestAllValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 3}, AllValues(WithValue(1), None[int](), WithValue(3), NotFound[int]("x")))
	assert.Empty(t, AllValues(None[int]()))
}

func TestAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Any(None[int](), WithValue(2), WithValue(3)).Unwrap())
	assert.True(t, Any(None[int](), NotFound[int]("x")).IsNone())
	assert.True(t, Any[int]().IsNone())
}
