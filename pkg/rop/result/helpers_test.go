package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2}, All(Okay[int, string](1), Okay[int, string](2)).Unwrap())
	assert.Equal(t, "x", All(Okay[int, string](1), Error[int]("x"), Okay[int, string](2)).AssertIsError())
	assert.Equal(t, "first", All(Error[int]("first"), Error[int]("second")).AssertIsError())
	assert.Equal(t, []int{}, All[int, string]().Unwrap())
}

func TestAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Any(Error[int]("a"), Okay[int, string](2), Okay[int, string](3)).Unwrap())

	// Unlike All, every error payload is kept.
	assert.Equal(t, []string{"a", "b"}, Any(Error[int]("a"), Error[int]("b")).AssertIsError())
	assert.Equal(t, []string{}, Any[int, string]().AssertIsError())
}
