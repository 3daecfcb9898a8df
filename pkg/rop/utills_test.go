package rop

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var f func()
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil([]int(nil)))
	assert.True(t, IsNil(map[int]int(nil)))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
}

func TestElements(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{1, 2}, slices.Collect(Elements([]int{1, 2})))
	assert.Equal(t, []any{"a", "b"}, slices.Collect(Elements([2]string{"a", "b"})))
	assert.Equal(t, []any{'o', 'k'}, slices.Collect(Elements("ok")))
	assert.Equal(t, []any{"k"}, slices.Collect(Elements(map[string]int{"k": 1})))

	var seq iter.Seq[any] = func(yield func(any) bool) {
		_ = yield(1) && yield(2)
	}
	assert.Equal(t, []any{1, 2}, slices.Collect(Elements(seq)))

	assert.Empty(t, slices.Collect(Elements(42)))
	assert.Empty(t, slices.Collect(Elements(nil)))
	assert.Empty(t, slices.Collect(Elements(struct{}{})))
}

func TestElements_GoIterators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{1, 2, 3}, slices.Collect(Elements(slices.Values([]int{1, 2, 3}))))
	assert.Equal(t, []any{"k"}, slices.Collect(Elements(maps.Keys(map[string]int{"k": 1}))))

	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)
	assert.Equal(t, []any{1, 2}, slices.Collect(Elements(ch)))

	var recvOnly <-chan string = func() chan string {
		c := make(chan string, 1)
		c <- "a"
		close(c)
		return c
	}()
	assert.Equal(t, []any{"a"}, slices.Collect(Elements(recvOnly)))

	// Not iterators: wrong shape, send-only channel, nil function.
	assert.False(t, IsIterable(func(int) bool { return true }))
	assert.False(t, IsIterable(func(func(int, int) bool) {}))
	assert.False(t, IsIterable(make(chan<- int)))
	assert.False(t, IsIterable(iter.Seq[int](nil)))
	assert.False(t, IsIterable(42))
	assert.Empty(t, slices.Collect(Elements(make(chan<- int))))
}

func TestElements_StopsEarlyOnIterator(t *testing.T) {
	t.Parallel()

	pulled := 0
	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; i <= 5; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}
	for v := range Elements(seq) {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, pulled)
}

func TestElements_StopsEarly(t *testing.T) {
	t.Parallel()

	var got []any
	for v := range Elements([]int{1, 2, 3}) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []any{1, 2}, got)
}

func TestAssertionError(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, NewAssertionError("default", nil), "assertion failed: default")
	assert.EqualError(t, NewAssertionError("default", []string{"custom"}), "assertion failed: custom")
	assert.EqualError(t, NewAssertionErrorWithValue("unexpected", nil, 3), "assertion failed: unexpected: 3")
}
