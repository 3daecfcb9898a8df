package result

import (
	"context"
	"errors"
)

// ErrUnsettled is returned by Await when the channel closes without a result.
var ErrUnsettled = errors.New("result: closed without settling")

// Wrap calls fn and returns Okay with its return value, or Error with the
// recovered panic value exactly as it was passed to panic.
func Wrap[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if p := recover(); p != nil {
			res = Error[T, any](p)
		}
	}()
	return Okay[T, any](fn())
}

// Try calls fn and converts its (value, error) pair. Panics are not
// recovered; use Wrap for that.
func Try[T any](fn func() (T, error)) Result[T, error] {
	v, err := fn()
	return From(v, err)
}

// WrapAsync runs fn in its own goroutine under Wrap. The returned channel
// receives exactly one Result and is then closed. There is no retry, timeout
// or cancellation.
func WrapAsync[T any](fn func() T) <-chan Result[T, any] {
	return settle(func() Result[T, any] { return Wrap(fn) })
}

// TryAsync is WrapAsync for functions returning (value, error).
func TryAsync[T any](fn func() (T, error)) <-chan Result[T, error] {
	return settle(func() Result[T, error] { return Try(fn) })
}

func settle[T, E any](run func() Result[T, E]) <-chan Result[T, E] {
	out := make(chan Result[T, E], 1)
	go func() {
		defer close(out)
		out <- run()
	}()
	return out
}

// Await blocks until fut settles or ctx is done. Leaving on ctx does not stop
// the computation behind fut.
func Await[T, E any](ctx context.Context, fut <-chan Result[T, E]) (Result[T, E], error) {
	select {
	case r, ok := <-fut:
		if !ok {
			return Result[T, E]{}, ErrUnsettled
		}
		return r, nil
	case <-ctx.Done():
		return Result[T, E]{}, ctx.Err()
	}
}
