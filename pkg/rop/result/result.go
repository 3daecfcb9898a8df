package result

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/maybe"
)

// Result holds either a success value of type T or an error payload of type
// E. E is not required to implement error. The zero Result is an Error
// holding the zero E.
type Result[T, E any] struct {
	value T
	err   E
	okay  bool
}

func Okay[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, okay: true}
}

// OkayVoid is a success with no meaningful payload.
func OkayVoid[E any]() Result[struct{}, E] {
	return Okay[struct{}, E](struct{}{})
}

func Error[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From adapts a Go (value, error) pair. A non-nil err is an Error.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Error[T](err)
	}
	return Okay[T, error](v)
}

func (r Result[T, E]) IsOkay() bool {
	return r.okay
}

func (r Result[T, E]) IsError() bool {
	return !r.okay
}

// Get returns the success value and whether there is one.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.okay
}

// Err returns the error payload and whether there is one.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.okay
}

// Unwrap returns the success value or panics with the error payload.
func (r Result[T, E]) Unwrap() T {
	if !r.okay {
		panic(r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(alt T) T {
	if !r.okay {
		return alt
	}
	return r.value
}

// UnwrapOrElse calls fn with the error payload only when r is an Error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.okay {
		return fn(r.err)
	}
	return r.value
}

// UnwrapOrNil returns a pointer to a copy of the success value, or nil.
func (r Result[T, E]) UnwrapOrNil() *T {
	if !r.okay {
		return nil
	}
	v := r.value
	return &v
}

func (r Result[T, E]) UnwrapOrZero() T {
	if !r.okay {
		var zero T
		return zero
	}
	return r.value
}

// UnwrapOrPanic returns the success value or panics with override. A nil
// override, typed nil pointers included, panics with the error payload itself.
func (r Result[T, E]) UnwrapOrPanic(override any) T {
	if !r.okay {
		if rop.IsNil(override) {
			panic(r.err)
		}
		panic(override)
	}
	return r.value
}

// AssertIsOkay is a test helper: it returns the success value or panics with
// a *rop.AssertionError carrying the error payload.
func (r Result[T, E]) AssertIsOkay(msg ...string) T {
	if !r.okay {
		panic(rop.NewAssertionErrorWithValue("expected okay, got an error", msg, r.err))
	}
	return r.value
}

// AssertIsError is a test helper: it returns the error payload or panics
// with a *rop.AssertionError carrying the success value.
func (r Result[T, E]) AssertIsError(msg ...string) E {
	if r.okay {
		panic(rop.NewAssertionErrorWithValue("expected an error, got okay", msg, r.value))
	}
	return r.err
}

// Or returns r if it is Okay, other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.okay {
		return r
	}
	return other
}

// OrElse calls fn with the error payload only when r is an Error.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.okay {
		return r
	}
	return fn(r.err)
}

// AndThen is the same-type form of the package function AndThen.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	return AndThen(r, fn)
}

// Map is the same-type form of the package function Map.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	return Map(r, fn)
}

// MapError is the same-type form of the package function MapError.
func (r Result[T, E]) MapError(fn func(E) E) Result[T, E] {
	return MapError(r, fn)
}

// Inspect calls fn with the success value, if any, and returns r.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.okay {
		fn(r.value)
	}
	return r
}

// InspectError calls fn with the error payload, if any, and returns r.
func (r Result[T, E]) InspectError(fn func(E)) Result[T, E] {
	if !r.okay {
		fn(r.err)
	}
	return r
}

// ToMaybe keeps the success value and drops the error payload.
func (r Result[T, E]) ToMaybe() maybe.Maybe[T] {
	if !r.okay {
		return maybe.None[T]()
	}
	return maybe.WithValue(r.value)
}

// Iter yields the elements of an iterable success value. An Error and an
// Okay holding a non-iterable payload both yield nothing.
func (r Result[T, E]) Iter() iter.Seq[any] {
	if !r.okay {
		return func(func(any) bool) {}
	}
	return rop.Elements(r.value)
}

func (r Result[T, E]) String() string {
	if r.okay {
		return fmt.Sprintf("Okay(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.err)
}

func (r Result[T, E]) isResult() {}

// IsResult reports whether x is a Result of any type. A pointer to a Result
// is not a Result.
func IsResult(x any) bool {
	if x == nil || reflect.TypeOf(x).Kind() == reflect.Pointer {
		return false
	}
	_, ok := x.(interface{ isResult() })
	return ok
}

var _ rop.Fallible = Result[int, error]{}
