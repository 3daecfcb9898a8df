package maybe

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/ib-77/railway/pkg/rop"
)

type kind uint8

const (
	kindNone kind = iota
	kindNotFound
	kindValue
)

// Maybe holds either a value of type T or nothing. The zero Maybe is None.
type Maybe[T any] struct {
	value T
	what  []string
	kind  kind
}

// Empty is a Value with no meaningful payload, for operations that succeed
// without producing anything.
var Empty = WithValue(struct{}{})

// WithValue returns Value(v) for any v, nil included: WithValue((*T)(nil))
// holds a nil pointer and marshals to JSON null, which decodes back as None.
// Use Wrap or FromPointer when nil must mean absence.
func WithValue[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, kind: kindValue}
}

// Wrap returns None when v is nil (a nil interface, pointer, map, slice,
// channel or function) and Value(v) otherwise. Zero values that are not nil
// are values.
func Wrap[T any](v T) Maybe[T] {
	if rop.IsNil(v) {
		return None[T]()
	}
	return WithValue(v)
}

// FromPointer dereferences p. A nil p is None.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return WithValue(*p)
}

// FromOk adapts the comma-ok idiom: m, ok := lookup[k]; maybe.FromOk(m, ok).
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return WithValue(v)
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// NotFound is a None that remembers what was looked up. Unwrapping it
// raises a *NotFoundError mentioning what.
func NotFound[T any](what ...string) Maybe[T] {
	return Maybe[T]{what: append([]string(nil), what...), kind: kindNotFound}
}

func (m Maybe[T]) IsValue() bool {
	return m.kind == kindValue
}

func (m Maybe[T]) IsNone() bool {
	return m.kind != kindValue
}

func (m Maybe[T]) IsNotFound() bool {
	return m.kind == kindNotFound
}

// What returns a copy of the lookup context of a NotFound, nil otherwise.
func (m Maybe[T]) What() []string {
	if m.kind != kindNotFound {
		return nil
	}
	return append([]string(nil), m.what...)
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.kind == kindValue
}

// Err returns nil for a Value, and otherwise the error Unwrap would panic with.
func (m Maybe[T]) Err() error {
	switch m.kind {
	case kindValue:
		return nil
	case kindNotFound:
		return newNotFoundError(m.what)
	default:
		return &AbsenceError{}
	}
}

// Unwrap returns the value or panics with *AbsenceError (*NotFoundError for
// a NotFound).
func (m Maybe[T]) Unwrap() T {
	if m.kind != kindValue {
		panic(m.Err())
	}
	return m.value
}

func (m Maybe[T]) UnwrapOr(alt T) T {
	if m.kind != kindValue {
		return alt
	}
	return m.value
}

// UnwrapOrElse calls fn only when m is None.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.kind != kindValue {
		return fn()
	}
	return m.value
}

// UnwrapOrNil returns a pointer to a copy of the value, or nil.
func (m Maybe[T]) UnwrapOrNil() *T {
	if m.kind != kindValue {
		return nil
	}
	v := m.value
	return &v
}

func (m Maybe[T]) UnwrapOrZero() T {
	if m.kind != kindValue {
		var zero T
		return zero
	}
	return m.value
}

// UnwrapOrPanic returns the value or panics with err. A nil err, typed nil
// pointers included, falls back to the error Unwrap would use.
func (m Maybe[T]) UnwrapOrPanic(err error) T {
	if m.kind != kindValue {
		if rop.IsNil(err) {
			err = m.Err()
		}
		panic(err)
	}
	return m.value
}

// AssertIsValue is a test helper: it returns the value or panics with a
// *rop.AssertionError.
func (m Maybe[T]) AssertIsValue(msg ...string) T {
	if m.kind != kindValue {
		panic(rop.NewAssertionError("expected a value, got "+m.String(), msg))
	}
	return m.value
}

// AssertIsNone is a test helper: it returns m when it is None and panics
// with a *rop.AssertionError carrying the unexpected value otherwise.
func (m Maybe[T]) AssertIsNone(msg ...string) Maybe[T] {
	if m.kind == kindValue {
		panic(rop.NewAssertionErrorWithValue("expected none, got a value", msg, m.value))
	}
	return m
}

// Or returns m if it holds a value, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.kind == kindValue {
		return m
	}
	return other
}

// OrElse calls fn only when m is None.
func (m Maybe[T]) OrElse(fn func() Maybe[T]) Maybe[T] {
	if m.kind == kindValue {
		return m
	}
	return fn()
}

// AndThen is the same-type form of the package function AndThen.
func (m Maybe[T]) AndThen(fn func(T) Maybe[T]) Maybe[T] {
	return AndThen(m, fn)
}

// Map is the same-type form of the package function Map.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	return Map(m, fn)
}

// Filter turns a value rejected by pred into None.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.kind != kindValue || pred(m.value) {
		return m
	}
	return None[T]()
}

// Inspect calls fn with the value, if any, and returns m.
func (m Maybe[T]) Inspect(fn func(T)) Maybe[T] {
	if m.kind == kindValue {
		fn(m.value)
	}
	return m
}

// Iter yields the elements of the value when it is iterable (see
// rop.Elements). A None and a Value holding a non-iterable payload both
// yield nothing.
func (m Maybe[T]) Iter() iter.Seq[any] {
	if m.kind != kindValue {
		return func(func(any) bool) {}
	}
	return rop.Elements(m.value)
}

func (m Maybe[T]) String() string {
	switch m.kind {
	case kindValue:
		return fmt.Sprintf("Value(%v)", m.value)
	case kindNotFound:
		return "NotFound(" + strings.Join(m.what, ", ") + ")"
	default:
		return "None"
	}
}

func (m Maybe[T]) isMaybe() {}

// IsMaybe reports whether x is a Maybe of any type. A pointer to a Maybe is
// not a Maybe.
func IsMaybe(x any) bool {
	if x == nil || reflect.TypeOf(x).Kind() == reflect.Pointer {
		return false
	}
	_, ok := x.(interface{ isMaybe() })
	return ok
}

var _ rop.Optional = Maybe[int]{}
