package maybe

import "iter"

// none converts an absent m to another value type, keeping NotFound context.
func none[T, U any](m Maybe[T]) Maybe[U] {
	return Maybe[U]{what: m.what, kind: m.kind}
}

// And returns m's absence untouched when m is None, and other otherwise.
func And[T, U any](m Maybe[T], other Maybe[U]) Maybe[U] {
	if m.kind != kindValue {
		return none[T, U](m)
	}
	return other
}

// AndThen passes the value to fn and returns its result. fn is never called
// for a None, which is returned as is.
func AndThen[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.kind != kindValue {
		return none[T, U](m)
	}
	return fn(m.value)
}

func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.kind != kindValue {
		return none[T, U](m)
	}
	return WithValue(fn(m.value))
}

// MapOr always returns a Value: fn(v) or alt.
func MapOr[T, U any](m Maybe[T], fn func(T) U, alt U) Maybe[U] {
	if m.kind != kindValue {
		return WithValue(alt)
	}
	return WithValue(fn(m.value))
}

// MapOrElse always returns a Value: fn(v) or altFn(). Only one of the two is called.
func MapOrElse[T, U any](m Maybe[T], fn func(T) U, altFn func() U) Maybe[U] {
	if m.kind != kindValue {
		return WithValue(altFn())
	}
	return WithValue(fn(m.value))
}

// Match collapses m into an R.
func Match[T, R any](m Maybe[T], onValue func(T) R, onNone func() R) R {
	if m.kind != kindValue {
		return onNone()
	}
	return onValue(m.value)
}

// Elements is the typed form of Iter for slice payloads.
func Elements[T any](m Maybe[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.kind != kindValue {
			return
		}
		for _, v := range m.value {
			if !yield(v) {
				return
			}
		}
	}
}
