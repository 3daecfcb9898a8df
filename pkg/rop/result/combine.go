package result

import "iter"

// And returns r's error when r is an Error, and other otherwise.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.okay {
		return Error[U](r.err)
	}
	return other
}

// AndThen passes the success value to fn and returns its result. fn is
// never called for an Error.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.okay {
		return Error[U](r.err)
	}
	return fn(r.value)
}

func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.okay {
		return Error[U](r.err)
	}
	return Okay[U, E](fn(r.value))
}

// MapOr always returns an Okay: fn(v) or alt.
func MapOr[T, U, E any](r Result[T, E], fn func(T) U, alt U) Result[U, E] {
	if !r.okay {
		return Okay[U, E](alt)
	}
	return Okay[U, E](fn(r.value))
}

// MapOrElse always returns an Okay: fn(v) or altFn(e). Only one is called.
func MapOrElse[T, U, E any](r Result[T, E], fn func(T) U, altFn func(E) U) Result[U, E] {
	if !r.okay {
		return Okay[U, E](altFn(r.err))
	}
	return Okay[U, E](fn(r.value))
}

// MapError transforms the error payload. fn is never called for an Okay.
func MapError[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.okay {
		return Okay[T, F](r.value)
	}
	return Error[T](fn(r.err))
}

// Match collapses r into an R.
func Match[T, E, R any](r Result[T, E], onOkay func(T) R, onError func(E) R) R {
	if !r.okay {
		return onError(r.err)
	}
	return onOkay(r.value)
}

// Elements is the typed form of Iter for slice payloads.
func Elements[T, E any](r Result[[]T, E]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.okay {
			return
		}
		for _, v := range r.value {
			if !yield(v) {
				return
			}
		}
	}
}
