package result

import "github.com/ib-77/railway/pkg/rop/maybe"

// FromMaybe turns a Value into Okay and a None into an Error holding the
// absence error Unwrap would raise (*maybe.AbsenceError or
// *maybe.NotFoundError).
func FromMaybe[T any](m maybe.Maybe[T]) Result[T, error] {
	if v, ok := m.Get(); ok {
		return Okay[T, error](v)
	}
	return Error[T](m.Err())
}

// FromMaybeOr turns a Value into Okay and a None into Error(e).
func FromMaybeOr[T, E any](m maybe.Maybe[T], e E) Result[T, E] {
	if v, ok := m.Get(); ok {
		return Okay[T, E](v)
	}
	return Error[T](e)
}
