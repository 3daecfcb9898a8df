package result

// All returns Okay of every success value in order, or the first Error
// from the left.
func All[T, E any](rs ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.okay {
			return Error[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Okay[[]T, E](values)
}

// Any returns the first Okay. When there is none it returns an Error holding
// every error payload in order, not only the first one.
func Any[T, E any](rs ...Result[T, E]) Result[T, []E] {
	errs := make([]E, 0, len(rs))
	for _, r := range rs {
		if r.okay {
			return Okay[T, []E](r.value)
		}
		errs = append(errs, r.err)
	}
	return Error[T](errs)
}
