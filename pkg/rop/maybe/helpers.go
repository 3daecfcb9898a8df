package maybe

// AllOrNone returns Value of every payload in order when all of ms hold a
// value. Otherwise it returns the first None as is, NotFound context included.
func AllOrNone[T any](ms ...Maybe[T]) Maybe[[]T] {
	values := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.kind != kindValue {
			return none[T, []T](m)
		}
		values = append(values, m.value)
	}
	return WithValue(values)
}

// AllValues returns the payloads of the values among ms, skipping Nones.
func AllValues[T any](ms ...Maybe[T]) []T {
	values := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.kind == kindValue {
			values = append(values, m.value)
		}
	}
	return values
}

// Any returns the first value among ms, or None.
func Any[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.kind == kindValue {
			return m
		}
	}
	return None[T]()
}
