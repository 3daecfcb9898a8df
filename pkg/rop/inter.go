package rop

import "iter"

// Optional is implemented by every maybe.Maybe[T].
type Optional interface {
	// IsValue reports whether a value is present
	IsValue() bool
	// IsNone reports whether the value is absent
	IsNone() bool
	// Iter yields the elements of an iterable payload
	Iter() iter.Seq[any]
	String() string
}

// Fallible is implemented by every result.Result[T, E].
type Fallible interface {
	// IsOkay reports whether the operation succeeded
	IsOkay() bool
	// IsError reports whether the operation failed
	IsError() bool
	// Iter yields the elements of an iterable success payload
	Iter() iter.Seq[any]
	String() string
}
