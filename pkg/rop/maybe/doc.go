// Package maybe provides Maybe[T], an immutable value that either holds a T
// or marks its absence, so that the caller and not the callee decides what
// absence means.
//
// Variants:
// - Value: WithValue, Wrap, FromPointer, FromOk
// - None: None, and NotFound which also records what was being looked up
//
// Total accessors (UnwrapOr, UnwrapOrElse, UnwrapOrNil, Get, ...) never panic.
// Unwrap, UnwrapOrPanic and the AssertIs* helpers panic on the wrong variant;
// the default panic values are *AbsenceError and *NotFoundError, both of which
// match ErrAbsent under errors.Is.
//
// Methods cover same-type chaining (Or, OrElse, Map, AndThen, Filter).
// Type-changing combinators are package functions: Map, AndThen, And, MapOr,
// MapOrElse, Match.
//
// Iterating a Maybe with Iter yields the elements of an iterable payload.
// A non-iterable payload yields nothing, exactly like None does.
package maybe
