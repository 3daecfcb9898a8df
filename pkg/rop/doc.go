// Package rop holds what the maybe and result wrappers share: the assertion
// error raised by their AssertIs* helpers, nil detection used when wrapping
// raw values, and reflective iteration over a wrapped payload.
//
// The wrappers themselves live in the subpackages:
// - maybe: Maybe[T], a value or its absence
// - result: Result[T, E], a value or an error payload
package rop
