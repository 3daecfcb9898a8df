// Package result provides Result[T, E], an immutable value that holds either
// a success value or an error payload of any type.
//
// Construct with Okay, OkayVoid, Error or From. Capture failures of existing
// code with Wrap (panics), Try (Go errors) and their async forms WrapAsync and
// TryAsync, whose single settlement can be awaited with Await.
//
// Type-changing combinators are package functions: And, AndThen, Map, MapOr,
// MapOrElse, MapError, Match. All returns the first Error it meets while Any
// collects every error payload when nothing succeeds; the asymmetry mirrors
// the usual all/any promise helpers.
//
// Conversions to and from maybe.Maybe are ToMaybe, FromMaybe and FromMaybeOr.
package result
