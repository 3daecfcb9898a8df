package rop

import (
	"iter"
	"reflect"
)

// IsNil reports whether i is a nil interface or a nil pointer, map, slice,
// channel, function or interface value.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsIterable reports whether Elements yields the contents of v.
func IsIterable(v any) bool {
	if IsNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String, reflect.Map:
		return true
	case reflect.Chan:
		return rv.Type().ChanDir()&reflect.RecvDir != 0
	case reflect.Func:
		return isSeqFunc(rv.Type())
	}
	return false
}

// isSeqFunc reports whether t has the shape of an iter.Seq: func(func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

// Elements yields the elements of v when v is a slice, array, string (as
// runes), map (keys, in unspecified order), receivable channel (until it is
// closed) or range-over-func iterator of one value such as iter.Seq[int].
// Anything else, integers included, yields nothing, which makes a
// non-iterable v indistinguishable from an empty one.
func Elements(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		if !IsIterable(v) {
			return
		}

		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		case reflect.String:
			for _, r := range rv.String() {
				if !yield(r) {
					return
				}
			}
		case reflect.Map:
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface()) {
					return
				}
			}
		case reflect.Chan, reflect.Func:
			for e := range rv.Seq() {
				if !yield(e.Interface()) {
					return
				}
			}
		}
	}
}

// HasPayload reports whether w is an Optional holding a value or a Fallible
// holding a success value.
func HasPayload(w any) bool {
	switch w := w.(type) {
	case Optional:
		return w.IsValue()
	case Fallible:
		return w.IsOkay()
	}
	return false
}
