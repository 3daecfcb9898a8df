package rop

import "fmt"

// AssertionError is the panic value of the AssertIs* helpers of both
// wrappers. Normal control flow never produces it.
type AssertionError struct {
	Message string
	// Value is the payload that should not have been there, if any.
	Value    any
	HasValue bool
}

func NewAssertionError(defaultMsg string, msg []string) *AssertionError {
	m := defaultMsg
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	return &AssertionError{Message: m}
}

func NewAssertionErrorWithValue(defaultMsg string, msg []string, value any) *AssertionError {
	e := NewAssertionError(defaultMsg, msg)
	e.Value = value
	e.HasValue = true
	return e
}

func (e *AssertionError) Error() string {
	if e.HasValue {
		return fmt.Sprintf("assertion failed: %s: %v", e.Message, e.Value)
	}
	return "assertion failed: " + e.Message
}
