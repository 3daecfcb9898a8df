package maybe

import (
	"errors"
	"net/http"
	"strings"
)

// ErrAbsent matches every error Unwrap raises for a missing value.
var ErrAbsent = errors.New("maybe: value is absent")

// AbsenceError is raised when unwrapping None.
type AbsenceError struct{}

func (e *AbsenceError) Error() string {
	return ErrAbsent.Error()
}

func (e *AbsenceError) Is(target error) bool {
	return target == ErrAbsent
}

// NotFoundError is raised when unwrapping a NotFound. Status and StatusCode
// are always 404 for handlers that map errors to HTTP responses.
type NotFoundError struct {
	What       []string
	Status     int
	StatusCode int
}

func newNotFoundError(what []string) *NotFoundError {
	return &NotFoundError{
		What:       append([]string(nil), what...),
		Status:     http.StatusNotFound,
		StatusCode: http.StatusNotFound,
	}
}

func (e *NotFoundError) Error() string {
	if len(e.What) == 0 {
		return "not found"
	}
	return "not found: " + strings.Join(e.What, " ")
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrAbsent
}
