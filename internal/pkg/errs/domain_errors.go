package errs

import "errors"

// Failure categories. Concrete errors are marked with one of these so the
// HTTP layer can pick a status without knowing every sentinel.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream failure")
)

// Define creates a sentinel carrying msg that matches category under Is.
func Define(msg string, category error) error {
	return Mark(New(msg), category)
}

// Category returns the first category err belongs to, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized, ErrForbidden, ErrUpstream} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
