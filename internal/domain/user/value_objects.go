package user

import (
	"regexp"
	"strings"

	"rental-booking/internal/pkg/errs"
)

var (
	ErrNotFound          = errs.Define("User not found", errs.ErrNotFound)
	ErrInvalidEmail      = errs.Define("invalid email format", errs.ErrValidation)
	ErrInvalidRole       = errs.Define("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak   = errs.Define("password must be at least 8 characters long", errs.ErrValidation)
	ErrNameRequired      = errs.Define("first and last name are required", errs.ErrValidation)
	ErrAlreadyRegistered = errs.Define("user is already registered", errs.ErrConflict)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored trimmed and lower-cased so lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
