package application

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

// ValidationError carries the itemized messages a 400 response lists.
type ValidationError struct {
	Msgs []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Msgs, "; ")
}

func validationErr(msgs ...string) *ValidationError {
	return &ValidationError{Msgs: msgs}
}
