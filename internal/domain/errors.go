package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// MissingFieldError reports an empty required field.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	if e.Field == "" {
		return "missing required field"
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is enables errors.Is matching on MissingFieldError.
func (e MissingFieldError) Is(target error) bool {
	_, ok := target.(MissingFieldError)
	if ok {
		return true
	}
	_, ok = target.(*MissingFieldError)
	return ok
}

// ErrMissingField is the sentinel error for empty required fields.
var ErrMissingField = MissingFieldError{}

var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidPosition    = errors.New("unknown position")
)
