package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError carries a message that is safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// QuotaError reports that a tier limit blocks a create.
type QuotaError struct {
	Resource string
	Limit    int
	Message  string
}

func (e *QuotaError) Error() string {
	return e.Message
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
