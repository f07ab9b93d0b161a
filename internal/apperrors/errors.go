package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrExpired indicates that a resource exists but is past its expiration time.
// Kept distinct from ErrNotFound so callers can answer 410 instead of 404.
var ErrExpired = errors.New("resource expired")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// FieldError describes a single validation failure scoped to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the result of running the ordered validation pipeline.
// It wraps ErrValidation so handlers can dispatch with errors.Is.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrValidation
}

// NewFieldErrors builds a FieldErrors from a single field failure.
func NewFieldErrors(field, message string) FieldErrors {
	return FieldErrors{{Field: field, Message: message}}
}
