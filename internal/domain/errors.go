package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries a summary message and the field-level errors that
// caused it. A field appears at most once.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

func (e *ValidationError) Error() string {
	summary := e.Message
	if summary == "" {
		summary = "validation"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %s: %s", summary, e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("%s: %d errors", summary, len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the field -> message map.
func (e *ValidationError) Fields() map[string]string {
	m := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		m[fe.Field] = fe.Message
	}
	return m
}

// Has reports whether the given field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// FieldErrors collects field errors in insertion order. Setting a field that
// already failed replaces its message.
type FieldErrors struct {
	errs []FieldError
}

// Set records message for field, overwriting an earlier message for the same field.
func (f *FieldErrors) Set(field, message string) {
	for i := range f.errs {
		if f.errs[i].Field == field {
			f.errs[i].Message = message
			return
		}
	}
	f.errs = append(f.errs, FieldError{Field: field, Message: message})
}

// Has reports whether field has an error recorded.
func (f *FieldErrors) Has(field string) bool {
	for _, fe := range f.errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Len returns the number of failed fields.
func (f *FieldErrors) Len() int { return len(f.errs) }

// Err returns nil when nothing was recorded, otherwise a *ValidationError with
// the given summary message.
func (f *FieldErrors) Err(message string) error {
	if len(f.errs) == 0 {
		return nil
	}
	errs := make([]FieldError, len(f.errs))
	copy(errs, f.errs)
	return &ValidationError{Message: message, Errors: errs}
}
