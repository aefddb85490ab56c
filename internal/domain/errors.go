package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrNameConflict     = errors.New("name conflict")
	ErrLockConflict     = errors.New("write lock held by another user")
	ErrVersionConflict  = errors.New("version instant already taken")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation error")
	ErrPartialCascade   = errors.New("partial cascade failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// CascadeError reports the referencing topics a rename cascade could not
// update. The primary rename is already committed when this is returned;
// re-running the cascade repairs only the still-stale topics.
type CascadeError struct {
	OldName string
	NewName string
	Failed  []string // display names of topics left unrewritten
	Causes  []error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("rename %q -> %q: %d referencing topic(s) not updated: %s",
		e.OldName, e.NewName, len(e.Failed), strings.Join(e.Failed, ", "))
}

func (e *CascadeError) Unwrap() error { return ErrPartialCascade }
