package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/homework-grader/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Submission errors
	ErrInvalidIndex = errors.New("exercise index out of range")
	ErrInvalidInput = errors.New("invalid answer input")

	// Report errors
	ErrOutputWrite = errors.New("cannot write answers file")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsInvalidIndex checks if error represents a submission to an unknown exercise
func IsInvalidIndex(err error) bool {
	return errors.Is(err, ErrInvalidIndex)
}

// IsInvalidInput checks if error represents an answer of the wrong shape for its exercise
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIOError checks if error represents a failed answers file write
func IsIOError(err error) bool {
	return errors.Is(err, ErrOutputWrite)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}
