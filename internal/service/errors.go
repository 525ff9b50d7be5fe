package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers may want to check for with errors.Is().
var (
	// ErrInvalidCount is returned when the number of questions to ask is not an integer.
	ErrInvalidCount = errors.New("invalid number of questions")

	// ErrEmptyDeck is returned when a quiz is requested but the deck has no cards.
	ErrEmptyDeck = errors.New("deck has no cards")
)

// ServiceError is a custom error type for study service errors.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("study service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("study service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
