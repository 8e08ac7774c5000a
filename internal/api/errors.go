package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound indicates no train runs under the requested number
	ErrNotFound = errors.New("train not found")

	// ErrUnavailable indicates the upstream provider could not be reached
	ErrUnavailable = errors.New("provider unavailable")

	// ErrTimeout indicates the request timed out
	ErrTimeout = errors.New("request timed out")

	// ErrNoData indicates the provider answered without a record
	ErrNoData = errors.New("no data returned")

	// ErrInvalidTrainNumber indicates the train number failed validation
	ErrInvalidTrainNumber = errors.New("invalid train number")
)

// ProviderError wraps a failure reported by a status or summary provider
type ProviderError struct {
	Provider  string
	Operation string
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error
func NewProviderError(provider, operation string, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Operation: operation,
		Err:       err,
	}
}

// ValidationError represents a validation error for request parameters
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is implements errors.Is for ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTrainNumber && e.Field == "train_number"
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
