package tracker

import (
	"errors"
	"fmt"
)

// Error types for tracker operations

// Error kinds
const (
	ErrorKindMissingField  = "missing_field"
	ErrorKindInvalidNumber = "invalid_number"
	ErrorKindNotFound      = "not_found"
	ErrorKindStorage       = "storage"
)

// TrackerError represents errors raised by the tracker service
type TrackerError struct {
	Kind    string
	Field   string
	Message string
	Cause   error
}

func (e *TrackerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tracker error [%s]: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("tracker error [%s]: %s", e.Kind, e.Message)
}

func (e *TrackerError) Unwrap() error {
	return e.Cause
}

// NewMissingFieldError creates an error for a required field that is absent or empty
func NewMissingFieldError(field string) *TrackerError {
	return &TrackerError{
		Kind:    ErrorKindMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s required", field),
	}
}

// NewInvalidNumberError creates an error for a field that could not be coerced to a number
func NewInvalidNumberError(field string) *TrackerError {
	return &TrackerError{
		Kind:    ErrorKindInvalidNumber,
		Field:   field,
		Message: fmt.Sprintf("%s must be a number", field),
	}
}

// NewUserNotFoundError creates an error for when a user id does not resolve
func NewUserNotFoundError(userID string) *TrackerError {
	return &TrackerError{
		Kind:    ErrorKindNotFound,
		Field:   "id",
		Message: "user not found",
	}
}

// NewStorageError wraps an underlying persistence failure
func NewStorageError(operation string, cause error) *TrackerError {
	return &TrackerError{
		Kind:    ErrorKindStorage,
		Message: fmt.Sprintf("storage operation %s failed", operation),
		Cause:   cause,
	}
}

// ErrorKind extracts the tracker error kind, or ErrorKindStorage for
// unclassified errors so callers always get a generic 500 path.
func ErrorKind(err error) string {
	var te *TrackerError
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrorKindStorage
}
