package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedChangeType indicates a balance update was invoked with a
// change type it does not handle. This is a configuration fault, never a
// silent no-op.
var ErrUnsupportedChangeType = errors.New("unsupported record change type")

// ErrNotImplemented indicates a known-stub operation was invoked (liability
// updates). Callers must treat this as a hard stop, not a warning.
var ErrNotImplemented = errors.New("not implemented")

// ErrResolutionAbandoned indicates the category resolver could not obtain a
// valid category/change-type decision. The affected record must not be
// persisted.
var ErrResolutionAbandoned = errors.New("category resolution abandoned")

// AppError wraps a lower-level failure with an HTTP-ish status code and a
// message carrying the failing context.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
