package types

import (
	"errors"
	"fmt"
)

// Error type discriminators used by handlers to pick an HTTP status.
const (
	ErrTypeValidation = "validation"
	ErrTypeNotFound   = "not_found"
	ErrTypeStorage    = "storage"
)

// CustomError carries a machine-readable type alongside the message so
// callers can distinguish recoverable validation rejections from fatal
// storage failures.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError builds a caller-recoverable rejection (uniqueness or
// required-field violation). The operation it rejects has no side effect.
func NewValidationError(format string, args ...interface{}) *CustomError {
	return &CustomError{
		Code:    400,
		Message: fmt.Sprintf(format, args...),
		Type:    ErrTypeValidation,
	}
}

// NewNotFoundError builds a not-found error for read paths.
func NewNotFoundError(format string, args ...interface{}) *CustomError {
	return &CustomError{
		Code:    404,
		Message: fmt.Sprintf(format, args...),
		Type:    ErrTypeNotFound,
	}
}

// NewStorageError wraps a storage-level failure. The operation that hit it
// cannot be retried by the caller; failure to open the store at all is fatal
// for the session.
func NewStorageError(err error) *CustomError {
	return &CustomError{
		Code:    500,
		Message: err.Error(),
		Type:    ErrTypeStorage,
	}
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == ErrTypeValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}
