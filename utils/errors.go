package utils

import (
	"errors"
	"fmt"
)

// Stable machine-readable error codes surfaced at the API boundary.
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeConflict          = "CONFLICT"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeInternal          = "INTERNAL"
)

// Sentinel errors returned by the usecase layer. Handlers map them to
// status codes with FromError; nothing below the handlers touches HTTP.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)

// ValidationError names the first signup field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
