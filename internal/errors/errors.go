// Package errors classifies the failures of the travel calculator so the
// CLI and the HTTP server can report them consistently.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// NewValidationError reports travel day input that failed validation.
// cause is usually a *validation.ValidationError listing the fields.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    CodeValidationFailed,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewNotFoundError reports a missing resource such as an unknown route
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    CodeNotFound,
		Context: map[string]any{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewConfigurationError reports an unusable configuration value
func NewConfigurationError(field string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: fmt.Sprintf("invalid configuration: %s", field),
		Code:    CodeConfiguration,
		Cause:   cause,
		Context: map[string]any{
			"field": field,
		},
	}
}

// NewInvalidInputError reports an argument that could not be parsed
func NewInvalidInputError(field string, value any, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    CodeInvalidInput,
		Context: map[string]any{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError reports an operation that ran past its deadline. A
// non-positive limit means the deadline is unknown.
func NewTimeoutError(operation string, limit time.Duration) *AppError {
	msg := fmt.Sprintf("%s timed out", operation)
	if limit > 0 {
		msg = fmt.Sprintf("%s did not finish within %s", operation, limit)
	}
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: msg,
		Code:    CodeTimeout,
		Context: map[string]any{
			"operation": operation,
			"timeout":   limit,
		},
	}
}

// NewInternalError reports an unexpected failure
func NewInternalError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: fmt.Sprintf("internal error during %s", operation),
		Code:    CodeInternal,
		Cause:   cause,
		Context: map[string]any{
			"operation": operation,
		},
	}
}

// WrapError classifies err, using the standard code of errorType
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.Code(),
		Cause:   err,
		Context: make(map[string]any),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the given type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// FieldOf returns the input field an error is about
func FieldOf(err error) (string, bool) {
	if appErr, ok := AsAppError(err); ok {
		if field := appErr.Field(); field != "" {
			return field, true
		}
	}
	return "", false
}

// GetUserMessage returns the message shown to a person. Messages of input
// errors are passed through, system errors get a generic text.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeConfiguration:
		return appErr.Message
	case ErrorTypeTimeout:
		return "The calculation took too long. Please try again."
	case ErrorTypeInternal:
		return "An internal error occurred. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is a system problem worth logging
// rather than bad user input.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false
		}
	}
	return true
}
