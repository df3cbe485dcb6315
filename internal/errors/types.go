package errors

import (
	"fmt"
)

// ErrorType classifies an AppError. The value doubles as the name used in
// logs.
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeInvalidInput  ErrorType = "invalid_input"
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeInternal      ErrorType = "internal"
)

// Codes reported to HTTP clients and in CLI diagnostics
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConfiguration    = "CONFIGURATION_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeTimeout          = "TIMEOUT"
	CodeInternal         = "INTERNAL_ERROR"
	CodeUnknown          = "UNKNOWN_ERROR"
)

// String returns the name of the error type
func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// Code returns the client-facing code for errors of this type
func (et ErrorType) Code() string {
	switch et {
	case ErrorTypeValidation:
		return CodeValidationFailed
	case ErrorTypeNotFound:
		return CodeNotFound
	case ErrorTypeConfiguration:
		return CodeConfiguration
	case ErrorTypeInvalidInput:
		return CodeInvalidInput
	case ErrorTypeTimeout:
		return CodeTimeout
	case ErrorTypeInternal:
		return CodeInternal
	default:
		return CodeUnknown
	}
}

// AppError is a classified error carrying a user-facing message and
// structured context such as the offending field.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]any
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the given type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext attaches a key/value pair and returns e for chaining
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves a value attached with WithContext
func (e *AppError) GetContext(key string) (any, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}

// Field returns the input field the error is about, if any
func (e *AppError) Field() string {
	if v, ok := e.GetContext("field"); ok {
		if field, ok := v.(string); ok {
			return field
		}
	}
	return ""
}
