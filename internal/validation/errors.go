package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType says what was wrong with a field
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// FieldError is one problem with one travel day field. It is serialized
// as-is into HTTP error responses.
type FieldError struct {
	Field   string              `json:"field"`
	Type    ValidationErrorType `json:"type"`
	Message string              `json:"message"`
	Value   any                 `json:"value,omitempty"`
}

func (fe *FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

// ValidationError collects every field problem found in one pass over a
// travel day, so callers can report them together.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError returns an empty collection
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "invalid travel day"
	case 1:
		return ve.Errors[0].Error()
	}

	parts := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		parts[i] = ve.Errors[i].Error()
	}
	return "invalid travel day: " + strings.Join(parts, "; ")
}

// HasErrors reports whether any field problem was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddError records a field problem
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value any) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Type: errorType, Message: message, Value: value})
}

// Required records a missing field
func (ve *ValidationError) Required(field string) {
	ve.AddError(field, ErrorTypeRequired, field+" is required", nil)
}

// InvalidFormat records a value that does not match layout, e.g. "HH:MM"
func (ve *ValidationError) InvalidFormat(field string, value any, layout string) {
	ve.AddError(field, ErrorTypeInvalidFormat, fmt.Sprintf("%s must be in %s format", field, layout), value)
}

// InvalidValue records a well-formed value that is still unusable
func (ve *ValidationError) InvalidValue(field string, value any, reason string) {
	ve.AddError(field, ErrorTypeInvalidValue, field+" "+reason, value)
}

// OutOfRange records a minute count outside its allowed bounds
func (ve *ValidationError) OutOfRange(field string, value any, reason string) {
	ve.AddError(field, ErrorTypeInvalidRange, fmt.Sprintf("%s out of range: %s", field, reason), value)
}

// GetFieldErrors returns the problems recorded for field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var out []FieldError
	for _, fe := range ve.Errors {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// GetUserFriendlyMessage renders the problems for a person: a single
// message as-is, several as a bulleted list.
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	var b strings.Builder
	b.WriteString("Multiple validation errors occurred:")
	for _, fe := range ve.Errors {
		b.WriteString("\n- ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// AsValidationError finds a *ValidationError in err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
