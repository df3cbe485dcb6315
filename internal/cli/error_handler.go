package cli

import (
	stderrors "errors"
	"fmt"

	"travel-calc/internal/config"
	"travel-calc/internal/errors"
	"travel-calc/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := eh.userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, msg)
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := eh.userMessage(err); ok {
		return fmt.Errorf("%s", msg)
	}

	// Fallback for unknown errors
	return err
}

// userMessage prefers the field-level messages of a validation error,
// even when it is wrapped in an AppError
func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.GetUserFriendlyMessage(), true
	}

	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return configErr.Error(), true
	}

	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err), true
	}

	return "", false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsInvalidInputError checks if an error is an invalid argument error
func (eh *ErrorHandler) IsInvalidInputError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsConfigurationError checks if an error comes from loading the configuration
func (eh *ErrorHandler) IsConfigurationError(err error) bool {
	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeConfiguration)
}

// IsTimeoutError checks if an error is a timeout error
func (eh *ErrorHandler) IsTimeoutError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeTimeout)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// ExitCode maps an error to a process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case eh.IsValidationError(err), eh.IsInvalidInputError(err):
		return 2
	case eh.IsConfigurationError(err):
		return 3
	default:
		return 1
	}
}
