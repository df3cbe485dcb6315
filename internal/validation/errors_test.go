package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name   string
		errors []FieldError
		want   string
	}{
		{"empty", nil, "invalid travel day"},
		{"single", []FieldError{{Field: "start_time", Message: "start_time is required"}}, "start_time: start_time is required"},
		{
			"several",
			[]FieldError{
				{Field: "start_time", Message: "start_time is required"},
				{Field: "lunch_minutes", Message: "lunch cannot be negative"},
			},
			"invalid travel day: start_time: start_time is required; lunch_minutes: lunch cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			assert.Equal(t, tt.want, ve.Error())
		})
	}
}

func TestValidationError_Helpers(t *testing.T) {
	tests := []struct {
		name    string
		add     func(ve *ValidationError)
		field   string
		typ     ValidationErrorType
		message string
		value   any
	}{
		{
			"required",
			func(ve *ValidationError) { ve.Required("start_time") },
			"start_time", ErrorTypeRequired, "start_time is required", nil,
		},
		{
			"invalid format",
			func(ve *ValidationError) { ve.InvalidFormat("arrival_time", "9.30", "HH:MM") },
			"arrival_time", ErrorTypeInvalidFormat, "arrival_time must be in HH:MM format", "9.30",
		},
		{
			"invalid value",
			func(ve *ValidationError) { ve.InvalidValue("return_start_time", "25:00", "must be a time of day") },
			"return_start_time", ErrorTypeInvalidValue, "return_start_time must be a time of day", "25:00",
		},
		{
			"out of range",
			func(ve *ValidationError) { ve.OutOfRange("extra_work_minutes", 400, "extra work cannot exceed total travel time") },
			"extra_work_minutes", ErrorTypeInvalidRange, "extra_work_minutes out of range: extra work cannot exceed total travel time", 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			require.False(t, ve.HasErrors())

			tt.add(ve)

			require.True(t, ve.HasErrors())
			require.Len(t, ve.Errors, 1)
			fe := ve.Errors[0]
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.typ, fe.Type)
			assert.Equal(t, tt.message, fe.Message)
			assert.Equal(t, tt.value, fe.Value)
		})
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.Required("start_time")
	ve.InvalidFormat("start_time", "a", "HH:MM")
	ve.OutOfRange("lunch_minutes", -5, "lunch cannot be negative")

	assert.Len(t, ve.GetFieldErrors("start_time"), 2)
	assert.Len(t, ve.GetFieldErrors("lunch_minutes"), 1)
	assert.Empty(t, ve.GetFieldErrors("extra_work_minutes"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Input validation failed", NewValidationError().GetUserFriendlyMessage())

	one := NewValidationError()
	one.Required("arrival_time")
	assert.Equal(t, "arrival_time is required", one.GetUserFriendlyMessage())

	two := NewValidationError()
	two.Required("arrival_time")
	two.InvalidFormat("return_arrival_time", "x", "HH:MM")
	assert.Equal(t,
		"Multiple validation errors occurred:\n- arrival_time is required\n- return_arrival_time must be in HH:MM format",
		two.GetUserFriendlyMessage())
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.Required("return_start_time")
	wrapped := fmt.Errorf("calculate: %w", ve)

	got, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Same(t, ve, got)
	assert.True(t, IsValidationError(wrapped))

	_, ok = AsValidationError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsValidationError(&FieldError{Field: "start_time"}))
}
