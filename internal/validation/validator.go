package validation

import (
	"math"
	"strings"

	"travel-calc/internal/config"
	"travel-calc/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidClockTime checks if a string is a valid HH:MM time of day
func (v *Validator) IsValidClockTime(s string) bool {
	_, err := domain.ParseClockTime(s)
	return err == nil
}

// IsWithinMinutes checks that an optional minute count is absent or within [0, max]
func (v *Validator) IsWithinMinutes(m *int, max int) bool {
	return m == nil || (*m >= 0 && *m <= max)
}

// ClampMinutes limits n to [min, max]
func (v *Validator) ClampMinutes(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// MaxExtraWorkMinutes returns how many minutes of extra work can be entered
// for a day with the given travel time: the travel time itself, in whole
// minutes, never below zero.
func (v *Validator) MaxExtraWorkMinutes(totalTravelHours float64) int {
	return int(math.Max(0, math.Round(totalTravelHours*60)))
}

// IsStrict reports whether out-of-range minute counts are rejected instead of clamped
func (v *Validator) IsStrict() bool {
	if v.config != nil {
		return v.config.Validation.Strict
	}
	return false // Default: clamp like the input form does
}

// getMaxLunchMinutes returns the configured lunch ceiling, zero meaning none
func (v *Validator) getMaxLunchMinutes() int {
	if v.config != nil {
		return v.config.Validation.MaxLunchMinutes
	}
	return 0 // Default: no ceiling
}
