package validation

import (
	"fmt"
	"math"

	"travel-calc/internal/config"
	"travel-calc/internal/domain"
)

// Adjustment records a minute count that was clamped into its allowed range
type Adjustment struct {
	Field  string `json:"field" yaml:"field"`
	From   int    `json:"from" yaml:"from"`
	To     int    `json:"to" yaml:"to"`
	Reason string `json:"reason" yaml:"reason"`
}

// String returns a short human-readable description of the adjustment
func (a Adjustment) String() string {
	return fmt.Sprintf("%s adjusted from %d to %d (%s)", a.Field, a.From, a.To, a.Reason)
}

// TravelDayValidator provides validation for travel day input
type TravelDayValidator struct {
	validator *Validator
}

// NewTravelDayValidator creates a new travel day validator
func NewTravelDayValidator() *TravelDayValidator {
	return &TravelDayValidator{
		validator: NewValidator(),
	}
}

// NewTravelDayValidatorWithConfig creates a new travel day validator with configuration
func NewTravelDayValidatorWithConfig(cfg *config.Config) *TravelDayValidator {
	return &TravelDayValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateForm validates the clock fields of a raw travel day form
func (tv *TravelDayValidator) ValidateForm(form domain.TravelDayForm) error {
	validationError := NewValidationError()

	tv.validateClockField(validationError, "start_time", form.StartTime)
	tv.validateClockField(validationError, "arrival_time", form.ArrivalTime)
	tv.validateClockField(validationError, "return_start_time", form.ReturnStartTime)
	tv.validateClockField(validationError, "return_arrival_time", form.ReturnArrivalTime)

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// validateClockField checks that a single clock field is present and well-formed
func (tv *TravelDayValidator) validateClockField(ve *ValidationError, field, value string) {
	if !tv.validator.IsNonEmptyString(value) {
		ve.Required(field)
		return
	}
	if !tv.validator.IsValidClockTime(value) {
		ve.InvalidFormat(field, value, "HH:MM")
	}
}

// ValidateTravelDay validates an already parsed travel day
func (tv *TravelDayValidator) ValidateTravelDay(day domain.TravelDay) error {
	validationError := NewValidationError()

	clocks := []struct {
		field string
		value domain.ClockTime
	}{
		{"start_time", day.StartTime},
		{"arrival_time", day.ArrivalTime},
		{"return_start_time", day.ReturnStartTime},
		{"return_arrival_time", day.ReturnArrivalTime},
	}
	for _, c := range clocks {
		if !c.value.IsValid() {
			validationError.InvalidValue(c.field, c.value, "must be a time of day between 00:00 and 23:59")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// Normalize keeps the minute counts of a travel day within their allowed
// ranges: lunch within [0, max lunch] and extra work within [0, total travel
// time]. Out-of-range values are clamped and reported as adjustments, or
// rejected with a ValidationError in strict mode. Absent values stay absent.
func (tv *TravelDayValidator) Normalize(day domain.TravelDay) (domain.TravelDay, []Adjustment, error) {
	validationError := NewValidationError()
	var adjustments []Adjustment

	if day.LunchMinutes != nil {
		lunch := *day.LunchMinutes
		maxLunch := tv.validator.getMaxLunchMinutes()
		if maxLunch <= 0 {
			maxLunch = math.MaxInt32
		}
		if !tv.validator.IsWithinMinutes(day.LunchMinutes, maxLunch) {
			clamped := tv.validator.ClampMinutes(lunch, 0, maxLunch)
			reason := "lunch cannot be negative"
			if lunch > 0 {
				reason = fmt.Sprintf("lunch cannot exceed %d minutes", maxLunch)
			}
			if tv.validator.IsStrict() {
				validationError.OutOfRange("lunch_minutes", lunch, reason)
			} else {
				adjustments = append(adjustments, Adjustment{Field: "lunch_minutes", From: lunch, To: clamped, Reason: reason})
				day = day.WithLunch(domain.MinutesOf(clamped))
			}
		}
	}

	if day.ExtraWorkMinutes != nil {
		extra := *day.ExtraWorkMinutes
		maxExtra := tv.MaxExtraWorkMinutes(day.TotalTravelHours())
		if !tv.validator.IsWithinMinutes(day.ExtraWorkMinutes, maxExtra) {
			clamped := tv.validator.ClampMinutes(extra, 0, maxExtra)
			reason := "extra work cannot be negative"
			if extra > 0 {
				reason = fmt.Sprintf("extra work cannot exceed total travel time of %d minutes", maxExtra)
			}
			if tv.validator.IsStrict() {
				validationError.OutOfRange("extra_work_minutes", extra, reason)
			} else {
				adjustments = append(adjustments, Adjustment{Field: "extra_work_minutes", From: extra, To: clamped, Reason: reason})
				day = day.WithExtraWork(domain.MinutesOf(clamped))
			}
		}
	}

	if validationError.HasErrors() {
		return day, nil, validationError
	}

	return day, adjustments, nil
}

// MaxExtraWorkMinutes returns the extra work ceiling for a day with the
// given travel time
func (tv *TravelDayValidator) MaxExtraWorkMinutes(totalTravelHours float64) int {
	return tv.validator.MaxExtraWorkMinutes(totalTravelHours)
}
