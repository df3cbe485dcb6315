package api

import (
	"context"

	"travel-calc/internal/allocation"
	"travel-calc/internal/domain"
	"travel-calc/internal/services"
	"travel-calc/internal/validation"
)

// CalculationRequest is the raw content of the travel day form. Absent
// fields are filled from the configured defaults.
type CalculationRequest = domain.TravelDayForm

// Calculation is everything produced for one travel day
type Calculation struct {
	Input       CalculationRequest      `json:"input" yaml:"input"`
	Result      allocation.Result       `json:"result" yaml:"result"`
	KRT         services.CodeBreakdown  `json:"krt" yaml:"krt"`
	INT         services.CodeBreakdown  `json:"int" yaml:"int"`
	Notes       []string                `json:"notes,omitempty" yaml:"notes,omitempty"`
	Adjustments []validation.Adjustment `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

// Breakdowns returns the KRT and INT rows in display order
func (c *Calculation) Breakdowns() []services.CodeBreakdown {
	return []services.CodeBreakdown{c.KRT, c.INT}
}

// Calculator defines the travel day form operations shared by every front-end
type Calculator interface {
	// Calculate fills defaults, validates and normalizes the request, then
	// allocates the day and builds the result breakdown
	Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error)

	// CalculateDay allocates an already parsed travel day
	CalculateDay(ctx context.Context, day domain.TravelDay) (*Calculation, error)

	// Defaults returns the initial values of the form
	Defaults() CalculationRequest

	// MaxExtraWorkMinutes returns the extra work ceiling for the given travel time
	MaxExtraWorkMinutes(totalTravelHours float64) int
}
