package services

import (
	"travel-calc/internal/allocation"
)

// Time codes that travel day hours are booked to
const (
	CodeKRT = "KRT"
	CodeINT = "INT"
)

// BasisLine is one signed term explaining how a time code total was reached
type BasisLine struct {
	Sign      string  `json:"sign" yaml:"sign"`
	Hours     float64 `json:"hours" yaml:"hours"`
	Label     string  `json:"label" yaml:"label"`
	Formatted string  `json:"formatted" yaml:"formatted"` // e.g. "+4,5t work on site"
}

// CodeBreakdown is the result row for one time code
type CodeBreakdown struct {
	Code      string      `json:"code" yaml:"code"`
	Lines     []BasisLine `json:"lines" yaml:"lines"`
	Notes     []string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Hours     float64     `json:"hours" yaml:"hours"`
	Formatted string      `json:"formatted" yaml:"formatted"` // e.g. "5,5t"
}

// BreakdownService explains allocation results for display
type BreakdownService interface {
	// KRT returns the basis lines and final figure for the KRT code
	KRT(result allocation.Result) CodeBreakdown

	// INT returns the basis lines and final figure for the INT code
	INT(result allocation.Result) CodeBreakdown

	// Notes returns remarks about the day as a whole, such as extra work
	// that could not be credited or hours removed by the day cap
	Notes(result allocation.Result) []string
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	BreakdownService BreakdownService
}

// NewServiceContainer creates a container with the default service implementations
func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{
		BreakdownService: NewBreakdownService(),
	}
}
