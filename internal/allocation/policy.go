// Package allocation splits the hours of a travel day between the KRT
// (ordinary work) and INT (travel surcharge) time codes.
//
// The engine is a pure function of its input. Callers hold their own input
// state and call Allocate again whenever anything changes.
package allocation

import (
	"fmt"
)

// Policy holds the thresholds of the travel policy.
type Policy struct {
	// OrdinaryCommuteHours is the share of daily travel treated as ordinary,
	// non-billable commuting.
	OrdinaryCommuteHours float64
	// KRTTravelAllowanceHours is how much billable travel goes to KRT before
	// the remainder spills into INT.
	KRTTravelAllowanceHours float64
	// RoundingIncrement is the step final bucket totals are rounded up to.
	RoundingIncrement float64
}

// DefaultPolicy returns the workplace travel policy: one hour of ordinary
// commute, one hour of travel on KRT, quarter-hour rounding.
func DefaultPolicy() Policy {
	return Policy{
		OrdinaryCommuteHours:    1,
		KRTTravelAllowanceHours: 1,
		RoundingIncrement:       0.25,
	}
}

// Validate checks that every threshold is usable.
func (p Policy) Validate() error {
	if p.OrdinaryCommuteHours < 0 {
		return fmt.Errorf("ordinary commute hours must not be negative, got %v", p.OrdinaryCommuteHours)
	}
	if p.KRTTravelAllowanceHours < 0 {
		return fmt.Errorf("KRT travel allowance hours must not be negative, got %v", p.KRTTravelAllowanceHours)
	}
	if p.RoundingIncrement <= 0 {
		return fmt.Errorf("rounding increment must be positive, got %v", p.RoundingIncrement)
	}
	return nil
}
