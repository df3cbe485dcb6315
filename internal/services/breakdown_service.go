package services

import (
	"fmt"

	"travel-calc/internal/allocation"
)

// Display amounts below this are treated as zero when deciding on notes.
const noteThreshold = 0.005

// breakdownServiceImpl implements the BreakdownService interface
type breakdownServiceImpl struct{}

// NewBreakdownService creates a new BreakdownService instance
func NewBreakdownService() BreakdownService {
	return &breakdownServiceImpl{}
}

func newLine(sign string, hours float64, label string) BasisLine {
	return BasisLine{
		Sign:      sign,
		Hours:     hours,
		Label:     label,
		Formatted: fmt.Sprintf("%s %s", allocation.FormatSignedHours(sign, hours), label),
	}
}

// KRT returns the basis lines and final figure for the KRT code
func (b *breakdownServiceImpl) KRT(result allocation.Result) CodeBreakdown {
	return CodeBreakdown{
		Code: CodeKRT,
		Lines: []BasisLine{
			newLine("+", result.OnSiteNetHours, "work on site"),
			newLine("-", result.LunchHours, "lunch"),
			newLine("-", result.OrdinaryCommuteHours, "ordinary commute"),
			newLine("+", result.ExtraWorkHours, "extra work"),
			newLine("+", result.KRTTravelShare, "travel time"),
		},
		Hours:     result.KRTHours,
		Formatted: allocation.FormatHours(result.KRTHours),
	}
}

// INT returns the basis lines and final figure for the INT code
func (b *breakdownServiceImpl) INT(result allocation.Result) CodeBreakdown {
	breakdown := CodeBreakdown{
		Code: CodeINT,
		Lines: []BasisLine{
			newLine("+", result.INTTravelShare, "excess travel time"),
		},
		Hours:     result.INTHours,
		Formatted: allocation.FormatHours(result.INTHours),
	}

	if result.AbsorbedByINT > 0 {
		breakdown.Notes = append(breakdown.Notes,
			fmt.Sprintf("(%s extra work moved to KRT)", allocation.FormatHours(result.AbsorbedByINT)))
	}

	return breakdown
}

// Notes returns remarks about the day as a whole
func (b *breakdownServiceImpl) Notes(result allocation.Result) []string {
	var notes []string

	if result.DroppedExtraWork > noteThreshold {
		notes = append(notes, fmt.Sprintf("%s extra work exceeds what travel time can cover and was not credited",
			allocation.FormatHours(result.DroppedExtraWork)))
	}
	if result.CapReduction > noteThreshold {
		notes = append(notes, fmt.Sprintf("%s removed to stay within %s away from home minus lunch",
			allocation.FormatHours(result.CapReduction), allocation.FormatHours(result.MaxBillableHours)))
	}
	if !result.RoundToQuarter {
		notes = append(notes, "rounding to the nearest quarter hour is off")
	}

	return notes
}
