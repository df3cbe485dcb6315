package allocation

import (
	"math"

	"travel-calc/internal/domain"
)

// Result holds every quantity computed for a travel day. All values are in
// hours. KRTHours and INTHours are the figures to book; the rest explain how
// they were reached.
type Result struct {
	OutboundHours    float64 `json:"outbound_hours" yaml:"outbound_hours"`
	ReturnHours      float64 `json:"return_hours" yaml:"return_hours"`
	TotalTravelHours float64 `json:"total_travel_hours" yaml:"total_travel_hours"`
	FullDayHours     float64 `json:"full_day_hours" yaml:"full_day_hours"`

	OrdinaryCommuteHours float64 `json:"ordinary_commute_hours" yaml:"ordinary_commute_hours"`
	ExcessTravelHours    float64 `json:"excess_travel_hours" yaml:"excess_travel_hours"`

	OnSiteHours    float64 `json:"on_site_hours" yaml:"on_site_hours"`
	LunchHours     float64 `json:"lunch_hours" yaml:"lunch_hours"`
	ExtraWorkHours float64 `json:"extra_work_hours" yaml:"extra_work_hours"`
	OnSiteNetHours float64 `json:"on_site_net_hours" yaml:"on_site_net_hours"`

	KRTTravelShare float64 `json:"krt_travel_share" yaml:"krt_travel_share"`
	INTTravelShare float64 `json:"int_travel_share" yaml:"int_travel_share"`

	// AbsorbedByINT is extra work that displaced INT travel and moved to KRT.
	AbsorbedByINT float64 `json:"absorbed_by_int" yaml:"absorbed_by_int"`
	// ConvertedOrdinary is extra work that turned ordinary commute into KRT.
	ConvertedOrdinary float64 `json:"converted_ordinary" yaml:"converted_ordinary"`
	// DroppedExtraWork is extra work beyond what the policy can credit.
	DroppedExtraWork float64 `json:"dropped_extra_work" yaml:"dropped_extra_work"`

	MaxBillableHours float64 `json:"max_billable_hours" yaml:"max_billable_hours"`
	// CapReduction is how much the day cap removed from KRT and INT combined.
	CapReduction float64 `json:"cap_reduction" yaml:"cap_reduction"`

	// KRTRaw and INTRaw are the clamped and capped totals before rounding.
	KRTRaw float64 `json:"krt_raw" yaml:"krt_raw"`
	INTRaw float64 `json:"int_raw" yaml:"int_raw"`

	KRTHours       float64 `json:"krt_hours" yaml:"krt_hours"`
	INTHours       float64 `json:"int_hours" yaml:"int_hours"`
	RoundToQuarter bool    `json:"round_to_quarter" yaml:"round_to_quarter"`
}

// BillableHours returns the final KRT and INT hours combined.
func (r Result) BillableHours() float64 {
	return r.KRTHours + r.INTHours
}

// Allocate splits a travel day between KRT and INT under DefaultPolicy.
func Allocate(day domain.TravelDay) Result {
	return DefaultPolicy().Allocate(day)
}

// Allocate splits a travel day between KRT and INT under p.
//
// Negative intervals (an end before its start) are not rejected; they flow
// through as negative contributions and are clamped when the buckets are
// summed, so the published hours are never negative.
func (p Policy) Allocate(day domain.TravelDay) Result {
	var r Result
	r.RoundToQuarter = day.RoundToQuarter

	r.OutboundHours = day.Outbound().Hours()
	r.ReturnHours = day.Return().Hours()
	r.TotalTravelHours = r.OutboundHours + r.ReturnHours
	r.FullDayHours = day.FullDay().Hours()

	r.OrdinaryCommuteHours = math.Min(r.TotalTravelHours, p.OrdinaryCommuteHours)
	r.ExcessTravelHours = math.Max(r.TotalTravelHours-r.OrdinaryCommuteHours, 0)

	r.OnSiteHours = day.OnSite().Hours()
	r.LunchHours = domain.MinutesToHours(day.LunchMinutes)
	r.ExtraWorkHours = domain.MinutesToHours(day.ExtraWorkMinutes)
	r.OnSiteNetHours = r.OnSiteHours - r.LunchHours

	r.KRTTravelShare = math.Min(r.ExcessTravelHours, p.KRTTravelAllowanceHours)
	r.INTTravelShare = math.Max(r.ExcessTravelHours-r.KRTTravelShare, 0)

	// Extra work first displaces INT travel hour for hour, then may turn the
	// ordinary commute into billable time. Anything left over is dropped.
	r.AbsorbedByINT = math.Min(r.INTTravelShare, r.ExtraWorkHours)
	remaining := r.ExtraWorkHours - r.AbsorbedByINT
	r.ConvertedOrdinary = math.Min(remaining, r.OrdinaryCommuteHours)
	r.DroppedExtraWork = math.Max(remaining-math.Max(r.ConvertedOrdinary, 0), 0)

	adjustedINT := r.INTTravelShare - r.AbsorbedByINT

	// KRT is clamped after summing, not per term: a negative on-site net
	// must eat into the travel share.
	krt := math.Max(r.OnSiteNetHours+r.KRTTravelShare+r.AbsorbedByINT+r.ConvertedOrdinary, 0)
	intHours := math.Max(adjustedINT, 0)

	r.MaxBillableHours = math.Max(r.FullDayHours-r.LunchHours, 0)
	uncapped := krt + intHours
	krt, intHours = applyDayCap(krt, intHours, r.MaxBillableHours)
	r.CapReduction = uncapped - (krt + intHours)

	r.KRTRaw = krt
	r.INTRaw = intHours

	if day.RoundToQuarter {
		r.KRTHours = p.RoundUp(krt)
		r.INTHours = p.RoundUp(intHours)
	} else {
		r.KRTHours = krt
		r.INTHours = intHours
	}

	return r
}

// applyDayCap trims krt and then intHours so their sum does not exceed limit.
func applyDayCap(krt, intHours, limit float64) (float64, float64) {
	if krt+intHours <= limit {
		return krt, intHours
	}

	overflow := krt + intHours - limit
	krt = math.Max(krt-overflow, 0)

	if krt+intHours > limit {
		remaining := krt + intHours - limit
		intHours = math.Max(intHours-remaining, 0)
	}

	return krt, intHours
}

// roundingTolerance absorbs float drift from summing fractional hours, in
// units of the rounding increment. 3.7500000000000004h must round to 3.75h.
const roundingTolerance = 1e-9

// RoundUp rounds hours up to the next multiple of the policy's rounding
// increment. Zero and negative values round to exactly zero.
func (p Policy) RoundUp(hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	steps := math.Ceil(hours/p.RoundingIncrement - roundingTolerance)
	return steps * p.RoundingIncrement
}
