package domain

import (
	"strings"
)

// TravelDayForm is the raw, unparsed shape of a travel day as it arrives from
// a form, a command line or a request body.
type TravelDayForm struct {
	StartTime         string `json:"start_time" yaml:"start_time"`
	ArrivalTime       string `json:"arrival_time" yaml:"arrival_time"`
	ReturnStartTime   string `json:"return_start_time" yaml:"return_start_time"`
	ReturnArrivalTime string `json:"return_arrival_time" yaml:"return_arrival_time"`
	LunchMinutes      *int   `json:"lunch_minutes,omitempty" yaml:"lunch_minutes,omitempty"`
	ExtraWorkMinutes  *int   `json:"extra_work_minutes,omitempty" yaml:"extra_work_minutes,omitempty"`
	RoundToQuarter    *bool  `json:"round_to_quarter,omitempty" yaml:"round_to_quarter,omitempty"`
}

// TravelDayMapper handles conversion between raw forms and TravelDay values.
type TravelDayMapper struct{}

// NewTravelDayMapper creates a new TravelDayMapper instance.
func NewTravelDayMapper() *TravelDayMapper {
	return &TravelDayMapper{}
}

// ToForm converts a TravelDay to its raw form representation.
func (m *TravelDayMapper) ToForm(d TravelDay) TravelDayForm {
	round := d.RoundToQuarter
	return TravelDayForm{
		StartTime:         d.StartTime.String(),
		ArrivalTime:       d.ArrivalTime.String(),
		ReturnStartTime:   d.ReturnStartTime.String(),
		ReturnArrivalTime: d.ReturnArrivalTime.String(),
		LunchMinutes:      copyInt(d.LunchMinutes),
		ExtraWorkMinutes:  copyInt(d.ExtraWorkMinutes),
		RoundToQuarter:    &round,
	}
}

// FromForm parses a raw form into a TravelDay. Minute counts are carried over
// as-is, including nil. A missing rounding flag means DefaultRoundToQuarter.
func (m *TravelDayMapper) FromForm(f TravelDayForm) (TravelDay, error) {
	start, err := ParseClockTime(f.StartTime)
	if err != nil {
		return TravelDay{}, err
	}
	arrival, err := ParseClockTime(f.ArrivalTime)
	if err != nil {
		return TravelDay{}, err
	}
	returnStart, err := ParseClockTime(f.ReturnStartTime)
	if err != nil {
		return TravelDay{}, err
	}
	returnArrival, err := ParseClockTime(f.ReturnArrivalTime)
	if err != nil {
		return TravelDay{}, err
	}

	round := DefaultRoundToQuarter
	if f.RoundToQuarter != nil {
		round = *f.RoundToQuarter
	}

	return TravelDay{
		StartTime:         start,
		ArrivalTime:       arrival,
		ReturnStartTime:   returnStart,
		ReturnArrivalTime: returnArrival,
		LunchMinutes:      copyInt(f.LunchMinutes),
		ExtraWorkMinutes:  copyInt(f.ExtraWorkMinutes),
		RoundToQuarter:    round,
	}, nil
}

// MergeDefaults fills every blank field of f from defaults.
func (m *TravelDayMapper) MergeDefaults(f, defaults TravelDayForm) TravelDayForm {
	merged := f
	if strings.TrimSpace(merged.StartTime) == "" {
		merged.StartTime = defaults.StartTime
	}
	if strings.TrimSpace(merged.ArrivalTime) == "" {
		merged.ArrivalTime = defaults.ArrivalTime
	}
	if strings.TrimSpace(merged.ReturnStartTime) == "" {
		merged.ReturnStartTime = defaults.ReturnStartTime
	}
	if strings.TrimSpace(merged.ReturnArrivalTime) == "" {
		merged.ReturnArrivalTime = defaults.ReturnArrivalTime
	}
	if merged.LunchMinutes == nil {
		merged.LunchMinutes = copyInt(defaults.LunchMinutes)
	}
	if merged.ExtraWorkMinutes == nil {
		merged.ExtraWorkMinutes = copyInt(defaults.ExtraWorkMinutes)
	}
	if merged.RoundToQuarter == nil && defaults.RoundToQuarter != nil {
		round := *defaults.RoundToQuarter
		merged.RoundToQuarter = &round
	}
	return merged
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
