package domain

// Defaults used when a travel day field has not been filled in.
const (
	DefaultLunchMinutes     = 30
	DefaultExtraWorkMinutes = 0
	DefaultRoundToQuarter   = true
)

// MinutesOf returns an optional minute count holding n.
// Minute counts are *int so that "not entered" (nil) stays distinct from zero.
func MinutesOf(n int) *int {
	return &n
}

// MinutesValue normalizes m to a plain minute count. Absent and negative
// values both become zero.
func MinutesValue(m *int) int {
	if m == nil || *m < 0 {
		return 0
	}
	return *m
}

// MinutesToHours converts an optional minute count to fractional hours.
func MinutesToHours(m *int) float64 {
	return float64(MinutesValue(m)) / 60
}

// TravelDay holds everything entered for a single travel day.
type TravelDay struct {
	StartTime         ClockTime
	ArrivalTime       ClockTime
	ReturnStartTime   ClockTime
	ReturnArrivalTime ClockTime
	LunchMinutes      *int
	ExtraWorkMinutes  *int
	RoundToQuarter    bool
}

// NewTravelDay creates a TravelDay with default lunch, extra work and rounding.
func NewTravelDay(start, arrival, returnStart, returnArrival ClockTime) TravelDay {
	return TravelDay{
		StartTime:         start,
		ArrivalTime:       arrival,
		ReturnStartTime:   returnStart,
		ReturnArrivalTime: returnArrival,
		LunchMinutes:      MinutesOf(DefaultLunchMinutes),
		ExtraWorkMinutes:  MinutesOf(DefaultExtraWorkMinutes),
		RoundToQuarter:    DefaultRoundToQuarter,
	}
}

// Outbound returns the trip from home to the destination.
func (d TravelDay) Outbound() Interval {
	return NewInterval(d.StartTime, d.ArrivalTime)
}

// Return returns the trip from the destination back home.
func (d TravelDay) Return() Interval {
	return NewInterval(d.ReturnStartTime, d.ReturnArrivalTime)
}

// OnSite returns the time spent at the destination.
func (d TravelDay) OnSite() Interval {
	return NewInterval(d.ArrivalTime, d.ReturnStartTime)
}

// FullDay returns the span from leaving home to arriving home.
func (d TravelDay) FullDay() Interval {
	return NewInterval(d.StartTime, d.ReturnArrivalTime)
}

// TotalTravelHours returns the outbound plus return travel time in hours.
func (d TravelDay) TotalTravelHours() float64 {
	return d.Outbound().Hours() + d.Return().Hours()
}

// WithLunch returns a copy of d with the given lunch minutes.
func (d TravelDay) WithLunch(m *int) TravelDay {
	d.LunchMinutes = m
	return d
}

// WithExtraWork returns a copy of d with the given extra work minutes.
func (d TravelDay) WithExtraWork(m *int) TravelDay {
	d.ExtraWorkMinutes = m
	return d
}

// WithRounding returns a copy of d with the given rounding mode.
func (d TravelDay) WithRounding(roundToQuarter bool) TravelDay {
	d.RoundToQuarter = roundToQuarter
	return d
}

// IsValid checks that every clock time is a valid time of day.
// Ordering is not checked: backwards intervals are legitimate input.
func (d TravelDay) IsValid() bool {
	return d.StartTime.IsValid() &&
		d.ArrivalTime.IsValid() &&
		d.ReturnStartTime.IsValid() &&
		d.ReturnArrivalTime.IsValid()
}
