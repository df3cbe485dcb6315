package api

import (
	"net/url"
	"strconv"
	"strings"

	"travel-calc/internal/errors"
)

// Keys accepted by RequestFromValues
const (
	KeyStart         = "start"
	KeyArrival       = "arrival"
	KeyReturnStart   = "return_start"
	KeyReturnArrival = "return_arrival"
	KeyLunch         = "lunch"
	KeyExtraWork     = "extra_work"
	KeyRound         = "round"
)

// RequestKeys lists every key understood by RequestFromValues
var RequestKeys = []string{KeyStart, KeyArrival, KeyReturnStart, KeyReturnArrival, KeyLunch, KeyExtraWork, KeyRound}

// RequestFromValues builds a request from flat key/value pairs such as a
// query string. Blank or missing values are left unset so the calculator
// fills them from the defaults. Unknown keys are ignored.
func RequestFromValues(values url.Values) (CalculationRequest, error) {
	req := CalculationRequest{
		StartTime:         values.Get(KeyStart),
		ArrivalTime:       values.Get(KeyArrival),
		ReturnStartTime:   values.Get(KeyReturnStart),
		ReturnArrivalTime: values.Get(KeyReturnArrival),
	}

	var err error
	if req.LunchMinutes, err = minutesValue(values, KeyLunch); err != nil {
		return req, err
	}
	if req.ExtraWorkMinutes, err = minutesValue(values, KeyExtraWork); err != nil {
		return req, err
	}

	if raw := strings.TrimSpace(values.Get(KeyRound)); raw != "" {
		round, perr := strconv.ParseBool(raw)
		if perr != nil {
			return req, errors.NewInvalidInputError(KeyRound, raw, "must be true or false")
		}
		req.RoundToQuarter = &round
	}

	return req, nil
}

func minutesValue(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewInvalidInputError(key, raw, "must be a whole number of minutes")
	}
	return &n, nil
}
