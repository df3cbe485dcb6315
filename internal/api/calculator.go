package api

import (
	"context"
	stderrors "errors"

	"travel-calc/internal/allocation"
	"travel-calc/internal/config"
	"travel-calc/internal/domain"
	"travel-calc/internal/errors"
	"travel-calc/internal/logging"
	"travel-calc/internal/services"
	"travel-calc/internal/validation"
)

// calculatorImpl implements the Calculator interface
type calculatorImpl struct {
	config    *config.Config
	policy    allocation.Policy
	mapper    *domain.TravelDayMapper
	validator *validation.TravelDayValidator
	services  *services.ServiceContainer
}

// New creates a Calculator using the built-in defaults
func New() Calculator {
	return NewWithConfig(config.NewConfig())
}

// NewWithConfig creates a Calculator using the given configuration
func NewWithConfig(cfg *config.Config) Calculator {
	return &calculatorImpl{
		config:    cfg,
		policy:    cfg.AllocationPolicy(),
		mapper:    domain.NewTravelDayMapper(),
		validator: validation.NewTravelDayValidatorWithConfig(cfg),
		services:  services.NewServiceContainer(),
	}
}

func (c *calculatorImpl) Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error) {
	if err := c.checkContext(ctx); err != nil {
		return nil, err
	}

	// 1. Fill absent fields from the defaults
	form := c.mapper.MergeDefaults(req, c.Defaults())
	logging.Debugf("calculate: merged form %+v\n", form)

	// 2. Validate the clock fields
	if err := c.validator.ValidateForm(form); err != nil {
		return nil, errors.NewValidationError("invalid travel day", err)
	}

	// 3. Parse into a travel day
	day, err := c.mapper.FromForm(form)
	if err != nil {
		return nil, errors.NewValidationError("invalid travel day", err)
	}

	return c.calculate(ctx, day)
}

func (c *calculatorImpl) CalculateDay(ctx context.Context, day domain.TravelDay) (*Calculation, error) {
	if err := c.checkContext(ctx); err != nil {
		return nil, err
	}

	if err := c.validator.ValidateTravelDay(day); err != nil {
		return nil, errors.NewValidationError("invalid travel day", err)
	}

	return c.calculate(ctx, day)
}

// calculate normalizes minute counts, allocates and builds the breakdown
func (c *calculatorImpl) calculate(ctx context.Context, day domain.TravelDay) (*Calculation, error) {
	normalized, adjustments, err := c.validator.Normalize(day)
	if err != nil {
		return nil, errors.NewValidationError("minute counts out of range", err)
	}
	for _, adj := range adjustments {
		logging.Debugln("calculate:", adj.String())
	}

	result := c.policy.Allocate(normalized)
	breakdown := c.services.BreakdownService

	calc := &Calculation{
		Input:       c.mapper.ToForm(normalized),
		Result:      result,
		KRT:         breakdown.KRT(result),
		INT:         breakdown.INT(result),
		Notes:       breakdown.Notes(result),
		Adjustments: adjustments,
	}

	if err := c.checkContext(ctx); err != nil {
		return nil, err
	}

	return calc, nil
}

func (c *calculatorImpl) Defaults() CalculationRequest {
	return c.config.DefaultsForm()
}

func (c *calculatorImpl) MaxExtraWorkMinutes(totalTravelHours float64) int {
	return c.validator.MaxExtraWorkMinutes(totalTravelHours)
}

// checkContext converts a finished context into an application error
func (c *calculatorImpl) checkContext(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		timeoutErr := errors.NewTimeoutError("calculate", c.config.GetTimeout())
		timeoutErr.Cause = err
		return timeoutErr
	}
	return errors.WrapError(err, errors.ErrorTypeTimeout, "calculation canceled").
		WithContext("operation", "calculate")
}
