package cli

import (
	"context"

	"travel-calc/internal/api"
	"travel-calc/internal/errors"
	"travel-calc/internal/logging"
)

const keyFormat = "format"

// CalcCommand handles the calc command
type CalcCommand struct {
	app *App
}

// NewCalcCommand creates a new calc command handler
func NewCalcCommand(app *App) *CalcCommand {
	return &CalcCommand{app: app}
}

// Execute allocates one travel day and prints the result
func (c *CalcCommand) Execute(ctx context.Context, args []string) error {
	values, err := parseOptions(args, append([]string{keyFormat}, api.RequestKeys...)...)
	if err != nil {
		return err
	}

	format := c.app.config.Display.Format
	if f := values.Get(keyFormat); f != "" {
		format = f
	}
	renderer, err := NewRenderer(format, c.app.config.Application.Verbose)
	if err != nil {
		return err
	}

	req, err := api.RequestFromValues(values)
	if err != nil {
		return err
	}
	logging.Debugf("calc: request %+v\n", req)

	calc, err := c.app.calculator.Calculate(ctx, req)
	if err != nil {
		return err
	}

	if err := renderer.RenderCalculation(c.app.out, calc); err != nil {
		return errors.NewInternalError("render", err)
	}
	return nil
}
