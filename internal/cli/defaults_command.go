package cli

import (
	"context"

	"travel-calc/internal/errors"
)

// DefaultsCommand prints the initial values of the travel day form
type DefaultsCommand struct {
	app *App
}

// NewDefaultsCommand creates a new defaults command handler
func NewDefaultsCommand(app *App) *DefaultsCommand {
	return &DefaultsCommand{app: app}
}

// Execute runs the defaults command
func (c *DefaultsCommand) Execute(ctx context.Context, args []string) error {
	values, err := parseOptions(args, keyFormat)
	if err != nil {
		return err
	}

	format := c.app.config.Display.Format
	if f := values.Get(keyFormat); f != "" {
		format = f
	}
	renderer, err := NewRenderer(format, false)
	if err != nil {
		return err
	}

	if err := renderer.RenderDefaults(c.app.out, c.app.calculator.Defaults()); err != nil {
		return errors.NewInternalError("render", err)
	}
	return nil
}
