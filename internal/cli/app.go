package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"travel-calc/internal/api"
	"travel-calc/internal/config"
	"travel-calc/internal/errors"
)

// App represents the main CLI application
type App struct {
	calculator api.Calculator
	config     *config.Config
	registry   *CommandRegistry
	out        io.Writer
}

// NewApp creates a new CLI application using the built-in configuration
func NewApp(calculator api.Calculator) *App {
	return NewAppWithConfig(calculator, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(calculator api.Calculator, cfg *config.Config) *App {
	app := &App{
		calculator: calculator,
		config:     cfg,
		out:        os.Stdout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects command output, e.g. to a cobra command's writer
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// parseOptions splits key=value arguments. Keys are matched case
// insensitively and dashes are read as underscores, so "return-start"
// and "return_start" name the same option.
func parseOptions(args []string, allowed ...string) (url.Values, error) {
	known := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		known[key] = true
	}

	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.NewInvalidInputError("argument", arg, "expected key=value")
		}

		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
		if !known[key] {
			return nil, errors.NewInvalidInputError(key, value, "unknown option")
		}
		values.Set(key, strings.TrimSpace(value))
	}

	return values, nil
}
