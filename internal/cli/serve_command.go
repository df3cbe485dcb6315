package cli

import (
	"context"
	"strconv"

	"travel-calc/internal/errors"
	"travel-calc/internal/logging"
	"travel-calc/internal/server"
)

const keyPort = "port"

// ServeCommand serves the travel day form over HTTP until ctx is done
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	values, err := parseOptions(args, keyPort)
	if err != nil {
		return err
	}

	cfg := *c.app.config
	if raw := values.Get(keyPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return errors.NewInvalidInputError(keyPort, raw, "must be between 1 and 65535")
		}
		cfg.Server.Port = port
	}

	logger := logging.NewLoggerWithSystem(cfg.Logging, "server")
	srv := server.New(c.app.calculator, &cfg, logger)

	return srv.Run(ctx)
}
