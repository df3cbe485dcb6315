package cli

import (
	"context"
	"strings"

	"travel-calc/internal/errors"
)

// Command is one subcommand of the key=value front-end
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry maps subcommand names to their implementation and keeps
// a one-line synopsis of each for the usage text.
type CommandRegistry struct {
	commands map[string]Command
	synopses []string
}

func NewCommandRegistry(app *App) *CommandRegistry {
	r := &CommandRegistry{commands: map[string]Command{}}

	r.register("calc", NewCalcCommand(app),
		"[start=HH:MM] [arrival=HH:MM] [return_start=HH:MM] [return_arrival=HH:MM] [lunch=MIN] [extra_work=MIN] [round=true|false] [format=table|json|yaml|csv]")
	r.register("defaults", NewDefaultsCommand(app), "[format=table|json|yaml|csv]")
	r.register("serve", NewServeCommand(app), "[port=N]")

	return r
}

func (r *CommandRegistry) register(name string, command Command, args string) {
	r.Register(name, command)
	r.synopses = append(r.synopses, "travelcalc "+name+" "+args)
}

// Register adds or replaces a command without listing it in the usage text
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the named command
func (r *CommandRegistry) Execute(ctx context.Context, name string, args []string) error {
	command, ok := r.commands[name]
	if !ok {
		return errors.NewInvalidInputError("command", name, "unknown command")
	}
	return command.Execute(ctx, args)
}

func (r *CommandRegistry) GetUsage() string {
	return "usage: " + strings.Join(r.synopses, "\n       ")
}
