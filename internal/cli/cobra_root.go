package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"travel-calc/internal/api"
	"travel-calc/internal/config"
	"travel-calc/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	config     *config.Config
	calculator api.Calculator
}

// NewRootCommand creates the root cobra command with global flags.
// Configuration is loaded before any subcommand runs.
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "travelcalc",
		Short: "Split a travel day into KRT and INT hours",
		Long: `travelcalc (travel calculator) allocates the hours of a customer site visit
between the customer code (KRT) and internal travel (INT).

A travel day is four clock times: leaving home, arriving at the site, leaving
the site and arriving home. On-site time less lunch goes to KRT together with
up to one hour of travel beyond the ordinary commute. The remaining excess
travel goes to INT. Extra work done while travelling moves hours from INT to
KRT. Both codes are rounded up to the quarter hour and the total never exceeds
the time away from home less lunch.

EXAMPLES:
  travelcalc calc                                        # Allocate the default day
  travelcalc calc --start 07:00 --return-arrival 17:30   # Override some clock times
  travelcalc calc --extra-work 60 --format json          # Extra work, JSON output
  travelcalc calc start=07:00 lunch=45                   # key=value form
  travelcalc defaults                                    # Show the form defaults
  travelcalc serve --port 8080                           # Serve the form over HTTP

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file:
    TC_CONFIG                              YAML config file (or --config)

  Form defaults:
    TC_DEFAULT_START_TIME                  Leave home (default: 08:00)
    TC_DEFAULT_ARRIVAL_TIME                Arrive on site (default: 09:30)
    TC_DEFAULT_RETURN_START_TIME           Leave site (default: 14:30)
    TC_DEFAULT_RETURN_ARRIVAL_TIME         Arrive home (default: 16:00)
    TC_DEFAULT_LUNCH_MINUTES               Lunch (default: 30)
    TC_DEFAULT_EXTRA_WORK_MINUTES          Extra work while travelling (default: 0)
    TC_DEFAULT_ROUND_TO_QUARTER            Round up to the quarter hour (default: true)

  Policy:
    TC_POLICY_ORDINARY_COMMUTE_HOURS       Commute not billed (default: 1)
    TC_POLICY_KRT_TRAVEL_ALLOWANCE_HOURS   Excess travel billed to KRT (default: 1)
    TC_POLICY_ROUNDING_INCREMENT           Rounding step in hours (default: 0.25)

  Validation, display, server and logging:
    TC_VALIDATION_STRICT                   Reject out-of-range minutes instead of clamping
    TC_VALIDATION_MAX_LUNCH_MINUTES        Lunch ceiling, 0 for none (default: 0)
    TC_DISPLAY_FORMAT                      table, json, yaml or csv (default: table)
    TC_SERVER_PORT                         HTTP port (default: 8080)
    TC_SERVER_ALLOWED_ORIGINS              Comma separated CORS origins (default: *)
    TC_APP_TIMEOUT                         Application timeout (default: 30s)
    TC_APP_VERBOSE                         Show intermediate quantities (default: false)
    TC_LOG_LEVEL                           debug, info, warn or error (default: info)
    TC_LOG_FORMAT                          text or json (default: text)
    TC_DEBUG                               Print debug tracing to stderr

GETTING HELP:
  travelcalc [command] --help              # Get help for any specific command
  travelcalc completion bash               # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration and apply flag overrides before any command runs
			return root.loadConfig(cmd.Flags())
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the base context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML configuration file (overrides TC_CONFIG)")
	flags.Bool("strict", false, "Reject out-of-range minutes instead of clamping (overrides TC_VALIDATION_STRICT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TC_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Show intermediate quantities (overrides TC_APP_VERBOSE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TC_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text or json (overrides TC_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Calc command
	calcCmd := &cobra.Command{
		Use:   "calc [key=value ...]",
		Short: "Allocate one travel day",
		Long: `Allocate one travel day between KRT and INT.

Fields that are not given are taken from the configured form defaults.
Every field can be given as a flag or as a key=value argument:
  start, arrival, return_start, return_arrival   clock times as HH:MM
  lunch, extra_work                              whole minutes
  round                                          true or false

Negative lunch or extra work is raised to zero and extra work is limited to
the total travel time. Use --strict to reject such values instead.

Examples:
  travelcalc calc --start 07:00 --arrival 09:00 --return-start 15:00 --return-arrival 17:00
  travelcalc calc --extra-work 60
  travelcalc calc --no-round --format yaml
  travelcalc calc arrival=09:10 return_arrival=15:40 round=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return r.newApp(cmd).Run(ctx, commandArgs("calc", calcFlagArgs(cmd.Flags()), args))
		},
	}
	calcFlags := calcCmd.Flags()
	calcFlags.String("start", "", "Leave home, HH:MM")
	calcFlags.String("arrival", "", "Arrive on site, HH:MM")
	calcFlags.String("return-start", "", "Leave site, HH:MM")
	calcFlags.String("return-arrival", "", "Arrive home, HH:MM")
	calcFlags.Int("lunch", 0, "Lunch in minutes")
	calcFlags.Int("extra-work", 0, "Extra work done while travelling, in minutes")
	calcFlags.Bool("no-round", false, "Do not round up to the quarter hour")
	calcFlags.String("format", "", "Output format: table, json, yaml, csv (overrides TC_DISPLAY_FORMAT)")

	// Defaults command
	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show the form defaults",
		Long:  "Show the initial values of the travel day form after configuration is applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return r.newApp(cmd).Run(ctx, commandArgs("defaults", nil, args))
		},
	}
	defaultsCmd.Flags().String("format", "", "Output format: table, json, yaml, csv (overrides TC_DISPLAY_FORMAT)")

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the travel day form over HTTP",
		Long: `Serve the travel day form as a JSON API until interrupted.

Endpoints:
  GET  /api/health     liveness check
  GET  /api/defaults   form defaults
  GET  /api/allocate   allocate a day from query parameters
  POST /api/allocate   allocate a day from a JSON body`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Runs until interrupted, so no application timeout
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return r.newApp(cmd).Run(ctx, commandArgs("serve", nil, args))
		},
	}
	serveFlags := serveCmd.Flags()
	serveFlags.Int("port", 0, "HTTP port (overrides TC_SERVER_PORT)")
	serveFlags.StringSlice("allowed-origin", nil, "Allowed CORS origin, repeatable (overrides TC_SERVER_ALLOWED_ORIGINS)")

	// Add all subcommands to root
	r.cmd.AddCommand(
		calcCmd,
		defaultsCmd,
		serveCmd,
	)
}

// newApp builds the CLI application around the loaded configuration
func (r *RootCommand) newApp(cmd *cobra.Command) *App {
	app := NewAppWithConfig(r.calculator, r.config)
	app.SetOutput(cmd.OutOrStdout())
	return app
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.GetTimeout()
	}
	return 30 * time.Second // Default timeout
}

// loadConfig loads the cascading configuration and applies the flags the
// user actually set
func (r *RootCommand) loadConfig(flags *pflag.FlagSet) error {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		overrides.ConfigFile = &path
	}
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		overrides.Strict = &strict
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		overrides.LogLevel = &level
	}
	if flags.Changed("log-format") {
		format, _ := flags.GetString("log-format")
		overrides.LogFormat = &format
	}

	// Subcommand flags
	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		overrides.Format = &format
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		overrides.Port = &port
	}
	if flags.Changed("allowed-origin") {
		origins, _ := flags.GetStringSlice("allowed-origin")
		overrides.AllowedOrigins = origins
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		field := "config"
		var configErr *config.ConfigError
		if stderrors.As(err, &configErr) {
			field = configErr.Field
		}
		return errors.NewConfigurationError(field, err)
	}

	r.config = cfg
	r.calculator = api.NewWithConfig(cfg)
	return nil
}

// commandArgs builds the argument list App.Run dispatches on: the command
// name, then flag-derived key=value pairs, then positional arguments.
func commandArgs(name string, flagArgs, args []string) []string {
	out := make([]string, 0, 1+len(flagArgs)+len(args))
	out = append(out, name)
	out = append(out, flagArgs...)
	return append(out, args...)
}

// calcFlagArgs turns the calc flags the user set into key=value arguments
func calcFlagArgs(flags *pflag.FlagSet) []string {
	var args []string

	for _, name := range []struct{ flag, key string }{
		{"start", api.KeyStart},
		{"arrival", api.KeyArrival},
		{"return-start", api.KeyReturnStart},
		{"return-arrival", api.KeyReturnArrival},
	} {
		if flags.Changed(name.flag) {
			value, _ := flags.GetString(name.flag)
			args = append(args, name.key+"="+value)
		}
	}

	if flags.Changed("lunch") {
		lunch, _ := flags.GetInt("lunch")
		args = append(args, api.KeyLunch+"="+strconv.Itoa(lunch))
	}
	if flags.Changed("extra-work") {
		extra, _ := flags.GetInt("extra-work")
		args = append(args, api.KeyExtraWork+"="+strconv.Itoa(extra))
	}
	if flags.Changed("no-round") {
		noRound, _ := flags.GetBool("no-round")
		args = append(args, api.KeyRound+"="+strconv.FormatBool(!noRound))
	}

	return args
}
