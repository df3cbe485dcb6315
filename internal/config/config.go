package config

import (
	"os"
	"strings"
	"time"

	"travel-calc/internal/allocation"
	"travel-calc/internal/domain"
)

// Config holds all configuration options for the travel calculator
type Config struct {
	Defaults    DefaultsConfig    `yaml:"defaults"`
	Policy      PolicyConfig      `yaml:"policy"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Server      ServerConfig      `yaml:"server"`
	Application ApplicationConfig `yaml:"application"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DefaultsConfig holds the initial values of the travel day form
type DefaultsConfig struct {
	StartTime         string `yaml:"start_time" env:"TC_DEFAULT_START_TIME"`
	ArrivalTime       string `yaml:"arrival_time" env:"TC_DEFAULT_ARRIVAL_TIME"`
	ReturnStartTime   string `yaml:"return_start_time" env:"TC_DEFAULT_RETURN_START_TIME"`
	ReturnArrivalTime string `yaml:"return_arrival_time" env:"TC_DEFAULT_RETURN_ARRIVAL_TIME"`
	LunchMinutes      int    `yaml:"lunch_minutes" env:"TC_DEFAULT_LUNCH_MINUTES"`
	ExtraWorkMinutes  int    `yaml:"extra_work_minutes" env:"TC_DEFAULT_EXTRA_WORK_MINUTES"`
	RoundToQuarter    bool   `yaml:"round_to_quarter" env:"TC_DEFAULT_ROUND_TO_QUARTER"`
}

// PolicyConfig holds the allocation thresholds
type PolicyConfig struct {
	OrdinaryCommuteHours    float64 `yaml:"ordinary_commute_hours" env:"TC_POLICY_ORDINARY_COMMUTE_HOURS"`
	KRTTravelAllowanceHours float64 `yaml:"krt_travel_allowance_hours" env:"TC_POLICY_KRT_TRAVEL_ALLOWANCE_HOURS"`
	RoundingIncrement       float64 `yaml:"rounding_increment" env:"TC_POLICY_ROUNDING_INCREMENT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	Strict          bool `yaml:"strict" env:"TC_VALIDATION_STRICT"`
	MaxLunchMinutes int  `yaml:"max_lunch_minutes" env:"TC_VALIDATION_MAX_LUNCH_MINUTES"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Format string `yaml:"format" env:"TC_DISPLAY_FORMAT"`
}

// ServerConfig holds HTTP front-end configuration
type ServerConfig struct {
	Port           int      `yaml:"port" env:"TC_SERVER_PORT"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"TC_SERVER_ALLOWED_ORIGINS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TC_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TC_APP_VERBOSE"`
}

// LoggingConfig holds structured logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level" env:"TC_LOG_LEVEL"`
	Format string `yaml:"format" env:"TC_LOG_FORMAT"`
}

// SupportedFormats lists the output formats the CLI can render
var SupportedFormats = []string{"table", "json", "yaml", "csv"}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	policy := allocation.DefaultPolicy()

	return &Config{
		Defaults: DefaultsConfig{
			StartTime:         "08:00",
			ArrivalTime:       "09:30",
			ReturnStartTime:   "14:30",
			ReturnArrivalTime: "16:00",
			LunchMinutes:      domain.DefaultLunchMinutes,
			ExtraWorkMinutes:  domain.DefaultExtraWorkMinutes,
			RoundToQuarter:    domain.DefaultRoundToQuarter,
		},
		Policy: PolicyConfig{
			OrdinaryCommuteHours:    policy.OrdinaryCommuteHours,
			KRTTravelAllowanceHours: policy.KRTTravelAllowanceHours,
			RoundingIncrement:       policy.RoundingIncrement,
		},
		Validation: ValidationConfig{
			Strict:          false,
			MaxLunchMinutes: 0,
		},
		Display: DisplayConfig{
			Format: "table",
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultsForm returns the configured form defaults as a travel day form
func (c *Config) DefaultsForm() domain.TravelDayForm {
	round := c.Defaults.RoundToQuarter
	return domain.TravelDayForm{
		StartTime:         c.Defaults.StartTime,
		ArrivalTime:       c.Defaults.ArrivalTime,
		ReturnStartTime:   c.Defaults.ReturnStartTime,
		ReturnArrivalTime: c.Defaults.ReturnArrivalTime,
		LunchMinutes:      domain.MinutesOf(c.Defaults.LunchMinutes),
		ExtraWorkMinutes:  domain.MinutesOf(c.Defaults.ExtraWorkMinutes),
		RoundToQuarter:    &round,
	}
}

// AllocationPolicy returns the configured allocation thresholds
func (c *Config) AllocationPolicy() allocation.Policy {
	return allocation.Policy{
		OrdinaryCommuteHours:    c.Policy.OrdinaryCommuteHours,
		KRTTravelAllowanceHours: c.Policy.KRTTravelAllowanceHours,
		RoundingIncrement:       c.Policy.RoundingIncrement,
	}
}

// GetTimeout returns the per-operation timeout
func (c *Config) GetTimeout() time.Duration {
	return c.Application.Timeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Defaults configuration
	if v := os.Getenv("TC_DEFAULT_START_TIME"); v != "" {
		c.Defaults.StartTime = v
	}
	if v := os.Getenv("TC_DEFAULT_ARRIVAL_TIME"); v != "" {
		c.Defaults.ArrivalTime = v
	}
	if v := os.Getenv("TC_DEFAULT_RETURN_START_TIME"); v != "" {
		c.Defaults.ReturnStartTime = v
	}
	if v := os.Getenv("TC_DEFAULT_RETURN_ARRIVAL_TIME"); v != "" {
		c.Defaults.ReturnArrivalTime = v
	}
	if v := os.Getenv("TC_DEFAULT_LUNCH_MINUTES"); v != "" {
		c.Defaults.LunchMinutes = ParseIntWithFallback(v, c.Defaults.LunchMinutes)
	}
	if v := os.Getenv("TC_DEFAULT_EXTRA_WORK_MINUTES"); v != "" {
		c.Defaults.ExtraWorkMinutes = ParseIntWithFallback(v, c.Defaults.ExtraWorkMinutes)
	}
	if v := os.Getenv("TC_DEFAULT_ROUND_TO_QUARTER"); v != "" {
		c.Defaults.RoundToQuarter = ParseBoolWithFallback(v, c.Defaults.RoundToQuarter)
	}

	// Policy configuration
	if v := os.Getenv("TC_POLICY_ORDINARY_COMMUTE_HOURS"); v != "" {
		c.Policy.OrdinaryCommuteHours = ParseFloatWithFallback(v, c.Policy.OrdinaryCommuteHours)
	}
	if v := os.Getenv("TC_POLICY_KRT_TRAVEL_ALLOWANCE_HOURS"); v != "" {
		c.Policy.KRTTravelAllowanceHours = ParseFloatWithFallback(v, c.Policy.KRTTravelAllowanceHours)
	}
	if v := os.Getenv("TC_POLICY_ROUNDING_INCREMENT"); v != "" {
		c.Policy.RoundingIncrement = ParseFloatWithFallback(v, c.Policy.RoundingIncrement)
	}

	// Validation configuration
	if v := os.Getenv("TC_VALIDATION_STRICT"); v != "" {
		c.Validation.Strict = ParseBoolWithFallback(v, c.Validation.Strict)
	}
	if v := os.Getenv("TC_VALIDATION_MAX_LUNCH_MINUTES"); v != "" {
		c.Validation.MaxLunchMinutes = ParseIntWithFallback(v, c.Validation.MaxLunchMinutes)
	}

	// Display configuration
	if v := os.Getenv("TC_DISPLAY_FORMAT"); v != "" {
		c.Display.Format = strings.ToLower(v)
	}

	// Server configuration
	if v := os.Getenv("TC_SERVER_PORT"); v != "" {
		c.Server.Port = ParseIntWithFallback(v, c.Server.Port)
	}
	if v := os.Getenv("TC_SERVER_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = SplitList(v)
	}

	// Application configuration
	if v := os.Getenv("TC_APP_TIMEOUT"); v != "" {
		c.Application.Timeout = ParseDurationWithFallback(v, c.Application.Timeout)
	}
	if v := os.Getenv("TC_APP_VERBOSE"); v != "" {
		c.Application.Verbose = ParseBoolWithFallback(v, c.Application.Verbose)
	}

	// Logging configuration
	if v := os.Getenv("TC_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("TC_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate form defaults
	clocks := []struct {
		field string
		value string
	}{
		{"defaults.start_time", c.Defaults.StartTime},
		{"defaults.arrival_time", c.Defaults.ArrivalTime},
		{"defaults.return_start_time", c.Defaults.ReturnStartTime},
		{"defaults.return_arrival_time", c.Defaults.ReturnArrivalTime},
	}
	for _, clock := range clocks {
		if _, err := domain.ParseClockTime(clock.value); err != nil {
			return &ConfigError{Field: clock.field, Message: "must be a time of day in HH:MM format"}
		}
	}
	if c.Defaults.LunchMinutes < 0 {
		return &ConfigError{Field: "defaults.lunch_minutes", Message: "lunch minutes cannot be negative"}
	}
	if c.Defaults.ExtraWorkMinutes < 0 {
		return &ConfigError{Field: "defaults.extra_work_minutes", Message: "extra work minutes cannot be negative"}
	}

	// Validate policy
	if err := c.AllocationPolicy().Validate(); err != nil {
		return &ConfigError{Field: "policy", Message: err.Error()}
	}

	// Validate validation configuration
	if c.Validation.MaxLunchMinutes < 0 {
		return &ConfigError{Field: "validation.max_lunch_minutes", Message: "max lunch minutes cannot be negative"}
	}

	// Validate display configuration
	if !contains(SupportedFormats, c.Display.Format) {
		return &ConfigError{Field: "display.format", Message: "format must be one of " + strings.Join(SupportedFormats, ", ")}
	}

	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	for _, origin := range c.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return &ConfigError{Field: "server.allowed_origins", Message: "origin must be * or start with http:// or https://: " + origin}
		}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	// Validate logging configuration
	if !contains(logLevels, c.Logging.Level) {
		return &ConfigError{Field: "logging.level", Message: "level must be one of " + strings.Join(logLevels, ", ")}
	}
	if !contains(logFormats, c.Logging.Format) {
		return &ConfigError{Field: "logging.format", Message: "format must be one of " + strings.Join(logFormats, ", ")}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
