package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigFileEnv names the environment variable holding the config file path
const ConfigFileEnv = "TC_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithFile sets an explicit configuration file, taking precedence over TC_CONFIG
func (l *Loader) WithFile(path string) *Loader {
	l.path = path
	return l
}

// Load builds the configuration in layers: defaults, then the YAML file
// (explicit path or TC_CONFIG), then TC_* environment variables.
func (l *Loader) Load() (*Config, error) {
	if path := l.configPath(); path != "" {
		if err := l.config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

func (l *Loader) configPath() string {
	if l.path != "" {
		return l.path
	}
	return os.Getenv(ConfigFileEnv)
}

// LoadWithOverrides runs Load and then applies the flags the user set on
// the command line, which win over every other source.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if overrides == nil {
		return l.Load()
	}
	if overrides.ConfigFile != nil && *overrides.ConfigFile != "" {
		l.path = *overrides.ConfigFile
	}

	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}

	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigOverrides carries command line flags. A nil field means the flag
// was not given.
type ConfigOverrides struct {
	ConfigFile *string

	Strict         *bool
	Format         *string
	Port           *int
	AllowedOrigins []string
	Timeout        *time.Duration
	Verbose        *bool
	LogLevel       *string
	LogFormat      *string
}

func (o *ConfigOverrides) apply(cfg *Config) {
	if o.Strict != nil {
		cfg.Validation.Strict = *o.Strict
	}
	if o.Format != nil {
		cfg.Display.Format = strings.ToLower(*o.Format)
	}
	if o.Port != nil {
		cfg.Server.Port = *o.Port
	}
	if len(o.AllowedOrigins) > 0 {
		cfg.Server.AllowedOrigins = o.AllowedOrigins
	}
	if o.Timeout != nil {
		cfg.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		cfg.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = strings.ToLower(*o.LogLevel)
	}
	if o.LogFormat != nil {
		cfg.Logging.Format = strings.ToLower(*o.LogFormat)
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseFloatWithFallback parses a float string with a fallback value
func ParseFloatWithFallback(s string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return fallback
}

// SplitList splits a comma separated list, dropping blank entries
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
