package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "08:00", cfg.Defaults.StartTime)
	assert.Equal(t, "09:30", cfg.Defaults.ArrivalTime)
	assert.Equal(t, "14:30", cfg.Defaults.ReturnStartTime)
	assert.Equal(t, "16:00", cfg.Defaults.ReturnArrivalTime)
	assert.Equal(t, 30, cfg.Defaults.LunchMinutes)
	assert.Equal(t, 0, cfg.Defaults.ExtraWorkMinutes)
	assert.True(t, cfg.Defaults.RoundToQuarter)

	assert.Equal(t, 1.0, cfg.Policy.OrdinaryCommuteHours)
	assert.Equal(t, 1.0, cfg.Policy.KRTTravelAllowanceHours)
	assert.Equal(t, 0.25, cfg.Policy.RoundingIncrement)

	assert.Equal(t, "table", cfg.Display.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.GetTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, cfg.Validate())
}

func TestConfig_DefaultsForm(t *testing.T) {
	cfg := NewConfig()
	cfg.Defaults.LunchMinutes = 45
	cfg.Defaults.RoundToQuarter = false

	form := cfg.DefaultsForm()

	assert.Equal(t, "08:00", form.StartTime)
	assert.Equal(t, "16:00", form.ReturnArrivalTime)
	require.NotNil(t, form.LunchMinutes)
	assert.Equal(t, 45, *form.LunchMinutes)
	require.NotNil(t, form.ExtraWorkMinutes)
	assert.Equal(t, 0, *form.ExtraWorkMinutes)
	require.NotNil(t, form.RoundToQuarter)
	assert.False(t, *form.RoundToQuarter)
}

func TestConfig_AllocationPolicy(t *testing.T) {
	cfg := NewConfig()
	cfg.Policy.RoundingIncrement = 0.5

	policy := cfg.AllocationPolicy()
	assert.Equal(t, 1.0, policy.OrdinaryCommuteHours)
	assert.Equal(t, 0.5, policy.RoundingIncrement)
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TC_DEFAULT_START_TIME", "07:15")
	t.Setenv("TC_DEFAULT_LUNCH_MINUTES", "45")
	t.Setenv("TC_DEFAULT_ROUND_TO_QUARTER", "false")
	t.Setenv("TC_POLICY_ROUNDING_INCREMENT", "0.5")
	t.Setenv("TC_VALIDATION_STRICT", "true")
	t.Setenv("TC_DISPLAY_FORMAT", "JSON")
	t.Setenv("TC_SERVER_PORT", "9090")
	t.Setenv("TC_SERVER_ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("TC_APP_TIMEOUT", "5s")
	t.Setenv("TC_LOG_LEVEL", "DEBUG")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "07:15", cfg.Defaults.StartTime)
	assert.Equal(t, 45, cfg.Defaults.LunchMinutes)
	assert.False(t, cfg.Defaults.RoundToQuarter)
	assert.Equal(t, 0.5, cfg.Policy.RoundingIncrement)
	assert.True(t, cfg.Validation.Strict)
	assert.Equal(t, "json", cfg.Display.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_LoadFromEnvironment_IgnoresUnparsable(t *testing.T) {
	t.Setenv("TC_DEFAULT_LUNCH_MINUTES", "half an hour")
	t.Setenv("TC_APP_TIMEOUT", "soon")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 30, cfg.Defaults.LunchMinutes)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{"Bad default clock", func(c *Config) { c.Defaults.ArrivalTime = "9.30" }, "defaults.arrival_time"},
		{"Negative default lunch", func(c *Config) { c.Defaults.LunchMinutes = -1 }, "defaults.lunch_minutes"},
		{"Negative default extra", func(c *Config) { c.Defaults.ExtraWorkMinutes = -1 }, "defaults.extra_work_minutes"},
		{"Zero rounding increment", func(c *Config) { c.Policy.RoundingIncrement = 0 }, "policy"},
		{"Negative max lunch", func(c *Config) { c.Validation.MaxLunchMinutes = -5 }, "validation.max_lunch_minutes"},
		{"Unknown format", func(c *Config) { c.Display.Format = "xml" }, "display.format"},
		{"Port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"Origin without scheme", func(c *Config) { c.Server.AllowedOrigins = []string{"localhost:3000"} }, "server.allowed_origins"},
		{"Zero timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"Unknown log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"Unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestLoader_LoadFromFile(t *testing.T) {
	t.Setenv("TC_TEST_PORT", "9191")

	path := filepath.Join(t.TempDir(), "travelcalc.yaml")
	content := `
defaults:
  start_time: "07:00"
  lunch_minutes: 20
policy:
  rounding_increment: 0.5
server:
  port: ${TC_TEST_PORT}
  allowed_origins:
    - http://localhost:3000
application:
  timeout: 45s
logging:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().WithFile(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "07:00", cfg.Defaults.StartTime)
	assert.Equal(t, "09:30", cfg.Defaults.ArrivalTime, "keys missing from the file keep their defaults")
	assert.Equal(t, 20, cfg.Defaults.LunchMinutes)
	assert.Equal(t, 0.5, cfg.Policy.RoundingIncrement)
	assert.Equal(t, 1.0, cfg.Policy.OrdinaryCommuteHours)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travelcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  format: csv\n"), 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("TC_DISPLAY_FORMAT", "yaml")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Display.Format)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().WithFile(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "config", configErr.Field)
}

func TestLoader_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [port"), 0o600))

	_, err := NewLoader().WithFile(path).Load()
	require.Error(t, err)

	var configErr *ConfigError
	assert.True(t, errors.As(err, &configErr))
}

func TestLoader_InvalidFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o600))

	_, err := NewLoader().WithFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	format := "CSV"
	port := 7000
	timeout := 2 * time.Second
	verbose := true
	strict := true
	level := "warn"

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Format:         &format,
		Port:           &port,
		AllowedOrigins: []string{"http://example.test"},
		Timeout:        &timeout,
		Verbose:        &verbose,
		Strict:         &strict,
		LogLevel:       &level,
	})
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Display.Format)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, []string{"http://example.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, cfg.Validation.Strict)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoader_LoadWithOverrides_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travelcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  lunch_minutes: 15\n"), 0o600))

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{ConfigFile: &path})
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Defaults.LunchMinutes)
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	format := "xml"

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{Format: &format})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.format")
}

func TestConfig_MarshalYAMLBytes(t *testing.T) {
	data, err := NewConfig().MarshalYAMLBytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "start_time:")
	assert.Contains(t, string(data), "08:00")
	assert.Contains(t, string(data), "rounding_increment: 0.25")
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 12, ParseIntWithFallback("12", 1))
	assert.Equal(t, 1, ParseIntWithFallback("twelve", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("maybe", false))
	assert.Equal(t, 0.75, ParseFloatWithFallback("0.75", 1))
	assert.Equal(t, 1.0, ParseFloatWithFallback("most", 1))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b "))
	assert.Nil(t, SplitList(" , "))
}
