package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kbukum/ergolog/errors"
	"github.com/kbukum/ergolog/validation"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvDefaultLogger = "ERGOLOG_DEFAULT_LOGGER"
	EnvNoColors      = "ERGOLOG_NO_COLORS"
	EnvNoTime        = "ERGOLOG_NO_TIME"
	EnvLevel         = "ERGOLOG_LEVEL"
	EnvOutput        = "ERGOLOG_OUTPUT"
)

const (
	DefaultRoot       = "ergo"
	DefaultTimeFormat = "2006-01-02 15:04:05,000"
)

// Config contains logging configuration.
type Config struct {
	Root        string `yaml:"root" mapstructure:"root" validate:"required,loggername"`
	Level       string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warning warn error critical"`
	Output      string `yaml:"output" mapstructure:"output" validate:"oneof=stdout stderr"`
	NoColors    bool   `yaml:"no_colors" mapstructure:"no_colors"`
	ForceColors bool   `yaml:"force_colors" mapstructure:"force_colors"`
	NoTime      bool   `yaml:"no_time" mapstructure:"no_time"`
	TimeFormat  string `yaml:"time_format" mapstructure:"time_format"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Level == "" {
		c.Level = "debug"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
	c.Level = strings.ToLower(c.Level)
	c.Output = strings.ToLower(c.Output)
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.NoColors && c.ForceColors {
		return errors.InvalidConfig("force_colors", c.ForceColors, "cannot be combined with no_colors")
	}
	return nil
}

// ConfigFromEnv builds a configuration from ERGOLOG_* environment variables.
// Any non-empty value of ERGOLOG_NO_COLORS or ERGOLOG_NO_TIME enables the flag.
func ConfigFromEnv() Config {
	cfg := Config{
		Root:     os.Getenv(EnvDefaultLogger),
		Level:    getEnvOrDefault(EnvLevel, "debug"),
		Output:   getEnvOrDefault(EnvOutput, "stdout"),
		NoColors: os.Getenv(EnvNoColors) != "",
		NoTime:   os.Getenv(EnvNoTime) != "",
	}
	cfg.ApplyDefaults()
	return cfg
}

// ParseLevel maps a level name to the zerolog level used for emission.
// Critical records are carried at zerolog's fatal level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warning", "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "critical", "crit", "fatal":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown level %q", level)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
