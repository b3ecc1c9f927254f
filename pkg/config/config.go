package config

import (
	"github.com/sdejongh/templa/pkg/models"
	"github.com/sdejongh/templa/pkg/replace"
)

// Config represents the application configuration
type Config struct {
	Ignore  []string          `yaml:"ignore"`
	Replace map[string]string `yaml:"replace"`
	Output  OutputConfig      `yaml:"output"`
	Logging LoggingConfig     `yaml:"logging"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar on stderr
	Quiet    bool   `yaml:"quiet"`    // Suppress per-entry lines
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = logging disabled)
}

// Default returns the default configuration
func Default() *Config {
	ignore := make([]string, len(models.DefaultIgnore))
	copy(ignore, models.DefaultIgnore)

	return &Config{
		Ignore:  ignore,
		Replace: map[string]string{},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// ReplaceMap returns the configured substitutions in application order
func (c *Config) ReplaceMap() *replace.Map {
	return replace.New(c.Replace)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	for from := range c.Replace {
		if from == "" {
			return &models.ValidationError{
				Field:   "replace",
				Message: "keys must not be empty",
			}
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
