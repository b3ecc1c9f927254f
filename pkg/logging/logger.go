// Package logging carries templa's diagnostic log, kept apart from the entry
// lines printed by the output formatters.
package logging

import (
	"context"
	"strings"
)

// Level is the minimum severity a logger emits
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// Fields are key/value pairs attached to a log event
type Fields map[string]interface{}

// Logger is implemented by ZeroLogger and NullLogger. The context is passed
// through for implementations that read request-scoped values.
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warn(ctx context.Context, msg string, fields Fields)
	// Error logs msg with err attached under the "error" key
	Error(ctx context.Context, msg string, err error, fields Fields)

	// WithFields returns a child logger that adds fields to every event
	WithFields(fields Fields) Logger

	// Close releases the log file, if the logger owns one
	Close() error
}

// ParseLevel maps a configuration value to a Level. Matching ignores case;
// "warning" is accepted for warn and anything unknown means info.
func ParseLevel(s string) Level {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return WarnLevel
	}
	for level, n := range levelNames {
		if n == name {
			return level
		}
	}
	return InfoLevel
}

// String returns the upper-case level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// LevelString returns the upper-case name of a level
func LevelString(level Level) string {
	return level.String()
}
