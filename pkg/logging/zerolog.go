package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config holds configuration for a zerolog-backed logger
type Config struct {
	// Path is the log file path; empty writes to Writer
	Path string
	// Writer is used when Path is empty, defaulting to stderr
	Writer io.Writer
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
}

// ZeroLogger implements Logger on top of zerolog
type ZeroLogger struct {
	zlog  zerolog.Logger
	file  *os.File
	owner bool
}

// New creates a logger writing to the configured file or writer
func New(config Config) (*ZeroLogger, error) {
	var out io.Writer = config.Writer
	var file *os.File

	if config.Path != "" {
		dir := filepath.Dir(config.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Errorf("failed to open log file: %w", err)
		}
		file = f
		out = f
	}
	if out == nil {
		out = os.Stderr
	}

	if config.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		}
	}

	zlog := zerolog.New(out).With().Timestamp().Logger().Level(toZerolog(config.Level))
	return &ZeroLogger{zlog: zlog, file: file, owner: true}, nil
}

// Debug logs a debug message
func (l *ZeroLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.zlog.Debug().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Info logs an info message
func (l *ZeroLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.zlog.Info().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Warn logs a warning message
func (l *ZeroLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.zlog.Warn().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Error logs an error message
func (l *ZeroLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.zlog.Error().Err(err).Fields(map[string]interface{}(fields)).Msg(msg)
}

// WithFields returns a logger sharing the output with additional fields
func (l *ZeroLogger) WithFields(fields Fields) Logger {
	return &ZeroLogger{
		zlog: l.zlog.With().Fields(map[string]interface{}(fields)).Logger(),
		file: l.file,
	}
}

// Close closes the log file if this logger opened it
func (l *ZeroLogger) Close() error {
	if l.owner && l.file != nil {
		return l.file.Close()
	}
	return nil
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Since formats an elapsed duration for log fields
func Since(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
