package logging

import "context"

// NullLogger drops every event; the CLI uses it when no log file is set
type NullLogger struct{}

// NewNullLogger returns a logger that discards everything
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Debug(context.Context, string, Fields)        {}
func (*NullLogger) Info(context.Context, string, Fields)         {}
func (*NullLogger) Warn(context.Context, string, Fields)         {}
func (*NullLogger) Error(context.Context, string, error, Fields) {}

// WithFields returns the same logger; there is nothing to attach fields to
func (l *NullLogger) WithFields(Fields) Logger {
	return l
}

func (*NullLogger) Close() error {
	return nil
}
