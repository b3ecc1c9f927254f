package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/templa/pkg/models"
	"gitlab.com/tozd/go/errors"
)

// Formatter defines the interface for output formatting
// Implementations include human-readable, JSON and progress-bar formatters
type Formatter interface {
	// Start initializes the formatter for a new copy operation.
	// totalEntries is zero when no pre-count was made.
	Start(writer io.Writer, totalEntries int) error

	// Entry reports one processed or skipped entry, in traversal order
	Entry(entry models.CopyEntry) error

	// Complete finalizes output once the operation ends
	Complete(report *models.CopyReport) error

	// Error reports a terminal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// FormatEntry renders the one-line description of an entry
func FormatEntry(entry models.CopyEntry) string {
	switch {
	case entry.Action == models.ActionIgnore:
		return fmt.Sprintf("%s [ignored]", entry.SourcePath)
	case entry.Kind == models.KindDir:
		return fmt.Sprintf("%s --> %s [DIR]", entry.SourcePath, entry.DestPath)
	default:
		return fmt.Sprintf("%s --> %s [%s]", entry.SourcePath, entry.DestPath, entry.Encoding)
	}
}

// FormatError renders an error line for the error stream
func FormatError(err error) string {
	return "ERROR: " + err.Error()
}

// New returns the formatter registered under name
func New(name string, errWriter io.Writer, quiet bool) (Formatter, error) {
	switch name {
	case "", "human":
		return NewHumanFormatter(errWriter, quiet), nil
	case "json":
		return NewJSONFormatter(errWriter), nil
	default:
		return nil, errors.Errorf("unsupported output format: %s (use: human, json)", name)
	}
}
