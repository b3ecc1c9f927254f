package output

import (
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/templa/pkg/models"
)

// HumanFormatter prints one line per entry and ERROR lines for failures
type HumanFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	quiet     bool
}

// NewHumanFormatter creates a formatter printing errors to errWriter
// (stderr when nil). quiet suppresses the per-entry lines.
func NewHumanFormatter(errWriter io.Writer, quiet bool) *HumanFormatter {
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return &HumanFormatter{errWriter: errWriter, quiet: quiet}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalEntries int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Entry prints the entry line
func (f *HumanFormatter) Entry(entry models.CopyEntry) error {
	if f.quiet || f.writer == nil {
		return nil
	}
	_, err := fmt.Fprintln(f.writer, FormatEntry(entry))
	return err
}

// Complete has nothing to add; every entry was printed as it happened
func (f *HumanFormatter) Complete(report *models.CopyReport) error {
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	_, werr := fmt.Fprintln(f.errWriter, FormatError(err))
	return werr
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
