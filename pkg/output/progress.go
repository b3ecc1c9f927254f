package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/templa/pkg/models"
	"golang.org/x/term"
)

const progressTemplate = `{{counters . }} {{bar . }} {{percent . }} {{string . "entry"}}`

// ProgressFormatter draws a progress bar on a terminal while delegating the
// entry lines to another formatter
type ProgressFormatter struct {
	inner    Formatter
	barOut   io.Writer
	bar      *pb.ProgressBar
	forceBar bool
}

// NewProgressFormatter wraps inner, drawing the bar on barOut (stderr when nil)
func NewProgressFormatter(inner Formatter, barOut io.Writer) *ProgressFormatter {
	if barOut == nil {
		barOut = os.Stderr
	}
	return &ProgressFormatter{inner: inner, barOut: barOut}
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// Start initializes the inner formatter and, on a terminal, the bar
func (f *ProgressFormatter) Start(writer io.Writer, totalEntries int) error {
	if err := f.inner.Start(writer, totalEntries); err != nil {
		return err
	}
	if !f.forceBar && !isTerminal(f.barOut) {
		return nil
	}

	f.bar = pb.ProgressBarTemplate(progressTemplate).New(totalEntries)
	f.bar.SetWriter(f.barOut)
	f.bar.Start()
	return nil
}

// Entry forwards the entry and advances the bar
func (f *ProgressFormatter) Entry(entry models.CopyEntry) error {
	if err := f.inner.Entry(entry); err != nil {
		return err
	}
	if f.bar != nil {
		f.bar.Set("entry", entry.SourcePath)
		f.bar.Increment()
	}
	return nil
}

// Complete stops the bar and finalizes the inner formatter
func (f *ProgressFormatter) Complete(report *models.CopyReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.inner.Complete(report)
}

// Error forwards the error
func (f *ProgressFormatter) Error(err error) error {
	return f.inner.Error(err)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
