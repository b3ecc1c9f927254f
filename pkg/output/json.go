package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/templa/pkg/models"
)

// JSONFormatter collects entries and prints a single JSON report at the end
type JSONFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	entries   []JSONEntryData
	errors    []JSONErrorData
}

// JSONEntryData represents one processed entry
type JSONEntryData struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Kind        string `json:"kind"`
	Action      string `json:"action"`
	Encoding    string `json:"encoding,omitempty"`
	BOM         bool   `json:"bom,omitempty"`
	Newline     string `json:"newline,omitempty"`
	Bytes       int64  `json:"bytes,omitempty"`
}

// JSONReportData represents the final report
type JSONReportData struct {
	OperationID string          `json:"operation_id"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Result      string          `json:"result"`
	ExitCode    int             `json:"exit_code"`
	Duration    string          `json:"duration"`
	DurationMs  int64           `json:"duration_ms"`
	Stats       JSONStatsData   `json:"stats"`
	Entries     []JSONEntryData `json:"entries"`
	Errors      []JSONErrorData `json:"errors,omitempty"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	FilesCopied  int32 `json:"files_copied"`
	TextFiles    int32 `json:"text_files"`
	BinaryFiles  int32 `json:"binary_files"`
	DirsCopied   int32 `json:"dirs_copied"`
	DirsCreated  int32 `json:"dirs_created"`
	Ignored      int32 `json:"ignored"`
	BytesRead    int64 `json:"bytes_read"`
	BytesWritten int64 `json:"bytes_written"`
}

// JSONErrorData represents an error entry
type JSONErrorData struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(errWriter io.Writer) *JSONFormatter {
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return &JSONFormatter{
		errWriter: errWriter,
		entries:   make([]JSONEntryData, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalEntries int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.entries = f.entries[:0]
	f.errors = nil
	return nil
}

// Entry records an entry for the final report
func (f *JSONFormatter) Entry(entry models.CopyEntry) error {
	f.entries = append(f.entries, JSONEntryData{
		Source:      entry.SourcePath,
		Destination: entry.DestPath,
		Kind:        string(entry.Kind),
		Action:      string(entry.Action),
		Encoding:    entry.Encoding,
		BOM:         entry.BOM,
		Newline:     entry.Newline,
		Bytes:       entry.Bytes,
	})
	return nil
}

// Complete prints the report as indented JSON
func (f *JSONFormatter) Complete(report *models.CopyReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	data := JSONReportData{
		OperationID: report.OperationID,
		Source:      report.SourcePath,
		Destination: report.DestPath,
		Result:      report.Result.String(),
		ExitCode:    report.Result.ExitCode(),
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			FilesCopied:  report.Stats.FilesCopied.Load(),
			TextFiles:    report.Stats.TextFiles.Load(),
			BinaryFiles:  report.Stats.BinaryFiles.Load(),
			DirsCopied:   report.Stats.DirsCopied.Load(),
			DirsCreated:  report.Stats.DirsCreated.Load(),
			Ignored:      report.Stats.Ignored.Load(),
			BytesRead:    report.Stats.BytesRead.Load(),
			BytesWritten: report.Stats.BytesWritten.Load(),
		},
		Entries: f.entries,
		Errors:  f.errors,
	}
	if report.Error != nil && len(f.errors) == 0 {
		data.Errors = []JSONErrorData{{Path: models.PathOf(report.Error), Error: report.Error.Error()}}
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Error records the error and echoes it to the error stream
func (f *JSONFormatter) Error(err error) error {
	f.errors = append(f.errors, JSONErrorData{Path: models.PathOf(err), Error: err.Error()})
	_, werr := io.WriteString(f.errWriter, FormatError(err)+"\n")
	return werr
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
