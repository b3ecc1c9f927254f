package models

import (
	"sync/atomic"
	"time"
)

// CopyReport represents the results of a copy operation
type CopyReport struct {
	OperationID string
	SourcePath  string
	DestPath    string

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Stats Statistics

	// Entries processed in traversal order
	Entries []CopyEntry

	// Error is the terminal error, nil on success
	Error  error
	Result Result
}

// Statistics holds copy operation metrics
type Statistics struct {
	FilesCopied  atomic.Int32
	DirsCopied   atomic.Int32
	DirsCreated  atomic.Int32
	Ignored      atomic.Int32
	BinaryFiles  atomic.Int32
	TextFiles    atomic.Int32
	BytesRead    atomic.Int64
	BytesWritten atomic.Int64
}

// Record appends an entry and updates the counters
func (r *CopyReport) Record(entry CopyEntry) {
	r.Entries = append(r.Entries, entry)
	switch {
	case entry.Action == ActionIgnore:
		r.Stats.Ignored.Add(1)
	case entry.Kind == KindDir:
		r.Stats.DirsCopied.Add(1)
	default:
		r.Stats.FilesCopied.Add(1)
		r.Stats.BytesWritten.Add(entry.Bytes)
		if entry.Encoding == "binary" {
			r.Stats.BinaryFiles.Add(1)
		} else {
			r.Stats.TextFiles.Add(1)
		}
	}
}

// Finish stamps the end time and result
func (r *CopyReport) Finish(err error) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Error = err
	r.Result = ResultOf(err)
}
