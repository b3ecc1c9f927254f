package models

import (
	"time"

	"github.com/sdejongh/templa/pkg/replace"
)

// DefaultIgnore is the exclusion list used when none is configured
var DefaultIgnore = []string{"q", "*.bin", ".git", ".svg", ".vs"}

// CancelFunc returns true once the caller wants the copy to stop
type CancelFunc func() bool

// CopyOperation describes one source being instantiated into a destination
type CopyOperation struct {
	ID          string
	SourcePath  string
	DestPath    string
	Replace     *replace.Map
	Ignore      []string
	Canceled    CancelFunc // optional, nil never cancels
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Validate checks if the operation configuration is valid
func (op *CopyOperation) Validate() error {
	if op.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if op.DestPath == "" {
		return &ValidationError{Field: "DestPath", Message: "destination path is required"}
	}
	for _, p := range op.Replace.Pairs() {
		if p.From == "" {
			return &ValidationError{Field: "Replace", Message: "replacement source string is empty"}
		}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
