package models

import (
	"gitlab.com/tozd/go/errors"
)

// Result is the outcome class of a run, numbered like the process exit code
type Result int

const (
	ResultOK Result = iota
	ResultSyntaxError
	ResultReadError
	ResultWriteError
	ResultLogicalError
	ResultCanceled
)

// String returns a short name for reports
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultSyntaxError:
		return "syntax error"
	case ResultReadError:
		return "read error"
	case ResultWriteError:
		return "write error"
	case ResultLogicalError:
		return "logical error"
	case ResultCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit code for the result
func (r Result) ExitCode() int {
	return int(r)
}

// ErrCanceled is the cause recorded when the cancellation check fires
var ErrCanceled = errors.Base("operation canceled")

// CopyError is a terminal error tied to the offending path
type CopyError struct {
	Result Result
	Path   string
	Err    error
}

func (e *CopyError) Error() string {
	if e.Err == nil {
		return e.Result.String() + ": " + e.Path
	}
	return e.Err.Error()
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// NewCopyError wraps err with a result class and path, recording a stack
func NewCopyError(result Result, path string, err error) error {
	return errors.WithStack(&CopyError{Result: result, Path: path, Err: err})
}

// ResultOf extracts the result class from err. Errors that carry none are
// reported as read errors, unknown failures being treated as input problems.
func ResultOf(err error) Result {
	if err == nil {
		return ResultOK
	}
	var ce *CopyError
	if errors.As(err, &ce) {
		return ce.Result
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ResultSyntaxError
	}
	if errors.Is(err, ErrCanceled) {
		return ResultCanceled
	}
	return ResultReadError
}

// PathOf returns the path recorded on a CopyError, if any
func PathOf(err error) string {
	var ce *CopyError
	if errors.As(err, &ce) {
		return ce.Path
	}
	return ""
}
