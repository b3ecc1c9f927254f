package models

// EntryKind distinguishes files from directories in a copy plan
type EntryKind string

const (
	// KindFile is a regular file
	KindFile EntryKind = "file"
	// KindDir is a directory
	KindDir EntryKind = "dir"
)

// Action is what happened to an entry
type Action string

const (
	// ActionCopy means the entry was written to the destination
	ActionCopy Action = "copy"
	// ActionIgnore means the entry matched the exclusion list
	ActionIgnore Action = "ignore"
)

// CopyEntry is one row of the copy plan: a source entry, where it goes and
// what was made of it. Entries are built during traversal and never stored.
type CopyEntry struct {
	SourcePath string
	DestPath   string
	Kind       EntryKind
	Action     Action

	// Encoding is the charset label for files, empty for directories
	Encoding string
	BOM      bool
	Newline  string
	Bytes    int64
}
