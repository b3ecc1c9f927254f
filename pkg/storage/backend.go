package storage

import (
	"context"
)

// DirEntry is one name in a directory listing
type DirEntry struct {
	Name  string
	IsDir bool
}

// FileInfo represents metadata about a path
type FileInfo struct {
	Path  string
	Size  int64
	IsDir bool
}

// Backend defines the file system primitives the copy engine drives.
// Paths are full paths on the backend, not relative to a root.
type Backend interface {
	// ReadDir lists one directory level, including every entry
	ReadDir(ctx context.Context, path string) ([]DirEntry, error)

	// ReadFile returns the whole content of a file
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile creates or overwrites a file with data
	WriteFile(ctx context.Context, path string, data []byte) error

	// Mkdir creates a single directory. created is false when a directory
	// already existed at path, which is not an error.
	Mkdir(ctx context.Context, path string) (created bool, err error)

	// Stat returns metadata for path
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Canonical returns an absolute, symlink-resolved form of path used to
	// compare source and destination locations
	Canonical(path string) (string, error)

	// Close releases any resources held by the backend
	Close() error
}
