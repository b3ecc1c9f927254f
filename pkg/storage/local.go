package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// Local is a filesystem-based storage backend
type Local struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// NewLocal creates a new local filesystem backend
func NewLocal() *Local {
	return &Local{dirPerm: 0755, filePerm: 0644}
}

// ReadDir lists the entries of one directory in the order the OS returns them
func (l *Local) ReadDir(ctx context.Context, path string) ([]DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	// File.ReadDir keeps native enumeration order; os.ReadDir would sort
	dirents, err := dir.ReadDir(-1)
	if err != nil {
		return nil, errors.Errorf("failed to list directory: %w", err)
	}

	entries := make([]DirEntry, 0, len(dirents))
	for _, d := range dirents {
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			// follow links so a linked directory is walked like a real one
			if info, err := os.Stat(filepath.Join(path, d.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, DirEntry{Name: d.Name(), IsDir: isDir})
	}
	return entries, nil
}

// ReadFile reads a whole file into memory
func (l *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile creates or overwrites a file
func (l *Local) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, l.filePerm)
	if err != nil {
		return errors.Errorf("failed to create file: %w", err)
	}

	written, err := file.Write(data)
	if err != nil {
		file.Close()
		return errors.Errorf("failed to write file: %w", err)
	}
	if written != len(data) {
		file.Close()
		return errors.Errorf("incomplete write: expected %d bytes, wrote %d", len(data), written)
	}

	if err := file.Close(); err != nil {
		return errors.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Mkdir creates a directory unless one is already present
func (l *Local) Mkdir(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, errors.Errorf("path exists and is not a directory: %s", path)
	}

	if err := os.Mkdir(path, l.dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return false, nil
			}
		}
		return false, errors.Errorf("failed to create directory: %w", err)
	}
	return true, nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("failed to stat file: %w", err)
	}

	return &FileInfo{
		Path:  path,
		Size:  info.Size(),
		IsDir: info.IsDir(),
	}, nil
}

// Canonical resolves path to an absolute path with symlinks evaluated.
// A path that does not exist yet is only made absolute.
func (l *Local) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("failed to resolve path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", errors.Errorf("failed to resolve symlinks: %w", err)
	}
	return resolved, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
