package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

// FileStorage keeps uploaded spreadsheets between preview and confirmation.
type FileStorage interface {
	// Save writes content under path and returns the cleaned key.
	Save(ctx context.Context, content io.Reader, path string) (string, error)

	// Open returns a reader for a stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// List returns the files under dir with their modification time.
	List(ctx context.Context, dir string) ([]Object, error)
}

type Object struct {
	Path       string
	ModifiedAt time.Time
}
