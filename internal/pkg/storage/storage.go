package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo describes one stored file.
type FileInfo struct {
	Name       string
	Size       int64
	ModifiedAt time.Time
}

type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// List enumerates stored files, newest first
	List(ctx context.Context) ([]FileInfo, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
