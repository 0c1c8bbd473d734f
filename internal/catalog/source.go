package catalog

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads catalog text from a file on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a catalog source backed by the file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Catalog returns the file contents. The file is re-read on every call so that a
// regenerated catalog is picked up without a restart.
func (s *FileSource) Catalog(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("catalog: failed to read %s: %w", s.Path, err)
	}
	return string(data), nil
}
