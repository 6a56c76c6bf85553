package backend

import (
	"fmt"
	"os"
	"path/filepath"
)

// OpenFileInput opens path for reading lines.
func OpenFileInput(path string, opts ...ReaderOption) (*ReaderInput, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file input needs a path", ErrInvalidLocator)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return NewReaderInput(f, opts...), nil
}

// CreateFileOutput creates or truncates path for writing lines. Missing
// parent directories are created.
func CreateFileOutput(path string) (*WriterOutput, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file output needs a path", ErrInvalidLocator)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return NewWriterOutput(f), nil
}
