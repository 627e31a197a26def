package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedOutput = errors.New("unsupported log output")
	ErrUnsupportedFormat = errors.New("unsupported log format")
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenOutput resolves a log output specification:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout
//   - "file:///path/to/file" - appends to file (creates directories if needed)
//   - "/path/to/file" - appends to file (creates directories if needed)
//
// Standard streams are never closed by the returned Close.
func OpenOutput(output string) (io.WriteCloser, error) {
	switch {
	case output == "" || output == "stderr":
		return nopCloser{os.Stderr}, nil
	case output == "stdout":
		return nopCloser{os.Stdout}, nil
	case strings.HasPrefix(output, "file://"):
		return openFile(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return openFile(output)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\") || filepath.Ext(path) == ".log"
}

func openFile(filePath string) (io.WriteCloser, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}
