package export

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Create opens path for writing. An empty path writes to stdout, and a path
// ending in ".gz" is gzip compressed. Close flushes and closes everything.
func Create(path string) (io.WriteCloser, error) {
	return CreateOr(path, os.Stdout)
}

// CreateOr is Create with the writer used for an empty path
func CreateOr(path string, fallback io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{fallback}, nil
	}

	f, err := os.Create(path) //nolint:gosec // G304: output path is chosen by the user
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	return &gzipFile{Writer: gzip.NewWriter(f), file: f}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type gzipFile struct {
	*gzip.Writer
	file *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		_ = g.file.Close()
		return err
	}
	return g.file.Close()
}
