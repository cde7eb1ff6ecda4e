package fasta

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the path that Open maps to standard input.
const Stdin = "-"

// Open returns a reader for path. "-" reads standard input and a ".gz" suffix
// is decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	return &gzipFile{Reader: gr, file: fh}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// CountFile opens path and runs Count over it.
func CountFile(path string) (Counts, error) {
	rc, err := Open(path)
	if err != nil {
		return Counts{}, err
	}
	defer rc.Close()
	return Count(rc)
}
