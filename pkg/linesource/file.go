package linesource

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// File is a line source over a local file, decompressing gzip transparently.
type File struct {
	*Reader
	f  *os.File
	gz *gzip.Reader
}

// Open opens path for line-at-a-time reading. Files with a .gz extension
// are decompressed on the fly.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return &File{Reader: NewReader(f), f: f}, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
	}
	return &File{Reader: NewReader(gz), f: f, gz: gz}, nil
}

// Close releases the underlying file and, if present, the gzip stream.
func (f *File) Close() error {
	if f.gz != nil {
		if err := f.gz.Close(); err != nil {
			f.f.Close()
			return err
		}
	}
	return f.f.Close()
}
