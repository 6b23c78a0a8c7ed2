// Package linesource provides parse.LineSource implementations over readers
// and files: buffered reading with a line-length cap, transparent gzip
// decompression, and a follow-mode source for growing files.
package linesource

import (
	"bufio"
	"io"
)

// DefaultMaxLineLength caps how long a single input line may be.
const DefaultMaxLineLength = 1 * 1024 * 1024 // 1MB

// Reader yields lines from an io.Reader, without their terminators.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader returns a Reader with the default line-length cap.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, DefaultMaxLineLength)
}

// NewReaderSize returns a Reader allowing lines up to maxLine bytes.
func NewReaderSize(r io.Reader, maxLine int) *Reader {
	sc := bufio.NewScanner(r)
	// Scanner takes the larger of max and cap(buf), so the initial buffer
	// must not exceed the cap.
	initial := 64 * 1024
	if maxLine < initial {
		initial = maxLine
	}
	sc.Buffer(make([]byte, 0, initial), maxLine)
	return &Reader{sc: sc}
}

// NextLine implements parse.LineSource.
func (r *Reader) NextLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
