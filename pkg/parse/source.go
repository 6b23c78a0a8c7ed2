package parse

import (
	"io"
	"strings"
)

// LineSource yields raw input lines one at a time. Implementations return
// io.EOF when the source is exhausted. Any other error is a source failure
// and terminates the consuming stream regardless of its error-recovery mode.
type LineSource interface {
	NextLine() (string, error)
}

// sliceSource serves lines from an in-memory slice.
type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) NextLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Lines returns a LineSource over an in-memory slice of lines.
func Lines(lines []string) LineSource {
	return &sliceSource{lines: lines}
}

// SplitString returns a LineSource over a multi-line string. Both LF and
// CRLF line endings are accepted; a trailing newline does not produce a
// final empty line.
func SplitString(s string) LineSource {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return &sliceSource{}
	}
	return &sliceSource{lines: strings.Split(s, "\n")}
}
