package syslog

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/treeline-io/sluice/pkg/parse"
)

func init() {
	parse.Register("syslog", func(src parse.LineSource, opts parse.Options) parse.Stream {
		return New(src, opts)
	})
}

// Stream is a pull-based record stream over syslog lines, used like a
// bufio.Scanner:
//
//	s := syslog.New(src, parse.Options{})
//	for s.Next() {
//		res := s.Result()
//		// ...
//	}
//	if err := s.Err(); err != nil {
//		// ...
//	}
//
// Each line is processed independently; the stream performs no work ahead of
// the consumer and holds no state beyond the current result.
type Stream struct {
	src  parse.LineSource
	opts parse.Options
	tok  Tokenizer
	norm *Normalizer

	cur  Result
	err  error
	done bool
}

// New returns a stream over src using the default tokenizer and the local
// system clock for naive timestamps.
func New(src parse.LineSource, opts parse.Options) *Stream {
	return &Stream{
		src:  src,
		opts: opts,
		tok:  NewTokenizer(),
		norm: NewNormalizer(nil),
	}
}

// WithLocation sets the zone used for naive epoch computation and returns s.
func (s *Stream) WithLocation(loc *time.Location) *Stream {
	s.norm = NewNormalizer(loc)
	return s
}

// WithTokenizer substitutes the line tokenizer and returns s.
func (s *Stream) WithTokenizer(t Tokenizer) *Stream {
	s.tok = t
	return s
}

// Next advances to the next record. It returns false when the input is
// exhausted, the source failed, or (outside tolerant mode) a line failed to
// normalize. Blank lines are skipped and yield nothing.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}

	for {
		line, err := s.src.NextLine()
		if errors.Is(err, io.EOF) {
			s.done = true
			return false
		}
		if err != nil {
			// Source failures are a caller contract problem, fatal in
			// every mode.
			s.err = fmt.Errorf("reading input: %w", err)
			s.done = true
			return false
		}

		linesReadTotal.Inc()

		if strings.TrimSpace(line) == "" {
			linesBlankTotal.Inc()
			continue
		}

		res, err := s.process(line)
		if err != nil {
			lineErrorsTotal.Inc()
			if s.opts.Mode == parse.ModeTolerant {
				s.cur = Result{Meta: parse.Failed(err, line)}
				return true
			}
			s.err = err
			s.done = true
			return false
		}

		s.cur = res
		return true
	}
}

// Result returns the record produced by the last successful call to Next.
func (s *Stream) Result() Result {
	return s.cur
}

// Err returns the error that stopped the stream, or nil after a clean end
// of input.
func (s *Stream) Err() error {
	return s.err
}

// process runs one line through tokenize and, unless raw output was
// requested, normalize.
func (s *Stream) process(line string) (Result, error) {
	raw, ok := s.tok.Tokenize(line)
	if !ok {
		stripped := strings.TrimRight(line, " \t\r\n")
		raw = &RawRecord{Unparsable: &stripped}
		linesUnparsableTotal.Inc()
		if !s.opts.Mode.SuppressWarnings() {
			fmt.Fprintf(s.opts.WarnWriter(), "sluice: unparsable line found: %s\n", stripped)
		}
	}

	var res Result
	if s.opts.Raw {
		res.Raw = raw
	} else {
		rec, err := s.norm.Normalize(raw)
		if err != nil {
			var ne *parse.NormalizationError
			if errors.As(err, &ne) {
				ne.Line = line
			}
			return Result{}, err
		}
		res.Record = rec
	}

	if s.opts.Mode == parse.ModeTolerant {
		res.Meta = parse.Succeeded()
	}
	return res, nil
}
