// Package sluice converts semi-structured textual output (command output,
// log lines) into streams of normalized structured records.
//
// Each supported input format is a registered adapter; callers look one up
// by name and pull records from it:
//
//	stream, err := sluice.ParseString("syslog", input, sluice.DefaultOptions())
//	if err != nil {
//		// ...
//	}
//	for stream.Next() {
//		// ...
//	}
//	if err := stream.Err(); err != nil {
//		// ...
//	}
package sluice

import (
	"io"

	"github.com/treeline-io/sluice/internal/config"
	"github.com/treeline-io/sluice/pkg/linesource"
	"github.com/treeline-io/sluice/pkg/parse"

	// Register the built-in format adapters.
	_ "github.com/treeline-io/sluice/pkg/syslog"
)

// DefaultOptions returns stream options seeded from the optional
// .sluice.yaml defaults file.
func DefaultOptions() parse.Options {
	return config.Load().Options()
}

// Parse looks up a registered format adapter and streams records from src.
func Parse(format string, src parse.LineSource, opts parse.Options) (parse.Stream, error) {
	factory, err := parse.Lookup(format)
	if err != nil {
		return nil, err
	}
	return factory(src, opts), nil
}

// ParseString streams records from a multi-line input string.
func ParseString(format, input string, opts parse.Options) (parse.Stream, error) {
	return Parse(format, parse.SplitString(input), opts)
}

// ParseReader streams records from r, capping line length at the configured
// maximum.
func ParseReader(format string, r io.Reader, opts parse.Options) (parse.Stream, error) {
	return Parse(format, linesource.NewReaderSize(r, config.Load().MaxLineLength), opts)
}

// Formats lists the registered format adapters.
func Formats() []string {
	return parse.Formats()
}
