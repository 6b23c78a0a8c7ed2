// Package parse defines the format-independent streaming contract shared by
// all sluice adapters: the error-recovery mode, parser options, the outcome
// envelope attached in tolerant mode, the line-source abstraction, and the
// format registry.
package parse

import (
	"io"
	"os"
)

// Mode selects the error-recovery behavior of a stream.
type Mode int

const (
	// ModeStrict emits warnings for unparsable lines and stops the stream on
	// the first normalization error. This is the default.
	ModeStrict Mode = iota

	// ModeQuiet suppresses warnings but still stops on the first error.
	ModeQuiet

	// ModeTolerant suppresses warnings and annotates per-line failures into
	// the output stream instead of stopping it.
	ModeTolerant
)

// String returns the mode name as used in configuration files.
func (m Mode) String() string {
	switch m {
	case ModeQuiet:
		return "quiet"
	case ModeTolerant:
		return "tolerant"
	default:
		return "strict"
	}
}

// ParseMode converts a configuration string to a Mode. Unknown strings
// default to ModeStrict.
func ParseMode(s string) Mode {
	switch s {
	case "quiet":
		return ModeQuiet
	case "tolerant":
		return ModeTolerant
	default:
		return ModeStrict
	}
}

// SuppressWarnings reports whether unparsable-line warnings are suppressed.
func (m Mode) SuppressWarnings() bool {
	return m == ModeQuiet || m == ModeTolerant
}

// Options configures a record stream. The zero value is valid: strict mode,
// normalized output, warnings to stderr.
type Options struct {
	// Raw emits records with all scalar fields as unprocessed strings,
	// skipping normalization entirely.
	Raw bool

	// Mode selects the error-recovery behavior.
	Mode Mode

	// Warnings receives one diagnostic line per unparsable input line.
	// Nil means os.Stderr. Warnings are advisory and never part of the
	// record stream itself.
	Warnings io.Writer
}

// WarnWriter returns the diagnostics destination, defaulting to os.Stderr.
func (o Options) WarnWriter() io.Writer {
	if o.Warnings != nil {
		return o.Warnings
	}
	return os.Stderr
}

// Meta is the outcome envelope attached to every emitted record when
// ModeTolerant is active. In other modes it is never present.
type Meta struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Line    string `json:"line,omitempty"`
}

// Succeeded returns the envelope for a successfully parsed line.
func Succeeded() *Meta {
	return &Meta{Success: true}
}

// Failed returns the envelope for a line whose processing failed.
func Failed(err error, line string) *Meta {
	return &Meta{Success: false, Error: err.Error(), Line: line}
}
