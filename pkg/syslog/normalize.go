package syslog

import (
	"strconv"
	"strings"
	"time"

	"github.com/treeline-io/sluice/internal/timeconv"
	"github.com/treeline-io/sluice/pkg/parse"
)

// Normalizer transforms raw records into the typed schema. It holds no
// per-line state; the location is the only configuration and only affects
// the naive epoch field.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a normalizer computing naive epochs in loc.
// Nil means the local system clock.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Normalize applies the schema to one raw record: surrounding whitespace is
// trimmed, escapes in the message are resolved, the structured-data blob is
// decomposed, integer fields are coerced, and the dual epoch fields are
// derived. Normalization is idempotent over the raw string values. A
// timestamp that tokenized but cannot be interpreted is a
// parse.NormalizationError.
func (n *Normalizer) Normalize(raw *RawRecord) (*Record, error) {
	if raw.Unparsable != nil {
		u := strings.TrimSpace(*raw.Unparsable)
		return &Record{Unparsable: &u}, nil
	}

	rec := &Record{
		Priority:       intField(raw.Priority),
		Version:        intField(raw.Version),
		Timestamp:      trimField(raw.Timestamp),
		Hostname:       trimField(raw.Hostname),
		Appname:        trimField(raw.Appname),
		ProcID:         intField(raw.ProcID),
		MsgID:          trimField(raw.MsgID),
		StructuredData: []StructuredEntry{},
	}

	if rec.Timestamp != nil {
		naive, utc, err := timeconv.Epochs(*rec.Timestamp, n.loc)
		if err != nil {
			return nil, &parse.NormalizationError{Field: "timestamp", Err: err}
		}
		rec.TimestampEpoch = &naive
		rec.TimestampEpochUTC = utc
	}

	if raw.Message != nil {
		msg := Unescape(strings.TrimSpace(*raw.Message))
		rec.Message = &msg
	}

	if raw.StructuredData != nil {
		rec.StructuredData = ExtractStructured(strings.TrimSpace(*raw.StructuredData))
	}

	return rec, nil
}

// trimField trims surrounding whitespace, preserving nil.
func trimField(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// intField coerces a text field to an integer. Non-numeric or absent values
// resolve to nil, not zero.
func intField(s *string) *int {
	if s == nil {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &v
}
